package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/petwatch/petwatch/internal/config"
	"github.com/petwatch/petwatch/internal/domain"
)

// TokenService issues and verifies HS256 bearer tokens. Tokens are stateless:
// validity is recomputed from signature and expiry at every check.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL(),
	}
}

// Claims is the identity a verified token asserts.
type Claims struct {
	Subject string
	Role    string
}

type IssuedToken struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

func (s *TokenService) Issue(subject, role string) (*IssuedToken, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"email": subject,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &IssuedToken{
		AccessToken: signed,
		ExpiresIn:   int(s.ttl / time.Second),
	}, nil
}

func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	subject, ok := claims["email"].(string)
	if !ok || subject == "" {
		return nil, domain.ErrInvalidToken
	}

	role, _ := claims["role"].(string)

	return &Claims{Subject: subject, Role: role}, nil
}
