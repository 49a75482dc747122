package service

import (
	"context"

	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/repository"
)

// Requirement declares what a route demands of its caller. The zero value
// requires a valid token and nothing else.
type Requirement struct {
	// Role, when non-empty, is the role claim the caller's token must carry.
	Role string
}

// AccessPolicy runs an explicit, ordered list of checks against the bearer
// token presented with a request. The role check runs before the token check:
// a valid token with the wrong role is ErrForbidden, while a missing or
// invalid token falls through to the token check and is ErrUnauthorized.
type AccessPolicy struct {
	tokens *TokenService
	users  repository.UserRepository
	checks []policyCheck
}

type policyCheck func(bearer string, req Requirement) error

func NewAccessPolicy(tokens *TokenService, users repository.UserRepository) *AccessPolicy {
	p := &AccessPolicy{tokens: tokens, users: users}
	p.checks = []policyCheck{p.checkRole, p.checkToken}
	return p
}

// Authorize applies every check in order and, when all pass, resolves the
// token's subject against the user store.
func (p *AccessPolicy) Authorize(ctx context.Context, bearer string, req Requirement) (*domain.User, error) {
	for _, check := range p.checks {
		if err := check(bearer, req); err != nil {
			return nil, err
		}
	}

	claims, err := p.tokens.Verify(bearer)
	if err != nil {
		return nil, err
	}

	user, err := p.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// checkRole denies only when a valid token carries a mismatched role. Routes
// without a declared role pass unconditionally, and an unverifiable token is
// left for checkToken so the caller sees ErrUnauthorized, not ErrForbidden.
func (p *AccessPolicy) checkRole(bearer string, req Requirement) error {
	if req.Role == "" {
		return nil
	}
	claims, err := p.tokens.Verify(bearer)
	if err != nil {
		return nil
	}
	if claims.Role != req.Role {
		return domain.ErrForbidden
	}
	return nil
}

func (p *AccessPolicy) checkToken(bearer string, req Requirement) error {
	if bearer == "" {
		return domain.ErrMissingToken
	}
	if _, err := p.tokens.Verify(bearer); err != nil {
		return err
	}
	return nil
}
