package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	role     string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
		role:     domain.RoleMember,
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithRole sets the role
func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.role = role
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Role:         b.role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildWithToken creates the user and issues an access token for it
func (b *UserBuilder) BuildWithToken(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, _ := b.Build(t, ts.DB.DB)

	token, err := ts.Services.Token.Issue(user.Email, user.Role)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	return user, token.AccessToken
}

// NewCat persists a cat directly, bypassing the write flow
func NewCat(t *testing.T, db *gorm.DB, name string, age int, breed string) *domain.Cat {
	t.Helper()

	cat := &domain.Cat{
		ID:        uuid.New(),
		Name:      name,
		Age:       age,
		Breed:     breed,
		CreatedAt: time.Now(),
	}

	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("failed to create cat: %v", err)
	}

	return cat
}
