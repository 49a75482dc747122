package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
)

type CatRepository interface {
	Insert(ctx context.Context, cat *domain.Cat) error
	ListAll(ctx context.Context) ([]*domain.Cat, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error)
}

type DogRepository interface {
	Insert(ctx context.Context, dog *domain.Dog) error
	ListAll(ctx context.Context) ([]*domain.Dog, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type EventRecordRepository interface {
	Record(ctx context.Context, record *domain.EventRecord) error
}

type Repositories struct {
	Cat         CatRepository
	Dog         DogRepository
	User        UserRepository
	EventRecord EventRecordRepository
}
