package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/repository"
)

// EventCatCreated is broadcast to every hub subscriber after a cat persists.
const EventCatCreated = "created"

// Notifier is the hub contract the write path depends on. Broadcast is
// fire-and-forget: it never blocks and never returns an error.
type Notifier interface {
	Broadcast(event string, payload interface{})
}

type CatService struct {
	catRepo  repository.CatRepository
	notifier Notifier
	validate *validator.Validate
}

func NewCatService(catRepo repository.CatRepository, notifier Notifier) *CatService {
	return &CatService{
		catRepo:  catRepo,
		notifier: notifier,
		validate: validator.New(),
	}
}

type CreateCatInput struct {
	Name  string `json:"name" validate:"max=4"`
	Age   int    `json:"age"`
	Breed string `json:"breed"`
}

// Create runs the write flow: validate, persist, notify. A persist failure
// surfaces to the caller and no notification is sent; a notification problem
// never affects the already-committed persist or the returned result.
func (s *CatService) Create(ctx context.Context, input CreateCatInput) (*domain.Cat, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.ValidationError(err.Error())
	}

	cat := &domain.Cat{
		ID:        uuid.New(),
		Name:      input.Name,
		Age:       input.Age,
		Breed:     input.Breed,
		CreatedAt: time.Now(),
	}

	if err := s.catRepo.Insert(ctx, cat); err != nil {
		return nil, err
	}

	s.notifier.Broadcast(EventCatCreated, cat)

	return cat, nil
}

func (s *CatService) List(ctx context.Context) ([]*domain.Cat, error) {
	return s.catRepo.ListAll(ctx)
}

func (s *CatService) Get(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	return s.catRepo.GetByID(ctx, id)
}
