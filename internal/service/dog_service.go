package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/repository"
)

type DogService struct {
	dogRepo  repository.DogRepository
	validate *validator.Validate
}

func NewDogService(dogRepo repository.DogRepository) *DogService {
	return &DogService{
		dogRepo:  dogRepo,
		validate: validator.New(),
	}
}

type CreateDogInput struct {
	Name  string `json:"name" validate:"required"`
	Age   int    `json:"age"`
	Breed string `json:"breed"`
}

func (s *DogService) Create(ctx context.Context, input CreateDogInput) (*domain.Dog, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.ValidationError(err.Error())
	}

	dog := &domain.Dog{
		ID:        uuid.New(),
		Name:      input.Name,
		Age:       input.Age,
		Breed:     input.Breed,
		CreatedAt: time.Now(),
	}

	if err := s.dogRepo.Insert(ctx, dog); err != nil {
		return nil, err
	}

	return dog, nil
}

func (s *DogService) List(ctx context.Context) ([]*domain.Dog, error) {
	return s.dogRepo.ListAll(ctx)
}
