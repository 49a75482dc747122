package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
	"gorm.io/gorm"
)

type dogRepository struct {
	db *gorm.DB
}

func NewDogRepository(db *gorm.DB) *dogRepository {
	return &dogRepository{db: db}
}

func (r *dogRepository) Insert(ctx context.Context, dog *domain.Dog) error {
	if dog.ID == uuid.Nil {
		dog.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(dog).Error; err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}

func (r *dogRepository) ListAll(ctx context.Context) ([]*domain.Dog, error) {
	var dogs []*domain.Dog
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dogs).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return dogs, nil
}
