package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
	"gorm.io/gorm"
)

type catRepository struct {
	db *gorm.DB
}

func NewCatRepository(db *gorm.DB) *catRepository {
	return &catRepository{db: db}
}

func (r *catRepository) Insert(ctx context.Context, cat *domain.Cat) error {
	if cat.ID == uuid.Nil {
		cat.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(cat).Error; err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}

func (r *catRepository) ListAll(ctx context.Context) ([]*domain.Cat, error) {
	var cats []*domain.Cat
	if err := r.db.WithContext(ctx).Order("created_at").Find(&cats).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return cats, nil
}

func (r *catRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Cat, error) {
	var cat domain.Cat
	err := r.db.WithContext(ctx).First(&cat, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.PersistenceError(err)
	}
	return &cat, nil
}
