package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/petwatch/petwatch/internal/domain"
	"gorm.io/gorm"
)

type eventRecordRepository struct {
	db *gorm.DB
}

func NewEventRecordRepository(db *gorm.DB) *eventRecordRepository {
	return &eventRecordRepository{db: db}
}

func (r *eventRecordRepository) Record(ctx context.Context, record *domain.EventRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}
