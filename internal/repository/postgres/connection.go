package postgres

import (
	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Cat{},
		&domain.Dog{},
		&domain.EventRecord{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Cat:         NewCatRepository(db),
		Dog:         NewDogRepository(db),
		User:        NewUserRepository(db),
		EventRecord: NewEventRecordRepository(db),
	}
}
