package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cat struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	Age       int       `json:"age" gorm:"not null"`
	Breed     string    `json:"breed" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}
