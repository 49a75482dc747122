package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventRecord is an audit row written for each hub broadcast. Broadcasts are
// fire-and-forget, so the record is the only durable trace of a notification.
type EventRecord struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Event       string         `json:"event" gorm:"not null"`
	Payload     datatypes.JSON `json:"payload"`
	Subscribers int            `json:"subscribers"`
	CreatedAt   time.Time      `json:"createdAt"`
}
