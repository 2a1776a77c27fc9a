package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is advisory: it is written best-effort after a state change
// and never blocks the owning business mutation.
type Notification struct {
	ID        uuid.UUID `json:"id" db:"notification_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Message   string    `json:"message" db:"message"`
	Link      string    `json:"link" db:"link"`
	IsRead    bool      `json:"read" db:"is_read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
