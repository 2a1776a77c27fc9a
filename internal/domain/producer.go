package domain

import (
	"time"

	"github.com/google/uuid"
)

type Producer struct {
	ID        uuid.UUID `json:"id" db:"producer_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Address   *string   `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type ProducerRef struct {
	ID   uuid.UUID `json:"id" db:"producer_id"`
	Name string    `json:"name" db:"name"`
}

type ProducerProfile struct {
	ID      uuid.UUID `json:"id" db:"producer_id"`
	UserID  uuid.UUID `json:"user_id" db:"user_id"`
	Name    string    `json:"name" db:"name"`
	Address *string   `json:"address" db:"address"`
	Email   string    `json:"email" db:"email"`
	Role    UserRole  `json:"role" db:"role"`
}

type UpdateProducerInput struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}
