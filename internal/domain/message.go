package domain

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID `json:"id" db:"message_id"`
	ProposalID uuid.UUID `json:"proposal_id" db:"proposal_id"`
	SenderID   uuid.UUID `json:"sender_id" db:"sender_id"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	SenderName *string   `json:"sender_name,omitempty" db:"sender_name"`
	SenderRole *UserRole `json:"sender_role,omitempty" db:"sender_role"`
}

type CreateMessageInput struct {
	Content string `json:"content" validate:"required,min=1,max=4000"`
}
