package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chisan-market/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.Message) error
	ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]domain.Message, error)
}

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *domain.Message) error {
	query := `
		INSERT INTO messages (message_id, proposal_id, sender_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		m.ID, m.ProposalID, m.SenderID, m.Content,
	).Scan(&m.CreatedAt)
}

func (r *messageRepository) ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]domain.Message, error) {
	var messages []domain.Message
	query := `
		SELECT m.message_id, m.proposal_id, m.sender_id, m.content, m.created_at,
			u.name AS sender_name, u.role AS sender_role
		FROM messages m
		JOIN users u ON m.sender_id = u.user_id
		WHERE m.proposal_id = $1
		ORDER BY m.created_at ASC`

	err := r.db.SelectContext(ctx, &messages, query, proposalID)
	return messages, err
}
