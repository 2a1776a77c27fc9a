package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
)

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MessageRepository) ListByProposal(ctx context.Context, proposalID uuid.UUID) ([]domain.Message, error) {
	args := m.Called(ctx, proposalID)
	return args.Get(0).([]domain.Message), args.Error(1)
}
