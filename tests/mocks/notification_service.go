package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) Emit(ctx context.Context, userID uuid.UUID, message, link string) {
	m.Called(ctx, userID, message, link)
}

func (m *NotificationService) ListUnread(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
