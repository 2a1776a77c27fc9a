package notification_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
	"chisan-market/internal/service/notification"
	"chisan-market/tests/mocks"
)

func TestNotificationService_Emit(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Writes Notification", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		svc := notification.NewService(repo)

		repo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == userID && n.Message == "hello" && n.Link == "/cases/x"
		})).Return(nil).Once()

		svc.Emit(ctx, userID, "hello", "/cases/x")

		repo.AssertExpectations(t)
	})

	t.Run("Swallows Repository Error", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		svc := notification.NewService(repo)

		repo.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

		// Must not panic or surface the error.
		svc.Emit(ctx, userID, "hello", "")

		repo.AssertExpectations(t)
	})
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notifID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		svc := notification.NewService(repo)

		repo.On("MarkAsRead", ctx, notifID, userID).Return(int64(1), nil).Once()

		assert.NoError(t, svc.MarkAsRead(ctx, notifID, userID))
	})

	t.Run("Someone Else's Notification", func(t *testing.T) {
		repo := new(mocks.NotificationRepository)
		svc := notification.NewService(repo)

		repo.On("MarkAsRead", ctx, notifID, userID).Return(int64(0), nil).Once()

		assert.ErrorIs(t, svc.MarkAsRead(ctx, notifID, userID), domain.ErrNotFound)
	})
}
