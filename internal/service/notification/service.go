package notification

import (
	"context"
	"log"

	"github.com/google/uuid"

	"chisan-market/internal/domain"
	"chisan-market/internal/repository"
)

type Service interface {
	// Emit writes a notification best-effort: failures are logged and never
	// propagated, so a state-changing operation can never be rolled back by
	// its side channel.
	Emit(ctx context.Context, userID uuid.UUID, message, link string)

	ListUnread(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	notifRepo repository.NotificationRepository
}

func NewService(notifRepo repository.NotificationRepository) Service {
	return &service{notifRepo: notifRepo}
}

func (s *service) Emit(ctx context.Context, userID uuid.UUID, message, link string) {
	notif := &domain.Notification{
		ID:      uuid.New(),
		UserID:  userID,
		Message: message,
		Link:    link,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		log.Printf("Failed to create notification for user %s: %v", userID, err)
	}
}

func (s *service) ListUnread(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	return s.notifRepo.ListUnread(ctx, userID)
}

func (s *service) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	affected, err := s.notifRepo.MarkAsRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
