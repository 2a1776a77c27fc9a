package producer

import (
	"context"

	"github.com/google/uuid"

	"chisan-market/internal/domain"
	"chisan-market/internal/repository"
)

type Service interface {
	List(ctx context.Context, user *domain.User) ([]domain.ProducerRef, error)
	GetProfile(ctx context.Context, user *domain.User, producerID uuid.UUID) (*domain.ProducerProfile, error)
	UpdateProfile(ctx context.Context, user *domain.User, producerID uuid.UUID, input domain.UpdateProducerInput) (*domain.Producer, error)
}

type service struct {
	producerRepo repository.ProducerRepository
}

func NewService(producerRepo repository.ProducerRepository) Service {
	return &service{producerRepo: producerRepo}
}

// List is the producer picker for case registration; only municipal users
// see the full roster.
func (s *service) List(ctx context.Context, user *domain.User) ([]domain.ProducerRef, error) {
	if user.Role != domain.RoleMunicipality {
		return nil, domain.ErrForbidden
	}
	return s.producerRepo.List(ctx)
}

// GetProfile is open to the owning producer and to any sales rep, who needs
// producer details while working cases.
func (s *service) GetProfile(ctx context.Context, user *domain.User, producerID uuid.UUID) (*domain.ProducerProfile, error) {
	profile, err := s.producerRepo.GetProfile(ctx, producerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}

	if user.Role != domain.RoleSales && user.ID != profile.UserID {
		return nil, domain.ErrForbidden
	}
	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, user *domain.User, producerID uuid.UUID, input domain.UpdateProducerInput) (*domain.Producer, error) {
	existing, err := s.producerRepo.GetByID(ctx, producerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if user.ID != existing.UserID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.producerRepo.Update(ctx, producerID, input)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return updated, nil
}
