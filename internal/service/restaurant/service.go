package restaurant

import (
	"context"

	"github.com/google/uuid"

	"chisan-market/internal/domain"
	"chisan-market/internal/repository"
)

type Service interface {
	ListManaged(ctx context.Context, salesID uuid.UUID) ([]domain.RestaurantRef, error)
	GetProfile(ctx context.Context, user *domain.User, restaurantID uuid.UUID) (*domain.RestaurantProfile, error)
	UpdateProfile(ctx context.Context, user *domain.User, restaurantID uuid.UUID, input domain.UpdateRestaurantInput) (*domain.Restaurant, error)
}

type service struct {
	restaurantRepo repository.RestaurantRepository
}

func NewService(restaurantRepo repository.RestaurantRepository) Service {
	return &service{restaurantRepo: restaurantRepo}
}

func (s *service) ListManaged(ctx context.Context, salesID uuid.UUID) ([]domain.RestaurantRef, error) {
	return s.restaurantRepo.ListBySales(ctx, salesID)
}

// GetProfile admits the owning restaurant user and the managing sales rep.
func (s *service) GetProfile(ctx context.Context, user *domain.User, restaurantID uuid.UUID) (*domain.RestaurantProfile, error) {
	profile, err := s.restaurantRepo.GetProfile(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}

	managing := profile.ManagedBySalesID != nil && *profile.ManagedBySalesID == user.ID
	if user.ID != profile.UserID && !managing {
		return nil, domain.ErrForbidden
	}
	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, user *domain.User, restaurantID uuid.UUID, input domain.UpdateRestaurantInput) (*domain.Restaurant, error) {
	existing, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if user.ID != existing.UserID {
		return nil, domain.ErrForbidden
	}

	updated, err := s.restaurantRepo.Update(ctx, restaurantID, input)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return updated, nil
}
