package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
)

type RestaurantRepository struct {
	mock.Mock
}

func (m *RestaurantRepository) ListBySales(ctx context.Context, salesID uuid.UUID) ([]domain.RestaurantRef, error) {
	args := m.Called(ctx, salesID)
	return args.Get(0).([]domain.RestaurantRef), args.Error(1)
}

func (m *RestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) GetProfile(ctx context.Context, id uuid.UUID) (*domain.RestaurantProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RestaurantProfile), args.Error(1)
}

func (m *RestaurantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Restaurant, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *RestaurantRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateRestaurantInput) (*domain.Restaurant, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}
