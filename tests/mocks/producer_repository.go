package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
)

type ProducerRepository struct {
	mock.Mock
}

func (m *ProducerRepository) List(ctx context.Context) ([]domain.ProducerRef, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.ProducerRef), args.Error(1)
}

func (m *ProducerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Producer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producer), args.Error(1)
}

func (m *ProducerRepository) GetProfile(ctx context.Context, id uuid.UUID) (*domain.ProducerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProducerProfile), args.Error(1)
}

func (m *ProducerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Producer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producer), args.Error(1)
}

func (m *ProducerRepository) Update(ctx context.Context, id uuid.UUID, input domain.UpdateProducerInput) (*domain.Producer, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producer), args.Error(1)
}
