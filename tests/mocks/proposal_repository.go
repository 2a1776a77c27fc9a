package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
	"chisan-market/internal/repository"
)

type ProposalRepository struct {
	mock.Mock
}

func (m *ProposalRepository) Create(ctx context.Context, tx *sqlx.Tx, p *domain.Proposal) error {
	args := m.Called(ctx, tx, p)
	return args.Error(0)
}

func (m *ProposalRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *ProposalRepository) GetParties(ctx context.Context, id uuid.UUID) (*repository.ProposalParties, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ProposalParties), args.Error(1)
}

func (m *ProposalRepository) UpdateStatus(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, status domain.ProposalStatus) (*domain.Proposal, error) {
	args := m.Called(ctx, tx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Proposal), args.Error(1)
}

func (m *ProposalRepository) CountActiveByCase(ctx context.Context, tx *sqlx.Tx, caseID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tx, caseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProposalRepository) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.ProposalSummary, error) {
	args := m.Called(ctx, caseID)
	return args.Get(0).([]domain.ProposalSummary), args.Error(1)
}

func (m *ProposalRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.RestaurantProposal, error) {
	args := m.Called(ctx, restaurantID)
	return args.Get(0).([]domain.RestaurantProposal), args.Error(1)
}
