package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
)

type CaseRepository struct {
	mock.Mock
}

func (m *CaseRepository) Create(ctx context.Context, tx *sqlx.Tx, c *domain.Case, d *domain.CaseDetail) error {
	args := m.Called(ctx, tx, c, d)
	return args.Error(0)
}

func (m *CaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Case, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *CaseRepository) GetView(ctx context.Context, id uuid.UUID) (*domain.CaseView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseView), args.Error(1)
}

func (m *CaseRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CaseRepository) AssignIfNew(ctx context.Context, caseID, salesID uuid.UUID) (*domain.Case, error) {
	args := m.Called(ctx, caseID, salesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *CaseRepository) Update(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, input domain.UpdateCaseInput) error {
	args := m.Called(ctx, tx, id, input)
	return args.Error(0)
}

func (m *CaseRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CaseRepository) MarkProposing(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *CaseRepository) Close(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *CaseRepository) RevertAfterDecline(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) error {
	args := m.Called(ctx, tx, id)
	return args.Error(0)
}

func (m *CaseRepository) ListNew(ctx context.Context) ([]domain.CaseSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CaseSummary), args.Error(1)
}

func (m *CaseRepository) ListByCreator(ctx context.Context, userID uuid.UUID) ([]domain.CaseSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.CaseSummary), args.Error(1)
}

func (m *CaseRepository) ListByAssignedSales(ctx context.Context, salesID uuid.UUID) ([]domain.CaseSummary, error) {
	args := m.Called(ctx, salesID)
	return args.Get(0).([]domain.CaseSummary), args.Error(1)
}

func (m *CaseRepository) ListByProducer(ctx context.Context, producerID uuid.UUID) ([]domain.CaseSummary, error) {
	args := m.Called(ctx, producerID)
	return args.Get(0).([]domain.CaseSummary), args.Error(1)
}
