package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
)

type CasesService struct {
	mock.Mock
}

func (m *CasesService) Create(ctx context.Context, user *domain.User, input domain.CreateCaseInput) (*domain.Case, *domain.CaseDetail, error) {
	args := m.Called(ctx, user, input)
	var c *domain.Case
	var d *domain.CaseDetail
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Case)
	}
	if args.Get(1) != nil {
		d = args.Get(1).(*domain.CaseDetail)
	}
	return c, d, args.Error(2)
}

func (m *CasesService) GetView(ctx context.Context, user *domain.User, caseID uuid.UUID) (*domain.CaseView, error) {
	args := m.Called(ctx, user, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseView), args.Error(1)
}

func (m *CasesService) Update(ctx context.Context, user *domain.User, caseID uuid.UUID, input domain.UpdateCaseInput) (*domain.CaseView, error) {
	args := m.Called(ctx, user, caseID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CaseView), args.Error(1)
}

func (m *CasesService) Delete(ctx context.Context, user *domain.User, caseID uuid.UUID) error {
	args := m.Called(ctx, user, caseID)
	return args.Error(0)
}

func (m *CasesService) Assign(ctx context.Context, user *domain.User, caseID uuid.UUID) (*domain.Case, error) {
	args := m.Called(ctx, user, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *CasesService) ListNew(ctx context.Context) ([]domain.CaseSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.CaseSummary), args.Error(1)
}

func (m *CasesService) ListCreatedBy(ctx context.Context, userID uuid.UUID) ([]domain.CaseSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.CaseSummary), args.Error(1)
}

func (m *CasesService) ListAssigned(ctx context.Context, salesID uuid.UUID) ([]domain.CaseSummary, error) {
	args := m.Called(ctx, salesID)
	return args.Get(0).([]domain.CaseSummary), args.Error(1)
}

func (m *CasesService) ListForProducer(ctx context.Context, userID uuid.UUID) ([]domain.CaseSummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.CaseSummary), args.Error(1)
}

func (m *CasesService) ListProposals(ctx context.Context, user *domain.User, caseID uuid.UUID) ([]domain.ProposalSummary, error) {
	args := m.Called(ctx, user, caseID)
	return args.Get(0).([]domain.ProposalSummary), args.Error(1)
}

func (m *CasesService) HandleProposalCreated(ctx context.Context, tx *sqlx.Tx, caseID uuid.UUID) error {
	args := m.Called(ctx, tx, caseID)
	return args.Error(0)
}

func (m *CasesService) HandleProposalResolved(ctx context.Context, tx *sqlx.Tx, caseID uuid.UUID, outcome domain.ProposalStatus) error {
	args := m.Called(ctx, tx, caseID, outcome)
	return args.Error(0)
}

func (m *CasesService) InvalidateListings(ctx context.Context) {
	m.Called(ctx)
}
