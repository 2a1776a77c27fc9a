package proposal_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
	"chisan-market/internal/repository"
	"chisan-market/internal/service/proposal"
	"chisan-market/tests/mocks"
)

type proposalServiceMocks struct {
	proposalRepo   *mocks.ProposalRepository
	caseRepo       *mocks.CaseRepository
	restaurantRepo *mocks.RestaurantRepository
	userRepo       *mocks.UserRepository
	caseSvc        *mocks.CasesService
	notifSvc       *mocks.NotificationService
	emailSvc       *mocks.EmailService
}

func newProposalService() (proposal.Service, *proposalServiceMocks) {
	m := &proposalServiceMocks{
		proposalRepo:   new(mocks.ProposalRepository),
		caseRepo:       new(mocks.CaseRepository),
		restaurantRepo: new(mocks.RestaurantRepository),
		userRepo:       new(mocks.UserRepository),
		caseSvc:        new(mocks.CasesService),
		notifSvc:       new(mocks.NotificationService),
		emailSvc:       new(mocks.EmailService),
	}
	// Email sending looks up the recipient on a background goroutine; a nil
	// recipient short-circuits it so tests stay deterministic.
	m.userRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, nil).Maybe()

	svc := proposal.NewService(
		m.proposalRepo, m.caseRepo, m.restaurantRepo, m.userRepo,
		&mocks.TxRunner{}, m.caseSvc, m.notifSvc, m.emailSvc,
	)
	return svc, m
}

func TestProposalService_Create(t *testing.T) {
	ctx := context.Background()
	sales := &domain.User{ID: uuid.New(), Name: "Rep", Role: domain.RoleSales}
	caseID := uuid.New()
	restaurantID := uuid.New()
	ownerID := uuid.New()

	input := domain.CreateProposalInput{CaseID: caseID, RestaurantID: restaurantID}

	t.Run("Success", func(t *testing.T) {
		svc, m := newProposalService()

		m.caseRepo.On("GetByID", ctx, caseID).Return(&domain.Case{ID: caseID, Title: "Cabbage", Status: domain.CasePending}, nil).Once()
		m.restaurantRepo.On("GetByID", ctx, restaurantID).Return(&domain.Restaurant{ID: restaurantID, UserID: ownerID}, nil).Once()
		m.proposalRepo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(p *domain.Proposal) bool {
			return p.Status == domain.ProposalProposed && p.SalesID == sales.ID && p.CaseID == caseID
		})).Return(nil).Once()
		m.caseSvc.On("HandleProposalCreated", ctx, mock.Anything, caseID).Return(nil).Once()
		m.caseSvc.On("InvalidateListings", ctx).Return().Once()
		m.notifSvc.On("Emit", ctx, ownerID, mock.Anything, mock.Anything).Return().Once()

		created, err := svc.Create(ctx, sales, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProposalProposed, created.Status)
		m.proposalRepo.AssertExpectations(t)
		m.caseSvc.AssertExpectations(t)
		m.notifSvc.AssertExpectations(t)
	})

	t.Run("Missing Case", func(t *testing.T) {
		svc, m := newProposalService()
		m.caseRepo.On("GetByID", ctx, caseID).Return(nil, nil).Once()

		_, err := svc.Create(ctx, sales, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Missing Restaurant", func(t *testing.T) {
		svc, m := newProposalService()
		m.caseRepo.On("GetByID", ctx, caseID).Return(&domain.Case{ID: caseID}, nil).Once()
		m.restaurantRepo.On("GetByID", ctx, restaurantID).Return(nil, nil).Once()

		_, err := svc.Create(ctx, sales, input)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Nil IDs Rejected", func(t *testing.T) {
		svc, _ := newProposalService()

		_, err := svc.Create(ctx, sales, domain.CreateProposalInput{})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestProposalService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	proposalID := uuid.New()
	caseID := uuid.New()
	salesID := uuid.New()
	ownerID := uuid.New()

	parties := &repository.ProposalParties{
		ProposalID:        proposalID,
		CaseID:            caseID,
		SalesID:           salesID,
		RestaurantOwnerID: ownerID,
	}

	t.Run("Restaurant Owner Accepts, Sales Rep Notified", func(t *testing.T) {
		svc, m := newProposalService()
		owner := &domain.User{ID: ownerID, Role: domain.RoleRestaurant}
		accepted := &domain.Proposal{ID: proposalID, CaseID: caseID, Status: domain.ProposalAccepted}

		m.proposalRepo.On("GetParties", ctx, proposalID).Return(parties, nil).Once()
		m.proposalRepo.On("UpdateStatus", ctx, mock.Anything, proposalID, domain.ProposalAccepted).Return(accepted, nil).Once()
		m.caseSvc.On("HandleProposalResolved", ctx, mock.Anything, caseID, domain.ProposalAccepted).Return(nil).Once()
		m.caseSvc.On("InvalidateListings", ctx).Return().Once()
		m.caseRepo.On("GetByID", ctx, caseID).Return(&domain.Case{ID: caseID, Title: "Cabbage"}, nil).Once()
		m.notifSvc.On("Emit", ctx, salesID, mock.Anything, mock.Anything).Return().Once()

		updated, err := svc.UpdateStatus(ctx, owner, proposalID, domain.ProposalAccepted)

		assert.NoError(t, err)
		assert.Equal(t, domain.ProposalAccepted, updated.Status)
		m.caseSvc.AssertExpectations(t)
		m.notifSvc.AssertExpectations(t)
	})

	t.Run("Sales Updates, Owner Notified", func(t *testing.T) {
		svc, m := newProposalService()
		rep := &domain.User{ID: salesID, Role: domain.RoleSales}
		considering := &domain.Proposal{ID: proposalID, CaseID: caseID, Status: domain.ProposalConsidering}

		m.proposalRepo.On("GetParties", ctx, proposalID).Return(parties, nil).Once()
		m.proposalRepo.On("UpdateStatus", ctx, mock.Anything, proposalID, domain.ProposalConsidering).Return(considering, nil).Once()
		m.caseSvc.On("HandleProposalResolved", ctx, mock.Anything, caseID, domain.ProposalConsidering).Return(nil).Once()
		m.caseSvc.On("InvalidateListings", ctx).Return().Once()
		m.caseRepo.On("GetByID", ctx, caseID).Return(&domain.Case{ID: caseID, Title: "Cabbage"}, nil).Once()
		m.notifSvc.On("Emit", ctx, ownerID, mock.Anything, mock.Anything).Return().Once()

		_, err := svc.UpdateStatus(ctx, rep, proposalID, domain.ProposalConsidering)

		assert.NoError(t, err)
		m.notifSvc.AssertExpectations(t)
	})

	t.Run("Outsider Forbidden", func(t *testing.T) {
		svc, m := newProposalService()
		stranger := &domain.User{ID: uuid.New(), Role: domain.RoleSales}

		m.proposalRepo.On("GetParties", ctx, proposalID).Return(parties, nil).Once()

		_, err := svc.UpdateStatus(ctx, stranger, proposalID, domain.ProposalAccepted)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		m.proposalRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Proposal", func(t *testing.T) {
		svc, m := newProposalService()
		rep := &domain.User{ID: salesID, Role: domain.RoleSales}

		m.proposalRepo.On("GetParties", ctx, proposalID).Return(nil, nil).Once()

		_, err := svc.UpdateStatus(ctx, rep, proposalID, domain.ProposalAccepted)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Invalid Status", func(t *testing.T) {
		svc, _ := newProposalService()
		rep := &domain.User{ID: salesID, Role: domain.RoleSales}

		_, err := svc.UpdateStatus(ctx, rep, proposalID, "SHIPPED")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestProposalService_ListForRestaurant(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	restaurantID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, m := newProposalService()
		rows := []domain.RestaurantProposal{{ProposalID: uuid.New(), CaseTitle: "Cabbage"}}

		m.restaurantRepo.On("GetByUserID", ctx, userID).Return(&domain.Restaurant{ID: restaurantID, UserID: userID}, nil).Once()
		m.proposalRepo.On("ListByRestaurant", ctx, restaurantID).Return(rows, nil).Once()

		got, err := svc.ListForRestaurant(ctx, userID)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("No Restaurant Record", func(t *testing.T) {
		svc, m := newProposalService()
		m.restaurantRepo.On("GetByUserID", ctx, userID).Return(nil, nil).Once()

		_, err := svc.ListForRestaurant(ctx, userID)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
