// Package proposal owns the proposal status lifecycle. Every status change
// runs in one transaction together with the parent case's recomputation;
// notifications and emails follow the commit and never roll it back.
package proposal

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"chisan-market/internal/authz"
	"chisan-market/internal/domain"
	"chisan-market/internal/repository"
	"chisan-market/internal/service/cases"
	"chisan-market/internal/service/email"
	"chisan-market/internal/service/notification"
)

type Service interface {
	Create(ctx context.Context, user *domain.User, input domain.CreateProposalInput) (*domain.Proposal, error)
	UpdateStatus(ctx context.Context, user *domain.User, proposalID uuid.UUID, newStatus domain.ProposalStatus) (*domain.Proposal, error)
	ListForRestaurant(ctx context.Context, userID uuid.UUID) ([]domain.RestaurantProposal, error)
}

type service struct {
	proposalRepo   repository.ProposalRepository
	caseRepo       repository.CaseRepository
	restaurantRepo repository.RestaurantRepository
	userRepo       repository.UserRepository
	tx             repository.TxRunner
	caseSvc        cases.Service
	notifSvc       notification.Service
	emailSvc       email.Service
}

func NewService(
	proposalRepo repository.ProposalRepository,
	caseRepo repository.CaseRepository,
	restaurantRepo repository.RestaurantRepository,
	userRepo repository.UserRepository,
	tx repository.TxRunner,
	caseSvc cases.Service,
	notifSvc notification.Service,
	emailSvc email.Service,
) Service {
	return &service{
		proposalRepo:   proposalRepo,
		caseRepo:       caseRepo,
		restaurantRepo: restaurantRepo,
		userRepo:       userRepo,
		tx:             tx,
		caseSvc:        caseSvc,
		notifSvc:       notifSvc,
		emailSvc:       emailSvc,
	}
}

func (s *service) Create(ctx context.Context, user *domain.User, input domain.CreateProposalInput) (*domain.Proposal, error) {
	if input.CaseID == uuid.Nil || input.RestaurantID == uuid.Nil {
		return nil, domain.ErrValidation
	}

	c, err := s.caseRepo.GetByID(ctx, input.CaseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}

	p := &domain.Proposal{
		ID:           uuid.New(),
		CaseID:       input.CaseID,
		RestaurantID: input.RestaurantID,
		SalesID:      user.ID,
		Status:       domain.ProposalProposed,
		Memo:         input.Memo,
	}

	// A proposal against a CLOSED case is still recorded; the case update
	// is a frozen no-op inside HandleProposalCreated.
	err = s.tx.RunInTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.proposalRepo.Create(ctx, tx, p); err != nil {
			return err
		}
		return s.caseSvc.HandleProposalCreated(ctx, tx, p.CaseID)
	})
	if err != nil {
		return nil, err
	}

	s.caseSvc.InvalidateListings(ctx)
	s.notifSvc.Emit(ctx, restaurant.UserID,
		fmt.Sprintf("%s sent you a new proposal for %q.", user.Name, c.Title),
		"/dashboard")
	s.sendEmailAsync(restaurant.UserID, func(owner *domain.User) error {
		return s.emailSvc.SendProposalReceivedEmail(context.Background(), owner.Email, owner.Name, user.Name, c.Title)
	})

	return p, nil
}

func (s *service) UpdateStatus(ctx context.Context, user *domain.User, proposalID uuid.UUID, newStatus domain.ProposalStatus) (*domain.Proposal, error) {
	if !newStatus.IsValid() {
		return nil, domain.ErrValidation
	}

	parties, err := s.proposalRepo.GetParties(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if parties == nil {
		return nil, domain.ErrNotFound
	}

	sub := authz.Subject{Proposal: &authz.ProposalStakeholders{
		SalesID:           parties.SalesID,
		RestaurantOwnerID: parties.RestaurantOwnerID,
	}}
	if !authz.Can(user, authz.ResourceProposal, authz.ActionUpdateStatus, sub) {
		return nil, domain.ErrForbidden
	}

	var updated *domain.Proposal
	err = s.tx.RunInTx(ctx, func(tx *sqlx.Tx) error {
		updated, err = s.proposalRepo.UpdateStatus(ctx, tx, proposalID, newStatus)
		if err != nil {
			return err
		}
		if updated == nil {
			return domain.ErrNotFound
		}
		return s.caseSvc.HandleProposalResolved(ctx, tx, parties.CaseID, newStatus)
	})
	if err != nil {
		return nil, err
	}

	s.caseSvc.InvalidateListings(ctx)
	s.notifyCounterpart(ctx, user, parties, newStatus)

	return updated, nil
}

func (s *service) ListForRestaurant(ctx context.Context, userID uuid.UUID) ([]domain.RestaurantProposal, error) {
	restaurant, err := s.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, domain.ErrNotFound
	}
	return s.proposalRepo.ListByRestaurant(ctx, restaurant.ID)
}

// notifyCounterpart tells the non-acting party about a status change.
func (s *service) notifyCounterpart(ctx context.Context, actor *domain.User, parties *repository.ProposalParties, newStatus domain.ProposalStatus) {
	counterpartID := parties.SalesID
	if actor.ID == parties.SalesID {
		counterpartID = parties.RestaurantOwnerID
	}

	caseTitle := "a case"
	if c, err := s.caseRepo.GetByID(ctx, parties.CaseID); err == nil && c != nil {
		caseTitle = fmt.Sprintf("%q", c.Title)
	}

	var message string
	switch newStatus {
	case domain.ProposalAccepted:
		message = fmt.Sprintf("The proposal for %s was accepted.", caseTitle)
	case domain.ProposalDeclined:
		message = fmt.Sprintf("The proposal for %s was declined.", caseTitle)
	default:
		message = fmt.Sprintf("The proposal for %s moved to %s.", caseTitle, newStatus)
	}

	s.notifSvc.Emit(ctx, counterpartID, message, "/dashboard")

	if newStatus == domain.ProposalAccepted || newStatus == domain.ProposalDeclined {
		decision := "accepted"
		if newStatus == domain.ProposalDeclined {
			decision = "declined"
		}
		title := caseTitle
		s.sendEmailAsync(counterpartID, func(counterpart *domain.User) error {
			return s.emailSvc.SendProposalDecisionEmail(context.Background(), counterpart.Email, counterpart.Name, title, decision)
		})
	}
}

func (s *service) sendEmailAsync(recipientID uuid.UUID, send func(recipient *domain.User) error) {
	if s.emailSvc == nil {
		return
	}
	go func() {
		recipient, err := s.userRepo.GetByID(context.Background(), recipientID)
		if err != nil || recipient == nil {
			return
		}
		if err := send(recipient); err != nil {
			log.Printf("Failed to send email to %s: %v", recipient.Email, err)
		}
	}()
}
