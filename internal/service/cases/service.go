// Package cases owns the case status field and its transitions. A case's
// status is a function of its assignment state and the aggregate status of
// its proposals: NEW until a sales rep takes it (PENDING), PROPOSING while
// active proposals exist, CLOSED once one is accepted, and back to
// NEW/PENDING when the last active proposal is declined.
package cases

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"chisan-market/internal/authz"
	"chisan-market/internal/domain"
	"chisan-market/internal/repository"
	"chisan-market/internal/service/notification"
)

const newCasesCacheKey = "cases:new"

type Service interface {
	Create(ctx context.Context, user *domain.User, input domain.CreateCaseInput) (*domain.Case, *domain.CaseDetail, error)
	GetView(ctx context.Context, user *domain.User, caseID uuid.UUID) (*domain.CaseView, error)
	Update(ctx context.Context, user *domain.User, caseID uuid.UUID, input domain.UpdateCaseInput) (*domain.CaseView, error)
	Delete(ctx context.Context, user *domain.User, caseID uuid.UUID) error
	Assign(ctx context.Context, user *domain.User, caseID uuid.UUID) (*domain.Case, error)

	ListNew(ctx context.Context) ([]domain.CaseSummary, error)
	ListCreatedBy(ctx context.Context, userID uuid.UUID) ([]domain.CaseSummary, error)
	ListAssigned(ctx context.Context, salesID uuid.UUID) ([]domain.CaseSummary, error)
	ListForProducer(ctx context.Context, userID uuid.UUID) ([]domain.CaseSummary, error)
	ListProposals(ctx context.Context, user *domain.User, caseID uuid.UUID) ([]domain.ProposalSummary, error)

	// Transitions driven by proposal activity; run inside the proposal
	// mutation's transaction.
	HandleProposalCreated(ctx context.Context, tx *sqlx.Tx, caseID uuid.UUID) error
	HandleProposalResolved(ctx context.Context, tx *sqlx.Tx, caseID uuid.UUID, outcome domain.ProposalStatus) error

	InvalidateListings(ctx context.Context)
}

type service struct {
	caseRepo     repository.CaseRepository
	producerRepo repository.ProducerRepository
	proposalRepo repository.ProposalRepository
	tx           repository.TxRunner
	redis        *redis.Client
	notifSvc     notification.Service
}

func NewService(
	caseRepo repository.CaseRepository,
	producerRepo repository.ProducerRepository,
	proposalRepo repository.ProposalRepository,
	tx repository.TxRunner,
	redisClient *redis.Client,
	notifSvc notification.Service,
) Service {
	return &service{
		caseRepo:     caseRepo,
		producerRepo: producerRepo,
		proposalRepo: proposalRepo,
		tx:           tx,
		redis:        redisClient,
		notifSvc:     notifSvc,
	}
}

func (s *service) Create(ctx context.Context, user *domain.User, input domain.CreateCaseInput) (*domain.Case, *domain.CaseDetail, error) {
	if strings.TrimSpace(input.Title) == "" || input.ProducerID == uuid.Nil || strings.TrimSpace(input.ItemName) == "" {
		return nil, nil, domain.ErrValidation
	}

	producer, err := s.producerRepo.GetByID(ctx, input.ProducerID)
	if err != nil {
		return nil, nil, err
	}
	if producer == nil {
		return nil, nil, domain.ErrNotFound
	}

	c := &domain.Case{
		ID:              uuid.New(),
		Title:           input.Title,
		Status:          domain.CaseNew,
		CreatedByUserID: user.ID,
		ProducerID:      input.ProducerID,
	}
	d := &domain.CaseDetail{
		ItemName:     input.ItemName,
		Quantity:     input.Quantity,
		DesiredPrice: input.DesiredPrice,
		Description:  input.Description,
		ImageURLs:    input.ImageURLs,
	}

	err = s.tx.RunInTx(ctx, func(tx *sqlx.Tx) error {
		return s.caseRepo.Create(ctx, tx, c, d)
	})
	if err != nil {
		return nil, nil, err
	}

	s.InvalidateListings(ctx)
	s.notifSvc.Emit(ctx, user.ID,
		fmt.Sprintf("A new case %q has been registered.", c.Title),
		fmt.Sprintf("/cases/%s", c.ID))

	return c, d, nil
}

func (s *service) GetView(ctx context.Context, user *domain.User, caseID uuid.UUID) (*domain.CaseView, error) {
	view, err := s.caseRepo.GetView(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, domain.ErrNotFound
	}

	cs, err := s.viewStakeholders(ctx, view)
	if err != nil {
		return nil, err
	}
	if !authz.IsCaseStakeholder(user, cs) {
		return nil, domain.ErrForbidden
	}

	return view, nil
}

func (s *service) Update(ctx context.Context, user *domain.User, caseID uuid.UUID, input domain.UpdateCaseInput) (*domain.CaseView, error) {
	c, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	sub := authz.Subject{Case: &authz.CaseStakeholders{
		CreatedByUserID: c.CreatedByUserID,
		AssignedSalesID: c.AssignedSalesID,
	}}
	if !authz.Can(user, authz.ResourceCase, authz.ActionUpdate, sub) {
		return nil, domain.ErrForbidden
	}

	if input.ProducerID != nil {
		producer, err := s.producerRepo.GetByID(ctx, *input.ProducerID)
		if err != nil {
			return nil, err
		}
		if producer == nil {
			return nil, domain.ErrNotFound
		}
	}

	err = s.tx.RunInTx(ctx, func(tx *sqlx.Tx) error {
		return s.caseRepo.Update(ctx, tx, caseID, input)
	})
	if err != nil {
		return nil, err
	}

	s.InvalidateListings(ctx)
	return s.caseRepo.GetView(ctx, caseID)
}

func (s *service) Delete(ctx context.Context, user *domain.User, caseID uuid.UUID) error {
	c, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}

	sub := authz.Subject{Case: &authz.CaseStakeholders{CreatedByUserID: c.CreatedByUserID}}
	if !authz.Can(user, authz.ResourceCase, authz.ActionDelete, sub) {
		return domain.ErrForbidden
	}

	affected, err := s.caseRepo.Delete(ctx, caseID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.InvalidateListings(ctx)
	return nil
}

// Assign races concurrent callers on the conditional update; the database
// guarantees at most one wins. A miss is a conflict when the case exists.
func (s *service) Assign(ctx context.Context, user *domain.User, caseID uuid.UUID) (*domain.Case, error) {
	if !authz.Can(user, authz.ResourceCase, authz.ActionAssign, authz.Subject{Case: &authz.CaseStakeholders{}}) {
		return nil, domain.ErrForbidden
	}

	c, err := s.caseRepo.AssignIfNew(ctx, caseID, user.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		exists, err := s.caseRepo.Exists(ctx, caseID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrConflict
	}

	s.InvalidateListings(ctx)
	s.notifSvc.Emit(ctx, user.ID,
		fmt.Sprintf("Case %q has been assigned to you.", c.Title),
		fmt.Sprintf("/cases/%s", c.ID))

	return c, nil
}

func (s *service) ListNew(ctx context.Context) ([]domain.CaseSummary, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, newCasesCacheKey).Result(); err == nil {
			var cases []domain.CaseSummary
			if json.Unmarshal([]byte(cached), &cases) == nil {
				return cases, nil
			}
		}
	}

	cases, err := s.caseRepo.ListNew(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(cases); err == nil {
			_ = s.redis.Set(ctx, newCasesCacheKey, data, time.Minute).Err()
		}
	}

	return cases, nil
}

func (s *service) ListCreatedBy(ctx context.Context, userID uuid.UUID) ([]domain.CaseSummary, error) {
	return s.caseRepo.ListByCreator(ctx, userID)
}

func (s *service) ListAssigned(ctx context.Context, salesID uuid.UUID) ([]domain.CaseSummary, error) {
	return s.caseRepo.ListByAssignedSales(ctx, salesID)
}

func (s *service) ListForProducer(ctx context.Context, userID uuid.UUID) ([]domain.CaseSummary, error) {
	producer, err := s.producerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if producer == nil {
		return nil, domain.ErrNotFound
	}
	return s.caseRepo.ListByProducer(ctx, producer.ID)
}

func (s *service) ListProposals(ctx context.Context, user *domain.User, caseID uuid.UUID) ([]domain.ProposalSummary, error) {
	c, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	cs, err := s.caseStakeholders(ctx, c)
	if err != nil {
		return nil, err
	}
	if !authz.IsCaseStakeholder(user, cs) {
		return nil, domain.ErrForbidden
	}

	return s.proposalRepo.ListByCase(ctx, caseID)
}

func (s *service) HandleProposalCreated(ctx context.Context, tx *sqlx.Tx, caseID uuid.UUID) error {
	// Frozen cases (CLOSED/REJECTED) are left untouched by the WHERE clause.
	return s.caseRepo.MarkProposing(ctx, tx, caseID)
}

func (s *service) HandleProposalResolved(ctx context.Context, tx *sqlx.Tx, caseID uuid.UUID, outcome domain.ProposalStatus) error {
	switch outcome {
	case domain.ProposalAccepted:
		// Unconditional: an acceptance always closes the case, whatever its
		// prior status.
		return s.caseRepo.Close(ctx, tx, caseID)
	case domain.ProposalDeclined:
		active, err := s.proposalRepo.CountActiveByCase(ctx, tx, caseID)
		if err != nil {
			return err
		}
		if active == 0 {
			return s.caseRepo.RevertAfterDecline(ctx, tx, caseID)
		}
		return nil
	default:
		return nil
	}
}

func (s *service) InvalidateListings(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, newCasesCacheKey).Err(); err != nil {
		log.Printf("Failed to invalidate case listing cache: %v", err)
	}
}

func (s *service) caseStakeholders(ctx context.Context, c *domain.Case) (authz.CaseStakeholders, error) {
	producer, err := s.producerRepo.GetByID(ctx, c.ProducerID)
	if err != nil {
		return authz.CaseStakeholders{}, err
	}

	cs := authz.CaseStakeholders{
		CreatedByUserID: c.CreatedByUserID,
		AssignedSalesID: c.AssignedSalesID,
	}
	if producer != nil {
		cs.ProducerOwnerID = producer.UserID
	}
	return cs, nil
}

func (s *service) viewStakeholders(ctx context.Context, v *domain.CaseView) (authz.CaseStakeholders, error) {
	producer, err := s.producerRepo.GetByID(ctx, v.ProducerID)
	if err != nil {
		return authz.CaseStakeholders{}, err
	}

	cs := authz.CaseStakeholders{
		CreatedByUserID: v.CreatedByUserID,
		AssignedSalesID: v.AssignedSalesID,
	}
	if producer != nil {
		cs.ProducerOwnerID = producer.UserID
	}
	return cs, nil
}
