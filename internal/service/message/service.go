// Package message is the per-proposal discussion thread. Only the two
// proposal parties (the sales rep and the restaurant owner) may read or
// write; the thread stays open even after the proposal is resolved.
package message

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"chisan-market/internal/authz"
	"chisan-market/internal/domain"
	"chisan-market/internal/repository"
)

type Service interface {
	Post(ctx context.Context, user *domain.User, proposalID uuid.UUID, input domain.CreateMessageInput) (*domain.Message, error)
	List(ctx context.Context, user *domain.User, proposalID uuid.UUID) ([]domain.Message, error)
}

type service struct {
	messageRepo  repository.MessageRepository
	proposalRepo repository.ProposalRepository
}

func NewService(messageRepo repository.MessageRepository, proposalRepo repository.ProposalRepository) Service {
	return &service{
		messageRepo:  messageRepo,
		proposalRepo: proposalRepo,
	}
}

func (s *service) Post(ctx context.Context, user *domain.User, proposalID uuid.UUID, input domain.CreateMessageInput) (*domain.Message, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.ErrValidation
	}

	sub, err := s.proposalSubject(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(user, authz.ResourceMessage, authz.ActionWrite, sub) {
		return nil, domain.ErrForbidden
	}

	m := &domain.Message{
		ID:         uuid.New(),
		ProposalID: proposalID,
		SenderID:   user.ID,
		Content:    input.Content,
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) List(ctx context.Context, user *domain.User, proposalID uuid.UUID) ([]domain.Message, error) {
	sub, err := s.proposalSubject(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(user, authz.ResourceMessage, authz.ActionRead, sub) {
		return nil, domain.ErrForbidden
	}

	return s.messageRepo.ListByProposal(ctx, proposalID)
}

func (s *service) proposalSubject(ctx context.Context, proposalID uuid.UUID) (authz.Subject, error) {
	parties, err := s.proposalRepo.GetParties(ctx, proposalID)
	if err != nil {
		return authz.Subject{}, err
	}
	if parties == nil {
		return authz.Subject{}, domain.ErrNotFound
	}
	return authz.Subject{Proposal: &authz.ProposalStakeholders{
		SalesID:           parties.SalesID,
		RestaurantOwnerID: parties.RestaurantOwnerID,
	}}, nil
}
