package message_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"chisan-market/internal/domain"
	"chisan-market/internal/repository"
	"chisan-market/internal/service/message"
	"chisan-market/tests/mocks"
)

func TestMessageService_Post(t *testing.T) {
	ctx := context.Background()
	proposalID := uuid.New()
	salesID := uuid.New()
	ownerID := uuid.New()

	parties := &repository.ProposalParties{
		ProposalID:        proposalID,
		SalesID:           salesID,
		RestaurantOwnerID: ownerID,
	}

	t.Run("Party Posts", func(t *testing.T) {
		messageRepo := new(mocks.MessageRepository)
		proposalRepo := new(mocks.ProposalRepository)
		svc := message.NewService(messageRepo, proposalRepo)

		proposalRepo.On("GetParties", ctx, proposalID).Return(parties, nil).Once()
		messageRepo.On("Create", ctx, mock.MatchedBy(func(m *domain.Message) bool {
			return m.ProposalID == proposalID && m.SenderID == salesID && m.Content == "When can you deliver?"
		})).Return(nil).Once()

		sender := &domain.User{ID: salesID, Role: domain.RoleSales}
		posted, err := svc.Post(ctx, sender, proposalID, domain.CreateMessageInput{Content: "When can you deliver?"})

		assert.NoError(t, err)
		assert.Equal(t, salesID, posted.SenderID)
		messageRepo.AssertExpectations(t)
	})

	t.Run("Outsider Forbidden", func(t *testing.T) {
		messageRepo := new(mocks.MessageRepository)
		proposalRepo := new(mocks.ProposalRepository)
		svc := message.NewService(messageRepo, proposalRepo)

		proposalRepo.On("GetParties", ctx, proposalID).Return(parties, nil).Once()

		stranger := &domain.User{ID: uuid.New(), Role: domain.RoleMunicipality}
		_, err := svc.Post(ctx, stranger, proposalID, domain.CreateMessageInput{Content: "hi"})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Blank Content", func(t *testing.T) {
		svc := message.NewService(new(mocks.MessageRepository), new(mocks.ProposalRepository))

		sender := &domain.User{ID: salesID, Role: domain.RoleSales}
		_, err := svc.Post(ctx, sender, proposalID, domain.CreateMessageInput{Content: "   "})

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Unknown Proposal", func(t *testing.T) {
		messageRepo := new(mocks.MessageRepository)
		proposalRepo := new(mocks.ProposalRepository)
		svc := message.NewService(messageRepo, proposalRepo)

		proposalRepo.On("GetParties", ctx, proposalID).Return(nil, nil).Once()

		sender := &domain.User{ID: salesID, Role: domain.RoleSales}
		_, err := svc.Post(ctx, sender, proposalID, domain.CreateMessageInput{Content: "hi"})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMessageService_List(t *testing.T) {
	ctx := context.Background()
	proposalID := uuid.New()
	salesID := uuid.New()
	ownerID := uuid.New()

	parties := &repository.ProposalParties{
		ProposalID:        proposalID,
		SalesID:           salesID,
		RestaurantOwnerID: ownerID,
	}

	t.Run("Owner Reads Thread", func(t *testing.T) {
		messageRepo := new(mocks.MessageRepository)
		proposalRepo := new(mocks.ProposalRepository)
		svc := message.NewService(messageRepo, proposalRepo)

		thread := []domain.Message{{ID: uuid.New(), ProposalID: proposalID, SenderID: salesID}}
		proposalRepo.On("GetParties", ctx, proposalID).Return(parties, nil).Once()
		messageRepo.On("ListByProposal", ctx, proposalID).Return(thread, nil).Once()

		owner := &domain.User{ID: ownerID, Role: domain.RoleRestaurant}
		got, err := svc.List(ctx, owner, proposalID)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Producer Cannot Read", func(t *testing.T) {
		messageRepo := new(mocks.MessageRepository)
		proposalRepo := new(mocks.ProposalRepository)
		svc := message.NewService(messageRepo, proposalRepo)

		proposalRepo.On("GetParties", ctx, proposalID).Return(parties, nil).Once()

		producer := &domain.User{ID: uuid.New(), Role: domain.RoleProducer}
		_, err := svc.List(ctx, producer, proposalID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
