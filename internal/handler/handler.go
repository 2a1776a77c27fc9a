package handler

import "chisan-market/internal/service"

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Producer     *ProducerHandler
	Restaurant   *RestaurantHandler
	Case         *CaseHandler
	Proposal     *ProposalHandler
	Message      *MessageHandler
	Notification *NotificationHandler
	Media        *MediaHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		User:         NewUserHandler(services.User),
		Producer:     NewProducerHandler(services.Producer),
		Restaurant:   NewRestaurantHandler(services.Restaurant),
		Case:         NewCaseHandler(services.Case),
		Proposal:     NewProposalHandler(services.Proposal),
		Message:      NewMessageHandler(services.Message),
		Notification: NewNotificationHandler(services.Notification),
		Media:        NewMediaHandler(services.Media),
	}
}
