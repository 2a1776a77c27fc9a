package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"chisan-market/internal/config"
	"chisan-market/internal/repository"
	"chisan-market/internal/service/auth"
	"chisan-market/internal/service/cases"
	"chisan-market/internal/service/email"
	"chisan-market/internal/service/media"
	"chisan-market/internal/service/message"
	"chisan-market/internal/service/notification"
	"chisan-market/internal/service/producer"
	"chisan-market/internal/service/proposal"
	"chisan-market/internal/service/restaurant"
	"chisan-market/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Producer     producer.Service
	Restaurant   restaurant.Service
	Case         cases.Service
	Proposal     proposal.Service
	Message      message.Service
	Notification notification.Service
	Email        email.Service
	Media        media.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	notificationService := notification.NewService(repos.Notification)
	authService := auth.NewService(repos.User, cfg)
	userService := user.NewService(repos.User)
	producerService := producer.NewService(repos.Producer)
	restaurantService := restaurant.NewService(repos.Restaurant)
	caseService := cases.NewService(repos.Case, repos.Producer, repos.Proposal, repos, redis, notificationService)
	proposalService := proposal.NewService(
		repos.Proposal,
		repos.Case,
		repos.Restaurant,
		repos.User,
		repos,
		caseService,
		notificationService,
		emailService,
	)
	messageService := message.NewService(repos.Message, repos.Proposal)
	mediaService := media.NewService(minioClient, cfg)

	return &Services{
		Auth:         authService,
		User:         userService,
		Producer:     producerService,
		Restaurant:   restaurantService,
		Case:         caseService,
		Proposal:     proposalService,
		Message:      messageService,
		Notification: notificationService,
		Email:        emailService,
		Media:        mediaService,
	}
}
