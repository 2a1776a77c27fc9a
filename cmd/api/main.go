package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"chisan-market/internal/config"
	"chisan-market/internal/domain"
	"chisan-market/internal/handler"
	"chisan-market/internal/middleware"
	"chisan-market/internal/repository"
	"chisan-market/internal/service"
	"chisan-market/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (media upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, redisClient, minioClient, cfg)
	handlers := handler.NewHandlers(services)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	}))

	setupRoutes(app, handlers, services.Auth)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService auth.Service) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	v1 := app.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	authRoutes.Post("/register", h.Auth.Register)
	authRoutes.Post("/login", h.Auth.Login)

	protected := v1.Group("", middleware.AuthRequired(authService))

	users := protected.Group("/users")
	users.Get("/me", h.User.Me)
	users.Put("/me", h.User.UpdateMe)

	producers := protected.Group("/producers")
	producers.Get("/", middleware.RequireRole(domain.RoleMunicipality), h.Producer.List)
	producers.Get("/:id", middleware.RequireAnyRole(domain.RoleProducer, domain.RoleSales), h.Producer.Get)
	producers.Put("/:id", middleware.RequireRole(domain.RoleProducer), h.Producer.Update)

	restaurants := protected.Group("/restaurants")
	restaurants.Get("/my", middleware.RequireRole(domain.RoleSales), h.Restaurant.ListManaged)
	restaurants.Get("/:id", h.Restaurant.Get)
	restaurants.Put("/:id", middleware.RequireRole(domain.RoleRestaurant), h.Restaurant.Update)

	caseRoutes := protected.Group("/cases")
	caseRoutes.Post("/", middleware.RequireRole(domain.RoleMunicipality), h.Case.Create)
	caseRoutes.Get("/new", middleware.RequireRole(domain.RoleSales), h.Case.ListNew)
	caseRoutes.Get("/my", middleware.RequireRole(domain.RoleMunicipality), h.Case.ListMine)
	caseRoutes.Get("/assigned", middleware.RequireRole(domain.RoleSales), h.Case.ListAssigned)
	caseRoutes.Get("/producer", middleware.RequireRole(domain.RoleProducer), h.Case.ListForProducer)
	caseRoutes.Get("/:id", h.Case.Get)
	caseRoutes.Put("/:id", middleware.RequireAnyRole(domain.RoleMunicipality, domain.RoleSales), h.Case.Update)
	caseRoutes.Delete("/:id", middleware.RequireRole(domain.RoleMunicipality), h.Case.Delete)
	caseRoutes.Put("/:id/assign", middleware.RequireRole(domain.RoleSales), h.Case.Assign)
	caseRoutes.Get("/:caseId/proposals", h.Case.ListProposals)

	proposals := protected.Group("/proposals")
	proposals.Post("/", middleware.RequireRole(domain.RoleSales), h.Proposal.Create)
	proposals.Get("/restaurant", middleware.RequireRole(domain.RoleRestaurant), h.Proposal.ListForRestaurant)
	proposals.Patch("/:id/status", middleware.RequireAnyRole(domain.RoleSales, domain.RoleRestaurant), h.Proposal.UpdateStatus)

	messages := protected.Group("/proposals/:proposalId/messages")
	messages.Get("/", h.Message.List)
	messages.Post("/", h.Message.Post)

	notifications := protected.Group("/notifications")
	notifications.Get("/", h.Notification.ListUnread)
	notifications.Patch("/:id/read", h.Notification.MarkAsRead)

	mediaRoutes := protected.Group("/media")
	mediaRoutes.Post("/", middleware.RequireRole(domain.RoleMunicipality), h.Media.Upload)
}
