package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"reviewhub/internal/config"
	"reviewhub/internal/database"
	"reviewhub/internal/handlers"
	"reviewhub/internal/middleware"
	"reviewhub/internal/repositories"
	"reviewhub/internal/services"
	"reviewhub/pkg/rabbitmq"
)

// seedUsers and seedItems are the demo data loaded when SEED_DATA is on.
var (
	seedUsers = []struct{ username, password string }{
		{"moe", "m_pw"},
		{"lucy", "l_pw"},
		{"ethyl", "e_pw"},
		{"curly", "c_pw"},
	}
	seedItems = []string{"foo", "bar", "bazz", "quq", "fip"}
)

// app bundles the services the routes and the seeder share.
type app struct {
	auth    *services.AuthService
	catalog *services.CatalogService
}

// NewApp wires repositories, services and handlers over db. publisher may be
// nil to disable events.
func NewApp(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher) (*fiber.App, *app) {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	itemRepo := repositories.NewGORMItemRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	commentRepo := repositories.NewGORMCommentRepository(db)

	// --- Services ---
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens, cfg.BcryptCost)
	resolver := services.NewIdentityResolver(userRepo, tokens)
	catalogService := services.NewCatalogService(itemRepo)
	reviewService := services.NewReviewService(reviewRepo, publisher)
	commentService := services.NewCommentService(commentRepo, publisher)

	// --- Fiber App ---
	fiberApp := fiber.New()
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	api := fiberApp.Group("/api")
	auth := middleware.AuthRequired(resolver)
	handlers.NewAuthHandler(authService).RegisterRoutes(api, auth)
	handlers.NewItemHandler(catalogService).RegisterRoutes(api, auth)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(api, auth)
	handlers.NewCommentHandler(commentService).RegisterRoutes(api, auth)

	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"events": publisher != nil,
		})
	})

	return fiberApp, &app{auth: authService, catalog: catalogService}
}

// prepareDatabase resets or migrates the schema as configured.
func prepareDatabase(cfg *config.Config, db *gorm.DB) error {
	if cfg.DBReset {
		return database.Reset(db)
	}
	return database.Migrate(db)
}

// seed inserts the demo users and items.
func (a *app) seed() error {
	for _, u := range seedUsers {
		if _, err := a.auth.Register(u.username, u.password); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.username, err)
		}
	}
	for _, name := range seedItems {
		if _, err := a.catalog.CreateItem(name, name+" description"); err != nil {
			return fmt.Errorf("seeding item %s: %w", name, err)
		}
	}
	log.Printf("Seeded %d users and %d items", len(seedUsers), len(seedItems))
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
	log.Println("Server gracefully stopped")
}

// run serves until SIGINT or SIGTERM. Resources are released by deferred
// calls on every return path.
func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.WarnInsecureDefaults()

	// --- Database ---
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()
	if err := prepareDatabase(cfg, db); err != nil {
		return fmt.Errorf("failed to prepare database: %w", err)
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: services.EventsExchange})
		if err != nil {
			log.Printf("Warning: events disabled, RabbitMQ unavailable: %v", err)
		} else {
			defer mqClient.Close()
			publisher = mqClient
			if err := mqClient.ConsumeEvents(rabbitmq.LogEvent); err != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", err)
			}
		}
	}

	fiberApp, a := NewApp(cfg, db, publisher)

	if cfg.DBReset && cfg.SeedData {
		if err := a.seed(); err != nil {
			return fmt.Errorf("failed to seed data: %w", err)
		}
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- fiberApp.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}
	log.Println("Shutting down server...")

	if err := fiberApp.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	return nil
}
