package main

import (
	"log"

	"github.com/agrisetu/registry-go/internal/api/middleware"
	"github.com/agrisetu/registry-go/internal/api/routes"
	"github.com/agrisetu/registry-go/internal/config"
	"github.com/agrisetu/registry-go/internal/config/db"
	"github.com/agrisetu/registry-go/internal/domain/audit"
	"github.com/agrisetu/registry-go/internal/domain/card"
	"github.com/agrisetu/registry-go/internal/domain/employee"
	"github.com/agrisetu/registry-go/internal/domain/farmer"
	"github.com/agrisetu/registry-go/internal/domain/fpo"
	"github.com/agrisetu/registry-go/internal/domain/registration"
	"github.com/agrisetu/registry-go/internal/domain/user"
	"github.com/agrisetu/registry-go/internal/notify"
	"github.com/agrisetu/registry-go/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	// Auto migrate database schemas
	if err := db.DB.AutoMigrate(
		&user.User{},
		&employee.Employee{},
		&farmer.Farmer{},
		&registration.Registration{},
		&card.IDCard{},
		&fpo.FPO{},
		&fpo.BoardMember{},
		&fpo.FarmService{},
		&fpo.TurnoverRecord{},
		&fpo.CropEntry{},
		&fpo.InputShop{},
		&fpo.ProductCategory{},
		&fpo.Product{},
		&fpo.FPOUser{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Object storage for KYC documents and cards
	store, err := storage.Init()
	if err != nil {
		log.Printf("Warning: document storage unavailable: %v", err)
		// The API still serves everything except uploads
		store = nil
	}

	publisher := notify.NewPublisher()
	defer publisher.Close()

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())

	routes.RegisterRoutes(router, store, publisher)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
