package main

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"taskdeck/internal/cache"
	"taskdeck/internal/config"
	"taskdeck/internal/db"
	"taskdeck/internal/handler"
	"taskdeck/internal/mail"
	"taskdeck/internal/model"
	"taskdeck/internal/repository"
	"taskdeck/internal/router"
	"taskdeck/internal/service"
	"taskdeck/internal/session"
	"taskdeck/internal/view"
)

func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("view init: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Task{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessions := session.NewManager(cfg.SessionSecret, cacheClient)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)

	// Initialize services
	mailer := mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword,
		cfg.SMTPSender, cfg.ContactRecipient, cfg.SMTPTimeout)
	authService := service.NewAuthService(userRepo)
	taskService := service.NewTaskService(taskRepo)
	contactService := service.NewContactService(mailer)

	// Initialize handlers
	pageHandler := handler.NewPageHandler(sessions)
	authHandler := handler.NewAuthHandler(authService, sessions)
	taskHandler := handler.NewTaskHandler(taskService, sessions)
	contactHandler := handler.NewContactHandler(contactService, sessions)

	// Register routes
	router.Register(e, sessions, pageHandler, authHandler, taskHandler, contactHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
