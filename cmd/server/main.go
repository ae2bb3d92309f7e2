package main

import (
	"fmt"
	"log"
	"net/http"

	"sairajtravels/internal/api"
	"sairajtravels/internal/config"
	"sairajtravels/internal/handlers/admin"
	"sairajtravels/internal/handlers/public"
	"sairajtravels/internal/middleware"
	"sairajtravels/internal/notify"
	"sairajtravels/internal/session"
	"sairajtravels/pkg/logger"
	"sairajtravels/routes"
	"sairajtravels/web"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
		Colors: cfg.App.Debug,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	client := api.NewClient(cfg.API, nil, appLogger)
	sessions := session.NewManager(client, cfg.Session, appLogger)

	notifier := notify.NewService()
	notifier.Register(func(state notify.State) {
		if !state.Visible {
			return
		}
		appLogger.WithFields(map[string]interface{}{
			"kind":    string(state.Kind),
			"message": state.Message,
		}).Debug("Notification shown")
	})

	publicHandler := public.NewHandler(client, notifier, appLogger)
	wizards := public.NewWizardStore(client)
	adminHandler := admin.NewHandler(client, sessions, notifier, appLogger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(appLogger))

	router.SetHTMLTemplate(web.Templates())

	routes.SetupPublicRoutes(router, publicHandler, wizards)
	routes.SetupAdminRoutes(router, adminHandler, sessions)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.WithField("addr", addr).Info("Starting server")
	log.Fatal(http.ListenAndServe(addr, router))
}
