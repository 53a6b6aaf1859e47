// File: atelier/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier/config"
	"atelier/database"
	bookingRepo "atelier/database/repository/booking"
	galleryRepo "atelier/database/repository/gallery"
	notebookRepo "atelier/database/repository/notebook"
	"atelier/handlers"
	"atelier/middleware"
	"atelier/routes"
	"atelier/services/assistant"
	"atelier/services/conversation"
	"atelier/services/gallery"
	"atelier/services/memory"
	"atelier/services/notebook"
	"atelier/services/scheduling"
	"atelier/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitNotebookCache()

	cld, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	photos := galleryRepo.NewMongoPhotoRepo()
	notebooks := notebookRepo.NewMongoNotebookRepo()

	// services.
	sessionStore := memory.NewRedisStore(utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLSeconds)*time.Second)
	chatLog := memory.NewRedisHistoryStore(utils.GetNotebookCacheClient())

	responder := assistant.NewGeminiResponder(config.AppConfig.GeminiAPIKey)
	calendarService := scheduling.NewDefaultCalendarService(bookings)
	conversationService := conversation.NewDefaultConversationService(sessionStore, responder, calendarService)
	photoService := gallery.NewDefaultPhotoService(cld, photos)
	notebookService := notebook.NewDefaultNotebookService(notebooks, responder, chatLog, cld)

	routes.RegisterRoutes(router, routes.Handlers{
		Conversation: handlers.NewConversationHandler(conversationService),
		Scheduling:   handlers.NewSchedulingHandler(calendarService),
		Gallery:      handlers.NewGalleryHandler(photoService),
		Contact:      handlers.NewContactHandler(responder),
		Notebook:     handlers.NewNotebookHandler(notebookService),
	})

	utils.StartHealthMonitor(utils.SessionCacheClient, utils.NotebookCacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
