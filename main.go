// File: markhamtaxi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"markhamtaxi/config"
	"markhamtaxi/database"
	bookingRepo "markhamtaxi/database/repository/booking"
	statusRepo "markhamtaxi/database/repository/status"
	"markhamtaxi/handlers"
	"markhamtaxi/routes"
	"markhamtaxi/services/booking"
	"markhamtaxi/services/notification"
	"markhamtaxi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		// Logger config depends on ENV, which has a default even here.
		utils.GetLogger().Sugar().Fatalf("main: %v", err)
	}
	logger := utils.GetLogger()

	// Process-scoped clients: constructed once at startup, injected into
	// handlers, released during shutdown.
	mongoClient, err := database.Connect(context.Background(), config.AppConfig.MongoURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DBName)
	utils.StartHealthMonitor(mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(db)
	statuses := statusRepo.NewMongoStatusRepo(db)

	// services.
	notifier := notification.NewTwilioNotifier(config.AppConfig)
	bookingService := &booking.DefaultBookingService{
		Repo:     bookings,
		Notifier: notifier,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Status:  handlers.NewStatusHandler(statuses, logger),
	}

	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.CORSOrigins)

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

	if err := database.Disconnect(context.Background(), mongoClient); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	} else {
		logger.Sugar().Info("main: database connection closed")
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
