// File: tablebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablebook/config"
	"tablebook/database"
	bookingRepo "tablebook/database/repository/booking"
	"tablebook/handlers"
	"tablebook/middleware"
	"tablebook/routes"
	"tablebook/services/auth"
	"tablebook/services/booking"
	"tablebook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo(config.AppConfig.StrictSlots)

	// services.
	bookingService := &booking.DefaultBookingService{Repo: bookings}
	availabilityService := &booking.DefaultAvailabilityService{Repo: bookings}

	sessionStore := auth.NewRedisSessionStore(utils.GetSessionClient())
	sessionService := &auth.DefaultSessionService{
		Verifier: auth.VerifierFromConfig(),
		Store:    sessionStore,
		TTL:      time.Duration(config.AppConfig.SessionTTLHours) * time.Hour,
	}

	authHandler := handlers.NewAuthHandler(sessionService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionService,

		LoginHandler:     authHandler.LoginHandler,
		LogoutHandler:    authHandler.LogoutHandler,
		CheckAuthHandler: authHandler.CheckAuthHandler,

		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		ListBookingsHandler:  bookingHandler.ListBookingsHandler,

		GetAvailabilityHandler: availabilityHandler.GetAvailabilityHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionClient(), database.MongoClient)

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
