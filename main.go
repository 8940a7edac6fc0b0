package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hotllink-backend/config"
	"hotllink-backend/controllers"
	"hotllink-backend/repositories"
	"hotllink-backend/routes"
	"hotllink-backend/services"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		log.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set. Cannot issue session tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Info("Database connection established and catalog seeded")

	userRepo := repositories.NewUserRepository(db)
	hotelRepo := repositories.NewHotelRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)

	authService := services.NewAuthService(userRepo, jwtSecret)
	hotelService := services.NewHotelService(hotelRepo)
	bookingService := services.NewBookingService(bookingRepo)
	conciergeService := services.NewConciergeService(log)

	authController := controllers.NewAuthController(authService, log)
	hotelController := controllers.NewHotelController(hotelService, log)
	bookingController := controllers.NewBookingController(bookingService, log)
	conciergeController := controllers.NewConciergeController(conciergeService)

	router := routes.SetupRouter(authController, hotelController, bookingController, conciergeController, jwtSecret, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Warn("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
