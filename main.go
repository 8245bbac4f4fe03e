package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayhaven/config"
	"stayhaven/cron"
	"stayhaven/database"
	bookingRepoPkg "stayhaven/database/repository/booking"
	offerRepoPkg "stayhaven/database/repository/offer"
	roomRepoPkg "stayhaven/database/repository/room"
	userRepoPkg "stayhaven/database/repository/user"
	"stayhaven/handlers"
	"stayhaven/middleware"
	"stayhaven/routes"
	bookingSvc "stayhaven/services/booking"
	offerSvc "stayhaven/services/offer"
	roomSvc "stayhaven/services/room"
	userSvc "stayhaven/services/user"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Image storage is optional; upload endpoints report unavailable when
	// cloudinary is not configured.
	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable: %v", err)
		storageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	offerRepo := offerRepoPkg.NewMongoOfferRepo()

	// services.
	bookingService := &bookingSvc.DefaultBookingService{
		Repo:      bookingRepo,
		RoomRepo:  roomRepo,
		UserRepo:  userRepo,
		MaxGuests: config.AppConfig.MaxGuestsPerBooking,
	}
	roomService := &roomSvc.DefaultRoomService{
		Repo:        roomRepo,
		BookingRepo: bookingRepo,
		Cache:       utils.NewRedisCache(utils.GetCacheClient()),
	}
	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}
	offerService := &offerSvc.DefaultOfferService{
		Repo:     offerRepo,
		RoomRepo: roomRepo,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Auth:    handlers.NewAuthHandler(userService),
		Booking: handlers.NewBookingHandler(bookingService),
		Room:    handlers.NewRoomHandler(roomService, storageService),
		Offer:   handlers.NewOfferHandler(offerService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background sweeps and dependency health checks.
	cron.InitSweepWorker(bookingRepo, offerRepo)
	utils.StartHealthMonitor(database.MongoClient, utils.GetCacheClient(), utils.GetAuthCacheClient())

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
