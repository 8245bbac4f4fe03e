package routes

import (
	"time"

	"stayhaven/config"
	"stayhaven/handlers"
	"stayhaven/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Auth    *handlers.AuthHandler
	Booking *handlers.BookingHandler
	Room    *handlers.RoomHandler
	Offer   *handlers.OfferHandler
}

// RegisterAuthRoutes registers identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/signup", hb.Auth.RegisterHandler)
		auth.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		auth.Use(middleware.JWTAuthMiddleware())
		auth.POST("/logout", hb.Auth.LogoutHandler)
		auth.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. Every
// route requires authentication; the static /my-bookings path is registered
// before the :id wildcard.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookings := r.Group("/bookings")
	{
		bookings.Use(middleware.JWTAuthMiddleware())
		bookings.POST("", hb.Booking.CreateBookingHandler)
		bookings.GET("", hb.Booking.ListBookingsHandler)
		bookings.GET("/my-bookings", hb.Booking.MyBookingsHandler)
		bookings.GET("/:id", hb.Booking.GetBookingHandler)
		bookings.PATCH("/:id/cancel", hb.Booking.CancelBookingHandler)
		bookings.PATCH("/:id/status", middleware.RequireAdmin(), hb.Booking.SetStatusHandler)
		bookings.DELETE("/:id", middleware.RequireAdmin(), hb.Booking.DeleteBookingHandler)
	}
}

// RegisterRoomRoutes registers the room catalog endpoints. Browsing is
// public; catalog mutation is admin only.
func RegisterRoomRoutes(r *gin.Engine, hb *HandlerBundle) {
	hotels := r.Group("/hotels")
	{
		hotels.GET("", hb.Room.ListRoomsHandler)
		hotels.GET("/available", hb.Room.AvailableRoomsHandler)
		hotels.GET("/stats", hb.Room.StatsHandler)
		hotels.GET("/:id", hb.Room.GetRoomHandler)

		admin := hotels.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
		admin.POST("", hb.Room.CreateRoomHandler)
		admin.PUT("/:id", hb.Room.UpdateRoomHandler)
		admin.DELETE("/:id", hb.Room.DeleteRoomHandler)
		admin.POST("/:id/images", hb.Room.UploadImageHandler)
	}
}

// RegisterOfferRoutes registers the discount offer endpoints.
func RegisterOfferRoutes(r *gin.Engine, hb *HandlerBundle) {
	offers := r.Group("/offers")
	{
		offers.GET("", hb.Offer.ListOffersHandler)
		offers.GET("/:id", hb.Offer.GetOfferHandler)

		admin := offers.Group("")
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())
		admin.POST("", hb.Offer.CreateOfferHandler)
		admin.PUT("/:id", hb.Offer.UpdateOfferHandler)
		admin.DELETE("/:id", hb.Offer.DeleteOfferHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	origins := []string{"http://localhost:3000"}
	if config.AppConfig.ClientURL != "" {
		origins = []string{config.AppConfig.ClientURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterOfferRoutes(r, hb)
	RegisterHealthRoute(r)
}
