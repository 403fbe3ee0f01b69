package routes

import (
	"net/http"
	"time"

	"tablebook/config"
	"tablebook/handlers"
	"tablebook/middleware"
	"tablebook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the login/logout/check-auth endpoints.
// Check-auth stays open: it reports the session flag rather than gating on it.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/login", hb.LoginHandler)
		api.GET("/check-auth", hb.CheckAuthHandler)
		api.POST("/logout", middleware.SessionAuthMiddleware(hb.Sessions), hb.LogoutHandler)
	}
}

// RegisterBookingRoutes registers the gated booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", hb.ListBookingsHandler)
	}
}

// RegisterAvailabilityRoute registers the open availability endpoint.
func RegisterAvailabilityRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/availability", hb.GetAvailabilityHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// CORS is restricted to the configured origins; the session cookie requires
// the credentialed mode.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoute(r, hb)
	RegisterHealthRoute(r)
}
