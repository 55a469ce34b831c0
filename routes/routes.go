package routes

import (
	"net/http"
	"strings"
	"time"

	"markhamtaxi/handlers"
	"markhamtaxi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers the JSON API endpoints.
func RegisterAPIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Markham Taxi API online"})
		})

		api.POST("/status", hb.Status.CreateStatusHandler)
		api.GET("/status", hb.Status.ListStatusHandler)

		api.POST("/book", hb.Booking.CreateBookingHandler)
		api.GET("/bookings", hb.Booking.ListBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// background monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterStaticRoutes serves the booking-form client.
func RegisterStaticRoutes(r *gin.Engine) {
	r.StaticFile("/", "./web/static/index.html")
	r.Static("/static", "./web/static")
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
// The CORS allow-list comes from configuration; "*" allows every origin.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, corsOrigins string) {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if corsOrigins == "" || corsOrigins == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = strings.Split(corsOrigins, ",")
		cfg.AllowCredentials = true
	}
	r.Use(cors.New(cfg))

	RegisterAPIRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterStaticRoutes(r)
}
