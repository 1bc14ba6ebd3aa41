package routes

import (
	"net/http"
	"time"

	"hotelify/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterInvoiceRoutes registers billing endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, ih *handlers.InvoiceHandler) {
	api := r.Group("/api/invoices")
	{
		api.POST("/create/:reservationId", ih.CreateInvoiceHandler)
		api.PUT("/pay/:id", ih.PayInvoiceHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Hotelify"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ih *handlers.InvoiceHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterInvoiceRoutes(r, ih)
	RegisterHealthRoute(r)
}
