// File: hotelify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelify/config"
	"hotelify/database"
	hotelRepoPkg "hotelify/database/repository/hotel"
	invoiceRepoPkg "hotelify/database/repository/invoice"
	reservationRepoPkg "hotelify/database/repository/reservation"
	roomRepoPkg "hotelify/database/repository/room"
	userRepoPkg "hotelify/database/repository/user"
	"hotelify/handlers"
	"hotelify/middleware"
	"hotelify/routes"
	"hotelify/services/billing"
	"hotelify/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	hotelRepo := hotelRepoPkg.NewMongoHotelRepo()
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	receiptRenderer := billing.NewFileReceiptRenderer(
		logger,
		reservationRepo,
		hotelRepo,
		roomRepo,
		userRepo,
		config.AppConfig.ReceiptsDir,
	)
	billingService := billing.NewBillingService(
		logger,
		invoiceRepo,
		reservationRepo,
		hotelRepo,
		receiptRenderer,
	)

	invoiceHandler := handlers.NewInvoiceHandler(billingService)

	// Register routes.
	routes.RegisterRoutes(router, invoiceHandler)

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
