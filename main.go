package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"frontdesk-backend/config"
	"frontdesk-backend/controllers"
	"frontdesk-backend/routes"
	"frontdesk-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("✅ Database connection established and migrations applied.")

	// Connect Redis (OTP store)
	if err := config.ConnectRedis(); err != nil {
		log.Fatalf("❌ Redis connect failed: %v", err)
	}

	// Initialize services
	authService := services.NewAuthService(db)
	guestService := services.NewGuestService(db)
	roomService := services.NewRoomService(db)
	billingService := services.NewBillingService(db)
	historyService := services.NewHistoryService(db)
	orderService := services.NewOrderService(db)
	menuService := services.NewMenuService(db)
	otpService := services.NewOTPService(config.RedisClient)
	bookingService := services.NewBookingService(db, guestService, otpService)
	staffService := services.NewStaffService(db)
	hotelService := services.NewHotelService(db)

	// Initialize controllers
	ctl := routes.Controllers{
		Auth:    controllers.NewAuthController(authService),
		Rooms:   controllers.NewRoomController(roomService),
		Guests:  controllers.NewGuestController(guestService, otpService),
		Billing: controllers.NewBillingController(billingService),
		History: controllers.NewHistoryController(historyService),
		Orders:  controllers.NewOrderController(orderService),
		Menu:    controllers.NewMenuController(menuService),
		OTP:     controllers.NewOTPController(otpService),
		Booking: controllers.NewBookingController(bookingService),
		Staff:   controllers.NewStaffController(staffService),
		Hotels:  controllers.NewHotelController(hotelService),
	}

	// Build router
	router := routes.SetupRouter(ctl, authService)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
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

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
