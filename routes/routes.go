package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"frontdesk-backend/controllers"
	"frontdesk-backend/middleware"
	"frontdesk-backend/models"
	"frontdesk-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Controllers groups everything SetupRouter mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	Rooms   *controllers.RoomController
	Guests  *controllers.GuestController
	Billing *controllers.BillingController
	History *controllers.HistoryController
	Orders  *controllers.OrderController
	Menu    *controllers.MenuController
	OTP     *controllers.OTPController
	Booking *controllers.BookingController
	Staff   *controllers.StaffController
	Hotels  *controllers.HotelController
}

// SetupRouter wires middleware and routes. The public surface is the
// guest-facing booking/dine-in flow; everything else sits behind staff
// auth with capability checks per operation.
func SetupRouter(ctl Controllers, auth *services.AuthService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public guest paths
		api.POST("/otp", ctl.OTP.IssueOTP)
		api.POST("/guests", middleware.OptionalAuth(auth), ctl.Guests.CreateGuest)
		api.GET("/menu", ctl.Menu.GetMenu)
		// Dine-in page orders are public; identity was already verified
		// at check-in and orders only bill an occupied room's stay.
		api.POST("/orders", ctl.Orders.CreateOrder)
		api.POST("/auth/login", ctl.Auth.Login)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", ctl.Booking.CreateBooking)
			bookings.POST("/:id/confirm", ctl.Booking.ConfirmBooking)
			bookings.POST("/:id/cancel", middleware.Auth(auth), ctl.Booking.CancelBooking)
			bookings.GET("", middleware.Auth(auth), ctl.Booking.GetBookings)
		}

		// Staff paths
		staff := api.Group("", middleware.Auth(auth))
		{
			rooms := staff.Group("/rooms")
			{
				rooms.GET("", ctl.Rooms.GetRooms)
				rooms.POST("", middleware.RequirePermission("manageRooms"), ctl.Rooms.CreateRoom)
				rooms.PUT("/:id", middleware.RequirePermission("manageRooms"), ctl.Rooms.UpdateRoom)
				rooms.DELETE("/:id", middleware.RequirePermission("manageRooms"), ctl.Rooms.DeleteRoom)
			}

			staff.GET("/guests", ctl.Guests.GetGuests)
			staff.PUT("/guests/:id", middleware.RequirePermission("editGuests"), ctl.Guests.UpdateGuest)

			billing := staff.Group("/billing")
			{
				billing.POST("/checkout", ctl.Billing.Checkout)
				billing.GET("/preview", ctl.Billing.Preview)
			}

			staff.GET("/history", ctl.History.GetHistory)

			orders := staff.Group("/orders")
			{
				orders.GET("", ctl.Orders.GetOrders)
				orders.PUT("/:id/status", ctl.Orders.UpdateOrderStatus)
			}

			menu := staff.Group("/menu")
			{
				menu.GET("/all", ctl.Menu.GetFullMenu)
				menu.POST("", middleware.RequirePermission("manageRooms"), ctl.Menu.CreateMenuItem)
				menu.PUT("/:id", middleware.RequirePermission("manageRooms"), ctl.Menu.UpdateMenuItem)
				menu.DELETE("/:id", middleware.RequirePermission("manageRooms"), ctl.Menu.DeleteMenuItem)
			}

			admin := staff.Group("", middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/staff", ctl.Staff.GetStaff)
				admin.POST("/staff", ctl.Staff.CreateStaff)
				admin.DELETE("/staff/:id", ctl.Staff.DeleteStaff)

				admin.GET("/hotels", ctl.Hotels.GetHotels)
				admin.POST("/hotels", ctl.Hotels.CreateHotel)
			}
		}
	}

	return r
}
