package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes wires every route onto the engine.
func SetupRoutes(r *gin.Engine, d Deps) {
	handler := NewHandler(d)
	verify := VerifyToken(d.Verifier)

	r.GET("/", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := r.Group("/users")
	{
		users.POST("", handler.RegisterUser)
		users.GET("/:email", handler.GetUserByEmail)
	}

	tickets := r.Group("/tickets")
	{
		tickets.POST("", verify, handler.CreateTicket)
		tickets.GET("", handler.GetApprovedTickets)
		tickets.GET("/seller/:email", handler.GetTicketsBySeller)
		tickets.PUT("/:id", verify, handler.UpdateTicket)
		tickets.DELETE("/:id", verify, handler.DeleteTicket)
	}

	r.GET("/vendor/revenue/:email", handler.GetVendorRevenue)

	bookings := r.Group("/bookings")
	{
		bookings.POST("", verify, handler.CreateBooking)
		bookings.GET("/vendor/:email", handler.GetVendorBookings)
		bookings.PUT("/status/:id", verify, handler.UpdateBookingStatus)
	}

	admin := r.Group("/admin")
	admin.Use(verify)
	{
		admin.GET("/tickets", handler.GetAllTicketsAdmin)
		admin.PUT("/tickets/approve/:id", handler.ApproveTicket)
		admin.PUT("/tickets/reject/:id", handler.RejectTicket)
		admin.PUT("/tickets/advertise/:id", handler.ToggleAdvertise)
		admin.GET("/users", handler.GetAllUsers)
		admin.PUT("/users/make-admin/:id", handler.MakeAdmin)
		admin.PUT("/users/make-vendor/:id", handler.MakeVendor)
		admin.PUT("/users/mark-fraud/:id", handler.MarkFraud)
	}

	r.GET("/transactions/user/:email", handler.GetUserTransactions)
}
