package router

import (
	"net/http"

	"github.com/stpnv0/SocietyBooker/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	RequestChallenge(c *ginext.Context)
	Verify(c *ginext.Context)

	FindAvailable(c *ginext.Context)
	OpenEvents(c *ginext.Context)
	RequestBooking(c *ginext.Context)
	ListMine(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	Dashboard(c *ginext.Context)

	CreatePool(c *ginext.Context)
	ListPools(c *ginext.Context)
	CreateResource(c *ginext.Context)
	SetMaintenance(c *ginext.Context)
	DeleteResource(c *ginext.Context)
	ResourceHolder(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	CreateMember(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ApproveBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	ReleaseBooking(c *ginext.Context)
	MarkPaid(c *ginext.Context)
}

func InitRouter(mode string, h Handler, tokens middleware.TokenParser, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/challenge", h.RequestChallenge)
		api.POST("/auth/verify", h.Verify)
	}

	member := api.Group("", middleware.Auth(tokens))
	{
		member.GET("/resources/available", h.FindAvailable)
		member.GET("/events/open", h.OpenEvents)
		member.GET("/dashboard", h.Dashboard)

		// Bookings
		member.POST("/bookings", h.RequestBooking)
		member.GET("/bookings/mine", h.ListMine)
		member.POST("/bookings/:id/cancel", h.CancelBooking)
	}

	admin := api.Group("/admin", middleware.Auth(tokens), middleware.RequireAdmin())
	{
		// Inventory
		admin.POST("/pools", h.CreatePool)
		admin.GET("/pools", h.ListPools)
		admin.POST("/resources", h.CreateResource)
		admin.POST("/resources/:id/maintenance", h.SetMaintenance)
		admin.DELETE("/resources/:id", h.DeleteResource)
		admin.GET("/resources/:id/booking", h.ResourceHolder)
		admin.POST("/events", h.CreateEvent)
		admin.POST("/members", h.CreateMember)

		// Approval queue
		admin.GET("/bookings", h.ListBookings)
		admin.POST("/bookings/:id/approve", h.ApproveBooking)
		admin.POST("/bookings/:id/reject", h.RejectBooking)
		admin.POST("/bookings/:id/release", h.ReleaseBooking)
		admin.POST("/bookings/:id/paid", h.MarkPaid)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
