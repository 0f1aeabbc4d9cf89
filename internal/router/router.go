package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateExcursion(c *ginext.Context)
	ListExcursions(c *ginext.Context)
	PutSlots(c *ginext.Context)
	ExcursionAvailability(c *ginext.Context)
	CreateLodging(c *ginext.Context)
	ListLodgings(c *ginext.Context)
	PutNights(c *ginext.Context)
	LodgingAvailability(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	TransitionBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Excursions
		api.POST("/excursions", h.CreateExcursion)
		api.GET("/excursions", h.ListExcursions)
		api.PUT("/excursions/:id/slots", h.PutSlots)
		api.GET("/excursions/:id/availability", h.ExcursionAvailability)

		// Lodgings
		api.POST("/lodgings", h.CreateLodging)
		api.GET("/lodgings", h.ListLodgings)
		api.PUT("/lodgings/:id/nights", h.PutNights)
		api.GET("/lodgings/:id/availability", h.LodgingAvailability)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/transitions", h.TransitionBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Users
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
