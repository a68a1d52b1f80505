package main

import (
	"net/http"
	"strings"

	"trip-platform/internal/access"
	"trip-platform/internal/activity"
	"trip-platform/internal/auth"
	"trip-platform/internal/httpapi"
	"trip-platform/internal/obs"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers and opts them into activity
// logging. Keep this file free of business logic.
func registerRoutes(r *gin.Engine, h httpapi.Handlers, table *activity.Table, a *auth.Authenticator) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(obs.Handler()))

	api := r.Group("/api")

	api.GET("/me", auth.RequireUser(a), func(c *gin.Context) {
		rec, _ := auth.IdentityFrom(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"data": rec})
	})

	// ACCOMMODATION routes. Reads are public, writes are staff only.
	acc := tracked{table: table, g: api.Group("/accommodations")}
	acc.g.Use(access.StaffOrReadOnly())
	{
		acc.handle(http.MethodGet, "", "Accommodation", h.ListAccommodations)
		acc.handle(http.MethodGet, "/:id", "Accommodation", h.GetAccommodation)
		acc.handle(http.MethodPost, "", "Accommodation", h.CreateAccommodation)
		acc.handle(http.MethodPut, "/:id", "Accommodation", h.UpdateAccommodation)
		acc.handle(http.MethodPatch, "/:id", "Accommodation", h.UpdateAccommodation)
		acc.handle(http.MethodDelete, "/:id", "Accommodation", h.DeleteAccommodation)

		acc.handle(http.MethodGet, "/:id/room-types", "Room Type", h.ListRoomTypes)
		acc.handle(http.MethodPost, "/:id/room-types", "Room Type", h.CreateRoomType)

		acc.handle(http.MethodGet, "/:id/guest-services", "Guest Service", h.ListGuestServices)
		acc.handle(http.MethodGet, "/:id/feedback", "Feedback Review", h.ListFeedback)
	}

	// Price quotes are public despite being POSTs; they mutate nothing.
	quotes := tracked{table: table, g: api.Group("")}
	{
		quotes.handleAction(http.MethodPost, "/accommodations/calculate-price", "Accommodation", "calculate_price", h.CalculateStayPrice)
		quotes.handleAction(http.MethodPost, "/restaurants/calculate-price", "Online Order", "calculate_price", h.CalculateOrderPrice)
	}

	// BOOKING routes, caller scoped.
	bookings := tracked{table: table, g: api.Group("/bookings")}
	bookings.g.Use(auth.RequireUser(a))
	{
		bookings.handle(http.MethodGet, "", "Room Booking", h.ListBookings)
		bookings.handle(http.MethodPost, "", "Room Booking", h.CreateBooking)
	}

	feedback := tracked{table: table, g: api.Group("/feedback")}
	feedback.g.Use(auth.RequireUser(a))
	{
		feedback.handle(http.MethodPost, "", "Feedback Review", h.CreateFeedback)
	}

	// RESTAURANT routes. Same access split as accommodations.
	rest := tracked{table: table, g: api.Group("/restaurants")}
	rest.g.Use(access.StaffOrReadOnly())
	{
		rest.handle(http.MethodGet, "", "Restaurant", h.ListRestaurants)
		rest.handle(http.MethodGet, "/:id", "Restaurant", h.GetRestaurant)
		rest.handle(http.MethodPost, "", "Restaurant", h.CreateRestaurant)
		rest.handle(http.MethodPut, "/:id", "Restaurant", h.UpdateRestaurant)
		rest.handle(http.MethodPatch, "/:id", "Restaurant", h.UpdateRestaurant)
		rest.handle(http.MethodDelete, "/:id", "Restaurant", h.DeleteRestaurant)

		rest.handle(http.MethodGet, "/:id/menu-items", "Menu Item", h.ListMenuItems)
		rest.handle(http.MethodPost, "/:id/menu-items", "Menu Item", h.CreateMenuItem)
	}

	orders := tracked{table: table, g: api.Group("/orders")}
	orders.g.Use(auth.RequireUser(a))
	{
		orders.handle(http.MethodGet, "", "Online Order", h.ListOrders)
		orders.handle(http.MethodPost, "", "Online Order", h.CreateOrder)
	}

	// TOURIST INFORMATION routes. Same access split as accommodations.
	dest := tracked{table: table, g: api.Group("/destinations")}
	dest.g.Use(access.StaffOrReadOnly())
	{
		dest.handle(http.MethodGet, "", "Destination", h.ListDestinations)
		dest.handle(http.MethodGet, "/:id", "Destination", h.GetDestination)
		dest.handle(http.MethodPost, "", "Destination", h.CreateDestination)
		dest.handle(http.MethodPut, "/:id", "Destination", h.UpdateDestination)
		dest.handle(http.MethodPatch, "/:id", "Destination", h.UpdateDestination)
		dest.handle(http.MethodDelete, "/:id", "Destination", h.DeleteDestination)
	}

	tours := tracked{table: table, g: api.Group("/tours")}
	tours.g.Use(access.StaffOrReadOnly())
	{
		tours.handle(http.MethodGet, "", "Tour", h.ListTours)
		tours.handle(http.MethodGet, "/:id", "Tour", h.GetTour)
		tours.handle(http.MethodPost, "", "Tour", h.CreateTour)
	}

	events := tracked{table: table, g: api.Group("/event-notifications")}
	events.g.Use(access.StaffOrReadOnly())
	{
		events.handle(http.MethodGet, "", "Event Notification", h.ListEventNotifications)
		events.handle(http.MethodPost, "", "Event Notification", h.CreateEventNotification)
	}

	tourBookings := tracked{table: table, g: api.Group("/tour-bookings")}
	tourBookings.g.Use(auth.RequireUser(a))
	{
		tourBookings.handle(http.MethodGet, "", "Tour Booking", h.ListTourBookings)
		tourBookings.handle(http.MethodPost, "", "Tour Booking", h.CreateTourBooking)
	}
}

// tracked registers each route with gin and with the activity table in one
// step, so classification always matches the route tree.
type tracked struct {
	table *activity.Table
	g     *gin.RouterGroup
}

func (t tracked) handle(method, rel, resource string, handlers ...gin.HandlerFunc) {
	t.table.Register(method, joinPath(t.g.BasePath(), rel), resource)
	t.g.Handle(method, rel, handlers...)
}

func (t tracked) handleAction(method, rel, resource, action string, handlers ...gin.HandlerFunc) {
	t.table.RegisterAction(method, joinPath(t.g.BasePath(), rel), resource, action)
	t.g.Handle(method, rel, handlers...)
}

func joinPath(base, rel string) string {
	if rel == "" {
		return base
	}
	return strings.TrimRight(base, "/") + rel
}
