package router

import (
	"hotelier/internal/handlers/archive"
	"hotelier/internal/handlers/auth"
	"hotelier/internal/handlers/billing"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/dashboard"
	"hotelier/internal/handlers/guest"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Room      room.Handler
	Guest     guest.Handler
	Booking   booking.Handler
	Billing   billing.Handler
	Archive   archive.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Billing.Router(routerGroup)
		r.DomainHandlers.Archive.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
