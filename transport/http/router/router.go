package router

import (
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/customer"
	"frontdesk/internal/handlers/payment"
	"frontdesk/internal/handlers/report"
	"frontdesk/internal/handlers/room"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "frontdesk/docs"
)

type DomainHandlers struct {
	Room     room.Handler
	Customer customer.Handler
	Booking  booking.Handler
	Payment  payment.Handler
	Report   report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
