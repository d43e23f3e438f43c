package router

import (
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/duty"
	"frontdesk/internal/handlers/push"
	"frontdesk/internal/handlers/queue"
	"frontdesk/internal/handlers/report"
	"frontdesk/internal/handlers/reservation"
	"frontdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Reservation reservation.Handler
	Queue       queue.Handler
	Report      report.Handler
	Duty        duty.Handler
	Push        push.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Queue.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
		r.DomainHandlers.Duty.Router(routerGroup)
		r.DomainHandlers.Push.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
