package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"frontdesk/config"
	_ "frontdesk/docs"
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/communication"
	"frontdesk/internal/handlers/dashboard"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/integration"
	"frontdesk/internal/handlers/maintenance"
	"frontdesk/internal/handlers/payment"
	"frontdesk/internal/handlers/room"
	"frontdesk/internal/handlers/setting"
	"frontdesk/internal/handlers/staff"
	"frontdesk/internal/handlers/user"
	"frontdesk/transport/http/middleware"
)

type DomainHandlers struct {
	Auth          auth.Handler
	Booking       booking.Handler
	Communication communication.Handler
	Dashboard     dashboard.Handler
	Guest         guest.Handler
	Integration   integration.Handler
	Maintenance   maintenance.Handler
	Payment       payment.Handler
	Room          room.Handler
	Setting       setting.Handler
	Staff         staff.Handler
	User          user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.App
	AuthMiddleware middleware.AuthRole
	Config         *config.Config
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.App, authMiddleware middleware.AuthRole, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
		Config:         cfg,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit)

	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.APIKey)
		routerGroup.Use(r.AuthMiddleware.Auth)
		routerGroup.Use(r.AuthMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Communication.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Integration.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.Payment.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Setting.Router(routerGroup)
		r.DomainHandlers.Staff.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}
