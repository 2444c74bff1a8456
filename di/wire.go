//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/redis"
	"frontdesk/infras/stripe"
	"frontdesk/internal/workers/messaging"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/google/wire"

	authService "frontdesk/internal/domains/auth/service"
	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	communicationRepository "frontdesk/internal/domains/communication/repository"
	communicationService "frontdesk/internal/domains/communication/service"
	dashboardService "frontdesk/internal/domains/dashboard/service"
	guestRepository "frontdesk/internal/domains/guest/repository"
	guestService "frontdesk/internal/domains/guest/service"
	integrationService "frontdesk/internal/domains/integration/service"
	maintenanceRepository "frontdesk/internal/domains/maintenance/repository"
	maintenanceService "frontdesk/internal/domains/maintenance/service"
	paymentRepository "frontdesk/internal/domains/payment/repository"
	paymentService "frontdesk/internal/domains/payment/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"
	settingRepository "frontdesk/internal/domains/setting/repository"
	settingService "frontdesk/internal/domains/setting/service"
	staffRepository "frontdesk/internal/domains/staff/repository"
	staffService "frontdesk/internal/domains/staff/service"
	userRepository "frontdesk/internal/domains/user/repository"
	userService "frontdesk/internal/domains/user/service"

	authHandler "frontdesk/internal/handlers/auth"
	bookingHandler "frontdesk/internal/handlers/booking"
	communicationHandler "frontdesk/internal/handlers/communication"
	dashboardHandler "frontdesk/internal/handlers/dashboard"
	guestHandler "frontdesk/internal/handlers/guest"
	integrationHandler "frontdesk/internal/handlers/integration"
	maintenanceHandler "frontdesk/internal/handlers/maintenance"
	paymentHandler "frontdesk/internal/handlers/payment"
	roomHandler "frontdesk/internal/handlers/room"
	settingHandler "frontdesk/internal/handlers/setting"
	staffHandler "frontdesk/internal/handlers/staff"
	userHandler "frontdesk/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	stripe.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
)

var maintenanceDomain = wire.NewSet(
	maintenanceRepository.New,
	maintenanceService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var communicationDomain = wire.NewSet(
	communicationRepository.New,
	communicationService.New,
)

var settingDomain = wire.NewSet(
	settingRepository.New,
	settingService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var integrationDomain = wire.NewSet(
	integrationService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	staffDomain,
	maintenanceDomain,
	paymentDomain,
	communicationDomain,
	settingDomain,
	userDomain,
	authDomain,
	dashboardDomain,
	integrationDomain,
)

var workers = wire.NewSet(
	messaging.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	communicationHandler.New,
	dashboardHandler.New,
	guestHandler.New,
	integrationHandler.New,
	maintenanceHandler.New,
	paymentHandler.New,
	roomHandler.New,
	settingHandler.New,
	staffHandler.New,
	userHandler.New,
	router.New,
)

func InitializeServer() *Server {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		workers,
		routing,
		http.New,
		wire.Struct(new(Server), "*"),
	)

	return &Server{}
}
