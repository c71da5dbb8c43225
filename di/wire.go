//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/s3"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	archiveRepository "hotelier/internal/domains/archive/repository"
	archiveService "hotelier/internal/domains/archive/service"
	authService "hotelier/internal/domains/auth/service"
	billingRepository "hotelier/internal/domains/billing/repository"
	billingService "hotelier/internal/domains/billing/service"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	dashboardService "hotelier/internal/domains/dashboard/service"
	guestRepository "hotelier/internal/domains/guest/repository"
	guestService "hotelier/internal/domains/guest/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"
	userRepository "hotelier/internal/domains/user/repository"
	userService "hotelier/internal/domains/user/service"

	archiveHandler "hotelier/internal/handlers/archive"
	authHandler "hotelier/internal/handlers/auth"
	billingHandler "hotelier/internal/handlers/billing"
	bookingHandler "hotelier/internal/handlers/booking"
	dashboardHandler "hotelier/internal/handlers/dashboard"
	guestHandler "hotelier/internal/handlers/guest"
	roomHandler "hotelier/internal/handlers/room"
	userHandler "hotelier/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
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

var billingDomain = wire.NewSet(
	billingRepository.NewBill,
	billingRepository.NewItem,
	billingService.New,
)

var archiveDomain = wire.NewSet(
	archiveRepository.New,
	archiveService.New,
)

var dashboardDomain = wire.NewSet(
	dashboardService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	billingDomain,
	archiveDomain,
	dashboardDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	billingHandler.New,
	archiveHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
