//go:build wireinject
// +build wireinject

package di

import (
	"boatsandjoy/config"
	"boatsandjoy/infras/kafka"
	"boatsandjoy/infras/otel"
	"boatsandjoy/infras/postgres"
	"boatsandjoy/infras/redis"
	boatHandler "boatsandjoy/internal/handlers/boat"
	bookingHandler "boatsandjoy/internal/handlers/booking"
	healthHandler "boatsandjoy/internal/handlers/health"
	"boatsandjoy/shared/cache"
	"boatsandjoy/shared/mailer"
	"boatsandjoy/transport/http"
	"boatsandjoy/transport/http/middleware"
	"boatsandjoy/transport/http/router"

	boatRepository "boatsandjoy/internal/domains/boat/repository"
	boatService "boatsandjoy/internal/domains/boat/service"
	"boatsandjoy/internal/domains/booking/gateway"
	bookingRepository "boatsandjoy/internal/domains/booking/repository"
	bookingService "boatsandjoy/internal/domains/booking/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	mailer.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	gateway.NewStripe,
	bookingService.New,
)

var boatDomain = wire.NewSet(
	boatRepository.New,
	boatRepository.NewSlots,
	boatService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	boatDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	boatHandler.New,
	healthHandler.New,
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
