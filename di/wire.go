//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/database"
	"frontdesk/infras/jwt"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/rabbitmq"
	"frontdesk/infras/redis"
	"frontdesk/infras/s3"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/transport/consumer"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	"github.com/google/wire"

	authService "frontdesk/internal/domains/auth/service"
	dutyRepository "frontdesk/internal/domains/duty/repository"
	dutyService "frontdesk/internal/domains/duty/service"
	"frontdesk/internal/domains/notification/dispatcher"
	"frontdesk/internal/domains/notification/pusher"
	notificationRepository "frontdesk/internal/domains/notification/repository"
	notificationService "frontdesk/internal/domains/notification/service"
	queueService "frontdesk/internal/domains/queue/service"
	reportService "frontdesk/internal/domains/report/service"
	reservationRepository "frontdesk/internal/domains/reservation/repository"
	reservationService "frontdesk/internal/domains/reservation/service"
	userRepository "frontdesk/internal/domains/user/repository"
	authHandler "frontdesk/internal/handlers/auth"
	dutyHandler "frontdesk/internal/handlers/duty"
	pushHandler "frontdesk/internal/handlers/push"
	queueHandler "frontdesk/internal/handlers/queue"
	reportHandler "frontdesk/internal/handlers/report"
	reservationHandler "frontdesk/internal/handlers/reservation"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	rabbitmq.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var notificationDomain = wire.NewSet(
	notificationRepository.NewSubscription,
	notificationRepository.NewDelivery,
	pusher.New,
	notificationService.New,
	wire.Bind(new(dispatcher.Deliverer), new(notificationService.Notification)),
	dispatcher.NewTransport,
	dispatcher.New,
	notificationService.NewAnnouncer,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
	queueService.New,
	reportService.New,
)

var staffDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	dutyRepository.New,
	dutyService.New,
)

var domains = wire.NewSet(
	notificationDomain,
	reservationDomain,
	staffDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	reservationHandler.New,
	queueHandler.New,
	reportHandler.New,
	dutyHandler.New,
	pushHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

func InitializeWorker() *consumer.Consumer {
	wire.Build(
		config.Get,
		database.New,
		otel.New,
		kafka.New,
		rabbitmq.New,
		notificationRepository.NewSubscription,
		notificationRepository.NewDelivery,
		pusher.New,
		notificationService.New,
		wire.Bind(new(dispatcher.Deliverer), new(notificationService.Notification)),
		consumer.New,
	)

	return &consumer.Consumer{}
}
