package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"frontdesk/infras/database"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/notification/model"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Subscription interface {
	Insert(ctx context.Context, model model.Subscription) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Subscription, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Subscription, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Delivery interface {
	InsertBulk(ctx context.Context, models []model.Delivery) error
}

type subscriptionImpl struct {
	gRepo.Repository[model.Subscription]
}

type deliveryImpl struct {
	gRepo.Repository[model.Delivery]
}

func NewSubscription(db *database.Connection, otel otel.Otel) Subscription {
	return &subscriptionImpl{
		Repository: gRepo.NewRepository[model.Subscription](model.SubscriptionEntityName, model.SubscriptionTableName, db, otel),
	}
}

func NewDelivery(db *database.Connection, otel otel.Otel) Delivery {
	return &deliveryImpl{
		Repository: gRepo.NewRepository[model.Delivery](model.DeliveryEntityName, model.DeliveryTableName, db, otel),
	}
}
