package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"frontdesk/infras/database"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	// Transition moves the reservation from one status to the next in a single conditional
	// write. It fails with gRepo.ErrNotFound or gRepo.ErrPreconditionFailed.
	Transition(ctx context.Context, id string, from, to model.Status, stamp model.Stamp) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) Transition(ctx context.Context, id string, from, to model.Status, stamp model.Stamp) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{"reservation.id": id, "status.from": string(from), "status.to": string(to)})

	precondition := gDto.Filter{
		ArgName:  model.ArgExpectedStatus,
		Field:    model.FieldStatus,
		Value:    from,
		Operator: gDto.FilterOperatorEq,
	}

	return r.UpdateIf(ctx, stamp.Fields(to), shared.FilterByID(id, model.FieldID, ""), precondition) //nolint:wrapcheck
}
