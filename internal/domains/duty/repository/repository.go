package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"frontdesk/infras/database"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/duty/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gRepo "frontdesk/shared/repository"
	"time"
)

type DutyRequest interface {
	Insert(ctx context.Context, model model.DutyRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DutyRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DutyRequest, error)
	// Respond resolves a pending request in a single conditional write. It fails with
	// gRepo.ErrNotFound or gRepo.ErrPreconditionFailed.
	Respond(ctx context.Context, id string, to model.Status, actor string, now time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.DutyRequest]
	otel otel.Otel
}

func New(db *database.Connection, otel otel.Otel) DutyRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DutyRequest](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) Respond(ctx context.Context, id string, to model.Status, actor string, now time.Time) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".duty.Respond")
	defer scope.End()
	defer scope.TraceIfError(err)

	precondition := gDto.Filter{
		ArgName:  model.ArgExpectedStatus,
		Field:    model.FieldStatus,
		Value:    model.StatusPending,
		Operator: gDto.FilterOperatorEq,
	}

	return r.UpdateIf(ctx, model.ResponseFields(to, actor, now), shared.FilterByID(id, model.FieldID, ""), precondition) //nolint:wrapcheck
}
