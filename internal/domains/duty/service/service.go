package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/duty/model"
	"frontdesk/internal/domains/duty/model/dto"
	"frontdesk/internal/domains/duty/repository"
	"frontdesk/internal/domains/notification/dispatcher"
	notificationModel "frontdesk/internal/domains/notification/model"
	userRepo "frontdesk/internal/domains/user/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	msgNotFound         = "duty request not found"
	msgAlreadyProcessed = "duty request already answered"
)

// Duty handles duty-swap requests between roster members.
type Duty interface {
	Create(ctx context.Context, req dto.CreateDutyRequest, requester string, now time.Time) (dto.DutyRequestResponse, error)
	Pending(ctx context.Context, username string) (dto.DutyRequestsResponse, error)
	Respond(ctx context.Context, id, username string, accept bool, now time.Time) (dto.DutyRequestResponse, error)
}

type serviceImpl struct {
	repo       repository.DutyRequest
	users      userRepo.User
	dispatcher dispatcher.Dispatcher
	otel       otel.Otel
}

func New(repo repository.DutyRequest, users userRepo.User, dispatcher dispatcher.Dispatcher, otel otel.Otel) Duty {
	return &serviceImpl{
		repo:       repo,
		users:      users,
		dispatcher: dispatcher,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateDutyRequest, requester string, now time.Time) (res dto.DutyRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateDutyRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	from, err := s.users.Find(ctx, requester)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return res, failure.Unauthorized("session user no longer exists")
		}

		return res, fmt.Errorf("failed to look up requester: %w", err)
	}

	to, err := s.users.Find(ctx, req.ToUser)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return res, failure.BadRequestFromString("staff member not found")
		}

		return res, fmt.Errorf("failed to look up staff member: %w", err)
	}

	if to.Username == from.Username {
		return res, failure.BadRequestFromString("cannot request a duty change from yourself")
	}

	request := req.ToModel(from, to, timezone.ToAppTime(now))

	if err = s.repo.Insert(ctx, request); err != nil {
		log.Error().Err(err).Msg("failed to create duty request")

		return res, fmt.Errorf("failed to create duty request: %w", gRepo.AsFailure(err, model.EntityName))
	}

	event := notificationModel.NewEvent(notificationModel.KindDutyRequested, from.Username, request.CreatedAt)
	event.DutyRequestID = request.ID
	event.Recipient = to.Username
	event.Title = "Duty change request"
	event.Body = fmt.Sprintf("%s asks to swap %s for %s on %s", from.Name, request.FromTime, request.ToTime, request.DutyDate)
	s.dispatcher.Notify(ctx, event)

	res.FromModel(request)

	return res, nil
}

// Pending lists requests addressed to username that are still unanswered, newest first.
func (s *serviceImpl) Pending(ctx context.Context, username string) (res dto.DutyRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PendingDutyRequests")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.NewAndGroup(
		gDto.Filter{Field: model.FieldToUser, Value: username, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: model.StatusPending, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	requests, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pending duty requests")

		return res, fmt.Errorf("failed to get pending duty requests: %w", gRepo.AsFailure(err, model.EntityName))
	}

	res.FromModels(requests)

	return res, nil
}

// Respond answers a pending request. Only its addressee may answer and only once.
func (s *serviceImpl) Respond(ctx context.Context, id, username string, accept bool, now time.Time) (res dto.DutyRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RespondDutyRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	id = strings.TrimSpace(id)
	if id == "" {
		return res, failure.NotFound(msgNotFound)
	}

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get duty request")

		return res, fmt.Errorf("failed to get duty request: %w", gRepo.AsFailure(err, model.EntityName))
	}

	if current.ID == "" {
		return res, failure.NotFound(msgNotFound)
	}

	if !strings.EqualFold(current.ToUser, username) {
		return res, failure.Forbidden("only the addressee may answer this duty request")
	}

	if current.Status != model.StatusPending {
		return res, failure.InvalidTransition(fmt.Sprintf("duty request is already %s", current.Status))
	}

	to := model.Response(accept)
	local := timezone.ToAppTime(now)

	err = s.repo.Respond(ctx, id, to, current.ToUser, local)

	switch {
	case errors.Is(err, gRepo.ErrPreconditionFailed):
		log.Warn().Str("id", id).Msg("duty request answered concurrently")

		return res, failure.PreconditionFailed(msgAlreadyProcessed)
	case errors.Is(err, gRepo.ErrNotFound):
		return res, failure.NotFound(msgNotFound)
	case err != nil:
		log.Error().Err(err).Str("id", id).Msg("failed to answer duty request")

		return res, fmt.Errorf("failed to answer duty request: %w", gRepo.AsFailure(err, model.EntityName))
	}

	updated := current.Respond(to, current.ToUser, local)

	kind := notificationModel.KindDutyRejected
	if accept {
		kind = notificationModel.KindDutyAccepted
	}

	event := notificationModel.NewEvent(kind, current.ToUser, local)
	event.DutyRequestID = current.ID
	event.Recipient = current.FromUser
	event.Title = "Duty change " + string(to)
	event.Body = fmt.Sprintf("%s %s your request for %s", current.ToName, to, current.DutyDate)
	s.dispatcher.Notify(ctx, event)

	res.FromModel(updated)

	return res, nil
}
