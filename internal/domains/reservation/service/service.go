package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/notification/dispatcher"
	notificationModel "frontdesk/internal/domains/notification/model"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
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
	defaultRecentLimit = 10
	maxRecentLimit     = 100

	msgAlreadyProcessed = "reservation already processed by someone else"
	msgNotFound         = "reservation not found"
)

var cacheAutocomplete = shared.BuildCacheKey(constant.CacheKeyReservation, "autocomplete")

// Reservation owns the reservation lifecycle: reserved -> checked-in -> checked-out.
type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest, actor string, now time.Time) (model.Reservation, error)
	CheckIn(ctx context.Context, id, actor string, now time.Time) (model.Reservation, error)
	CheckOut(ctx context.Context, id, actor string, now time.Time) (model.Reservation, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Recent(ctx context.Context, params gDto.QueryParams) (dto.ReservationsResponse, error)
	Autocomplete(ctx context.Context) (dto.AutocompleteResponse, error)
}

type serviceImpl struct {
	repo       repository.Reservation
	dispatcher dispatcher.Dispatcher
	cache      cache.RedisCache
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Reservation, dispatcher dispatcher.Dispatcher, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:       repo,
		dispatcher: dispatcher,
		cache:      cache,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest, actor string, now time.Time) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res = req.ToModel(actor, timezone.ToAppTime(now))

	if err = s.repo.Insert(ctx, res); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return model.Reservation{}, fmt.Errorf("failed to create reservation: %w", gRepo.AsFailure(err, model.EntityName))
	}

	s.invalidate(ctx)

	event := notificationModel.NewEvent(notificationModel.KindReservationCreated, actor, res.CreatedAt)
	event.ReservationID = res.ID
	event.Title = "New reservation"
	event.Body = fmt.Sprintf("%s (%s) on %s", res.GuestName, res.FlightHotel, res.ReservationDate)
	s.dispatcher.Notify(ctx, event)

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id, actor string, now time.Time) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.transition(ctx, id, actor, now, model.StatusReserved)
	if err != nil {
		return res, err
	}

	event := notificationModel.NewEvent(notificationModel.KindReservationCheckedIn, actor, *res.CheckinDateTime)
	event.ReservationID = res.ID
	event.Title = "Guest checked in"
	event.Body = fmt.Sprintf("%s (%s) checked in at %s by %s", res.GuestName, res.FlightHotel, *res.CheckinTime, actor)
	s.dispatcher.Notify(ctx, event)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, id, actor string, now time.Time) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.transition(ctx, id, actor, now, model.StatusCheckedIn)
	if err != nil {
		return res, err
	}

	event := notificationModel.NewEvent(notificationModel.KindReservationCheckedOut, actor, *res.CheckoutDateTime)
	event.ReservationID = res.ID
	event.Title = "Guest checked out"
	event.Body = fmt.Sprintf("%s (%s) checked out at %s by %s", res.GuestName, res.FlightHotel, *res.CheckoutTime, actor)
	s.dispatcher.Notify(ctx, event)

	return res, nil
}

// transition advances a reservation that is currently in from. The status check on the
// loaded record gives a precise error; the conditional write is what guarantees that
// only one of several concurrent callers wins.
func (s *serviceImpl) transition(ctx context.Context, id, actor string, now time.Time, from model.Status) (model.Reservation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return model.Reservation{}, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	to, ok := from.Next()
	if !ok {
		return model.Reservation{}, failure.InvalidTransition(fmt.Sprintf("no transition out of %s", from)) //nolint:wrapcheck
	}

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		return model.Reservation{}, fmt.Errorf("failed to get reservation: %w", gRepo.AsFailure(err, model.EntityName))
	}

	if current.ID == "" {
		return model.Reservation{}, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	if current.Status != from {
		return model.Reservation{}, failure.InvalidTransition( //nolint:wrapcheck
			fmt.Sprintf("reservation is %s, it must be %s to become %s", current.Status, from, to),
		)
	}

	local := timezone.ToAppTime(now)
	stamp := model.Stamp{
		Date:     timezone.Day(local),
		Time:     timezone.Clock(local),
		DateTime: local,
		By:       actor,
	}

	err = s.repo.Transition(ctx, id, from, to, stamp)

	switch {
	case errors.Is(err, gRepo.ErrPreconditionFailed):
		log.Warn().Str("id", id).Str("actor", actor).Msg("reservation transition lost to a concurrent writer")

		return model.Reservation{}, failure.PreconditionFailed(msgAlreadyProcessed) //nolint:wrapcheck
	case errors.Is(err, gRepo.ErrNotFound):
		return model.Reservation{}, failure.NotFound(msgNotFound) //nolint:wrapcheck
	case err != nil:
		log.Error().Err(err).Str("id", id).Msg("failed to update reservation status")

		return model.Reservation{}, fmt.Errorf("failed to update reservation status: %w", gRepo.AsFailure(err, model.EntityName))
	}

	s.invalidate(ctx)

	return current.Apply(to, stamp), nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if strings.TrimSpace(id) == "" {
		return failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if errors.Is(err, gRepo.ErrNotFound) {
		return failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", gRepo.AsFailure(err, model.EntityName))
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", gRepo.AsFailure(err, model.EntityName))
	}

	if reservation.ID == "" {
		return res, failure.NotFound(msgNotFound) //nolint:wrapcheck
	}

	res.FromModel(reservation)

	return res, nil
}

// Recent lists reservations newest first unless params sorts by another allowed column.
// The limit defaults to 10 and is capped at 100.
func (s *serviceImpl) Recent(ctx context.Context, params gDto.QueryParams) (res dto.ReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recent")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.AllowSort(constant.FieldCreatedAt, model.FieldReservationDate, model.FieldGuestName)

	if params.SortBy == "" {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	if params.Limit <= 0 {
		params.Limit = defaultRecentLimit
	}

	params.Limit = min(params.Limit, maxRecentLimit)

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent reservations")

		return res, fmt.Errorf("failed to get recent reservations: %w", gRepo.AsFailure(err, model.EntityName))
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) Autocomplete(ctx context.Context) (res dto.AutocompleteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Autocomplete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheAutocomplete, &res); err == nil {
		log.Debug().Str("cacheKey", cacheAutocomplete).Msg("cache hit for autocomplete")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldCustomer, model.FieldFlightHotel)
	if err != nil {
		log.Error().Err(err).Msg("failed to get autocomplete values")

		return res, fmt.Errorf("failed to get autocomplete values: %w", gRepo.AsFailure(err, model.EntityName))
	}

	res.Customers = model.DistinctCustomers(models)
	res.FlightHotels = model.DistinctFlightHotel(models)

	if err := s.cache.Save(ctx, cacheAutocomplete, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save autocomplete values to cache")
	}

	return res, nil
}

// invalidate drops the derived views: queues, filter options and autocomplete values.
func (s *serviceImpl) invalidate(ctx context.Context) {
	c := context.WithoutCancel(ctx)

	shared.InvalidateCaches(c, s.cache, constant.CacheKeyQueue)
	shared.InvalidateCaches(c, s.cache, constant.CacheKeyReservation)
}
