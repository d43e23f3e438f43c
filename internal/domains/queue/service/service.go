package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	queueModel "frontdesk/internal/domains/queue/model"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/reservation/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	argFrom = "from_date"
	argTo   = "to_date"
)

// Queue projects the reservation collection into the check-in queue, the check-out
// queue and the report dataset. It never mutates and never fails on an empty result.
type Queue interface {
	CheckinQueue(ctx context.Context, date, flightHotel string) ([]model.Reservation, error)
	CheckoutQueue(ctx context.Context, checkinDate, flightHotel string) ([]model.Reservation, error)
	ReportDataset(ctx context.Context, from, to, flightHotel string) ([]model.Reservation, error)
	FilterOptions(ctx context.Context, view queueModel.View, date string) ([]string, error)
}

type serviceImpl struct {
	repo  repository.Reservation
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Reservation, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Queue {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) CheckinQueue(ctx context.Context, date, flightHotel string) (res []model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckinQueue")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(date, "required,day"); err != nil {
		return nil, failure.BadRequestFromString("date must be a date formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	filter := checkinFilter(date)
	filter.AddIfNotEmpty(flightFilter(flightHotel))

	return s.load(ctx, shared.BuildCacheKey(constant.CacheKeyQueue, string(queueModel.ViewCheckin), date, flightHotel), filter)
}

func (s *serviceImpl) CheckoutQueue(ctx context.Context, checkinDate, flightHotel string) (res []model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckoutQueue")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateVar(checkinDate, "omitempty,day"); err != nil {
		return nil, failure.BadRequestFromString("checkin_date must be a date formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	filter := checkoutFilter(checkinDate)
	filter.AddIfNotEmpty(flightFilter(flightHotel))

	return s.load(ctx, shared.BuildCacheKey(constant.CacheKeyQueue, string(queueModel.ViewCheckout), checkinDate, flightHotel), filter)
}

func (s *serviceImpl) ReportDataset(ctx context.Context, from, to, flightHotel string) (res []model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReportDataset")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, err := reportFilter(from, to)
	if err != nil {
		return nil, err
	}

	filter.AddIfNotEmpty(flightFilter(flightHotel))

	return s.load(ctx, shared.BuildCacheKey(constant.CacheKeyQueue, string(queueModel.ViewReport), from, to, flightHotel), filter)
}

func (s *serviceImpl) FilterOptions(ctx context.Context, view queueModel.View, date string) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FilterOptions")
	defer scope.End()
	defer scope.TraceIfError(err)

	var filter gDto.FilterGroup

	switch view {
	case queueModel.ViewCheckin:
		if err = validator.ValidateVar(date, "required,day"); err != nil {
			return nil, failure.BadRequestFromString("date must be a date formatted as YYYY-MM-DD") //nolint:wrapcheck
		}

		filter = checkinFilter(date)
	case queueModel.ViewCheckout:
		if err = validator.ValidateVar(date, "omitempty,day"); err != nil {
			return nil, failure.BadRequestFromString("date must be a date formatted as YYYY-MM-DD") //nolint:wrapcheck
		}

		filter = checkoutFilter(date)
	case queueModel.ViewReport:
		filter = statusFilter(model.StatusCheckedOut)
	default:
		return nil, failure.BadRequestFromString(fmt.Sprintf("unknown view %q", view)) //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeyQueue, "options", string(view), date)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	generation := shared.Generation(ctx, s.cache, constant.CacheKeyQueue)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter, model.FieldFlightHotel)
	if err != nil {
		log.Error().Err(err).Str("view", string(view)).Msg("failed to get filter options")

		return nil, fmt.Errorf("failed to get filter options: %w", gRepo.AsFailure(err, model.EntityName))
	}

	res = model.DistinctFlightHotel(models)

	shared.SaveWithinGeneration(ctx, s.cache, constant.CacheKeyQueue, generation, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// load reads through the cache. Results are sorted by guest name so repeated reads agree.
// The generation is read before querying; a result that raced an invalidation is not kept.
func (s *serviceImpl) load(ctx context.Context, cacheKey string, filter gDto.FilterGroup) ([]model.Reservation, error) {
	var res []model.Reservation

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for queue")

		return res, nil
	}

	generation := shared.Generation(ctx, s.cache, constant.CacheKeyQueue)

	res, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to query reservations")

		return nil, fmt.Errorf("failed to query reservations: %w", gRepo.AsFailure(err, model.EntityName))
	}

	if res == nil {
		res = []model.Reservation{}
	}

	model.SortByGuestName(res)

	shared.SaveWithinGeneration(ctx, s.cache, constant.CacheKeyQueue, generation, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func statusFilter(status model.Status) gDto.FilterGroup {
	return gDto.NewAndGroup(gDto.Filter{
		Field:    model.FieldStatus,
		Value:    status,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})
}

func checkinFilter(date string) gDto.FilterGroup {
	filter := statusFilter(model.StatusReserved)
	filter.AddIfNotEmpty(gDto.Filter{
		Field:    model.FieldReservationDate,
		Value:    date,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return filter
}

func checkoutFilter(checkinDate string) gDto.FilterGroup {
	filter := statusFilter(model.StatusCheckedIn)
	filter.AddIfNotEmpty(gDto.Filter{
		Field:    model.FieldCheckinDate,
		Value:    checkinDate,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	return filter
}

// reportFilter bounds the checkout date. Dates are stored as YYYY-MM-DD in the
// application timezone, so the inclusive string range covers from 00:00:00 to 23:59:59.
func reportFilter(from, to string) (gDto.FilterGroup, error) {
	if err := validator.ValidateVar(from, "omitempty,day"); err != nil {
		return gDto.FilterGroup{}, failure.BadRequestFromString("from must be a date formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	if err := validator.ValidateVar(to, "omitempty,day"); err != nil {
		return gDto.FilterGroup{}, failure.BadRequestFromString("to must be a date formatted as YYYY-MM-DD") //nolint:wrapcheck
	}

	if from != "" && to != "" && from > to {
		return gDto.FilterGroup{}, failure.BadRequestFromString("from date cannot be after to date") //nolint:wrapcheck
	}

	filter := statusFilter(model.StatusCheckedOut)
	filter.AddIfNotEmpty(gDto.Filter{
		ArgName:  argFrom,
		Field:    model.FieldCheckoutDate,
		Value:    from,
		Operator: gDto.FilterOperatorGreaterEq,
		Table:    model.TableName,
	})
	filter.AddIfNotEmpty(gDto.Filter{
		ArgName:  argTo,
		Field:    model.FieldCheckoutDate,
		Value:    to,
		Operator: gDto.FilterOperatorLessEq,
		Table:    model.TableName,
	})

	return filter, nil
}

func flightFilter(flightHotel string) gDto.Filter {
	return gDto.Filter{
		Field:    model.FieldFlightHotel,
		Value:    flightHotel,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	}
}
