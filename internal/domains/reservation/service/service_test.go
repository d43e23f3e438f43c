package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	dispatcherMocks "frontdesk/internal/domains/notification/dispatcher/mocks"
	notificationModel "frontdesk/internal/domains/notification/model"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/reservation/model/dto"
	reservationMocks "frontdesk/internal/domains/reservation/repository/mocks"
	"frontdesk/internal/domains/reservation/service"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"
)

type fixture struct {
	repo       *reservationMocks.MockReservation
	cache      *cacheMocks.MockRedisCache
	dispatcher *dispatcherMocks.MockDispatcher
	svc        service.Reservation
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       reservationMocks.NewMockReservation(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		dispatcher: dispatcherMocks.NewMockDispatcher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	f.svc = service.New(f.repo, f.dispatcher, f.cache, cfg, mocks.NewOtel())

	return f
}

func (f fixture) expectInvalidation() {
	f.cache.EXPECT().Save(gomock.Any(), "generation:"+constant.CacheKeyQueue, gomock.Any(), 0).Return(nil)
	f.cache.EXPECT().Save(gomock.Any(), "generation:"+constant.CacheKeyReservation, gomock.Any(), 0).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), constant.CacheKeyQueue+":*").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), constant.CacheKeyReservation+":*").Return(nil)
}

func reserved(id string) model.Reservation {
	return model.Reservation{
		ID:              id,
		Customer:        "Acme",
		GuestName:       "A. Traveler",
		FlightHotel:     "QR123",
		ReservationDate: "2024-05-01",
		Status:          model.StatusReserved,
	}
}

func TestReservationService_Create(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	t.Run("stamps creation metadata and notifies", func(t *testing.T) {
		f := newFixture(t)

		req := dto.CreateReservationRequest{
			Customer:        " Acme ",
			GuestName:       "A. Traveler",
			FlightHotel:     "QR123",
			ReservationDate: "2024-05-01",
			Direction:       "arrival",
		}

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r model.Reservation) error {
			assert.NotEmpty(t, r.ID)
			assert.Equal(t, model.StatusReserved, r.Status)
			assert.Equal(t, "Acme", r.Customer)
			assert.Equal(t, "front1", r.CreatedBy)
			assert.True(t, r.CreatedAt.Equal(now))
			assert.True(t, r.Consistent())

			return nil
		})
		f.expectInvalidation()
		f.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e notificationModel.Event) {
			assert.Equal(t, notificationModel.KindReservationCreated, e.Kind)
			assert.Equal(t, "front1", e.Actor)
		})

		res, err := f.svc.Create(context.Background(), req, "front1", now)
		require.NoError(t, err)
		assert.Nil(t, res.CheckinDate)
		assert.Nil(t, res.CheckoutDate)
	})

	validationCases := map[string]dto.CreateReservationRequest{
		"missing guest name":       {FlightHotel: "QR123", ReservationDate: "2024-05-01"},
		"blank flight hotel":       {GuestName: "A", FlightHotel: "  ", ReservationDate: "2024-05-01"},
		"missing reservation date": {GuestName: "A", FlightHotel: "QR123"},
		"malformed date":           {GuestName: "A", FlightHotel: "QR123", ReservationDate: "01/05/2024"},
		"unknown direction":        {GuestName: "A", FlightHotel: "QR123", ReservationDate: "2024-05-01", Direction: "sideways"},
	}

	for name, req := range validationCases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.svc.Create(context.Background(), req, "front1", now)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}

	t.Run("store unavailable", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert: %w", gRepo.ErrUnavailable))

		_, err := f.svc.Create(context.Background(), dto.CreateReservationRequest{
			GuestName: "A", FlightHotel: "QR123", ReservationDate: "2024-05-01",
		}, "front1", now)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}

func TestReservationService_CheckIn(t *testing.T) {
	now := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		local := timezone.ToAppTime(now)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved("r1"), nil)
		f.repo.EXPECT().
			Transition(gomock.Any(), "r1", model.StatusReserved, model.StatusCheckedIn, model.Stamp{
				Date:     local.Format(constant.DayFormat),
				Time:     local.Format(constant.ClockFormat),
				DateTime: local,
				By:       "staff1",
			}).
			Return(nil)
		f.expectInvalidation()
		f.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e notificationModel.Event) {
			assert.Equal(t, notificationModel.KindReservationCheckedIn, e.Kind)
			assert.Equal(t, "r1", e.ReservationID)
		})

		res, err := f.svc.CheckIn(context.Background(), "r1", "staff1", now)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, res.Status)
		assert.Equal(t, "staff1", *res.CheckinBy)
		assert.Equal(t, local.Format(constant.DayFormat), *res.CheckinDate)
		assert.True(t, res.Consistent())
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		_, err := f.svc.CheckIn(context.Background(), "missing", "staff1", now)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("empty id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CheckIn(context.Background(), " ", "staff1", now)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("already checked in", func(t *testing.T) {
		f := newFixture(t)

		current := reserved("r1")
		current.Status = model.StatusCheckedIn
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		_, err := f.svc.CheckIn(context.Background(), "r1", "staff1", now)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("lost the conditional update", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved("r1"), nil)
		f.repo.EXPECT().Transition(gomock.Any(), "r1", model.StatusReserved, model.StatusCheckedIn, gomock.Any()).
			Return(gRepo.ErrPreconditionFailed)

		_, err := f.svc.CheckIn(context.Background(), "r1", "staff1", now)
		assert.Equal(t, http.StatusPreconditionFailed, failure.GetCode(err))
		assert.Equal(t, "reservation already processed by someone else", err.Error())
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved("r1"), nil)
		f.repo.EXPECT().Transition(gomock.Any(), "r1", gomock.Any(), gomock.Any(), gomock.Any()).Return(gRepo.ErrNotFound)

		_, err := f.svc.CheckIn(context.Background(), "r1", "staff1", now)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("store timeout is not a state change", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, fmt.Errorf("get: %w", gRepo.ErrUnavailable))

		_, err := f.svc.CheckIn(context.Background(), "r1", "staff1", now)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}

func TestReservationService_CheckOut(t *testing.T) {
	now := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	t.Run("cannot skip check-in", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reserved("r1"), nil)

		_, err := f.svc.CheckOut(context.Background(), "r1", "staff2", now)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("cannot check out twice", func(t *testing.T) {
		f := newFixture(t)

		current := reserved("r1")
		current.Status = model.StatusCheckedOut
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)

		_, err := f.svc.CheckOut(context.Background(), "r1", "staff2", now)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestReservationService_Delete(t *testing.T) {
	t.Run("removes in any state", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.expectInvalidation()

		assert.NoError(t, f.svc.Delete(context.Background(), "r1"))
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(gRepo.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(f.svc.Delete(context.Background(), "r1")))
	})

	t.Run("generic failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(f.svc.Delete(context.Background(), "r1")))
	})
}

func TestReservationService_Recent(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
			assert.Equal(t, 10, params.Limit)
			assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Reservation{reserved("r2"), reserved("r1")}, nil
		})

	res, err := f.svc.Recent(context.Background(), gDto.QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "r2", res.Reservations[0].ID)
	assert.Equal(t, "reserved", res.Reservations[0].Status)
}

func TestReservationService_RecentBoundsParams(t *testing.T) {
	tests := []struct {
		name     string
		params   gDto.QueryParams
		expected gDto.QueryParams
	}{
		{
			name:     "limit is capped",
			params:   gDto.QueryParams{Limit: 500},
			expected: gDto.QueryParams{Limit: 100, SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc},
		},
		{
			name:     "unknown sort column falls back to newest first",
			params:   gDto.QueryParams{Limit: 5, SortBy: "password", SortDir: gDto.SortDirAsc},
			expected: gDto.QueryParams{Limit: 5, SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc},
		},
		{
			name:     "allowed sort column is kept",
			params:   gDto.QueryParams{SortBy: model.FieldGuestName, SortDir: gDto.SortDirAsc},
			expected: gDto.QueryParams{Limit: 10, SortBy: model.FieldGuestName, SortDir: gDto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetAll(gomock.Any(), tt.expected, gomock.Any()).Return(nil, nil)

			res, err := f.svc.Recent(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Zero(t, res.Total)
		})
	}
}

func TestReservationService_Autocomplete(t *testing.T) {
	f := newFixture(t)

	first := reserved("r1")
	second := reserved("r2")
	second.Customer = "Zenith"
	second.FlightHotel = "EK001"

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldCustomer, model.FieldFlightHotel).
		Return([]model.Reservation{second, first, first}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).Return(nil)

	res, err := f.svc.Autocomplete(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Zenith"}, res.Customers)
	assert.Equal(t, []string{"EK001", "QR123"}, res.FlightHotels)
}
