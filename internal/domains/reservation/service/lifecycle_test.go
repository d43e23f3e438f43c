package service_test

import (
	"context"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/database"
	"frontdesk/infras/otel/mocks"
	dispatcherMocks "frontdesk/internal/domains/notification/dispatcher/mocks"
	"frontdesk/internal/domains/reservation/model"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/repository"
	"frontdesk/internal/domains/reservation/service"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
)

// barrierRepository holds every Get until all expected readers have loaded the
// record, so concurrent transitions race on the conditional write itself.
type barrierRepository struct {
	repository.Reservation
	readers *sync.WaitGroup
}

func (r barrierRepository) Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error) {
	res, err := r.Reservation.Get(ctx, filter, columns...)

	r.readers.Done()
	r.readers.Wait()

	return res, err
}

func newStore(t *testing.T) repository.Reservation {
	t.Helper()

	conn, err := database.OpenSQLite(filepath.Join(t.TempDir(), "frontdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return repository.New(conn, mocks.NewOtel())
}

func newLifecycle(t *testing.T, repo repository.Reservation) service.Reservation {
	t.Helper()

	ctrl := gomock.NewController(t)

	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	notifier := dispatcherMocks.NewMockDispatcher(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()

	return service.New(repo, notifier, redisCache, &config.Config{}, mocks.NewOtel())
}

func createTraveler(t *testing.T, svc service.Reservation) model.Reservation {
	t.Helper()

	res, err := svc.Create(context.Background(), dto.CreateReservationRequest{
		Customer:        "Acme",
		GuestName:       "A. Traveler",
		FlightHotel:     "QR123",
		ReservationDate: "2024-05-01",
	}, "front1", time.Date(2024, 4, 30, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	return res
}

func TestLifecycle_CheckInOnceThenCheckOut(t *testing.T) {
	repo := newStore(t)
	svc := newLifecycle(t, repo)
	ctx := context.Background()

	created := createTraveler(t, svc)

	t1 := time.Date(2024, 5, 1, 9, 15, 0, 0, time.UTC)
	checkedIn, err := svc.CheckIn(ctx, created.ID, "staff1", t1)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCheckedIn, checkedIn.Status)
	assert.Equal(t, "staff1", *checkedIn.CheckinBy)

	_, err = svc.CheckIn(ctx, created.ID, "staff1", t1.Add(time.Minute))
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	stored, err := repo.Get(ctx, shared.FilterByID(created.ID, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, model.StatusCheckedIn, stored.Status)
	assert.Equal(t, "staff1", *stored.CheckinBy)
	assert.True(t, stored.CheckinDateTime.Equal(t1))
	assert.True(t, stored.Consistent())

	t2 := t1.Add(26 * time.Hour)
	checkedOut, err := svc.CheckOut(ctx, created.ID, "staff2", t2)
	require.NoError(t, err)
	assert.Equal(t, "staff2", *checkedOut.CheckoutBy)

	stored, err = repo.Get(ctx, shared.FilterByID(created.ID, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, model.StatusCheckedOut, stored.Status)
	assert.Equal(t, "staff1", *stored.CheckinBy)
	assert.True(t, stored.Consistent())

	_, err = svc.CheckIn(ctx, created.ID, "staff1", t2)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err), "status never regresses")
}

func TestLifecycle_ConcurrentCheckIn(t *testing.T) {
	store := newStore(t)
	created := createTraveler(t, newLifecycle(t, store))

	readers := &sync.WaitGroup{}
	readers.Add(2)

	svc := newLifecycle(t, barrierRepository{Reservation: store, readers: readers})
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	errs := make([]error, 2)
	actors := []string{"staff1", "staff2"}

	var wg sync.WaitGroup

	for i := range actors {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			_, errs[i] = svc.CheckIn(context.Background(), created.ID, actors[i], now)
		}(i)
	}

	wg.Wait()

	succeeded, lost := 0, 0

	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case failure.Is(err, http.StatusPreconditionFailed):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, lost)

	stored, err := store.Get(context.Background(), shared.FilterByID(created.ID, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, model.StatusCheckedIn, stored.Status)
	assert.Contains(t, actors, *stored.CheckinBy)
}

func TestLifecycle_Delete(t *testing.T) {
	repo := newStore(t)
	svc := newLifecycle(t, repo)
	ctx := context.Background()

	created := createTraveler(t, svc)
	_, err := svc.CheckIn(ctx, created.ID, "staff1", time.Now())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Delete(ctx, created.ID)))

	_, err = svc.Get(ctx, created.ID)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = svc.CheckOut(ctx, created.ID, "staff1", time.Now())
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestLifecycle_RecentAndDetail(t *testing.T) {
	repo := newStore(t)
	svc := newLifecycle(t, repo)
	ctx := context.Background()

	first := createTraveler(t, svc)

	second, err := svc.Create(ctx, dto.CreateReservationRequest{
		Customer:        "Zenith",
		GuestName:       "B. Voyager",
		FlightHotel:     "EK001",
		ReservationDate: "2024-05-02",
	}, "front1", time.Date(2024, 4, 30, 11, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	recent, err := svc.Recent(ctx, gDto.QueryParams{Limit: 5})
	require.NoError(t, err)
	require.Equal(t, 2, recent.Total)
	assert.Equal(t, second.ID, recent.Reservations[0].ID)
	assert.Equal(t, first.ID, recent.Reservations[1].ID)

	detail, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "A. Traveler", detail.GuestName)
	assert.Nil(t, detail.CheckinDate)
}
