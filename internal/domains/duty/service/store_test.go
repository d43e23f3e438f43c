package service_test

import (
	"context"
	"net/http"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/database"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/duty/model"
	"frontdesk/internal/domains/duty/repository"
	"frontdesk/internal/domains/duty/service"
	dispatcherMocks "frontdesk/internal/domains/notification/dispatcher/mocks"
	userRepo "frontdesk/internal/domains/user/repository"
	"frontdesk/shared"
	"frontdesk/shared/failure"
)

func newStoreService(t *testing.T) (service.Duty, repository.DutyRequest) {
	t.Helper()

	conn, err := database.OpenSQLite(filepath.Join(t.TempDir(), "frontdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	users, err := userRepo.New(&config.Config{}, mocks.NewOtel())
	require.NoError(t, err)

	notifier := dispatcherMocks.NewMockDispatcher(gomock.NewController(t))
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()

	repo := repository.New(conn, mocks.NewOtel())

	return service.New(repo, users, notifier, mocks.NewOtel()), repo
}

func TestDutyStore_RequestAndAccept(t *testing.T) {
	svc, repo := newStoreService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest(), "john", now)
	require.NoError(t, err)

	pending, err := svc.Pending(ctx, "sarah")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, created.ID, pending[0].ID)

	none, err := svc.Pending(ctx, "john")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = svc.Respond(ctx, created.ID, "sarah", true, now)
	require.NoError(t, err)

	stored, err := repo.Get(ctx, shared.FilterByID(created.ID, model.FieldID, model.TableName))
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, stored.Status)
	require.NotNil(t, stored.RespondedAt)

	pending, err = svc.Pending(ctx, "sarah")
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = svc.Respond(ctx, created.ID, "sarah", false, now)
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestDutyStore_RespondIsConditional(t *testing.T) {
	_, repo := newStoreService(t)
	ctx := context.Background()
	request := validRequest()
	m := request.ToModel(john, sarah, now)
	require.NoError(t, repo.Insert(ctx, m))

	var wg sync.WaitGroup

	errs := make([]error, 2)

	for i, status := range []model.Status{model.StatusAccepted, model.StatusRejected} {
		wg.Add(1)

		go func(i int, status model.Status) {
			defer wg.Done()

			errs[i] = repo.Respond(ctx, m.ID, status, "sarah", now)
		}(i, status)
	}

	wg.Wait()

	failed := 0

	for _, err := range errs {
		if err != nil {
			failed++
		}
	}

	assert.Equal(t, 1, failed)
}
