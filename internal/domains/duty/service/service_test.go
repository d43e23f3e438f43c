package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/duty/model"
	"frontdesk/internal/domains/duty/model/dto"
	dutyMocks "frontdesk/internal/domains/duty/repository/mocks"
	"frontdesk/internal/domains/duty/service"
	dispatcherMocks "frontdesk/internal/domains/notification/dispatcher/mocks"
	notificationModel "frontdesk/internal/domains/notification/model"
	userModel "frontdesk/internal/domains/user/model"
	userMocks "frontdesk/internal/domains/user/repository/mocks"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
)

var (
	john  = userModel.User{Username: "john", Name: "John Smith", RCNo: "EMP001"}
	sarah = userModel.User{Username: "sarah", Name: "Sarah Johnson", RCNo: "EMP002"}
	now   = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
)

type fixture struct {
	repo       *dutyMocks.MockDutyRequest
	users      *userMocks.MockUser
	dispatcher *dispatcherMocks.MockDispatcher
	svc        service.Duty
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       dutyMocks.NewMockDutyRequest(ctrl),
		users:      userMocks.NewMockUser(ctrl),
		dispatcher: dispatcherMocks.NewMockDispatcher(ctrl),
	}
	f.svc = service.New(f.repo, f.users, f.dispatcher, mocks.NewOtel())

	return f
}

func validRequest() dto.CreateDutyRequest {
	return dto.CreateDutyRequest{ToUser: "Sarah", FromTime: "06:00-14:00", ToTime: "14:00-22:00", Date: "2024-05-03"}
}

func TestDutyService_Create(t *testing.T) {
	f := newFixture(t)

	f.users.EXPECT().Find(gomock.Any(), "john").Return(john, nil)
	f.users.EXPECT().Find(gomock.Any(), "Sarah").Return(sarah, nil)

	var inserted model.DutyRequest

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.DutyRequest) error {
		inserted = m

		return nil
	})

	f.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event notificationModel.Event) {
		assert.Equal(t, notificationModel.KindDutyRequested, event.Kind)
		assert.Equal(t, "sarah", event.Recipient)
		assert.Equal(t, "john", event.Actor)
		assert.Equal(t, inserted.ID, event.DutyRequestID)
	})

	res, err := f.svc.Create(context.Background(), validRequest(), "john", now)
	require.NoError(t, err)

	assert.Equal(t, string(model.StatusPending), res.Status)
	assert.Equal(t, "John Smith", inserted.FromName)
	assert.Equal(t, "EMP001", inserted.FromRC)
	assert.Equal(t, "sarah", inserted.ToUser)
	assert.Equal(t, "EMP002", inserted.ToRC)
	assert.Equal(t, "john", inserted.CreatedBy)
	assert.Nil(t, inserted.RespondedAt)
}

func TestDutyService_CreateRejectsInvalidTargets(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Find(gomock.Any(), "john").Return(john, nil).Times(2)

		req := validRequest()
		req.ToUser = "john"

		_, err := f.svc.Create(context.Background(), req, "john", now)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown staff", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Find(gomock.Any(), "john").Return(john, nil)
		f.users.EXPECT().Find(gomock.Any(), "Sarah").Return(userModel.User{}, gRepo.ErrNotFound)

		_, err := f.svc.Create(context.Background(), validRequest(), "john", now)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing date", func(t *testing.T) {
		f := newFixture(t)

		req := validRequest()
		req.Date = ""

		_, err := f.svc.Create(context.Background(), req, "john", now)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestDutyService_Pending(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.DutyRequest{
		{ID: "b", ToUser: "sarah", Status: model.StatusPending},
		{ID: "a", ToUser: "sarah", Status: model.StatusPending},
	}, nil)

	res, err := f.svc.Pending(context.Background(), "sarah")
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "b", res[0].ID)
}

func TestDutyService_PendingStoreError(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := f.svc.Pending(context.Background(), "sarah")
	assert.Error(t, err)
}

func TestDutyService_Respond(t *testing.T) {
	pending := model.DutyRequest{ID: "req-1", FromUser: "john", ToUser: "sarah", ToName: "Sarah Johnson", Status: model.StatusPending, DutyDate: "2024-05-03"}

	tests := []struct {
		name      string
		username  string
		accept    bool
		setupMock func(f fixture)
		wantCode  int
		wantState model.Status
	}{
		{
			name:     "accept",
			username: "sarah",
			accept:   true,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
				f.repo.EXPECT().Respond(gomock.Any(), "req-1", model.StatusAccepted, "sarah", gomock.Any()).Return(nil)
				f.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event notificationModel.Event) {
					assert.Equal(t, notificationModel.KindDutyAccepted, event.Kind)
					assert.Equal(t, "john", event.Recipient)
				})
			},
			wantState: model.StatusAccepted,
		},
		{
			name:     "reject",
			username: "SARAH",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
				f.repo.EXPECT().Respond(gomock.Any(), "req-1", model.StatusRejected, "sarah", gomock.Any()).Return(nil)
				f.dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any())
			},
			wantState: model.StatusRejected,
		},
		{
			name:     "not the addressee",
			username: "john",
			accept:   true,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "already answered",
			username: "sarah",
			setupMock: func(f fixture) {
				answered := pending
				answered.Status = model.StatusAccepted
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(answered, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:     "lost race",
			username: "sarah",
			accept:   true,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pending, nil)
				f.repo.EXPECT().Respond(gomock.Any(), "req-1", model.StatusAccepted, "sarah", gomock.Any()).Return(gRepo.ErrPreconditionFailed)
			},
			wantCode: http.StatusPreconditionFailed,
		},
		{
			name:     "missing",
			username: "sarah",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.DutyRequest{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Respond(context.Background(), "req-1", tt.username, tt.accept, now)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(tt.wantState), res.Status)
			require.NotNil(t, res.RespondedAt)
			assert.True(t, res.RespondedAt.Equal(now))
		})
	}
}
