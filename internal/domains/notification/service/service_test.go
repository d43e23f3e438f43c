package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/notification/model"
	"frontdesk/internal/domains/notification/model/dto"
	"frontdesk/internal/domains/notification/pusher"
	pusherMocks "frontdesk/internal/domains/notification/pusher/mocks"
	repoMocks "frontdesk/internal/domains/notification/repository/mocks"
	"frontdesk/internal/domains/notification/service"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
)

var now = time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

type fixture struct {
	subscriptions *repoMocks.MockSubscription
	deliveries    *repoMocks.MockDelivery
	pusher        *pusherMocks.MockPusher
	svc           service.Notification
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		subscriptions: repoMocks.NewMockSubscription(ctrl),
		deliveries:    repoMocks.NewMockDelivery(ctrl),
		pusher:        pusherMocks.NewMockPusher(ctrl),
	}
	f.svc = service.New(f.subscriptions, f.deliveries, f.pusher, mocks.NewOtel())

	return f
}

func filterValue(t *testing.T, group gDto.FilterGroup, index int) gDto.Filter {
	t.Helper()

	require.Greater(t, len(group.Filters), index)

	filter, ok := group.Filters[index].(gDto.Filter)
	require.True(t, ok)

	return filter
}

func TestNotificationService_Subscribe(t *testing.T) {
	f := newFixture(t)

	f.subscriptions.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Subscription, error) {
		assert.Equal(t, "https://push.example.com/a", filterValue(t, filter, 1).Value)

		return model.Subscription{}, nil
	})

	var inserted model.Subscription

	f.subscriptions.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.Subscription) error {
		inserted = m

		return nil
	})

	res, err := f.svc.Subscribe(context.Background(), dto.SubscribeRequest{Endpoint: " https://push.example.com/a "}, "john", now)
	require.NoError(t, err)

	assert.NotEmpty(t, inserted.ID)
	assert.Equal(t, "john", inserted.Username)
	assert.Equal(t, "https://push.example.com/a", inserted.Endpoint)
	assert.Equal(t, inserted.ID, res.ID)
	assert.Equal(t, "john", res.Username)
}

func TestNotificationService_SubscribeIsIdempotent(t *testing.T) {
	f := newFixture(t)

	existing := model.Subscription{ID: "sub-1", Username: "john", Endpoint: "https://push.example.com/a"}

	f.subscriptions.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Subscription, error) {
		assert.Equal(t, "john", filterValue(t, filter, 0).Value)
		assert.Equal(t, "https://push.example.com/a", filterValue(t, filter, 1).Value)

		return existing, nil
	})

	res, err := f.svc.Subscribe(context.Background(), dto.SubscribeRequest{Endpoint: "https://push.example.com/a"}, "john", now)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", res.ID)
}

func TestNotificationService_SubscribeValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Subscribe(context.Background(), dto.SubscribeRequest{Endpoint: "not a url"}, "john", now)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestNotificationService_Unsubscribe(t *testing.T) {
	t.Run("removes the subscription", func(t *testing.T) {
		f := newFixture(t)

		f.subscriptions.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) error {
			assert.Equal(t, "john", filterValue(t, filter, 0).Value)
			assert.Equal(t, "https://push.example.com/a", filterValue(t, filter, 1).Value)

			return nil
		})

		err := f.svc.Unsubscribe(context.Background(), dto.UnsubscribeRequest{Endpoint: "  https://push.example.com/a\n"}, "john")
		require.NoError(t, err)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		f := newFixture(t)

		f.subscriptions.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(gRepo.ErrNotFound)

		err := f.svc.Unsubscribe(context.Background(), dto.UnsubscribeRequest{Endpoint: "https://push.example.com/a"}, "john")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("missing endpoint", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Unsubscribe(context.Background(), dto.UnsubscribeRequest{Endpoint: "   "}, "john")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestNotificationService_DeliverBroadcastSkipsActor(t *testing.T) {
	f := newFixture(t)

	event := model.NewEvent(model.KindReservationCheckedIn, "john", now)
	subscriptions := []model.Subscription{
		{ID: "sub-1", Username: "sarah", Endpoint: "https://push.example.com/sarah"},
		{ID: "sub-2", Username: "mike", Endpoint: "https://push.example.com/mike"},
	}

	f.subscriptions.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Subscription, error) {
			actor := filterValue(t, filter, 0)
			assert.Equal(t, model.FieldUsername, actor.Field)
			assert.Equal(t, "john", actor.Value)
			assert.Equal(t, gDto.FilterOperatorNotEq, actor.Operator)

			return subscriptions, nil
		})

	var (
		mu     sync.Mutex
		pushed []string
	)

	f.pusher.EXPECT().Push(gomock.Any(), gomock.Any(), event).Times(2).DoAndReturn(func(_ context.Context, endpoint string, _ model.Event) error {
		mu.Lock()
		defer mu.Unlock()

		pushed = append(pushed, endpoint)

		return nil
	})

	f.deliveries.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, deliveries []model.Delivery) error {
		require.Len(t, deliveries, 2)

		for i, delivery := range deliveries {
			assert.Equal(t, event.ID, delivery.EventID)
			assert.Equal(t, subscriptions[i].ID, delivery.SubscriptionID)
			assert.Equal(t, model.DeliverySent, delivery.Status)
		}

		return nil
	})

	require.NoError(t, f.svc.Deliver(context.Background(), event))
	assert.ElementsMatch(t, []string{"https://push.example.com/sarah", "https://push.example.com/mike"}, pushed)
}

func TestNotificationService_DeliverTargeted(t *testing.T) {
	f := newFixture(t)

	event := model.NewEvent(model.KindDutyRequested, "john", now)
	event.Recipient = "sarah"

	f.subscriptions.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Subscription, error) {
			recipient := filterValue(t, filter, 0)
			assert.Equal(t, "sarah", recipient.Value)
			assert.Equal(t, gDto.FilterOperatorEq, recipient.Operator)

			return []model.Subscription{{ID: "sub-1", Username: "sarah", Endpoint: "https://push.example.com/sarah"}}, nil
		})

	f.pusher.EXPECT().Push(gomock.Any(), "https://push.example.com/sarah", event).Return(nil)
	f.deliveries.EXPECT().InsertBulk(gomock.Any(), gomock.Len(1)).Return(nil)

	require.NoError(t, f.svc.Deliver(context.Background(), event))
}

func TestNotificationService_DeliverTargetedWithoutRecipient(t *testing.T) {
	f := newFixture(t)

	event := model.NewEvent(model.KindDutyAccepted, "sarah", now)

	require.NoError(t, f.svc.Deliver(context.Background(), event))
}

func TestNotificationService_DeliverWithoutSubscribers(t *testing.T) {
	f := newFixture(t)

	f.subscriptions.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, f.svc.Deliver(context.Background(), model.NewEvent(model.KindReservationCreated, "john", now)))
}

func TestNotificationService_DeliverPrunesGoneEndpoints(t *testing.T) {
	f := newFixture(t)

	event := model.NewEvent(model.KindReservationCheckedOut, "john", now)

	f.subscriptions.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Subscription{
		{ID: "sub-1", Username: "sarah", Endpoint: "https://push.example.com/gone"},
		{ID: "sub-2", Username: "mike", Endpoint: "https://push.example.com/flaky"},
	}, nil)

	f.pusher.EXPECT().Push(gomock.Any(), "https://push.example.com/gone", event).
		Return(fmt.Errorf("%w: status 410", pusher.ErrEndpointGone))
	f.pusher.EXPECT().Push(gomock.Any(), "https://push.example.com/flaky", event).
		Return(errors.New("connection reset"))

	f.deliveries.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, deliveries []model.Delivery) error {
		require.Len(t, deliveries, 2)

		for _, delivery := range deliveries {
			assert.Equal(t, model.DeliveryFailed, delivery.Status)
			assert.NotEmpty(t, delivery.Error)
		}

		return nil
	})

	f.subscriptions.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) error {
		assert.Equal(t, "sub-1", filterValue(t, filter, 0).Value)

		return nil
	})

	require.NoError(t, f.svc.Deliver(context.Background(), event))
}

func TestNotificationService_DeliverReportsRecordingFailure(t *testing.T) {
	f := newFixture(t)

	event := model.NewEvent(model.KindReservationCreated, "john", now)

	f.subscriptions.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Subscription{
		{ID: "sub-1", Username: "sarah", Endpoint: "https://push.example.com/sarah"},
	}, nil)
	f.pusher.EXPECT().Push(gomock.Any(), gomock.Any(), event).Return(nil)
	f.deliveries.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(gRepo.ErrUnavailable)

	err := f.svc.Deliver(context.Background(), event)
	require.Error(t, err)
	assert.ErrorIs(t, err, gRepo.ErrUnavailable)
}

func TestNotificationService_DeliverAnnouncementReachesEveryone(t *testing.T) {
	f := newFixture(t)

	event := model.NewEvent(model.KindAnnouncement, "sarah", now)
	event.Title = "Lounge closes early"

	f.subscriptions.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Subscription, error) {
			assert.Empty(t, filter.Filters)

			return []model.Subscription{
				{ID: "sub-1", Username: "sarah", Endpoint: "https://push.example.com/sarah"},
				{ID: "sub-2", Username: "gone", Endpoint: "https://push.example.com/gone"},
			}, nil
		})

	f.pusher.EXPECT().Push(gomock.Any(), "https://push.example.com/sarah", event).Return(nil)
	f.pusher.EXPECT().Push(gomock.Any(), "https://push.example.com/gone", event).
		Return(fmt.Errorf("%w: status 404", pusher.ErrEndpointGone))
	f.deliveries.EXPECT().InsertBulk(gomock.Any(), gomock.Len(2)).Return(nil)
	f.subscriptions.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) error {
		assert.Equal(t, "sub-2", filterValue(t, filter, 0).Value)

		return nil
	})

	require.NoError(t, f.svc.Deliver(context.Background(), event))
}
