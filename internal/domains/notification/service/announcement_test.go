package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/otel/mocks"
	dispatcherMocks "frontdesk/internal/domains/notification/dispatcher/mocks"
	"frontdesk/internal/domains/notification/model"
	"frontdesk/internal/domains/notification/model/dto"
	"frontdesk/internal/domains/notification/service"
	"frontdesk/shared/failure"
)

func TestAnnouncer_Announce(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := dispatcherMocks.NewMockDispatcher(ctrl)
	announcer := service.NewAnnouncer(dispatcher, mocks.NewOtel())

	var sent model.Event

	dispatcher.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, event model.Event) {
		sent = event
	})

	res, err := announcer.Announce(context.Background(), dto.AnnouncementRequest{
		Title: "  Lounge closes early  ",
		Body:  "Last entry 21:00 ",
	}, "sarah", now)
	require.NoError(t, err)

	assert.NotEmpty(t, sent.ID)
	assert.Equal(t, model.KindAnnouncement, sent.Kind)
	assert.Equal(t, "sarah", sent.Actor)
	assert.Empty(t, sent.Recipient)
	assert.Equal(t, "Lounge closes early", sent.Title)
	assert.Equal(t, "Last entry 21:00", sent.Body)
	assert.Equal(t, model.PriorityMedium, sent.Priority)
	assert.True(t, sent.Timestamp.Equal(now))

	assert.Equal(t, dto.AnnouncementResponse{
		EventID:   sent.ID,
		Title:     sent.Title,
		Body:      sent.Body,
		Priority:  sent.Priority,
		Sender:    "sarah",
		Timestamp: sent.Timestamp,
	}, res)
}

func TestAnnouncer_AnnounceValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.AnnouncementRequest
	}{
		{name: "blank title", req: dto.AnnouncementRequest{Title: "   "}},
		{name: "unknown priority", req: dto.AnnouncementRequest{Title: "Drill", Priority: "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			announcer := service.NewAnnouncer(dispatcherMocks.NewMockDispatcher(ctrl), mocks.NewOtel())

			_, err := announcer.Announce(context.Background(), tt.req, "sarah", now)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
