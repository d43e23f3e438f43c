package dto

import (
	"frontdesk/internal/domains/notification/model"
	gModel "frontdesk/shared/model"
	"strings"
	"time"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url,max=2048"`
}

func (r *SubscribeRequest) ToModel(username string, now time.Time) model.Subscription {
	return model.Subscription{
		ID:       uuid.NewString(),
		Username: username,
		Endpoint: r.Endpoint,
		Metadata: gModel.NewMetadata(username, now),
	}
}

type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" validate:"required"`
}

type SubscriptionResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Endpoint  string    `json:"endpoint"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *SubscriptionResponse) FromModel(m model.Subscription) {
	r.ID = m.ID
	r.Username = m.Username
	r.Endpoint = m.Endpoint
	r.CreatedAt = m.CreatedAt
}

type AnnouncementRequest struct {
	Title    string `json:"title"    validate:"required,notblank,max=120"`
	Body     string `json:"body"     validate:"omitempty,max=1000"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func (r *AnnouncementRequest) ToEvent(actor string, now time.Time) model.Event {
	event := model.NewEvent(model.KindAnnouncement, actor, now)
	event.Title = strings.TrimSpace(r.Title)
	event.Body = strings.TrimSpace(r.Body)
	event.Priority = r.Priority

	if event.Priority == "" {
		event.Priority = model.PriorityMedium
	}

	return event
}

type AnnouncementResponse struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Priority  string    `json:"priority"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *AnnouncementResponse) FromEvent(event model.Event) {
	r.EventID = event.ID
	r.Title = event.Title
	r.Body = event.Body
	r.Priority = event.Priority
	r.Sender = event.Actor
	r.Timestamp = event.Timestamp
}
