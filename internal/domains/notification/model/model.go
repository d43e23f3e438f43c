package model

import (
	"frontdesk/shared/model"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SubscriptionTableName  = "push_subscriptions"
	SubscriptionEntityName = "push subscription"
	DeliveryTableName      = "push_deliveries"
	DeliveryEntityName     = "push delivery"

	FieldID             = "id"
	FieldUsername       = "username"
	FieldEndpoint       = "endpoint"
	FieldEventID        = "event_id"
	FieldSubscriptionID = "subscription_id"
)

type Kind string

const PriorityMedium = "medium"

const (
	KindReservationCreated    Kind = "reservation.created"
	KindReservationCheckedIn  Kind = "reservation.checked_in"
	KindReservationCheckedOut Kind = "reservation.checked_out"
	KindDutyRequested         Kind = "duty.requested"
	KindDutyAccepted          Kind = "duty.accepted"
	KindDutyRejected          Kind = "duty.rejected"
	KindAnnouncement          Kind = "announcement"
)

// Announcements reach every subscriber, the sender included.
func (k Kind) Announcement() bool {
	return k == KindAnnouncement
}

// Targeted reports whether the event is addressed to a single recipient
// rather than broadcast to every subscriber.
func (k Kind) Targeted() bool {
	return strings.HasPrefix(string(k), "duty.")
}

// Event is what the dispatcher hands to the transport and what the worker delivers.
type Event struct {
	ID            string    `json:"id"`
	Kind          Kind      `json:"kind"`
	ReservationID string    `json:"reservation_id,omitempty"`
	DutyRequestID string    `json:"duty_request_id,omitempty"`
	Actor         string    `json:"actor"`
	Recipient     string    `json:"recipient,omitempty"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Priority      string    `json:"priority,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewEvent(kind Kind, actor string, now time.Time) Event {
	return Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Actor:     actor,
		Timestamp: now,
	}
}

type Subscription struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Endpoint string `db:"endpoint"`
	model.Metadata
}

type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

type Delivery struct {
	ID             string         `db:"id"`
	EventID        string         `db:"event_id"`
	SubscriptionID string         `db:"subscription_id"`
	Username       string         `db:"username"`
	Endpoint       string         `db:"endpoint"`
	Status         DeliveryStatus `db:"status"`
	Error          string         `db:"error"`
	AttemptedAt    time.Time      `db:"attempted_at"`
}

func NewDelivery(event Event, subscription Subscription, pushErr error, now time.Time) Delivery {
	delivery := Delivery{
		ID:             uuid.NewString(),
		EventID:        event.ID,
		SubscriptionID: subscription.ID,
		Username:       subscription.Username,
		Endpoint:       subscription.Endpoint,
		Status:         DeliverySent,
		AttemptedAt:    now,
	}

	if pushErr != nil {
		delivery.Status = DeliveryFailed
		delivery.Error = pushErr.Error()
	}

	return delivery
}
