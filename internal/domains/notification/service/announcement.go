package service

//go:generate go run go.uber.org/mock/mockgen -source=./announcement.go -destination=./mocks/announcement_mock.go -package=mocks

import (
	"context"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/notification/dispatcher"
	"frontdesk/internal/domains/notification/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
)

// Announcer broadcasts free-form announcements to every push subscriber.
type Announcer interface {
	Announce(ctx context.Context, req dto.AnnouncementRequest, actor string, now time.Time) (dto.AnnouncementResponse, error)
}

type announcerImpl struct {
	dispatcher dispatcher.Dispatcher
	otel       otel.Otel
}

func NewAnnouncer(dispatcher dispatcher.Dispatcher, otel otel.Otel) Announcer {
	return &announcerImpl{
		dispatcher: dispatcher,
		otel:       otel,
	}
}

// Announce hands the announcement to the dispatcher and returns without waiting for delivery.
func (a *announcerImpl) Announce(ctx context.Context, req dto.AnnouncementRequest, actor string, now time.Time) (res dto.AnnouncementResponse, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Announce")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	event := req.ToEvent(actor, timezone.ToAppTime(now))
	a.dispatcher.Notify(ctx, event)

	log.Info().Str("event_id", event.ID).Str("sender", actor).Msg("announcement dispatched")

	res.FromEvent(event)

	return res, nil
}
