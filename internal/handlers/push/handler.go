package push

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/notification/model/dto"
	"frontdesk/internal/domains/notification/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Notification
	announcer service.Announcer
	otel      otel.Otel
}

func New(service service.Notification, announcer service.Announcer, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		announcer: announcer,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/push", func(routerGroup chi.Router) {
		routerGroup.Post("/subscriptions", handler.Subscribe)
		routerGroup.Delete("/subscriptions", handler.Unsubscribe)
		routerGroup.Post("/announcements", handler.Announce)
	})
}

// Subscribe registers a push endpoint for the caller.
// @Summary Subscribe to push notifications
// @Tags Push
// @Accept json
// @Produce json
// @Param request body dto.SubscribeRequest true "Subscription"
// @Success 201 {object} response.Data[dto.SubscriptionResponse]
// @Failure 400 {object} response.Error
// @Router /v1/push/subscriptions [post]
// @Security BearerAuth
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Subscribe")
	defer scope.End()

	req := dto.SubscribeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	identity := middleware.IdentityFromContext(ctx)

	res, err := handler.service.Subscribe(ctx, req, identity.Username, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to subscribe push endpoint")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// Unsubscribe removes one of the caller's push endpoints.
// @Summary Unsubscribe from push notifications
// @Tags Push
// @Accept json
// @Produce json
// @Param request body dto.UnsubscribeRequest true "Subscription"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/push/subscriptions [delete]
// @Security BearerAuth
func (handler *Handler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Unsubscribe")
	defer scope.End()

	req := dto.UnsubscribeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	identity := middleware.IdentityFromContext(ctx)

	if err := handler.service.Unsubscribe(ctx, req, identity.Username); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unsubscribe push endpoint")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Push subscription removed")
}

// Announce broadcasts an announcement to every push subscriber.
// @Summary Broadcast an announcement
// @Tags Push
// @Accept json
// @Produce json
// @Param request body dto.AnnouncementRequest true "Announcement"
// @Success 202 {object} response.Data[dto.AnnouncementResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/push/announcements [post]
// @Security BearerAuth
func (handler *Handler) Announce(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Announce")
	defer scope.End()

	req := dto.AnnouncementRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	identity := middleware.IdentityFromContext(ctx)

	res, err := handler.announcer.Announce(ctx, req, identity.Username, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send announcement")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusAccepted, res)
}
