package duty

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/duty/model/dto"
	"frontdesk/internal/domains/duty/service"
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
	service service.Duty
	otel    otel.Otel
}

func New(service service.Duty, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/duty-requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDutyRequest)
		routerGroup.Get("/pending", handler.GetPendingDutyRequests)
		routerGroup.Post("/{id}/accept", handler.respond(true))
		routerGroup.Post("/{id}/reject", handler.respond(false))
	})
}

// CreateDutyRequest asks another staff member to swap a duty.
// @Summary Create a duty swap request
// @Tags Duty
// @Accept json
// @Produce json
// @Param request body dto.CreateDutyRequest true "Duty Request"
// @Success 201 {object} response.Data[dto.DutyRequestResponse]
// @Failure 400 {object} response.Error
// @Router /v1/duty-requests [post]
// @Security BearerAuth
func (handler *Handler) CreateDutyRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDutyRequest")
	defer scope.End()

	req := dto.CreateDutyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	identity := middleware.IdentityFromContext(ctx)

	res, err := handler.service.Create(ctx, req, identity.Username, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create duty request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPendingDutyRequests lists pending requests addressed to the caller.
// @Summary Pending duty swap requests
// @Tags Duty
// @Produce json
// @Success 200 {object} response.Data[dto.DutyRequestsResponse]
// @Router /v1/duty-requests/pending [get]
// @Security BearerAuth
func (handler *Handler) GetPendingDutyRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPendingDutyRequests")
	defer scope.End()

	identity := middleware.IdentityFromContext(ctx)

	res, err := handler.service.Pending(ctx, identity.Username)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pending duty requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// respond serves both the accept and the reject route.
// @Summary Accept or reject a duty swap request
// @Tags Duty
// @Produce json
// @Param id path string true "Duty request ID"
// @Success 200 {object} response.Data[dto.DutyRequestResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 412 {object} response.Error
// @Router /v1/duty-requests/{id}/accept [post]
// @Router /v1/duty-requests/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) respond(accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RespondDutyRequest")
		defer scope.End()

		id := chi.URLParam(r, constant.RequestParamID)
		identity := middleware.IdentityFromContext(ctx)

		res, err := handler.service.Respond(ctx, id, identity.Username, accept, timezone.Now())
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("id", id).Bool("accept", accept).Msg("failed to respond to duty request")

			response.WithError(w, err)

			return
		}

		scope.AddEvent("Duty request " + id + " " + res.Status + " by user " + identity.Username)

		response.WithJSON(w, http.StatusOK, res)
	}
}
