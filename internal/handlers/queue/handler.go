package queue

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/queue/model"
	"frontdesk/internal/domains/queue/model/dto"
	"frontdesk/internal/domains/queue/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Queue
	otel    otel.Otel
}

func New(service service.Queue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/queues", func(routerGroup chi.Router) {
		routerGroup.Get("/check-in", handler.GetCheckinQueue)
		routerGroup.Get("/check-out", handler.GetCheckoutQueue)
		routerGroup.Get("/{view}/options", handler.GetFilterOptions)
	})
}

// GetCheckinQueue lists reserved reservations for a date.
// @Summary Check-in queue
// @Tags Queue
// @Produce json
// @Param date query string true "Reservation date, YYYY-MM-DD"
// @Param flight_hotel query string false "Flight or hotel"
// @Success 200 {object} response.Data[dto.QueueResponse]
// @Failure 400 {object} response.Error
// @Router /v1/queues/check-in [get]
// @Security BearerAuth
func (handler *Handler) GetCheckinQueue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckinQueue")
	defer scope.End()

	query := r.URL.Query()

	reservations, err := handler.service.CheckinQueue(ctx, query.Get(constant.RequestParamDate), query.Get(constant.RequestParamFlightHotel))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-in queue")

		response.WithError(w, err)

		return
	}

	res := dto.QueueResponse{}
	res.FromModels(reservations)

	response.WithJSON(w, http.StatusOK, res)
}

// GetCheckoutQueue lists checked-in reservations, optionally for one check-in date.
// @Summary Check-out queue
// @Tags Queue
// @Produce json
// @Param checkin_date query string false "Check-in date, YYYY-MM-DD"
// @Param flight_hotel query string false "Flight or hotel"
// @Success 200 {object} response.Data[dto.QueueResponse]
// @Failure 400 {object} response.Error
// @Router /v1/queues/check-out [get]
// @Security BearerAuth
func (handler *Handler) GetCheckoutQueue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckoutQueue")
	defer scope.End()

	query := r.URL.Query()

	reservations, err := handler.service.CheckoutQueue(ctx, query.Get(constant.RequestParamCheckinDate), query.Get(constant.RequestParamFlightHotel))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get check-out queue")

		response.WithError(w, err)

		return
	}

	res := dto.QueueResponse{}
	res.FromModels(reservations)

	response.WithJSON(w, http.StatusOK, res)
}

// GetFilterOptions lists the distinct flight/hotel values a view can be filtered by.
// @Summary Filter options
// @Tags Queue
// @Produce json
// @Param view path string true "check-in, check-out or report"
// @Param date query string false "Reservation date for the check-in view"
// @Success 200 {object} response.Data[dto.OptionsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/queues/{view}/options [get]
// @Security BearerAuth
func (handler *Handler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFilterOptions")
	defer scope.End()

	view, err := model.ParseView(chi.URLParam(r, constant.RequestParamView))
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	options, err := handler.service.FilterOptions(ctx, view, r.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("view", string(view)).Msg("failed to get filter options")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.OptionsResponse{View: string(view), FlightHotels: options})
}
