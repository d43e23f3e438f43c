package reservation

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/internal/domains/reservation/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/recent", handler.GetRecentReservations)
		routerGroup.Get("/autocomplete", handler.GetAutocomplete)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Delete("/{id}", handler.DeleteReservation)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)
	})
}

// CreateReservation records a new reservation in the reserved state.
// @Summary Create a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	identity := middleware.IdentityFromContext(ctx)

	reservation, err := handler.service.Create(ctx, req, identity.Username, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully by user " + identity.Username)

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRecentReservations lists the newest reservations first.
// @Summary Recent reservations
// @Tags Reservation
// @Produce json
// @Param limit query integer false "Number of reservations, default 10, at most 100"
// @Param page query integer false "Page"
// @Param sort_by query string false "created_at, reservation_date or guest_name"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} response.Data[dto.ReservationsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/recent [get]
// @Security BearerAuth
func (handler *Handler) GetRecentReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentReservations")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	res, err := handler.service.Recent(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAutocomplete returns the known customers and flight/hotel values.
// @Summary Autocomplete values
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[dto.AutocompleteResponse]
// @Router /v1/reservations/autocomplete [get]
// @Security BearerAuth
func (handler *Handler) GetAutocomplete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAutocomplete")
	defer scope.End()

	res, err := handler.service.Autocomplete(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get autocomplete values")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservationByID retrieves a reservation by its ID.
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteReservation removes a reservation.
// @Summary Delete a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Message "Reservation deleted successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	identity := middleware.IdentityFromContext(ctx)
	scope.AddEvent("Reservation deleted successfully by user " + identity.Username)

	response.WithMessage(w, http.StatusOK, "Reservation deleted successfully")
}

// CheckIn moves a reserved reservation to checked-in.
// @Summary Check in a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 412 {object} response.Error
// @Router /v1/reservations/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	identity := middleware.IdentityFromContext(ctx)

	reservation, err := handler.service.CheckIn(ctx, id, identity.Username, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to check in reservation")

		response.WithError(w, err)

		return
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	response.WithJSON(w, http.StatusOK, res)
}

// CheckOut moves a checked-in reservation to checked-out.
// @Summary Check out a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 412 {object} response.Error
// @Router /v1/reservations/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	identity := middleware.IdentityFromContext(ctx)

	reservation, err := handler.service.CheckOut(ctx, id, identity.Username, timezone.Now())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to check out reservation")

		response.WithError(w, err)

		return
	}

	res := dto.ReservationResponse{}
	res.FromModel(reservation)

	response.WithJSON(w, http.StatusOK, res)
}
