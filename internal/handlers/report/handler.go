package report

import (
	"bytes"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/model"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports/checkout", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCheckoutReport)
		routerGroup.Get("/print", handler.PrintCheckoutReport)
		routerGroup.Post("/export", handler.ExportCheckoutReport)
	})
}

func requestFromQuery(r *http.Request) dto.ReportRequest {
	query := r.URL.Query()

	return dto.ReportRequest{
		From:        query.Get(constant.RequestParamFrom),
		To:          query.Get(constant.RequestParamTo),
		FlightHotel: query.Get(constant.RequestParamFlightHotel),
	}
}

func preparerFromRequest(r *http.Request) model.Preparer {
	identity := middleware.IdentityFromContext(r.Context())

	return model.Preparer{Name: identity.Name, RCNo: identity.RCNo}
}

// GetCheckoutReport returns the check-out report grouped by customer.
// @Summary Check-out report
// @Tags Report
// @Produce json
// @Param from query string false "From check-out date, YYYY-MM-DD"
// @Param to query string false "To check-out date, YYYY-MM-DD"
// @Param flight_hotel query string false "Flight or hotel"
// @Success 200 {object} response.Data[dto.ReportResponse]
// @Failure 400 {object} response.Error
// @Router /v1/reports/checkout [get]
// @Security BearerAuth
func (handler *Handler) GetCheckoutReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCheckoutReport")
	defer scope.End()

	report, err := handler.service.Build(ctx, requestFromQuery(r), preparerFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build check-out report")

		response.WithError(w, err)

		return
	}

	res := dto.ReportResponse{}
	res.FromModel(report)

	response.WithJSON(w, http.StatusOK, res)
}

// PrintCheckoutReport renders the printable check-out report.
// @Summary Printable check-out report
// @Tags Report
// @Produce html
// @Param from query string false "From check-out date, YYYY-MM-DD"
// @Param to query string false "To check-out date, YYYY-MM-DD"
// @Param flight_hotel query string false "Flight or hotel"
// @Success 200 {string} string "HTML document"
// @Failure 400 {object} response.Error
// @Router /v1/reports/checkout/print [get]
// @Security BearerAuth
func (handler *Handler) PrintCheckoutReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PrintCheckoutReport")
	defer scope.End()

	var buf bytes.Buffer

	if err := handler.service.Print(ctx, requestFromQuery(r), preparerFromRequest(r), &buf); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to print check-out report")

		response.WithError(w, err)

		return
	}

	response.WithHTML(w, http.StatusOK, buf.Bytes())
}

// ExportCheckoutReport uploads the report as a spreadsheet and returns its URL.
// @Summary Export check-out report
// @Tags Report
// @Accept json
// @Produce json
// @Param request body dto.ReportRequest true "Report filter"
// @Success 201 {object} response.Data[dto.ExportResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/reports/checkout/export [post]
// @Security BearerAuth
func (handler *Handler) ExportCheckoutReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportCheckoutReport")
	defer scope.End()

	req := dto.ReportRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Export(ctx, req, preparerFromRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export check-out report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report exported to " + res.FileName)

	response.WithJSON(w, http.StatusCreated, res)
}
