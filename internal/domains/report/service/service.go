package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/s3"
	queueService "frontdesk/internal/domains/queue/service"
	"frontdesk/internal/domains/report/model"
	"frontdesk/internal/domains/report/model/dto"
	"frontdesk/internal/domains/report/render"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	exportDirectory = "reports"
	exportTimestamp = "20060102-150405"
	unbounded       = "all"
)

// Report renders the check-out report from the report dataset.
type Report interface {
	Build(ctx context.Context, req dto.ReportRequest, preparer model.Preparer) (model.Report, error)
	Print(ctx context.Context, req dto.ReportRequest, preparer model.Preparer, w io.Writer) error
	Export(ctx context.Context, req dto.ReportRequest, preparer model.Preparer) (dto.ExportResponse, error)
}

type serviceImpl struct {
	queue queueService.Queue
	s3    s3.S3
	cfg   *config.Config
	otel  otel.Otel
}

func New(queue queueService.Queue, s3 s3.S3, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		queue: queue,
		s3:    s3,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Build(ctx context.Context, req dto.ReportRequest, preparer model.Preparer) (res model.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BuildReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	reservations, err := s.queue.ReportDataset(ctx, req.From, req.To, req.FlightHotel)
	if err != nil {
		return res, err
	}

	return model.New(s.letterhead(), preparer, req.ToFilter(), timezone.Now(), reservations), nil
}

func (s *serviceImpl) Print(ctx context.Context, req dto.ReportRequest, preparer model.Preparer, w io.Writer) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PrintReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	report, err := s.Build(ctx, req, preparer)
	if err != nil {
		return err
	}

	if err = render.HTML(w, report); err != nil {
		log.Error().Err(err).Msg("failed to render report")

		return fmt.Errorf("failed to render report: %w", err)
	}

	return nil
}

func (s *serviceImpl) Export(ctx context.Context, req dto.ReportRequest, preparer model.Preparer) (res dto.ExportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	report, err := s.Build(ctx, req, preparer)
	if err != nil {
		return res, err
	}

	data, err := render.XLSX(report)
	if err != nil {
		log.Error().Err(err).Msg("failed to render report workbook")

		return res, fmt.Errorf("failed to render report workbook: %w", err)
	}

	fileName := exportFileName(req, timezone.Now().Format(exportTimestamp))

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, exportDirectory, fileName, constant.ContentTypeXLSX, data)
	if err != nil {
		log.Error().Err(err).Str("file", fileName).Msg("failed to upload report")

		return res, fmt.Errorf("failed to upload report: %w", err)
	}

	return dto.ExportResponse{
		FileName: fileName,
		URL:      url,
		Total:    report.Total,
	}, nil
}

func (s *serviceImpl) letterhead() model.Letterhead {
	company := s.cfg.App.Company

	return model.Letterhead{
		Name:    company.Name,
		Address: company.Address,
		Phone:   company.Phone,
		Email:   company.Email,
	}
}

func exportFileName(req dto.ReportRequest, stamp string) string {
	from, to := req.From, req.To
	if from == "" {
		from = unbounded
	}

	if to == "" {
		to = unbounded
	}

	return strings.Join([]string{"checkout-report", from, to, stamp}, "_") + ".xlsx"
}
