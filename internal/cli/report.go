package cli

import (
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	reportDto "frontdesk/internal/domains/report/model/dto"
	"frontdesk/shared/constant"
)

type reportOptions struct {
	reportDto.ReportRequest
	Print  string
	Export bool
}

func (r reportOptions) query() url.Values {
	query := url.Values{}

	if r.From != "" {
		query.Set(constant.RequestParamFrom, r.From)
	}

	if r.To != "" {
		query.Set(constant.RequestParamTo, r.To)
	}

	if r.FlightHotel != "" {
		query.Set(constant.RequestParamFlightHotel, r.FlightHotel)
	}

	return query
}

func NewReportCommand(opts *RootOptions) *cobra.Command {
	report := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Check-out report grouped by customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if report.Print != "" && report.Export {
				return fmt.Errorf("--print and --export cannot be combined")
			}

			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			out := opts.output(cmd)

			switch {
			case report.Print != "":
				document, err := client.Raw(cmd.Context(), "/reports/checkout/print", report.query())
				if err != nil {
					return err
				}

				if err := os.WriteFile(report.Print, document, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", report.Print, err)
				}

				out.Message("Printable report written to %s.", report.Print)

				return nil
			case report.Export:
				var res reportDto.ExportResponse
				if err := client.Do(cmd.Context(), http.MethodPost, "/reports/checkout/export", nil, report.ReportRequest, &res); err != nil {
					return err
				}

				if opts.Format == FormatJSON {
					return out.JSON(res)
				}

				out.Message("Exported %d rows to %s (%s).", res.Total, res.FileName, res.URL)

				return nil
			default:
				var res reportDto.ReportResponse
				if err := client.Do(cmd.Context(), http.MethodGet, "/reports/checkout", report.query(), nil, &res); err != nil {
					return err
				}

				return out.Report(res)
			}
		},
	}

	cmd.Flags().StringVar(&report.From, "from", "", "from check-out date, YYYY-MM-DD")
	cmd.Flags().StringVar(&report.To, "to", "", "to check-out date, YYYY-MM-DD")
	cmd.Flags().StringVar(&report.FlightHotel, "flight-hotel", "", "filter by flight or hotel")
	cmd.Flags().StringVar(&report.Print, "print", "", "write the printable HTML report to this file")
	cmd.Flags().BoolVar(&report.Export, "export", false, "export the report as a spreadsheet")

	return cmd
}
