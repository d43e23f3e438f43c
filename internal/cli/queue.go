package cli

import (
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	queueDto "frontdesk/internal/domains/queue/model/dto"
	"frontdesk/shared/constant"
)

func NewQueueCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Work queues of guests waiting for check-in or check-out",
	}

	cmd.AddCommand(newQueueListCommand(opts, "checkin", "Guests waiting for check-in", "/queues/check-in", constant.RequestParamDate))
	cmd.AddCommand(newQueueListCommand(opts, "checkout", "Guests waiting for check-out", "/queues/check-out", constant.RequestParamCheckinDate))
	cmd.AddCommand(newQueueOptionsCommand(opts))

	return cmd
}

func newQueueListCommand(opts *RootOptions, use, short, path, dateParam string) *cobra.Command {
	var date, flightHotel string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			query := url.Values{}
			if date != "" {
				query.Set(dateParam, date)
			}

			if flightHotel != "" {
				query.Set(constant.RequestParamFlightHotel, flightHotel)
			}

			var res queueDto.QueueResponse
			if err := client.Do(cmd.Context(), http.MethodGet, path, query, nil, &res); err != nil {
				return err
			}

			return opts.output(cmd).Reservations(res.Reservations)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "filter by date, YYYY-MM-DD")
	cmd.Flags().StringVar(&flightHotel, "flight-hotel", "", "filter by flight or hotel")

	return cmd
}

func newQueueOptionsCommand(opts *RootOptions) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "options <check-in|check-out|report>",
		Short: "Flight/hotel values available as queue filters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			query := url.Values{}
			if date != "" {
				query.Set(constant.RequestParamDate, date)
			}

			var res queueDto.OptionsResponse
			if err := client.Do(cmd.Context(), http.MethodGet, "/queues/"+url.PathEscape(args[0])+"/options", query, nil, &res); err != nil {
				return err
			}

			out := opts.output(cmd)
			if opts.Format == FormatJSON {
				return out.JSON(res)
			}

			rows := make([][]string, 0, len(res.FlightHotels))
			for _, option := range res.FlightHotels {
				rows = append(rows, []string{option})
			}

			return out.table("FLIGHT/HOTEL", rows)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "restrict options to a date, YYYY-MM-DD")

	return cmd
}
