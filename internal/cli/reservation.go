package cli

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	reservationDto "frontdesk/internal/domains/reservation/model/dto"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"
)

func NewReserveCommand(opts *RootOptions) *cobra.Command {
	req := reservationDto.CreateReservationRequest{}

	cmd := &cobra.Command{
		Use:   "reserve",
		Short: "Record a new reservation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			if req.ReservationDate == "" {
				req.ReservationDate = timezone.Day(timezone.Now())
			}

			var res reservationDto.ReservationResponse
			if err := client.Do(cmd.Context(), http.MethodPost, "/reservations", nil, req, &res); err != nil {
				return err
			}

			return opts.output(cmd).Reservation(res)
		},
	}

	cmd.Flags().StringVar(&req.GuestName, "guest", "", "guest name")
	cmd.Flags().StringVar(&req.Customer, "customer", "", "customer")
	cmd.Flags().StringVar(&req.Nationality, "nationality", "", "nationality")
	cmd.Flags().StringVar(&req.Direction, "direction", "", "arrival or departure")
	cmd.Flags().StringVar(&req.ETA, "eta", "", "estimated time of arrival")
	cmd.Flags().StringVar(&req.FlightHotel, "flight-hotel", "", "flight or hotel")
	cmd.Flags().StringVar(&req.ReservationDate, "date", "", "reservation date, YYYY-MM-DD (default today)")

	return cmd
}

func reservationAction(opts *RootOptions, use, short, method, suffix string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			var res reservationDto.ReservationResponse
			if err := client.Do(cmd.Context(), method, "/reservations/"+url.PathEscape(args[0])+suffix, nil, nil, &res); err != nil {
				return err
			}

			return opts.output(cmd).Reservation(res)
		},
	}
}

func NewShowCommand(opts *RootOptions) *cobra.Command {
	return reservationAction(opts, "show", "Show a reservation", http.MethodGet, "")
}

func NewCheckinCommand(opts *RootOptions) *cobra.Command {
	return reservationAction(opts, "checkin", "Check a reserved guest in", http.MethodPost, "/check-in")
}

func NewCheckoutCommand(opts *RootOptions) *cobra.Command {
	return reservationAction(opts, "checkout", "Check a guest out", http.MethodPost, "/check-out")
}

func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a reservation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			if err := client.Do(cmd.Context(), http.MethodDelete, "/reservations/"+url.PathEscape(args[0]), nil, nil, nil); err != nil {
				return err
			}

			opts.output(cmd).Message("Reservation %s deleted.", args[0])

			return nil
		},
	}
}

func NewRecentCommand(opts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List the most recent reservations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("invalid limit %d", limit)
			}

			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			query := url.Values{}
			if limit > 0 {
				query.Set(constant.RequestParamLimit, strconv.Itoa(limit))
			}

			var res reservationDto.ReservationsResponse
			if err := client.Do(cmd.Context(), http.MethodGet, "/reservations/recent", query, nil, &res); err != nil {
				return err
			}

			return opts.output(cmd).Reservations(res.Reservations)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of reservations (server default when 0)")

	return cmd
}
