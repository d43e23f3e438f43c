package cli

import (
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	dutyDto "frontdesk/internal/domains/duty/model/dto"
	"frontdesk/shared/timezone"
)

func NewDutyCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duty",
		Short: "Request and answer duty swaps",
	}

	cmd.AddCommand(newDutyRequestCommand(opts))
	cmd.AddCommand(newDutyPendingCommand(opts))
	cmd.AddCommand(newDutyRespondCommand(opts, "accept", "Accept a duty swap addressed to you"))
	cmd.AddCommand(newDutyRespondCommand(opts, "reject", "Reject a duty swap addressed to you"))

	return cmd
}

func newDutyRequestCommand(opts *RootOptions) *cobra.Command {
	req := dutyDto.CreateDutyRequest{}

	cmd := &cobra.Command{
		Use:   "request",
		Short: "Ask a colleague to swap shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			if req.Date == "" {
				req.Date = timezone.Day(timezone.Now())
			}

			var res dutyDto.DutyRequestResponse
			if err := client.Do(cmd.Context(), http.MethodPost, "/duty-requests", nil, req, &res); err != nil {
				return err
			}

			return opts.output(cmd).DutyRequests(dutyDto.DutyRequestsResponse{res})
		},
	}

	cmd.Flags().StringVar(&req.ToUser, "to", "", "username of the colleague")
	cmd.Flags().StringVar(&req.FromTime, "from-time", "", "your shift")
	cmd.Flags().StringVar(&req.ToTime, "to-time", "", "their shift")
	cmd.Flags().StringVar(&req.Date, "date", "", "duty date, YYYY-MM-DD (default today)")

	return cmd
}

func newDutyPendingCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Duty swaps waiting for your answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			var res dutyDto.DutyRequestsResponse
			if err := client.Do(cmd.Context(), http.MethodGet, "/duty-requests/pending", nil, nil, &res); err != nil {
				return err
			}

			return opts.output(cmd).DutyRequests(res)
		},
	}
}

func newDutyRespondCommand(opts *RootOptions, action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			var res dutyDto.DutyRequestResponse
			if err := client.Do(cmd.Context(), http.MethodPost, "/duty-requests/"+url.PathEscape(args[0])+"/"+action, nil, nil, &res); err != nil {
				return err
			}

			return opts.output(cmd).DutyRequests(dutyDto.DutyRequestsResponse{res})
		},
	}
}
