package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	notificationDto "frontdesk/internal/domains/notification/model/dto"
)

func NewPushCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Manage push notification endpoints",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "subscribe <endpoint>",
		Short: "Deliver front desk events to an endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			var res notificationDto.SubscriptionResponse

			req := notificationDto.SubscribeRequest{Endpoint: args[0]}
			if err := client.Do(cmd.Context(), http.MethodPost, "/push/subscriptions", nil, req, &res); err != nil {
				return err
			}

			out := opts.output(cmd)
			if opts.Format == FormatJSON {
				return out.JSON(res)
			}

			out.Message("Subscribed %s.", res.Endpoint)

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "unsubscribe <endpoint>",
		Short: "Stop delivering to an endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			req := notificationDto.UnsubscribeRequest{Endpoint: args[0]}
			if err := client.Do(cmd.Context(), http.MethodDelete, "/push/subscriptions", nil, req, nil); err != nil {
				return err
			}

			opts.output(cmd).Message("Unsubscribed %s.", args[0])

			return nil
		},
	})

	cmd.AddCommand(newAnnounceCommand(opts))

	return cmd
}

func newAnnounceCommand(opts *RootOptions) *cobra.Command {
	req := notificationDto.AnnouncementRequest{}

	cmd := &cobra.Command{
		Use:   "announce",
		Short: "Broadcast an announcement to every subscriber",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			var res notificationDto.AnnouncementResponse

			if err := client.Do(cmd.Context(), http.MethodPost, "/push/announcements", nil, req, &res); err != nil {
				return err
			}

			out := opts.output(cmd)
			if opts.Format == FormatJSON {
				return out.JSON(res)
			}

			out.Message("Announcement %q sent (%s priority).", res.Title, res.Priority)

			return nil
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "announcement title")
	cmd.Flags().StringVar(&req.Body, "body", "", "announcement text")
	cmd.Flags().StringVar(&req.Priority, "priority", "", "low, medium or high")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
