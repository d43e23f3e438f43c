package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	envServer     = "FRONTDESK_SERVER"
	defaultServer = "http://localhost:8080"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server      string
	SessionPath string
	Format      string
}

func (o *RootOptions) store() SessionStore {
	return SessionStore{Path: o.SessionPath}
}

// client builds an API client for the stored session. The --server flag wins
// over the server recorded at login.
func (o *RootOptions) client(cmd *cobra.Command) (*Client, *Session, error) {
	session, err := o.store().Load()
	if err != nil {
		return nil, nil, err
	}

	server := session.Server
	if cmd.Flags().Changed("server") || server == "" {
		server = o.Server
	}

	store := o.store()

	return NewClient(server, &session, store.Save), &session, nil
}

func (o *RootOptions) output(cmd *cobra.Command) *Output {
	return &Output{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// NewRootCommand creates the frontdesk shell.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	server := os.Getenv(envServer)
	if server == "" {
		server = defaultServer
	}

	cmd := &cobra.Command{
		Use:   "frontdesk",
		Short: "Front desk shell for reservations, queues, reports and duty swaps",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains([]string{FormatText, FormatJSON}, opts.Format) {
				return fmt.Errorf("invalid format %q: must be %s or %s", opts.Format, FormatText, FormatJSON)
			}

			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", server, "frontdesk API base URL")
	cmd.PersistentFlags().StringVar(&opts.SessionPath, "session", DefaultSessionPath(), "session file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (text|json)")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewStaffCommand(opts))
	cmd.AddCommand(NewReserveCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewRecentCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewCheckinCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))
	cmd.AddCommand(NewQueueCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewDutyCommand(opts))
	cmd.AddCommand(NewPushCommand(opts))
	cmd.AddCommand(NewHashPasswordCommand(opts))

	return cmd
}
