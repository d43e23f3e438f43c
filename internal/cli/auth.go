package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	authDto "frontdesk/internal/domains/auth/model/dto"
	userDto "frontdesk/internal/domains/user/model/dto"
)

type loginOptions struct {
	Username string
	Password string
	Force    bool
}

// readSecret takes the first line of in when the flag was left empty.
func readSecret(in io.Reader, value string) (string, error) {
	if value != "" {
		return value, nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func NewLoginCommand(opts *RootOptions) *cobra.Command {
	login := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := opts.output(cmd)
			store := opts.store()

			if !login.Force {
				if session, err := store.Load(); err == nil {
					out.Message("Already logged in as %s (%s).", session.User.Name, session.User.Username)

					return nil
				}
			}

			if strings.TrimSpace(login.Username) == "" {
				return errors.New("--username is required")
			}

			secret, err := readSecret(cmd.InOrStdin(), login.Password)
			if err != nil {
				return err
			}

			var res authDto.LoginResponse

			client := NewClient(opts.Server, nil, nil)
			req := authDto.LoginRequest{Username: login.Username, Password: secret}

			if err := client.Do(cmd.Context(), http.MethodPost, "/auth/login", nil, req, &res); err != nil {
				return err
			}

			session := Session{
				Server:       opts.Server,
				AccessToken:  res.AccessToken,
				RefreshToken: res.RefreshToken,
				User:         res.User,
			}

			if err := store.Save(session); err != nil {
				return err
			}

			out.Message("Welcome, %s.", res.User.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&login.Username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&login.Password, "password", "p", "", "password, read from stdin when empty")
	cmd.Flags().BoolVar(&login.Force, "force", false, "sign in again even with a stored session")

	return cmd
}

func NewLogoutCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.store().Clear(); err != nil {
				return err
			}

			opts.output(cmd).Message("Logged out.")

			return nil
		},
	}
}

func NewWhoamiCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			var me userDto.UserResponse
			if err := client.Do(cmd.Context(), http.MethodGet, "/auth/me", nil, nil, &me); err != nil {
				return err
			}

			return opts.output(cmd).Users(userDto.UsersResponse{me})
		},
	}
}

func NewStaffCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "staff",
		Short: "List front desk staff",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, err := opts.client(cmd)
			if err != nil {
				return err
			}

			var staff userDto.UsersResponse
			if err := client.Do(cmd.Context(), http.MethodGet, "/staff", nil, nil, &staff); err != nil {
				return err
			}

			return opts.output(cmd).Users(staff)
		},
	}
}
