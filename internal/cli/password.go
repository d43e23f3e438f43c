package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"frontdesk/shared/password"
)

// NewHashPasswordCommand prints a stored-password hash for seeding the staff roster.
func NewHashPasswordCommand(opts *RootOptions) *cobra.Command {
	var digest, secret string

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Hash a password for the staff roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			hasher, err := password.NewDigest(digest)
			if err != nil {
				return err
			}

			plain, err := readSecret(cmd.InOrStdin(), secret)
			if err != nil {
				return err
			}

			hash, err := hasher.Hash(plain)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			out := opts.output(cmd)
			if opts.Format == FormatJSON {
				return out.JSON(map[string]string{"digest": digest, "hash": hash})
			}

			fmt.Fprintln(out.Writer, hash)

			return nil
		},
	}

	cmd.Flags().StringVar(&digest, "digest", password.DigestBcrypt, "digest (bcrypt|sha256)")
	cmd.Flags().StringVarP(&secret, "password", "p", "", "password, read from stdin when empty")

	return cmd
}
