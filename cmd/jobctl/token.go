package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Abraxas-365/jobboard/pkg/iam/auth"
	"github.com/spf13/cobra"
)

// TokenCmd mints credentials for the jwt and bcrypt admin modes
func TokenCmd() *cobra.Command {
	var secret, issuer, subject string
	var ttl time.Duration
	var hash bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin JWT, or hash a static token with --hash",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if hash {
				if len(args) != 1 {
					return fmt.Errorf("--hash takes the token to hash as argument")
				}
				h, err := auth.HashToken(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), h)
				return nil
			}

			if secret == "" {
				return fmt.Errorf("the --secret flag or ADMIN_JWT_SECRET is required")
			}
			token, err := auth.IssueAdminToken(secret, issuer, subject, ttl)
			if err != nil {
				return fmt.Errorf("failed to issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("ADMIN_JWT_SECRET"), "HMAC secret shared with the server")
	cmd.Flags().StringVar(&issuer, "issuer", envOr("ADMIN_JWT_ISSUER", "jobboard"), "token issuer")
	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	cmd.Flags().BoolVar(&hash, "hash", false, "print a bcrypt hash for ADMIN_TOKEN_HASH instead")
	return cmd
}
