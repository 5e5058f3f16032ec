// Command jobctl manages the job board catalog and submits applications
// from the terminal.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/Abraxas-365/jobboard/board/client"
	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type options struct {
	baseURL    string
	adminToken string
	timeout    time.Duration
}

func (o *options) client(extra ...client.Option) *client.Client {
	opts := []client.Option{client.WithTimeout(o.timeout)}
	if o.adminToken != "" {
		opts = append(opts, client.WithAdminToken(o.adminToken))
	}
	return client.New(o.baseURL, append(opts, extra...)...)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "jobctl",
		Short:         "A cli for the job board API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.baseURL, "url", envOr("JOBBOARD_URL", "http://localhost:8080"), "job board base URL")
	root.PersistentFlags().StringVar(&opts.adminToken, "token", os.Getenv("ADMIN_TOKEN"), "admin bearer token for post and delete")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")

	root.AddCommand(ListCmd(opts))
	root.AddCommand(PostCmd(opts))
	root.AddCommand(DeleteCmd(opts))
	root.AddCommand(ApplyCmd(opts))
	root.AddCommand(TokenCmd())
	return root
}

func main() {
	if err := loadEnvFile(); err != nil {
		logx.Warnf("could not load .env: %v", err)
	}

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logx.Errorf("%v", err)
		os.Exit(1)
	}
}

// loadEnvFile loads .env (or the given files) into the environment. A missing
// file is not an error.
func loadEnvFile(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
