package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ksrtc_booker/infrastructure/config"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	envFiles   []string
	debug      bool
}

// Execute runs the ksrtc command line and exits non-zero on failure
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "ksrtc",
		Short:        "Book KSRTC Swift bus tickets by driving the website",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return config.LoadDotEnv(opts.envFiles...)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "booking YAML file")
	cmd.PersistentFlags().StringSliceVar(&opts.envFiles, "env-file", nil, "extra .env files (default .env)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "verbose logging")

	cmd.AddCommand(
		bookCmd(opts),
		searchURLCmd(opts),
		reportsCmd(opts),
		installCmd(),
	)

	return cmd
}
