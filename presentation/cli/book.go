package cli

import (
	"fmt"
	"path/filepath"

	"ksrtc_booker/application/booking"
	"ksrtc_booker/infrastructure/browser"
	"ksrtc_booker/infrastructure/config"
	"ksrtc_booker/infrastructure/logging"
	"ksrtc_booker/infrastructure/security"
	"ksrtc_booker/infrastructure/storage"
	"ksrtc_booker/presentation/terminal"

	"github.com/spf13/cobra"
)

func bookCmd(opts *rootOptions) *cobra.Command {
	var flags tripFlags
	var confirmPayment bool

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Run the booking flow up to (and, if approved, through) payment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &cfg); err != nil {
				return err
			}

			req, err := cfg.BookingRequest()
			if err != nil {
				return err
			}

			logger, cleanup, err := logging.Setup(logging.Config{
				Dir:     cfg.Logs.Dir,
				Debug:   opts.debug || cfg.Logs.Debug,
				Console: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer cleanup()

			store, err := storage.NewReportStore(reportsDir(cfg))
			if err != nil {
				return err
			}

			br, err := browser.NewBrowserController(browser.Options{
				Headless:       cfg.Browser.Headless,
				SlowMo:         cfg.Browser.SlowMo,
				ViewportWidth:  cfg.Browser.ViewportWidth,
				ViewportHeight: cfg.Browser.ViewportHeight,
				StatePath:      cfg.Browser.StatePath,
			}, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize browser: %w", err)
			}

			guard := security.NewPaymentGuard(confirmPayment, terminal.NewApprover(cmd.InOrStdin(), cmd.OutOrStdout()), logger)

			runner := booking.NewRunner(br, guard, store, logger, booking.Options{
				BaseURL:       cfg.Site.BaseURL,
				Selectors:     cfg.Site.Selectors,
				Timeouts:      cfg.Browser.Timeouts,
				ScreenshotDir: filepath.Join(cfg.Logs.Dir, "screenshots"),
				HoldOpen:      cfg.Browser.HoldOpen,
			})

			report, runErr := runner.Run(cmd.Context(), req)
			fmt.Fprintf(cmd.OutOrStdout(), "Run %s finished: %s (%.1fs)\n", report.ID, report.Status, report.Elapsed().Seconds())
			if len(report.SelectedSeats) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Seats: %v\n", report.SelectedSeats)
			}
			return runErr
		},
	}

	flags.bindBooking(cmd)
	cmd.Flags().BoolVar(&confirmPayment, "confirm-payment", false, "press VERIFY & PAY without asking")

	return cmd
}

func reportsDir(cfg config.Config) string {
	return filepath.Join(cfg.Logs.Dir, "reports")
}
