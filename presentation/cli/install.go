package cli

import (
	"fmt"

	"ksrtc_booker/infrastructure/browser"

	"github.com/spf13/cobra"
)

func installCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download the playwright driver and chromium",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := browser.Install(); err != nil {
				return fmt.Errorf("failed to install playwright: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Chromium is ready.")
			return nil
		},
	}
}
