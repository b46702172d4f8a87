package cli

import (
	"fmt"

	"ksrtc_booker/application/booking"
	"ksrtc_booker/domain/entities"
	"ksrtc_booker/infrastructure/config"

	"github.com/spf13/cobra"
)

func searchURLCmd(opts *rootOptions) *cobra.Command {
	var flags tripFlags

	cmd := &cobra.Command{
		Use:   "search-url",
		Short: "Print the search results URL for a trip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, &cfg); err != nil {
				return err
			}

			from, ok := cfg.LookupCity(cfg.Booking.From)
			if !ok {
				return fmt.Errorf("no city id for %q; add it under site.cities", cfg.Booking.From)
			}
			to, ok := cfg.LookupCity(cfg.Booking.To)
			if !ok {
				return fmt.Errorf("no city id for %q; add it under site.cities", cfg.Booking.To)
			}
			date, err := entities.ParseTravelDate(cfg.Booking.Date)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), booking.SearchURL(cfg.Site.BaseURL, entities.Journey{
				From: from,
				To:   to,
				Date: date,
			}))
			return nil
		},
	}

	flags.bindTrip(cmd)
	return cmd
}
