package cli

import (
	"time"

	"ksrtc_booker/infrastructure/config"

	"github.com/spf13/cobra"
)

// tripFlags are the trip overrides shared by book and search-url
type tripFlags struct {
	strategy string
	from     string
	to       string
	date     string
	bus      string
	pickup   string
	drop     string
	seats    string
	maxSeats int
	headless bool
	hold     time.Duration
	logsDir  string
}

func (f *tripFlags) bindTrip(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "origin city")
	cmd.Flags().StringVar(&f.to, "to", "", "destination city")
	cmd.Flags().StringVar(&f.date, "date", "", "travel date, DD-MM-YYYY or YYYY-MM-DD")
}

func (f *tripFlags) bindBooking(cmd *cobra.Command) {
	f.bindTrip(cmd)
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "url, form or swap")
	cmd.Flags().StringVar(&f.bus, "bus", "", "bus provider shown on the result card")
	cmd.Flags().StringVar(&f.pickup, "pickup", "", "pickup point")
	cmd.Flags().StringVar(&f.drop, "drop", "", "drop point")
	cmd.Flags().StringVar(&f.seats, "seats", "", "seat numbers in order of preference, e.g. 3,5,4,6")
	cmd.Flags().IntVar(&f.maxSeats, "max-seats", 0, "how many seats to take")
	cmd.Flags().BoolVar(&f.headless, "headless", false, "run without a browser window")
	cmd.Flags().DurationVar(&f.hold, "hold", 0, "keep the browser open this long after the last step")
	cmd.Flags().StringVar(&f.logsDir, "logs", "", "directory for booking.log, screenshots and reports")
}

// apply copies the flags the user actually set onto cfg
func (f *tripFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	set := cmd.Flags().Changed

	if set("strategy") {
		cfg.Booking.Strategy = f.strategy
	}
	if set("from") {
		cfg.Booking.From = f.from
	}
	if set("to") {
		cfg.Booking.To = f.to
	}
	if set("date") {
		cfg.Booking.Date = f.date
	}
	if set("bus") {
		cfg.Booking.BusProvider = f.bus
	}
	if set("pickup") {
		cfg.Booking.PickupPoint = f.pickup
	}
	if set("drop") {
		cfg.Booking.DropoffPoint = f.drop
	}
	if set("seats") {
		seats, err := config.ParseSeatList(f.seats)
		if err != nil {
			return err
		}
		cfg.Booking.Seats.Priority = seats
	}
	if set("max-seats") {
		cfg.Booking.Seats.MaxSeats = f.maxSeats
	}
	if set("headless") {
		cfg.Browser.Headless = f.headless
	}
	if set("hold") {
		cfg.Browser.HoldOpen = f.hold
	}
	if set("logs") {
		cfg.Logs.Dir = f.logsDir
	}
	return nil
}
