package booking

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"ksrtc_booker/domain/entities"
)

// ErrNoSeatSelected means none of the preferred seats could be taken
var ErrNoSeatSelected = errors.New("no priority seats were selected")

// selectSeats walks the priority list and clicks the first free seat whose
// fare popup names it, until MaxSeats are held
func (f *flow) selectSeats(ctx context.Context) error {
	f.logger.Info("Searching for available seats...")

	chart := f.seatChart()
	if err := f.browser.WaitVisible(ctx, chart, f.timeouts.SeatChart); err != nil {
		f.logger.Error("Seat chart not found.")
		return fmt.Errorf("seat chart not found: %w", err)
	}
	f.logger.Info("Seat chart found. Checking for available seats.")

	seats := chart + " >> " + f.sel.Seat
	for _, seatNum := range f.req.Seats.Priority {
		if len(f.selected) >= f.req.Seats.MaxSeats {
			break
		}
		// a second click on a held seat releases it
		if slices.Contains(f.selected, seatNum) {
			continue
		}

		idx, err := f.findSeat(ctx, seats, seatNum)
		if err != nil {
			return err
		}
		if idx < 0 {
			f.logger.Debugf("Seat %d is not free", seatNum)
			continue
		}

		f.logger.Infof("Selecting seat %d", seatNum)
		if err := f.browser.Click(ctx, nth(seats, idx), f.timeouts.Element); err != nil {
			return err
		}
		f.selected = append(f.selected, seatNum)

		f.confirmSeat(ctx, chart)
	}

	if len(f.selected) == 0 {
		f.logger.Warn("No priority seats were selected.")
		return ErrNoSeatSelected
	}

	f.logger.Infof("Selected %d seat(s).", len(f.selected))
	return nil
}

// findSeat returns the index of the free seat numbered seatNum, or -1
func (f *flow) findSeat(ctx context.Context, seats string, seatNum int) (int, error) {
	count, err := f.browser.Count(ctx, seats)
	if err != nil {
		return -1, err
	}

	label := fmt.Sprintf("Seat: %d |", seatNum)
	for i := 0; i < count; i++ {
		seat := nth(seats, i)

		text, err := f.browser.TextContent(ctx, seat, f.timeouts.Option)
		if err != nil {
			return -1, err
		}
		if strings.Contains(text, "Sold") {
			continue
		}

		fare, err := f.browser.TextContent(ctx, seat+" >> "+f.sel.SeatFare, f.timeouts.Option)
		if entities.IsTimeout(err) {
			// aisle and driver cells carry no fare popup
			continue
		}
		if err != nil {
			return -1, err
		}
		if strings.Contains(fare, label) {
			return i, nil
		}
	}

	return -1, nil
}

// confirmSeat dismisses the reserved-for-women confirmation when it shows up
func (f *flow) confirmSeat(ctx context.Context, chart string) {
	err := f.browser.Click(ctx, chart+" >> "+f.sel.SeatConfirm, f.timeouts.Option)
	switch {
	case err == nil:
		f.logger.Info("Confirmation button was successfully clicked.")
	case entities.IsTimeout(err):
		f.logger.Info("No confirmation pop-up was found, continuing...")
	default:
		f.logger.Errorf("An unexpected error occurred while clicking the button: %v", err)
	}
}

func nth(selector string, i int) string {
	return fmt.Sprintf("%s >> nth=%d", selector, i)
}
