package booking

import (
	"context"
	"fmt"
	"strconv"

	"ksrtc_booker/domain/entities"
	"ksrtc_booker/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// Policy says what a failing step does to the run
type Policy int

const (
	// Required steps abort the run on error
	Required Policy = iota
	// BestEffort steps are logged and the run carries on
	BestEffort
)

// Step is one named action against the site
type Step struct {
	Name   string
	Policy Policy

	// Skip is set when the request leaves nothing for the step to do
	Skip bool
	Run  func(ctx context.Context) error
}

// flow holds the per-run state the steps share
type flow struct {
	browser  interfaces.Browser
	guard    interfaces.PaymentGuard
	logger   *logrus.Logger
	baseURL  string
	sel      entities.Selectors
	timeouts entities.Timeouts
	req      entities.BookingRequest
	selected []int
}

// Steps returns the ordered steps for the request's strategy
func (f *flow) Steps() []Step {
	var steps []Step

	switch f.req.Strategy {
	case entities.StrategyURL:
		steps = append(steps,
			Step{Name: "open_search", Policy: Required, Run: f.openSearch},
		)
	case entities.StrategyForm, entities.StrategySwap:
		steps = append(steps,
			Step{Name: "open_home", Policy: Required, Run: f.openHome},
			Step{Name: "dismiss_popup", Policy: BestEffort, Run: f.dismissPopup},
			Step{Name: "wait_form", Policy: Required, Run: f.waitForm},
		)
		if f.req.Strategy == entities.StrategyForm {
			steps = append(steps, Step{Name: "fill_cities", Policy: Required, Run: f.fillCities})
		} else {
			steps = append(steps, Step{Name: "swap_cities", Policy: Required, Run: f.swapCities})
		}
		steps = append(steps,
			Step{Name: "pick_date", Policy: Required, Run: f.pickDate},
		)
	}

	return append(steps,
		Step{Name: "select_bus", Policy: Required, Run: f.selectBus},
		Step{Name: "select_seats", Policy: BestEffort, Run: f.selectSeats},
		Step{Name: "select_pickup", Policy: BestEffort, Skip: f.req.PickupPoint == "", Run: f.selectPickup},
		Step{Name: "select_drop", Policy: BestEffort, Skip: f.req.DropoffPoint == "", Run: f.selectDrop},
		Step{Name: "passenger_details", Policy: BestEffort, Run: f.enterPassengerDetails},
		Step{Name: "payee_details", Policy: BestEffort, Run: f.enterPayeeDetails},
	)
}

func (f *flow) openSearch(ctx context.Context) error {
	f.logger.Info("Building and navigating to the search results page directly.")

	u := SearchURL(f.baseURL, f.req.Journey)
	f.logger.Debugf("Search URL: %s", u)
	return f.browser.Navigate(ctx, u, f.timeouts.Navigation)
}

func (f *flow) openHome(ctx context.Context) error {
	f.logger.Infof("Navigating to %s...", f.baseURL)
	return f.browser.Navigate(ctx, f.baseURL, f.timeouts.Navigation)
}

func (f *flow) dismissPopup(ctx context.Context) error {
	f.logger.Info("Checking for and closing promotional messages...")

	err := f.browser.Click(ctx, f.sel.PopupClose, f.timeouts.Popup)
	if entities.IsTimeout(err) {
		f.logger.Info("No promotional pop-up found, continuing...")
		return nil
	}
	if err != nil {
		return err
	}

	f.logger.Info("Promotional pop-up closed successfully.")
	return nil
}

func (f *flow) waitForm(ctx context.Context) error {
	return f.browser.WaitVisible(ctx, f.sel.BookingForm, f.timeouts.Element)
}

func (f *flow) fillCities(ctx context.Context) error {
	from, to := f.req.Journey.From.Name, f.req.Journey.To.Name

	f.logger.Infof("Filling 'From' city: %s", from)
	if err := f.pickCity(ctx, f.sel.FromCityInput, from); err != nil {
		return err
	}

	f.logger.Infof("Filling 'To' city: %s", to)
	if err := f.pickCity(ctx, f.sel.ToCityInput, to); err != nil {
		return err
	}

	f.logger.Info("'From' and 'To' cities selected.")
	return nil
}

func (f *flow) pickCity(ctx context.Context, input, name string) error {
	if err := f.browser.Fill(ctx, input, name, f.timeouts.Element); err != nil {
		return err
	}
	return f.browser.Click(ctx, entities.Selector(f.sel.CityOption, name), f.timeouts.Element)
}

// swapCities relies on the home page pre-filling the form: swapping puts the
// default destination in the origin slot, then only the destination is typed
func (f *flow) swapCities(ctx context.Context) error {
	to := f.req.Journey.To.Name

	if from := f.req.Journey.From.Name; from != "" {
		f.logger.Warnf("Swap strategy keeps the site's pre-filled 'From' city; configured origin %q is not entered.", from)
	}

	f.logger.Info("Swapping default 'From' and 'To' cities.")
	if err := f.browser.Click(ctx, f.sel.SwapButton, f.timeouts.Element); err != nil {
		return err
	}

	f.logger.Infof("Changing 'To' city to: %s", to)
	if err := f.browser.Fill(ctx, f.sel.ChosenToInput, to, f.timeouts.Element); err != nil {
		return err
	}
	return f.browser.Click(ctx, entities.Selector(f.sel.ChosenOption, to), f.timeouts.Element)
}

func (f *flow) pickDate(ctx context.Context) error {
	date := entities.FormatTravelDate(f.req.Journey.Date)

	f.logger.Infof("Setting travel date: %s", date)
	if err := f.browser.Fill(ctx, f.sel.DateInput, date, f.timeouts.Element); err != nil {
		return err
	}
	return f.browser.Click(ctx, f.sel.SearchButton, f.timeouts.Element)
}

// busCard - the first result card mentioning the provider
func (f *flow) busCard() string {
	return entities.Selector(f.sel.BusCard, f.req.BusProvider) + " >> nth=0"
}

func (f *flow) seatChart() string {
	return f.busCard() + " >> " + f.sel.SeatChart
}

func (f *flow) selectBus(ctx context.Context) error {
	f.logger.Infof("Searching for bus provided by: '%s'...", f.req.BusProvider)

	card := f.busCard()
	if err := f.browser.WaitVisible(ctx, card, f.timeouts.Element); err != nil {
		return fmt.Errorf("no bus from %q in the results: %w", f.req.BusProvider, err)
	}

	f.logger.Info("Bus card found. Clicking 'Select Seats' button.")
	return f.browser.Click(ctx, card+" >> "+f.sel.SelectSeats, f.timeouts.Element)
}

func (f *flow) selectPickup(ctx context.Context) error {
	name := f.req.PickupPoint
	f.logger.Infof("Attempting to select pickup point: '%s'", name)

	option := f.seatChart() + " >> " + entities.Selector(f.sel.PickupOption, name)
	if err := f.browser.Click(ctx, option, f.timeouts.Option); err != nil {
		if entities.IsTimeout(err) {
			return fmt.Errorf("pickup point '%s' not found or dropdown did not appear: %w", name, err)
		}
		return err
	}

	f.logger.Infof("Selected pickup point: %s", name)
	return nil
}

func (f *flow) selectDrop(ctx context.Context) error {
	name := f.req.DropoffPoint
	f.logger.Infof("Attempting to select dropoff point: '%s'", name)

	chart := f.seatChart()
	if err := f.browser.Click(ctx, chart+" >> "+entities.Selector(f.sel.DropToggle, name), f.timeouts.Element); err != nil {
		return err
	}

	if err := f.browser.Click(ctx, chart+" >> "+entities.Selector(f.sel.DropOption, name), f.timeouts.Option); err != nil {
		if entities.IsTimeout(err) {
			return fmt.Errorf("dropoff point '%s' not found: %w", name, err)
		}
		return err
	}

	if err := f.browser.Click(ctx, chart+" >> "+f.sel.PassengerNext, f.timeouts.Element); err != nil {
		return err
	}

	f.logger.Infof("Selected dropoff point: %s", name)
	return nil
}

func (f *flow) enterPassengerDetails(ctx context.Context) error {
	p := f.req.Passenger
	f.logger.Info("Entering passenger details.")

	if err := f.browser.Fill(ctx, f.sel.NameInput, p.Name, f.timeouts.Element); err != nil {
		return err
	}
	f.logger.Infof("Name entered: %s", p.Name)

	if err := f.browser.Fill(ctx, f.sel.AgeInput, strconv.Itoa(p.Age), f.timeouts.Element); err != nil {
		return err
	}
	f.logger.Infof("Age entered: %d", p.Age)

	if err := f.browser.Click(ctx, f.sel.PayeeNext, f.timeouts.Option); err != nil {
		return err
	}

	if err := f.browser.Fill(ctx, f.sel.MobileInput, p.Mobile, f.timeouts.Element); err != nil {
		return err
	}
	if err := f.browser.Fill(ctx, f.sel.EmailInput, p.Email, f.timeouts.Element); err != nil {
		return err
	}

	return f.browser.Click(ctx, f.sel.PaymentNext, f.timeouts.Option)
}

func (f *flow) enterPayeeDetails(ctx context.Context) error {
	f.logger.Info("Entering payee details.")

	if err := f.browser.Fill(ctx, f.sel.UPIInput, f.req.Payment.UPIID, f.timeouts.Element); err != nil {
		return fmt.Errorf("UPI field: %w", err)
	}
	f.logger.Info("UPI ID entered successfully.")

	if err := f.guard.Approve(ctx, f.req, f.browser.CurrentURL()); err != nil {
		return err
	}

	return f.browser.Click(ctx, f.sel.PayButton, f.timeouts.Option)
}
