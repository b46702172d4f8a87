package entities

import (
	"fmt"
	"strings"
	"time"
)

// Selectors are the playwright selectors for every control the flow touches.
// %s placeholders are filled with the relevant name.
type Selectors struct {
	PopupClose    string `yaml:"popup_close"`
	BookingForm   string `yaml:"booking_form"`
	FromCityInput string `yaml:"from_city_input"`
	ToCityInput   string `yaml:"to_city_input"`
	CityOption    string `yaml:"city_option"`
	SwapButton    string `yaml:"swap_button"`
	ChosenToInput string `yaml:"chosen_to_input"`
	ChosenOption  string `yaml:"chosen_option"`
	DateInput     string `yaml:"date_input"`
	SearchButton  string `yaml:"search_button"`
	BusCard       string `yaml:"bus_card"`
	SelectSeats   string `yaml:"select_seats"`
	SeatChart     string `yaml:"seat_chart"`
	Seat          string `yaml:"seat"`
	SeatFare      string `yaml:"seat_fare"`
	SeatConfirm   string `yaml:"seat_confirm"`
	PickupOption  string `yaml:"pickup_option"`
	DropToggle    string `yaml:"drop_toggle"`
	DropOption    string `yaml:"drop_option"`
	PassengerNext string `yaml:"passenger_next"`
	NameInput     string `yaml:"name_input"`
	AgeInput      string `yaml:"age_input"`
	PayeeNext     string `yaml:"payee_next"`
	MobileInput   string `yaml:"mobile_input"`
	EmailInput    string `yaml:"email_input"`
	PaymentNext   string `yaml:"payment_next"`
	UPIInput      string `yaml:"upi_input"`
	PayButton     string `yaml:"pay_button"`
}

// DefaultSelectors - the site markup as of September 2025
func DefaultSelectors() Selectors {
	return Selectors{
		PopupClose:    "a.g-popup-close",
		BookingForm:   "text=Book Bus Ticket",
		FromCityInput: "#search-from-city input",
		ToCityInput:   "#search-to-city input",
		CityOption:    `text="%s"`,
		SwapButton:    "#swap",
		ChosenToInput: "#toCity_chosen input",
		ChosenOption:  ".chosen-results li >> text=%s",
		DateInput:     "input#departDate",
		SearchButton:  "button:has-text('Search')",
		BusCard:       "div.srch-card:has(:text('%s'))",
		SelectSeats:   ".selectbutton",
		SeatChart:     "div.seatchart:has(div.seat-wrap div.seats)",
		Seat:          "div.seatlook",
		SeatFare:      "div.farepopup",
		SeatConfirm:   "div.alert--wrap--bottom >> div:has-text('CONFIRM')",
		PickupOption:  "div.point-opt.active >> div:has-text('%s')",
		DropToggle:    "div.point-inp.flex-vc:has-text('%s')",
		DropOption:    "div.drop--val:has-text('%s')",
		PassengerNext: "div.pickups >> div.btnPassDetails:has-text('PROVIDE PASSENGER DETAILS')",
		NameInput:     `input[placeholder="Name"]`,
		AgeInput:      `input[name="paxAge[0]"]`,
		PayeeNext:     "div.navswitchbtn.flex-all-c:has-text('PROCEED TO PAYEE DETAILS')",
		MobileInput:   `input[name="mobileNo"]`,
		EmailInput:    `input[name="email"]`,
		PaymentNext:   "div.navswitchbtn.flex-all-c:has-text('PROCEED TO PAYMENT OPTIONS')",
		UPIInput:      "div.upi--input--wrap input",
		PayButton:     "div.flex-all-c.navswitchbtn:has-text('VERIFY & PAY')",
	}
}

var selectorQuote = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `"`, `\"`)

// Selector fills the %s in template with value. Inside a quoted placeholder
// ('%s' or "%s") quotes and backslashes in value are escaped; an unquoted
// text= body is matched literally and gets value as is.
func Selector(template, value string) string {
	if strings.Contains(template, "'%s'") || strings.Contains(template, `"%s"`) {
		value = selectorQuote.Replace(value)
	}
	return fmt.Sprintf(template, value)
}

// Timeouts per kind of wait
type Timeouts struct {
	Navigation time.Duration `yaml:"navigation"`
	Popup      time.Duration `yaml:"popup"`
	Element    time.Duration `yaml:"element"`
	SeatChart  time.Duration `yaml:"seat_chart"`

	// Option is the short wait for controls that may legitimately be absent
	Option time.Duration `yaml:"option"`
}
