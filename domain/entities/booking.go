package entities

import "fmt"

// Strategy represents how the search results page is reached
type Strategy string

const (
	// StrategyURL navigates straight to the constructed search URL
	StrategyURL Strategy = "url"
	// StrategyForm types both cities into the home page form
	StrategyForm Strategy = "form"
	// StrategySwap swaps the pre-filled cities and retypes the destination
	StrategySwap Strategy = "swap"
)

// ParseStrategy validates a strategy name
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyURL, StrategyForm, StrategySwap:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want url, form or swap)", s)
	}
}

// SeatPreference describes which seats to try and how many to take
type SeatPreference struct {
	Priority []int `json:"priority" yaml:"priority"`
	MaxSeats int   `json:"max_seats" yaml:"max_seats"`
}

// DefaultSeatPreference - window seats near the front, one seat
func DefaultSeatPreference() SeatPreference {
	return SeatPreference{
		Priority: []int{3, 5, 4, 6},
		MaxSeats: 1,
	}
}

// BookingRequest represents everything needed for one booking run
type BookingRequest struct {
	Journey      Journey        `json:"journey"`
	Strategy     Strategy       `json:"strategy"`
	BusProvider  string         `json:"bus_provider"`
	Seats        SeatPreference `json:"seats"`
	PickupPoint  string         `json:"pickup_point"`
	DropoffPoint string         `json:"dropoff_point"`
	Passenger    Passenger      `json:"passenger"`
	Payment      Payment        `json:"payment"`
}

// Validate checks that the request can drive a full run
func (r BookingRequest) Validate() error {
	if _, err := ParseStrategy(string(r.Strategy)); err != nil {
		return err
	}
	if r.Journey.From.Name == "" || r.Journey.To.Name == "" {
		return fmt.Errorf("origin and destination cities are required")
	}
	if r.Journey.From.Name == r.Journey.To.Name {
		return fmt.Errorf("origin and destination are both %q", r.Journey.From.Name)
	}
	if r.Journey.Date.IsZero() {
		return fmt.Errorf("travel date is required")
	}
	if r.BusProvider == "" {
		return fmt.Errorf("bus provider is required")
	}
	if r.Seats.MaxSeats < 1 {
		return fmt.Errorf("max seats must be at least 1")
	}
	if len(r.Seats.Priority) == 0 {
		return fmt.Errorf("seat priority list is empty")
	}
	seen := make(map[int]bool, len(r.Seats.Priority))
	for _, n := range r.Seats.Priority {
		if n < 1 {
			return fmt.Errorf("invalid seat number %d", n)
		}
		if seen[n] {
			return fmt.Errorf("seat %d is listed twice in the priority list", n)
		}
		seen[n] = true
	}
	if err := r.Passenger.Validate(); err != nil {
		return err
	}
	return r.Payment.Validate()
}
