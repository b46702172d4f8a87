// Package config loads booking runs from defaults, a YAML file, .env and
// KSRTC_* environment variables, in that order.
package config

import (
	"time"

	"ksrtc_booker/domain/entities"
)

const DefaultBaseURL = "https://onlineksrtcswift.com"

// Config is the full description of one booking run
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Booking BookingConfig `yaml:"booking"`
	Browser BrowserConfig `yaml:"browser"`
	Logs    LogsConfig    `yaml:"logs"`
}

// SiteConfig describes the target site
type SiteConfig struct {
	BaseURL string `yaml:"base_url"`

	// Cities maps city names to the numeric ids the search URL carries
	Cities    map[string]int     `yaml:"cities"`
	Selectors entities.Selectors `yaml:"selectors"`
}

// BookingConfig is the trip, the seats and who is travelling
type BookingConfig struct {
	Strategy     string          `yaml:"strategy"`
	From         string          `yaml:"from"`
	To           string          `yaml:"to"`
	Date         string          `yaml:"date"`
	BusProvider  string          `yaml:"bus_provider"`
	PickupPoint  string          `yaml:"pickup_point"`
	DropoffPoint string          `yaml:"dropoff_point"`
	Seats        SeatsConfig     `yaml:"seats"`
	Passenger    PassengerConfig `yaml:"passenger"`
	UPIID        string          `yaml:"upi_id"`
}

type SeatsConfig struct {
	Priority []int `yaml:"priority"`
	MaxSeats int   `yaml:"max_seats"`
}

type PassengerConfig struct {
	Name   string `yaml:"name"`
	Age    int    `yaml:"age"`
	Gender string `yaml:"gender"`
	Mobile string `yaml:"mobile"`
	Email  string `yaml:"email"`
}

// BrowserConfig configures the playwright session
type BrowserConfig struct {
	Headless       bool          `yaml:"headless"`
	SlowMo         time.Duration `yaml:"slow_mo"`
	ViewportWidth  int           `yaml:"viewport_width"`
	ViewportHeight int           `yaml:"viewport_height"`
	StatePath      string        `yaml:"state_path"`

	// HoldOpen keeps the window up after the last step so a human can finish
	HoldOpen time.Duration     `yaml:"hold_open"`
	Timeouts entities.Timeouts `yaml:"timeouts"`
}

type LogsConfig struct {
	Dir   string `yaml:"dir"`
	Debug bool   `yaml:"debug"`
}

// Default returns the Bangalore to Palakkad trip against the live site
func Default() Config {
	return Config{
		Site: SiteConfig{
			BaseURL: DefaultBaseURL,
			Cities: map[string]int{
				"Bangalore": 298,
				"Palakkad":  462,
			},
			Selectors: entities.DefaultSelectors(),
		},
		Booking: BookingConfig{
			Strategy:     "url",
			From:         "Bangalore",
			To:           "Palakkad",
			BusProvider:  "PALAKKAD DEPOT",
			PickupPoint:  "Huskur gate",
			DropoffPoint: "Palakkad",
			Seats: SeatsConfig{
				Priority: []int{3, 5, 4, 6},
				MaxSeats: 1,
			},
		},
		Browser: BrowserConfig{
			ViewportWidth:  1280,
			ViewportHeight: 720,
			SlowMo:         100 * time.Millisecond,
			Timeouts: entities.Timeouts{
				Navigation: 60 * time.Second,
				Popup:      10 * time.Second,
				Element:    30 * time.Second,
				SeatChart:  15 * time.Second,
				Option:     time.Second,
			},
		},
		Logs: LogsConfig{
			Dir: "logs",
		},
	}
}
