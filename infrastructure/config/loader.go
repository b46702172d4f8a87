package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"ksrtc_booker/domain/entities"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "KSRTC_"

// LoadDotEnv loads .env files into the process environment. With no files
// it reads ./.env if there is one; files named explicitly must exist.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err == nil {
		return nil
	}
	if len(files) == 0 && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return &entities.OpError{
		Op:   "config.dotenv",
		Kind: entities.KindInvalidConfig,
		Err:  err,
	}
}

// Load builds a Config from defaults, the YAML file at path (optional) and
// KSRTC_* environment variables
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, &entities.OpError{
				Op:   "config.load " + path,
				Kind: entities.KindNotFound,
				Err:  err,
			}
		}

		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, &entities.OpError{
				Op:   "config.load " + path,
				Kind: entities.KindInvalidConfig,
				Err:  err,
			}
		}
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, &entities.OpError{
			Op:   "config.env",
			Kind: entities.KindInvalidConfig,
			Err:  err,
		}
	}

	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}

	str("BASE_URL", &cfg.Site.BaseURL)
	str("STRATEGY", &cfg.Booking.Strategy)
	str("FROM", &cfg.Booking.From)
	str("TO", &cfg.Booking.To)
	str("DATE", &cfg.Booking.Date)
	str("BUS_PROVIDER", &cfg.Booking.BusProvider)
	str("PICKUP_POINT", &cfg.Booking.PickupPoint)
	str("DROPOFF_POINT", &cfg.Booking.DropoffPoint)
	str("PASSENGER_NAME", &cfg.Booking.Passenger.Name)
	str("PASSENGER_GENDER", &cfg.Booking.Passenger.Gender)
	str("PASSENGER_MOBILE", &cfg.Booking.Passenger.Mobile)
	str("PASSENGER_EMAIL", &cfg.Booking.Passenger.Email)
	str("UPI_ID", &cfg.Booking.UPIID)
	str("STATE_PATH", &cfg.Browser.StatePath)
	str("LOGS_DIR", &cfg.Logs.Dir)

	if v, ok := lookup(envPrefix + "PASSENGER_AGE"); ok && v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPASSENGER_AGE: %w", envPrefix, err)
		}
		cfg.Booking.Passenger.Age = age
	}

	if v, ok := lookup(envPrefix + "SEATS"); ok && v != "" {
		seats, err := ParseSeatList(v)
		if err != nil {
			return fmt.Errorf("%sSEATS: %w", envPrefix, err)
		}
		cfg.Booking.Seats.Priority = seats
	}

	if v, ok := lookup(envPrefix + "HEADLESS"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sHEADLESS: %w", envPrefix, err)
		}
		cfg.Browser.Headless = b
	}

	if v, ok := lookup(envPrefix + "HOLD_OPEN"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sHOLD_OPEN: %w", envPrefix, err)
		}
		cfg.Browser.HoldOpen = d
	}

	return nil
}

// ParseSeatList parses "3,5,4,6". A seat may appear only once.
func ParseSeatList(s string) ([]int, error) {
	var seats []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid seat number %q", part)
		}
		if slices.Contains(seats, n) {
			return nil, fmt.Errorf("seat %d is listed twice", n)
		}
		seats = append(seats, n)
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("no seat numbers in %q", s)
	}
	return seats, nil
}

// LookupCity resolves a city name against the configured ids, ignoring case
func (c Config) LookupCity(name string) (entities.City, bool) {
	name = strings.TrimSpace(name)
	for known, id := range c.Site.Cities {
		if strings.EqualFold(known, name) {
			return entities.City{ID: id, Name: known}, true
		}
	}
	return entities.City{Name: name}, false
}

// BookingRequest turns the loaded config into a validated request
func (c Config) BookingRequest() (entities.BookingRequest, error) {
	fail := func(err error) (entities.BookingRequest, error) {
		return entities.BookingRequest{}, &entities.OpError{
			Op:   "config.booking",
			Kind: entities.KindInvalidConfig,
			Err:  err,
		}
	}

	strategy, err := entities.ParseStrategy(c.Booking.Strategy)
	if err != nil {
		return fail(err)
	}

	from, fromKnown := c.LookupCity(c.Booking.From)
	to, toKnown := c.LookupCity(c.Booking.To)
	if strategy == entities.StrategyURL && (!fromKnown || !toKnown) {
		return fail(fmt.Errorf("the url strategy needs city ids for %q and %q; add them under site.cities", c.Booking.From, c.Booking.To))
	}

	date, err := entities.ParseTravelDate(c.Booking.Date)
	if err != nil {
		return fail(err)
	}

	req := entities.BookingRequest{
		Journey: entities.Journey{
			From: from,
			To:   to,
			Date: date,
		},
		Strategy:     strategy,
		BusProvider:  c.Booking.BusProvider,
		PickupPoint:  c.Booking.PickupPoint,
		DropoffPoint: c.Booking.DropoffPoint,
		Seats: entities.SeatPreference{
			Priority: c.Booking.Seats.Priority,
			MaxSeats: c.Booking.Seats.MaxSeats,
		},
		Passenger: entities.Passenger{
			Name:   c.Booking.Passenger.Name,
			Age:    c.Booking.Passenger.Age,
			Gender: c.Booking.Passenger.Gender,
			Mobile: c.Booking.Passenger.Mobile,
			Email:  c.Booking.Passenger.Email,
		},
		Payment: entities.Payment{UPIID: c.Booking.UPIID},
	}

	if err := req.Validate(); err != nil {
		return fail(err)
	}
	return req, nil
}
