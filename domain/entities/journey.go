package entities

import (
	"fmt"
	"strings"
	"time"
)

// SiteDateLayout is the date layout used by the booking site (28-09-2025)
const SiteDateLayout = "02-01-2006"

const isoDateLayout = "2006-01-02"

// City represents a city as the booking site identifies it
type City struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// SearchValue returns the "<id>|<name>" value the search page expects
func (c City) SearchValue() string {
	return fmt.Sprintf("%d|%s", c.ID, c.Name)
}

// Journey represents a one-way trip on a given day
type Journey struct {
	From City      `json:"from"`
	To   City      `json:"to"`
	Date time.Time `json:"date"`
}

// ParseTravelDate parses DD-MM-YYYY or YYYY-MM-DD
func ParseTravelDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("travel date is empty")
	}
	for _, layout := range []string{SiteDateLayout, isoDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid travel date %q: expected DD-MM-YYYY or YYYY-MM-DD", s)
}

// FormatTravelDate renders a date the way the site wants it
func FormatTravelDate(t time.Time) string {
	return t.Format(SiteDateLayout)
}
