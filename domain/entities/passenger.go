package entities

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
	upiPattern    = regexp.MustCompile(`^[A-Za-z0-9._-]+@[A-Za-z0-9]+$`)
)

// Passenger holds the traveller details typed into the passenger form
type Passenger struct {
	Name   string `json:"name" yaml:"name"`
	Age    int    `json:"age" yaml:"age"`
	Gender string `json:"gender" yaml:"gender"`
	Mobile string `json:"mobile" yaml:"mobile"`
	Email  string `json:"email" yaml:"email"`
}

// Validate checks the fields the site rejects
func (p Passenger) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("passenger name is required")
	}
	if p.Age < 1 || p.Age > 120 {
		return fmt.Errorf("passenger age %d out of range", p.Age)
	}
	if !mobilePattern.MatchString(p.Mobile) {
		return fmt.Errorf("mobile number must be 10 digits")
	}
	if !strings.Contains(p.Email, "@") {
		return fmt.Errorf("invalid email %q", p.Email)
	}
	return nil
}

// Payment holds payee details
type Payment struct {
	UPIID string `json:"upi_id" yaml:"upi_id"`
}

// Validate checks the UPI handle shape (handle@provider)
func (p Payment) Validate() error {
	if !upiPattern.MatchString(p.UPIID) {
		return fmt.Errorf("invalid UPI id %q", p.UPIID)
	}
	return nil
}
