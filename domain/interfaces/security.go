package interfaces

import (
	"context"

	"ksrtc_booker/domain/entities"
)

// PaymentGuard decides whether the final pay button may be pressed
type PaymentGuard interface {
	// Approve returns nil when payment may proceed
	Approve(ctx context.Context, req entities.BookingRequest, currentURL string) error
}

// Approver asks a human to confirm an action
type Approver interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}
