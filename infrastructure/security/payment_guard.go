package security

import (
	"context"
	"fmt"
	"strings"

	"ksrtc_booker/domain/entities"
	"ksrtc_booker/domain/interfaces"

	"github.com/sirupsen/logrus"
)

// PaymentGuard stops the run before money moves unless someone said yes
type PaymentGuard struct {
	autoApprove bool
	approver    interfaces.Approver
	logger      *logrus.Logger
}

// NewPaymentGuard - autoApprove skips the prompt, approver may be nil
func NewPaymentGuard(autoApprove bool, approver interfaces.Approver, logger *logrus.Logger) *PaymentGuard {
	return &PaymentGuard{
		autoApprove: autoApprove,
		approver:    approver,
		logger:      logger,
	}
}

func (g *PaymentGuard) Approve(ctx context.Context, req entities.BookingRequest, currentURL string) error {
	if g.autoApprove {
		g.logger.Warnf("Payment pre-approved by flag for UPI %s", maskUPI(req.Payment.UPIID))
		return nil
	}

	if g.approver == nil {
		return &entities.OpError{
			Op:   "approve payment",
			Kind: entities.KindPaymentBlocked,
			Err:  fmt.Errorf("%w: no approver configured, pass --confirm-payment to allow", entities.ErrPaymentNotApproved),
		}
	}

	ok, err := g.approver.Confirm(ctx, paymentPrompt(req, currentURL))
	if err != nil {
		return fmt.Errorf("failed to ask for payment approval: %w", err)
	}
	if !ok {
		return &entities.OpError{
			Op:   "approve payment",
			Kind: entities.KindPaymentBlocked,
			Err:  entities.ErrPaymentNotApproved,
		}
	}

	g.logger.Info("Payment approved at the terminal")
	return nil
}

func paymentPrompt(req entities.BookingRequest, currentURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "About to press VERIFY & PAY\n")
	fmt.Fprintf(&b, "  %s -> %s on %s\n", req.Journey.From.Name, req.Journey.To.Name, entities.FormatTravelDate(req.Journey.Date))
	fmt.Fprintf(&b, "  bus: %s, passenger: %s\n", req.BusProvider, req.Passenger.Name)
	fmt.Fprintf(&b, "  UPI: %s\n", maskUPI(req.Payment.UPIID))
	if currentURL != "" {
		fmt.Fprintf(&b, "  page: %s\n", currentURL)
	}
	b.WriteString("Proceed?")
	return b.String()
}

// maskUPI - keeps the provider and the last two characters of the handle
func maskUPI(id string) string {
	handle, provider, found := strings.Cut(id, "@")
	if !found || len(handle) <= 2 {
		return "***"
	}
	return strings.Repeat("*", len(handle)-2) + handle[len(handle)-2:] + "@" + provider
}

var _ interfaces.PaymentGuard = (*PaymentGuard)(nil)
