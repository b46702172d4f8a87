package security

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"ksrtc_booker/domain/entities"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubApprover struct {
	answer bool
	err    error
	prompt string
}

func (s *stubApprover) Confirm(_ context.Context, prompt string) (bool, error) {
	s.prompt = prompt
	return s.answer, s.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func request() entities.BookingRequest {
	return entities.BookingRequest{
		Journey: entities.Journey{
			From: entities.City{ID: 298, Name: "Bangalore"},
			To:   entities.City{ID: 462, Name: "Palakkad"},
			Date: time.Date(2025, 9, 28, 0, 0, 0, 0, time.UTC),
		},
		BusProvider: "PALAKKAD DEPOT",
		Passenger:   entities.Passenger{Name: "Test Rider"},
		Payment:     entities.Payment{UPIID: "9999912345@okbank"},
	}
}

func TestPaymentGuardAutoApprove(t *testing.T) {
	g := NewPaymentGuard(true, nil, quietLogger())
	assert.NoError(t, g.Approve(context.Background(), request(), ""))
}

func TestPaymentGuardNoApprover(t *testing.T) {
	g := NewPaymentGuard(false, nil, quietLogger())
	err := g.Approve(context.Background(), request(), "")
	require.Error(t, err)
	assert.True(t, entities.IsKind(err, entities.KindPaymentBlocked))
	assert.True(t, errors.Is(err, entities.ErrPaymentNotApproved))
}

func TestPaymentGuardAsksApprover(t *testing.T) {
	yes := &stubApprover{answer: true}
	g := NewPaymentGuard(false, yes, quietLogger())
	require.NoError(t, g.Approve(context.Background(), request(), "https://onlineksrtcswift.com/payment"))

	assert.Contains(t, yes.prompt, "Bangalore -> Palakkad on 28-09-2025")
	assert.Contains(t, yes.prompt, "PALAKKAD DEPOT")
	assert.NotContains(t, yes.prompt, "9999912345")

	no := &stubApprover{answer: false}
	err := NewPaymentGuard(false, no, quietLogger()).Approve(context.Background(), request(), "")
	assert.True(t, errors.Is(err, entities.ErrPaymentNotApproved))
}

func TestPaymentGuardApproverError(t *testing.T) {
	broken := &stubApprover{err: io.ErrUnexpectedEOF}
	err := NewPaymentGuard(false, broken, quietLogger()).Approve(context.Background(), request(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
}

func TestMaskUPI(t *testing.T) {
	assert.Equal(t, "********45@okbank", maskUPI("9999912345@okbank"))
	assert.Equal(t, "***", maskUPI("ab@x"))
	assert.Equal(t, "***", maskUPI("no-at-sign"))
}
