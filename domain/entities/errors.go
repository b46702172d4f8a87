package entities

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification
var (
	ErrTimeout            = errors.New("timeout")
	ErrPaymentNotApproved = errors.New("payment not approved")
)

// ErrorKind is a coarse-grained categorization for errors
type ErrorKind string

const (
	KindTimeout        ErrorKind = "timeout"
	KindNotFound       ErrorKind = "not_found"
	KindInvalidConfig  ErrorKind = "invalid_config"
	KindPaymentBlocked ErrorKind = "payment_blocked"
	KindCanceled       ErrorKind = "canceled"
)

// OpError wraps an underlying error with the operation that failed
type OpError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// IsTimeout reports whether err is (or wraps) a browser timeout
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout) || IsKind(err, KindTimeout)
}
