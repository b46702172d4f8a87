package interfaces

import (
	"context"
	"time"
)

// Browser defines the page operations the booking flow needs.
// Selectors are playwright selector strings: CSS, :has(), :has-text(),
// text=, nth= and >> chaining are all accepted.
type Browser interface {
	// Navigate navigates to a URL
	Navigate(ctx context.Context, url string, timeout time.Duration) error

	// Click clicks the first element matching selector
	Click(ctx context.Context, selector string, timeout time.Duration) error

	// Fill replaces the value of an input
	Fill(ctx context.Context, selector string, text string, timeout time.Duration) error

	// WaitVisible waits for an element to become visible
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error

	// Count returns how many elements match selector right now
	Count(ctx context.Context, selector string) (int, error)

	// TextContent returns the text of the first matching element
	TextContent(ctx context.Context, selector string, timeout time.Duration) (string, error)

	// CurrentURL returns the current page URL
	CurrentURL() string

	// Screenshot writes a screenshot of the current page to path
	Screenshot(ctx context.Context, path string) error

	// SaveState persists cookies and local storage
	SaveState() error

	// Close closes the browser
	Close() error
}
