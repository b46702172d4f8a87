package booking

import (
	"context"
	"io"
	"time"

	"ksrtc_booker/domain/entities"

	"github.com/sirupsen/logrus"
)

// fakeBrowser answers from canned maps and records what the flow did
type fakeBrowser struct {
	errs   map[string]error
	counts map[string]int
	texts  map[string]string
	url    string

	clicks      []string
	fills       map[string]string
	navigations []string
	screenshots []string
	closed      bool

	// onClick lets a test react to a click, e.g. cancel the run
	onClick func(selector string)
}

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{
		errs:   map[string]error{},
		counts: map[string]int{},
		texts:  map[string]string{},
		fills:  map[string]string{},
		url:    "about:blank",
	}
}

func timeoutErr(op string) error {
	return &entities.OpError{Op: op, Kind: entities.KindTimeout, Err: entities.ErrTimeout}
}

func (b *fakeBrowser) Navigate(_ context.Context, url string, _ time.Duration) error {
	if err := b.errs[url]; err != nil {
		return err
	}
	b.navigations = append(b.navigations, url)
	b.url = url
	return nil
}

func (b *fakeBrowser) Click(_ context.Context, selector string, _ time.Duration) error {
	if err := b.errs[selector]; err != nil {
		return err
	}
	b.clicks = append(b.clicks, selector)
	if b.onClick != nil {
		b.onClick(selector)
	}
	return nil
}

func (b *fakeBrowser) Fill(_ context.Context, selector string, text string, _ time.Duration) error {
	if err := b.errs[selector]; err != nil {
		return err
	}
	b.fills[selector] = text
	return nil
}

func (b *fakeBrowser) WaitVisible(_ context.Context, selector string, _ time.Duration) error {
	return b.errs[selector]
}

func (b *fakeBrowser) Count(_ context.Context, selector string) (int, error) {
	return b.counts[selector], nil
}

func (b *fakeBrowser) TextContent(_ context.Context, selector string, _ time.Duration) (string, error) {
	text, ok := b.texts[selector]
	if !ok {
		return "", timeoutErr("text " + selector)
	}
	return text, nil
}

func (b *fakeBrowser) CurrentURL() string {
	return b.url
}

func (b *fakeBrowser) Screenshot(_ context.Context, path string) error {
	b.screenshots = append(b.screenshots, path)
	return nil
}

func (b *fakeBrowser) SaveState() error {
	return nil
}

func (b *fakeBrowser) Close() error {
	b.closed = true
	return nil
}

func (b *fakeBrowser) clicked(selector string) bool {
	for _, c := range b.clicks {
		if c == selector {
			return true
		}
	}
	return false
}

type stubGuard struct {
	err    error
	called bool
}

func (g *stubGuard) Approve(context.Context, entities.BookingRequest, string) error {
	g.called = true
	return g.err
}

type memStore struct {
	saved []entities.RunReport
}

func (s *memStore) Save(r entities.RunReport) error {
	s.saved = append(s.saved, r)
	return nil
}

func (s *memStore) Load(id string) (entities.RunReport, error) {
	for _, r := range s.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return entities.RunReport{}, &entities.OpError{Op: "load", Kind: entities.KindNotFound}
}

func (s *memStore) List() ([]entities.RunReport, error) {
	return s.saved, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
