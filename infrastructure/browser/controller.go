package browser

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"ksrtc_booker/domain/entities"
	"ksrtc_booker/domain/interfaces"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"
)

// Options configures the playwright session
type Options struct {
	Headless       bool
	SlowMo         time.Duration
	ViewportWidth  int
	ViewportHeight int
	// StatePath is where cookies and local storage are kept between runs.
	// Empty disables persistence.
	StatePath string
}

type browserController struct {
	pw         *playwright.Playwright
	browser    playwright.Browser
	context    playwright.BrowserContext
	page       playwright.Page
	statePath  string
	pages      []playwright.Page
	pagesMutex sync.Mutex
	logger     *logrus.Logger
}

// Install - downloads the chromium build playwright drives
func Install() error {
	return playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	})
}

// NewBrowserController - launches chromium and opens the first page
func NewBrowserController(opts Options, logger *logrus.Logger) (interfaces.Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	width, height := opts.ViewportWidth, opts.ViewportHeight
	if width == 0 || height == 0 {
		width, height = 1280, 720
	}

	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  width,
			Height: height,
		},
		JavaScriptEnabled: playwright.Bool(true),
	}

	if opts.StatePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.StatePath), 0755); err != nil {
			pw.Stop()
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
		if data, err := os.ReadFile(opts.StatePath); err == nil {
			var storageState playwright.StorageState
			if err := json.Unmarshal(data, &storageState); err == nil {
				contextOptions.StorageState = storageState.ToOptionalStorageState()
				logger.Debugf("Restored browser state from %s", opts.StatePath)
			}
		}
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		SlowMo:   playwright.Float(float64(opts.SlowMo.Milliseconds())),
		Args: []string{
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--disable-infobars",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	bctx, err := browser.NewContext(contextOptions)
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	controller := &browserController{
		pw:        pw,
		browser:   browser,
		context:   bctx,
		page:      page,
		statePath: opts.StatePath,
		pages:     []playwright.Page{page},
		logger:    logger,
	}

	controller.watchPage(page)

	// Payment gateways open in a new tab; follow it.
	bctx.OnPage(func(newPage playwright.Page) {
		controller.pagesMutex.Lock()
		controller.pages = append(controller.pages, newPage)
		controller.page = newPage
		controller.pagesMutex.Unlock()

		logger.Infof("Switched to new tab: %s", newPage.URL())
		controller.watchPage(newPage)
	})

	return controller, nil
}

// watchPage - accepts dialogs and drops the page from the tab list on close
func (b *browserController) watchPage(page playwright.Page) {
	page.OnDialog(func(dialog playwright.Dialog) {
		b.logger.Infof("Accepting %s dialog: %s", dialog.Type(), dialog.Message())
		dialog.Accept()
	})

	page.OnClose(func(closedPage playwright.Page) {
		b.pagesMutex.Lock()
		defer b.pagesMutex.Unlock()

		for i, p := range b.pages {
			if p == closedPage {
				b.pages = append(b.pages[:i], b.pages[i+1:]...)
				break
			}
		}

		if b.page == closedPage && len(b.pages) > 0 {
			b.page = b.pages[0]
		}
	})
}

func (b *browserController) currentPage() playwright.Page {
	b.pagesMutex.Lock()
	defer b.pagesMutex.Unlock()
	return b.page
}

// Navigate - navigates to the specified URL
func (b *browserController) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := b.currentPage().Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   millis(timeout),
	})
	return wrap("navigate", url, err)
}

// Click - clicks the first element matching selector
func (b *browserController) Click(ctx context.Context, selector string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := b.currentPage().Locator(selector).First().Click(playwright.LocatorClickOptions{
		Timeout: millis(timeout),
	})
	return wrap("click", selector, err)
}

// Fill - replaces the value of an input field
func (b *browserController) Fill(ctx context.Context, selector string, text string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := b.currentPage().Locator(selector).First().Fill(text, playwright.LocatorFillOptions{
		Timeout: millis(timeout),
	})
	return wrap("fill", selector, err)
}

// WaitVisible - waits for an element to become visible
func (b *browserController) WaitVisible(ctx context.Context, selector string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := b.currentPage().Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: millis(timeout),
	})
	return wrap("wait", selector, err)
}

// Count - counts elements matching selector
func (b *browserController) Count(ctx context.Context, selector string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	n, err := b.currentPage().Locator(selector).Count()
	if err != nil {
		return 0, wrap("count", selector, err)
	}
	return n, nil
}

// TextContent - returns the text of the first matching element
func (b *browserController) TextContent(ctx context.Context, selector string, timeout time.Duration) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := b.currentPage().Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: millis(timeout),
	})
	if err != nil {
		return "", wrap("text", selector, err)
	}
	return text, nil
}

// CurrentURL - returns the URL of the active tab
func (b *browserController) CurrentURL() string {
	return b.currentPage().URL()
}

// Screenshot - takes a screenshot of the current page
func (b *browserController) Screenshot(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	_, err := b.currentPage().Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	return err
}

// SaveState - saves browser state to persistent storage
func (b *browserController) SaveState() error {
	if b.context == nil || b.statePath == "" {
		return nil
	}

	if _, err := b.context.StorageState(b.statePath); err != nil {
		if isClosedErr(err) {
			return nil
		}
		return fmt.Errorf("failed to save browser state: %w", err)
	}

	return nil
}

// Close - saves state, closes the browser and stops the driver
func (b *browserController) Close() error {
	var errs []error

	if err := b.SaveState(); err != nil {
		errs = append(errs, err)
	}

	if b.context != nil {
		if err := b.context.Close(); err != nil && !isClosedErr(err) {
			errs = append(errs, fmt.Errorf("failed to close context: %w", err))
		}
		b.context = nil
	}

	if b.browser != nil {
		if err := b.browser.Close(); err != nil && !isClosedErr(err) {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
		b.browser = nil
	}

	if b.pw != nil {
		if err := b.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
		b.pw = nil
	}

	return errors.Join(errs...)
}

// wrap - maps playwright timeouts onto the domain timeout kind
func wrap(op, target string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return &entities.OpError{
			Op:   fmt.Sprintf("%s %s", op, target),
			Kind: entities.KindTimeout,
			Err:  errors.Join(entities.ErrTimeout, err),
		}
	}
	return fmt.Errorf("%s %s: %w", op, target, err)
}

func millis(d time.Duration) *float64 {
	if d <= 0 {
		return nil
	}
	return playwright.Float(float64(d.Milliseconds()))
}

// isClosedErr - the target may already be gone when we tidy up
func isClosedErr(err error) bool {
	if errors.Is(err, playwright.ErrTargetClosed) {
		return true
	}
	// driver messages that arrive without the sentinel
	errStr := err.Error()
	return strings.Contains(errStr, "closed") || strings.Contains(errStr, "target closed")
}
