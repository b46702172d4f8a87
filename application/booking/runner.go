package booking

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"ksrtc_booker/domain/entities"
	"ksrtc_booker/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Options are the site and run settings that are not part of the request
type Options struct {
	BaseURL       string
	Selectors     entities.Selectors
	Timeouts      entities.Timeouts
	ScreenshotDir string

	// HoldOpen keeps the browser up after the last step
	HoldOpen time.Duration
}

// Runner drives one booking run from the first page to the pay button
type Runner struct {
	browser interfaces.Browser
	guard   interfaces.PaymentGuard
	store   interfaces.ReportStore
	logger  *logrus.Logger
	opts    Options
	now     func() time.Time
	newID   func() string
}

// NewRunner - store may be nil when reports are not kept
func NewRunner(browser interfaces.Browser, guard interfaces.PaymentGuard, store interfaces.ReportStore, logger *logrus.Logger, opts Options) *Runner {
	return &Runner{
		browser: browser,
		guard:   guard,
		store:   store,
		logger:  logger,
		opts:    opts,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Run executes every step for req, closes the browser and saves the report.
// The error is nil when the run reached the end, even if best-effort steps
// were degraded.
func (r *Runner) Run(ctx context.Context, req entities.BookingRequest) (entities.RunReport, error) {
	report := entities.RunReport{
		ID:          r.newID(),
		Strategy:    req.Strategy,
		BusProvider: req.BusProvider,
		TravelDate:  entities.FormatTravelDate(req.Journey.Date),
		Status:      entities.StatusRunning,
		Started:     r.now(),
	}

	log := r.logger.WithField("run", report.ID)
	log.Infof("Starting bus booking automation for KSRTC Swift (%s strategy).", req.Strategy)

	f := &flow{
		browser:  r.browser,
		guard:    r.guard,
		logger:   r.logger,
		baseURL:  r.opts.BaseURL,
		sel:      r.opts.Selectors,
		timeouts: r.opts.Timeouts,
		req:      req,
	}

	runErr := r.runSteps(ctx, f.Steps(), &report)
	report.SelectedSeats = f.selected
	report.Finished = r.now()

	if runErr == nil {
		log.Infof("Total time taken to reach the last command: %.2f seconds.", report.Elapsed().Seconds())
		if report.Status == entities.StatusDegraded {
			log.Warn("Finished, but some steps did not complete. See the report.")
		} else {
			log.Info("SUCCESS: All steps completed successfully.")
		}
	}

	r.holdOpen(ctx)

	if err := r.browser.Close(); err != nil {
		log.Warnf("Failed to close browser cleanly: %v", err)
	}
	log.Info("Automation session closed.")

	if r.store != nil {
		if err := r.store.Save(report); err != nil {
			log.Errorf("Failed to save run report: %v", err)
		}
	}

	return report, runErr
}

func (r *Runner) runSteps(ctx context.Context, steps []Step, report *entities.RunReport) error {
	report.Status = entities.StatusSucceeded

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			for _, rest := range steps[i:] {
				report.Steps = append(report.Steps, entities.StepResult{Name: rest.Name, Status: entities.StatusSkipped})
			}
			report.Status = entities.StatusFailed
			return &entities.OpError{Op: "booking " + step.Name, Kind: entities.KindCanceled, Err: err}
		}

		result := entities.StepResult{
			Name:    step.Name,
			Started: r.now(),
		}

		if step.Skip {
			result.Status = entities.StatusSkipped
			report.Steps = append(report.Steps, result)
			r.logger.Debugf("Skipping %s: nothing configured", step.Name)
			continue
		}

		err := step.Run(ctx)
		result.Duration = r.now().Sub(result.Started)

		switch {
		case err == nil:
			result.Status = entities.StatusSucceeded

		case errors.Is(err, entities.ErrPaymentNotApproved):
			result.Status = entities.StatusSkipped
			result.Error = err.Error()
			r.logger.Warn("Stopping before payment: not approved.")

		case step.Policy == BestEffort:
			result.Status = entities.StatusDegraded
			result.Error = err.Error()
			result.Screenshot = r.screenshot(ctx, step.Name, err)
			report.Status = entities.StatusDegraded
			r.logger.Errorf("Step %s did not complete: %v", step.Name, err)

		default:
			result.Status = entities.StatusFailed
			result.Error = err.Error()
			result.Screenshot = r.screenshot(ctx, step.Name, err)
			report.Steps = append(report.Steps, result)
			report.Status = entities.StatusFailed
			if entities.IsTimeout(err) {
				r.logger.Errorf("Timeout occurred in %s. The page structure might have changed.", step.Name)
			} else {
				r.logger.Errorf("An unexpected error occurred in %s: %v", step.Name, err)
			}
			return fmt.Errorf("step %s: %w", step.Name, err)
		}

		report.Steps = append(report.Steps, result)
	}

	return nil
}

// screenshot - <dir>/<step>_timeout_<unix>.png or <step>_failure_<unix>.png
func (r *Runner) screenshot(ctx context.Context, step string, cause error) string {
	if r.opts.ScreenshotDir == "" {
		return ""
	}

	kind := "failure"
	if entities.IsTimeout(cause) {
		kind = "timeout"
	}
	path := filepath.Join(r.opts.ScreenshotDir, fmt.Sprintf("%s_%s_%d.png", step, kind, r.now().Unix()))

	// the run context may be the reason we failed; still capture the page
	if err := r.browser.Screenshot(context.WithoutCancel(ctx), path); err != nil {
		r.logger.Warnf("Failed to capture screenshot: %v", err)
		return ""
	}

	r.logger.Infof("Screenshot saved to %s", path)
	return path
}

func (r *Runner) holdOpen(ctx context.Context) {
	if r.opts.HoldOpen <= 0 {
		return
	}

	r.logger.Infof("Keeping the browser open for %s...", r.opts.HoldOpen)
	select {
	case <-ctx.Done():
	case <-time.After(r.opts.HoldOpen):
	}
}
