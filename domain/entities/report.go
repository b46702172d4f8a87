package entities

import "time"

// RunStatus represents the status of a run or a single step
type RunStatus string

const (
	StatusRunning   RunStatus = "running"
	StatusSucceeded RunStatus = "succeeded"
	StatusFailed    RunStatus = "failed"
	StatusSkipped   RunStatus = "skipped"
	// StatusDegraded means the run finished but a best-effort step did not
	StatusDegraded RunStatus = "degraded"
)

// StepResult represents the outcome of one step
type StepResult struct {
	Name       string        `json:"name"`
	Status     RunStatus     `json:"status"`
	Started    time.Time     `json:"started"`
	Duration   time.Duration `json:"duration"`
	Error      string        `json:"error,omitempty"`
	Screenshot string        `json:"screenshot,omitempty"`
}

// RunReport represents a whole booking run
type RunReport struct {
	ID            string       `json:"id"`
	Strategy      Strategy     `json:"strategy"`
	BusProvider   string       `json:"bus_provider"`
	TravelDate    string       `json:"travel_date"`
	Status        RunStatus    `json:"status"`
	Started       time.Time    `json:"started"`
	Finished      time.Time    `json:"finished"`
	Steps         []StepResult `json:"steps"`
	SelectedSeats []int        `json:"selected_seats,omitempty"`
}

// Elapsed returns the wall time of the run
func (r RunReport) Elapsed() time.Duration {
	if r.Finished.IsZero() {
		return 0
	}
	return r.Finished.Sub(r.Started)
}

// FailedStep returns the first failed step, if any
func (r RunReport) FailedStep() (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Status == StatusFailed {
			return s, true
		}
	}
	return StepResult{}, false
}
