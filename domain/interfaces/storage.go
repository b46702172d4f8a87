package interfaces

import "ksrtc_booker/domain/entities"

// ReportStore keeps run reports between invocations
type ReportStore interface {
	// Save stores a run report, overwriting one with the same ID
	Save(report entities.RunReport) error

	// Load loads a run report by ID
	Load(id string) (entities.RunReport, error)

	// List returns all reports, newest first
	List() ([]entities.RunReport, error)
}
