package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ksrtc_booker/domain/entities"
	"ksrtc_booker/domain/interfaces"
)

const reportSuffix = ".json"

type reportStore struct {
	dir string
}

// NewReportStore - creates run report storage under dir
func NewReportStore(dir string) (interfaces.ReportStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &reportStore{dir: dir}, nil
}

// Save - writes the report as indented JSON
func (s *reportStore) Save(report entities.RunReport) error {
	if report.ID == "" {
		return fmt.Errorf("report has no id")
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	// write then rename so a crash never leaves half a report
	tmp := s.path(report.ID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(report.ID))
}

// Load - loads one report by id
func (s *reportStore) Load(id string) (entities.RunReport, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return entities.RunReport{}, &entities.OpError{
				Op:   "load report " + id,
				Kind: entities.KindNotFound,
				Err:  err,
			}
		}
		return entities.RunReport{}, err
	}

	var report entities.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return entities.RunReport{}, fmt.Errorf("failed to decode report %s: %w", id, err)
	}

	return report, nil
}

// List - returns all reports, newest first
func (s *reportStore) List() ([]entities.RunReport, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	reports := make([]entities.RunReport, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), reportSuffix) {
			continue
		}
		report, err := s.Load(strings.TrimSuffix(e.Name(), reportSuffix))
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Started.After(reports[j].Started)
	})

	return reports, nil
}

func (s *reportStore) path(id string) string {
	return filepath.Join(s.dir, filepath.Base(id)+reportSuffix)
}
