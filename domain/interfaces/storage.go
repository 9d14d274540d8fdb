package interfaces

import "github.com/ford442/supertonic-TTS/domain/entities"

// ReportStore persists the outcome of verification runs
type ReportStore interface {
	// Save writes the run report
	Save(report *entities.RunReport) error

	// LoadLast loads the most recently saved report, or nil if none exists
	LoadLast() (*entities.RunReport, error)
}
