package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ford442/supertonic-TTS/domain/entities"
	"github.com/ford442/supertonic-TTS/domain/interfaces"
)

type reportStore struct {
	path string
}

// NewReportStore - creates a report store writing to the given JSON path
func NewReportStore(path string) interfaces.ReportStore {
	return &reportStore{path: path}
}

// Save - writes the run report, overwriting the previous one
func (s *reportStore) Save(report *entities.RunReport) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return os.WriteFile(s.path, data, 0644)
}

// LoadLast - loads the most recent report; nil if none has been saved yet
func (s *reportStore) LoadLast() (*entities.RunReport, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var report entities.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}
