package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ford442/supertonic-TTS/domain/entities"
)

func TestSaveAndLoadLast(t *testing.T) {
	store := NewReportStore(filepath.Join(t.TempDir(), "reports", "last.json"))

	report := &entities.RunReport{
		RunID:     "run-1",
		Scenario:  "mixer-ui",
		BaseURL:   "http://localhost:4173",
		Phase:     entities.PhaseDone,
		StartedAt: time.Now().UTC().Truncate(time.Second),
		Steps: []entities.StepResult{
			{Description: `click: button "Mirror X"`, Status: entities.StepPassed, Took: 120 * time.Millisecond},
		},
		Screenshot: "mixer_ui.png",
	}
	require.NoError(t, store.Save(report))

	loaded, err := store.LoadLast()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, report.RunID, loaded.RunID)
	assert.Equal(t, entities.PhaseDone, loaded.Phase)
	require.Len(t, loaded.Steps, 1)
	assert.Equal(t, entities.StepPassed, loaded.Steps[0].Status)
	assert.True(t, loaded.Succeeded())
}

func TestSaveOverwritesPreviousReport(t *testing.T) {
	store := NewReportStore(filepath.Join(t.TempDir(), "last.json"))

	require.NoError(t, store.Save(&entities.RunReport{RunID: "run-1"}))
	require.NoError(t, store.Save(&entities.RunReport{RunID: "run-2"}))

	loaded, err := store.LoadLast()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "run-2", loaded.RunID)
}

func TestLoadLastWithoutPriorRun(t *testing.T) {
	store := NewReportStore(filepath.Join(t.TempDir(), "last.json"))

	loaded, err := store.LoadLast()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
