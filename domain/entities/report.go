package entities

import "time"

// Phase represents how far a run progressed through the fixed sequence
type Phase string

const (
	PhaseNotStarted           Phase = "not_started"
	PhaseNavigated            Phase = "navigated"
	PhasePanelRevealed        Phase = "panel_revealed"
	PhaseElementsVerified     Phase = "elements_verified"
	PhaseInteractionsReplayed Phase = "interactions_replayed"
	PhaseCaptured             Phase = "captured"
	PhaseDone                 Phase = "done"
)

// StepStatus is the outcome of a single step
type StepStatus string

const (
	StepPassed StepStatus = "passed"
	StepFailed StepStatus = "failed"
)

// StepResult records one executed step of the sequence
type StepResult struct {
	Description string        `json:"description"`
	Status      StepStatus    `json:"status"`
	Took        time.Duration `json:"took"`
	Error       string        `json:"error,omitempty"`
}

// RunReport records one full verification run. A failed run still carries
// every step attempted before the failure.
type RunReport struct {
	RunID      string       `json:"run_id"`
	Scenario   string       `json:"scenario"`
	BaseURL    string       `json:"base_url"`
	Phase      Phase        `json:"phase"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Steps      []StepResult `json:"steps"`
	Screenshot string       `json:"screenshot,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// Succeeded reports whether the run reached the terminal success state
func (r *RunReport) Succeeded() bool {
	return r.Phase == PhaseDone && r.Error == ""
}
