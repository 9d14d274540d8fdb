package verifier

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ford442/supertonic-TTS/domain/entities"
	"github.com/ford442/supertonic-TTS/domain/interfaces"
)

// DefaultVisibilityTimeout bounds the polling window of each visibility
// assertion when the runner is not configured otherwise.
const DefaultVisibilityTimeout = 5 * time.Second

// Runner executes a verification scenario against one browser session.
// The sequence is strictly linear: navigate, reveal the panel, verify the
// static elements and buttons, replay the click script, capture a
// screenshot. Any failure aborts the remaining steps; nothing is retried.
type Runner struct {
	session           interfaces.BrowserSession
	logger            *logrus.Logger
	visibilityTimeout time.Duration
}

// NewRunner - creates a runner bound to a browser session
func NewRunner(session interfaces.BrowserSession, logger *logrus.Logger) *Runner {
	return &Runner{
		session:           session,
		logger:            logger,
		visibilityTimeout: DefaultVisibilityTimeout,
	}
}

// WithVisibilityTimeout overrides the per-assertion polling window
func (r *Runner) WithVisibilityTimeout(timeout time.Duration) *Runner {
	if timeout > 0 {
		r.visibilityTimeout = timeout
	}
	return r
}

// Run executes the scenario. The returned report is never nil: on failure it
// records every step attempted and the phase the run reached. The session is
// not closed here; teardown belongs to the caller so it happens exactly once
// regardless of where the run stopped.
func (r *Runner) Run(ctx context.Context, scenario entities.Scenario) (*entities.RunReport, error) {
	report := &entities.RunReport{
		RunID:     uuid.NewString(),
		Scenario:  scenario.Name,
		BaseURL:   scenario.BaseURL,
		Phase:     entities.PhaseNotStarted,
		StartedAt: time.Now(),
	}
	defer func() { report.FinishedAt = time.Now() }()

	if err := scenario.Validate(); err != nil {
		report.Error = err.Error()
		return report, err
	}

	log := r.logger.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"scenario": scenario.Name,
	})
	log.WithField("url", scenario.BaseURL).Info("starting verification run")

	if err := r.fail(report, r.step(ctx, report, "navigate to "+scenario.BaseURL, func() error {
		return r.session.Navigate(ctx, scenario.BaseURL)
	})); err != nil {
		return report, err
	}
	report.Phase = entities.PhaseNavigated

	// Reveal the panel: the control must be visible before it is clicked.
	if err := r.fail(report, r.assertVisible(ctx, report, scenario.Reveal)); err != nil {
		return report, err
	}
	if err := r.fail(report, r.click(ctx, report, scenario.Reveal)); err != nil {
		return report, err
	}
	report.Phase = entities.PhasePanelRevealed

	for _, target := range scenario.Assertions {
		if err := r.fail(report, r.assertVisible(ctx, report, target)); err != nil {
			return report, err
		}
	}
	report.Phase = entities.PhaseElementsVerified

	for _, step := range scenario.Clicks {
		if err := r.fail(report, r.click(ctx, report, step.Target)); err != nil {
			return report, err
		}
		if err := r.pause(ctx, step.Delay); err != nil {
			report.Error = err.Error()
			return report, err
		}
	}
	report.Phase = entities.PhaseInteractionsReplayed

	// Let any remaining rendering settle before the capture.
	if err := r.pause(ctx, scenario.SettleDelay); err != nil {
		report.Error = err.Error()
		return report, err
	}
	if err := r.fail(report, r.step(ctx, report, "capture screenshot "+scenario.ScreenshotPath, func() error {
		return r.session.Screenshot(ctx, scenario.ScreenshotPath)
	})); err != nil {
		return report, err
	}
	report.Screenshot = scenario.ScreenshotPath
	report.Phase = entities.PhaseCaptured

	report.Phase = entities.PhaseDone
	log.WithField("steps", len(report.Steps)).Info("verification run completed")
	return report, nil
}

// assertVisible - read-only probe, no side effects
func (r *Runner) assertVisible(ctx context.Context, report *entities.RunReport, target entities.Locator) error {
	return r.step(ctx, report, "assert visible: "+target.String(), func() error {
		return r.session.WaitVisible(ctx, target, r.visibilityTimeout)
	})
}

func (r *Runner) click(ctx context.Context, report *entities.RunReport, target entities.Locator) error {
	return r.step(ctx, report, "click: "+target.String(), func() error {
		return r.session.Click(ctx, target)
	})
}

// step runs one operation and records its outcome on the report
func (r *Runner) step(ctx context.Context, report *entities.RunReport, description string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run canceled before %q: %w", description, err)
	}

	r.logger.WithField("step", description).Debug("executing step")
	started := time.Now()
	err := fn()

	result := entities.StepResult{
		Description: description,
		Status:      entities.StepPassed,
		Took:        time.Since(started),
	}
	if err != nil {
		result.Status = entities.StepFailed
		result.Error = err.Error()
		r.logger.WithField("step", description).WithError(err).Error("step failed")
	}
	report.Steps = append(report.Steps, result)
	return err
}

// fail records the aborting error on the report and passes it through
func (r *Runner) fail(report *entities.RunReport, err error) error {
	if err != nil && report.Error == "" {
		report.Error = err.Error()
	}
	return err
}

// pause is a cooperative fixed delay, not a correctness mechanism: it only
// gives client-side rendering and animation time to settle.
func (r *Runner) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return fmt.Errorf("run canceled during pause: %w", ctx.Err())
	}
}
