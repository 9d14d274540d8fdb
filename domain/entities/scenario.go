package entities

import (
	"fmt"
	"time"
)

// ClickStep is one scripted click with an optional pause afterwards,
// giving client-side rendering time to settle before the next step.
type ClickStep struct {
	Target Locator       `json:"target"`
	Delay  time.Duration `json:"delay,omitempty"`
}

// Scenario is the declarative verification sequence executed against one
// page session. Visibility assertions are independent of each other but are
// executed in declared order; the click script is strictly ordered because
// it models a user session.
type Scenario struct {
	Name           string        `json:"name"`
	BaseURL        string        `json:"base_url"`
	Reveal         Locator       `json:"reveal"`
	Assertions     []Locator     `json:"assertions"`
	Clicks         []ClickStep   `json:"clicks"`
	SettleDelay    time.Duration `json:"settle_delay"`
	ScreenshotPath string        `json:"screenshot_path"`
}

// Validate checks the scenario is structurally complete enough to run
func (s *Scenario) Validate() error {
	if s.BaseURL == "" {
		return fmt.Errorf("scenario %q: base_url is required", s.Name)
	}
	if s.Reveal.IsZero() {
		return fmt.Errorf("scenario %q: reveal locator is required", s.Name)
	}
	if s.ScreenshotPath == "" {
		return fmt.Errorf("scenario %q: screenshot_path is required", s.Name)
	}
	for i, a := range s.Assertions {
		if a.IsZero() {
			return fmt.Errorf("scenario %q: assertion %d is empty", s.Name, i)
		}
	}
	for i, c := range s.Clicks {
		if c.Target.IsZero() {
			return fmt.Errorf("scenario %q: click %d has no target", s.Name, i)
		}
	}
	return nil
}

// DefaultMixerScenario returns the canonical verification sequence for the
// mixer panel: reveal the panel, check the heatmap heading, canvas and
// operation buttons, then exercise Mirror X and every singing mode preset.
func DefaultMixerScenario() Scenario {
	presetDelay := 500 * time.Millisecond
	presets := []string{
		"📖 Verse",
		"🎤 Chorus",
		"🌉 Bridge",
		"🎬 Intro",
		"🎬 Outro",
		"🎵 General",
	}

	assertions := []Locator{
		VisibleText("Timbre Heatmap (Style TTL)"),
		CSS("#mixerCanvas"),
		ButtonNamed("Mirror X"),
		ButtonNamed("Sharpen"),
	}
	clicks := []ClickStep{
		{Target: ButtonNamed("Mirror X"), Delay: presetDelay},
	}
	for _, name := range presets {
		assertions = append(assertions, ButtonNamed(name))
		clicks = append(clicks, ClickStep{Target: ButtonNamed(name), Delay: presetDelay})
	}

	return Scenario{
		Name:           "mixer-ui",
		BaseURL:        "http://localhost:4173",
		Reveal:         ButtonNamed("Show Mixer & Editor"),
		Assertions:     append([]Locator{CSS("#mixerPanel")}, assertions...),
		Clicks:         clicks,
		SettleDelay:    time.Second,
		ScreenshotPath: "mixer_ui.png",
	}
}
