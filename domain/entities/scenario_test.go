package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatorString(t *testing.T) {
	assert.Equal(t, `button "Mirror X"`, ButtonNamed("Mirror X").String())
	assert.Equal(t, `selector "#mixerPanel"`, CSS("#mixerPanel").String())
	assert.Equal(t, `text "Timbre Heatmap (Style TTL)"`, VisibleText("Timbre Heatmap (Style TTL)").String())
	assert.Equal(t, "unknown locator", Locator{}.String())
}

func TestLocatorIsZero(t *testing.T) {
	assert.True(t, Locator{}.IsZero())
	assert.False(t, ButtonNamed("Sharpen").IsZero())
}

func TestScenarioValidate(t *testing.T) {
	valid := Scenario{
		Name:           "x",
		BaseURL:        "http://localhost:4173",
		Reveal:         ButtonNamed("Show Mixer & Editor"),
		ScreenshotPath: "out.png",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Scenario)
		want   string
	}{
		{"missing base url", func(s *Scenario) { s.BaseURL = "" }, "base_url"},
		{"missing reveal", func(s *Scenario) { s.Reveal = Locator{} }, "reveal"},
		{"missing screenshot", func(s *Scenario) { s.ScreenshotPath = "" }, "screenshot_path"},
		{"empty assertion", func(s *Scenario) { s.Assertions = []Locator{{}} }, "assertion 0"},
		{"click without target", func(s *Scenario) { s.Clicks = []ClickStep{{}} }, "click 0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			scenario := valid
			tc.mutate(&scenario)
			err := scenario.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestDefaultMixerScenario(t *testing.T) {
	scenario := DefaultMixerScenario()
	require.NoError(t, scenario.Validate())

	assert.Equal(t, "http://localhost:4173", scenario.BaseURL)
	assert.Equal(t, ButtonNamed("Show Mixer & Editor"), scenario.Reveal)

	// The panel container is checked first, before anything inside it.
	require.NotEmpty(t, scenario.Assertions)
	assert.Equal(t, CSS("#mixerPanel"), scenario.Assertions[0])
	assert.Contains(t, scenario.Assertions, VisibleText("Timbre Heatmap (Style TTL)"))
	assert.Contains(t, scenario.Assertions, CSS("#mixerCanvas"))
	assert.Contains(t, scenario.Assertions, ButtonNamed("Sharpen"))

	// Mirror X first, then every singing mode preset, in order.
	wantClicks := []string{
		"Mirror X", "📖 Verse", "🎤 Chorus", "🌉 Bridge", "🎬 Intro", "🎬 Outro", "🎵 General",
	}
	require.Len(t, scenario.Clicks, len(wantClicks))
	for i, name := range wantClicks {
		assert.Equal(t, ButtonNamed(name), scenario.Clicks[i].Target)
		assert.Equal(t, 500*time.Millisecond, scenario.Clicks[i].Delay)
		// Every clicked button is also asserted visible beforehand.
		assert.Contains(t, scenario.Assertions, ButtonNamed(name))
	}

	assert.Equal(t, time.Second, scenario.SettleDelay)
	assert.Equal(t, "mixer_ui.png", scenario.ScreenshotPath)
}

func TestRunReportSucceeded(t *testing.T) {
	report := RunReport{Phase: PhaseDone}
	assert.True(t, report.Succeeded())

	report.Error = "boom"
	assert.False(t, report.Succeeded())

	assert.False(t, (&RunReport{Phase: PhaseCaptured}).Succeeded())
}
