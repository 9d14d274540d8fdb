package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ford442/supertonic-TTS/domain/entities"
)

// scenarioFile is the YAML shape of a scenario. Locators are written in
// shorthand: give one of role+name, selector, or text. Delays are Go
// duration strings ("500ms", "1s").
type scenarioFile struct {
	Name        string        `yaml:"name"`
	BaseURL     string        `yaml:"base_url"`
	Reveal      locatorFile   `yaml:"reveal"`
	Assertions  []locatorFile `yaml:"assertions"`
	Clicks      []clickFile   `yaml:"clicks"`
	SettleDelay string        `yaml:"settle_delay"`
	Screenshot  string        `yaml:"screenshot"`
}

type locatorFile struct {
	Role     string `yaml:"role"`
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
	Text     string `yaml:"text"`
}

type clickFile struct {
	locatorFile `yaml:",inline"`
	Delay       string `yaml:"delay"`
}

// LoadScenario - parses a YAML scenario file into the domain model
func LoadScenario(path string) (entities.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.Scenario{}, wrapLoadError(path, err)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return entities.Scenario{}, wrapLoadError(path, err)
	}

	scenario := entities.Scenario{
		Name:           file.Name,
		BaseURL:        file.BaseURL,
		ScreenshotPath: file.Screenshot,
	}

	if scenario.Reveal, err = file.Reveal.toLocator(); err != nil {
		return entities.Scenario{}, wrapLoadError(path, fmt.Errorf("reveal: %w", err))
	}

	for i, a := range file.Assertions {
		target, err := a.toLocator()
		if err != nil {
			return entities.Scenario{}, wrapLoadError(path, fmt.Errorf("assertion %d: %w", i, err))
		}
		scenario.Assertions = append(scenario.Assertions, target)
	}

	for i, c := range file.Clicks {
		target, err := c.toLocator()
		if err != nil {
			return entities.Scenario{}, wrapLoadError(path, fmt.Errorf("click %d: %w", i, err))
		}
		step := entities.ClickStep{Target: target}
		if step.Delay, err = parseDelay(c.Delay); err != nil {
			return entities.Scenario{}, wrapLoadError(path, fmt.Errorf("click %d: %w", i, err))
		}
		scenario.Clicks = append(scenario.Clicks, step)
	}

	if scenario.SettleDelay, err = parseDelay(file.SettleDelay); err != nil {
		return entities.Scenario{}, wrapLoadError(path, fmt.Errorf("settle_delay: %w", err))
	}

	return scenario, nil
}

func (l locatorFile) toLocator() (entities.Locator, error) {
	switch {
	case l.Role != "":
		if l.Name == "" {
			return entities.Locator{}, fmt.Errorf("role locator %q needs a name", l.Role)
		}
		return entities.Locator{Kind: entities.LocatorRole, Role: l.Role, Name: l.Name}, nil
	case l.Selector != "":
		return entities.CSS(l.Selector), nil
	case l.Text != "":
		return entities.VisibleText(l.Text), nil
	default:
		return entities.Locator{}, fmt.Errorf("locator needs role+name, selector or text")
	}
}

func parseDelay(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	return time.ParseDuration(value)
}
