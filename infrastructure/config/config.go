package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ford442/supertonic-TTS/domain/entities"
)

// Config holds the runtime settings of a verification run. Values come from
// a .env file if present, then the environment; command-line flags override
// both.
type Config struct {
	BaseURL           string
	ScreenshotPath    string
	ReportPath        string
	ScenarioPath      string
	Headless          bool
	SlowMo            time.Duration
	VisibilityTimeout time.Duration
}

// Load - reads configuration from .env and the environment
func Load() Config {
	// .env file is optional
	godotenv.Load()

	return Config{
		BaseURL:           getEnv("MIXER_BASE_URL", ""),
		ScreenshotPath:    getEnv("MIXER_SCREENSHOT", ""),
		ReportPath:        getEnv("MIXER_REPORT", "mixer_ui_report.json"),
		ScenarioPath:      getEnv("MIXER_SCENARIO", ""),
		Headless:          getEnvBool("MIXER_HEADLESS", true),
		SlowMo:            getEnvDuration("MIXER_SLOWMO", 0),
		VisibilityTimeout: getEnvDuration("MIXER_TIMEOUT", 0),
	}
}

// Scenario resolves the scenario to run: the YAML file if one is configured,
// otherwise the built-in mixer scenario, with URL and screenshot overrides
// applied on top.
func (c Config) Scenario() (entities.Scenario, error) {
	scenario := entities.DefaultMixerScenario()

	if c.ScenarioPath != "" {
		loaded, err := LoadScenario(c.ScenarioPath)
		if err != nil {
			return entities.Scenario{}, err
		}
		scenario = loaded
	}

	if c.BaseURL != "" {
		scenario.BaseURL = c.BaseURL
	}
	if c.ScreenshotPath != "" {
		scenario.ScreenshotPath = c.ScreenshotPath
	}

	if err := scenario.Validate(); err != nil {
		return entities.Scenario{}, err
	}
	return scenario, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func wrapLoadError(path string, err error) error {
	return fmt.Errorf("failed to load scenario %s: %w", path, err)
}
