package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ford442/supertonic-TTS/application/verifier"
	"github.com/ford442/supertonic-TTS/infrastructure/browser"
	"github.com/ford442/supertonic-TTS/infrastructure/config"
	"github.com/ford442/supertonic-TTS/infrastructure/storage"
	"github.com/ford442/supertonic-TTS/presentation/terminal"
)

// newSession builds the browser session; tests swap in a fake
var newSession = browser.NewSession

// Execute runs the CLI and returns the run's error, if any
func Execute() error {
	cfg := config.Load()
	return newRootCmd(cfg).Execute()
}

func newRootCmd(cfg config.Config) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "mixer-verify",
		Short: "Drive the mixer UI through headless Chromium and verify it",
		Long: `mixer-verify opens the mixer panel in a headless browser, checks that
the heatmap, canvas and operation buttons are visible, replays the preset
click sequence and captures a screenshot for visual inspection.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerification(cmd, cfg, verbose)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "base URL of the app under verification (default scenario uses http://localhost:4173)")
	flags.StringVar(&cfg.ScreenshotPath, "screenshot", cfg.ScreenshotPath, "screenshot output path")
	flags.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "run report output path")
	flags.StringVar(&cfg.ScenarioPath, "scenario", cfg.ScenarioPath, "YAML scenario file overriding the built-in mixer scenario")
	flags.BoolVar(&cfg.Headless, "headless", cfg.Headless, "run the browser headless")
	flags.DurationVar(&cfg.SlowMo, "slow-mo", cfg.SlowMo, "delay between browser operations, for watching headed runs")
	flags.DurationVar(&cfg.VisibilityTimeout, "timeout", cfg.VisibilityTimeout, "per-assertion visibility timeout (0 uses the default)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every step")

	cmd.AddCommand(newInstallCmd())
	return cmd
}

func runVerification(cmd *cobra.Command, cfg config.Config, verbose bool) error {
	logger := newLogger(verbose)

	scenario, err := cfg.Scenario()
	if err != nil {
		return err
	}

	session, err := newSession(browser.SessionOptions{
		Headless: cfg.Headless,
		SlowMo:   cfg.SlowMo,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	// Teardown happens here exactly once, wherever the run stopped.
	defer func() {
		if err := session.Close(); err != nil {
			logger.WithError(err).Warn("browser teardown reported an error")
		}
	}()

	runner := verifier.NewRunner(session, logger).WithVisibilityTimeout(cfg.VisibilityTimeout)
	report, runErr := runner.Run(cmd.Context(), scenario)

	if cfg.ReportPath != "" {
		if err := storage.NewReportStore(cfg.ReportPath).Save(report); err != nil {
			logger.WithError(err).Warn("failed to save run report")
		}
	}

	terminal.NewPrinter(cmd.OutOrStdout()).PrintReport(report)
	return runErr
}

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download the playwright driver and Chromium",
		RunE: func(cmd *cobra.Command, args []string) error {
			return browser.Install()
		},
	}
}

func newLogger(verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.InfoLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}
