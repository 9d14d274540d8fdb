package browser

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/sirupsen/logrus"

	"github.com/ford442/supertonic-TTS/domain/entities"
	"github.com/ford442/supertonic-TTS/domain/interfaces"
)

const navigationTimeout = 30 * time.Second

// SessionOptions configures the browser session
type SessionOptions struct {
	// Headless runs Chromium without a visible window. Verification runs
	// are headless unless a human wants to watch the sequence.
	Headless bool

	// SlowMo inserts a delay between browser operations, useful when
	// watching a headed run
	SlowMo time.Duration
}

type playwrightSession struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	page    playwright.Page
	logger  *logrus.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewSession - launches Chromium and opens the single page the run drives
func NewSession(opts SessionOptions, logger *logrus.Logger) (interfaces.BrowserSession, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		Args: []string{
			"--disable-dev-shm-usage",
			"--no-sandbox",
		},
	}
	if opts.SlowMo > 0 {
		launchOptions.SlowMo = playwright.Float(float64(opts.SlowMo.Milliseconds()))
	}

	browser, err := pw.Chromium.Launch(launchOptions)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browserContext, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1280,
			Height: 720,
		},
	})
	if err != nil {
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	page, err := browserContext.NewPage()
	if err != nil {
		browserContext.Close()
		browser.Close()
		pw.Stop()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &playwrightSession{
		pw:      pw,
		browser: browser,
		context: browserContext,
		page:    page,
		logger:  logger,
	}, nil
}

// Navigate - loads the target page, waiting for the network to go idle
func (s *playwrightSession) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return &entities.NavigationError{URL: url, Cause: err}
	}

	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(float64(navigationTimeout.Milliseconds())),
	})
	if err != nil {
		return &entities.NavigationError{URL: url, Cause: err}
	}
	return nil
}

// WaitVisible - polls until the element is present and visible
func (s *playwrightSession) WaitVisible(ctx context.Context, target entities.Locator, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return &entities.VisibilityError{Target: target, Timeout: timeout, Cause: err}
	}

	locator, err := s.resolve(target)
	if err != nil {
		return &entities.VisibilityError{Target: target, Timeout: timeout, Cause: err}
	}

	err = locator.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	})
	if err != nil {
		return &entities.VisibilityError{Target: target, Timeout: timeout, Cause: err}
	}
	return nil
}

// Click - dispatches a click on the located element
func (s *playwrightSession) Click(ctx context.Context, target entities.Locator) error {
	if err := ctx.Err(); err != nil {
		return &entities.InteractionError{Target: target, Cause: err}
	}

	locator, err := s.resolve(target)
	if err != nil {
		return &entities.InteractionError{Target: target, Cause: err}
	}

	if err := locator.Click(); err != nil {
		return &entities.InteractionError{Target: target, Cause: err}
	}
	return nil
}

// Screenshot - writes the rendered page to path, overwriting any existing file
func (s *playwrightSession) Screenshot(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("screenshot canceled: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create screenshot directory: %w", err)
		}
	}

	_, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String(path),
	})
	if err != nil {
		return fmt.Errorf("failed to capture screenshot: %w", err)
	}

	s.logger.WithField("path", path).Info("screenshot saved")
	return nil
}

// resolve turns a domain locator into a playwright locator. Resolution is
// lazy; the element is looked up when the locator is acted on.
func (s *playwrightSession) resolve(target entities.Locator) (playwright.Locator, error) {
	switch target.Kind {
	case entities.LocatorRole:
		return s.page.GetByRole(playwright.AriaRole(target.Role), playwright.PageGetByRoleOptions{
			Name:  target.Name,
			Exact: playwright.Bool(true),
		}), nil
	case entities.LocatorCSS:
		return s.page.Locator(target.Selector), nil
	case entities.LocatorText:
		return s.page.GetByText(target.Text), nil
	default:
		return nil, fmt.Errorf("unsupported locator kind %q", target.Kind)
	}
}

// Close - tears down page, context, browser and driver exactly once
func (s *playwrightSession) Close() error {
	s.closeOnce.Do(func() {
		var errs []string

		if s.context != nil {
			if err := s.context.Close(); err != nil && !isAlreadyClosed(err) {
				errs = append(errs, fmt.Sprintf("close context: %v", err))
			}
		}
		if s.browser != nil {
			if err := s.browser.Close(); err != nil && !isAlreadyClosed(err) {
				errs = append(errs, fmt.Sprintf("close browser: %v", err))
			}
		}
		if s.pw != nil {
			if err := s.pw.Stop(); err != nil {
				errs = append(errs, fmt.Sprintf("stop driver: %v", err))
			}
		}

		if len(errs) > 0 {
			s.closeErr = fmt.Errorf("session teardown: %s", strings.Join(errs, "; "))
		}
	})
	return s.closeErr
}

// isAlreadyClosed - the browser process can beat us to teardown. Only
// playwright's own already-closed messages count; anything else is a real
// teardown failure and must surface.
func isAlreadyClosed(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "target closed") || strings.Contains(msg, "has been closed")
}

// Install downloads the playwright driver and browsers. Run once before the
// first verification on a fresh machine.
func Install() error {
	if err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	}); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}
	return nil
}
