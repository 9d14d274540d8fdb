package interfaces

import (
	"context"
	"time"

	"github.com/ford442/supertonic-TTS/domain/entities"
)

// BrowserSession defines the single page session a verification run drives.
// All operations are synchronous; the session is exclusively owned by one
// run for its entire lifetime.
type BrowserSession interface {
	// Navigate loads the target page
	Navigate(ctx context.Context, url string) error

	// WaitVisible polls until the located element is present and visible,
	// or the timeout elapses
	WaitVisible(ctx context.Context, target entities.Locator, timeout time.Duration) error

	// Click dispatches a click on the located element
	Click(ctx context.Context, target entities.Locator) error

	// Screenshot writes the rendered page as an image file at path,
	// overwriting any existing file
	Screenshot(ctx context.Context, path string) error

	// Close tears down the browser session. Safe to call more than once;
	// teardown happens at most once.
	Close() error
}
