package entities

import (
	"fmt"
	"time"
)

// NavigationError means the page could not be loaded at all. Fatal for the
// whole run.
type NavigationError struct {
	URL   string
	Cause error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Cause)
}

func (e *NavigationError) Unwrap() error { return e.Cause }

// VisibilityError means an expected element never became visible within the
// polling window. Names the locator so the failure is actionable.
type VisibilityError struct {
	Target  Locator
	Timeout time.Duration
	Cause   error
}

func (e *VisibilityError) Error() string {
	return fmt.Sprintf("%s did not become visible within %s: %v", e.Target, e.Timeout, e.Cause)
}

func (e *VisibilityError) Unwrap() error { return e.Cause }

// InteractionError means a click target could not be found or was not
// actionable.
type InteractionError struct {
	Target Locator
	Cause  error
}

func (e *InteractionError) Error() string {
	return fmt.Sprintf("could not click %s: %v", e.Target, e.Cause)
}

func (e *InteractionError) Unwrap() error { return e.Cause }
