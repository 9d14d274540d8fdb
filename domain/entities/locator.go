package entities

import "fmt"

// LocatorKind represents the strategy used to find an element
type LocatorKind string

const (
	LocatorRole LocatorKind = "role" // ARIA role + accessible name
	LocatorCSS  LocatorKind = "css"  // CSS selector
	LocatorText LocatorKind = "text" // visible text content
)

// Locator describes how to find a single element on the page.
// Locators carry no state: they are resolved fresh on every query.
type Locator struct {
	Kind     LocatorKind `json:"kind"`
	Role     string      `json:"role,omitempty"`
	Name     string      `json:"name,omitempty"`
	Selector string      `json:"selector,omitempty"`
	Text     string      `json:"text,omitempty"`
}

// ButtonNamed - locator for a button by its accessible name
func ButtonNamed(name string) Locator {
	return Locator{Kind: LocatorRole, Role: "button", Name: name}
}

// CSS - locator for an element by CSS selector
func CSS(selector string) Locator {
	return Locator{Kind: LocatorCSS, Selector: selector}
}

// VisibleText - locator for an element containing the given text
func VisibleText(text string) Locator {
	return Locator{Kind: LocatorText, Text: text}
}

// IsZero reports whether the locator is empty
func (l Locator) IsZero() bool {
	return l == Locator{}
}

// String returns a human-readable description used in errors and logs
func (l Locator) String() string {
	switch l.Kind {
	case LocatorRole:
		return fmt.Sprintf("%s %q", l.Role, l.Name)
	case LocatorCSS:
		return fmt.Sprintf("selector %q", l.Selector)
	case LocatorText:
		return fmt.Sprintf("text %q", l.Text)
	default:
		return "unknown locator"
	}
}
