// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Catalog
	OpCatalogLoad   Op = "load catalog"
	OpCatalogEnrich Op = "read lesson tags"

	// Playback
	OpPlaybackStart Op = "start playback"
	OpPlaybackLoad  Op = "load lesson audio"

	// Theme and ambient sound
	OpThemeLoad   Op = "load theme preference"
	OpThemeSave   Op = "save theme preference"
	OpAmbientLoad Op = "load ambient sound"

	// Desktop integration
	OpNotify Op = "send notification"
	OpMPRIS  Op = "start media key service"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
