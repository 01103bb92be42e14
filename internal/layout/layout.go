// Package layout decides where an option group's label goes.
package layout

import "github.com/mattn/go-runewidth"

const (
	// Gutter is the column gap between an inline label and its options.
	Gutter = 2
	// DefaultLeftMargin is the column at which options start.
	DefaultLeftMargin = 8
)

// LabelWidth measures the display width of a label in terminal cells.
func LabelWidth(label string) int {
	return runewidth.StringWidth(label)
}

// LabelOnTop reports whether the label should be stacked above the options.
// A label that does not fit in the margin is always stacked; otherwise the
// group override wins, else fallback.
func LabelOnTop(labelWidth, margin, gutter int, override *bool, fallback bool) bool {
	if labelWidth > margin-gutter {
		return true
	}
	return Or(override, fallback)
}

// Or returns *override when set, otherwise fallback.
func Or[T any](override *T, fallback T) T {
	if override != nil {
		return *override
	}
	return fallback
}
