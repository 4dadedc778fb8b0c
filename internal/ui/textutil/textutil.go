// Package textutil provides unicode-aware text utilities for TUI rendering.
// Flag glyphs and accented continent labels are wider or narrower than their
// byte length, so all widths here are terminal columns.
package textutil

import (
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending with an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}

	var out []rune
	width := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if width+w > available {
			break
		}
		out = append(out, r)
		width += w
	}
	return string(out) + TruncateEllipsis
}

// PadRightVisual pads s with spaces to width columns, truncating if it is wider.
func PadRightVisual(s string, width int) string {
	current := VisualWidth(s)
	if current >= width {
		return Truncate(s, width)
	}
	return s + runewidth.FillRight("", width-current)
}
