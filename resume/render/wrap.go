package render

import "strings"

// Measurer reports the rendered width of a string in a given font. The fpdf
// backend implements it with real glyph metrics; tests substitute a
// fixed-advance fake.
type Measurer interface {
	TextWidth(text string, font Font) float64
}

// Wrap splits text into lines no wider than maxWidth using a greedy
// whole-word strategy: words accumulate onto a line while the measured
// candidate still fits, then the line closes and the overflowing word starts
// the next one. A single word wider than maxWidth is placed alone on its own
// line unmodified. Empty or whitespace-only input yields no lines.
func Wrap(m Measurer, text string, maxWidth float64, font Font) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := ""
	for _, w := range words {
		candidate := w
		if line != "" {
			candidate = line + " " + w
		}
		if m.TextWidth(candidate, font) <= maxWidth {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		line = w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// padLines extends both blocks with empty lines until they share the same
// length, so two cards in a row measure to the same height.
func padLines(left, right []string) ([]string, []string) {
	n := len(left)
	if len(right) > n {
		n = len(right)
	}
	for len(left) < n {
		left = append(left, "")
	}
	for len(right) < n {
		right = append(right, "")
	}
	return left, right
}
