// Package text is the host text layout engine used by the shrinkers.
//
// It breaks text into lines for a given width, positions each line according
// to its alignment and reports per-line extents. The shrinkers only read the
// resulting line boxes; they never break lines themselves.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Measurer reports the horizontal advance of a run of text.
type Measurer interface {
	Advance(s string) float32
}

// Truncater is implemented by measurers that can cut a string down to a
// width themselves. Layouts fall back to dropping runes one at a time for
// measurers that don't.
type Truncater interface {
	Truncate(s string, width float32, tail string) string
}

// CellMeasurer measures text in terminal cells. East Asian wide runes take
// two cells and ANSI escape sequences take none.
type CellMeasurer struct{}

// Advance returns the number of cells s occupies.
func (CellMeasurer) Advance(s string) float32 {
	if strings.ContainsRune(s, ansi.Marker) {
		return float32(ansi.PrintableRuneWidth(s))
	}
	return float32(runewidth.StringWidth(s))
}

// Truncate cuts s so that s plus tail fits in width cells.
func (CellMeasurer) Truncate(s string, width float32, tail string) string {
	if width < 0 {
		width = 0
	}
	return truncate.StringWithTail(s, uint(width), tail)
}

// FixedMeasurer gives every rune the same advance, like a test font whose
// glyphs are all one em square. Tabs count as four runes.
type FixedMeasurer struct {
	Width float32
}

// Advance returns the advance of s.
func (m FixedMeasurer) Advance(s string) float32 {
	n := utf8.RuneCountInString(s) + 3*strings.Count(s, "\t")
	return float32(n) * m.Width
}

// Truncate cuts s so that s plus tail fits in width.
func (m FixedMeasurer) Truncate(s string, width float32, tail string) string {
	if m.Advance(s) <= width {
		return s
	}
	budget := width - m.Advance(tail)
	var b strings.Builder
	var used float32
	for _, r := range s {
		adv := m.Advance(string(r))
		if used+adv > budget {
			break
		}
		used += adv
		b.WriteRune(r)
	}
	b.WriteString(tail)
	return b.String()
}

// truncateWith cuts s to width using m, falling back to dropping runes from
// the end when m cannot truncate on its own.
func truncateWith(m Measurer, s string, width float32, tail string) string {
	if t, ok := m.(Truncater); ok {
		return t.Truncate(s, width, tail)
	}
	runes := []rune(s)
	for len(runes) > 0 && m.Advance(string(runes)+tail) > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + tail
}

// DesiredWidth returns the advance of the longest hard line of s, the width
// s would need to render without soft wrapping.
func DesiredWidth(s string, m Measurer) float32 {
	if m == nil {
		m = CellMeasurer{}
	}
	var widest float32
	for _, line := range strings.Split(s, "\n") {
		if w := m.Advance(strings.TrimRight(line, " ")); w > widest {
			widest = w
		}
	}
	return widest
}
