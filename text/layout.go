package text

import (
	"math"
	"strings"
	"unicode"
)

// Align positions lines horizontally within the layout width.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Overflow controls what happens to text cut off by MaxLines.
type Overflow int

const (
	// OverflowClip drops the lines past MaxLines.
	OverflowClip Overflow = iota
	// OverflowEllipsis also ends the last kept line with an ellipsis.
	OverflowEllipsis
)

// Ellipsis is appended to the last visible line by OverflowEllipsis.
const Ellipsis = "…"

// Style configures a layout.
type Style struct {
	// Measurer defaults to CellMeasurer.
	Measurer Measurer
	// LineHeight is the height of one line. Defaults to 1.
	LineHeight float32
	Align      Align
	// MaxLines limits the number of lines. Zero means unlimited.
	MaxLines int
	// MinLines reserves height for at least this many lines.
	MinLines int
	// NoWrap disables soft wrapping; only newlines break lines.
	NoWrap   bool
	Overflow Overflow
}

func (s Style) measurer() Measurer {
	if s.Measurer == nil {
		return CellMeasurer{}
	}
	return s.Measurer
}

func (s Style) lineHeight() float32 {
	if s.LineHeight <= 0 {
		return 1
	}
	return s.LineHeight
}

// Line is a single rendered line.
type Line struct {
	// Text is the line content without trailing spaces.
	Text string
	// Start and End are rune offsets into the source text (End exclusive).
	Start int
	End   int
	// Width is the advance of the visible glyphs.
	Width float32
	// Left is the x offset of the line within the layout width.
	Left float32
}

// Layout is the result of laying out text in a given width.
type Layout struct {
	text     string
	style    Style
	width    float32
	lines    []Line
	overflow bool
}

// NewLayout lays out s in width. A width of zero or less lays the text out
// unbounded, in which case the layout is as wide as its longest line.
func NewLayout(s string, width float32, style Style) *Layout {
	m := style.measurer()

	wrapWidth := width
	if style.NoWrap {
		wrapWidth = 0
	}
	lines := wrapLines(s, wrapWidth, m)

	l := &Layout{text: s, style: style, lines: lines}
	if style.MaxLines > 0 && len(l.lines) > style.MaxLines {
		l.lines = l.lines[:style.MaxLines]
		l.overflow = true
		if style.Overflow == OverflowEllipsis {
			last := &l.lines[len(l.lines)-1]
			if width > 0 && m.Advance(last.Text+Ellipsis) > width {
				last.Text = truncateWith(m, last.Text, width, Ellipsis)
			} else {
				last.Text += Ellipsis
			}
			last.Width = m.Advance(last.Text)
		}
	}

	if style.NoWrap && style.Overflow == OverflowEllipsis && width > 0 {
		for i := range l.lines {
			line := &l.lines[i]
			if line.Width > width {
				line.Text = truncateWith(m, line.Text, width, Ellipsis)
				line.Width = m.Advance(line.Text)
				l.overflow = true
			}
		}
	}

	if width > 0 {
		l.width = width
	} else {
		l.width = l.NaturalWidth()
	}
	l.position()
	return l
}

// wrapLines breaks s into lines no wider than maxWidth. Newlines always
// break; spaces are preferred soft break points and a word wider than the
// line is broken between runes.
func wrapLines(s string, maxWidth float32, m Measurer) []Line {
	if s == "" {
		return []Line{{}}
	}

	var lines []Line
	runes := []rune(s)
	emit := func(start, end int) {
		t := strings.TrimRight(string(runes[start:end]), " ")
		lines = append(lines, Line{
			Text:  t,
			Start: start,
			End:   end,
			Width: m.Advance(t),
		})
	}

	lineStart := 0
	lastBreak := -1
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\n' {
			emit(lineStart, i)
			lineStart = i + 1
			lastBreak = -1
			continue
		}
		if unicode.IsSpace(r) {
			lastBreak = i + 1
			continue
		}
		if maxWidth <= 0 || i == lineStart {
			continue
		}

		lineWidth := m.Advance(strings.TrimRight(string(runes[lineStart:i+1]), " "))
		if lineWidth <= maxWidth {
			continue
		}

		breakPoint := i
		if lastBreak > lineStart {
			breakPoint = lastBreak
		}
		emit(lineStart, breakPoint)

		// Skip whitespace at start of next line
		lineStart = breakPoint
		for lineStart < len(runes) && runes[lineStart] == ' ' {
			lineStart++
		}
		lastBreak = -1
		i = lineStart - 1
	}

	if lineStart < len(runes) || runes[len(runes)-1] == '\n' {
		emit(lineStart, len(runes))
	}
	return lines
}

func (l *Layout) position() {
	for i := range l.lines {
		line := &l.lines[i]
		switch l.style.Align {
		case AlignCenter:
			line.Left = (l.width - line.Width) / 2
		case AlignEnd:
			line.Left = l.width - line.Width
		default:
			line.Left = 0
		}
	}
}

// Relayout moves the layout into a new width without breaking lines again.
// Aligned lines are repositioned against the new width.
func (l *Layout) Relayout(width float32) {
	if width <= 0 {
		width = l.NaturalWidth()
	}
	l.width = width
	l.position()
}

// Text returns the source text.
func (l *Layout) Text() string { return l.text }

// Lines returns the laid out lines.
func (l *Layout) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// LineCount returns the number of rendered lines.
func (l *Layout) LineCount() int { return len(l.lines) }

// LineLeft returns the x of the first visible glyph on line i.
func (l *Layout) LineLeft(i int) float32 { return l.lines[i].Left }

// LineRight returns the x just past the last visible glyph on line i.
func (l *Layout) LineRight(i int) float32 { return l.lines[i].Left + l.lines[i].Width }

// LineMax returns the advance of line i, excluding trailing whitespace.
func (l *Layout) LineMax(i int) float32 { return l.lines[i].Width }

// NaturalWidth returns the advance of the longest rendered line.
func (l *Layout) NaturalWidth() float32 {
	var widest float32
	for _, line := range l.lines {
		if line.Width > widest {
			widest = line.Width
		}
	}
	return widest
}

// Width returns the layout width in whole pixels.
func (l *Layout) Width() int {
	return int(math.Ceil(float64(l.width)))
}

// Height returns the height of the rendered lines in whole pixels, reserving
// room for MinLines.
func (l *Layout) Height() int {
	n := len(l.lines)
	if l.style.MinLines > n {
		n = l.style.MinLines
	}
	return int(math.Ceil(float64(float32(n) * l.style.lineHeight())))
}

// DidOverflow reports whether text was cut off by MaxLines or truncated.
func (l *Layout) DidOverflow() bool { return l.overflow }
