package text

import (
	"testing"

	"github.com/agiangrant/shrinkwrap"
)

var mono = Style{Measurer: FixedMeasurer{Width: 1}}

func lineTexts(l *Layout) []string {
	var out []string
	for _, line := range l.Lines() {
		out = append(out, line.Text)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float32
		want  []string
	}{
		{
			name:  "empty text has one empty line",
			text:  "",
			width: 10,
			want:  []string{""},
		},
		{
			name:  "fits on one line",
			text:  "Hello",
			width: 10,
			want:  []string{"Hello"},
		},
		{
			name:  "breaks at spaces",
			text:  "Hello Android! How are you today?",
			width: 14,
			want:  []string{"Hello Android!", "How are you", "today?"},
		},
		{
			name:  "breaks long word between runes",
			text:  "abcdefghijkl",
			width: 5,
			want:  []string{"abcde", "fghij", "kl"},
		},
		{
			name:  "hard newlines",
			text:  "one\ntwo\n",
			width: 0,
			want:  []string{"one", "two", ""},
		},
		{
			name:  "unbounded keeps one line",
			text:  "Hello Android! How are you today?",
			width: 0,
			want:  []string{"Hello Android! How are you today?"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineTexts(NewLayout(tt.text, tt.width, mono))
			if !equalStrings(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLayoutWidthAndHeight(t *testing.T) {
	l := NewLayout("Hello Android! How are you today?", 14, Style{
		Measurer:   FixedMeasurer{Width: 2},
		LineHeight: 1.5,
	})
	// 2px per rune: 14px fits "Hello A" at most.
	if l.Width() != 14 {
		t.Errorf("Width() = %d, want 14", l.Width())
	}
	// Hello / Android / ! How / are you / today?
	if got, want := l.LineCount(), 5; got != want {
		t.Fatalf("LineCount() = %d, want %d: %q", got, want, lineTexts(l))
	}
	if l.Height() != 8 {
		t.Errorf("Height() = %d, want 8", l.Height())
	}

	unbounded := NewLayout("abc\nabcdef", 0, mono)
	if unbounded.Width() != 6 {
		t.Errorf("unbounded Width() = %d, want 6", unbounded.Width())
	}
}

func TestMinLinesReservesHeight(t *testing.T) {
	l := NewLayout("hi", 10, Style{Measurer: FixedMeasurer{Width: 1}, LineHeight: 2, MinLines: 3})
	if l.Height() != 6 {
		t.Errorf("Height() = %d, want 6", l.Height())
	}
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		align Align
		left  [2]float32
	}{
		{AlignStart, [2]float32{0, 0}},
		{AlignCenter, [2]float32{0.5, 2.5}},
		{AlignEnd, [2]float32{1, 5}},
	}

	for _, tt := range tests {
		style := mono
		style.Align = tt.align
		l := NewLayout("abcdefghi abcde", 10, style)
		if l.LineCount() != 2 {
			t.Fatalf("LineCount() = %d, want 2", l.LineCount())
		}
		for i, want := range tt.left {
			if got := l.LineLeft(i); got != want {
				t.Errorf("align %d line %d: LineLeft = %v, want %v", tt.align, i, got, want)
			}
		}
		// Extents are alignment independent.
		if got := shrinkwrap.MaxLineWidth(l); got != 9 {
			t.Errorf("align %d: MaxLineWidth = %v, want 9", tt.align, got)
		}
	}
}

func TestRelayoutRepositionsLines(t *testing.T) {
	style := mono
	style.Align = AlignEnd
	l := NewLayout("abcdefghi abcde", 10, style)
	l.Relayout(9)

	if l.Width() != 9 {
		t.Errorf("Width() = %d, want 9", l.Width())
	}
	if got := l.LineRight(0); got != 9 {
		t.Errorf("LineRight(0) = %v, want 9", got)
	}
	if got := l.LineLeft(1); got != 4 {
		t.Errorf("LineLeft(1) = %v, want 4", got)
	}
	if l.LineCount() != 2 {
		t.Errorf("Relayout changed line count to %d", l.LineCount())
	}
}

func TestMaxLines(t *testing.T) {
	style := mono
	style.MaxLines = 2
	text := "one two three four"

	clipped := NewLayout(text, 8, style)
	if !equalStrings(lineTexts(clipped), []string{"one two", "three"}) {
		t.Errorf("clipped lines = %q", lineTexts(clipped))
	}
	if !clipped.DidOverflow() {
		t.Error("expected DidOverflow")
	}

	style.Overflow = OverflowEllipsis
	ellipsized := NewLayout(text, 8, style)
	lines := lineTexts(ellipsized)
	if len(lines) != 2 || lines[1] != "three…" {
		t.Errorf("ellipsized lines = %q", lines)
	}

	cut := lineTexts(NewLayout("abcde fghij klm", 5, style))
	if len(cut) != 2 || cut[1] != "fghi…" {
		t.Errorf("truncated lines = %q", cut)
	}

	fits := NewLayout("one two", 8, style)
	if fits.DidOverflow() {
		t.Error("unexpected overflow")
	}
}

func TestNoWrap(t *testing.T) {
	style := mono
	style.NoWrap = true
	l := NewLayout("Hello Android! How are you today?", 10, style)
	if l.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", l.LineCount())
	}
}

func TestCellMeasurer(t *testing.T) {
	m := CellMeasurer{}
	tests := []struct {
		in   string
		want float32
	}{
		{"hello", 5},
		{"日本", 4},
		{"\x1b[31mred\x1b[0m", 3},
	}
	for _, tt := range tests {
		if got := m.Advance(tt.in); got != tt.want {
			t.Errorf("Advance(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := m.Truncate("abcdefgh", 5, Ellipsis); got != "abcd…" {
		t.Errorf("Truncate = %q, want %q", got, "abcd…")
	}
}

func TestFixedMeasurerTruncate(t *testing.T) {
	m := FixedMeasurer{Width: 2}
	if got := m.Truncate("abcdef", 8, Ellipsis); got != "abc…" {
		t.Errorf("Truncate = %q, want %q", got, "abc…")
	}
	if got := m.Truncate("ab", 8, Ellipsis); got != "ab" {
		t.Errorf("Truncate = %q, want unchanged", got)
	}
}

func TestDesiredWidth(t *testing.T) {
	if got := DesiredWidth("ab\nabcd  \nabc", FixedMeasurer{Width: 1}); got != 4 {
		t.Errorf("DesiredWidth = %v, want 4", got)
	}
}

func TestNoWrapEllipsis(t *testing.T) {
	style := mono
	style.NoWrap = true
	style.Overflow = OverflowEllipsis
	l := NewLayout("Hello Android!", 6, style)
	if got := l.Lines()[0].Text; got != "Hello…" {
		t.Errorf("line = %q, want %q", got, "Hello…")
	}
	if !l.DidOverflow() {
		t.Error("expected overflow")
	}
}
