package declarative

import (
	"go.uber.org/zap"

	"github.com/agiangrant/shrinkwrap"
)

// unknownWidth marks a widest line that hasn't been recorded yet.
const unknownWidth float32 = -1

// shrinkState is the per-build state of a shrink-wrapped text. The text
// layout callback records the widest line during the first measure; the
// measure callback then measures again at that width. The recorded width
// is only reused while the incoming constraints stay the same.
type shrinkState struct {
	enabled      bool
	maxLineWidth float32
	constraints  Constraints
	forward      func(TextLayoutResult)
}

func newShrinkState(enabled bool, forward func(TextLayoutResult)) *shrinkState {
	return &shrinkState{enabled: enabled, maxLineWidth: unknownWidth, forward: forward}
}

func (s *shrinkState) measure(m Measurable, c Constraints) MeasureResult {
	// Nothing to gain when the width is already exact. Once off, it stays off.
	s.enabled = s.enabled && c.MaxWidth > c.MinWidth
	if c != s.constraints {
		s.constraints = c
		s.maxLineWidth = unknownWidth
	}

	first := m.Measure(c)
	if !s.enabled || s.maxLineWidth == unknownWidth {
		first.Place(0, 0)
		return Layout(first.Width, first.Height, first)
	}

	width := max(shrinkwrap.CeilWidth(s.maxLineWidth), c.MinWidth)
	second := m.Measure(Constraints{
		MinWidth:  c.MinWidth,
		MaxWidth:  width,
		MinHeight: c.MinHeight,
		MaxHeight: c.MaxHeight,
	})
	second.Place(0, 0)

	Logger().Debug("two-pass shrink",
		zap.Int("measured", first.Width),
		zap.Int("width", width),
		zap.Float32("max_line", s.maxLineWidth))
	return Layout(width, second.Height, second)
}

func (s *shrinkState) onTextLayout(r TextLayoutResult) {
	if s.enabled && s.maxLineWidth == unknownWidth && r.LineCount() > 1 {
		s.maxLineWidth = shrinkwrap.MaxLineWidth(r)
	}
	if s.forward != nil {
		s.forward(r)
	}
}

// ShrinkWrap gives any text element the two shrink-wrap hooks. fn receives
// a LayoutFunc to install with Modifier.Layout and a callback to pass as
// the text's OnTextLayout:
//
//	declarative.ShrinkWrap(func(measure declarative.LayoutFunc, onTextLayout func(declarative.TextLayoutResult)) declarative.Element {
//		return declarative.Text(msg).
//			WithModifier(declarative.Modifier{}.WidthIn(0, 140).Layout(measure)).
//			WithOnTextLayout(onTextLayout)
//	})
//
// fn is called on every Build with fresh hooks.
func ShrinkWrap(fn func(measure LayoutFunc, onTextLayout func(TextLayoutResult)) Element) Element {
	return shrinkWrapElement{fn: fn}
}

type shrinkWrapElement struct {
	fn func(measure LayoutFunc, onTextLayout func(TextLayoutResult)) Element
}

func (e shrinkWrapElement) Build() Measurable {
	state := newShrinkState(true, nil)
	return e.fn(state.measure, state.onTextLayout).Build()
}
