package declarative

import (
	"github.com/agiangrant/shrinkwrap"
	"github.com/agiangrant/shrinkwrap/text"
)

// TextLayoutResult is passed to text layout callbacks after every text
// measure.
type TextLayoutResult struct {
	*text.Layout

	// Constraints the text was measured under.
	Constraints Constraints
}

// TextElement displays text. Build it with Text and the With* methods.
type TextElement struct {
	Text         string
	Style        text.Style
	Modifier     Modifier
	OnTextLayout func(TextLayoutResult)

	// ShrinkWrap narrows the element to its longest rendered line.
	ShrinkWrap bool
}

// Text returns a text element for s. Shrink wrapping is off; turn it on
// with WithShrinkWrap.
func Text(s string) *TextElement {
	return &TextElement{Text: s}
}

// WithModifier sets the element's modifier chain.
func (t *TextElement) WithModifier(m Modifier) *TextElement {
	t.Modifier = m
	return t
}

// WithStyle sets the text style.
func (t *TextElement) WithStyle(style text.Style) *TextElement {
	t.Style = style
	return t
}

// WithShrinkWrap turns shrink wrapping on or off.
func (t *TextElement) WithShrinkWrap(enabled bool) *TextElement {
	t.ShrinkWrap = enabled
	return t
}

// WithOnTextLayout sets a callback that runs after every text measure.
func (t *TextElement) WithOnTextLayout(fn func(TextLayoutResult)) *TextElement {
	t.OnTextLayout = fn
	return t
}

// Build returns the element's node. Each call starts with a fresh shrink
// state, so the widest line is recorded anew.
func (t *TextElement) Build() Measurable {
	state := newShrinkState(t.ShrinkWrap, t.OnTextLayout)
	node := &textNode{text: t.Text, style: t.Style, onTextLayout: state.onTextLayout}
	// The shrink layout sits innermost, right around the text.
	return t.Modifier.Layout(state.measure).apply(node)
}

// textNode is the host text measure. It lays the text out in the widest
// width the constraints allow, up to the text's unwrapped width.
type textNode struct {
	text         string
	style        text.Style
	onTextLayout func(TextLayoutResult)
}

func (n *textNode) Measure(c Constraints) *Placeable {
	width := c.MaxWidth
	if c.MinWidth != c.MaxWidth {
		desired := shrinkwrap.CeilWidth(text.DesiredWidth(n.text, n.style.Measurer))
		width = clamp(desired, c.MinWidth, c.MaxWidth)
	}

	layout := text.NewLayout(n.text, float32(width), n.style)
	if n.onTextLayout != nil {
		n.onTextLayout(TextLayoutResult{Layout: layout, Constraints: c})
	}

	w, h := c.Constrain(layout.Width(), layout.Height())
	return &Placeable{
		Width:  w,
		Height: h,
		draw:   &Placement{Kind: PlaceText, Text: n.text, Lines: layout.Lines()},
	}
}
