package declarative

// Modifier is an ordered chain of node decorations. The zero value is the
// empty chain. Methods return a new chain and never modify the receiver.
//
//	m := declarative.Modifier{}.WidthIn(0, 140).Background("green").Padding(8)
type Modifier struct {
	elements []modifierElement
}

type modifierElement interface {
	wrap(inner Measurable) Measurable
}

func (m Modifier) with(e modifierElement) Modifier {
	elements := make([]modifierElement, len(m.elements), len(m.elements)+1)
	copy(elements, m.elements)
	return Modifier{elements: append(elements, e)}
}

// Then appends other after m.
func (m Modifier) Then(other Modifier) Modifier {
	elements := make([]modifierElement, 0, len(m.elements)+len(other.elements))
	elements = append(elements, m.elements...)
	return Modifier{elements: append(elements, other.elements...)}
}

// Len returns the number of elements in the chain.
func (m Modifier) Len() int { return len(m.elements) }

// apply wraps inner so that the first element ends up outermost.
func (m Modifier) apply(inner Measurable) Measurable {
	for i := len(m.elements) - 1; i >= 0; i-- {
		inner = m.elements[i].wrap(inner)
	}
	return inner
}

// WidthIn narrows the incoming width constraints to [min, max], staying
// within what the parent allows.
func (m Modifier) WidthIn(minWidth, maxWidth int) Modifier {
	return m.with(widthIn{min: minWidth, max: maxWidth})
}

// Padding adds space on every side.
func (m Modifier) Padding(px int) Modifier {
	return m.PaddingXY(px, px)
}

// PaddingXY adds horizontal and vertical space.
func (m Modifier) PaddingXY(horizontal, vertical int) Modifier {
	return m.with(padding{x: horizontal, y: vertical})
}

// Background draws a box of the node's size under it. The label is what
// renderers use to pick a fill.
func (m Modifier) Background(label string) Modifier {
	return m.with(background{label: label})
}

// Layout replaces how the wrapped node is measured and placed.
func (m Modifier) Layout(fn LayoutFunc) Modifier {
	return m.with(layoutModifier{fn: fn})
}

// measureFunc adapts a function to Measurable.
type measureFunc func(c Constraints) *Placeable

func (f measureFunc) Measure(c Constraints) *Placeable { return f(c) }

type widthIn struct{ min, max int }

func (w widthIn) wrap(inner Measurable) Measurable {
	return measureFunc(func(c Constraints) *Placeable {
		narrowed := c
		narrowed.MinWidth = clamp(w.min, c.MinWidth, c.MaxWidth)
		narrowed.MaxWidth = clamp(w.max, c.MinWidth, c.MaxWidth)
		if narrowed.MaxWidth < narrowed.MinWidth {
			narrowed.MaxWidth = narrowed.MinWidth
		}

		child := inner.Measure(narrowed)
		child.Place(0, 0)
		return &Placeable{Width: child.Width, Height: child.Height, children: []*Placeable{child}}
	})
}

type padding struct{ x, y int }

func (p padding) wrap(inner Measurable) Measurable {
	return measureFunc(func(c Constraints) *Placeable {
		child := inner.Measure(c.Offset(-2*p.x, -2*p.y))
		child.Place(p.x, p.y)
		width, height := c.Constrain(child.Width+2*p.x, child.Height+2*p.y)
		return &Placeable{Width: width, Height: height, children: []*Placeable{child}}
	})
}

type background struct{ label string }

func (b background) wrap(inner Measurable) Measurable {
	return measureFunc(func(c Constraints) *Placeable {
		child := inner.Measure(c)
		child.Place(0, 0)
		return &Placeable{
			Width:    child.Width,
			Height:   child.Height,
			draw:     &Placement{Kind: PlaceBackground, Label: b.label},
			children: []*Placeable{child},
		}
	})
}

type layoutModifier struct{ fn LayoutFunc }

func (l layoutModifier) wrap(inner Measurable) Measurable {
	return measureFunc(func(c Constraints) *Placeable {
		res := l.fn(inner, c)
		return &Placeable{Width: res.Width, Height: res.Height, children: res.Children}
	})
}
