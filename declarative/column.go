package declarative

// ColumnElement stacks its children vertically, aligned to the start.
type ColumnElement struct {
	Children []Element
	Spacing  int
	Modifier Modifier
}

// Column returns a column of children.
func Column(children ...Element) *ColumnElement {
	return &ColumnElement{Children: children}
}

// WithSpacing sets the vertical space between children.
func (col *ColumnElement) WithSpacing(px int) *ColumnElement {
	col.Spacing = px
	return col
}

// WithModifier sets the column's modifier chain.
func (col *ColumnElement) WithModifier(m Modifier) *ColumnElement {
	col.Modifier = m
	return col
}

// Build builds every child.
func (col *ColumnElement) Build() Measurable {
	nodes := make([]Measurable, len(col.Children))
	for i, child := range col.Children {
		nodes[i] = child.Build()
	}
	return col.Modifier.apply(&columnNode{children: nodes, spacing: col.Spacing})
}

type columnNode struct {
	children []Measurable
	spacing  int
}

func (n *columnNode) Measure(c Constraints) *Placeable {
	childConstraints := Constraints{MaxWidth: c.MaxWidth, MaxHeight: Infinity}

	placeables := make([]*Placeable, len(n.children))
	width, y := 0, 0
	for i, child := range n.children {
		if i > 0 {
			y += n.spacing
		}
		p := child.Measure(childConstraints)
		p.Place(0, y)
		placeables[i] = p
		y += p.Height
		width = max(width, p.Width)
	}

	w, h := c.Constrain(width, y)
	return &Placeable{Width: w, Height: h, children: placeables}
}
