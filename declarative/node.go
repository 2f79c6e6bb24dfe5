package declarative

import "github.com/agiangrant/shrinkwrap/text"

// Measurable is a node that can be measured. Measuring the same node more
// than once is allowed; only the placeable that gets placed is drawn.
type Measurable interface {
	Measure(c Constraints) *Placeable
}

// Placeable is the result of measuring a node. Its parent positions it with
// Place.
type Placeable struct {
	Width  int
	Height int

	x, y     int
	placed   bool
	draw     *Placement
	children []*Placeable
}

// Place positions p relative to its parent.
func (p *Placeable) Place(x, y int) {
	p.x, p.y = x, y
	p.placed = true
}

// MeasureResult is what a LayoutFunc reports: its own size and the children
// it placed.
type MeasureResult struct {
	Width    int
	Height   int
	Children []*Placeable
}

// Layout builds a MeasureResult. Children must be placed before the result
// is returned; unplaced children are not drawn.
func Layout(width, height int, children ...*Placeable) MeasureResult {
	return MeasureResult{Width: width, Height: height, Children: children}
}

// LayoutFunc measures a wrapped node under c and reports the size to use
// for it.
type LayoutFunc func(m Measurable, c Constraints) MeasureResult

// PlacementKind identifies what a Placement draws.
type PlacementKind int

const (
	PlaceBackground PlacementKind = iota
	PlaceText
)

// Placement is a positioned, drawable box produced by Render.
type Placement struct {
	Kind   PlacementKind
	X      int
	Y      int
	Width  int
	Height int

	// Label is the background label for PlaceBackground.
	Label string

	// Text and Lines are set for PlaceText. Line offsets are relative to X.
	Text  string
	Lines []text.Line
}

// Element describes a piece of UI. Build returns a fresh node with its own
// measure state; building the same element twice yields independent nodes.
type Element interface {
	Build() Measurable
}

// Render builds e, measures it under c and places it at the origin. The
// returned placements are in draw order, parents before children.
func Render(e Element, c Constraints) []Placement {
	root := e.Build().Measure(c)
	root.Place(0, 0)

	var out []Placement
	flatten(root, 0, 0, &out)
	return out
}

func flatten(p *Placeable, originX, originY int, out *[]Placement) {
	if !p.placed {
		return
	}
	x, y := originX+p.x, originY+p.y
	if p.draw != nil {
		d := *p.draw
		d.X, d.Y = x, y
		d.Width, d.Height = p.Width, p.Height
		*out = append(*out, d)
	}
	for _, child := range p.children {
		flatten(child, x, y, out)
	}
}

// Size measures e under c and returns its size without placing anything.
func Size(e Element, c Constraints) (width, height int) {
	p := e.Build().Measure(c)
	return p.Width, p.Height
}
