// Package declarative is a small measure/place layout system in which text
// elements can shrink-wrap to their longest line.
//
// An Element describes UI. Render builds it into a tree of Measurables,
// measures the tree top-down under Constraints and places every node
// relative to its parent. Modifiers wrap an element's node from the outside
// in, so the first modifier in a chain sees the incoming constraints first.
//
// Shrink wrapping is a two-pass measure: the text is measured once under the
// incoming constraints, its widest line is recorded from the text layout
// callback, and the text is measured again with the maximum width narrowed
// to that line.
package declarative

import "math"

// Infinity is the maximum of an unbounded constraint.
const Infinity = math.MaxInt32

// Constraints bound the size a node may measure to.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Fixed returns constraints that allow exactly one size.
func Fixed(width, height int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MinHeight: height, MaxHeight: height}
}

// Loose returns constraints from zero up to the given size.
func Loose(maxWidth, maxHeight int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: maxHeight}
}

// HasBoundedWidth reports whether MaxWidth is finite.
func (c Constraints) HasBoundedWidth() bool { return c.MaxWidth != Infinity }

// HasBoundedHeight reports whether MaxHeight is finite.
func (c Constraints) HasBoundedHeight() bool { return c.MaxHeight != Infinity }

// Constrain clamps a size into the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	return clamp(width, c.MinWidth, c.MaxWidth), clamp(height, c.MinHeight, c.MaxHeight)
}

// Offset shrinks (negative) or grows the constraints by a fixed amount,
// never below zero. Unbounded maxima stay unbounded.
func (c Constraints) Offset(horizontal, vertical int) Constraints {
	return Constraints{
		MinWidth:  max(c.MinWidth+horizontal, 0),
		MaxWidth:  offsetMax(c.MaxWidth, horizontal),
		MinHeight: max(c.MinHeight+vertical, 0),
		MaxHeight: offsetMax(c.MaxHeight, vertical),
	}
}

func offsetMax(v, by int) int {
	if v == Infinity {
		return v
	}
	return max(v+by, 0)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
