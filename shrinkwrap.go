// Package shrinkwrap computes a tightened width for multi-line text.
//
// A text element sized to wrap its content normally reports the width of the
// line constraint it was laid out in as soon as its text wraps onto a second
// line. That leaves a gap after the longest rendered line, which is most
// visible on chat bubbles. The functions here recompute the width from the
// longest line actually rendered, keeping any non-text chrome (padding,
// icons) the host added around the text.
//
// The retained package applies this after a host measure pass; the
// declarative package applies it from a two-pass measure callback.
package shrinkwrap

import "math"

// LineLayout is the subset of a host text layout the shrinker needs.
// LineLeft and LineRight are the horizontal extents of the visible glyphs on
// line i, in the layout's coordinate space.
type LineLayout interface {
	LineCount() int
	LineLeft(i int) float32
	LineRight(i int) float32
}

// Reason explains why Compute returned the width it did.
type Reason int

const (
	// ReasonShrunk means the width was reduced to fit the longest line.
	ReasonShrunk Reason = iota
	// ReasonDisabled means shrink wrapping is turned off for the element.
	ReasonDisabled
	// ReasonHidden means the element is gone and takes no space.
	ReasonHidden
	// ReasonSingleLine means the text fits on one line already.
	ReasonSingleLine
	// ReasonNoWrapContent means neither the element nor an ancestor wraps content.
	ReasonNoWrapContent
	// ReasonNotNarrower means the longest line already spans the measured width.
	ReasonNotNarrower
)

func (r Reason) String() string {
	switch r {
	case ReasonShrunk:
		return "shrunk"
	case ReasonDisabled:
		return "disabled"
	case ReasonHidden:
		return "hidden"
	case ReasonSingleLine:
		return "single-line"
	case ReasonNoWrapContent:
		return "no-wrap-content"
	case ReasonNotNarrower:
		return "not-narrower"
	default:
		return "unknown"
	}
}

// Input is the measured state of an element after the host measure pass.
type Input struct {
	// MeasuredWidth is the width the host measured for the whole element.
	MeasuredWidth int
	// LayoutWidth is the width the text layout was laid out in.
	LayoutWidth int
	// Lines is the text layout produced by the host measure.
	Lines LineLayout

	Enabled     bool
	Hidden      bool
	WrapContent bool
}

// Result is the outcome of Compute.
type Result struct {
	Width  int
	Reason Reason
}

// Shrunk reports whether the width was reduced.
func (r Result) Shrunk() bool {
	return r.Reason == ReasonShrunk
}

// MaxLineWidth returns the width of the widest rendered line.
func MaxLineWidth(l LineLayout) float32 {
	if l == nil {
		return 0
	}
	var widest float32
	for i := 0; i < l.LineCount(); i++ {
		if w := l.LineRight(i) - l.LineLeft(i); w > widest {
			widest = w
		}
	}
	return widest
}

// CeilWidth rounds a fractional line width up to whole pixels.
func CeilWidth(w float32) int {
	if w <= 0 {
		return 0
	}
	return int(math.Ceil(float64(w)))
}

// Compute returns the shrink-wrapped width for an element.
// The result is never wider than in.MeasuredWidth.
func Compute(in Input) Result {
	unchanged := func(r Reason) Result {
		return Result{Width: in.MeasuredWidth, Reason: r}
	}

	switch {
	case !in.Enabled:
		return unchanged(ReasonDisabled)
	case in.Hidden:
		return unchanged(ReasonHidden)
	case in.Lines == nil || in.Lines.LineCount() <= 1:
		return unchanged(ReasonSingleLine)
	case !in.WrapContent:
		return unchanged(ReasonNoWrapContent)
	}

	// Replace the full layout width with the longest line, keeping chrome.
	width := in.MeasuredWidth - in.LayoutWidth + CeilWidth(MaxLineWidth(in.Lines))
	if width >= in.MeasuredWidth {
		return unchanged(ReasonNotNarrower)
	}

	debugf("shrink: measured=%d layout=%d -> %d", in.MeasuredWidth, in.LayoutWidth, width)
	return Result{Width: width, Reason: ReasonShrunk}
}
