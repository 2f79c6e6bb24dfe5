package retained

import (
	"errors"

	"go.uber.org/zap"

	"github.com/agiangrant/shrinkwrap"
)

var (
	// ErrBuiltInShrinkWrap is returned by MeasureShrinkWrappedWidth when
	// called on a widget that already shrink-wraps on its own.
	ErrBuiltInShrinkWrap = errors.New("retained: widget shrink-wraps on its own; use SetShrinkWrap instead")

	// ErrNoTextLayout is returned by MeasureShrinkWrappedWidth before the
	// widget has been measured, or for widgets without text.
	ErrNoTextLayout = errors.New("retained: no text layout; call from a MeasureHook after the host measure")
)

// postMeasure runs after the host measure of every widget.
func postMeasure(w *Widget) {
	w.mu.RLock()
	builtIn := w.shrinkWrapper
	hook := w.onMeasure
	w.mu.RUnlock()

	if builtIn {
		applyShrinkWrap(w)
	}
	if hook != nil {
		hook(w)
	}
}

// applyShrinkWrap is the built-in shrinker's post-measure step. The
// measured height is left untouched.
func applyShrinkWrap(w *Widget) {
	w.mu.RLock()
	enabled := w.shrinkWrap
	w.mu.RUnlock()

	res := computeShrink(w, enabled)

	w.mu.Lock()
	w.lastShrink = res
	w.mu.Unlock()

	if res.Shrunk() {
		commitShrink(w, res.Width)
	}
}

// MeasureShrinkWrappedWidth returns the shrink-wrapped width of a plain
// text or button widget. Call it from a MeasureHook and pass the result to
// SetMeasuredDimension:
//
//	w.SetOnMeasure(func(w *retained.Widget) {
//		width, err := retained.MeasureShrinkWrappedWidth(w)
//		if err == nil {
//			w.SetMeasuredDimension(width, w.MeasuredHeight())
//		}
//	})
//
// Widgets built with NewShrinkWrapText or NewShrinkWrapButton already do
// this and return ErrBuiltInShrinkWrap.
func MeasureShrinkWrappedWidth(w *Widget) (int, error) {
	w.mu.RLock()
	builtIn := w.shrinkWrapper
	ready := w.measured && w.textLayout != nil
	w.mu.RUnlock()

	if builtIn {
		return 0, ErrBuiltInShrinkWrap
	}
	if !ready {
		return 0, ErrNoTextLayout
	}

	res := computeShrink(w, true)
	if res.Shrunk() {
		relayoutText(w, res.Width)
	}
	return res.Width, nil
}

// computeShrink gathers the widget's measured state and runs the shrink
// computation.
func computeShrink(w *Widget, enabled bool) shrinkwrap.Result {
	w.mu.RLock()
	in := shrinkwrap.Input{
		MeasuredWidth: w.measuredWidth,
		Enabled:       enabled,
		Hidden:        !w.visible,
	}
	layout := w.textLayout
	w.mu.RUnlock()

	if layout != nil {
		in.Lines = layout
		in.LayoutWidth = layout.Width()
	}

	// The ancestor walk only matters once everything cheaper has passed.
	if in.Enabled && !in.Hidden && layout != nil && layout.LineCount() > 1 {
		in.WrapContent = hasWrapContent(w)
	}

	res := shrinkwrap.Compute(in)
	Logger().Debug("shrink wrap",
		zap.Uint64("widget", uint64(w.id)),
		zap.Int("measured", in.MeasuredWidth),
		zap.Int("width", res.Width),
		zap.Stringer("reason", res.Reason))
	return res
}

// hasWrapContent reports whether w or one of its ancestors sizes its width
// to content. The walk stops before the root, which is never consulted.
func hasWrapContent(w *Widget) bool {
	for current := w; current != nil; {
		current.mu.RLock()
		mode := current.widthMode
		parent := current.parent
		current.mu.RUnlock()

		if mode == SizeAuto {
			return true
		}
		if parent == nil || parent.Parent() == nil {
			return false
		}
		current = parent
	}
	return false
}

// commitShrink patches the measured width in place and re-positions the
// text in the narrower box.
func commitShrink(w *Widget, width int) {
	relayoutText(w, width)

	w.mu.Lock()
	w.measuredWidth = width
	w.markDirty(DirtySize)
	w.mu.Unlock()
}

// relayoutText moves the text layout into the content width that goes with
// an outer width of width. Without this, end and center aligned lines would
// still be positioned against the old, wider box and get clipped.
func relayoutText(w *Widget, width int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.textLayout == nil {
		return
	}
	chrome := w.measuredWidth - w.textLayout.Width()
	w.textLayout.Relayout(float32(width - chrome))
}
