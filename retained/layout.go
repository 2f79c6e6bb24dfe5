package retained

import (
	"github.com/agiangrant/shrinkwrap"
	"github.com/agiangrant/shrinkwrap/text"
)

// ComputeLayout measures and arranges the tree rooted at root inside a
// viewport of the given size. Root widgets in SizeFull mode take the whole
// viewport width. Returns true if any layout was recomputed.
func ComputeLayout(root *Widget, windowWidth, windowHeight int) bool {
	if root == nil {
		return false
	}
	if !needsLayoutPass(root) {
		return false
	}

	width, height := Measure(root, windowWidth)
	if height < windowHeight && root.widthModeOf() == SizeFull {
		height = windowHeight
	}
	arrange(root, 0, 0, width, height)
	clearLayoutDirty(root)

	debugLog("layout: root %d measured %dx%d in %dx%d", root.id, width, height, windowWidth, windowHeight)
	return true
}

func (w *Widget) widthModeOf() SizeMode {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.widthMode
}

// needsLayoutPass reports whether any widget in the tree is layout dirty.
func needsLayoutPass(w *Widget) bool {
	w.mu.RLock()
	dirty := w.layoutDirty || !w.computedLayout.Valid
	children := acquireWidgetSlice(len(w.children))
	copy(children, w.children)
	w.mu.RUnlock()
	defer releaseWidgetSlice(children)

	if dirty {
		return true
	}
	for _, child := range children {
		if needsLayoutPass(child) {
			return true
		}
	}
	return false
}

func clearLayoutDirty(w *Widget) {
	w.mu.Lock()
	w.layoutDirty = false
	children := acquireWidgetSlice(len(w.children))
	copy(children, w.children)
	w.mu.Unlock()
	defer releaseWidgetSlice(children)

	for _, child := range children {
		clearLayoutDirty(child)
	}
}

// InvalidateLayout marks a widget and its ancestors as needing layout.
func InvalidateLayout(w *Widget) {
	for w != nil {
		w.mu.Lock()
		w.layoutDirty = true
		w.computedLayout.Valid = false
		parent := w.parent
		w.mu.Unlock()
		w = parent
	}
}

// measureSnapshot is the state measure needs, copied under the read lock.
type measureSnapshot struct {
	kind      WidgetKind
	visible   bool
	widthMode SizeMode
	width     int
	minWidth  int
	maxWidth  int
	padding   [4]int
	gap       int
	direction FlexDirection
	text      string
	style     text.Style
}

// Measure runs the host measure for w given the width its parent offers,
// followed by the post-measure step (built-in shrink wrapping and any
// MeasureHook). availableWidth <= 0 means unbounded. The measured size is
// stored on the widget and returned.
func Measure(w *Widget, availableWidth int) (width, height int) {
	w.mu.RLock()
	s := measureSnapshot{
		kind:      w.kind,
		visible:   w.visible,
		widthMode: w.widthMode,
		width:     w.width,
		minWidth:  w.minWidth,
		maxWidth:  w.maxWidth,
		padding:   w.padding,
		gap:       w.gap,
		direction: w.flexDirection,
		text:      w.text,
		style:     w.textStyle,
	}
	children := acquireWidgetSlice(len(w.children))
	copy(children, w.children)
	w.mu.RUnlock()
	defer releaseWidgetSlice(children)

	var layout *text.Layout
	switch s.kind {
	case KindText, KindButton:
		width, height, layout = measureText(s, availableWidth)
	default:
		width, height = measureContainer(s, children, availableWidth)
	}

	w.mu.Lock()
	w.measured = true
	w.measuredWidth = width
	w.measuredHeight = height
	w.textLayout = layout
	w.mu.Unlock()

	postMeasure(w)

	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.measuredWidth, w.measuredHeight
}

// outerBound returns the largest width w may take, or 0 when unbounded.
func outerBound(s measureSnapshot, available int) int {
	bound := available
	if s.maxWidth > 0 && (bound <= 0 || s.maxWidth < bound) {
		bound = s.maxWidth
	}
	return bound
}

// exactWidth returns the width for SizeFixed and SizeFull widgets.
func exactWidth(s measureSnapshot, available int) (int, bool) {
	switch s.widthMode {
	case SizeFixed:
		return s.width, true
	case SizeFull:
		if available > 0 {
			return available, true
		}
	}
	return 0, false
}

func clampWidth(s measureSnapshot, width, bound int) int {
	if bound > 0 && width > bound {
		width = bound
	}
	if width < s.minWidth {
		width = s.minWidth
	}
	return width
}

// measureText is the host text measure: lay the text out in the content
// width, then size the widget around the layout.
func measureText(s measureSnapshot, available int) (width, height int, layout *text.Layout) {
	padH := s.padding[1] + s.padding[3]
	padV := s.padding[0] + s.padding[2]

	if exact, ok := exactWidth(s, available); ok {
		contentW := exact - padH
		if contentW < 1 {
			contentW = 1
		}
		layout = text.NewLayout(s.text, float32(contentW), s.style)
		return exact, layout.Height() + padV, layout
	}

	// Wrap content: the desired width, limited by what the parent offers.
	bound := outerBound(s, available)
	contentW := shrinkwrap.CeilWidth(text.DesiredWidth(s.text, s.style.Measurer))
	if bound > 0 && contentW+padH > bound {
		contentW = bound - padH
	}
	if s.minWidth > 0 && contentW+padH < s.minWidth {
		contentW = s.minWidth - padH
	}
	if contentW < 1 && s.text != "" {
		contentW = 1
	}

	layout = text.NewLayout(s.text, float32(contentW), s.style)
	width = clampWidth(s, layout.Width()+padH, bound)
	return width, layout.Height() + padV, layout
}

// measureContainer measures children along the main axis and sizes the
// container around them.
func measureContainer(s measureSnapshot, children []*Widget, available int) (width, height int) {
	padH := s.padding[1] + s.padding[3]
	padV := s.padding[0] + s.padding[2]

	exact, isExact := exactWidth(s, available)
	bound := outerBound(s, available)
	if isExact {
		bound = exact
	}
	contentBound := 0
	if bound > 0 {
		contentBound = bound - padH
		if contentBound < 1 {
			contentBound = 1
		}
	}

	var contentW, contentH, visible int
	for _, child := range children {
		if !child.IsVisible() {
			// Gone children are still measured so their state is current.
			Measure(child, contentBound)
			continue
		}

		if s.direction == FlexRow {
			avail := 0
			if contentBound > 0 {
				avail = contentBound - contentW
				if visible > 0 {
					avail -= s.gap
				}
				if avail < 1 {
					avail = 1
				}
			}
			cw, ch := Measure(child, avail)
			if visible > 0 {
				contentW += s.gap
			}
			contentW += cw
			if ch > contentH {
				contentH = ch
			}
		} else {
			cw, ch := Measure(child, contentBound)
			if visible > 0 {
				contentH += s.gap
			}
			contentH += ch
			if cw > contentW {
				contentW = cw
			}
		}
		visible++
	}

	if isExact {
		width = exact
	} else {
		width = clampWidth(s, contentW+padH, bound)
	}
	return width, contentH + padV
}

// arrange positions w and its children. Widths come from measure except
// for SizeFull children, which stretch to the container's content width.
func arrange(w *Widget, x, y, width, height int) {
	w.mu.Lock()
	w.computedLayout = ComputedLayout{X: x, Y: y, Width: width, Height: height, Valid: true}
	padding := w.padding
	gap := w.gap
	direction := w.flexDirection
	align := w.alignItems
	children := acquireWidgetSlice(len(w.children))
	copy(children, w.children)
	w.mu.Unlock()
	defer releaseWidgetSlice(children)

	contentX := x + padding[3]
	contentY := y + padding[0]
	contentW := width - padding[1] - padding[3]
	contentH := height - padding[0] - padding[2]

	offset := func(space, size int) int {
		switch align {
		case AlignCenter:
			return (space - size) / 2
		case AlignEnd:
			return space - size
		}
		return 0
	}

	cursor := 0
	placed := 0
	for _, child := range children {
		if !child.IsVisible() {
			arrange(child, contentX, contentY, 0, 0)
			continue
		}
		if placed > 0 {
			cursor += gap
		}

		cw, ch := child.MeasuredWidth(), child.MeasuredHeight()
		if direction == FlexRow {
			arrange(child, contentX+cursor, contentY+offset(contentH, ch), cw, ch)
			cursor += cw
		} else {
			if child.widthModeOf() == SizeFull {
				cw = contentW
			}
			arrange(child, contentX+offset(contentW, cw), contentY+cursor, cw, ch)
			cursor += ch
		}
		placed++
	}
}
