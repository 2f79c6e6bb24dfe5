// Package retained provides a retained-mode widget tree whose text widgets
// can shrink-wrap their measured width to the longest rendered line.
//
// Layout runs in two steps. Measure walks the tree top-down and asks every
// widget for its size given the width its parent offers; text widgets lay
// their text out with the host text engine during this pass. Arrange then
// positions children inside their parent. Shrink wrapping happens at the end
// of a text widget's measure, after the host size is known and before the
// parent reads it, so containers sized to their content tighten too.
package retained

import (
	"sync"
	"sync/atomic"

	"github.com/agiangrant/shrinkwrap"
	"github.com/agiangrant/shrinkwrap/text"
)

// WidgetID uniquely identifies a widget in the tree.
type WidgetID uint64

var nextWidgetID atomic.Uint64

func newWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// WidgetKind identifies the type of widget.
type WidgetKind string

const (
	KindContainer WidgetKind = "container"
	KindVStack    WidgetKind = "vstack"
	KindHStack    WidgetKind = "hstack"
	KindText      WidgetKind = "text"
	KindButton    WidgetKind = "button"
)

// SizeMode specifies how a widget's width is calculated.
type SizeMode int

const (
	// SizeFixed uses an explicit pixel value.
	SizeFixed SizeMode = iota

	// SizeAuto sizes to fit content (wrap content).
	SizeAuto

	// SizeFull fills the parent's available space (w-full).
	SizeFull
)

// FlexDirection determines the main axis for container layout.
type FlexDirection int

const (
	FlexColumn FlexDirection = iota
	FlexRow
)

// AlignItems controls alignment along the cross axis.
type AlignItems int

const (
	AlignStart AlignItems = iota
	AlignCenter
	AlignEnd
)

// ComputedLayout stores the resolved position and size after a layout pass.
type ComputedLayout struct {
	X      int
	Y      int
	Width  int
	Height int

	// Whether this layout is valid (computed and not dirty)
	Valid bool
}

// MeasureHook runs at the end of a widget's measure, after the host has
// computed the measured size and text layout. It may replace the measured
// size with SetMeasuredDimension.
type MeasureHook func(w *Widget)

// Widget is a node in the retained tree.
type Widget struct {
	mu sync.RWMutex

	id       WidgetID
	kind     WidgetKind
	parent   *Widget
	children []*Widget

	// Sizing
	width     int
	widthMode SizeMode
	minWidth  int
	maxWidth  int    // 0 = unbounded
	padding   [4]int // top, right, bottom, left
	gap       int

	flexDirection FlexDirection
	alignItems    AlignItems
	visible       bool

	// Text
	text      string
	textStyle text.Style

	// Shrink wrapping. shrinkWrapper marks widgets built with
	// NewShrinkWrapText/NewShrinkWrapButton; shrinkWrap toggles them.
	shrinkWrapper bool
	shrinkWrap    bool
	onMeasure     MeasureHook

	// Measure results
	measured       bool
	measuredWidth  int
	measuredHeight int
	textLayout     *text.Layout
	lastShrink     shrinkwrap.Result

	computedLayout ComputedLayout
	layoutDirty    bool

	classes string
	data    any

	// Dirty tracking for delta updates
	dirty     bool
	dirtyMask uint64

	// Reference to tree for update dispatch
	tree *Tree
}

// Property change flags for dirty tracking
const (
	DirtyPosition uint64 = 1 << iota
	DirtySize
	DirtyVisible
	DirtyText
	DirtyChildren
	DirtyLayout // Layout needs recomputation
)

// NewWidget creates a widget with default values.
// The widget is not attached to any tree until added as a child.
func NewWidget(kind WidgetKind) *Widget {
	w := &Widget{
		id:          newWidgetID(),
		kind:        kind,
		widthMode:   SizeAuto,
		visible:     true,
		layoutDirty: true,
	}
	if kind == KindHStack {
		w.flexDirection = FlexRow
	}
	return w
}

// NewText creates a plain text widget. It reports the host measured width;
// use NewShrinkWrapText or a MeasureHook calling MeasureShrinkWrappedWidth
// to tighten it.
func NewText(s string) *Widget {
	w := NewWidget(KindText)
	w.text = s
	return w
}

// NewButton creates a plain button widget.
func NewButton(label string) *Widget {
	w := NewWidget(KindButton)
	w.text = label
	return w
}

// NewShrinkWrapText creates a text widget that shrink-wraps its width to
// the longest rendered line. Disable it with SetShrinkWrap(false).
func NewShrinkWrapText(s string) *Widget {
	w := NewText(s)
	w.shrinkWrapper = true
	w.shrinkWrap = true
	return w
}

// NewShrinkWrapButton is the button version of NewShrinkWrapText.
func NewShrinkWrapButton(label string) *Widget {
	w := NewButton(label)
	w.shrinkWrapper = true
	w.shrinkWrap = true
	return w
}

// NewVStack creates a vertical stack.
func NewVStack(children ...*Widget) *Widget {
	w := NewWidget(KindVStack)
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// NewHStack creates a horizontal stack.
func NewHStack(children ...*Widget) *Widget {
	w := NewWidget(KindHStack)
	for _, c := range children {
		w.AddChild(c)
	}
	return w
}

// ID returns the widget's unique identifier.
func (w *Widget) ID() WidgetID {
	return w.id
}

// Kind returns the widget type.
func (w *Widget) Kind() WidgetKind {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.kind
}

// ============================================================================
// Tree Structure
// ============================================================================

// Parent returns the widget's parent, or nil if it's the root.
func (w *Widget) Parent() *Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parent
}

// Children returns a copy of the widget's children slice.
func (w *Widget) Children() []*Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]*Widget, len(w.children))
	copy(result, w.children)
	return result
}

// AddChild appends a child widget.
func (w *Widget) AddChild(child *Widget) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()

	child.mu.Lock()
	child.parent = w
	child.tree = w.tree
	child.mu.Unlock()

	w.children = append(w.children, child)
	w.markDirty(DirtyChildren)
	if w.tree != nil {
		w.tree.register(child)
	}
	return w
}

// InsertChild inserts a child at the specified index.
func (w *Widget) InsertChild(index int, child *Widget) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()

	child.mu.Lock()
	child.parent = w
	child.tree = w.tree
	child.mu.Unlock()

	if index < 0 {
		index = 0
	}
	if index >= len(w.children) {
		w.children = append(w.children, child)
	} else {
		w.children = append(w.children[:index+1], w.children[index:]...)
		w.children[index] = child
	}
	w.markDirty(DirtyChildren)
	if w.tree != nil {
		w.tree.register(child)
	}
	return w
}

// RemoveChild removes a child by reference.
func (w *Widget) RemoveChild(child *Widget) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			if w.tree != nil {
				w.tree.unregister(child)
			}
			child.mu.Lock()
			child.parent = nil
			child.tree = nil
			child.mu.Unlock()
			w.markDirty(DirtyChildren)
			return true
		}
	}
	return false
}

// RemoveFromParent removes this widget from its parent.
func (w *Widget) RemoveFromParent() {
	w.mu.RLock()
	parent := w.parent
	w.mu.RUnlock()

	if parent != nil {
		parent.RemoveChild(w)
	}
}

// ============================================================================
// Property Setters (all thread-safe, trigger dirty tracking)
// ============================================================================

func (w *Widget) markDirty(flags uint64) {
	w.dirty = true
	w.dirtyMask |= flags

	if flags&(DirtySize|DirtyPosition|DirtyChildren|DirtyText|DirtyVisible|DirtyLayout) != 0 {
		w.layoutDirty = true
		w.computedLayout.Valid = false
	}

	if w.tree != nil {
		w.tree.notifyUpdate(w, flags)
	}
}

// SetWidth sets an explicit width and switches to SizeFixed.
func (w *Widget) SetWidth(width int) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.width != width || w.widthMode != SizeFixed {
		w.width = width
		w.widthMode = SizeFixed
		w.markDirty(DirtySize)
	}
	return w
}

// SetWidthMode sets how width is calculated.
func (w *Widget) SetWidthMode(mode SizeMode) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.widthMode != mode {
		w.widthMode = mode
		w.markDirty(DirtySize)
	}
	return w
}

// SetWidthFull makes the widget fill its parent's width.
func (w *Widget) SetWidthFull() *Widget {
	return w.SetWidthMode(SizeFull)
}

// SetMinWidth sets the minimum width.
func (w *Widget) SetMinWidth(width int) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.minWidth != width {
		w.minWidth = width
		w.markDirty(DirtySize)
	}
	return w
}

// SetMaxWidth sets the maximum width. Zero means unbounded.
func (w *Widget) SetMaxWidth(width int) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.maxWidth != width {
		w.maxWidth = width
		w.markDirty(DirtySize)
	}
	return w
}

// SetPadding sets uniform padding on all sides.
func (w *Widget) SetPadding(padding int) *Widget {
	return w.SetPaddingAll(padding, padding, padding, padding)
}

// SetPaddingXY sets horizontal and vertical padding.
func (w *Widget) SetPaddingXY(horizontal, vertical int) *Widget {
	return w.SetPaddingAll(vertical, horizontal, vertical, horizontal)
}

// SetPaddingAll sets padding for each side individually.
func (w *Widget) SetPaddingAll(top, right, bottom, left int) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	p := [4]int{top, right, bottom, left}
	if w.padding != p {
		w.padding = p
		w.markDirty(DirtySize)
	}
	return w
}

// Padding returns top, right, bottom, left padding.
func (w *Widget) Padding() [4]int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.padding
}

// SetGap sets the spacing between children.
func (w *Widget) SetGap(gap int) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gap != gap {
		w.gap = gap
		w.markDirty(DirtyLayout)
	}
	return w
}

// SetFlexDirection sets the main axis of a container.
func (w *Widget) SetFlexDirection(dir FlexDirection) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.flexDirection != dir {
		w.flexDirection = dir
		w.markDirty(DirtyLayout)
	}
	return w
}

// SetAlignItems sets cross-axis alignment of children.
func (w *Widget) SetAlignItems(align AlignItems) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.alignItems != align {
		w.alignItems = align
		w.markDirty(DirtyLayout)
	}
	return w
}

// SetVisible sets visibility. Hidden widgets are gone: they take no space.
func (w *Widget) SetVisible(visible bool) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.visible != visible {
		w.visible = visible
		w.markDirty(DirtyVisible)
	}
	return w
}

// IsVisible returns whether the widget takes part in layout.
func (w *Widget) IsVisible() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.visible
}

// SetText sets the text content.
func (w *Widget) SetText(s string) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.text != s {
		w.text = s
		w.markDirty(DirtyText)
	}
	return w
}

// Text returns the text content.
func (w *Widget) Text() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.text
}

// SetTextStyle sets the style used to lay out the widget's text.
func (w *Widget) SetTextStyle(style text.Style) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.textStyle = style
	w.markDirty(DirtyText)
	return w
}

// TextStyle returns the style used to lay out the widget's text.
func (w *Widget) TextStyle() text.Style {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.textStyle
}

// SetTextAlign sets horizontal alignment of the text lines.
func (w *Widget) SetTextAlign(align text.Align) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.textStyle.Align != align {
		w.textStyle.Align = align
		w.markDirty(DirtyText)
	}
	return w
}

// SetMaxLines limits the number of rendered lines. Zero means unlimited.
func (w *Widget) SetMaxLines(n int) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.textStyle.MaxLines != n {
		w.textStyle.MaxLines = n
		w.markDirty(DirtyText)
	}
	return w
}

// SetShrinkWrap enables or disables shrink wrapping on widgets built with
// NewShrinkWrapText or NewShrinkWrapButton. It has no effect on plain widgets.
func (w *Widget) SetShrinkWrap(enabled bool) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.shrinkWrap != enabled {
		w.shrinkWrap = enabled
		w.markDirty(DirtySize)
	}
	return w
}

// ShrinkWrap reports whether built-in shrink wrapping is enabled.
func (w *Widget) ShrinkWrap() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.shrinkWrapper && w.shrinkWrap
}

// IsShrinkWrapper reports whether the widget shrink-wraps on its own.
func (w *Widget) IsShrinkWrapper() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.shrinkWrapper
}

// SetOnMeasure installs a hook that runs after the host measure.
func (w *Widget) SetOnMeasure(hook MeasureHook) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onMeasure = hook
	w.markDirty(DirtyLayout)
	return w
}

// SetData attaches application data to the widget.
func (w *Widget) SetData(data any) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.data = data
	return w
}

// Data returns the application data attached with SetData.
func (w *Widget) Data() any {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.data
}

// ============================================================================
// Measure Results
// ============================================================================

// SetMeasuredDimension replaces the measured size. It is meant for
// MeasureHooks; the layout pass overwrites it on the next measure.
func (w *Widget) SetMeasuredDimension(width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.measuredWidth != width || w.measuredHeight != height {
		w.measuredWidth = width
		w.measuredHeight = height
		w.dirtyMask |= DirtySize
	}
}

// MeasuredWidth returns the width from the last measure pass.
func (w *Widget) MeasuredWidth() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.measuredWidth
}

// MeasuredHeight returns the height from the last measure pass.
func (w *Widget) MeasuredHeight() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.measuredHeight
}

// TextLayout returns the text layout from the last measure pass, or nil
// for widgets without text or that haven't been measured.
func (w *Widget) TextLayout() *text.Layout {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.textLayout
}

// LastShrink returns the decision made by the last built-in shrink pass.
func (w *Widget) LastShrink() shrinkwrap.Result {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastShrink
}

// ComputedLayout returns the position and size from the last layout pass.
func (w *Widget) ComputedLayout() ComputedLayout {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.computedLayout
}

// IsDirty returns whether the widget has changes not yet collected.
func (w *Widget) IsDirty() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dirty
}

// DirtyMask returns which properties changed since the last collection.
func (w *Widget) DirtyMask() uint64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dirtyMask
}

// ClearDirty resets dirty tracking.
func (w *Widget) ClearDirty() {
	w.mu.Lock()
	w.dirty = false
	w.dirtyMask = 0
	w.mu.Unlock()
}
