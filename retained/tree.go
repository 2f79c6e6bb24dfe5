package retained

import (
	"sync"
	"sync/atomic"
)

// UpdateType identifies what kind of update occurred.
type UpdateType uint8

const (
	UpdateProperty UpdateType = iota // Widget property changed
	UpdateAdd                        // Widget added to tree
	UpdateRemove                     // Widget removed from tree
)

// Update represents a single widget state change.
// These are batched and collected by the host once per frame.
type Update struct {
	Type      UpdateType
	WidgetID  WidgetID
	DirtyMask uint64  // Which properties changed (for UpdateProperty)
	Widget    *Widget // Reference for full state access
}

// Tree manages the widget hierarchy and batches updates for the host.
type Tree struct {
	mu   sync.RWMutex
	root *Widget

	// Widget registry for ID lookups
	widgets sync.Map // map[WidgetID]*Widget

	frameNumber atomic.Uint64

	pendingMu sync.Mutex
	pending   []Update

	// Set on any update, cleared by CollectUpdates
	hasDirty atomic.Bool

	closed atomic.Bool
}

// NewTree creates an empty widget tree.
func NewTree() *Tree {
	return &Tree{
		pending: make([]Update, 0, 64),
	}
}

func (t *Tree) enqueue(u Update) {
	if t.closed.Load() {
		return
	}
	t.hasDirty.Store(true)
	t.pendingMu.Lock()
	t.pending = append(t.pending, u)
	t.pendingMu.Unlock()
}

// notifyUpdate is called by widgets when their state changes.
func (t *Tree) notifyUpdate(w *Widget, dirtyMask uint64) {
	t.enqueue(Update{
		Type:      UpdateProperty,
		WidgetID:  w.id,
		DirtyMask: dirtyMask,
		Widget:    w,
	})
}

// SetRoot sets the root widget of the tree.
func (t *Tree) SetRoot(w *Widget) {
	t.mu.Lock()
	old := t.root
	t.root = w
	t.mu.Unlock()

	if old != nil && old != w {
		t.unregister(old)
	}
	t.register(w)
}

// Root returns the root widget.
func (t *Tree) Root() *Widget {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root
}

// register attaches a widget and its subtree to the tree.
func (t *Tree) register(w *Widget) {
	if w == nil {
		return
	}

	w.mu.Lock()
	w.tree = t
	children := acquireWidgetSlice(len(w.children))
	copy(children, w.children)
	w.mu.Unlock()
	defer releaseWidgetSlice(children)

	t.widgets.Store(w.id, w)
	t.enqueue(Update{Type: UpdateAdd, WidgetID: w.id, Widget: w})

	for _, child := range children {
		t.register(child)
	}
}

// unregister detaches a widget and its subtree from the tree.
func (t *Tree) unregister(w *Widget) {
	if w == nil {
		return
	}

	w.mu.Lock()
	w.tree = nil
	children := acquireWidgetSlice(len(w.children))
	copy(children, w.children)
	w.mu.Unlock()
	defer releaseWidgetSlice(children)

	t.widgets.Delete(w.id)
	t.enqueue(Update{Type: UpdateRemove, WidgetID: w.id})

	for _, child := range children {
		t.unregister(child)
	}
}

// Widget returns a widget by ID.
func (t *Tree) Widget(id WidgetID) *Widget {
	if v, ok := t.widgets.Load(id); ok {
		return v.(*Widget)
	}
	return nil
}

// CollectUpdates drains all pending updates and returns them.
func (t *Tree) CollectUpdates() []Update {
	t.pendingMu.Lock()
	t.hasDirty.Store(false)
	updates := t.pending
	t.pending = make([]Update, 0, cap(updates))
	t.pendingMu.Unlock()

	if len(updates) == 0 {
		return nil
	}

	// Widgets lock themselves; don't hold pendingMu while clearing.
	for _, u := range updates {
		if u.Widget != nil {
			u.Widget.ClearDirty()
		}
	}
	return updates
}

// HasPendingUpdates returns true if any widget has been modified since the
// last call to CollectUpdates.
func (t *Tree) HasPendingUpdates() bool {
	return t.hasDirty.Load()
}

// DeduplicateUpdates merges multiple updates to the same widget.
// Returns a map of widget ID to combined dirty mask.
func DeduplicateUpdates(updates []Update) map[WidgetID]*WidgetDelta {
	deltas := make(map[WidgetID]*WidgetDelta)

	for _, u := range updates {
		switch u.Type {
		case UpdateProperty:
			if delta, ok := deltas[u.WidgetID]; ok {
				delta.DirtyMask |= u.DirtyMask
			} else {
				deltas[u.WidgetID] = &WidgetDelta{
					ID:        u.WidgetID,
					Widget:    u.Widget,
					DirtyMask: u.DirtyMask,
				}
			}

		case UpdateAdd:
			deltas[u.WidgetID] = &WidgetDelta{
				ID:        u.WidgetID,
				Widget:    u.Widget,
				DirtyMask: ^uint64(0),
				IsNew:     true,
			}

		case UpdateRemove:
			deltas[u.WidgetID] = &WidgetDelta{
				ID:        u.WidgetID,
				IsRemoved: true,
			}
		}
	}

	return deltas
}

// WidgetDelta represents the combined changes to one widget.
type WidgetDelta struct {
	ID        WidgetID
	Widget    *Widget
	DirtyMask uint64
	IsNew     bool
	IsRemoved bool
}

// FrameNumber returns the current frame count.
func (t *Tree) FrameNumber() uint64 {
	return t.frameNumber.Load()
}

// IncrementFrame advances the frame counter.
func (t *Tree) IncrementFrame() uint64 {
	return t.frameNumber.Add(1)
}

// Close stops the tree from accepting updates.
func (t *Tree) Close() {
	if t.closed.Swap(true) {
		return
	}
	t.pendingMu.Lock()
	t.pending = nil
	t.pendingMu.Unlock()
}

// Walk traverses the tree depth-first, calling fn for each widget.
// Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(w *Widget) bool) {
	root := t.Root()
	if root != nil {
		walkWidget(root, fn)
	}
}

func walkWidget(w *Widget, fn func(w *Widget) bool) bool {
	if !fn(w) {
		return false
	}
	for _, child := range w.Children() {
		if !walkWidget(child, fn) {
			return false
		}
	}
	return true
}

// Find searches for a widget matching the predicate.
func (t *Tree) Find(pred func(w *Widget) bool) *Widget {
	var found *Widget
	t.Walk(func(w *Widget) bool {
		if pred(w) {
			found = w
			return false
		}
		return true
	})
	return found
}

// FindByData finds a widget with the specified data value.
func (t *Tree) FindByData(data any) *Widget {
	return t.Find(func(w *Widget) bool {
		return w.Data() == data
	})
}

// Layout computes layout for the whole tree in the given viewport and
// advances the frame counter. It returns false when nothing was dirty.
func (t *Tree) Layout(width, height int) bool {
	root := t.Root()
	if root == nil {
		return false
	}
	changed := ComputeLayout(root, width, height)
	t.IncrementFrame()
	return changed
}
