package retained

import "sync"

// Measure and arrange copy a widget's children under its read lock so the
// lock isn't held while descending. Large trees do this for every container
// on every pass, so the copies come from a pool.
//
// Usage:
//   children := acquireWidgetSlice(len(w.children))
//   copy(children, w.children)
//   ... use children ...
//   releaseWidgetSlice(children)

var widgetSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]*Widget, 0, 16)
	},
}

// acquireWidgetSlice gets a widget slice from the pool with length n.
// Caller must call releaseWidgetSlice when done.
func acquireWidgetSlice(n int) []*Widget {
	slice := widgetSlicePool.Get().([]*Widget)
	if cap(slice) < n {
		widgetSlicePool.Put(slice[:0])
		return make([]*Widget, n, n*2)
	}
	return slice[:n]
}

// releaseWidgetSlice returns a widget slice to the pool.
// The slice should not be used after calling this.
func releaseWidgetSlice(slice []*Widget) {
	if slice == nil {
		return
	}

	// Drop references so pooled slices don't pin widgets
	for i := range slice {
		slice[i] = nil
	}

	if cap(slice) <= 256 {
		widgetSlicePool.Put(slice[:0])
	}
}
