package retained

import (
	"sync"

	"github.com/agiangrant/shrinkwrap/text"
	"github.com/agiangrant/shrinkwrap/tw"
)

// styleCache caches parsed styles for repeated class strings.
var (
	styleCache   = make(map[string]*tw.StyleProperties)
	styleCacheMu sync.RWMutex
)

// resolveStyles returns cached or freshly parsed styles for a class string.
func resolveStyles(classes string) *tw.StyleProperties {
	if classes == "" {
		return nil
	}

	styleCacheMu.RLock()
	if cached, ok := styleCache[classes]; ok {
		styleCacheMu.RUnlock()
		return cached
	}
	styleCacheMu.RUnlock()

	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := styleCache[classes]; ok {
		return cached
	}

	styles := tw.ParseClasses(classes)
	styleCache[classes] = &styles
	return &styles
}

// SetClasses sets Tailwind-style classes and applies them.
// Example: w.SetClasses("w-auto max-w-[140px] px-3 py-2 shrink-wrap")
//
// Classes only set what they name; properties a class string doesn't
// mention keep their current value.
func (w *Widget) SetClasses(classes string) *Widget {
	styles := resolveStyles(classes)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.classes = classes
	if styles != nil {
		applyStyleProperties(w, styles)
	}
	w.markDirty(DirtySize | DirtyLayout)
	return w
}

// Classes returns the class string last passed to SetClasses.
func (w *Widget) Classes() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.classes
}

// applyStyleProperties applies a StyleProperties to widget fields.
// Must be called with lock held.
func applyStyleProperties(w *Widget, props *tw.StyleProperties) {
	// Sizing
	if props.Width != nil {
		w.width = int(*props.Width)
		w.widthMode = SizeFixed
	}
	if props.WidthMode != nil {
		switch *props.WidthMode {
		case "auto":
			w.widthMode = SizeAuto
		case "full":
			w.widthMode = SizeFull
		case "fixed":
			w.widthMode = SizeFixed
		}
	}
	if props.MinWidth != nil {
		w.minWidth = int(*props.MinWidth)
	}
	if props.MaxWidth != nil {
		w.maxWidth = int(*props.MaxWidth)
	}

	// Spacing
	if props.PaddingTop != nil {
		w.padding[0] = int(*props.PaddingTop)
	}
	if props.PaddingRight != nil {
		w.padding[1] = int(*props.PaddingRight)
	}
	if props.PaddingBottom != nil {
		w.padding[2] = int(*props.PaddingBottom)
	}
	if props.PaddingLeft != nil {
		w.padding[3] = int(*props.PaddingLeft)
	}
	if props.Gap != nil {
		w.gap = int(*props.Gap)
	}

	// Layout
	if props.Display != nil {
		w.visible = *props.Display != "none"
	}
	if props.FlexDirection != nil {
		switch *props.FlexDirection {
		case "row":
			w.flexDirection = FlexRow
		case "column":
			w.flexDirection = FlexColumn
		}
	}
	if props.AlignItems != nil {
		switch *props.AlignItems {
		case "start":
			w.alignItems = AlignStart
		case "center":
			w.alignItems = AlignCenter
		case "end":
			w.alignItems = AlignEnd
		}
	}

	// Text flow
	if props.TextAlign != nil {
		switch *props.TextAlign {
		case "left":
			w.textStyle.Align = text.AlignStart
		case "center":
			w.textStyle.Align = text.AlignCenter
		case "right":
			w.textStyle.Align = text.AlignEnd
		}
	}
	if props.LineClamp != nil {
		w.textStyle.MaxLines = *props.LineClamp
		w.textStyle.Overflow = text.OverflowEllipsis
		w.textStyle.NoWrap = false
	}
	if props.Truncate != nil && *props.Truncate {
		w.textStyle.MaxLines = 1
		w.textStyle.Overflow = text.OverflowEllipsis
		w.textStyle.NoWrap = true
	}
	if props.ShrinkWrap != nil && w.shrinkWrapper {
		w.shrinkWrap = *props.ShrinkWrap
	}
}
