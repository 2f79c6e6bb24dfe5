// Package tw parses Tailwind-style utility classes into widget properties.
//
// Only the sizing, spacing and text-flow utilities that affect measurement
// are supported. Colors, variants (hover:, dark:, md:) and other theming
// utilities are ignored.
package tw

// StyleProperties represents concrete style values.
// A nil field means the class string did not set it.
type StyleProperties struct {
	// Sizing
	Width     *float32
	MinWidth  *float32
	MaxWidth  *float32
	WidthMode *string // "fixed", "auto", "full"

	// Spacing
	PaddingTop    *float32
	PaddingRight  *float32
	PaddingBottom *float32
	PaddingLeft   *float32
	Gap           *float32

	// Layout
	Display       *string // "flex", "none"
	FlexDirection *string // "row", "column"
	AlignItems    *string // "start", "center", "end"

	// Text flow
	TextAlign  *string // "left", "center", "right"
	LineClamp  *int
	Truncate   *bool
	ShrinkWrap *bool
}

// Merge overlays the non-nil fields of p onto s.
func (s *StyleProperties) Merge(p StyleProperties) {
	if p.Width != nil {
		s.Width = p.Width
	}
	if p.MinWidth != nil {
		s.MinWidth = p.MinWidth
	}
	if p.MaxWidth != nil {
		s.MaxWidth = p.MaxWidth
	}
	if p.WidthMode != nil {
		s.WidthMode = p.WidthMode
	}
	if p.PaddingTop != nil {
		s.PaddingTop = p.PaddingTop
	}
	if p.PaddingRight != nil {
		s.PaddingRight = p.PaddingRight
	}
	if p.PaddingBottom != nil {
		s.PaddingBottom = p.PaddingBottom
	}
	if p.PaddingLeft != nil {
		s.PaddingLeft = p.PaddingLeft
	}
	if p.Gap != nil {
		s.Gap = p.Gap
	}
	if p.Display != nil {
		s.Display = p.Display
	}
	if p.FlexDirection != nil {
		s.FlexDirection = p.FlexDirection
	}
	if p.AlignItems != nil {
		s.AlignItems = p.AlignItems
	}
	if p.TextAlign != nil {
		s.TextAlign = p.TextAlign
	}
	if p.LineClamp != nil {
		s.LineClamp = p.LineClamp
	}
	if p.Truncate != nil {
		s.Truncate = p.Truncate
	}
	if p.ShrinkWrap != nil {
		s.ShrinkWrap = p.ShrinkWrap
	}
}

// ParsedClass represents a class with its variant modifiers
type ParsedClass struct {
	Variants       []string
	BaseClass      string
	ArbitraryValue *ArbitraryValue // For arbitrary values like w-[140px]
}

// ArbitraryValue represents a runtime-parsed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "w", "max-w", "px"
	Value    string // e.g., "140px", "1.5rem"
}
