package tw

import "testing"

func TestParseClasses(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		validate func(*testing.T, StyleProperties)
	}{
		{
			name:  "spacing scale",
			input: "px-3 py-2 gap-1",
			validate: func(t *testing.T, s StyleProperties) {
				if s.PaddingLeft == nil || *s.PaddingLeft != 12 {
					t.Errorf("expected PaddingLeft=12, got %v", s.PaddingLeft)
				}
				if s.PaddingRight == nil || *s.PaddingRight != 12 {
					t.Errorf("expected PaddingRight=12, got %v", s.PaddingRight)
				}
				if s.PaddingTop == nil || *s.PaddingTop != 8 {
					t.Errorf("expected PaddingTop=8, got %v", s.PaddingTop)
				}
				if s.Gap == nil || *s.Gap != 4 {
					t.Errorf("expected Gap=4, got %v", s.Gap)
				}
			},
		},
		{
			name:  "wrap content with max width",
			input: "w-auto max-w-[140px]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.WidthMode == nil || *s.WidthMode != "auto" {
					t.Errorf("expected WidthMode=auto, got %v", s.WidthMode)
				}
				if s.MaxWidth == nil || *s.MaxWidth != 140 {
					t.Errorf("expected MaxWidth=140, got %v", s.MaxWidth)
				}
			},
		},
		{
			name:  "fixed width from scale",
			input: "w-10",
			validate: func(t *testing.T, s StyleProperties) {
				if s.Width == nil || *s.Width != 40 {
					t.Errorf("expected Width=40, got %v", s.Width)
				}
				if s.WidthMode == nil || *s.WidthMode != "fixed" {
					t.Errorf("expected WidthMode=fixed, got %v", s.WidthMode)
				}
			},
		},
		{
			name:  "rem arbitrary value",
			input: "p-[1.5rem]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.PaddingBottom == nil || *s.PaddingBottom != 24 {
					t.Errorf("expected PaddingBottom=24, got %v", s.PaddingBottom)
				}
			},
		},
		{
			name:  "shrink wrap toggles, last wins",
			input: "shrink-wrap shrink-wrap-none",
			validate: func(t *testing.T, s StyleProperties) {
				if s.ShrinkWrap == nil || *s.ShrinkWrap {
					t.Errorf("expected ShrinkWrap=false, got %v", s.ShrinkWrap)
				}
			},
		},
		{
			name:  "text flow",
			input: "text-right line-clamp-3",
			validate: func(t *testing.T, s StyleProperties) {
				if s.TextAlign == nil || *s.TextAlign != "right" {
					t.Errorf("expected TextAlign=right, got %v", s.TextAlign)
				}
				if s.LineClamp == nil || *s.LineClamp != 3 {
					t.Errorf("expected LineClamp=3, got %v", s.LineClamp)
				}
			},
		},
		{
			name:  "truncate clamps to one line",
			input: "truncate",
			validate: func(t *testing.T, s StyleProperties) {
				if s.Truncate == nil || !*s.Truncate {
					t.Error("expected Truncate=true")
				}
				if s.LineClamp == nil || *s.LineClamp != 1 {
					t.Errorf("expected LineClamp=1, got %v", s.LineClamp)
				}
			},
		},
		{
			name:  "variants and unknown classes ignored",
			input: "hover:px-8 dark:hidden bg-blue-500 text-lg w-[33%]",
			validate: func(t *testing.T, s StyleProperties) {
				if s.PaddingLeft != nil {
					t.Error("hover variant should be ignored")
				}
				if s.Display != nil {
					t.Error("dark variant should be ignored")
				}
				if s.Width != nil {
					t.Error("percentage width should be ignored")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseClasses(tt.input))
		})
	}
}

func TestExtractArbitraryValue(t *testing.T) {
	arb := extractArbitraryValue("max-w-[140px]")
	if arb == nil {
		t.Fatal("expected arbitrary value")
	}
	if arb.Property != "max-w" || arb.Value != "140px" {
		t.Errorf("got %+v", arb)
	}
	if extractArbitraryValue("px-4") != nil {
		t.Error("expected nil for non-arbitrary class")
	}
}
