package retained

import (
	"testing"

	"github.com/agiangrant/shrinkwrap/text"
)

func TestWidgetCreation(t *testing.T) {
	tests := []struct {
		name           string
		widget         *Widget
		wantKind       WidgetKind
		wantShrinkWrap bool
	}{
		{"VStack", NewVStack(), KindVStack, false},
		{"HStack", NewHStack(), KindHStack, false},
		{"Text", NewText("Hello"), KindText, false},
		{"Button", NewButton("Send"), KindButton, false},
		{"ShrinkWrapText", NewShrinkWrapText("Hello"), KindText, true},
		{"ShrinkWrapButton", NewShrinkWrapButton("Send"), KindButton, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.widget.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", got, tt.wantKind)
			}
			if got := tt.widget.ShrinkWrap(); got != tt.wantShrinkWrap {
				t.Errorf("ShrinkWrap() = %v, want %v", got, tt.wantShrinkWrap)
			}
			if !tt.widget.IsVisible() {
				t.Error("expected new widget to be visible")
			}
		})
	}
}

func TestWidgetIDsAreUnique(t *testing.T) {
	a, b := NewText("a"), NewText("b")
	if a.ID() == b.ID() {
		t.Errorf("duplicate ID %d", a.ID())
	}
}

func TestSetShrinkWrapOnPlainWidget(t *testing.T) {
	w := NewText("Hello").SetShrinkWrap(true)
	if w.ShrinkWrap() {
		t.Error("plain text should not shrink-wrap on its own")
	}
	if w.IsShrinkWrapper() {
		t.Error("plain text is not a shrink wrapper")
	}

	sw := NewShrinkWrapText("Hello").SetShrinkWrap(false)
	if sw.ShrinkWrap() {
		t.Error("expected shrink wrapping to be disabled")
	}
	if !sw.IsShrinkWrapper() {
		t.Error("expected shrink wrapper")
	}
}

func TestWidgetChildren(t *testing.T) {
	a, b, c := NewText("a"), NewText("b"), NewText("c")
	parent := NewVStack(a, c)
	parent.InsertChild(1, b)

	children := parent.Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	for i, want := range []*Widget{a, b, c} {
		if children[i] != want {
			t.Errorf("child %d = %q, want %q", i, children[i].Text(), want.Text())
		}
	}
	if b.Parent() != parent {
		t.Error("expected parent to be set")
	}

	b.RemoveFromParent()
	if len(parent.Children()) != 2 {
		t.Errorf("expected 2 children after removal, got %d", len(parent.Children()))
	}
	if b.Parent() != nil {
		t.Error("expected parent to be cleared")
	}
	if parent.RemoveChild(b) {
		t.Error("removing a non-child should return false")
	}
}

func TestWidgetDirtyTracking(t *testing.T) {
	w := NewText("a")
	w.ClearDirty()

	w.SetText("a")
	if w.IsDirty() {
		t.Error("setting the same text should not mark dirty")
	}

	w.SetText("b").SetPadding(4)
	if !w.IsDirty() {
		t.Fatal("expected widget to be dirty")
	}
	if mask := w.DirtyMask(); mask&DirtyText == 0 || mask&DirtySize == 0 {
		t.Errorf("DirtyMask() = %b, want DirtyText|DirtySize", mask)
	}

	w.ClearDirty()
	if w.IsDirty() || w.DirtyMask() != 0 {
		t.Error("expected dirty state to be cleared")
	}
}

func TestWidgetSetters(t *testing.T) {
	w := NewText("Hello").
		SetMaxWidth(140).
		SetMinWidth(20).
		SetPaddingXY(8, 4).
		SetTextAlign(text.AlignCenter).
		SetMaxLines(2).
		SetData("msg-1")

	if got := w.Padding(); got != [4]int{4, 8, 4, 8} {
		t.Errorf("Padding() = %v", got)
	}
	if got := w.TextStyle(); got.Align != text.AlignCenter || got.MaxLines != 2 {
		t.Errorf("TextStyle() = %+v", got)
	}
	if got := w.Data(); got != "msg-1" {
		t.Errorf("Data() = %v", got)
	}

	w.SetWidth(50)
	if got := w.widthModeOf(); got != SizeFixed {
		t.Errorf("width mode = %v, want SizeFixed", got)
	}
	w.SetWidthFull()
	if got := w.widthModeOf(); got != SizeFull {
		t.Errorf("width mode = %v, want SizeFull", got)
	}
}

func TestSetMeasuredDimension(t *testing.T) {
	w := NewText("Hello")
	w.SetMeasuredDimension(10, 20)
	if w.MeasuredWidth() != 10 || w.MeasuredHeight() != 20 {
		t.Errorf("measured = %dx%d, want 10x20", w.MeasuredWidth(), w.MeasuredHeight())
	}
	if w.DirtyMask()&DirtySize == 0 {
		t.Error("expected DirtySize")
	}
}
