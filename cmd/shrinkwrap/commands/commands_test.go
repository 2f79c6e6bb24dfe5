package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/agiangrant/shrinkwrap"
	"github.com/agiangrant/shrinkwrap/text"
)

const greeting = "Hello Android! How are you today?"

var pixelOpts = BubbleOptions{
	MaxWidth:   140,
	Padding:    8,
	Style:      text.Style{Measurer: text.FixedMeasurer{Width: 8}},
	ShrinkWrap: true,
}

var cellOpts = BubbleOptions{
	MaxWidth:   18,
	Padding:    1,
	Style:      text.Style{Measurer: text.CellMeasurer{}},
	ShrinkWrap: true,
}

func TestMeasureMessages(t *testing.T) {
	disabled := pixelOpts
	disabled.ShrinkWrap = false

	tests := []struct {
		name string
		msg  string
		opts BubbleOptions
		want Measurement
	}{
		{
			name: "chat bubble",
			msg:  greeting,
			opts: pixelOpts,
			want: Measurement{Lines: 3, PlainWidth: 140, ShrunkWidth: 128, Reason: shrinkwrap.ReasonShrunk},
		},
		{
			name: "single line",
			msg:  "Hi",
			opts: pixelOpts,
			want: Measurement{Lines: 1, PlainWidth: 32, ShrunkWidth: 32, Reason: shrinkwrap.ReasonSingleLine},
		},
		{
			name: "disabled",
			msg:  greeting,
			opts: disabled,
			want: Measurement{Lines: 3, PlainWidth: 140, ShrunkWidth: 140, Reason: shrinkwrap.ReasonDisabled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := MeasureMessages(context.Background(), []string{tt.msg}, tt.opts)
			if err != nil {
				t.Fatalf("MeasureMessages: %v", err)
			}
			got := results[0]
			tt.want.Message = tt.msg
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMeasureMessagesKeepsOrder(t *testing.T) {
	messages := []string{greeting, "Hi", "Fine, thanks."}
	results, err := MeasureMessages(context.Background(), messages, pixelOpts)
	if err != nil {
		t.Fatalf("MeasureMessages: %v", err)
	}
	for i, r := range results {
		if r.Message != messages[i] {
			t.Errorf("result %d is for %q, want %q", i, r.Message, messages[i])
		}
	}
}

func TestMeasureMessagesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := MeasureMessages(ctx, []string{greeting}, pixelOpts); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestWriteMeasurements(t *testing.T) {
	var buf bytes.Buffer
	writeMeasurements(&buf, []Measurement{
		{Message: greeting, Lines: 3, PlainWidth: 140, ShrunkWidth: 128, Reason: shrinkwrap.ReasonShrunk},
	})
	out := buf.String()
	for _, want := range []string{"MESSAGE", "SAVED", "128", "12", "shrunk"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutBubbles(t *testing.T) {
	plain := LayoutBubbles([]string{greeting}, cellOpts, false)
	shrunk := LayoutBubbles([]string{greeting}, cellOpts, true)
	if len(plain) != 1 || len(shrunk) != 1 {
		t.Fatalf("got %d/%d bubbles, want 1/1", len(plain), len(shrunk))
	}

	if plain[0].Width != 18 {
		t.Errorf("plain width = %d, want 18", plain[0].Width)
	}
	if shrunk[0].Width != 16 {
		t.Errorf("shrunk width = %d, want 16", shrunk[0].Width)
	}

	want := []string{"Hello Android!", "How are you   ", "today?        "}
	if len(shrunk[0].Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(shrunk[0].Rows), len(want))
	}
	for i, row := range shrunk[0].Rows {
		if row != want[i] {
			t.Errorf("row %d = %q, want %q", i, row, want[i])
		}
	}
}

func TestLayoutBubblesEndAligned(t *testing.T) {
	opts := cellOpts
	opts.Style.Align = text.AlignEnd
	bubbles := LayoutBubbles([]string{greeting}, opts, true)

	if got := bubbles[0].Rows[2]; got != "        today?" {
		t.Errorf("last row = %q, want right aligned", got)
	}
}

func TestRenderChat(t *testing.T) {
	out := RenderChat([]string{greeting, "Hi"}, cellOpts)
	for _, want := range []string{"wrap content", "shrink wrap", "Hello Android!", "Hi"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPreviewModel(t *testing.T) {
	m := newPreviewModel([]string{greeting}, cellOpts, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.opts.MaxWidth != 19 {
		t.Errorf("MaxWidth = %d, want 19", m.opts.MaxWidth)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.opts.ShrinkWrap {
		t.Error("expected tab to turn shrink wrapping off")
	}

	m.input.SetValue("Fine, thanks.")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.messages) != 2 || m.messages[1] != "Fine, thanks." {
		t.Errorf("messages = %q", m.messages)
	}
	if m.input.Value() != "" {
		t.Error("expected input to be cleared")
	}

	for i := 0; i < 40; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	if got := m.opts.MaxWidth; got != minBubbleWidth(cellOpts.Padding) {
		t.Errorf("MaxWidth = %d, want %d", got, minBubbleWidth(cellOpts.Padding))
	}

	if view := m.View(); !strings.Contains(view, "shrink wrap off") {
		t.Errorf("view missing status:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(shrinkwrap.LogConfig{Level: "debug", Development: true})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Error("expected debug level to be enabled")
	}

	if _, err := NewLogger(shrinkwrap.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestTextStyle(t *testing.T) {
	style := textStyle(shrinkwrap.TextConfig{Measurer: "fixed", Advance: 8, LineHeight: 20, Align: "end"})
	if m, ok := style.Measurer.(text.FixedMeasurer); !ok || m.Width != 8 {
		t.Errorf("Measurer = %#v, want FixedMeasurer{8}", style.Measurer)
	}
	if style.Align != text.AlignEnd || style.LineHeight != 20 {
		t.Errorf("style = %+v", style)
	}

	if _, ok := textStyle(shrinkwrap.DefaultConfig().Text).Measurer.(text.CellMeasurer); !ok {
		t.Error("expected default measurer to be cells")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := writeDefaultConfig(dir, false)
	if err != nil {
		t.Fatalf("writeDefaultConfig: %v", err)
	}
	if _, err := writeDefaultConfig(dir, false); err == nil {
		t.Error("expected error when config exists")
	}
	if _, err := writeDefaultConfig(dir, true); err != nil {
		t.Errorf("force overwrite: %v", err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Preview.MaxWidth != shrinkwrap.DefaultConfig().Preview.MaxWidth {
		t.Errorf("MaxWidth = %d", config.Preview.MaxWidth)
	}
}

func TestLoadConfigFindsParent(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, shrinkwrap.ConfigFileName), []byte("[preview]\nmax_width = 40\n"), 0644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(dir, "chat")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(sub); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Preview.MaxWidth != 40 {
		t.Errorf("MaxWidth = %d, want 40", config.Preview.MaxWidth)
	}
}
