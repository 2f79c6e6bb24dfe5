package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/agiangrant/shrinkwrap"
	"github.com/agiangrant/shrinkwrap/retained"
	"github.com/agiangrant/shrinkwrap/text"
)

// BubbleOptions describes how a chat bubble is sized.
type BubbleOptions struct {
	// MaxWidth of the bubble, padding included.
	MaxWidth int
	// Padding on the left and right of the text.
	Padding int
	Style   text.Style
	// ShrinkWrap toggles the shrink-wrapped bubble.
	ShrinkWrap bool
}

// Measurement compares the two bubbles for one message.
type Measurement struct {
	Message     string
	Lines       int
	PlainWidth  int
	ShrunkWidth int
	Reason      shrinkwrap.Reason
}

// Saved returns how much narrower the shrink-wrapped bubble is.
func (m Measurement) Saved() int { return m.PlainWidth - m.ShrunkWidth }

// Measure implements the 'shrinkwrap measure' command
func Measure(args []string) error {
	fs := flag.NewFlagSet("measure", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to shrinkwrap.toml")
	width := fs.Int("width", 0, "Bubble max width (overrides preview.max_width)")
	fs.Parse(args)

	config, logger, err := setup(*configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	opts := BubbleOptions{
		MaxWidth:   config.Preview.MaxWidth,
		Padding:    config.Preview.Padding,
		Style:      textStyle(config.Text),
		ShrinkWrap: config.Shrink.Enabled,
	}
	if *width > 0 {
		opts.MaxWidth = *width
	}

	messages := fs.Args()
	if len(messages) == 0 {
		messages = config.Preview.Messages
	}
	if len(messages) == 0 {
		return fmt.Errorf("no messages to measure")
	}

	results, err := MeasureMessages(context.Background(), messages, opts)
	if err != nil {
		return err
	}
	logger.Info("measured messages", zap.Int("count", len(results)), zap.Int("max_width", opts.MaxWidth))

	writeMeasurements(os.Stdout, results)
	return nil
}

// MeasureMessages lays every message out as a plain and a shrink-wrapped
// bubble. Each message gets its own widget tree, so messages are measured
// concurrently; results keep the order of messages.
func MeasureMessages(ctx context.Context, messages []string, opts BubbleOptions) ([]Measurement, error) {
	results := make([]Measurement, len(messages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, msg := range messages {
		i, msg := i, msg
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = measureMessage(msg, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("measure: %w", err)
	}
	return results, nil
}

func newBubble(w *retained.Widget, opts BubbleOptions) *retained.Widget {
	return w.SetTextStyle(opts.Style).
		SetClasses(fmt.Sprintf("w-auto max-w-[%dpx] px-[%dpx]", opts.MaxWidth, opts.Padding))
}

func measureMessage(msg string, opts BubbleOptions) Measurement {
	plain := newBubble(retained.NewText(msg), opts)
	wrapped := newBubble(retained.NewShrinkWrapText(msg), opts).SetShrinkWrap(opts.ShrinkWrap)

	tree := retained.NewTree()
	defer tree.Close()
	tree.SetRoot(retained.NewVStack(
		retained.NewVStack(plain),
		retained.NewVStack(wrapped),
	).SetWidthFull())
	tree.Layout(opts.MaxWidth*2, 0)

	lines := 0
	if layout := wrapped.TextLayout(); layout != nil {
		lines = layout.LineCount()
	}
	return Measurement{
		Message:     msg,
		Lines:       lines,
		PlainWidth:  plain.MeasuredWidth(),
		ShrunkWidth: wrapped.MeasuredWidth(),
		Reason:      wrapped.LastShrink().Reason,
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	savedStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#98FB98"))
)

const messageColumnWidth = 36

func writeMeasurements(w io.Writer, results []Measurement) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MESSAGE", "LINES", "WRAP", "SHRINK", "SAVED", "REASON").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 4:
				return savedStyle
			default:
				return cellStyle
			}
		})

	for _, r := range results {
		t.Row(
			truncate.StringWithTail(r.Message, messageColumnWidth, "…"),
			strconv.Itoa(r.Lines),
			strconv.Itoa(r.PlainWidth),
			strconv.Itoa(r.ShrunkWidth),
			strconv.Itoa(r.Saved()),
			r.Reason.String(),
		)
	}
	fmt.Fprintln(w, t.Render())
}
