package commands

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/shrinkwrap/declarative"
)

var (
	plainBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(lipgloss.Color("#87CEEB"))

	shrunkBubbleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(lipgloss.Color("#98FB98"))

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1)
)

// Bubble is a laid out chat bubble ready to draw.
type Bubble struct {
	Width int
	Rows  []string
}

// chatElement builds a column of bubbles. The two columns of the preview
// differ only in shrinkWrap.
func chatElement(messages []string, opts BubbleOptions, shrinkWrap bool) declarative.Element {
	label := "plain"
	if shrinkWrap {
		label = "shrunk"
	}
	bubble := declarative.Modifier{}.
		WidthIn(0, opts.MaxWidth).
		Background(label).
		PaddingXY(opts.Padding, 0)

	children := make([]declarative.Element, len(messages))
	for i, msg := range messages {
		children[i] = declarative.Text(msg).
			WithStyle(opts.Style).
			WithModifier(bubble).
			WithShrinkWrap(shrinkWrap)
	}
	return declarative.Column(children...).WithSpacing(1)
}

// LayoutBubbles lays the messages out and returns one Bubble per message.
func LayoutBubbles(messages []string, opts BubbleOptions, shrinkWrap bool) []Bubble {
	maxWidth := opts.MaxWidth
	if maxWidth <= 0 {
		maxWidth = declarative.Infinity
	}
	placements := declarative.Render(chatElement(messages, opts, shrinkWrap), declarative.Loose(maxWidth, declarative.Infinity))

	var bubbles []Bubble
	for i := 0; i < len(placements); i++ {
		bg := placements[i]
		if bg.Kind != declarative.PlaceBackground || i+1 >= len(placements) {
			continue
		}
		txt := placements[i+1]
		bubbles = append(bubbles, Bubble{Width: bg.Width, Rows: drawRows(txt)})
		i++
	}
	return bubbles
}

// drawRows renders the lines of a text placement, each padded to the
// placement width with the line's offset applied.
func drawRows(p declarative.Placement) []string {
	rows := make([]string, 0, p.Height)
	for _, line := range p.Lines {
		left := int(math.Round(float64(line.Left)))
		row := strings.Repeat(" ", max(left, 0)) + line.Text
		rows = append(rows, runewidth.FillRight(runewidth.Truncate(row, p.Width, ""), p.Width))
	}
	for len(rows) < p.Height {
		rows = append(rows, strings.Repeat(" ", p.Width))
	}
	return rows
}

// RenderChat draws the wrap-content and shrink-wrapped columns side by side.
func RenderChat(messages []string, opts BubbleOptions) string {
	plain := renderColumn("wrap content", LayoutBubbles(messages, opts, false), plainBubbleStyle, opts.Padding)
	shrunk := renderColumn("shrink wrap", LayoutBubbles(messages, opts, opts.ShrinkWrap), shrunkBubbleStyle, opts.Padding)

	gap := strings.Repeat(" ", 4)
	return lipgloss.JoinHorizontal(lipgloss.Top, plain, gap, shrunk)
}

func renderColumn(title string, bubbles []Bubble, style lipgloss.Style, padding int) string {
	blocks := []string{columnTitleStyle.Render(title), ""}
	for i, b := range bubbles {
		if i > 0 {
			blocks = append(blocks, "")
		}
		blocks = append(blocks, style.Padding(0, padding).Render(strings.Join(b.Rows, "\n")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
