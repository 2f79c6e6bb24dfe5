package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/agiangrant/shrinkwrap/text"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type keyMap struct {
	Narrower key.Binding
	Wider    key.Binding
	Toggle   key.Binding
	Send     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Narrower: key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "narrower")),
	Wider:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "wider")),
	Toggle:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle shrink wrap")),
	Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add message")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

func (k keyMap) help() string {
	var parts []string
	for _, b := range []key.Binding{k.Narrower, k.Wider, k.Toggle, k.Send, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// minBubbleWidth keeps at least one cell of text inside the padding.
func minBubbleWidth(padding int) int { return 2*padding + 1 }

// Preview implements the 'shrinkwrap preview' command
func Preview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to shrinkwrap.toml")
	width := fs.Int("width", 0, "Bubble max width (overrides preview.max_width)")
	static := fs.Bool("static", false, "Print the preview once instead of running interactively")
	fs.Parse(args)

	config, logger, err := setup(*configPath)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// The terminal is the host, so the preview always measures in cells.
	style := textStyle(config.Text)
	style.Measurer = text.CellMeasurer{}
	style.LineHeight = 1

	opts := BubbleOptions{
		MaxWidth:   config.Preview.MaxWidth,
		Padding:    config.Preview.Padding,
		Style:      style,
		ShrinkWrap: config.Shrink.Enabled,
	}
	if *width > 0 {
		opts.MaxWidth = *width
	}
	messages := append(fs.Args(), config.Preview.Messages...)

	if *static {
		fmt.Println(RenderChat(messages, opts))
		return nil
	}

	p := tea.NewProgram(newPreviewModel(messages, opts, logger))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

type previewModel struct {
	messages []string
	opts     BubbleOptions
	input    textinput.Model
	logger   *zap.Logger
	width    int
}

func newPreviewModel(messages []string, opts BubbleOptions, logger *zap.Logger) *previewModel {
	ti := textinput.New()
	ti.Placeholder = "Type a message"
	ti.Prompt = "> "
	ti.Focus()

	if logger == nil {
		logger = zap.NewNop()
	}
	return &previewModel{messages: messages, opts: opts, input: ti, logger: logger}
}

func (m *previewModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Narrower):
			if m.opts.MaxWidth > minBubbleWidth(m.opts.Padding) {
				m.opts.MaxWidth--
			}
			return m, nil

		case key.Matches(msg, keys.Wider):
			m.opts.MaxWidth++
			return m, nil

		case key.Matches(msg, keys.Toggle):
			m.opts.ShrinkWrap = !m.opts.ShrinkWrap
			m.logger.Debug("toggled shrink wrap", zap.Bool("enabled", m.opts.ShrinkWrap))
			return m, nil

		case key.Matches(msg, keys.Send):
			if v := strings.TrimSpace(m.input.Value()); v != "" {
				m.messages = append(m.messages, v)
				m.input.Reset()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *previewModel) View() string {
	var b strings.Builder

	status := "on"
	if !m.opts.ShrinkWrap {
		status = "off"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("max width %d • shrink wrap %s", m.opts.MaxWidth, status)))
	b.WriteString("\n\n")
	b.WriteString(RenderChat(m.messages, m.opts))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(keys.help()))
	b.WriteString("\n")
	return b.String()
}
