package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/corpustext/utf8text/charwidth"
	"github.com/corpustext/utf8text/escape"
	"github.com/corpustext/utf8text/scan"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#444444"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// maxRunRows caps the per-code-point table so pasted text stays readable.
const maxRunRows = 16

type inspectModel struct {
	input textinput.Model
	opts  escape.Options
}

func newInspectModel(opts escape.Options) *inspectModel {
	ti := textinput.New()
	ti.Placeholder = "type text to inspect"
	ti.Focus()
	ti.Width = 64
	return &inspectModel{input: ti, opts: opts}
}

func (m *inspectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		switch key.String() {
		case "ctrl+t":
			m.opts.Display = !m.opts.Display
			return m, nil
		case "ctrl+a":
			m.opts.ASCIIOnly = !m.opts.ASCIIOnly
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("utf8vet"))
	fmt.Fprintf(&b, "  display=%v ascii=%v\n\n", m.opts.Display, m.opts.ASCIIOnly)
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	raw := []byte(m.input.Value())

	escaped, err := escape.String(m.input.Value(), m.opts)
	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
		b.WriteByte('\n')
	} else {
		b.WriteString(labelStyle.Render("escaped "))
		b.WriteString(valueStyle.Render(escaped))
		b.WriteByte('\n')
	}

	b.WriteString(labelStyle.Render("width   "))
	fmt.Fprintf(&b, "%d\n", charwidth.Width(raw))

	b.WriteString(labelStyle.Render("valid   "))
	if ok, off := scan.Valid(raw); ok {
		b.WriteString("yes\n")
	} else {
		b.WriteString(errorStyle.Render(
			fmt.Sprintf("no, invalid byte in position %d (\\x%02x)", off+1, raw[off])))
		b.WriteByte('\n')
	}

	if len(raw) > 0 {
		b.WriteByte('\n')
		b.WriteString(m.viewRuns(raw))
	}

	b.WriteByte('\n')
	b.WriteString(helpStyle.Render("ctrl+t display mode • ctrl+a ascii-only • esc quit"))
	return b.String()
}

// viewRuns renders one row per unit run: code point, class, and columns.
func (m *inspectModel) viewRuns(raw []byte) string {
	var b strings.Builder
	rows := 0
	for i := 0; i < len(raw) && rows < maxRunRows; rows++ {
		n, ok := scan.First(raw[i:])
		if !ok {
			fmt.Fprintf(&b, "  \\x%02x      %s\n", raw[i], errorStyle.Render("invalid"))
			i++
			continue
		}
		r, _ := scan.Decode(raw[i:])
		cls := charwidth.Classify(r)
		fmt.Fprintf(&b, "  U+%06X  %s  %d col\n",
			r, classStyle.Render(fmt.Sprintf(" %-9s ", cls)), cls.Columns())
		i += n
	}
	if rows == maxRunRows {
		b.WriteString(helpStyle.Render("  ...\n"))
	}
	return b.String()
}

func runInteractive(opts escape.Options) error {
	p := tea.NewProgram(newInspectModel(opts))
	_, err := p.Run()
	return err
}
