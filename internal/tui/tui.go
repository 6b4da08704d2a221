// internal/tui/tui.go
// Package tui provides the interactive gostats mode: type numbers, watch
// the statistics update, press enter to keep a sequence in the history.
package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/gostats/internal/input"
	"github.com/mwiater/gostats/internal/report"
	"github.com/mwiater/gostats/stats"
)

// Options configures the interactive session.
type Options struct {
	Stats     []string // statistics to show, in order
	Precision int      // see report.Options
	Debug     bool     // log Update traffic to debug.log
}

// entry is one committed sequence.
type entry struct {
	values  []float64
	results []stats.Result
}

// model is the Bubble Tea model for the interactive session.
type model struct {
	opts Options

	input   textinput.Model
	values  []float64      // last successfully parsed values
	results []stats.Result // results for values
	err     error          // parse error for the current input, if any
	history []entry

	width, height int
}

var (
	titleStyle   = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	historyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// initialModel builds the model with an empty, focused input.
func initialModel(opts Options) *model {
	if len(opts.Stats) == 0 {
		opts.Stats = stats.Names()
	}

	ti := textinput.New()
	ti.Placeholder = "1 2 3.5 -4"
	ti.Prompt = "Values: "
	ti.CharLimit = 0
	ti.Focus()

	m := &model{opts: opts, input: ti}
	m.recompute()
	return m
}

// recompute parses the current input and, if it parses, replaces the shown
// results. On a parse error the previous results stay visible.
func (m *model) recompute() {
	xs, err := input.ParseValues([]string{m.input.Value()})
	if err != nil {
		m.err = err
		return
	}
	res, err := stats.Apply(xs, m.opts.Stats...)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.values = xs
	m.results = res
}

// Init starts the cursor blink.
func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.opts.Debug {
		log.Printf("update: %T %v", msg, msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.err == nil && len(m.values) > 0 {
				m.history = append(m.history, entry{values: m.values, results: m.results})
				m.input.Reset()
				m.recompute()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 10)
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.recompute()
	}
	return m, cmd
}

// View renders the title, input, result table and history.
func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("gostats") + helpStyle.Render(" (enter to keep, esc to quit)") + "\n\n")
	b.WriteString(m.input.View() + "\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}
	b.WriteString("\n")

	row := report.Row{Count: len(m.values), Results: m.results}
	b.WriteString(report.Table([]report.Row{row}, m.opts.Precision) + "\n")

	if len(m.history) > 0 {
		b.WriteString("\nHistory:\n")
		for i := len(m.history) - 1; i >= 0; i-- {
			b.WriteString(historyStyle.Render(m.history[i].summary(m.opts.Precision)) + "\n")
		}
	}
	return b.String()
}

// summary renders a committed entry on one line.
func (e entry) summary(precision int) string {
	parts := make([]string, len(e.results))
	for i, r := range e.results {
		parts[i] = r.Name + "=" + report.FormatValue(r, precision)
	}
	return fmt.Sprintf("  n=%d  %s", len(e.values), strings.Join(parts, "  "))
}

// Start runs the interactive session until the user quits.
func Start(opts Options) error {
	if opts.Debug {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer f.Close()
	}

	if err := stats.Validate(opts.Stats...); err != nil {
		return err
	}

	p := tea.NewProgram(initialModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
