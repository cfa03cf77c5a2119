package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type startupDoneMsg struct {
	err error
}

type startupSpinnerModel struct {
	spinner spinner.Model
	label   string
	start   tea.Cmd
	err     error
	done    bool
}

func newStartupSpinnerModel(label string, start tea.Cmd) startupSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return startupSpinnerModel{
		spinner: s,
		label:   label,
		start:   start,
	}
}

func (m startupSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m startupSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case startupDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m startupSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runStartupSpinner shows a spinner on output until start returns. Signal
// handling stays with the caller's context so start always runs to completion
// and nothing it opened is abandoned.
func runStartupSpinner(ctx context.Context, output io.Writer, label string, start func(context.Context) error) error {
	startCmd := func() tea.Msg {
		return startupDoneMsg{err: start(ctx)}
	}

	p := tea.NewProgram(
		newStartupSpinnerModel(label, startCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithoutSignalHandler(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(startupSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
