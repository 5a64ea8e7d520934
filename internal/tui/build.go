package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/docbridge/internal/styles"
)

// BuildResult holds the result of a build
type BuildResult struct {
	Converted int
	Unchanged int
	Excluded  int
	Errors    []error
	Duration  time.Duration
	DryRun    bool
}

// buildModel is the Bubble Tea model for the build progress display
type buildModel struct {
	spinner  spinner.Model
	status   string
	complete bool
	result   *BuildResult
	err      error
}

// BuildMsg is sent when the build completes
type BuildMsg struct {
	Result *BuildResult
	Err    error
}

// InitBuildModel creates a new build progress model
func InitBuildModel(source string) buildModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return buildModel{
		spinner: s,
		status:  "Converting docstrings from " + source + "...",
	}
}

func (m buildModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case BuildMsg:
		m.complete = true
		m.result = msg.Result
		m.err = msg.Err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m buildModel) View() string {
	if !m.complete {
		return fmt.Sprintf("\n%s %s\n\n", m.spinner.View(), m.status)
	}

	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Build failed: "+m.err.Error()) + "\n"
	}

	took := styles.HelpStyle.Render(fmt.Sprintf("Completed in %v", m.result.Duration.Round(time.Millisecond)))

	if m.result.Converted == 0 && len(m.result.Errors) == 0 {
		return styles.SuccessStyle.Render("✓ Nothing changed") + "\n" + took + "\n"
	}

	verb := "Converted"
	if m.result.DryRun {
		verb = "Would convert"
	}
	msg := styles.SuccessStyle.Render(fmt.Sprintf("✓ %s %d docstring(s)", verb, m.result.Converted))
	if m.result.Unchanged > 0 {
		msg += ", " + styles.DimStyle.Render(fmt.Sprintf("%d unchanged", m.result.Unchanged))
	}
	if m.result.Excluded > 0 {
		msg += ", " + styles.DimStyle.Render(fmt.Sprintf("%d excluded", m.result.Excluded))
	}
	if len(m.result.Errors) > 0 {
		msg += ", " + styles.ErrorStyle.Render(fmt.Sprintf("%d error(s)", len(m.result.Errors)))
	}

	return msg + "\n" + took + "\n"
}
