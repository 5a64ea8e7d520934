package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/docbridge/internal/styles"
)

// StatusData holds build state and log information
type StatusData struct {
	StatePath string
	Tracked   int
	Custom    int
	Native    int
	Manifests []ManifestInfo
	LastBuild time.Time
	Converted int
	LogLines  []string
}

// ManifestInfo is a manifest the watcher has seen
type ManifestInfo struct {
	Path   string
	SeenAt time.Time
}

// StatusMsg is sent when status data is ready
type StatusMsg struct {
	Data *StatusData
	Err  error
}

// TickMsg triggers a periodic refresh
type TickMsg time.Time

type statusModel struct {
	data     *StatusData
	err      error
	ready    bool
	interval time.Duration
	loadFunc func() (*StatusData, error)
}

// InitStatusModel creates a status dashboard that reloads every interval
func InitStatusModel(loadFunc func() (*StatusData, error), interval time.Duration) statusModel {
	return statusModel{
		interval: interval,
		loadFunc: loadFunc,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(m.load(), m.tick())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.load()
		}

	case TickMsg:
		return m, tea.Batch(m.load(), m.tick())

	case StatusMsg:
		m.ready = true
		m.data = msg.Data
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

func (m statusModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("DocBridge Status"))
	b.WriteString("\n\n")

	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready || m.data == nil {
		return b.String()
	}

	// Objects
	b.WriteString(styles.LabelStyle.Render("Tracked Objects"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  Total:  %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", m.data.Tracked))))
	b.WriteString(fmt.Sprintf("  Custom: %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", m.data.Custom))))
	b.WriteString(fmt.Sprintf("  Native: %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", m.data.Native))))
	b.WriteString("\n")

	// Builds
	b.WriteString(styles.LabelStyle.Render("Last Build"))
	b.WriteString("\n")
	if m.data.LastBuild.IsZero() {
		b.WriteString(fmt.Sprintf("  %s\n", styles.HelpStyle.Render("No build completed yet")))
	} else {
		since := time.Since(m.data.LastBuild).Round(time.Second)
		b.WriteString(fmt.Sprintf("  Finished:  %s ago\n", styles.ValueStyle.Render(since.String())))
		b.WriteString(fmt.Sprintf("  Converted: %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", m.data.Converted))))
	}
	b.WriteString("\n")

	// Manifests
	b.WriteString(styles.LabelStyle.Render("Watched Manifests"))
	b.WriteString("\n")
	if len(m.data.Manifests) == 0 {
		b.WriteString(fmt.Sprintf("  %s\n", styles.HelpStyle.Render("None")))
	}
	for _, mf := range m.data.Manifests {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styles.ValueStyle.Render(mf.Path),
			styles.DimStyle.Render(mf.SeenAt.Format(time.DateTime))))
	}
	b.WriteString("\n")

	// Log tail
	b.WriteString(styles.LabelStyle.Render("Recent Logs"))
	b.WriteString("\n")
	if len(m.data.LogLines) > 0 {
		for _, line := range m.data.LogLines {
			b.WriteString("  " + line + "\n")
		}
	} else {
		b.WriteString(styles.HelpStyle.Render("  No logs available"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(styles.DimStyle.Render("State file: " + m.data.StatePath))
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(fmt.Sprintf("r refresh • q quit • auto-refresh: %v", m.interval)))
	b.WriteString("\n")

	return b.String()
}

// tick schedules the next refresh; only TickMsg reschedules it
func (m statusModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// load returns a command that reads fresh status data
func (m statusModel) load() tea.Cmd {
	return func() tea.Msg {
		if m.loadFunc == nil {
			return StatusMsg{Data: &StatusData{}}
		}
		data, err := m.loadFunc()
		return StatusMsg{Data: data, Err: err}
	}
}
