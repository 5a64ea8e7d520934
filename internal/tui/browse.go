package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/docbridge/internal/styles"
)

// BrowseData holds all objects of a manifest with their conversion status
type BrowseData struct {
	Source  string
	Objects []ObjectInfo
}

// ObjectInfo represents a documented object in the browser
type ObjectInfo struct {
	Name       string
	Kind       string
	Convention string // "custom" or "native"
	Params     int
	Status     string // "converted", "unchanged", "excluded", "failed"
	// ConvertedAt is when the last real build recorded the object, zero if never
	ConvertedAt time.Time
}

// BrowseMsg is sent when browse data is ready
type BrowseMsg struct {
	Data *BrowseData
	Err  error
}

// DiffMsg is sent when diff preview is ready
type DiffMsg struct {
	Content string
	Err     error
}

type browseModel struct {
	table       table.Model
	viewport    viewport.Model
	data        *BrowseData
	err         error
	ready       bool
	showingDiff bool
	width       int
	height      int
	selected    *ObjectInfo
	diffFunc    func(name string) (string, error)
}

// InitBrowseModel creates a new object browser model.
// diffFunc renders the conversion diff of the named object.
func InitBrowseModel(diffFunc func(string) (string, error)) browseModel {
	columns := []table.Column{
		{Title: "Object", Width: 50},
		{Title: "Kind", Width: 10},
		{Title: "Convention", Width: 10},
		{Title: "Params", Width: 6},
		{Title: "Status", Width: 12},
		{Title: "Last Converted", Width: 19},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(styles.Background)).
		Background(lipgloss.Color(styles.Yellow)).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(styles.Border)).
		Padding(1)

	return browseModel{
		table:    t,
		viewport: vp,
		diffFunc: diffFunc,
	}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 10)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6

	case tea.KeyMsg:
		if m.showingDiff {
			switch msg.String() {
			case "q", "esc":
				m.showingDiff = false
				return m, nil
			case "up", "k", "down", "j", "pgup", "pgdown":
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k", "down", "j":
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		case "enter", "d":
			if m.data != nil && len(m.data.Objects) > 0 {
				idx := m.table.Cursor()
				if idx < len(m.data.Objects) {
					m.selected = &m.data.Objects[idx]
					m.showingDiff = true
					m.viewport.SetContent("Loading diff...")
					return m, m.loadDiff(m.selected.Name)
				}
			}
			return m, nil
		}

	case BrowseMsg:
		m.ready = true
		m.data = msg.Data
		m.err = msg.Err

		if m.data != nil {
			rows := make([]table.Row, 0, len(m.data.Objects))
			for _, obj := range m.data.Objects {
				rows = append(rows, table.Row{
					obj.Name,
					obj.Kind,
					obj.Convention,
					fmt.Sprintf("%d", obj.Params),
					statusIcon(obj.Status) + " " + obj.Status,
					formatConvertedAt(obj.ConvertedAt),
				})
			}
			m.table.SetRows(rows)
		}

		return m, nil

	case DiffMsg:
		content := msg.Content
		if msg.Err != nil {
			content = styles.ErrorStyle.Render("✗ " + msg.Err.Error())
		}
		m.viewport.SetContent(content)
		m.viewport.GotoTop()
		return m, nil
	}

	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("DocBridge Object Browser"))
	b.WriteString("\n\n")

	if m.err != nil {
		return styles.ErrorStyle.Render("✗ Error: "+m.err.Error()) + "\n"
	}

	if !m.ready || m.data == nil {
		return b.String()
	}

	if m.showingDiff {
		b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("Conversion Preview: %s", m.selected.Name)))
		b.WriteString("\n\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • esc/q back"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(styles.LabelStyle.Render(fmt.Sprintf("%s: %d objects", m.data.Source, len(m.data.Objects))))
	b.WriteString("\n\n")
	b.WriteString(styles.TableStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("↑/k up • ↓/j down • enter/d preview • q quit"))
	b.WriteString("\n")

	return b.String()
}

// loadDiff creates a command that renders the diff of one object
func (m browseModel) loadDiff(name string) tea.Cmd {
	diffFunc := m.diffFunc
	return func() tea.Msg {
		if diffFunc == nil {
			return DiffMsg{Content: "No preview available"}
		}

		content, err := diffFunc(name)
		if err != nil {
			return DiffMsg{Err: err}
		}
		if content == "" {
			content = "No changes: the docstring is passed through as is."
		}
		return DiffMsg{Content: content}
	}
}

func statusIcon(status string) string {
	switch status {
	case "converted":
		return "✓"
	case "unchanged":
		return "="
	case "excluded":
		return "→"
	case "failed":
		return "⚠"
	default:
		return "?"
	}
}

func formatConvertedAt(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format(time.DateTime)
}
