package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/docbridge/internal/docstring"
)

// Monokai Pro color palette
const (
	// Base colors
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	// Accent colors
	Red     = "#FF6188" // Errors, danger
	Orange  = "#FC9867" // Warnings, parameter declarations
	Yellow  = "#FFD866" // Highlights
	Green   = "#A9DC76" // Success
	Cyan    = "#78DCE8" // Info, descriptions
	Blue    = "#AB9DF2" // Conventions
	Magenta = "#FF6188" // Titles, emphasis

	// UI colors
	Comment = "#727072" // Dim text, help
	Border  = "#5B595C" // Borders, separators
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Magenta))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	SpinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Magenta))
	HelpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	LabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	ValueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground))

	// Table/list styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(Magenta))

	TableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(Background)).
			Background(lipgloss.Color(Yellow))
)

// Line role styles for classify output
var roleStyles = map[docstring.Role]lipgloss.Style{
	docstring.RoleText:             lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground)),
	docstring.RoleEmpty:            DimStyle,
	docstring.RoleParam:            lipgloss.NewStyle().Foreground(lipgloss.Color(Orange)).Bold(true),
	docstring.RoleParamDescription: lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan)),
}

// RoleStyle returns the style for a classified line role
func RoleStyle(role docstring.Role) lipgloss.Style {
	if s, ok := roleStyles[role]; ok {
		return s
	}
	return ErrorStyle
}

// ConventionStyle returns the style for a convention tag
func ConventionStyle(conv docstring.Convention) lipgloss.Style {
	if conv == docstring.Native {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(Blue))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
}
