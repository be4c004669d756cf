package ui

import "github.com/charmbracelet/lipgloss"

// Panel border colors
var (
	focusedBorderColor    = lipgloss.Color("62")  // bright purple/blue
	unfocusedBorderColor  = lipgloss.Color("240") // dim gray
	insertModeBorderColor = lipgloss.Color("42")  // green
)

// Alternating block backgrounds for the rendered thread document.
var (
	bandAStyle = lipgloss.NewStyle().Background(lipgloss.Color("235"))
	bandBStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
)

// Editable tail of the thread document.
var composeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

// Cursor cell
var cursorCellStyle = lipgloss.NewStyle().Reverse(true)

// Prompt and legend lines inside the document.
var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)

// Outline styles
var (
	outlineHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	outlinePullStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	outlineDetailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	outlineCursorGutter = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
)

// Status bar
var (
	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252"))
	statusBarAccentStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("62")).
				Bold(true)
	statusBarSuccessStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("42")).
				Bold(true)
	statusBarErrorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("196")).
				Bold(true)
)

// Overlay chrome
var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
	helpTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Bold(true)
	helpFooterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	helpKeyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpSectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
)

// panelBorderStyle returns the border style for a panel given its focus
// state and whether the cursor sits in the editable region.
func panelBorderStyle(focused, inserting bool) lipgloss.Style {
	color := unfocusedBorderColor
	if focused {
		color = focusedBorderColor
		if inserting {
			color = insertModeBorderColor
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
