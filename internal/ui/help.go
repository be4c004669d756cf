package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpOverlayModel renders a centered help overlay with keybinding reference.
type HelpOverlayModel struct {
	viewport viewport.Model
	width    int
	height   int
	visible  bool
	ready    bool
}

// HelpClosedMsg is sent when the help overlay is dismissed.
type HelpClosedMsg struct{}

func NewHelpOverlayModel() HelpOverlayModel {
	return HelpOverlayModel{}
}

// Show makes the overlay visible.
func (m *HelpOverlayModel) Show() {
	m.visible = true
	m.refreshContent()
}

// Hide dismisses the overlay.
func (m *HelpOverlayModel) Hide() {
	m.visible = false
}

// IsVisible returns whether the overlay is currently shown.
func (m HelpOverlayModel) IsVisible() bool {
	return m.visible
}

// SetSize updates the overlay dimensions and rebuilds the viewport.
func (m *HelpOverlayModel) SetSize(termWidth, termHeight int) {
	m.width = termWidth
	m.height = termHeight

	innerW, innerH := m.innerDimensions()
	if !m.ready {
		m.viewport = viewport.New(innerW, innerH)
		m.ready = true
	} else {
		m.viewport.Width = innerW
		m.viewport.Height = innerH
	}
	m.refreshContent()
}

func (m HelpOverlayModel) Update(msg tea.Msg) (HelpOverlayModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		m.Hide()
		return m, func() tea.Msg { return HelpClosedMsg{} }
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
}

func (m HelpOverlayModel) View() string {
	if !m.visible {
		return ""
	}

	overlayW, overlayH := m.overlayDimensions()

	var content string
	if m.ready {
		content = m.viewport.View()
	}

	title := helpTitleStyle.Render(" Keyboard Shortcuts ")
	footer := helpFooterStyle.Render(" ? / Esc to close ")

	innerW := overlayW - 4
	if innerW < 1 {
		innerW = 1
	}

	titleLine := lipgloss.PlaceHorizontal(innerW, lipgloss.Center, title)
	footerLine := lipgloss.PlaceHorizontal(innerW, lipgloss.Center, footer)

	box := lipgloss.JoinVertical(lipgloss.Left, titleLine, "", content, "", footerLine)

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(overlayW - 2).
		Height(overlayH - 2)

	rendered := overlayStyle.Render(box)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, rendered)
}

// overlayDimensions returns the outer dimensions of the overlay box.
func (m HelpOverlayModel) overlayDimensions() (width, height int) {
	width = int(float64(m.width) * 0.6)
	height = int(float64(m.height) * 0.7)
	if width < 46 {
		width = min(46, m.width)
	}
	if height < 14 {
		height = min(14, m.height)
	}
	return width, height
}

// innerDimensions returns the viewport dimensions inside the overlay box.
func (m HelpOverlayModel) innerDimensions() (width, height int) {
	ow, oh := m.overlayDimensions()
	width = ow - 6
	height = oh - 8
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

func (m *HelpOverlayModel) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderHelpContent())
	m.viewport.GotoTop()
}

type helpEntry struct {
	keys string
	desc string
}

func (m HelpOverlayModel) renderHelpContent() string {
	var b strings.Builder

	sections := []struct {
		title string
		keys  []helpEntry
	}{
		{
			title: "Global",
			keys: []helpEntry{
				{"Tab", "Switch panels"},
				{"]", "Toggle outline panel"},
				{"R", "Refresh thread"},
				{"?", "Toggle this help"},
				{"q", "Quit (outside compose area)"},
			},
		},
		{
			title: "Thread",
			keys: []helpEntry{
				{"j / k / arrows", "Move cursor"},
				{"g / G", "Top / bottom"},
				{"Ctrl+D / Ctrl+U", "Half-page down / up"},
				{"i", "Jump to compose area"},
				{"Ctrl+S", "Submit comment / save edit"},
				{"Ctrl+A", "Action menu for entry under cursor"},
				{"r", "Toggle reaction on comment under cursor"},
				{"p", "Markdown preview of comment under cursor"},
				{"Esc", "Cancel edit / leave compose area"},
			},
		},
		{
			title: "Outline",
			keys: []helpEntry{
				{"j / k", "Move"},
				{"Enter / Space", "Expand or collapse pull request"},
				{"o", "Open pull request in browser"},
			},
		},
	}

	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(helpSectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, e := range s.keys {
			b.WriteString(fmt.Sprintf("  %s  %s\n", helpKeyStyle.Render(padRunes(e.keys, 18)), e.desc))
		}
	}

	return b.String()
}
