package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kapral18/ghthread/internal/github"
)

// PreviewModel renders a comment body as formatted markdown in a
// scrollable overlay.
type PreviewModel struct {
	viewport viewport.Model
	md       MarkdownRenderer
	comment  *github.Comment
	width    int
	height   int
	done     bool
}

func NewPreviewModel(comment *github.Comment) *PreviewModel {
	return &PreviewModel{comment: comment}
}

// SetSize sizes the overlay relative to the terminal.
func (m *PreviewModel) SetSize(termWidth, termHeight int) {
	m.width = termWidth
	m.height = termHeight

	innerW, innerH := m.innerDimensions()
	m.viewport = viewport.New(innerW, innerH)
	m.viewport.SetContent(m.md.RenderMarkdown(m.comment.Body, innerW))
}

func (m *PreviewModel) innerDimensions() (width, height int) {
	width = int(float64(m.width) * 0.7)
	height = int(float64(m.height) * 0.7)
	if width < 30 {
		width = min(30, m.width)
	}
	if height < 8 {
		height = min(8, m.height)
	}
	return width - 4, height - 4
}

func (m *PreviewModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "esc", "q", "p":
		m.done = true
		return nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// Done reports whether the overlay was dismissed.
func (m *PreviewModel) Done() bool {
	return m.done
}

func (m *PreviewModel) View() string {
	title := helpTitleStyle.Render(" " + m.comment.Author.Login + " ")
	footer := helpFooterStyle.Render(" q / Esc to close ")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.viewport.View(), "", footer)
	return overlayBoxStyle.Render(body)
}
