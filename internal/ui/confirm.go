package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// ConfirmModel is a yes/no overlay guarding destructive operations.
type ConfirmModel struct {
	form      *huh.Form
	confirmed bool
}

func NewConfirmModel(title, description string) *ConfirmModel {
	m := &ConfirmModel{}
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative("Delete").
			Negative("Cancel").
			Value(&m.confirmed),
	))
	return m
}

func (m *ConfirmModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *ConfirmModel) Update(msg tea.Msg) tea.Cmd {
	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}
	return cmd
}

// Done reports whether the form finished and whether the user confirmed.
// Aborting counts as not confirmed.
func (m *ConfirmModel) Done() (confirmed, finished bool) {
	switch m.form.State {
	case huh.StateCompleted:
		return m.confirmed, true
	case huh.StateAborted:
		return false, true
	default:
		return false, false
	}
}

func (m *ConfirmModel) View() string {
	return overlayBoxStyle.Render(m.form.View())
}
