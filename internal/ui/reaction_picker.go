package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kapral18/ghthread/internal/github"
)

// pickerGlyphs decorates the reaction menu entries.
var pickerGlyphs = map[string]string{
	"+1":       "👍",
	"-1":       "👎",
	"laugh":    "😄",
	"confused": "😕",
	"heart":    "❤️",
	"hooray":   "🎉",
	"rocket":   "🚀",
	"eyes":     "👀",
}

// ReactionPickerModel is the reaction toggle overlay for a comment.
// Picking a kind the viewer already reacted with removes that reaction.
type ReactionPickerModel struct {
	form    *huh.Form
	comment *github.Comment
	kind    string
}

func NewReactionPickerModel(comment *github.Comment) *ReactionPickerModel {
	m := &ReactionPickerModel{comment: comment}

	opts := make([]huh.Option[string], 0, len(github.ReactionKinds))
	for _, kind := range github.ReactionKinds {
		opts = append(opts, huh.NewOption(pickerGlyphs[kind]+" "+kind, kind))
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Toggle reaction").
			Options(opts...).
			Value(&m.kind),
	))
	return m
}

// Comment returns the comment the picker was opened for.
func (m *ReactionPickerModel) Comment() *github.Comment {
	return m.comment
}

func (m *ReactionPickerModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *ReactionPickerModel) Update(msg tea.Msg) tea.Cmd {
	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}
	return cmd
}

// Done reports whether the form finished, and if so which kind was
// chosen. ok is false when the user aborted without choosing.
func (m *ReactionPickerModel) Done() (kind string, ok, finished bool) {
	switch m.form.State {
	case huh.StateCompleted:
		return m.kind, true, true
	case huh.StateAborted:
		return "", false, true
	default:
		return "", false, false
	}
}

func (m *ReactionPickerModel) View() string {
	return overlayBoxStyle.Render(m.form.View())
}
