package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kapral18/ghthread/internal/thread"
)

// ThreadAction is an operation chosen from the action menu.
type ThreadAction string

const (
	ActionEdit        ThreadAction = "edit"
	ActionDelete      ThreadAction = "delete"
	ActionOpenBrowser ThreadAction = "open"
)

// ActionMenuModel is the action overlay for the entity under the
// cursor. The options depend on whether the anchor resolves to the
// commit or to a comment.
type ActionMenuModel struct {
	form   *huh.Form
	anchor thread.Anchor
	choice ThreadAction
}

func NewActionMenuModel(anchor thread.Anchor) *ActionMenuModel {
	m := &ActionMenuModel{anchor: anchor}

	var title string
	var opts []huh.Option[ThreadAction]
	if anchor.Comment != nil {
		title = fmt.Sprintf("Comment by %s", anchor.Comment.Author.Login)
		opts = []huh.Option[ThreadAction]{
			huh.NewOption("Edit comment", ActionEdit),
			huh.NewOption("Delete comment", ActionDelete),
			huh.NewOption("Open in browser", ActionOpenBrowser),
		}
	} else {
		sha := ""
		if anchor.Commit != nil {
			sha = anchor.Commit.SHA
			if len(sha) > 7 {
				sha = sha[:7]
			}
		}
		title = "Commit " + sha
		opts = []huh.Option[ThreadAction]{
			huh.NewOption("Open in browser", ActionOpenBrowser),
		}
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[ThreadAction]().
			Title(title).
			Options(opts...).
			Value(&m.choice),
	))
	return m
}

// Anchor returns the anchor the menu was opened for.
func (m *ActionMenuModel) Anchor() thread.Anchor {
	return m.anchor
}

func (m *ActionMenuModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *ActionMenuModel) Update(msg tea.Msg) tea.Cmd {
	f, cmd := m.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		m.form = form
	}
	return cmd
}

// Done reports whether the form finished, and if so which action was
// chosen. ok is false when the user aborted.
func (m *ActionMenuModel) Done() (action ThreadAction, ok, finished bool) {
	switch m.form.State {
	case huh.StateCompleted:
		return m.choice, true, true
	case huh.StateAborted:
		return "", false, true
	default:
		return "", false, false
	}
}

func (m *ActionMenuModel) View() string {
	return overlayBoxStyle.Render(m.form.View())
}
