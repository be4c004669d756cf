package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kapral18/ghthread/internal/github"
	"github.com/kapral18/ghthread/internal/thread"
)

// outlineRow is one rendered line of the outline tree. pullIndex is -1
// for rows that don't belong to a pull request entry.
type outlineRow struct {
	text      string
	style     lipgloss.Style
	pullIndex int
	header    bool // toggles expansion when selected
}

// OutlinePanelModel shows the commit metadata and the pull requests
// containing the commit as an expandable tree.
type OutlinePanelModel struct {
	width   int
	height  int
	focused bool

	commit   *github.Commit
	pulls    []github.PullRef
	expanded map[int]bool

	rows   []outlineRow
	cursor int
	scroll int
}

func NewOutlinePanelModel() OutlinePanelModel {
	return OutlinePanelModel{expanded: map[int]bool{}}
}

func (m *OutlinePanelModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureVisible()
}

func (m *OutlinePanelModel) SetFocused(focused bool) {
	m.focused = focused
}

func (m *OutlinePanelModel) SetCommit(commit *github.Commit) {
	m.commit = commit
	m.rebuild()
}

func (m *OutlinePanelModel) SetPulls(pulls []github.PullRef) {
	m.pulls = pulls
	m.rebuild()
}

func (m *OutlinePanelModel) rebuild() {
	rows := []outlineRow{}

	if m.commit != nil {
		sha := m.commit.SHA
		if len(sha) > 7 {
			sha = sha[:7]
		}
		rows = append(rows, outlineRow{text: "commit " + sha, style: outlineHeaderStyle, pullIndex: -1})
		for _, l := range thread.DetailLines(m.commit.Message) {
			rows = append(rows, outlineRow{text: l, style: outlineDetailStyle, pullIndex: -1})
		}
		rows = append(rows, outlineRow{text: "", pullIndex: -1})
	}

	rows = append(rows, outlineRow{text: fmt.Sprintf("pull requests (%d)", len(m.pulls)), style: outlineHeaderStyle, pullIndex: -1})
	for i, p := range m.pulls {
		marker := "▸"
		if m.expanded[i] {
			marker = "▾"
		}
		rows = append(rows, outlineRow{
			text:      fmt.Sprintf("%s #%d %s", marker, p.Number, p.Title),
			style:     outlinePullStyle,
			pullIndex: i,
			header:    true,
		})
		if !m.expanded[i] {
			continue
		}
		detail := fmt.Sprintf("state: %s\nauthor: %s", p.State, p.Author.Login)
		if len(p.Labels) > 0 {
			names := make([]string, len(p.Labels))
			for j, l := range p.Labels {
				names[j] = l.Name
			}
			detail += "\nlabels: " + strings.Join(names, ", ")
		}
		if len(p.Assignees) > 0 {
			names := make([]string, len(p.Assignees))
			for j, a := range p.Assignees {
				names[j] = a.Login
			}
			detail += "\nassignees: " + strings.Join(names, ", ")
		}
		for _, l := range thread.DetailLines(detail) {
			rows = append(rows, outlineRow{text: "  " + l, style: outlineDetailStyle, pullIndex: i})
		}
	}

	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureVisible()
}

// SelectedPull returns the pull request under the cursor, if any.
func (m OutlinePanelModel) SelectedPull() (github.PullRef, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return github.PullRef{}, false
	}
	idx := m.rows[m.cursor].pullIndex
	if idx < 0 || idx >= len(m.pulls) {
		return github.PullRef{}, false
	}
	return m.pulls[idx], true
}

func (m OutlinePanelModel) Update(msg tea.Msg) (OutlinePanelModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, OutlineKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			m.ensureVisible()
		}
	case key.Matches(keyMsg, OutlineKeys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureVisible()
		}
	case key.Matches(keyMsg, OutlineKeys.Toggle):
		if m.cursor < len(m.rows) && m.rows[m.cursor].header {
			idx := m.rows[m.cursor].pullIndex
			m.expanded[idx] = !m.expanded[idx]
			m.rebuild()
		}
	case key.Matches(keyMsg, OutlineKeys.OpenBrowser):
		if p, ok := m.SelectedPull(); ok && p.HTMLURL != "" {
			return m, openBrowserCmd(p.HTMLURL)
		}
	}
	return m, nil
}

func (m *OutlinePanelModel) ensureVisible() {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+h {
		m.scroll = m.cursor - h + 1
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m OutlinePanelModel) View() string {
	innerW := m.width - 2
	innerH := m.height - 2
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}

	out := make([]string, 0, innerH)
	end := m.scroll + innerH
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.scroll; i < end; i++ {
		row := m.rows[i]
		gutter := "  "
		if m.focused && i == m.cursor {
			gutter = outlineCursorGutter.Render("❯ ")
		}
		out = append(out, gutter+row.style.Render(truncateRunes(row.text, innerW-2)))
	}
	for len(out) < innerH {
		out = append(out, "")
	}

	return panelBorderStyle(m.focused, false).
		Width(innerW).
		Render(strings.Join(out, "\n"))
}
