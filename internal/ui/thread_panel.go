package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kapral18/ghthread/internal/github"
	"github.com/kapral18/ghthread/internal/thread"
)

// ThreadPanelModel renders the comment thread document and routes keys
// either to navigation or to the editable tail, depending on where the
// cursor sits.
type ThreadPanelModel struct {
	store    *thread.Store
	commitID string

	width   int
	height  int
	scroll  int
	focused bool
	loading bool
}

func NewThreadPanelModel(store *thread.Store) ThreadPanelModel {
	return ThreadPanelModel{store: store, loading: true}
}

func (m *ThreadPanelModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if st := m.state(); st != nil {
		m.ensureVisible(st)
	}
}

func (m *ThreadPanelModel) SetFocused(focused bool) {
	m.focused = focused
}

func (m *ThreadPanelModel) SetCommit(sha string) {
	m.commitID = sha
}

func (m *ThreadPanelModel) SetLoading(loading bool) {
	m.loading = loading
}

// CommitID returns the commit whose thread the panel is showing.
func (m ThreadPanelModel) CommitID() string {
	return m.commitID
}

func (m ThreadPanelModel) state() *thread.ThreadState {
	return m.store.Get(m.commitID)
}

// Inserting reports whether the cursor currently sits in the editable
// region, i.e. whether printable keys are typed text.
func (m ThreadPanelModel) Inserting() bool {
	st := m.state()
	return st != nil && st.Buffer != nil && st.Buffer.Writable()
}

// InstallThread renders fetched data into the document for the given
// commit, preserving any draft the user had typed.
func (m *ThreadPanelModel) InstallThread(commitID string, commit *github.Commit, comments []github.Comment) {
	st := m.store.GetOrCreate(commitID)
	restore := thread.CaptureDraft(st)
	st.Commit = commit
	st.Comments = comments
	m.store.Install(st, thread.Render(commit, comments))
	restore()
	m.loading = false
	if commitID == m.commitID {
		m.ensureVisible(st)
	}
}

// EditComment loads a comment body into the editable region for editing.
func (m *ThreadPanelModel) EditComment(c *github.Comment) {
	st := m.state()
	if st == nil || st.Buffer == nil {
		return
	}
	st.BeginEdit(c)
	m.ensureVisible(st)
}

// JumpToCompose moves the cursor to the end of the editable region.
func (m *ThreadPanelModel) JumpToCompose() {
	st := m.state()
	if st == nil || st.Buffer == nil || st.EditableOffset < 0 {
		return
	}
	last := st.Buffer.LineCount() - 1
	st.Buffer.SetCursor(last, len([]rune(st.Buffer.Line(last))))
	thread.OnCursorMoved(st)
	m.ensureVisible(st)
}

func (m ThreadPanelModel) Update(msg tea.Msg) (ThreadPanelModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	st := m.state()
	if st == nil || st.Buffer == nil {
		return m, nil
	}
	buf := st.Buffer

	switch {
	case key.Matches(keyMsg, ThreadKeys.Up):
		m.moveCursor(st, -1, 0)
		return m, nil
	case key.Matches(keyMsg, ThreadKeys.Down):
		m.moveCursor(st, 1, 0)
		return m, nil
	case key.Matches(keyMsg, ThreadKeys.Left):
		m.moveCursor(st, 0, -1)
		return m, nil
	case key.Matches(keyMsg, ThreadKeys.Right):
		m.moveCursor(st, 0, 1)
		return m, nil
	case key.Matches(keyMsg, ThreadKeys.Submit):
		return m, requestMsg(SubmitRequestedMsg{CommitID: m.commitID})
	case key.Matches(keyMsg, ThreadKeys.Actions):
		if anchor, ok := st.ResolveUnderCursor(); ok {
			return m, requestMsg(ActionMenuRequestedMsg{CommitID: m.commitID, Anchor: anchor})
		}
		return m, nil
	case key.Matches(keyMsg, ThreadKeys.Cancel):
		if st.EditingComment != nil {
			return m, requestMsg(CancelEditRequestedMsg{CommitID: m.commitID})
		}
		if buf.Writable() {
			buf.SetCursor(0, 0)
			thread.OnCursorMoved(st)
			m.ensureVisible(st)
		}
		return m, nil
	}

	if !buf.Writable() {
		return m.updateNavigation(st, keyMsg)
	}
	return m.updateCompose(st, keyMsg)
}

// updateNavigation handles plain-letter commands while the cursor is in
// the read-only region.
func (m ThreadPanelModel) updateNavigation(st *thread.ThreadState, keyMsg tea.KeyMsg) (ThreadPanelModel, tea.Cmd) {
	buf := st.Buffer

	switch keyMsg.String() {
	case "j":
		m.moveCursor(st, 1, 0)
	case "k":
		m.moveCursor(st, -1, 0)
	case "h":
		m.moveCursor(st, 0, -1)
	case "l":
		m.moveCursor(st, 0, 1)
	case "g":
		buf.SetCursor(0, 0)
		thread.OnCursorMoved(st)
		m.ensureVisible(st)
	case "G":
		buf.SetCursor(buf.LineCount()-1, 0)
		thread.OnCursorMoved(st)
		m.ensureVisible(st)
	case "ctrl+d":
		m.moveCursor(st, m.pageStep(), 0)
	case "ctrl+u":
		m.moveCursor(st, -m.pageStep(), 0)
	case "i":
		m.JumpToCompose()
	case "r":
		if anchor, ok := st.ResolveUnderCursor(); ok && anchor.Comment != nil {
			return m, requestMsg(ReactRequestedMsg{CommitID: m.commitID, Comment: anchor.Comment})
		}
	case "p":
		if anchor, ok := st.ResolveUnderCursor(); ok && anchor.Comment != nil {
			return m, requestMsg(PreviewRequestedMsg{Comment: anchor.Comment})
		}
	}
	return m, nil
}

// updateCompose handles text entry while the cursor is in the editable
// region.
func (m ThreadPanelModel) updateCompose(st *thread.ThreadState, keyMsg tea.KeyMsg) (ThreadPanelModel, tea.Cmd) {
	buf := st.Buffer

	switch keyMsg.Type {
	case tea.KeyEnter:
		buf.InsertNewline()
		m.ensureVisible(st)
	case tea.KeyBackspace:
		buf.DeleteBack(st.EditableOffset)
		m.ensureVisible(st)
	case tea.KeySpace:
		buf.InsertRune(' ')
	case tea.KeyTab:
		buf.InsertRune(' ')
		buf.InsertRune(' ')
	case tea.KeyRunes:
		for _, r := range keyMsg.Runes {
			buf.InsertRune(r)
		}
	}
	return m, nil
}

func (m *ThreadPanelModel) moveCursor(st *thread.ThreadState, dLine, dCol int) {
	line, col := st.Buffer.Cursor()
	st.Buffer.SetCursor(line+dLine, col+dCol)
	thread.OnCursorMoved(st)
	m.ensureVisible(st)
}

func (m ThreadPanelModel) innerHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m ThreadPanelModel) pageStep() int {
	step := m.innerHeight() / 2
	if step < 1 {
		step = 1
	}
	return step
}

func (m *ThreadPanelModel) ensureVisible(st *thread.ThreadState) {
	if st.Buffer == nil {
		return
	}
	line, _ := st.Buffer.Cursor()
	h := m.innerHeight()
	if line < m.scroll {
		m.scroll = line
	}
	if line >= m.scroll+h {
		m.scroll = line - h + 1
	}
	maxScroll := st.Buffer.LineCount() - h
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m ThreadPanelModel) View() string {
	innerW := m.width - 2
	innerH := m.innerHeight()
	if innerW < 1 {
		innerW = 1
	}

	border := panelBorderStyle(m.focused, m.Inserting())

	st := m.state()
	if st == nil || st.Buffer == nil {
		placeholder := "Loading thread..."
		if !m.loading {
			placeholder = "No thread loaded"
		}
		content := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, placeholder)
		return border.Render(content)
	}

	buf := st.Buffer
	bands := make(map[int]thread.Band, len(st.Highlights))
	for _, hl := range st.Highlights {
		bands[hl.Line] = hl.Band
	}
	cursorLine, cursorCol := buf.Cursor()

	rows := make([]string, 0, innerH)
	end := m.scroll + innerH
	if end > buf.LineCount() {
		end = buf.LineCount()
	}
	for i := m.scroll; i < end; i++ {
		rows = append(rows, m.renderLine(st, bands, i, cursorLine, cursorCol, innerW))
	}
	for len(rows) < innerH {
		rows = append(rows, strings.Repeat(" ", innerW))
	}

	return border.Render(strings.Join(rows, "\n"))
}

func (m ThreadPanelModel) renderLine(st *thread.ThreadState, bands map[int]thread.Band, i, cursorLine, cursorCol, width int) string {
	line := truncateRunes(st.Buffer.Line(i), width)

	base := lipgloss.NewStyle()
	switch {
	case st.EditableOffset >= 0 && i == st.EditableOffset-1:
		base = promptStyle
	case st.EditableOffset >= 0 && i >= st.EditableOffset:
		base = composeStyle
	default:
		if band, ok := bands[i]; ok {
			if band == thread.BandA {
				base = bandAStyle
			} else {
				base = bandBStyle
			}
		}
	}

	if m.focused && i == cursorLine {
		return renderWithCursor(line, cursorCol, width, base)
	}
	return base.Render(padRunes(line, width))
}

// renderWithCursor renders a line with the cursor cell reversed.
func renderWithCursor(line string, col, width int, base lipgloss.Style) string {
	rs := []rune(line)
	if col > len(rs) {
		col = len(rs)
	}
	before := string(rs[:col])
	var cell string
	var after string
	if col < len(rs) {
		cell = string(rs[col])
		after = string(rs[col+1:])
	} else {
		cell = " "
	}
	rendered := base.Render(before) + cursorCellStyle.Render(cell) + base.Render(after)
	used := len(rs)
	if col == len(rs) {
		used++ // cursor cell past end of line
	}
	pad := width - used
	if pad > 0 {
		rendered += base.Render(strings.Repeat(" ", pad))
	}
	return rendered
}

func truncateRunes(s string, width int) string {
	rs := []rune(s)
	if len(rs) <= width {
		return s
	}
	return string(rs[:width])
}

func padRunes(s string, width int) string {
	n := width - len([]rune(s))
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}

// requestMsg wraps a message in a command.
func requestMsg(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
