package thread

import (
	"strings"

	"github.com/kapral18/ghthread/internal/github"
)

// BeginEdit rewrites the document tail into edit mode for the given
// comment: everything from one line above the editable offset onward is
// replaced with an editing prompt followed by the comment's sanitized
// body, and the cursor lands at the end of the inserted text.
func (st *ThreadState) BeginEdit(c *github.Comment) {
	if st.Buffer == nil || st.EditableOffset < 1 {
		return
	}
	buf := st.Buffer

	body := SanitizeLines(c.Body)
	buf.SetWritable(true)
	buf.ReplaceFrom(st.EditableOffset-1, append([]string{editPrompt}, body...))
	st.DocumentEndLine = buf.LineCount()
	st.EditingComment = c

	last := buf.LineCount() - 1
	buf.SetCursor(last, len([]rune(buf.Line(last))))
	OnCursorMoved(st)
}

// Draft returns the text of the editable region joined with newlines.
// Callers treat an all-whitespace draft as empty.
func (st *ThreadState) Draft() string {
	if st.Buffer == nil || st.EditableOffset < 0 {
		return ""
	}
	lines := st.Buffer.Lines(st.EditableOffset, st.Buffer.LineCount())
	return strings.Join(lines, "\n")
}

// DraftIsEmpty reports whether the editable region holds no content.
func (st *ThreadState) DraftIsEmpty() bool {
	return strings.TrimSpace(st.Draft()) == ""
}

// ClearEditable resets the editable region to a single blank line and
// parks the cursor there.
func (st *ThreadState) ClearEditable() {
	if st.Buffer == nil || st.EditableOffset < 0 {
		return
	}
	buf := st.Buffer
	buf.SetWritable(true)
	buf.ReplaceFrom(st.EditableOffset, []string{""})
	st.DocumentEndLine = buf.LineCount()
	buf.SetCursor(st.EditableOffset, 0)
	OnCursorMoved(st)
}
