package thread

import "strings"

// Restorer reinstates preserved view state after a new document has
// been installed. It must only run once installation has produced a
// final line count.
type Restorer func()

// CaptureDraft snapshots any uncommitted reply text below the editable
// offset before a re-render and returns the restorer to run after the
// new document is installed.
//
// When the thread has never been rendered, or the draft is entirely
// blank, the restorer only puts the cursor back at its last known
// position (clamped to the new document).
func CaptureDraft(st *ThreadState) Restorer {
	if st.Buffer == nil {
		return func() {}
	}

	buf := st.Buffer
	cursorLine, cursorCol := buf.Cursor()

	cursorOnly := func() {
		buf.SetCursor(cursorLine, cursorCol)
		OnCursorMoved(st)
	}

	if st.EditableOffset < 0 {
		return cursorOnly
	}

	draft := buf.Lines(st.EditableOffset, buf.LineCount())
	hasContent := false
	for _, l := range draft {
		if strings.TrimSpace(l) != "" {
			hasContent = true
			break
		}
	}
	if !hasContent {
		return cursorOnly
	}

	return func() {
		buf.SetWritable(true)
		buf.ReplaceFrom(st.EditableOffset, draft)
		st.DocumentEndLine = buf.LineCount()
		last := st.EditableOffset + len(draft) - 1
		buf.SetCursor(last, len([]rune(buf.Line(last))))
		OnCursorMoved(st)
	}
}
