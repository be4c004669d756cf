package thread

// OnCursorMoved re-evaluates the editable boundary for a thread's
// buffer. Lines at or after the editable offset are writable, lines
// before are not. This runs on every cursor movement, not just on
// entry, because the offset can change across a refresh while the
// surface stays open.
func OnCursorMoved(st *ThreadState) {
	if st == nil || st.Buffer == nil || st.EditableOffset < 0 {
		return
	}
	line, _ := st.Buffer.Cursor()
	st.Buffer.SetWritable(line >= st.EditableOffset)
}
