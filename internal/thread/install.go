package thread

// Install makes the thread's buffer reflect a rendering and replaces
// the anchor generation. Anchors and highlights from the previous
// generation are discarded wholesale; the reverse index is updated so
// cursor-relative actions can resolve the owning state by handle.
//
// Installation is atomic with respect to boundary checks: the guard is
// re-applied once at the end, against the new editable offset.
func (s *Store) Install(st *ThreadState, r Rendering) {
	if st.Buffer == nil {
		st.Buffer = NewBuffer()
	}
	buf := st.Buffer

	buf.SetWritable(true)
	buf.SetLines(r.Lines)

	st.Generation++
	st.Anchors = make([]Anchor, 0, len(r.Anchors))
	st.AnchorIndex = make(map[AnchorID]Anchor, len(r.Anchors))
	for i, p := range r.Anchors {
		a := Anchor{
			ID:      AnchorID{Generation: st.Generation, Index: i},
			Line:    p.Line,
			Commit:  p.Commit,
			Comment: p.Comment,
		}
		st.Anchors = append(st.Anchors, a)
		st.AnchorIndex[a.ID] = a
	}

	st.Highlights = append(st.Highlights[:0], r.Highlights...)
	st.EditableOffset = r.EditableOffset
	st.DocumentEndLine = buf.LineCount()
	st.EditingComment = nil

	buf.SetWritable(false)
	s.byBuffer[buf.Handle()] = st

	OnCursorMoved(st)
}
