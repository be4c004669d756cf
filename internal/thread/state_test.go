package thread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_OneStatePerCommit(t *testing.T) {
	s := NewStore()

	a := s.GetOrCreate("abc123")
	b := s.GetOrCreate("abc123")
	assert.Same(t, a, b)
	assert.Equal(t, -1, a.EditableOffset)

	s.GetOrCreate("def456")
	assert.Equal(t, []string{"abc123", "def456"}, s.CommitIDs())
}

func TestStore_GetUnknownIsNil(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Get("missing"))
	assert.Nil(t, s.ByBuffer(42))
}

func TestInstall_RecordsStateAndReverseIndex(t *testing.T) {
	s := NewStore()
	st := s.GetOrCreate("abc123")

	r := Render(testCommit(), testComments())
	s.Install(st, r)

	require.NotNil(t, st.Buffer)
	assert.Equal(t, r.EditableOffset, st.EditableOffset)
	assert.Equal(t, len(r.Lines), st.DocumentEndLine)
	assert.LessOrEqual(t, st.EditableOffset, st.DocumentEndLine)
	assert.Same(t, st, s.ByBuffer(st.Buffer.Handle()))
}

func TestInstall_ReplacesAnchorGeneration(t *testing.T) {
	s := NewStore()
	st := s.GetOrCreate("abc123")

	s.Install(st, Render(testCommit(), testComments()))
	require.NotEmpty(t, st.Anchors)
	oldIDs := make([]AnchorID, 0, len(st.Anchors))
	for _, a := range st.Anchors {
		oldIDs = append(oldIDs, a.ID)
	}

	// Second render with a different comment list.
	s.Install(st, Render(testCommit(), testComments()[:1]))

	for _, id := range oldIDs {
		_, ok := st.ResolveID(id)
		assert.False(t, ok, "anchor %v from prior generation must not resolve", id)
	}
	for _, a := range st.Anchors {
		assert.Equal(t, st.Generation, a.ID.Generation)
	}
}

func TestInstall_ClearsEditingComment(t *testing.T) {
	s := NewStore()
	st := s.GetOrCreate("abc123")
	comments := testComments()
	st.EditingComment = &comments[0]

	s.Install(st, Render(testCommit(), comments))
	assert.Nil(t, st.EditingComment)
}

func TestResolveUnderCursor_Monotonic(t *testing.T) {
	s := NewStore()
	st := s.GetOrCreate("abc123")
	r := Render(testCommit(), testComments())
	s.Install(st, r)

	// Before the first anchor nothing resolves.
	st.Buffer.SetCursor(0, 0)
	_, ok := st.ResolveUnderCursor()
	assert.False(t, ok)

	// On the header anchor line the commit resolves.
	st.Buffer.SetCursor(r.Anchors[0].Line, 0)
	a, ok := st.ResolveUnderCursor()
	require.True(t, ok)
	assert.NotNil(t, a.Commit)

	// Between the first and second comment anchors, the first comment
	// resolves: greatest anchor line at or before the cursor wins.
	st.Buffer.SetCursor(r.Anchors[1].Line+1, 0)
	a, ok = st.ResolveUnderCursor()
	require.True(t, ok)
	require.NotNil(t, a.Comment)
	assert.Equal(t, int64(1), a.Comment.ID)

	// In the editable region the last comment resolves.
	st.Buffer.SetCursor(st.EditableOffset, 0)
	a, ok = st.ResolveUnderCursor()
	require.True(t, ok)
	require.NotNil(t, a.Comment)
	assert.Equal(t, int64(2), a.Comment.ID)
}
