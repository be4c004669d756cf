package thread

import (
	"sort"

	"github.com/kapral18/ghthread/internal/github"
)

// AnchorID identifies a tracked anchor within one render generation.
// Anchors from superseded generations never resolve.
type AnchorID struct {
	Generation int
	Index      int
}

// Anchor is a tracked association between a line offset and the entity
// rendered immediately before it.
type Anchor struct {
	ID      AnchorID
	Line    int
	Commit  *github.Commit
	Comment *github.Comment
}

// ThreadState is the per-commit view state. One exists per distinct
// commit identity; reloads mutate it in place.
type ThreadState struct {
	CommitID string
	Buffer   *Buffer // nil until first render

	EditableOffset  int // line where the editable region begins; -1 until first render
	DocumentEndLine int

	Generation  int
	Anchors     []Anchor // current generation, ascending by line
	AnchorIndex map[AnchorID]Anchor
	Highlights  []HighlightPlacement

	Commit   *github.Commit
	Comments []github.Comment

	// EditingComment switches submit semantics from create to update.
	// Cleared on submit and on every full render.
	EditingComment *github.Comment
}

// ResolveUnderCursor returns the anchor whose line is the greatest
// anchor line at or before the cursor, or false when the thread has no
// anchors or none precede the cursor.
func (st *ThreadState) ResolveUnderCursor() (Anchor, bool) {
	if st.Buffer == nil {
		return Anchor{}, false
	}
	line, _ := st.Buffer.Cursor()
	var best Anchor
	found := false
	for _, a := range st.Anchors {
		if a.Line > line {
			break
		}
		best = a
		found = true
	}
	return best, found
}

// ResolveID looks up an anchor by identifier in the current generation.
func (st *ThreadState) ResolveID(id AnchorID) (Anchor, bool) {
	a, ok := st.AnchorIndex[id]
	return a, ok
}

// Store holds all thread states, keyed by commit identity, with a
// reverse index from buffer handle to state. Entries are created on
// first load, updated in place on reload, and never evicted.
type Store struct {
	byCommit map[string]*ThreadState
	byBuffer map[int]*ThreadState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byCommit: make(map[string]*ThreadState),
		byBuffer: make(map[int]*ThreadState),
	}
}

// Get returns the state for a commit identity, or nil.
func (s *Store) Get(commitID string) *ThreadState {
	return s.byCommit[commitID]
}

// GetOrCreate returns the state for a commit identity, creating it on
// first use.
func (s *Store) GetOrCreate(commitID string) *ThreadState {
	if st, ok := s.byCommit[commitID]; ok {
		return st
	}
	st := &ThreadState{CommitID: commitID, EditableOffset: -1}
	s.byCommit[commitID] = st
	return st
}

// ByBuffer resolves the owning state for a buffer handle, or nil.
func (s *Store) ByBuffer(handle int) *ThreadState {
	return s.byBuffer[handle]
}

// CommitIDs returns all known commit identities, sorted.
func (s *Store) CommitIDs() []string {
	ids := make([]string, 0, len(s.byCommit))
	for id := range s.byCommit {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
