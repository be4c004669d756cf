package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kapral18/ghthread/internal/config"
	"github.com/kapral18/ghthread/internal/thread"
)

func loadedApp(t *testing.T, svc *fakeService) App {
	t.Helper()
	cfg := &config.Config{PollInterval: 60000, NotifyThreshold: 3}
	a := NewApp(cfg, "octocat", "hello", "abc123def456")
	a.client = svc

	model, _ := a.Update(ThreadLoadedMsg{
		CommitID: "abc123def456",
		Commit:   uiTestCommit(),
		Comments: uiTestComments(),
	})
	loaded, ok := model.(App)
	require.True(t, ok)
	return loaded
}

func TestSubmitEmptyDraftIsRefused(t *testing.T) {
	svc := &fakeService{username: "alice"}
	a := loadedApp(t, svc)

	model, _ := a.Update(SubmitRequestedMsg{CommitID: "abc123def456"})
	got := model.(App)

	assert.Equal(t, "Nothing to submit", got.statusBar.statusMessage)
}

func TestEditRefusedForNonAuthor(t *testing.T) {
	svc := &fakeService{username: "mallory"}
	a := loadedApp(t, svc)
	st := a.store.Get("abc123def456")
	anchor := st.Anchors[1]
	require.NotNil(t, anchor.Comment)

	model, _ := a.dispatchAction(ActionEdit, anchor)
	got := model.(App)

	assert.Contains(t, got.statusBar.statusMessage, "author")
	assert.Nil(t, st.EditingComment)
}

func TestEditOwnCommentEntersEditing(t *testing.T) {
	svc := &fakeService{username: "bob"}
	a := loadedApp(t, svc)
	st := a.store.Get("abc123def456")
	anchor := st.Anchors[1]
	require.Equal(t, "bob", anchor.Comment.Author.Login)

	_, _ = a.dispatchAction(ActionEdit, anchor)

	require.NotNil(t, st.EditingComment)
	assert.Equal(t, anchor.Comment.ID, st.EditingComment.ID)
	assert.Equal(t, "Looks good", st.Draft())
}

func TestDeleteOpensConfirmForNonAuthor(t *testing.T) {
	// Deletion rights belong to the server. A maintainer may delete
	// someone else's comment, so the menu never blocks on authorship.
	svc := &fakeService{username: "mallory"}
	a := loadedApp(t, svc)
	st := a.store.Get("abc123def456")

	model, _ := a.dispatchAction(ActionDelete, st.Anchors[1])
	got := model.(App)

	require.NotNil(t, got.confirm)
	require.NotNil(t, got.deleteTarget)
	assert.Equal(t, int64(1), got.deleteTarget.ID)
}

func TestDeleteErrorIsSurfaced(t *testing.T) {
	svc := &fakeService{username: "mallory"}
	a := loadedApp(t, svc)

	model, _ := a.Update(CommentDeletedMsg{CommitID: "abc123def456", Err: assert.AnError})
	got := model.(App)

	assert.Contains(t, got.statusBar.statusMessage, "Error:")
}

func TestDeleteOwnCommentOpensConfirm(t *testing.T) {
	svc := &fakeService{username: "bob"}
	a := loadedApp(t, svc)
	st := a.store.Get("abc123def456")

	model, _ := a.dispatchAction(ActionDelete, st.Anchors[1])
	got := model.(App)

	require.NotNil(t, got.confirm)
	require.NotNil(t, got.deleteTarget)
	assert.Equal(t, int64(1), got.deleteTarget.ID)
}

func TestCancelEditRestoresDocument(t *testing.T) {
	svc := &fakeService{username: "bob"}
	a := loadedApp(t, svc)
	st := a.store.Get("abc123def456")

	_, _ = a.dispatchAction(ActionEdit, st.Anchors[1])
	require.NotNil(t, st.EditingComment)

	model, _ := a.Update(CancelEditRequestedMsg{CommitID: "abc123def456"})
	got := model.(App)

	assert.Nil(t, st.EditingComment)
	assert.True(t, st.DraftIsEmpty())
	assert.Equal(t, "-- add a comment below --", st.Buffer.Line(st.EditableOffset-1))
	assert.NotNil(t, got)
}

func TestOutlineToggleIsPersisted(t *testing.T) {
	svc := &fakeService{username: "alice"}
	a := loadedApp(t, svc)
	require.False(t, a.cfg.OutlineCollapsed)

	model, cmd := a.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("]")})
	got := model.(App)

	assert.False(t, got.outlineVisible)
	assert.True(t, got.cfg.OutlineCollapsed)
	assert.NotNil(t, cmd, "toggling the outline should schedule a config save")
}

func TestThreadLoadTracksKnownComments(t *testing.T) {
	svc := &fakeService{username: "alice"}
	a := loadedApp(t, svc)

	assert.True(t, a.knownComments[1])
	assert.True(t, a.knownComments[2])
	assert.True(t, a.initialLoadDone)
}

func TestLoadErrorShowsStatusMessage(t *testing.T) {
	svc := &fakeService{username: "alice"}
	a := loadedApp(t, svc)

	model, _ := a.Update(ThreadLoadedMsg{CommitID: "abc123def456", Err: assert.AnError})
	got := model.(App)

	assert.Contains(t, got.statusBar.statusMessage, "Load failed")
}

func TestQuitIgnoredWhileComposing(t *testing.T) {
	svc := &fakeService{username: "alice"}
	a := loadedApp(t, svc)
	a.threadPanel.JumpToCompose()

	model, cmd := a.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	got := model.(App)

	if cmd != nil {
		assert.NotEqual(t, tea.Quit(), cmd())
	}
	st := got.store.Get("abc123def456")
	assert.Equal(t, "q", st.Draft())
}

func TestResolveAfterReloadUsesNewGeneration(t *testing.T) {
	svc := &fakeService{username: "alice"}
	a := loadedApp(t, svc)
	st := a.store.Get("abc123def456")
	oldID := st.Anchors[1].ID

	model, _ := a.Update(ThreadLoadedMsg{
		CommitID: "abc123def456",
		Commit:   uiTestCommit(),
		Comments: uiTestComments(),
	})
	got := model.(App)

	st = got.store.Get("abc123def456")
	_, ok := st.ResolveID(oldID)
	assert.False(t, ok, "anchor identifiers from a superseded render must not resolve")

	st.Buffer.SetCursor(st.EditableOffset, 0)

	var cur thread.Anchor
	cur, ok = st.ResolveUnderCursor()
	assert.True(t, ok)
	assert.Equal(t, st.Generation, cur.ID.Generation)
}
