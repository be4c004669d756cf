package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kapral18/ghthread/internal/github"
)

// fakeService records GitHub calls and serves canned data.
type fakeService struct {
	username  string
	commit    *github.Commit
	comments  []github.Comment
	pulls     []github.PullRef
	reactions []github.Reaction

	commitErr   error
	commentsErr error

	calls []string
}

func (f *fakeService) GetUsername() string { return f.username }

func (f *fakeService) GetCommit(_ context.Context, _, _, _ string) (*github.Commit, error) {
	f.calls = append(f.calls, "GetCommit")
	return f.commit, f.commitErr
}

func (f *fakeService) GetCommitComments(_ context.Context, _, _, _ string) ([]github.Comment, error) {
	f.calls = append(f.calls, "GetCommitComments")
	return f.comments, f.commentsErr
}

func (f *fakeService) GetCommitPulls(_ context.Context, _, _, _ string) ([]github.PullRef, error) {
	f.calls = append(f.calls, "GetCommitPulls")
	return f.pulls, nil
}

func (f *fakeService) CreateCommitComment(_ context.Context, _, _, _, body string) (*github.Comment, error) {
	f.calls = append(f.calls, "CreateCommitComment:"+body)
	return &github.Comment{ID: 99, Body: body}, nil
}

func (f *fakeService) UpdateComment(_ context.Context, _, _ string, _ int64, body string) (*github.Comment, error) {
	f.calls = append(f.calls, "UpdateComment:"+body)
	return &github.Comment{Body: body}, nil
}

func (f *fakeService) DeleteComment(_ context.Context, _, _ string, _ int64) error {
	f.calls = append(f.calls, "DeleteComment")
	return nil
}

func (f *fakeService) GetCommentReactions(_ context.Context, _, _ string, _ int64) ([]github.Reaction, error) {
	f.calls = append(f.calls, "GetCommentReactions")
	return f.reactions, nil
}

func (f *fakeService) AddReaction(_ context.Context, _, kind string) error {
	f.calls = append(f.calls, "AddReaction:"+kind)
	return nil
}

func (f *fakeService) RemoveReaction(_ context.Context, _, kind string) error {
	f.calls = append(f.calls, "RemoveReaction:"+kind)
	return nil
}

func uiTestCommit() *github.Commit {
	return &github.Commit{
		SHA:         "abc123def456",
		Author:      github.User{Login: "alice"},
		Committer:   github.User{Login: "web-flow"},
		Message:     "Fix the flux capacitor",
		CommittedAt: time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func uiTestComments() []github.Comment {
	return []github.Comment{
		{ID: 1, NodeID: "C_one", Author: github.User{Login: "bob"}, Body: "Looks good", CreatedAt: time.Date(2024, 3, 14, 10, 0, 0, 0, time.UTC)},
		{ID: 2, NodeID: "C_two", Author: github.User{Login: "alice"}, Body: "Thanks", CreatedAt: time.Date(2024, 3, 14, 11, 0, 0, 0, time.UTC)},
	}
}

func TestLoadThreadCmdFetchesCommitThenComments(t *testing.T) {
	svc := &fakeService{commit: uiTestCommit(), comments: uiTestComments()}

	msg := loadThreadCmd(svc, "o", "r", "abc123def456")()

	loaded, ok := msg.(ThreadLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.Err)
	assert.Equal(t, []string{"GetCommit", "GetCommitComments"}, svc.calls)
	assert.Len(t, loaded.Comments, 2)
}

func TestLoadThreadCmdAbortsOnCommitError(t *testing.T) {
	svc := &fakeService{commitErr: errors.New("boom")}

	msg := loadThreadCmd(svc, "o", "r", "abc123def456")()

	loaded, ok := msg.(ThreadLoadedMsg)
	require.True(t, ok)
	assert.Error(t, loaded.Err)
	assert.Equal(t, []string{"GetCommit"}, svc.calls, "comment fetch must not run after a failed commit fetch")
}

func TestLoadThreadCmdReportsCommentError(t *testing.T) {
	svc := &fakeService{commit: uiTestCommit(), commentsErr: errors.New("boom")}

	msg := loadThreadCmd(svc, "o", "r", "abc123def456")()

	loaded, ok := msg.(ThreadLoadedMsg)
	require.True(t, ok)
	assert.Error(t, loaded.Err)
}

func TestToggleReactionCmdAddsWhenAbsent(t *testing.T) {
	svc := &fakeService{
		username: "alice",
		reactions: []github.Reaction{
			{User: github.User{Login: "bob"}, Content: "heart"},
		},
	}
	comment := &github.Comment{ID: 1, NodeID: "C_one"}

	msg := toggleReactionCmd(svc, "o", "r", "sha", comment, "heart")()

	toggled, ok := msg.(ReactionToggledMsg)
	require.True(t, ok)
	require.NoError(t, toggled.Err)
	assert.True(t, toggled.Added)
	assert.Equal(t, []string{"GetCommentReactions", "AddReaction:heart"}, svc.calls)
}

func TestToggleReactionCmdRemovesWhenPresent(t *testing.T) {
	svc := &fakeService{
		username: "alice",
		reactions: []github.Reaction{
			{User: github.User{Login: "alice"}, Content: "+1"},
		},
	}
	comment := &github.Comment{ID: 1, NodeID: "C_one"}

	msg := toggleReactionCmd(svc, "o", "r", "sha", comment, "+1")()

	toggled, ok := msg.(ReactionToggledMsg)
	require.True(t, ok)
	require.NoError(t, toggled.Err)
	assert.False(t, toggled.Added)
	assert.Equal(t, []string{"GetCommentReactions", "RemoveReaction:+1"}, svc.calls)
}

func TestHasReaction(t *testing.T) {
	reactions := []github.Reaction{
		{User: github.User{Login: "alice"}, Content: "+1"},
		{User: github.User{Login: "bob"}, Content: "heart"},
	}

	assert.True(t, hasReaction(reactions, "alice", "+1"))
	assert.False(t, hasReaction(reactions, "alice", "heart"), "same kind by another user does not count")
	assert.False(t, hasReaction(reactions, "carol", "+1"))
	assert.False(t, hasReaction(nil, "alice", "+1"))
}

func TestNewCommentNotificationsPerComment(t *testing.T) {
	fresh := []github.Comment{
		{ID: 10, Author: github.User{Login: "alice"}},
		{ID: 11, Author: github.User{Login: "bob"}},
	}

	got := newCommentNotifications("abc123def456", fresh, 3)

	require.Len(t, got, 2)
	assert.Equal(t, "ghthread: New comment", got[0].title)
	assert.Equal(t, "alice commented on abc123d", got[0].body)
	assert.Equal(t, "bob commented on abc123d", got[1].body)
}

func TestNewCommentNotificationsCollapseAboveThreshold(t *testing.T) {
	fresh := make([]github.Comment, 4)
	for i := range fresh {
		fresh[i] = github.Comment{ID: int64(i + 1), Author: github.User{Login: "alice"}}
	}

	got := newCommentNotifications("abc123def456", fresh, 3)

	require.Len(t, got, 1)
	assert.Equal(t, "ghthread", got[0].title)
	assert.Equal(t, "4 new comments on abc123d", got[0].body)
}

func TestNewCommentNotificationsNone(t *testing.T) {
	assert.Empty(t, newCommentNotifications("abc123def456", nil, 3))
}
