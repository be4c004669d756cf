package ui

import (
	"github.com/kapral18/ghthread/internal/github"
	"github.com/kapral18/ghthread/internal/thread"
)

// -- GitHub client lifecycle --

// GHClientReadyMsg is sent when the GitHub client has been created successfully.
type GHClientReadyMsg struct {
	Client GitHubService
}

// GHClientErrorMsg is sent when the GitHub client fails to initialize.
type GHClientErrorMsg struct {
	Err error
}

// -- Thread data --

// ThreadLoadedMsg is sent when a commit and its comments have been fetched.
// The two fetches run sequentially; the first failure aborts the load.
type ThreadLoadedMsg struct {
	CommitID string
	Commit   *github.Commit
	Comments []github.Comment
	Err      error
}

// PullsLoadedMsg is sent when the pull requests containing the commit
// have been fetched for the outline panel.
type PullsLoadedMsg struct {
	CommitID string
	Pulls    []github.PullRef
	Err      error
}

// -- Mutations --

// CommentCreatedMsg is sent when a new comment has been posted.
type CommentCreatedMsg struct {
	CommitID string
	Err      error
}

// CommentUpdatedMsg is sent when a comment edit has been saved.
type CommentUpdatedMsg struct {
	CommitID  string
	CommentID int64
	Err       error
}

// CommentDeletedMsg is sent when a comment has been deleted.
type CommentDeletedMsg struct {
	CommitID  string
	CommentID int64
	Err       error
}

// ReactionToggledMsg is sent when a reaction toggle round-trip finishes.
// Added reports which way the toggle went.
type ReactionToggledMsg struct {
	CommitID string
	Kind     string
	Added    bool
	Err      error
}

// -- Thread panel requests --

// SubmitRequestedMsg asks the app to submit the current draft.
type SubmitRequestedMsg struct {
	CommitID string
}

// ActionMenuRequestedMsg asks the app to open the action menu for the
// entity under the cursor.
type ActionMenuRequestedMsg struct {
	CommitID string
	Anchor   thread.Anchor
}

// ReactRequestedMsg asks the app to open the reaction picker for the
// comment under the cursor.
type ReactRequestedMsg struct {
	CommitID string
	Comment  *github.Comment
}

// PreviewRequestedMsg asks the app to open the markdown preview for the
// comment under the cursor.
type PreviewRequestedMsg struct {
	Comment *github.Comment
}

// CancelEditRequestedMsg asks the app to discard an in-progress comment
// edit and restore the rendered document.
type CancelEditRequestedMsg struct {
	CommitID string
}

// -- Background polling --

// pollTickMsg fires on the polling interval.
type pollTickMsg struct{}

// pollThreadLoadedMsg carries a background refresh result. Poll errors
// are dropped; the next tick retries.
type pollThreadLoadedMsg struct {
	CommitID string
	Commit   *github.Commit
	Comments []github.Comment
}

// -- Status bar --

// StatusBarClearMsg clears a temporary status message. Seq must match
// the message's sequence number or the clear is stale and ignored.
type StatusBarClearMsg struct {
	Seq int
}
