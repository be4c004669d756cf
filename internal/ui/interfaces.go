package ui

import (
	"context"

	"github.com/kapral18/ghthread/internal/github"
)

// GitHubService defines the GitHub operations used by the UI layer.
// *github.Client satisfies this interface.
type GitHubService interface {
	GetUsername() string
	GetCommit(ctx context.Context, owner, repo, sha string) (*github.Commit, error)
	GetCommitComments(ctx context.Context, owner, repo, sha string) ([]github.Comment, error)
	GetCommitPulls(ctx context.Context, owner, repo, sha string) ([]github.PullRef, error)
	CreateCommitComment(ctx context.Context, owner, repo, sha, body string) (*github.Comment, error)
	UpdateComment(ctx context.Context, owner, repo string, commentID int64, body string) (*github.Comment, error)
	DeleteComment(ctx context.Context, owner, repo string, commentID int64) error
	GetCommentReactions(ctx context.Context, owner, repo string, commentID int64) ([]github.Reaction, error)
	AddReaction(ctx context.Context, nodeID, kind string) error
	RemoveReaction(ctx context.Context, nodeID, kind string) error
}
