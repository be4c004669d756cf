package ui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/kapral18/ghthread/internal/config"
	"github.com/kapral18/ghthread/internal/github"
	"github.com/kapral18/ghthread/internal/notify"
)

// initGHClientCmd creates the GitHub client in a goroutine.
func initGHClientCmd() tea.Msg {
	client, err := github.NewClient()
	if err != nil {
		return GHClientErrorMsg{Err: err}
	}
	return GHClientReadyMsg{Client: client}
}

// loadThreadCmd fetches the commit, then its comments. The fetches run
// in order and the first failure aborts the load.
func loadThreadCmd(client GitHubService, owner, repo, sha string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		commit, err := client.GetCommit(ctx, owner, repo, sha)
		if err != nil {
			return ThreadLoadedMsg{CommitID: sha, Err: err}
		}

		comments, err := client.GetCommitComments(ctx, owner, repo, sha)
		if err != nil {
			return ThreadLoadedMsg{CommitID: sha, Err: err}
		}

		return ThreadLoadedMsg{CommitID: sha, Commit: commit, Comments: comments}
	}
}

// fetchPullsCmd fetches the pull requests containing the commit.
func fetchPullsCmd(client GitHubService, owner, repo, sha string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		pulls, err := client.GetCommitPulls(ctx, owner, repo, sha)
		if err != nil {
			return PullsLoadedMsg{CommitID: sha, Err: err}
		}
		return PullsLoadedMsg{CommitID: sha, Pulls: pulls}
	}
}

// createCommentCmd posts a new comment on the commit.
func createCommentCmd(client GitHubService, owner, repo, sha, body string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		_, err := client.CreateCommitComment(ctx, owner, repo, sha, body)
		return CommentCreatedMsg{CommitID: sha, Err: err}
	}
}

// updateCommentCmd saves an edited comment body.
func updateCommentCmd(client GitHubService, owner, repo, sha string, commentID int64, body string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		_, err := client.UpdateComment(ctx, owner, repo, commentID, body)
		return CommentUpdatedMsg{CommitID: sha, CommentID: commentID, Err: err}
	}
}

// deleteCommentCmd deletes a comment.
func deleteCommentCmd(client GitHubService, owner, repo, sha string, commentID int64) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		err := client.DeleteComment(ctx, owner, repo, commentID)
		return CommentDeletedMsg{CommitID: sha, CommentID: commentID, Err: err}
	}
}

// toggleReactionCmd toggles the viewer's reaction of the given kind on a
// comment. The current reactions are always re-fetched first so the
// decision reflects the server state, not the possibly stale summary
// counts in the rendered document.
func toggleReactionCmd(client GitHubService, owner, repo, sha string, comment *github.Comment, kind string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		reactions, err := client.GetCommentReactions(ctx, owner, repo, comment.ID)
		if err != nil {
			return ReactionToggledMsg{CommitID: sha, Kind: kind, Err: err}
		}

		if hasReaction(reactions, client.GetUsername(), kind) {
			err = client.RemoveReaction(ctx, comment.NodeID, kind)
			return ReactionToggledMsg{CommitID: sha, Kind: kind, Added: false, Err: err}
		}

		err = client.AddReaction(ctx, comment.NodeID, kind)
		return ReactionToggledMsg{CommitID: sha, Kind: kind, Added: true, Err: err}
	}
}

// hasReaction reports whether login already reacted with the given kind.
func hasReaction(reactions []github.Reaction, login, kind string) bool {
	for _, r := range reactions {
		if r.User.Login == login && r.Content == kind {
			return true
		}
	}
	return false
}

// pollTickCmd returns a command that fires after the given interval to trigger background polling.
func pollTickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return pollTickMsg{}
	})
}

// pollLoadThreadCmd refreshes a thread for background polling.
// Errors are silently ignored; the next tick will retry.
func pollLoadThreadCmd(client GitHubService, owner, repo, sha string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		commit, err := client.GetCommit(ctx, owner, repo, sha)
		if err != nil {
			return nil
		}
		comments, err := client.GetCommitComments(ctx, owner, repo, sha)
		if err != nil {
			return nil
		}
		return pollThreadLoadedMsg{CommitID: sha, Commit: commit, Comments: comments}
	}
}

// notification pairs a title and body for notify.Send.
type notification struct {
	title string
	body  string
}

// newCommentNotifications builds the notifications for freshly arrived
// comments. Above threshold they collapse into a single summary.
func newCommentNotifications(sha string, newComments []github.Comment, threshold int) []notification {
	short := sha
	if len(short) > 7 {
		short = short[:7]
	}
	if len(newComments) > threshold {
		return []notification{{
			title: "ghthread",
			body:  fmt.Sprintf("%d new comments on %s", len(newComments), short),
		}}
	}
	out := make([]notification, 0, len(newComments))
	for _, c := range newComments {
		out = append(out, notification{
			title: "ghthread: New comment",
			body:  fmt.Sprintf("%s commented on %s", c.Author.Login, short),
		})
	}
	return out
}

// notifyNewCommentsCmd sends OS notifications for newly detected comments.
func notifyNewCommentsCmd(sha string, newComments []github.Comment, threshold int) tea.Cmd {
	return func() tea.Msg {
		for _, n := range newCommentNotifications(sha, newComments, threshold) {
			_ = notify.Send(n.title, n.body)
		}
		return nil
	}
}

// saveConfigCmd persists the config in the background. Failures are
// logged; the running session keeps its in-memory settings either way.
func saveConfigCmd(cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		if err := config.Save(cfg); err != nil {
			log.Warn().Err(err).Msg("failed to save config")
		}
		return nil
	}
}

// openBrowserCmd opens a URL in the default browser.
func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		_ = cmd.Start()
		return nil
	}
}
