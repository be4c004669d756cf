package github

import (
	"context"
	"fmt"
	"time"
)

// ghCommit is the JSON shape from the commits API.
type ghCommit struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
		Committer struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
	Committer *struct {
		Login string `json:"login"`
	} `json:"committer"`
}

// ghPullRef is the JSON shape from the commit pulls API.
type ghPullRef struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	State   string `json:"state"`
	HTMLURL string `json:"html_url"`
	User    struct {
		Login string `json:"login"`
	} `json:"user"`
	Labels []struct {
		Name  string `json:"name"`
		Color string `json:"color"`
	} `json:"labels"`
	Assignees []struct {
		Login string `json:"login"`
	} `json:"assignees"`
}

// GetCommit fetches a single commit by sha.
//
// The GitHub user objects are null for commits whose author has no
// account mapping, so logins fall back to the git-level names.
func (c *Client) GetCommit(ctx context.Context, owner, repo, sha string) (*Commit, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/commits/%s", owner, repo, sha)

	var raw ghCommit
	if err := c.ghJSON(ctx, &raw, "api", endpoint); err != nil {
		return nil, fmt.Errorf("failed to fetch commit %s: %w", sha, err)
	}
	if raw.SHA == "" {
		return nil, fmt.Errorf("commit %s: response missing sha", sha)
	}

	authorLogin := raw.Commit.Author.Name
	if raw.Author != nil && raw.Author.Login != "" {
		authorLogin = raw.Author.Login
	}
	committerLogin := raw.Commit.Committer.Name
	if raw.Committer != nil && raw.Committer.Login != "" {
		committerLogin = raw.Committer.Login
	}

	return &Commit{
		SHA:         raw.SHA,
		Author:      User{Login: authorLogin},
		Committer:   User{Login: committerLogin},
		Message:     raw.Commit.Message,
		CommittedAt: raw.Commit.Committer.Date,
	}, nil
}

// GetCommitPulls fetches the pull requests that contain the given commit.
func (c *Client) GetCommitPulls(ctx context.Context, owner, repo, sha string) ([]PullRef, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/commits/%s/pulls", owner, repo, sha)

	var raw []ghPullRef
	if err := c.ghJSON(ctx, &raw, "api", endpoint); err != nil {
		return nil, fmt.Errorf("failed to list pulls for commit %s: %w", sha, err)
	}

	pulls := make([]PullRef, 0, len(raw))
	for _, p := range raw {
		ref := PullRef{
			Number:  p.Number,
			Title:   p.Title,
			State:   p.State,
			HTMLURL: p.HTMLURL,
			Author:  User{Login: p.User.Login},
		}
		for _, l := range p.Labels {
			ref.Labels = append(ref.Labels, Label{Name: l.Name, Color: l.Color})
		}
		for _, a := range p.Assignees {
			ref.Assignees = append(ref.Assignees, User{Login: a.Login})
		}
		pulls = append(pulls, ref)
	}
	return pulls, nil
}
