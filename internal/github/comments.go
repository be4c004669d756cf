package github

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// ghReactionSummary is the rollup object the comments API embeds. It
// carries a url field alongside the per-kind counts, so it cannot be
// decoded as a plain count map.
type ghReactionSummary struct {
	TotalCount int `json:"total_count"`
	PlusOne    int `json:"+1"`
	MinusOne   int `json:"-1"`
	Laugh      int `json:"laugh"`
	Confused   int `json:"confused"`
	Heart      int `json:"heart"`
	Hooray     int `json:"hooray"`
	Rocket     int `json:"rocket"`
	Eyes       int `json:"eyes"`
}

func (s ghReactionSummary) counts() map[string]int {
	byKind := map[string]int{
		"+1":       s.PlusOne,
		"-1":       s.MinusOne,
		"laugh":    s.Laugh,
		"confused": s.Confused,
		"heart":    s.Heart,
		"hooray":   s.Hooray,
		"rocket":   s.Rocket,
		"eyes":     s.Eyes,
	}
	out := make(map[string]int)
	for kind, n := range byKind {
		if n > 0 {
			out[kind] = n
		}
	}
	return out
}

// ghCommitComment is the JSON shape from the commit comments API.
type ghCommitComment struct {
	ID     int64  `json:"id"`
	NodeID string `json:"node_id"`
	User   struct {
		Login string `json:"login"`
	} `json:"user"`
	Body      string            `json:"body"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Reactions ghReactionSummary `json:"reactions"`
}

func (g ghCommitComment) toComment() Comment {
	counts := g.Reactions.counts()
	return Comment{
		ID:        g.ID,
		NodeID:    g.NodeID,
		Author:    User{Login: g.User.Login},
		Body:      g.Body,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
		Reactions: counts,
	}
}

// GetCommitComments fetches all comments on a commit, oldest first.
func (c *Client) GetCommitComments(ctx context.Context, owner, repo, sha string) ([]Comment, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/commits/%s/comments", owner, repo, sha)

	var raw []ghCommitComment
	if err := c.ghJSON(ctx, &raw, "api", endpoint, "--paginate"); err != nil {
		return nil, fmt.Errorf("failed to list comments for commit %s: %w", sha, err)
	}

	comments := make([]Comment, 0, len(raw))
	for _, g := range raw {
		if g.ID == 0 {
			return nil, fmt.Errorf("commit %s: comment response missing id", sha)
		}
		comments = append(comments, g.toComment())
	}

	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})

	return comments, nil
}

// CreateCommitComment posts a new comment on a commit.
func (c *Client) CreateCommitComment(ctx context.Context, owner, repo, sha, body string) (*Comment, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/commits/%s/comments", owner, repo, sha)

	payload, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comment payload: %w", err)
	}

	out, err := c.ghExecWithStdin(ctx, string(payload),
		"api", endpoint, "--method", "POST", "--input", "-")
	if err != nil {
		return nil, fmt.Errorf("failed to create comment on commit %s: %w", sha, err)
	}

	var raw ghCommitComment
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse gh output: %w", err)
	}
	created := raw.toComment()
	return &created, nil
}

// UpdateComment replaces the body of an existing commit comment.
func (c *Client) UpdateComment(ctx context.Context, owner, repo string, commentID int64, body string) (*Comment, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/comments/%d", owner, repo, commentID)

	payload, err := json.Marshal(map[string]string{"body": body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comment payload: %w", err)
	}

	out, err := c.ghExecWithStdin(ctx, string(payload),
		"api", endpoint, "--method", "PATCH", "--input", "-")
	if err != nil {
		return nil, fmt.Errorf("failed to update comment %d: %w", commentID, err)
	}

	var raw ghCommitComment
	if err := json.Unmarshal([]byte(out), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse gh output: %w", err)
	}
	updated := raw.toComment()
	return &updated, nil
}

// DeleteComment removes a commit comment.
func (c *Client) DeleteComment(ctx context.Context, owner, repo string, commentID int64) error {
	endpoint := fmt.Sprintf("repos/%s/%s/comments/%d", owner, repo, commentID)
	if _, err := c.ghExec(ctx, "api", endpoint, "--method", "DELETE"); err != nil {
		return fmt.Errorf("failed to delete comment %d: %w", commentID, err)
	}
	return nil
}
