package github

import (
	"context"
	"fmt"
)

// reactionContent maps REST reaction kinds to GraphQL ReactionContent
// enum values. Reaction mutations go through GraphQL because they key
// on the comment's node id rather than its numeric id.
var reactionContent = map[string]string{
	"+1":       "THUMBS_UP",
	"-1":       "THUMBS_DOWN",
	"laugh":    "LAUGH",
	"confused": "CONFUSED",
	"heart":    "HEART",
	"hooray":   "HOORAY",
	"rocket":   "ROCKET",
	"eyes":     "EYES",
}

// ghReaction is the JSON shape from the comment reactions API.
type ghReaction struct {
	ID     int64  `json:"id"`
	NodeID string `json:"node_id"`
	User   struct {
		Login string `json:"login"`
	} `json:"user"`
	Content string `json:"content"`
}

// GetCommentReactions fetches all reactions on a commit comment.
func (c *Client) GetCommentReactions(ctx context.Context, owner, repo string, commentID int64) ([]Reaction, error) {
	endpoint := fmt.Sprintf("repos/%s/%s/comments/%d/reactions", owner, repo, commentID)

	var raw []ghReaction
	if err := c.ghJSON(ctx, &raw, "api", endpoint, "--paginate"); err != nil {
		return nil, fmt.Errorf("failed to list reactions for comment %d: %w", commentID, err)
	}

	reactions := make([]Reaction, 0, len(raw))
	for _, r := range raw {
		reactions = append(reactions, Reaction{
			ID:      r.ID,
			NodeID:  r.NodeID,
			User:    User{Login: r.User.Login},
			Content: r.Content,
		})
	}
	return reactions, nil
}

const addReactionQuery = `mutation($id: ID!, $content: ReactionContent!) {
  addReaction(input: {subjectId: $id, content: $content}) {
    reaction { content }
  }
}`

const removeReactionQuery = `mutation($id: ID!, $content: ReactionContent!) {
  removeReaction(input: {subjectId: $id, content: $content}) {
    reaction { content }
  }
}`

// AddReaction adds a reaction of the given kind to the subject with the
// given GraphQL node id.
func (c *Client) AddReaction(ctx context.Context, nodeID, kind string) error {
	return c.mutateReaction(ctx, addReactionQuery, nodeID, kind, "add")
}

// RemoveReaction removes the authenticated user's reaction of the given
// kind from the subject with the given GraphQL node id.
func (c *Client) RemoveReaction(ctx context.Context, nodeID, kind string) error {
	return c.mutateReaction(ctx, removeReactionQuery, nodeID, kind, "remove")
}

func (c *Client) mutateReaction(ctx context.Context, query, nodeID, kind, verb string) error {
	content, ok := reactionContent[kind]
	if !ok {
		return fmt.Errorf("unknown reaction kind: %s", kind)
	}
	_, err := c.ghExec(ctx, "api", "graphql",
		"-f", "query="+query,
		"-f", "id="+nodeID,
		"-f", "content="+content,
	)
	if err != nil {
		return fmt.Errorf("failed to %s %s reaction: %w", verb, kind, err)
	}
	return nil
}
