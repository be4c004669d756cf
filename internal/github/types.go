package github

import "time"

// User represents a GitHub user.
type User struct {
	Login string
}

// Commit is a single commit with the metadata the thread view renders.
type Commit struct {
	SHA         string
	Author      User
	Committer   User
	Message     string // full commit message, possibly multi-line
	CommittedAt time.Time
}

// Comment is a commit-level comment.
//
// ID is used for update/delete calls; NodeID is the GraphQL identifier
// used for reaction mutations. Reactions holds per-kind counts as
// reported by the list endpoint's summary object.
type Comment struct {
	ID        int64
	NodeID    string
	Author    User
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Reactions map[string]int
}

// Reaction is a single user's reaction on a comment.
type Reaction struct {
	ID      int64
	NodeID  string
	User    User
	Content string // reaction kind: "+1", "-1", "laugh", ...
}

// Label represents a PR label.
type Label struct {
	Name  string
	Color string
}

// PullRef is a lightweight reference to a pull request containing a commit,
// used by the outline panel.
type PullRef struct {
	Number    int
	Title     string
	State     string
	HTMLURL   string
	Author    User
	Labels    []Label
	Assignees []User
}

// ReactionKinds lists the reaction kinds GitHub accepts, in menu order.
var ReactionKinds = []string{"+1", "-1", "laugh", "confused", "heart", "hooray", "rocket", "eyes"}
