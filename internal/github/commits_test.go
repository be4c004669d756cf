package github

import (
	"context"
	"strings"
	"testing"
)

const commitJSON = `{
  "sha": "abc123def",
  "commit": {
    "message": "fix: handle empty input\n\nLonger explanation here.",
    "author": {"name": "Alice Smith", "date": "2026-02-10T09:30:00Z"},
    "committer": {"name": "GitHub", "date": "2026-02-10T09:31:00Z"}
  },
  "author": {"login": "alice"},
  "committer": {"login": "web-flow"}
}`

func TestGetCommit(t *testing.T) {
	client := NewTestClient("alice", fakeRunner(map[string]string{
		"repos/acme/widget/commits/abc123def": commitJSON,
	}), nil)

	commit, err := client.GetCommit(context.Background(), "acme", "widget", "abc123def")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if commit.SHA != "abc123def" {
		t.Errorf("SHA = %q", commit.SHA)
	}
	if commit.Author.Login != "alice" {
		t.Errorf("Author = %q, want alice", commit.Author.Login)
	}
	if commit.Committer.Login != "web-flow" {
		t.Errorf("Committer = %q, want web-flow", commit.Committer.Login)
	}
	if !strings.HasPrefix(commit.Message, "fix: handle empty input") {
		t.Errorf("Message = %q", commit.Message)
	}
	if commit.CommittedAt.IsZero() {
		t.Error("CommittedAt is zero")
	}
}

func TestGetCommit_NoAccountFallsBackToGitName(t *testing.T) {
	raw := `{
  "sha": "fffff",
  "commit": {
    "message": "import old history",
    "author": {"name": "Old Contributor", "date": "2019-01-01T00:00:00Z"},
    "committer": {"name": "Old Contributor", "date": "2019-01-01T00:00:00Z"}
  },
  "author": null,
  "committer": null
}`
	client := NewTestClient("alice", fakeRunner(map[string]string{
		"commits/fffff": raw,
	}), nil)

	commit, err := client.GetCommit(context.Background(), "acme", "widget", "fffff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if commit.Author.Login != "Old Contributor" {
		t.Errorf("Author = %q, want git-level name fallback", commit.Author.Login)
	}
}

func TestGetCommit_MissingSHA(t *testing.T) {
	client := NewTestClient("alice", fakeRunner(map[string]string{
		"commits/deadbeef": `{"commit": {"message": "x"}}`,
	}), nil)

	_, err := client.GetCommit(context.Background(), "acme", "widget", "deadbeef")
	if err == nil {
		t.Fatal("expected validation error for missing sha")
	}
}

func TestGetCommitPulls(t *testing.T) {
	raw := `[{
    "number": 7,
    "title": "Add widgets",
    "state": "open",
    "html_url": "https://github.com/acme/widget/pull/7",
    "user": {"login": "bob"},
    "labels": [{"name": "bug", "color": "d73a4a"}],
    "assignees": [{"login": "alice"}, {"login": "bob"}]
  }]`
	client := NewTestClient("alice", fakeRunner(map[string]string{
		"commits/abc123def/pulls": raw,
	}), nil)

	pulls, err := client.GetCommitPulls(context.Background(), "acme", "widget", "abc123def")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pulls) != 1 {
		t.Fatalf("got %d pulls, want 1", len(pulls))
	}
	p := pulls[0]
	if p.Number != 7 || p.Author.Login != "bob" {
		t.Errorf("pull = %+v", p)
	}
	if len(p.Labels) != 1 || p.Labels[0].Name != "bug" {
		t.Errorf("labels = %+v", p.Labels)
	}
	if len(p.Assignees) != 2 {
		t.Errorf("assignees = %+v", p.Assignees)
	}
}
