package thread

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kapral18/ghthread/internal/github"
)

func testCommit() *github.Commit {
	return &github.Commit{
		SHA:         "abc123",
		Author:      github.User{Login: "alice"},
		Committer:   github.User{Login: "web-flow"},
		Message:     "fix: handle empty input\n\nLonger explanation.",
		CommittedAt: time.Date(2026, 2, 10, 9, 31, 0, 0, time.UTC),
	}
}

func testComments() []github.Comment {
	return []github.Comment{
		{
			ID: 1, NodeID: "C_one", Author: github.User{Login: "alice"},
			Body:      "first comment",
			UpdatedAt: time.Date(2026, 2, 10, 11, 0, 0, 0, time.UTC),
		},
		{
			ID: 2, NodeID: "C_two", Author: github.User{Login: "bob"},
			Body:      "second\ncomment",
			UpdatedAt: time.Date(2026, 2, 11, 10, 0, 0, 0, time.UTC),
			Reactions: map[string]int{"+1": 2, "heart": 1},
		},
	}
}

func TestRender_Deterministic(t *testing.T) {
	a := Render(testCommit(), testComments())
	b := Render(testCommit(), testComments())
	assert.Equal(t, a, b)
}

func TestRender_HeaderBlock(t *testing.T) {
	r := Render(testCommit(), nil)

	require.GreaterOrEqual(t, len(r.Lines), 8)
	assert.Equal(t, "commit: abc123", r.Lines[0])
	assert.Equal(t, "author: alice", r.Lines[1])
	assert.Equal(t, "committer: web-flow", r.Lines[2])
	assert.True(t, strings.HasPrefix(r.Lines[3], "created: "))
	assert.Equal(t, "", r.Lines[4])
	assert.Equal(t, "fix: handle empty input", r.Lines[5])

	// The header anchor points at the commit and sits immediately after
	// the legend line.
	require.Len(t, r.Anchors, 1)
	assert.NotNil(t, r.Anchors[0].Commit)
	assert.Equal(t, legendLine, r.Lines[r.Anchors[0].Line-1])
}

func TestRender_ZeroComments(t *testing.T) {
	r := Render(testCommit(), nil)

	headerLen := r.Anchors[0].Line
	assert.Equal(t, headerLen+2, r.EditableOffset)
	assert.Equal(t, promptLine, r.Lines[r.EditableOffset-1])
	assert.Equal(t, "", r.Lines[r.EditableOffset])
	assert.Equal(t, len(r.Lines)-1, r.EditableOffset)
	assert.LessOrEqual(t, r.EditableOffset, len(r.Lines))

	for _, h := range r.Highlights {
		assert.Equal(t, BandA, h.Band, "header-only render must not use band B")
	}
}

func TestRender_CommentBandsAlternate(t *testing.T) {
	r := Render(testCommit(), testComments())

	bands := make(map[int]Band)
	for _, h := range r.Highlights {
		bands[h.Line] = h.Band
	}

	// First comment starts right after the header anchor line.
	first := r.Anchors[0].Line
	assert.Equal(t, BandA, bands[first])

	// Second comment starts at the first comment's anchor line.
	second := r.Anchors[1].Line
	assert.Equal(t, BandB, bands[second])
}

func TestRender_CommentTitlesAndAnchors(t *testing.T) {
	r := Render(testCommit(), testComments())

	require.Len(t, r.Anchors, 3)
	assert.True(t, strings.HasPrefix(r.Lines[r.Anchors[0].Line], "alice commented on "))
	assert.True(t, strings.HasPrefix(r.Lines[r.Anchors[1].Line], "bob commented on "))

	// Each comment anchor names its comment and follows its last line.
	assert.Equal(t, int64(1), r.Anchors[1].Comment.ID)
	assert.Equal(t, int64(2), r.Anchors[2].Comment.ID)

	// Anchor lines ascend.
	for i := 1; i < len(r.Anchors); i++ {
		assert.Greater(t, r.Anchors[i].Line, r.Anchors[i-1].Line)
	}
}

func TestRender_ReactionLine(t *testing.T) {
	r := Render(testCommit(), testComments())

	// The second comment carries reactions; its anchor follows the
	// reaction line.
	reactions := r.Lines[r.Anchors[2].Line-1]
	assert.Contains(t, reactions, "👍 2")
	assert.Contains(t, reactions, "❤️ 1")

	// The first comment has none: its block ends with the body.
	assert.Equal(t, "first comment", r.Lines[r.Anchors[1].Line-1])
}

func TestSanitizeLines(t *testing.T) {
	lines := SanitizeLines("a\tb\r\nsecond\rline\nthird")
	require.Len(t, lines, 3)
	assert.Equal(t, "a  b", lines[0])
	assert.Equal(t, "secondline", lines[1])
	assert.Equal(t, "third", lines[2])

	for _, l := range lines {
		assert.NotContains(t, l, "\r")
		assert.NotContains(t, l, "\t")
	}
}

func TestRender_SanitizesCommitMessage(t *testing.T) {
	c := testCommit()
	c.Message = "subject\r\n\r\n\tindented body"
	r := Render(c, nil)

	assert.Equal(t, "subject", r.Lines[5])
	assert.Equal(t, "", r.Lines[6])
	assert.Equal(t, "  indented body", r.Lines[7])
}

func TestDetailLines(t *testing.T) {
	lines := DetailLines("one\ntwo")
	require.Len(t, lines, 2)
	assert.Equal(t, "│ one", lines[0])
	assert.Equal(t, "│ two", lines[1])
}

func TestPanelLines(t *testing.T) {
	lines := PanelLines("body")
	require.Len(t, lines, 3)
	assert.Equal(t, panelTop, lines[0])
	assert.Equal(t, "body", lines[1])
	assert.Equal(t, panelBottom, lines[2])
}
