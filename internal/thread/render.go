// Package thread implements the commit comment-thread view engine: a
// pure line renderer, a line document with a guarded editable tail,
// per-commit view state with generation-scoped anchors, and draft
// preservation across re-renders.
package thread

import (
	"strconv"
	"strings"

	"github.com/kapral18/ghthread/internal/github"
)

// Band selects one of the two alternating highlight backgrounds.
type Band int

const (
	BandA Band = iota
	BandB
)

// AnchorPlacement associates a rendered line offset with the entity the
// preceding block depicts. Exactly one of Commit/Comment is non-nil.
type AnchorPlacement struct {
	Line    int
	Commit  *github.Commit
	Comment *github.Comment
}

// HighlightPlacement assigns a decorative band to a single line.
type HighlightPlacement struct {
	Line int
	Band Band
}

// Rendering is the output of Render: the document lines plus the
// positional bookkeeping the installer needs.
type Rendering struct {
	Lines          []string
	Anchors        []AnchorPlacement
	Highlights     []HighlightPlacement
	EditableOffset int
}

const (
	tabSubstitute = "  "
	promptLine    = "-- add a comment below --"
	editPrompt    = "-- editing comment, ctrl+s to save --"
	legendLine    = "[ctrl+s]submit  [ctrl+a]actions  [r]react"
	timeLayout    = "Jan 2, 2006 15:04 MST"
)

// reactionGlyphs maps reaction kinds to their display glyphs.
var reactionGlyphs = map[string]string{
	"+1":       "👍",
	"-1":       "👎",
	"laugh":    "😄",
	"confused": "😕",
	"heart":    "❤️",
	"hooray":   "🎉",
	"rocket":   "🚀",
	"eyes":     "👀",
}

// Render converts a commit and its ordered comments into the thread
// document. It is pure: identical inputs produce identical output.
func Render(commit *github.Commit, comments []github.Comment) Rendering {
	var r Rendering

	emit := func(band Band, lines ...string) {
		for _, l := range lines {
			r.Highlights = append(r.Highlights, HighlightPlacement{Line: len(r.Lines), Band: band})
			r.Lines = append(r.Lines, l)
		}
	}

	// Header block.
	emit(BandA,
		"commit: "+commit.SHA,
		"author: "+commit.Author.Login,
		"committer: "+commit.Committer.Login,
		"created: "+commit.CommittedAt.Format(timeLayout),
		"",
	)
	emit(BandA, SanitizeLines(commit.Message)...)
	emit(BandA, "", legendLine)
	r.Anchors = append(r.Anchors, AnchorPlacement{Line: len(r.Lines), Commit: commit})

	// Comment blocks, alternating bands.
	for i := range comments {
		c := &comments[i]
		band := BandA
		if i%2 == 1 {
			band = BandB
		}
		emit(band, c.Author.Login+" commented on "+c.UpdatedAt.Format(timeLayout), "")
		emit(band, SanitizeLines(c.Body)...)
		if line := reactionLine(c.Reactions); line != "" {
			emit(band, "", line)
		}
		r.Anchors = append(r.Anchors, AnchorPlacement{Line: len(r.Lines), Comment: c})
	}

	// Editable tail.
	r.Lines = append(r.Lines, "", promptLine)
	r.EditableOffset = len(r.Lines)
	r.Lines = append(r.Lines, "")

	return r
}

// reactionLine renders the reaction summary for a comment, or "" when
// no kind has a positive count. Kinds appear in canonical order.
func reactionLine(counts map[string]int) string {
	var parts []string
	for _, kind := range github.ReactionKinds {
		if n := counts[kind]; n > 0 {
			parts = append(parts, reactionGlyphs[kind]+" "+strconv.Itoa(n))
		}
	}
	return strings.Join(parts, "  ")
}

// SanitizeLines splits text into physical lines with carriage returns
// stripped and tabs expanded to a fixed two-space run.
func SanitizeLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = sanitizeLine(l)
	}
	return lines
}

func sanitizeLine(line string) string {
	line = strings.ReplaceAll(line, "\r", "")
	return strings.ReplaceAll(line, "\t", tabSubstitute)
}

const (
	detailBorder = "│ "
	panelTop     = "╭────────────────────────────────────────"
	panelBottom  = "╰────────────────────────────────────────"
)

// DetailLines renders text for nested detail panels: every physical
// line is sanitized and prefixed with a left border glyph.
func DetailLines(text string) []string {
	lines := SanitizeLines(text)
	for i, l := range lines {
		lines[i] = detailBorder + l
	}
	return lines
}

// PanelLines renders text for a top-level panel: sanitized lines with
// no per-line border, enclosed by a top/bottom border glyph pair.
func PanelLines(text string) []string {
	lines := SanitizeLines(text)
	out := make([]string, 0, len(lines)+2)
	out = append(out, panelTop)
	out = append(out, lines...)
	out = append(out, panelBottom)
	return out
}
