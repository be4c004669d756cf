package thread

// Buffer is the line document a thread renders into. It stands in for
// the host editor surface: lines, a cursor, and a writability flag the
// boundary guard toggles. All mutation happens on the UI goroutine.
type Buffer struct {
	handle     int
	lines      []string
	cursorLine int
	cursorCol  int
	writable   bool
}

var nextBufferHandle int

// NewBuffer allocates an empty buffer with a fresh handle.
func NewBuffer() *Buffer {
	nextBufferHandle++
	return &Buffer{handle: nextBufferHandle, lines: []string{""}}
}

// Handle returns the buffer's identity for reverse-index lookups.
func (b *Buffer) Handle() int { return b.handle }

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the line at index i, or "" if out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// Lines returns a copy of the half-open range [from, to), clamped.
func (b *Buffer) Lines(from, to int) []string {
	if from < 0 {
		from = 0
	}
	if to > len(b.lines) {
		to = len(b.lines)
	}
	if from >= to {
		return nil
	}
	out := make([]string, to-from)
	copy(out, b.lines[from:to])
	return out
}

// SetLines replaces the entire buffer content.
func (b *Buffer) SetLines(lines []string) {
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.clampCursor()
}

// ReplaceFrom truncates the buffer at line and appends the given lines.
func (b *Buffer) ReplaceFrom(line int, lines []string) {
	if line < 0 {
		line = 0
	}
	if line > len(b.lines) {
		line = len(b.lines)
	}
	b.lines = append(b.lines[:line:line], lines...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	b.clampCursor()
}

// Writable reports whether the buffer currently accepts edits.
func (b *Buffer) Writable() bool { return b.writable }

// SetWritable toggles whether the buffer accepts edits.
func (b *Buffer) SetWritable(w bool) { b.writable = w }

// Cursor returns the cursor position as (line, column).
func (b *Buffer) Cursor() (int, int) { return b.cursorLine, b.cursorCol }

// SetCursor moves the cursor, clamping to valid positions.
func (b *Buffer) SetCursor(line, col int) {
	b.cursorLine = line
	b.cursorCol = col
	b.clampCursor()
}

func (b *Buffer) clampCursor() {
	if b.cursorLine < 0 {
		b.cursorLine = 0
	}
	if b.cursorLine >= len(b.lines) {
		b.cursorLine = len(b.lines) - 1
	}
	if b.cursorCol < 0 {
		b.cursorCol = 0
	}
	if n := len([]rune(b.lines[b.cursorLine])); b.cursorCol > n {
		b.cursorCol = n
	}
}

// InsertRune inserts r at the cursor and advances it. No-op when the
// buffer is read-only.
func (b *Buffer) InsertRune(r rune) {
	if !b.writable {
		return
	}
	line := []rune(b.lines[b.cursorLine])
	line = append(line[:b.cursorCol:b.cursorCol], append([]rune{r}, line[b.cursorCol:]...)...)
	b.lines[b.cursorLine] = string(line)
	b.cursorCol++
}

// InsertNewline splits the current line at the cursor. No-op when the
// buffer is read-only.
func (b *Buffer) InsertNewline() {
	if !b.writable {
		return
	}
	line := []rune(b.lines[b.cursorLine])
	head, tail := string(line[:b.cursorCol]), string(line[b.cursorCol:])
	rest := make([]string, len(b.lines[b.cursorLine+1:]))
	copy(rest, b.lines[b.cursorLine+1:])
	b.lines = append(b.lines[:b.cursorLine:b.cursorLine], append([]string{head, tail}, rest...)...)
	b.cursorLine++
	b.cursorCol = 0
}

// DeleteBack removes the rune before the cursor, merging with the
// previous line at column zero. The merge is refused below floor so a
// backspace can never eat into the read-only region. No-op when the
// buffer is read-only.
func (b *Buffer) DeleteBack(floor int) {
	if !b.writable {
		return
	}
	if b.cursorCol > 0 {
		line := []rune(b.lines[b.cursorLine])
		b.lines[b.cursorLine] = string(append(line[:b.cursorCol-1:b.cursorCol-1], line[b.cursorCol:]...))
		b.cursorCol--
		return
	}
	if b.cursorLine <= floor {
		return
	}
	prev := b.lines[b.cursorLine-1]
	b.cursorCol = len([]rune(prev))
	b.lines[b.cursorLine-1] = prev + b.lines[b.cursorLine]
	b.lines = append(b.lines[:b.cursorLine:b.cursorLine], b.lines[b.cursorLine+1:]...)
	b.cursorLine--
}
