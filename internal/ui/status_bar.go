package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// StatusSeverity selects the style of a temporary status message.
type StatusSeverity int

const (
	StatusInfo StatusSeverity = iota
	StatusSuccess
	StatusError
)

// StatusBarModel renders the bottom status bar.
type StatusBarModel struct {
	width    int
	focused  Panel
	mode     AppMode
	commitID string

	// Temporary flash message (e.g. "Comment posted")
	statusMessage  string
	statusSeverity StatusSeverity
	// Monotonic counter: incremented on each SetTemporaryMessage call.
	// StatusBarClearMsg carries the seq at time of scheduling; if it doesn't
	// match current seq the clear is stale and ignored.
	messageSeq int
}

func NewStatusBarModel() StatusBarModel {
	return StatusBarModel{}
}

func (m *StatusBarModel) SetWidth(width int) {
	m.width = width
}

func (m *StatusBarModel) SetState(focused Panel, mode AppMode) {
	m.focused = focused
	m.mode = mode
}

func (m *StatusBarModel) SetCommitID(sha string) {
	m.commitID = sha
}

// SetTemporaryMessage shows a flash message in the status bar.
// Returns a tea.Cmd that will send a StatusBarClearMsg after the given duration,
// which the caller must include in the returned command batch.
func (m *StatusBarModel) SetTemporaryMessage(msg string, severity StatusSeverity, duration time.Duration) tea.Cmd {
	m.messageSeq++
	m.statusMessage = msg
	m.statusSeverity = severity
	seq := m.messageSeq
	return tea.Tick(duration, func(_ time.Time) tea.Msg {
		return StatusBarClearMsg{Seq: seq}
	})
}

// ClearMessage explicitly clears the temporary message.
func (m *StatusBarModel) ClearMessage() {
	m.statusMessage = ""
}

// ClearIfSeqMatch clears the message only if the given seq matches the current one.
// Returns true if the message was cleared.
func (m *StatusBarModel) ClearIfSeqMatch(seq int) bool {
	if seq == m.messageSeq {
		m.statusMessage = ""
		return true
	}
	return false
}

func (m StatusBarModel) View() string {
	var leftRendered string
	if m.statusMessage != "" {
		leftRendered = m.messageStyle().Render(" " + m.statusMessage)
	} else {
		leftRendered = statusBarAccentStyle.Render(m.keyHints())
	}
	rightRendered := statusBarStyle.Render(m.contextInfo())

	leftWidth := lipgloss.Width(leftRendered)
	rightWidth := lipgloss.Width(rightRendered)
	padding := m.width - leftWidth - rightWidth
	if padding < 0 {
		padding = 0
	}

	bar := leftRendered +
		statusBarStyle.Render(strings.Repeat(" ", padding)) +
		rightRendered

	return statusBarStyle.Width(m.width).Render(bar)
}

func (m StatusBarModel) messageStyle() lipgloss.Style {
	switch m.statusSeverity {
	case StatusSuccess:
		return statusBarSuccessStyle
	case StatusError:
		return statusBarErrorStyle
	default:
		return statusBarAccentStyle
	}
}

func (m StatusBarModel) keyHints() string {
	if m.mode == ModeInsert {
		return " [Ctrl+S]submit [Esc]leave compose [Backspace/Enter]edit"
	}

	switch m.focused {
	case PanelThread:
		return " [j/k]move [i]compose [Ctrl+S]submit [Ctrl+A]actions [r]react [p]preview [R]refresh [?]help"
	case PanelOutline:
		return " [j/k]move [Enter]expand [o]open in browser [Tab]panel [?]help"
	default:
		return " [Tab]panel [?]help [q]quit"
	}
}

func (m StatusBarModel) contextInfo() string {
	modeStr := ""
	switch m.mode {
	case ModeInsert:
		modeStr = " INSERT "
	case ModeOverlay:
		modeStr = " OVERLAY "
	default:
		modeStr = " NAV "
	}

	shaInfo := ""
	if m.commitID != "" {
		sha := m.commitID
		if len(sha) > 7 {
			sha = sha[:7]
		}
		shaInfo = fmt.Sprintf("commit %s ", sha)
	}

	return modeStr + shaInfo
}
