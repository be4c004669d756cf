package ui

// Panel identifies which panel has focus.
type Panel int

const (
	PanelThread  Panel = iota // comment thread document
	PanelOutline              // pull request outline
)

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNavigation AppMode = iota
	ModeInsert
	ModeOverlay
)

// Layout constants
const (
	minThreadWidth  = 50
	minOutlineWidth = 24
	minTotalWidth   = 60

	collapseThreshold = 100

	outlineRatio = 0.32

	statusBarHeight = 1
)

// PanelSizes holds calculated panel dimensions.
type PanelSizes struct {
	ThreadWidth  int
	OutlineWidth int
	PanelHeight  int
	TooSmall     bool
}

// CalculatePanelSizes determines panel widths based on terminal dimensions
// and whether the outline panel is collapsed.
func CalculatePanelSizes(termWidth, termHeight int, outlineCollapsed bool) PanelSizes {
	if termWidth < minTotalWidth {
		return PanelSizes{TooSmall: true}
	}

	panelHeight := termHeight - statusBarHeight
	if panelHeight < 5 {
		return PanelSizes{TooSmall: true}
	}

	autoCollapse := termWidth < collapseThreshold
	if outlineCollapsed || autoCollapse {
		return PanelSizes{
			ThreadWidth:  termWidth,
			OutlineWidth: 0,
			PanelHeight:  panelHeight,
		}
	}

	outlineW := max(minOutlineWidth, int(float64(termWidth)*outlineRatio))
	threadW := termWidth - outlineW
	if threadW < minThreadWidth {
		threadW = minThreadWidth
		outlineW = termWidth - threadW
		if outlineW < minOutlineWidth {
			// Fall back to single-panel mode
			return PanelSizes{
				ThreadWidth:  termWidth,
				OutlineWidth: 0,
				PanelHeight:  panelHeight,
			}
		}
	}

	return PanelSizes{
		ThreadWidth:  threadW,
		OutlineWidth: outlineW,
		PanelHeight:  panelHeight,
	}
}

func (p Panel) Next() Panel {
	if p == PanelThread {
		return PanelOutline
	}
	return PanelThread
}

func (p Panel) String() string {
	switch p {
	case PanelThread:
		return "Thread"
	case PanelOutline:
		return "Outline"
	default:
		return "Unknown"
	}
}
