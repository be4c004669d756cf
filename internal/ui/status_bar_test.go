package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusBarStaleClearIsIgnored(t *testing.T) {
	bar := NewStatusBarModel()

	_ = bar.SetTemporaryMessage("first", StatusInfo, time.Second)
	firstSeq := bar.messageSeq
	_ = bar.SetTemporaryMessage("second", StatusSuccess, time.Second)

	assert.False(t, bar.ClearIfSeqMatch(firstSeq))
	assert.Equal(t, "second", bar.statusMessage)

	assert.True(t, bar.ClearIfSeqMatch(bar.messageSeq))
	assert.Equal(t, "", bar.statusMessage)
}

func TestStatusBarShowsHintsWhenNoMessage(t *testing.T) {
	bar := NewStatusBarModel()
	bar.SetWidth(120)
	bar.SetState(PanelThread, ModeNavigation)

	view := bar.View()
	assert.Contains(t, view, "react")

	bar.SetState(PanelThread, ModeInsert)
	view = bar.View()
	assert.Contains(t, view, "submit")
}
