package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/maxman2025/lane-leaper-runner/internal/game"
)

const (
	feedPanelWidth = 300 // px, right-hand panel
	feedMaxEntries = 60  // ring capacity
	feedLineHeight = 11  // px per line at 1x debug font
)

// categoryColors maps an event category to its feed indicator colour.
var categoryColors = map[string]color.RGBA{
	"phase":     {R: 200, G: 200, B: 200, A: 255}, // light grey
	"collision": {R: 225, G: 80, B: 70, A: 255},   // red
	"pickup":    {R: 235, G: 200, B: 70, A: 255},  // gold
	"power":     {R: 80, G: 200, B: 220, A: 255},  // cyan
	"score":     {R: 100, G: 210, B: 100, A: 255}, // green
	"timer":     {R: 170, G: 120, B: 220, A: 255}, // violet
}

// EventFeed tails the session's event log into a fixed-size ring for
// the side panel. The log is truncated on every restart; the feed keeps
// its ring across the reset so the panel holds history between runs.
type EventFeed struct {
	entries []game.EventLogEntry
	seen    int // log entries consumed so far this run
}

func NewEventFeed() *EventFeed {
	return &EventFeed{}
}

// Sync pulls any log entries added since the last call. A shrinking log
// means a restart truncated it; the phase entries that follow mark the
// run boundary in the panel.
func (f *EventFeed) Sync(log *game.EventLog) {
	all := log.Entries()
	if len(all) < f.seen {
		f.seen = 0
	}
	f.entries = append(f.entries, all[f.seen:]...)
	f.seen = len(all)
	if len(f.entries) > feedMaxEntries {
		f.entries = f.entries[len(f.entries)-feedMaxEntries:]
	}
}

func (f *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	// Panel background.
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 12, G: 12, B: 16, A: 248}, false)
	// Left separator line.
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 58, B: 80, A: 255}, false)

	// Title bar background.
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 24, G: 23, B: 34, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENT FEED", panelX+8, 2)
	// Title separator.
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+feedPanelWidth), 16, 1.0, color.RGBA{R: 60, G: 58, B: 95, A: 200}, false)

	// Draw from bottom up so newest is at bottom.
	maxVisible := (panelH - 24) / feedLineHeight
	startIdx := 0
	if len(f.entries) > maxVisible {
		startIdx = len(f.entries) - maxVisible
	}

	visible := f.entries[startIdx:]
	recent := 3 // how many latest entries to highlight

	y := 20
	for i, e := range visible {
		isRecent := i >= len(visible)-recent

		dotCol, ok := categoryColors[e.Category]
		if !ok {
			dotCol = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		}

		// Highlight row background for recent entries.
		if isRecent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 30, G: 30, B: 44, A: 160}, false)
		}

		// Category colour indicator dot.
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, dotCol, false)

		// Tick + event + detail.
		line := fmt.Sprintf("%5d %s %s", e.Tick, e.Key, e.Value)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += feedLineHeight
	}
}
