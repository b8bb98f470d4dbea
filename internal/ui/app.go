// Package ui renders a session in an ebiten window and feeds keyboard
// input back into it. The simulation itself never imports this package;
// everything here works off Snapshot, Config and the event log.
package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/maxman2025/lane-leaper-runner/internal/game"
)

// borderWidth is the pixel gap between the window edge and the track.
const borderWidth = 24

// hudScale is the integer upscale factor applied to all HUD text (2 = 2× larger).
const hudScale = 2

// App drives one session: it implements ebiten.Game and owns the
// window-side state (key edges, sim speed, offscreen buffers).
type App struct {
	session *game.Session
	cfg     game.Config

	width  int
	height int
	trackW int
	trackH int
	offX   int // pixel offset from window left to track left
	offY   int // pixel offset from window top to track top

	feed *EventFeed

	prevKeys map[ebiten.Key]bool

	// Sim speed control. Wall-clock windows (slide, invulnerability)
	// keep running on real time regardless, so speed >1 simply runs
	// more ticks per frame against the same clock.
	simSpeed  float64 // multiplier: 0.5, 1, 2, 4
	tickAccum float64 // fractional tick accumulator for sub-1x speeds

	showHUD bool

	// Transient status line, e.g. after a clipboard copy.
	flashMsg   string
	flashUntil time.Time

	// Offscreen buffer for the track. Entities spawn above y=0 and the
	// blit clips that margin instead of painting into the border.
	worldBuf *ebiten.Image
	// Offscreen buffer for HUD text, rendered at 1x then blitted at hudScale.
	hudBuf *ebiten.Image
}

// New wraps an existing session. The window size follows the session's
// track geometry, so callers size the ebiten window from Width/Height.
func New(s *game.Session) *App {
	cfg := s.Config()
	trackW := int(cfg.TrackWidth)
	trackH := int(cfg.TrackHeight)
	a := &App{
		session:  s,
		cfg:      cfg,
		width:    borderWidth + trackW + borderWidth + feedPanelWidth,
		height:   borderWidth + trackH + borderWidth,
		trackW:   trackW,
		trackH:   trackH,
		offX:     borderWidth,
		offY:     borderWidth,
		feed:     NewEventFeed(),
		prevKeys: make(map[ebiten.Key]bool),
		simSpeed: 1.0,
		showHUD:  true,
	}
	a.worldBuf = ebiten.NewImage(trackW, trackH)
	a.hudBuf = ebiten.NewImage(a.width/hudScale, a.height/hudScale)
	return a
}

// Width reports the window width in pixels.
func (a *App) Width() int { return a.width }

// Height reports the window height in pixels.
func (a *App) Height() int { return a.height }

func (a *App) Update() error {
	// Handle input every frame regardless of sim speed.
	a.handleInput()

	// For speeds > 1 run multiple sim ticks per frame.
	// For speeds < 1 accumulate fractions.
	a.tickAccum += a.simSpeed
	for a.tickAccum >= 1.0 {
		a.tickAccum -= 1.0
		a.session.AdvanceTick()
	}

	a.feed.Sync(a.session.Log())
	return nil
}

func (a *App) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	// Gameplay commands are edge-triggered: holding a key does not
	// repeat it. The session phase-gates everything, so firing a
	// command at the wrong moment is harmless.
	bindings := []struct {
		key ebiten.Key
		cmd game.Command
	}{
		{ebiten.KeyArrowLeft, game.CommandMoveLeft},
		{ebiten.KeyA, game.CommandMoveLeft},
		{ebiten.KeyArrowRight, game.CommandMoveRight},
		{ebiten.KeyD, game.CommandMoveRight},
		{ebiten.KeyArrowUp, game.CommandJump},
		{ebiten.KeyW, game.CommandJump},
		{ebiten.KeySpace, game.CommandJump},
		{ebiten.KeyArrowDown, game.CommandSlide},
		{ebiten.KeyS, game.CommandSlide},
	}
	for _, b := range bindings {
		currentKeys[b.key] = ebiten.IsKeyPressed(b.key)
		if currentKeys[b.key] && !a.prevKeys[b.key] {
			a.session.Handle(b.cmd)
		}
	}

	// Enter: start from the title screen, retry after a death.
	currentKeys[ebiten.KeyEnter] = ebiten.IsKeyPressed(ebiten.KeyEnter)
	if currentKeys[ebiten.KeyEnter] && !a.prevKeys[ebiten.KeyEnter] {
		switch a.session.Phase() {
		case game.PhaseStart:
			a.session.Handle(game.CommandStart)
		case game.PhaseGameOver:
			a.session.Handle(game.CommandRestart)
		}
	}

	// P or Escape: pause/resume the run.
	for _, k := range []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape} {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		if currentKeys[k] && !a.prevKeys[k] {
			switch a.session.Phase() {
			case game.PhasePlaying:
				a.session.Handle(game.CommandPause)
			case game.PhasePaused:
				a.session.Handle(game.CommandResume)
			}
		}
	}

	// R: abandon the current run and start over.
	currentKeys[ebiten.KeyR] = ebiten.IsKeyPressed(ebiten.KeyR)
	if currentKeys[ebiten.KeyR] && !a.prevKeys[ebiten.KeyR] {
		a.session.Handle(game.CommandRestart)
	}

	// H: toggle the HUD panel.
	currentKeys[ebiten.KeyH] = ebiten.IsKeyPressed(ebiten.KeyH)
	if currentKeys[ebiten.KeyH] && !a.prevKeys[ebiten.KeyH] {
		a.showHUD = !a.showHUD
	}

	// F2: copy the run summary to the system clipboard.
	currentKeys[ebiten.KeyF2] = ebiten.IsKeyPressed(ebiten.KeyF2)
	if currentKeys[ebiten.KeyF2] && !a.prevKeys[ebiten.KeyF2] {
		a.copyReport()
	}

	// Sim speed controls: ,=slower, .=faster.
	speeds := []float64{0.5, 1, 2, 4}
	currentKeys[ebiten.KeyComma] = ebiten.IsKeyPressed(ebiten.KeyComma)
	if currentKeys[ebiten.KeyComma] && !a.prevKeys[ebiten.KeyComma] {
		for i, s := range speeds {
			if s >= a.simSpeed && i > 0 {
				a.simSpeed = speeds[i-1]
				break
			}
		}
	}
	currentKeys[ebiten.KeyPeriod] = ebiten.IsKeyPressed(ebiten.KeyPeriod)
	if currentKeys[ebiten.KeyPeriod] && !a.prevKeys[ebiten.KeyPeriod] {
		for i, s := range speeds {
			if s <= a.simSpeed && i < len(speeds)-1 {
				if speeds[i+1] > a.simSpeed {
					a.simSpeed = speeds[i+1]
					break
				}
			}
		}
	}

	a.prevKeys = currentKeys
}

// copyReport puts the current run summary on the system clipboard so a
// run can be pasted into a bug report without transcribing the HUD.
func (a *App) copyReport() {
	if err := clipboard.WriteAll(a.session.Summary().Format()); err != nil {
		a.flash("clipboard copy failed: " + err.Error())
		return
	}
	a.flash("run summary copied to clipboard")
}

func (a *App) flash(msg string) {
	a.flashMsg = msg
	a.flashUntil = time.Now().Add(3 * time.Second)
}

func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}
