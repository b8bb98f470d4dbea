package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/maxman2025/lane-leaper-runner/internal/game"
)

// markerSpacing is the vertical gap between the faint cross-track lines
// that make the scroll visible.
const markerSpacing = 80.0

// obstacleColors maps each obstacle kind to its body colour.
var obstacleColors = map[game.ObstacleKind]color.RGBA{
	game.ObstacleBarrier: {R: 215, G: 125, B: 45, A: 255}, // hazard orange
	game.ObstacleTrain:   {R: 70, G: 95, B: 140, A: 255},  // steel blue
	game.ObstacleTunnel:  {R: 105, G: 100, B: 95, A: 255}, // concrete grey
	game.ObstacleSpike:   {R: 190, G: 190, B: 200, A: 255}, // bare metal
	game.ObstacleLaser:   {R: 235, G: 60, B: 60, A: 255},  // beam red
}

// coinColors maps each coin kind to its disc colour.
var coinColors = map[game.CoinKind]color.RGBA{
	game.CoinNormal:  {R: 200, G: 150, B: 70, A: 255},  // bronze
	game.CoinGold:    {R: 240, G: 205, B: 70, A: 255},  // gold
	game.CoinDiamond: {R: 150, G: 230, B: 245, A: 255}, // ice blue
}

// powerUpColors maps each power-up kind to its pickup colour.
var powerUpColors = map[game.PowerUpKind]color.RGBA{
	game.PowerUpShield: {R: 80, G: 200, B: 225, A: 255},  // cyan
	game.PowerUpSpeed:  {R: 235, G: 235, B: 110, A: 255}, // yellow
	game.PowerUpMagnet: {R: 190, G: 110, B: 230, A: 255}, // violet
	game.PowerUpHealth: {R: 110, G: 220, B: 120, A: 255}, // green
}

// particleColors maps each particle tint to its square colour.
var particleColors = map[game.ParticleTint]color.RGBA{
	game.TintDamage:  {R: 230, G: 85, B: 60, A: 255},
	game.TintShield:  {R: 95, G: 210, B: 230, A: 255},
	game.TintCoin:    {R: 240, G: 205, B: 85, A: 255},
	game.TintPowerUp: {R: 175, G: 125, B: 230, A: 255},
	game.TintHeal:    {R: 110, G: 220, B: 120, A: 255},
}

// bannerFace is the base face for the big phase banners; it is scaled
// up at draw time, so the pixel look is intentional.
var bannerFace = text.NewGoXFace(basicfont.Face7x13)

func (a *App) Draw(screen *ebiten.Image) {
	snap := a.session.Snapshot()

	// Window background: very dark, outside the track.
	screen.Fill(color.RGBA{R: 13, G: 12, B: 16, A: 255})

	// Render the track to worldBuf at (0,0) origin, then blit at the
	// border offset. The blit clips the spawn margin above y=0.
	a.worldBuf.Clear()
	a.drawTrack(a.worldBuf, snap)

	var blit ebiten.DrawImageOptions
	blit.GeoM.Translate(float64(a.offX), float64(a.offY))
	screen.DrawImage(a.worldBuf, &blit)

	// Track border frame (drawn at screen coords).
	ox := float32(a.offX)
	oy := float32(a.offY)
	tw := float32(a.trackW)
	th := float32(a.trackH)
	vector.StrokeRect(screen, ox-1, oy-1, tw+2, th+2, 2.0, color.RGBA{R: 95, G: 85, B: 120, A: 255}, false)
	vector.StrokeRect(screen, ox-3, oy-3, tw+6, th+6, 1.0, color.RGBA{R: 55, G: 50, B: 75, A: 100}, false)

	// Event feed panel (screen coords).
	feedX := a.offX + a.trackW + a.offX
	a.feed.Draw(screen, feedX, a.height)

	if a.showHUD {
		a.drawHUD(screen, snap)
	}

	a.drawBanner(screen, snap)

	if a.flashMsg != "" && time.Now().Before(a.flashUntil) {
		ebitenutil.DebugPrintAt(screen, a.flashMsg, a.offX+6, a.height-18)
	}
}

// drawTrack renders the scrolling road and everything on it.
func (a *App) drawTrack(dst *ebiten.Image, snap game.Snapshot) {
	// Road surface.
	dst.Fill(color.RGBA{R: 30, G: 28, B: 36, A: 255})

	laneW := a.cfg.TrackWidth / game.LaneCount

	// Cross-track markers, offset by the scroll so the road moves.
	offset := math.Mod(snap.Distance, markerSpacing)
	for y := -offset; y < a.cfg.TrackHeight; y += markerSpacing {
		vector.StrokeLine(dst, 0, float32(y), float32(a.cfg.TrackWidth), float32(y),
			1.0, color.RGBA{R: 255, G: 255, B: 255, A: 14}, false)
	}

	// Lane divider lines.
	for lane := 1; lane < game.LaneCount; lane++ {
		x := float32(laneW * float64(lane))
		vector.StrokeLine(dst, x, 0, x, float32(a.cfg.TrackHeight),
			1.0, color.RGBA{R: 120, G: 115, B: 140, A: 90}, false)
	}

	// Draw order: pickups under obstacles, player over both, particles on top.
	for _, c := range snap.Coins {
		a.drawCoin(dst, c)
	}
	for _, p := range snap.PowerUps {
		a.drawPowerUp(dst, p)
	}
	for _, o := range snap.Obstacles {
		a.drawObstacle(dst, o, snap.Tick)
	}
	a.drawPlayer(dst, snap)
	for _, pt := range snap.Particles {
		drawParticle(dst, pt)
	}
}

func (a *App) drawObstacle(dst *ebiten.Image, o game.ObstacleSnapshot, tick int) {
	body := obstacleColors[o.Kind]
	// X is the lane center, Y the top edge.
	x := float32(o.X - o.Width/2)
	y := float32(o.Y)
	w := float32(o.Width)
	h := float32(o.Height)

	switch o.Kind {
	case game.ObstacleBarrier:
		vector.FillRect(dst, x, y, w, h, body, false)
		// Hazard stripes.
		for i := 0; i < 3; i++ {
			sx := x + 10 + float32(i)*(w/3)
			vector.FillRect(dst, sx, y+4, 14, h-8, color.RGBA{R: 245, G: 240, B: 225, A: 220}, false)
		}
		vector.StrokeRect(dst, x, y, w, h, 2.0, color.RGBA{R: 120, G: 65, B: 20, A: 255}, false)

	case game.ObstacleTrain:
		vector.FillRect(dst, x, y, w, h, body, false)
		// Roof band and windows.
		vector.FillRect(dst, x, y, w, 14, color.RGBA{R: 45, G: 62, B: 95, A: 255}, false)
		for i := 0; i < 3; i++ {
			wx := x + 12 + float32(i)*((w-24)/3)
			vector.FillRect(dst, wx, y+24, (w-24)/3-8, 26, color.RGBA{R: 190, G: 215, B: 235, A: 255}, false)
		}
		// Wheels.
		vector.FillCircle(dst, x+w*0.25, y+h-4, 9, color.RGBA{R: 25, G: 25, B: 30, A: 255}, false)
		vector.FillCircle(dst, x+w*0.75, y+h-4, 9, color.RGBA{R: 25, G: 25, B: 30, A: 255}, false)
		vector.StrokeRect(dst, x, y, w, h, 2.0, color.RGBA{R: 35, G: 48, B: 75, A: 255}, false)

	case game.ObstacleTunnel:
		vector.FillRect(dst, x, y, w, h, body, false)
		// Dark opening.
		vector.FillRect(dst, x+14, y+14, w-28, h-14, color.RGBA{R: 18, G: 16, B: 20, A: 255}, false)
		vector.StrokeRect(dst, x, y, w, h, 2.0, color.RGBA{R: 70, G: 66, B: 62, A: 255}, false)

	case game.ObstacleSpike:
		// Spinning blade: a rotated square outline around the center.
		cx := float32(o.X)
		cy := y + h/2
		r := float64(w) / 2
		var px, py [4]float32
		for k := 0; k < 4; k++ {
			ang := o.Rotation + float64(k)*math.Pi/2
			px[k] = cx + float32(r*math.Cos(ang))
			py[k] = cy + float32(r*math.Sin(ang))
		}
		for k := 0; k < 4; k++ {
			n := (k + 1) % 4
			vector.StrokeLine(dst, px[k], py[k], px[n], py[n], 3.0, body, false)
		}
		vector.FillCircle(dst, cx, cy, 5, color.RGBA{R: 120, G: 120, B: 130, A: 255}, false)

	case game.ObstacleLaser:
		// Emitter posts plus a pulsing beam between them.
		glowA := uint8(70)
		if (tick/4)%2 == 0 {
			glowA = 110
		}
		vector.FillRect(dst, x, y-4, w, h+8, color.RGBA{R: 235, G: 60, B: 60, A: glowA}, false)
		vector.FillRect(dst, x, y+h/2-2, w, 4, body, false)
		vector.FillCircle(dst, x, y+h/2, 7, color.RGBA{R: 60, G: 60, B: 70, A: 255}, false)
		vector.FillCircle(dst, x+w, y+h/2, 7, color.RGBA{R: 60, G: 60, B: 70, A: 255}, false)
	}
}

func (a *App) drawCoin(dst *ebiten.Image, c game.CoinSnapshot) {
	if c.Collected {
		return
	}
	const r = 14 // coin radius
	cx := float32(c.X)
	cy := float32(c.Y) + r
	col := coinColors[c.Kind]
	vector.FillCircle(dst, cx, cy, r, col, false)
	vector.FillCircle(dst, cx, cy, r-4, color.RGBA{
		R: col.R / 2, G: col.G / 2, B: col.B / 2, A: 255}, false)
	// Spin: a center bar whose width follows the rotation.
	bw := float32(math.Abs(math.Cos(c.Rotation)))*(r-5) + 2
	vector.FillRect(dst, cx-bw/2, cy-r+5, bw, 2*r-10, col, false)
}

func (a *App) drawPowerUp(dst *ebiten.Image, p game.PowerUpSnapshot) {
	if p.Collected {
		return
	}
	const s = 36 // pickup box size
	x := float32(p.X) - s/2
	y := float32(p.Y)
	col := powerUpColors[p.Kind]
	vector.FillRect(dst, x, y, s, s, color.RGBA{R: col.R / 3, G: col.G / 3, B: col.B / 3, A: 255}, false)
	vector.StrokeRect(dst, x, y, s, s, 2.0, col, false)

	// Kind glyph in the box center.
	glyph := map[game.PowerUpKind]string{
		game.PowerUpShield: "S",
		game.PowerUpSpeed:  ">",
		game.PowerUpMagnet: "M",
		game.PowerUpHealth: "+",
	}[p.Kind]
	ebitenutil.DebugPrintAt(dst, glyph, int(p.X)-3, int(p.Y)+10)
}

func drawParticle(dst *ebiten.Image, pt game.ParticleSnapshot) {
	col := particleColors[pt.Tint]
	life := pt.Life
	if life < 0 {
		life = 0
	}
	if life > 1 {
		life = 1
	}
	col.A = uint8(255 * life)
	sz := float32(pt.Size)
	vector.FillRect(dst, float32(pt.X)-sz/2, float32(pt.Y)-sz/2, sz, sz, col, false)
}

func (a *App) drawPlayer(dst *ebiten.Image, snap game.Snapshot) {
	p := snap.Player

	// Ground shadow stays on the feet line while the body lifts.
	shadowW := float32(p.Width) + 6
	vector.FillRect(dst, float32(p.X)-shadowW/2, float32(p.Y)-2, shadowW, 4,
		color.RGBA{R: 0, G: 0, B: 0, A: 110}, false)

	// Y is the feet line; the drawn top edge rises with the jump.
	x := float32(p.X - p.Width/2)
	y := float32(p.Y - p.JumpHeight - p.Height)
	w := float32(p.Width)
	h := float32(p.Height)

	body := color.RGBA{R: 90, G: 160, B: 235, A: 255} // runner blue
	trim := color.RGBA{R: 230, G: 240, B: 250, A: 255}

	// Invulnerability blink: outline-only on alternating tick groups.
	if p.IsInvulnerable && (snap.Tick/3)%2 == 0 {
		vector.StrokeRect(dst, x, y, w, h, 2.0, body, false)
	} else {
		vector.FillRect(dst, x, y, w, h, body, false)
		// Visor band sits lower in the slide pose.
		vector.FillRect(dst, x+4, y+h*0.22, w-8, 6, trim, false)
		vector.StrokeRect(dst, x, y, w, h, 1.0, color.RGBA{R: 40, G: 80, B: 140, A: 255}, false)
	}

	// Active shield ring.
	if p.PowerUp != nil && p.PowerUp.Kind == game.PowerUpShield {
		cx := float32(p.X)
		cy := y + h/2
		vector.StrokeCircle(dst, cx, cy, w, 2.0, color.RGBA{R: 95, G: 210, B: 230, A: 200}, false)
	}
}

func (a *App) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	speedStr := "1x"
	if a.simSpeed == 2 {
		speedStr = "2x"
	} else if a.simSpeed == 4 {
		speedStr = "4x"
	} else if a.simSpeed != 1 {
		speedStr = fmt.Sprintf("%.1fx", a.simSpeed)
	}

	powerStr := "-"
	if pu := snap.Player.PowerUp; pu != nil {
		powerStr = fmt.Sprintf("%s %.1fs", pu.Kind, float64(pu.RemainingMs)/1000)
	}

	lines := []string{
		fmt.Sprintf("SCORE %05d   HI %05d", snap.Score, snap.HighScore),
		fmt.Sprintf("LVL %d   COINS %d", snap.Level, snap.CoinTotal),
		fmt.Sprintf("HP %d/%d", snap.Player.Health, snap.Player.MaxHealth),
		fmt.Sprintf("POWER %s", powerStr),
		fmt.Sprintf("SIM %s  ,/. speed  P pause", speedStr),
		"[Enter] start  [R] restart",
		"[F2] copy report  [H] hud",
	}

	// Render into hudBuf at 1x, then scale up.
	const lineH = 12 // debug font line height at 1x
	const charW = 6  // debug font char width at 1x
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2 + 8) // extra row for the health bar

	bx := float32(4)
	by := float32(4)

	a.hudBuf.Clear()
	// Panel background.
	vector.FillRect(a.hudBuf, bx, by, boxW, boxH,
		color.RGBA{R: 8, G: 8, B: 12, A: 215}, false)
	vector.StrokeRect(a.hudBuf, bx, by, boxW, boxH,
		1.0, color.RGBA{R: 75, G: 70, B: 105, A: 180}, false)
	// Inner highlight line along top edge.
	vector.StrokeLine(a.hudBuf, bx+1, by+1, bx+boxW-1, by+1,
		1.0, color.RGBA{R: 110, G: 100, B: 150, A: 80}, false)

	for i, line := range lines {
		tx := int(bx) + padX
		ty := int(by) + padY + i*lineH
		ebitenutil.DebugPrintAt(a.hudBuf, line, tx, ty)
	}

	// Health bar under the text block.
	barY := by + float32(len(lines))*lineH + padY + 2
	barW := boxW - padX*2
	frac := float32(0)
	if snap.Player.MaxHealth > 0 {
		frac = float32(snap.Player.Health) / float32(snap.Player.MaxHealth)
	}
	barCol := color.RGBA{R: 100, G: 210, B: 110, A: 255} // green
	if frac <= 0.25 {
		barCol = color.RGBA{R: 225, G: 80, B: 70, A: 255} // red
	} else if frac <= 0.5 {
		barCol = color.RGBA{R: 230, G: 190, B: 70, A: 255} // amber
	}
	vector.FillRect(a.hudBuf, bx+padX, barY, barW, 5, color.RGBA{R: 30, G: 30, B: 38, A: 255}, false)
	vector.FillRect(a.hudBuf, bx+padX, barY, barW*frac, 5, barCol, false)

	// Blit hudBuf onto screen at hudScale.
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(hudScale), float64(hudScale))
	screen.DrawImage(a.hudBuf, opts)
}

// drawBanner renders the big center text for the non-running phases.
func (a *App) drawBanner(screen *ebiten.Image, snap game.Snapshot) {
	if snap.Phase == game.PhasePlaying {
		return
	}

	ox := float32(a.offX)
	oy := float32(a.offY)
	// Dim the track under the banner.
	vector.FillRect(screen, ox, oy, float32(a.trackW), float32(a.trackH),
		color.RGBA{R: 0, G: 0, B: 0, A: 140}, false)

	cx := float64(a.offX) + float64(a.trackW)/2
	cy := float64(a.offY) + float64(a.trackH)*0.38

	switch snap.Phase {
	case game.PhaseStart:
		bannerText(screen, "LANE LEAPER", cx, cy, 4, color.RGBA{R: 235, G: 235, B: 245, A: 255})
		bannerText(screen, "Enter to run", cx, cy+52, 2, color.RGBA{R: 170, G: 170, B: 190, A: 255})
		bannerText(screen, "arrows to steer, up jumps, down slides", cx, cy+84, 1, color.RGBA{R: 140, G: 140, B: 160, A: 255})

	case game.PhasePaused:
		bannerText(screen, "PAUSED", cx, cy, 4, color.RGBA{R: 235, G: 235, B: 245, A: 255})
		bannerText(screen, "P to resume", cx, cy+52, 2, color.RGBA{R: 170, G: 170, B: 190, A: 255})

	case game.PhaseGameOver:
		bannerText(screen, "GAME OVER", cx, cy, 4, color.RGBA{R: 235, G: 100, B: 90, A: 255})
		bannerText(screen, fmt.Sprintf("score %d   best %d", snap.Score, snap.HighScore),
			cx, cy+52, 2, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		bannerText(screen, "Enter to retry", cx, cy+84, 2, color.RGBA{R: 170, G: 170, B: 190, A: 255})
	}
}

// bannerText draws s centred on (cx, cy), scaled up from the 7x13 base
// face. The chunky pixels match the rest of the debug-font UI.
func bannerText(dst *ebiten.Image, s string, cx, cy, scale float64, col color.Color) {
	w, h := text.Measure(s, bannerFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-w*scale/2, cy-h*scale/2)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(dst, s, bannerFace, op)
}
