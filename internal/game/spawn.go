package game

import (
	"fmt"
	"math"
)

// SpawnScheduler owns the scroll-distance accumulator and decides when
// a new obstacle, coin, or power-up is due. Each category fires when
// the accumulator crosses a multiple of its interval, so the cadence
// holds for any scroll speed, not just speeds that divide the
// intervals evenly.
type SpawnScheduler struct {
	distance float64
}

// spawnDue lists the categories whose interval was crossed this tick.
type spawnDue struct {
	obstacle bool
	coin     bool
	powerUp  bool
}

// Advance accrues one tick of scroll distance and reports which spawns
// became due on the crossing.
func (sp *SpawnScheduler) Advance(cfg Config) spawnDue {
	prev := sp.distance
	sp.distance += cfg.ScrollSpeed
	return spawnDue{
		obstacle: crossedInterval(prev, sp.distance, cfg.ObstacleIntervalPx),
		coin:     crossedInterval(prev, sp.distance, cfg.CoinIntervalPx),
		powerUp:  crossedInterval(prev, sp.distance, cfg.PowerUpIntervalPx),
	}
}

// crossedInterval reports whether the accumulator passed a multiple of
// interval between prev and next. A tick that jumps across several
// multiples still yields a single spawn.
func crossedInterval(prev, next, interval float64) bool {
	return math.Floor(next/interval) > math.Floor(prev/interval)
}

// Distance returns the accumulated scroll distance in pixels.
func (sp *SpawnScheduler) Distance() float64 { return sp.distance }

// Reset zeroes the accumulator for a new run.
func (sp *SpawnScheduler) Reset() { sp.distance = 0 }

// runSpawns advances the scheduler and materializes whatever came due,
// each on a uniformly random lane with a uniformly random kind.
func (s *Session) runSpawns() {
	due := s.spawner.Advance(s.cfg)
	if due.obstacle {
		o := s.reg.SpawnObstacle(s.cfg, s.rng.Intn(LaneCount),
			ObstacleKind(s.rng.Intn(int(obstacleKindCount))))
		s.log.Add(s.tick, "spawn", "obstacle",
			fmt.Sprintf("%s lane=%d id=%d", o.kind, o.lane, o.id), float64(o.id))
	}
	if due.coin {
		c := s.reg.SpawnCoin(s.cfg, s.rng.Intn(LaneCount),
			CoinKind(s.rng.Intn(int(coinKindCount))))
		s.log.Add(s.tick, "spawn", "coin",
			fmt.Sprintf("%s lane=%d id=%d", c.kind, c.lane, c.id), float64(c.id))
	}
	if due.powerUp {
		p := s.reg.SpawnPowerUp(s.cfg, s.rng.Intn(LaneCount),
			PowerUpKind(s.rng.Intn(int(powerUpKindCount))))
		s.log.Add(s.tick, "spawn", "power_up",
			fmt.Sprintf("%s lane=%d id=%d", p.kind, p.lane, p.id), float64(p.id))
	}
}
