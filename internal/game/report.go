package game

import (
	"fmt"
	"strings"
)

// RunSummary condenses one run into the numbers worth comparing across
// seeds. The event counts are read back out of the event log rather
// than kept as parallel counters, so the summary reflects exactly what
// the pipeline recorded.
type RunSummary struct {
	Seed      int64
	Phase     Phase
	Ticks     int
	Distance  float64
	Score     int
	CoinTotal int
	Level     int
	HighScore int
	Health    int

	HitsTaken    int
	ShieldBlocks int
	CoinsPicked  int
	PowersPicked int
	HealsPicked  int

	ObstaclesSpawned int
	CoinsSpawned     int
	PowerUpsSpawned  int

	DeathCause string // e.g. "train id=17"; empty while the run is alive
}

// Summary reads the current run's state and event log into a RunSummary.
func (s *Session) Summary() RunSummary {
	r := RunSummary{
		Seed:      s.seed,
		Phase:     s.phase,
		Ticks:     s.tick,
		Distance:  s.spawner.Distance(),
		Score:     s.score.Score(),
		CoinTotal: s.score.CoinTotal(),
		Level:     s.score.Level(),
		HighScore: s.score.HighScore(),
		Health:    s.player.health,

		HitsTaken:    s.log.CountCategory("collision", "damage"),
		ShieldBlocks: s.log.CountCategory("collision", "shield_block"),
		CoinsPicked:  s.log.CountCategory("pickup", "coin"),
		PowersPicked: s.log.CountCategory("pickup", "power_up"),
		HealsPicked:  s.log.CountCategory("power", "health_restore"),

		ObstaclesSpawned: s.log.CountCategory("spawn", "obstacle"),
		CoinsSpawned:     s.log.CountCategory("spawn", "coin"),
		PowerUpsSpawned:  s.log.CountCategory("spawn", "power_up"),
	}
	if e, ok := s.log.LastOf("collision", "death"); ok {
		r.DeathCause = e.Value
	}
	return r
}

// Format renders the summary as a fixed-layout report block.
func (r RunSummary) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- run summary (seed=%d) ---\n", r.Seed)
	fmt.Fprintf(&b, "phase=%s ticks=%d distance=%.0fpx\n", r.Phase, r.Ticks, r.Distance)
	fmt.Fprintf(&b, "score=%d coins=%d level=%d high=%d health=%d\n",
		r.Score, r.CoinTotal, r.Level, r.HighScore, r.Health)
	fmt.Fprintf(&b, "hits=%d shield_blocks=%d coin_pickups=%d power_pickups=%d heals=%d\n",
		r.HitsTaken, r.ShieldBlocks, r.CoinsPicked, r.PowersPicked, r.HealsPicked)
	fmt.Fprintf(&b, "spawned: obstacles=%d coins=%d power_ups=%d\n",
		r.ObstaclesSpawned, r.CoinsSpawned, r.PowerUpsSpawned)
	if r.DeathCause != "" {
		fmt.Fprintf(&b, "death: %s\n", r.DeathCause)
	}
	return b.String()
}
