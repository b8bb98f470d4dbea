// Command headless-report batch-runs the simulation without a window
// and prints per-run and aggregate statistics. A scripted autopilot
// stands in for the player, so the full pipeline (spawning, collision,
// scoring, timers) is exercised at native speed.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/maxman2025/lane-leaper-runner/internal/game"
)

// runStats collects what one headless run produced.
type runStats struct {
	runIndex int
	seed     int64

	summary game.RunSummary

	firstHitTick   int
	firstCoinTick  int
	firstPowerTick int

	commandsSent int
	survivedCap  bool // still alive when the tick cap hit
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var policyName string
	var configPath string

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 3600, "tick cap per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&policyName, "policy", "dodger", "autopilot policy: stationary, random, dodger")
	flag.StringVar(&configPath, "config", "", "path to a YAML tuning override file")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	decide, ok := policies[policyName]
	if !ok {
		fmt.Printf("error: unknown policy %q (supported: stationary, random, dodger)\n", policyName)
		return
	}

	cfg := game.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = game.LoadConfig(configPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	fmt.Printf("=== Headless Runner Report ===\n")
	fmt.Printf("policy=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		policyName, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runOne(i+1, seed, ticks, cfg, decide)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runOne drives a single session to death or the tick cap. The manual
// clock advances one tick interval per tick, so the wall-clock windows
// track simulated time exactly as the interactive game tracks real
// time.
func runOne(runIndex int, seed int64, ticks int, cfg game.Config, decide policyFunc) (runStats, error) {
	clk := game.NewManualClock(time.Unix(0, 0))
	s, err := game.NewSession(cfg, game.WithSeed(seed), game.WithClock(clk))
	if err != nil {
		return runStats{}, err
	}

	// The policy rolls its own RNG stream so its choices never perturb
	// the spawn sequence.
	rng := rand.New(rand.NewSource(seed ^ 0x5DEECE66D)) // #nosec G404 -- autopilot, not crypto

	s.Handle(game.CommandStart)
	interval := time.Duration(cfg.TickMs) * time.Millisecond
	commands := 0
	for i := 0; i < ticks; i++ {
		if s.Phase() == game.PhaseGameOver {
			break
		}
		if cmd, ok := decide(s.Snapshot(), rng); ok {
			s.Handle(cmd)
			commands++
		}
		clk.Advance(interval)
		s.AdvanceTick()
	}

	entries := s.Log().Entries()
	return runStats{
		runIndex:       runIndex,
		seed:           seed,
		summary:        s.Summary(),
		firstHitTick:   firstTick(entries, "collision", "damage"),
		firstCoinTick:  firstTick(entries, "pickup", "coin"),
		firstPowerTick: firstTick(entries, "pickup", "power_up"),
		commandsSent:   commands,
		survivedCap:    s.Phase() != game.PhaseGameOver,
	}, nil
}

// firstTick returns the tick of the first log entry matching the
// category and key, or -1 if none was recorded.
func firstTick(entries []game.EventLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

// classify labels a finished run for the aggregate verdict line.
func classify(rs runStats) string {
	switch {
	case rs.summary.DeathCause == "" && rs.summary.HitsTaken == 0:
		return "clean"
	case rs.summary.DeathCause == "":
		return "survived"
	default:
		return "died"
	}
}

func printRun(rs runStats) {
	sum := rs.summary
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("verdict=%s ticks=%d distance=%.0fpx death=%q\n",
		classify(rs), sum.Ticks, sum.Distance, sum.DeathCause)
	fmt.Printf("score: score=%d level=%d coins=%d high=%d health=%d\n",
		sum.Score, sum.Level, sum.CoinTotal, sum.HighScore, sum.Health)
	fmt.Printf("events: hits=%d shield_blocks=%d coin_pickups=%d power_pickups=%d heals=%d commands=%d\n",
		sum.HitsTaken, sum.ShieldBlocks, sum.CoinsPicked, sum.PowersPicked, sum.HealsPicked, rs.commandsSent)
	fmt.Printf("spawns: obstacles=%d coins=%d power_ups=%d\n",
		sum.ObstaclesSpawned, sum.CoinsSpawned, sum.PowerUpsSpawned)
	fmt.Printf("first_markers: hit=%s coin=%s power=%s\n",
		tickString(rs.firstHitTick), tickString(rs.firstCoinTick), tickString(rs.firstPowerTick))
	fmt.Println()
}

func printAggregate(all []runStats) {
	clean := 0
	survived := 0
	died := 0
	totalScore := 0
	bestScore := 0
	totalTicks := 0
	totalHits := 0
	totalCoins := 0
	totalPowers := 0
	totalCommands := 0
	var totalDistance float64
	hitTicks := make([]int, 0, len(all))

	for _, rs := range all {
		switch classify(rs) {
		case "clean":
			clean++
		case "survived":
			survived++
		default:
			died++
		}
		totalScore += rs.summary.Score
		if rs.summary.Score > bestScore {
			bestScore = rs.summary.Score
		}
		totalTicks += rs.summary.Ticks
		totalHits += rs.summary.HitsTaken
		totalCoins += rs.summary.CoinsPicked
		totalPowers += rs.summary.PowersPicked
		totalCommands += rs.commandsSent
		totalDistance += rs.summary.Distance
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
	}

	n := len(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d verdicts: clean=%d survived=%d died=%d\n", n, clean, survived, died)
	fmt.Printf("score: avg=%.1f best=%d\n", avg(totalScore, n), bestScore)
	fmt.Printf("avg_per_run: ticks=%.1f distance=%.0fpx hits=%.1f coin_pickups=%.1f power_pickups=%.1f commands=%.1f\n",
		avg(totalTicks, n), totalDistance/float64(n), avg(totalHits, n),
		avg(totalCoins, n), avg(totalPowers, n), avg(totalCommands, n))
	fmt.Printf("first_hit_avg_tick=%s\n", avgTickString(hitTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func tickString(v int) string {
	if v < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", v)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
