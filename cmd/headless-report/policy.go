package main

import (
	"math/rand"

	"github.com/maxman2025/lane-leaper-runner/internal/game"
)

// policyFunc inspects the latest snapshot and optionally emits one
// command for this tick.
type policyFunc func(snap game.Snapshot, rng *rand.Rand) (game.Command, bool)

var policies = map[string]policyFunc{
	"stationary": stationaryPolicy,
	"random":     randomPolicy,
	"dodger":     dodgerPolicy,
}

// stationaryPolicy never moves. It measures how long a run lasts on
// invulnerability windows alone.
func stationaryPolicy(game.Snapshot, *rand.Rand) (game.Command, bool) {
	return 0, false
}

// randomPolicy mashes a random movement key on a fraction of ticks.
func randomPolicy(_ game.Snapshot, rng *rand.Rand) (game.Command, bool) {
	if rng.Float64() >= 0.08 {
		return 0, false
	}
	moves := []game.Command{
		game.CommandJump,
		game.CommandSlide,
		game.CommandMoveLeft,
		game.CommandMoveRight,
	}
	return moves[rng.Intn(len(moves))], true
}

// dodgerPolicy sidesteps obstacles approaching the player's lane. It
// watches a fixed window up the track; when the current lane is blocked
// it moves toward a clear adjacent lane, checking left first, and jumps
// as a last resort when boxed in.
func dodgerPolicy(snap game.Snapshot, _ *rand.Rand) (game.Command, bool) {
	const window = 250.0

	p := snap.Player
	dangerIn := func(lane int, within float64) bool {
		for _, o := range snap.Obstacles {
			if o.Lane != lane {
				continue
			}
			if o.Y >= p.Y {
				continue // already past the feet line
			}
			if p.Y-o.Y <= within {
				return true
			}
		}
		return false
	}

	if !dangerIn(p.Lane, window) {
		return 0, false
	}
	// A lane switch passes through the gap instantly, so the target
	// lane only needs to be clear over a slightly deeper window.
	if p.Lane > 0 && !dangerIn(p.Lane-1, window+100) {
		return game.CommandMoveLeft, true
	}
	if p.Lane < game.LaneCount-1 && !dangerIn(p.Lane+1, window+100) {
		return game.CommandMoveRight, true
	}
	return game.CommandJump, true
}
