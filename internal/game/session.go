package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Session is one simulation instance: the phase machine, the player,
// and the component pipeline, advanced tick by tick by an external
// driver. A Session is not safe for concurrent use; the driver calls
// Handle and AdvanceTick from a single goroutine, which is what keeps
// the within-tick ordering contract airtight.
type Session struct {
	cfg   Config
	clock Clock
	rng   *rand.Rand
	seed  int64
	log   *EventLog

	phase Phase
	epoch uint64
	tick  int

	player  *Player
	reg     *EntityRegistry
	spawner *SpawnScheduler
	score   *ScoreTracker

	pending []Command      // movement commands buffered for the next tick
	tasks   []deferredTask // wall-clock deferred mutations

	highScoreHook func(score int)
}

// SessionOption adjusts a Session during construction.
type SessionOption func(*Session)

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) { s.seed = seed }
}

// WithClock substitutes the wall clock. Tests and headless drivers pass
// a ManualClock so the slide and invulnerability windows track
// simulated time.
func WithClock(c Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

// WithVerboseLog enables per-tick pose logging.
func WithVerboseLog(v bool) SessionOption {
	return func(s *Session) { s.log = NewEventLog(v) }
}

// WithHighScoreHook registers fn to run when a run ends above the
// stored high score. Persistence lives behind this hook, outside the
// core.
func WithHighScoreHook(fn func(score int)) SessionOption {
	return func(s *Session) { s.highScoreHook = fn }
}

// NewSession validates cfg and builds a session in the start phase.
// Invalid tuning fails here, before any tick can run.
func NewSession(cfg Config, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	s := &Session{
		cfg:   cfg,
		clock: SystemClock(),
		seed:  1,
		log:   NewEventLog(false),
		phase: PhaseStart,
	}
	for _, o := range opts {
		o(s)
	}
	s.rng = rand.New(rand.NewSource(s.seed)) // #nosec G404 -- deterministic sim, not crypto
	s.player = newPlayer(cfg)
	s.reg = newEntityRegistry(cfg.MaxParticles)
	s.spawner = &SpawnScheduler{}
	s.score = newScoreTracker()
	return s, nil
}

// Handle routes one command through the phase table. Every
// (phase, command) pair has a defined outcome; the pairs not named
// here are deliberate no-ops. Movement commands arriving while paused
// are dropped, not buffered.
func (s *Session) Handle(cmd Command) {
	switch s.phase {
	case PhaseStart, PhaseGameOver:
		if cmd == CommandStart || cmd == CommandRestart {
			s.beginRun()
		}
	case PhasePlaying:
		switch {
		case cmd == CommandPause:
			s.setPhase(PhasePaused)
		case cmd == CommandRestart:
			s.beginRun() // instant retry; stale timers die on the epoch check
		case cmd.isMovement():
			s.pending = append(s.pending, cmd)
		}
	case PhasePaused:
		if cmd == CommandResume {
			s.setPhase(PhasePlaying)
		}
	}
}

// AdvanceTick runs one simulation step. Outside the playing phase it
// does nothing, so pausing freezes entities, the power-up countdown,
// and the score exactly where they were. The step order below is a
// strict contract; reordering it changes observable behavior.
func (s *Session) AdvanceTick() {
	if s.phase != PhasePlaying {
		return
	}
	s.tick++
	now := s.clock.Now()

	// 1. DEFERRED TIMERS
	s.applyDueTasks(now)

	// 2. PHYSICS
	s.applyPending(now)
	s.player.advancePose(s.cfg)

	// 3. ENTITY ADVANCE
	s.reg.Advance(s.cfg)

	// 4. SPAWN
	s.runSpawns()

	// 5. COLLISION
	died := s.resolveCollisions(now)

	// 6. POWER-UP COUNTDOWN
	s.tickPowerUp()

	// 7. SCORE
	s.score.Update(s.spawner.Distance())

	// 8. TERMINAL CHECK
	if died {
		s.enterGameOver()
		return
	}

	s.log.AddVerbose(s.tick, "player", "pose",
		fmt.Sprintf("lane=%d jump=%.1f slide=%v hp=%d",
			s.player.lane, s.player.jumpHeight, s.player.isSliding, s.player.health), 0)
}

// applyPending consumes the buffered movement commands in arrival
// order, then clears the buffer.
func (s *Session) applyPending(now time.Time) {
	for _, cmd := range s.pending {
		switch cmd {
		case CommandMoveLeft:
			s.player.moveLane(s.cfg, -1)
			s.log.AddVerbose(s.tick, "player", "lane",
				fmt.Sprintf("lane=%d", s.player.lane), float64(s.player.lane))
		case CommandMoveRight:
			s.player.moveLane(s.cfg, +1)
			s.log.AddVerbose(s.tick, "player", "lane",
				fmt.Sprintf("lane=%d", s.player.lane), float64(s.player.lane))
		case CommandJump:
			if s.player.tryJump() {
				s.log.Add(s.tick, "player", "jump", "", 0)
			}
		case CommandSlide:
			s.startSlide(now)
		}
	}
	s.pending = s.pending[:0]
}

// startSlide drops the player into the slide pose and arms the
// wall-clock clear. Sliding again mid-slide re-arms the deadline.
func (s *Session) startSlide(now time.Time) {
	s.player.isSliding = true
	s.scheduleTask(deferredSlideClear, now.Add(s.cfg.slideWindow()))
	s.log.Add(s.tick, "player", "slide", "", 0)
}

// beginRun resets everything run-scoped and enters playing. The epoch
// bump invalidates any deferred timer still in flight from the
// previous run: a mid-run restart leaves its slide or invulnerability
// clear armed, and applyDueTasks drops it on the mismatch instead of
// letting it mutate the new run's player.
func (s *Session) beginRun() {
	s.epoch++
	s.pending = s.pending[:0]
	s.log.reset()
	s.tick = 0
	s.player = newPlayer(s.cfg)
	s.reg.Reset()
	s.spawner.Reset()
	s.score.ResetRun()
	from := s.phase
	s.phase = PhasePlaying
	s.log.Add(s.tick, "phase", "change", fmt.Sprintf("%s → %s", from, s.phase), 0)
}

// enterGameOver ends the run: outstanding timers are invalidated, the
// high score is settled, and the hook fires if the run beat it.
func (s *Session) enterGameOver() {
	s.dropTasks()
	s.pending = s.pending[:0]
	if s.score.Finalize() {
		s.log.Add(s.tick, "score", "new_high",
			fmt.Sprintf("score=%d", s.score.Score()), float64(s.score.Score()))
		if s.highScoreHook != nil {
			s.highScoreHook(s.score.Score())
		}
	}
	s.setPhase(PhaseGameOver)
}

func (s *Session) setPhase(to Phase) {
	if to == s.phase {
		return
	}
	from := s.phase
	s.phase = to
	s.log.Add(s.tick, "phase", "change", fmt.Sprintf("%s → %s", from, to), 0)
}

// RunTicks advances the session n ticks.
func (s *Session) RunTicks(n int) {
	for i := 0; i < n; i++ {
		s.AdvanceTick()
	}
}

// RunUntil advances up to maxTicks, stopping early when predicate
// returns true. Returns the tick at which it was satisfied, or -1.
func (s *Session) RunUntil(predicate func(*Session) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		s.AdvanceTick()
		if predicate(s) {
			return s.tick
		}
	}
	return -1
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// CurrentTick returns the number of playing ticks since the run began.
func (s *Session) CurrentTick() int { return s.tick }

// Log returns the session's event log.
func (s *Session) Log() *EventLog { return s.log }

// Config returns the tuning the session was built with.
func (s *Session) Config() Config { return s.cfg }

// Seed returns the RNG seed the session was built with.
func (s *Session) Seed() int64 { return s.seed }
