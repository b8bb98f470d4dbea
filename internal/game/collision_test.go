package game

import (
	"strings"
	"testing"
)

func TestDamage_FirstHitAtFullHealth(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	placeObstacle(s, 1, ObstacleBarrier)
	stepTicks(s, clk, 1)

	if got, want := s.player.health, s.cfg.MaxHealth-s.cfg.DamageAmount; got != want {
		t.Errorf("health = %d after first hit, want %d", got, want)
	}
	if !s.player.isInvulnerable {
		t.Error("player not invulnerable after taking damage")
	}
	if n := s.log.CountCategory("collision", "damage"); n != 1 {
		t.Errorf("damage events = %d, want 1", n)
	}
	if len(s.reg.particles) != burstParticleCount {
		t.Errorf("particles = %d after damage burst, want %d", len(s.reg.particles), burstParticleCount)
	}
	if e, ok := s.log.LastOf("collision", "damage"); !ok || e.NumVal != float64(s.cfg.DamageAmount) {
		t.Errorf("damage entry NumVal = %v, want %d", e.NumVal, s.cfg.DamageAmount)
	}
}

func TestInvulnerability_SuppressesFurtherDamage(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	placeObstacle(s, 1, ObstacleBarrier)
	stepTicks(s, clk, 1)
	healthAfterFirst := s.player.health

	// Fresh overlapping obstacles every tick; the 2000ms window is far
	// longer than these few ticks, so none of them may land.
	for i := 0; i < 10; i++ {
		placeObstacle(s, 1, ObstacleBarrier)
		stepTicks(s, clk, 1)
	}

	if s.player.health != healthAfterFirst {
		t.Errorf("health = %d, invulnerability leaked damage (want %d)", s.player.health, healthAfterFirst)
	}
	if n := s.log.CountCategory("collision", "damage"); n != 1 {
		t.Errorf("damage events = %d, want 1", n)
	}
}

func TestShield_BlocksWithoutDamageAndBursts(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.applyPowerUp(PowerUpShield)

	// Two overlapping obstacles, one tick: the first block ends the
	// obstacle scan, so exactly one outcome is recorded.
	placeObstacle(s, 1, ObstacleBarrier)
	placeObstacle(s, 1, ObstacleSpike)
	stepTicks(s, clk, 1)

	if s.player.health != s.cfg.MaxHealth {
		t.Errorf("health = %d behind an active shield, want %d", s.player.health, s.cfg.MaxHealth)
	}
	if s.player.isInvulnerable {
		t.Error("shield block must not start an invulnerability window")
	}
	if n := s.log.CountCategory("collision", "shield_block"); n != 1 {
		t.Errorf("shield_block events = %d, want exactly 1 per tick", n)
	}
	if len(s.reg.particles) != burstParticleCount {
		t.Errorf("particles = %d after shield burst, want %d", len(s.reg.particles), burstParticleCount)
	}
	if kind, ok := s.player.powerKind(); !ok || kind != PowerUpShield {
		t.Error("shield slot consumed by blocking; it should persist until expiry")
	}
}

func TestLethalHit_EndsRunAndSkipsPickups(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.player.health = s.cfg.DamageAmount
	s.spawner.distance = 995

	placeObstacle(s, 1, ObstacleBarrier)
	placeCoin(s, 1, CoinDiamond)
	stepTicks(s, clk, 1)

	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s after lethal hit, want gameOver", s.Phase())
	}
	if s.player.health != 0 {
		t.Errorf("health = %d, want 0", s.player.health)
	}
	if !s.log.HasEntry("collision", "death", "barrier") {
		t.Error("death event missing or not attributed to the barrier")
	}
	if s.score.CoinTotal() != 0 {
		t.Error("coin collected on the death tick; lethal hit must stop the scans")
	}
	// The death tick still runs the score step before the terminal check.
	if got := s.score.Score(); got != 100 {
		t.Errorf("score = %d on the death tick, want 100", got)
	}
	if sum := s.Summary(); !strings.Contains(sum.DeathCause, "barrier") {
		t.Errorf("summary death cause = %q, want the barrier", sum.DeathCause)
	}
}

func TestDeath_AtThresholdUpdatesHighScore(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.player.health = s.cfg.DamageAmount
	s.spawner.distance = 2994

	placeObstacle(s, 1, ObstacleTrain)
	stepTicks(s, clk, 1)

	if s.Phase() != PhaseGameOver {
		t.Fatalf("phase = %s, want gameOver", s.Phase())
	}
	if got := s.score.HighScore(); got != 300 {
		t.Errorf("high score = %d after fatal run, want 300", got)
	}
	if !s.log.HasEntry("score", "new_high", "") {
		t.Error("new_high event not logged")
	}
}

func TestCoinPickup_DiamondAddsTenIdempotently(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	bystander := s.reg.SpawnObstacle(s.cfg, 0, ObstacleSpike) // far away, must stay untouched
	other := s.reg.SpawnCoin(s.cfg, 2, CoinNormal)            // not overlapping

	c := placeCoin(s, 1, CoinDiamond)
	stepTicks(s, clk, 1)

	if s.score.CoinTotal() != 10 {
		t.Errorf("coin total = %d, want 10", s.score.CoinTotal())
	}
	if !c.collected {
		t.Error("coin not marked collected")
	}
	if len(s.reg.coins) != 2 {
		t.Errorf("coins in registry = %d; collection must not remove on pickup", len(s.reg.coins))
	}

	// The coin is still overlapping next tick; collected pickups must
	// not re-score or re-burst.
	stepTicks(s, clk, 1)
	if s.score.CoinTotal() != 10 {
		t.Errorf("coin total = %d after re-overlap, want 10", s.score.CoinTotal())
	}
	if n := s.log.CountCategory("pickup", "coin"); n != 1 {
		t.Errorf("coin pickup events = %d, want 1", n)
	}

	if bystander.y != spawnY+2*s.cfg.ScrollSpeed {
		t.Error("unrelated obstacle disturbed by the pickup")
	}
	if other.collected {
		t.Error("non-overlapping coin was collected")
	}
}

func TestPowerUp_OverwriteReplacesKindAndTime(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())

	placePowerUp(s, 1, PowerUpShield)
	stepTicks(s, clk, 1)
	if kind, ok := s.player.powerKind(); !ok || kind != PowerUpShield {
		t.Fatal("shield not active after pickup")
	}
	stepTicks(s, clk, 10)
	drained := s.player.power.remainingMs
	if drained >= s.cfg.PowerUpMs {
		t.Fatalf("countdown did not drain: %d", drained)
	}

	placePowerUp(s, 1, PowerUpSpeed)
	stepTicks(s, clk, 1)
	kind, ok := s.player.powerKind()
	if !ok || kind != PowerUpSpeed {
		t.Fatalf("slot kind = %v, want speed overwriting shield", kind)
	}
	// Full duration again, minus the one countdown tick this pickup's
	// own tick burned. The shield's leftover time is gone.
	if got, want := s.player.power.remainingMs, s.cfg.PowerUpMs-s.cfg.TickMs; got != want {
		t.Errorf("remaining = %dms after overwrite, want %dms", got, want)
	}
}

func TestPowerUp_HealthRestoresWithoutTouchingSlot(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.player.health = 40
	s.applyPowerUp(PowerUpMagnet)

	placePowerUp(s, 1, PowerUpHealth)
	stepTicks(s, clk, 1)

	if got, want := s.player.health, 40+s.cfg.HealthRestoreAmount; got != want {
		t.Errorf("health = %d after heal, want %d", got, want)
	}
	if kind, ok := s.player.powerKind(); !ok || kind != PowerUpMagnet {
		t.Error("health pickup displaced the active slot; it must not occupy it")
	}
	if !s.log.HasEntry("power", "health_restore", "") {
		t.Error("health_restore event not logged")
	}
}

func TestPowerUp_HealthClampsAtMax(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.player.health = s.cfg.MaxHealth - 5

	placePowerUp(s, 1, PowerUpHealth)
	stepTicks(s, clk, 1)

	if s.player.health != s.cfg.MaxHealth {
		t.Errorf("health = %d, want clamped at %d", s.player.health, s.cfg.MaxHealth)
	}
}

func TestPickupBurst_HealCarriesItsOwnTint(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())

	placePowerUp(s, 1, PowerUpHealth)
	stepTicks(s, clk, 1)
	if len(s.reg.particles) != burstParticleCount {
		t.Fatalf("particles = %d after heal burst, want %d", len(s.reg.particles), burstParticleCount)
	}
	if got := s.reg.particles[0].tint; got != TintHeal {
		t.Errorf("heal burst tint = %s, want %s", got, TintHeal)
	}

	placePowerUp(s, 1, PowerUpShield)
	stepTicks(s, clk, 1)
	if got := s.reg.particles[len(s.reg.particles)-1].tint; got != TintPowerUp {
		t.Errorf("shield burst tint = %s, want %s", got, TintPowerUp)
	}
}

func TestPowerUp_CountdownExpiryClearsSlot(t *testing.T) {
	cfg := quietConfig()
	cfg.PowerUpMs = 80 // 5 ticks at the default 16ms
	s, clk := newPlayingSession(t, cfg)
	s.applyPowerUp(PowerUpShield)

	stepTicks(s, clk, 4)
	if _, ok := s.player.powerKind(); !ok {
		t.Fatal("slot cleared early")
	}
	stepTicks(s, clk, 1)
	if _, ok := s.player.powerKind(); ok {
		t.Error("slot not cleared after the countdown ran out")
	}
	if !s.log.HasEntry("power", "expire", "shield") {
		t.Error("expire event not logged")
	}
}

func TestJumpTiming_ClearsLowBarrier(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())

	// The barrier enters the standing box 9 ticks from now; a jump
	// issued this tick is at height 90 by then and 110 one tick later,
	// always above the rising cutoff, and the parallel descent keeps
	// the margin until the barrier has passed underneath.
	o := s.reg.SpawnObstacle(s.cfg, 1, ObstacleBarrier)
	o.y = 462
	s.Handle(CommandJump)
	stepTicks(s, clk, 30)

	if n := s.log.CountCategory("collision", "damage"); n != 0 {
		t.Errorf("damage events = %d, a well-timed jump should clear the barrier\n%s",
			n, s.log.Format())
	}
	if s.player.health != s.cfg.MaxHealth {
		t.Errorf("health = %d, want untouched %d", s.player.health, s.cfg.MaxHealth)
	}
}

func TestJumpTiming_StandingTakesTheHit(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	o := s.reg.SpawnObstacle(s.cfg, 1, ObstacleBarrier)
	o.y = 462
	stepTicks(s, clk, 30)

	if n := s.log.CountCategory("collision", "damage"); n != 1 {
		t.Errorf("damage events = %d, a standing player should be hit exactly once", n)
	}
}

func TestLaneDodge_SidestepsObstacle(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	placeObstacle(s, 1, ObstacleTrain)
	s.Handle(CommandMoveLeft)
	stepTicks(s, clk, 30)

	if n := s.log.CountCategory("collision", "damage"); n != 0 {
		t.Errorf("damage events = %d, the train was dodged into lane 0", n)
	}
	if s.player.lane != 0 {
		t.Errorf("lane = %d, want 0", s.player.lane)
	}
}
