package game

import (
	"testing"
	"time"
)

// The wall-clock tests all drive the manual clock in 16ms steps, so a
// deadline at t0+516ms is first reached at the top of tick 33
// (33 * 16ms = 528ms).

func TestSlideClear_FiresOnWallClockDeadline(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.Handle(CommandSlide)
	stepTicks(s, clk, 1)
	if !s.player.isSliding {
		t.Fatal("slide command did not take")
	}
	if got := s.player.hitBox().h; got != slideHeight {
		t.Fatalf("hit box height = %.0f while sliding, want %.0f", got, slideHeight)
	}

	stepTicks(s, clk, 31) // tick 32, clock at 512ms, deadline 516ms
	if !s.player.isSliding {
		t.Fatal("slide cleared before the 500ms window elapsed")
	}

	stepTicks(s, clk, 1) // tick 33, clock at 528ms
	if s.player.isSliding {
		t.Error("slide still set after the deadline passed")
	}
	if !s.log.HasEntry("timer", "slide_clear", "") {
		t.Error("slide_clear event not logged")
	}
	if got := s.player.hitBox().h; got != playerHeight {
		t.Errorf("hit box height = %.0f after slide cleared, want %.0f", got, playerHeight)
	}
}

func TestSlideClear_DeadlineInstantIsInclusive(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.Handle(CommandSlide)
	stepTicks(s, clk, 1)
	deadline := clk.Now().Add(s.cfg.slideWindow())

	// The 16ms grid never lands on the deadline itself; park the clock
	// there directly to pin the boundary.
	clk.Set(deadline.Add(-time.Nanosecond))
	s.AdvanceTick()
	if !s.player.isSliding {
		t.Fatal("slide cleared a nanosecond before its deadline")
	}

	clk.Set(deadline)
	s.AdvanceTick()
	if s.player.isSliding {
		t.Error("slide not cleared at the deadline instant")
	}
}

func TestSlideRetrigger_ExtendsPendingClear(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.Handle(CommandSlide)
	stepTicks(s, clk, 1) // deadline 16+500 = 516ms

	stepTicks(s, clk, 8)
	s.Handle(CommandSlide)
	stepTicks(s, clk, 1) // tick 10, deadline re-armed to 160+500 = 660ms

	if len(s.tasks) != 1 {
		t.Fatalf("%d deferred tasks after re-trigger, want 1 (replaced, not stacked)", len(s.tasks))
	}

	stepTicks(s, clk, 31) // tick 41, clock at 656ms
	if !s.player.isSliding {
		t.Fatal("re-triggered slide cleared on the original deadline")
	}
	stepTicks(s, clk, 1) // tick 42, clock at 672ms
	if s.player.isSliding {
		t.Error("slide still set after the extended deadline")
	}
	if n := s.log.CountCategory("timer", "slide_clear"); n != 1 {
		t.Errorf("slide_clear events = %d, want 1", n)
	}
}

func TestInvulnWindow_ExpiresOnSchedule(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	placeObstacle(s, 1, ObstacleBarrier)
	stepTicks(s, clk, 1) // damage at tick 1, deadline 16+2000 = 2016ms

	stepTicks(s, clk, 124) // tick 125, clock at 2000ms
	if !s.player.isInvulnerable {
		t.Fatal("invulnerability ended before the 2000ms window elapsed")
	}
	stepTicks(s, clk, 1) // tick 126, clock at 2016ms
	if s.player.isInvulnerable {
		t.Fatal("invulnerability still set after the deadline")
	}
	if !s.log.HasEntry("timer", "invuln_clear", "") {
		t.Error("invuln_clear event not logged")
	}

	// The window is over, so the next overlap lands.
	placeObstacle(s, 1, ObstacleBarrier)
	stepTicks(s, clk, 1)
	if n := s.log.CountCategory("collision", "damage"); n != 2 {
		t.Errorf("damage events = %d, want 2 after the window expired", n)
	}
	if got, want := s.player.health, s.cfg.MaxHealth-2*s.cfg.DamageAmount; got != want {
		t.Errorf("health = %d, want %d", got, want)
	}
}

func TestStaleTimer_DroppedAfterMidRunRestart(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.Handle(CommandSlide)
	stepTicks(s, clk, 1) // old run: slide armed, deadline 516ms

	s.Handle(CommandRestart)
	if s.player.isSliding {
		t.Fatal("restart must hand out a fresh standing player")
	}
	s.Handle(CommandSlide)
	stepTicks(s, clk, 1) // new run tick 1, clock at 32ms, deadline 532ms

	if n := s.log.CountCategory("timer", "stale_drop"); n != 1 {
		t.Fatalf("stale_drop events = %d, want the old run's task dropped exactly once\n%s",
			n, s.log.Format())
	}
	if !s.log.HasEntry("timer", "stale_drop", "slide_clear") {
		t.Error("stale_drop entry does not name the dropped task kind")
	}
	if len(s.tasks) != 1 {
		t.Fatalf("%d tasks outstanding, want only the new run's", len(s.tasks))
	}

	// The old deadline (516ms) passes at tick 31 of the new run; the
	// new slide must survive it and clear on its own deadline (532ms).
	stepTicks(s, clk, 30) // tick 31, clock at 512ms
	stepTicks(s, clk, 1)  // tick 32, clock at 528ms, past the stale deadline
	if !s.player.isSliding {
		t.Fatal("new run's slide cleared on the previous run's deadline")
	}
	stepTicks(s, clk, 1) // tick 33, clock at 544ms
	if s.player.isSliding {
		t.Error("new run's slide missed its own deadline")
	}
}

func TestGameOver_CancelsOutstandingTimers(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.Handle(CommandSlide)
	stepTicks(s, clk, 1)
	if len(s.tasks) != 1 {
		t.Fatal("setup expected an armed slide clear")
	}

	s.enterGameOver()
	if len(s.tasks) != 0 {
		t.Errorf("%d tasks outstanding after game over, want 0", len(s.tasks))
	}
}

func TestPause_DoesNotFreezeWallClockDeadlines(t *testing.T) {
	s, clk := newPlayingSession(t, quietConfig())
	s.Handle(CommandSlide)
	stepTicks(s, clk, 1)

	s.Handle(CommandPause)
	clk.Advance(time.Second)
	s.AdvanceTick() // no-op while paused
	if !s.player.isSliding {
		t.Fatal("paused ticks must not apply timers")
	}

	// The deadline passed during the pause, so the first playing tick
	// applies it.
	s.Handle(CommandResume)
	stepTicks(s, clk, 1)
	if s.player.isSliding {
		t.Error("slide not cleared on the first tick after resume")
	}
	if e, ok := s.log.LastOf("timer", "slide_clear"); !ok || e.Tick != 2 {
		t.Errorf("slide_clear at tick %d, want 2", e.Tick)
	}
}
