package game

import "testing"

func TestJumpArc_AcceleratingAscentExactApex(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(cfg)
	if !p.tryJump() {
		t.Fatal("jump from the floor was refused")
	}

	// Velocity accumulates by JumpPower each tick, so the ascent covers
	// 2, 6, 12, ... and tops out exactly at MaxJumpHeight on tick 10
	// with the default tuning.
	want := []float64{2, 6, 12, 20, 30, 42, 56, 72, 90, 110}
	for i, w := range want {
		p.advancePose(cfg)
		if p.jumpHeight != w {
			t.Fatalf("ascent tick %d: jumpHeight = %.1f, want %.1f", i+1, p.jumpHeight, w)
		}
	}
	if p.isJumping {
		t.Error("still marked jumping at the apex")
	}
	if p.jumpVelocity != 0 {
		t.Errorf("jumpVelocity = %.1f at the apex, want 0", p.jumpVelocity)
	}
}

func TestJumpArc_LinearDescentAndFloorClamp(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(cfg)
	p.tryJump()
	for p.isJumping {
		p.advancePose(cfg)
	}

	prev := p.jumpHeight
	for ticks := 0; p.jumpHeight > 0; ticks++ {
		if ticks > 100 {
			t.Fatal("descent never reached the floor")
		}
		p.advancePose(cfg)
		if p.jumpHeight > prev {
			t.Fatalf("descent rose: %.1f → %.1f", prev, p.jumpHeight)
		}
		drop := prev - p.jumpHeight
		if p.jumpHeight > 0 && drop != cfg.Gravity {
			t.Fatalf("descent step = %.1f, want %.1f", drop, cfg.Gravity)
		}
		prev = p.jumpHeight
	}
	if p.jumpHeight != 0 {
		t.Errorf("jumpHeight = %.1f after landing, want 0", p.jumpHeight)
	}
	if p.jumpVelocity != 0 {
		t.Errorf("jumpVelocity = %.1f after landing, want 0", p.jumpVelocity)
	}
}

func TestJumpGate_MidAirJumpDropped(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(cfg)
	p.tryJump()
	p.advancePose(cfg)

	if p.tryJump() {
		t.Error("jump accepted while ascending")
	}
	for p.isJumping {
		p.advancePose(cfg)
	}
	if p.tryJump() {
		t.Error("jump accepted while falling")
	}
	for p.jumpHeight > 0 {
		p.advancePose(cfg)
	}
	if !p.tryJump() {
		t.Error("jump refused after landing")
	}
}

func TestLaneChange_ClampedAtEdges(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(cfg)
	if p.lane != 1 {
		t.Fatalf("initial lane = %d, want 1", p.lane)
	}

	p.moveLane(cfg, -1)
	p.moveLane(cfg, -1) // already at 0; must be a no-op
	if p.lane != 0 {
		t.Errorf("lane = %d after two left moves, want 0", p.lane)
	}
	if p.x != cfg.LaneCenterX(0) {
		t.Errorf("x = %.1f, want lane 0 center %.1f", p.x, cfg.LaneCenterX(0))
	}

	p.moveLane(cfg, +1)
	p.moveLane(cfg, +1)
	p.moveLane(cfg, +1) // already at 2; must be a no-op
	if p.lane != 2 {
		t.Errorf("lane = %d after three right moves, want 2", p.lane)
	}
	if p.x != cfg.LaneCenterX(2) {
		t.Errorf("x = %.1f, want lane 2 center %.1f", p.x, cfg.LaneCenterX(2))
	}
}

func TestHitBox_SlideAndJumpOffsets(t *testing.T) {
	cfg := DefaultConfig()
	p := newPlayer(cfg)

	standing := p.hitBox()
	if standing.h != playerHeight {
		t.Errorf("standing box height = %.1f, want %.1f", standing.h, playerHeight)
	}
	if got := standing.y + standing.h; got != p.y {
		t.Errorf("standing box bottom = %.1f, want feet line %.1f", got, p.y)
	}

	p.isSliding = true
	slid := p.hitBox()
	if slid.h != slideHeight {
		t.Errorf("slide box height = %.1f, want %.1f", slid.h, slideHeight)
	}
	if got := slid.y + slid.h; got != p.y {
		t.Errorf("slide box bottom = %.1f, want feet line %.1f", got, p.y)
	}
	p.isSliding = false

	p.jumpHeight = 50
	raised := p.hitBox()
	if got := raised.y + raised.h; got != p.y-50 {
		t.Errorf("raised box bottom = %.1f, want %.1f", got, p.y-50)
	}
}
