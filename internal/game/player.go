package game

const (
	playerWidth   = 44.0
	playerHeight  = 56.0 // standing hitbox height
	slideHeight   = 28.0 // hitbox height while sliding
	baselineInset = 40.0 // gap between the feet line and the bottom edge
)

// Player is the runner. It owns lane occupancy and vertical pose (jump
// arc, slide); health and the power-up slot live here too but are only
// mutated by the collision and power-up steps.
type Player struct {
	lane int
	x    float64 // lane center, recomputed on lane change
	y    float64 // feet line, fixed at the track baseline

	isJumping    bool
	jumpHeight   float64
	jumpVelocity float64
	isSliding    bool

	health         int
	isInvulnerable bool

	power *activePowerUp // nil when the slot is empty
}

// activePowerUp is the single active power-up slot. Collecting any
// slot-occupying kind overwrites it unconditionally.
type activePowerUp struct {
	kind        PowerUpKind
	remainingMs int
}

func newPlayer(cfg Config) *Player {
	return &Player{
		lane:   1,
		x:      cfg.LaneCenterX(1),
		y:      cfg.TrackHeight - baselineInset,
		health: cfg.MaxHealth,
	}
}

// moveLane shifts occupancy by delta lanes. Moves past the outer lanes
// clamp; the horizontal position snaps to the new lane center with no
// tweening.
func (p *Player) moveLane(cfg Config, delta int) {
	lane := p.lane + delta
	if lane < 0 {
		lane = 0
	}
	if lane > LaneCount-1 {
		lane = LaneCount - 1
	}
	p.lane = lane
	p.x = cfg.LaneCenterX(lane)
}

// tryJump starts a jump if the player is on the floor. Jump commands
// arriving mid-air are dropped, not queued.
func (p *Player) tryJump() bool {
	if p.jumpHeight != 0 {
		return false
	}
	p.isJumping = true
	return true
}

// advancePose integrates one tick of the vertical arc. The ascent adds
// JumpPower to the velocity every tick without resetting it, so the
// rise accelerates toward the apex rather than tracing a ballistic
// curve; the descent is linear at Gravity. The apex clamps exactly at
// MaxJumpHeight.
func (p *Player) advancePose(cfg Config) {
	if p.isJumping {
		p.jumpVelocity += cfg.JumpPower
		p.jumpHeight += p.jumpVelocity
		if p.jumpHeight >= cfg.MaxJumpHeight {
			p.jumpHeight = cfg.MaxJumpHeight
			p.jumpVelocity = 0
			p.isJumping = false
		}
		return
	}
	if p.jumpHeight > 0 {
		p.jumpHeight -= cfg.Gravity
		if p.jumpHeight <= 0 {
			p.jumpHeight = 0
			p.jumpVelocity = 0
		}
	}
}

// hitBox is the collision rectangle: anchored to the feet line, raised
// by the current jump height, shortened while sliding.
func (p *Player) hitBox() box {
	h := playerHeight
	if p.isSliding {
		h = slideHeight
	}
	bottom := p.y - p.jumpHeight
	return box{x: p.x - playerWidth/2, y: bottom - h, w: playerWidth, h: h}
}

func (p *Player) powerKind() (PowerUpKind, bool) {
	if p.power == nil {
		return 0, false
	}
	return p.power.kind, true
}

func (p *Player) applyDamage(amount int) {
	p.health -= amount
	if p.health < 0 {
		p.health = 0
	}
}

func (p *Player) heal(amount, maxHealth int) {
	p.health += amount
	if p.health > maxHealth {
		p.health = maxHealth
	}
}
