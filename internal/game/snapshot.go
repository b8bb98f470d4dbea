package game

// Snapshot is the read-only view of one tick: everything a renderer or
// driver policy needs and nothing it may mutate. All slices are fresh
// copies, so holding a snapshot across ticks is safe.
type Snapshot struct {
	Tick  int
	Phase Phase

	Player    PlayerSnapshot
	Obstacles []ObstacleSnapshot
	Coins     []CoinSnapshot
	PowerUps  []PowerUpSnapshot
	Particles []ParticleSnapshot

	Distance  float64
	Score     int
	CoinTotal int
	Level     int
	HighScore int
}

// PlayerSnapshot is the player pose at snapshot time. X is the lane
// center and Y the feet line; the drawn top edge is at
// Y - JumpHeight - Height. Height already reflects the slide pose.
type PlayerSnapshot struct {
	Lane           int
	X, Y           float64
	Width, Height  float64
	JumpHeight     float64
	IsJumping      bool
	IsSliding      bool
	Health         int
	MaxHealth      int
	IsInvulnerable bool
	PowerUp        *PowerUpStateSnapshot // nil when the slot is empty
}

// PowerUpStateSnapshot is the active power-up slot.
type PowerUpStateSnapshot struct {
	Kind        PowerUpKind
	RemainingMs int
}

// ObstacleSnapshot is one live obstacle. X is the lane center, Y the
// top edge.
type ObstacleSnapshot struct {
	ID            int
	Lane          int
	Kind          ObstacleKind
	X, Y          float64
	Width, Height float64
	Rotation      float64
}

// CoinSnapshot is one live coin, collected or not.
type CoinSnapshot struct {
	ID        int
	Lane      int
	Kind      CoinKind
	X, Y      float64
	Rotation  float64
	Value     int
	Collected bool
}

// PowerUpSnapshot is one live power-up pickup, collected or not.
type PowerUpSnapshot struct {
	ID        int
	Lane      int
	Kind      PowerUpKind
	X, Y      float64
	Collected bool
}

// ParticleSnapshot is one live particle.
type ParticleSnapshot struct {
	X, Y float64
	Size float64
	Life float64
	Tint ParticleTint
}

// Snapshot captures the current state. It is cheap enough to call once
// per frame.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	ps := PlayerSnapshot{
		Lane:           p.lane,
		X:              p.x,
		Y:              p.y,
		Width:          playerWidth,
		Height:         playerHeight,
		JumpHeight:     p.jumpHeight,
		IsJumping:      p.isJumping,
		IsSliding:      p.isSliding,
		Health:         p.health,
		MaxHealth:      s.cfg.MaxHealth,
		IsInvulnerable: p.isInvulnerable,
	}
	if p.isSliding {
		ps.Height = slideHeight
	}
	if p.power != nil {
		ps.PowerUp = &PowerUpStateSnapshot{
			Kind:        p.power.kind,
			RemainingMs: p.power.remainingMs,
		}
	}

	snap := Snapshot{
		Tick:      s.tick,
		Phase:     s.phase,
		Player:    ps,
		Distance:  s.spawner.Distance(),
		Score:     s.score.Score(),
		CoinTotal: s.score.CoinTotal(),
		Level:     s.score.Level(),
		HighScore: s.score.HighScore(),
	}

	for _, o := range s.reg.obstacles {
		sz := obstacleSizes[o.kind]
		snap.Obstacles = append(snap.Obstacles, ObstacleSnapshot{
			ID:       o.id,
			Lane:     o.lane,
			Kind:     o.kind,
			X:        o.x,
			Y:        o.y,
			Width:    sz.w,
			Height:   sz.h,
			Rotation: o.rotation,
		})
	}
	for _, c := range s.reg.coins {
		snap.Coins = append(snap.Coins, CoinSnapshot{
			ID:        c.id,
			Lane:      c.lane,
			Kind:      c.kind,
			X:         c.x,
			Y:         c.y,
			Rotation:  c.rotation,
			Value:     coinValues[c.kind],
			Collected: c.collected,
		})
	}
	for _, pu := range s.reg.powerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpSnapshot{
			ID:        pu.id,
			Lane:      pu.lane,
			Kind:      pu.kind,
			X:         pu.x,
			Y:         pu.y,
			Collected: pu.collected,
		})
	}
	for _, pt := range s.reg.particles {
		snap.Particles = append(snap.Particles, ParticleSnapshot{
			X:    pt.x,
			Y:    pt.y,
			Size: pt.size,
			Life: pt.life,
			Tint: pt.tint,
		})
	}
	return snap
}
