package game

import (
	"math"
	"math/rand"
)

// burstParticleCount is how many particles one burst emits.
const burstParticleCount = 12

// EntityRegistry exclusively owns the obstacle, coin, power-up and
// particle collections and the id counter they share. Nothing else
// appends to or removes from these slices.
type EntityRegistry struct {
	obstacles []*Obstacle
	coins     []*Coin
	powerUps  []*PowerUp
	particles []*Particle

	nextID       int
	maxParticles int
}

func newEntityRegistry(maxParticles int) *EntityRegistry {
	return &EntityRegistry{maxParticles: maxParticles}
}

// Reset drops every entity and restarts the id sequence for a new run.
func (r *EntityRegistry) Reset() {
	r.obstacles = r.obstacles[:0]
	r.coins = r.coins[:0]
	r.powerUps = r.powerUps[:0]
	r.particles = r.particles[:0]
	r.nextID = 0
}

func (r *EntityRegistry) allocID() int {
	id := r.nextID
	r.nextID++
	return id
}

// SpawnObstacle creates an obstacle at the spawn origin of the given lane.
func (r *EntityRegistry) SpawnObstacle(cfg Config, lane int, kind ObstacleKind) *Obstacle {
	o := &Obstacle{
		id:   r.allocID(),
		lane: lane,
		kind: kind,
		x:    cfg.LaneCenterX(lane),
		y:    spawnY,
	}
	r.obstacles = append(r.obstacles, o)
	return o
}

// SpawnCoin creates a coin at the spawn origin of the given lane.
func (r *EntityRegistry) SpawnCoin(cfg Config, lane int, kind CoinKind) *Coin {
	c := &Coin{
		id:   r.allocID(),
		lane: lane,
		kind: kind,
		x:    cfg.LaneCenterX(lane),
		y:    spawnY,
	}
	r.coins = append(r.coins, c)
	return c
}

// SpawnPowerUp creates a power-up at the spawn origin of the given lane.
func (r *EntityRegistry) SpawnPowerUp(cfg Config, lane int, kind PowerUpKind) *PowerUp {
	p := &PowerUp{
		id:   r.allocID(),
		lane: lane,
		kind: kind,
		x:    cfg.LaneCenterX(lane),
		y:    spawnY,
	}
	r.powerUps = append(r.powerUps, p)
	return p
}

// Advance translates every entity one tick down the track and prunes
// the ones whose top edge has passed the far bound. Collected coins and
// power-ups ride out the same way; collection never removes anything.
// Particles integrate their own motion and die by life decay instead of
// by bound exit.
func (r *EntityRegistry) Advance(cfg Config) {
	far := cfg.TrackHeight

	keptObstacles := r.obstacles[:0]
	for _, o := range r.obstacles {
		o.advance(cfg)
		if o.y <= far {
			keptObstacles = append(keptObstacles, o)
		}
	}
	r.obstacles = keptObstacles

	keptCoins := r.coins[:0]
	for _, c := range r.coins {
		c.advance(cfg)
		if c.y <= far {
			keptCoins = append(keptCoins, c)
		}
	}
	r.coins = keptCoins

	keptPowerUps := r.powerUps[:0]
	for _, p := range r.powerUps {
		p.advance(cfg)
		if p.y <= far {
			keptPowerUps = append(keptPowerUps, p)
		}
	}
	r.powerUps = keptPowerUps

	keptParticles := r.particles[:0]
	for _, p := range r.particles {
		p.advance()
		if p.life > 0 {
			keptParticles = append(keptParticles, p)
		}
	}
	r.particles = keptParticles
}

// EmitBurst scatters burstParticleCount particles around (x, y). The
// live pool is capped at maxParticles; when a burst would overflow it,
// the oldest particles are evicted first.
func (r *EntityRegistry) EmitBurst(x, y float64, tint ParticleTint, rng *rand.Rand) {
	count := burstParticleCount
	if count > r.maxParticles {
		count = r.maxParticles
	}
	if over := len(r.particles) + count - r.maxParticles; over > 0 {
		r.particles = append(r.particles[:0], r.particles[over:]...)
	}
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 1 + rng.Float64()*2.5
		r.particles = append(r.particles, &Particle{
			id:   r.allocID(),
			x:    x,
			y:    y,
			vx:   math.Cos(angle) * speed,
			vy:   math.Sin(angle)*speed - 1, // slight upward bias
			size: 2 + rng.Float64()*3,
			life: 1,
			tint: tint,
		})
	}
}
