package game

const (
	// LaneCount is the fixed number of lanes. Lanes are indexed 0..2
	// left to right; renderers and driver policies share the indexing.
	LaneCount = 3

	// spawnY is the y coordinate entity tops appear at, far enough above
	// the visible track that even the tallest kind enters cleanly.
	spawnY = -160.0

	// Per-tick rotation for the spinning entity kinds, in radians.
	obstacleSpin = 0.05
	coinSpin     = 0.1
)

// --- Obstacles ---

// ObstacleKind selects the silhouette and footprint of an obstacle.
// Kinds differ only in footprint: the low kinds fit under a full jump
// with tight timing, the tall kinds force a lane change.
type ObstacleKind int

const (
	ObstacleBarrier ObstacleKind = iota // low wall
	ObstacleTrain                       // tall and wide
	ObstacleTunnel                      // wide arch, nearly lane-filling
	ObstacleSpike                       // small spinning floor hazard
	ObstacleLaser                       // thin horizontal beam
	obstacleKindCount                   // must stay last
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleBarrier:
		return "barrier"
	case ObstacleTrain:
		return "train"
	case ObstacleTunnel:
		return "tunnel"
	case ObstacleSpike:
		return "spike"
	case ObstacleLaser:
		return "laser"
	default:
		return "unknown"
	}
}

// obstacleSizes maps kind to footprint, indexed by ObstacleKind.
var obstacleSizes = [obstacleKindCount]struct{ w, h float64 }{
	ObstacleBarrier: {120, 34},
	ObstacleTrain:   {130, 120},
	ObstacleTunnel:  {150, 100},
	ObstacleSpike:   {36, 30},
	ObstacleLaser:   {140, 16},
}

// Obstacle is a hazard scrolling down one lane. It deals contact
// damage unless the player is invulnerable or shielded.
type Obstacle struct {
	id       int
	lane     int
	kind     ObstacleKind
	x, y     float64 // x is the lane center, y the top edge
	rotation float64
}

func (o *Obstacle) advance(cfg Config) {
	o.y += cfg.ScrollSpeed
	if o.kind == ObstacleSpike {
		o.rotation += obstacleSpin
	}
}

func (o *Obstacle) hitBox() box {
	sz := obstacleSizes[o.kind]
	return box{x: o.x - sz.w/2, y: o.y, w: sz.w, h: sz.h}
}

// --- Coins ---

// CoinKind selects a coin's value.
type CoinKind int

const (
	CoinNormal CoinKind = iota
	CoinGold
	CoinDiamond
	coinKindCount // must stay last
)

func (k CoinKind) String() string {
	switch k {
	case CoinNormal:
		return "normal"
	case CoinGold:
		return "gold"
	case CoinDiamond:
		return "diamond"
	default:
		return "unknown"
	}
}

// coinValues maps kind to coin total contribution, indexed by CoinKind.
var coinValues = [coinKindCount]int{
	CoinNormal:  1,
	CoinGold:    5,
	CoinDiamond: 10,
}

const coinSize = 28.0

// Coin is a collectible. Collection flips collected and nothing else;
// the coin keeps scrolling until pruned at the far bound, which keeps
// the registry's lifecycle uniform across entity categories.
type Coin struct {
	id        int
	lane      int
	kind      CoinKind
	x, y      float64
	rotation  float64
	collected bool
}

func (c *Coin) advance(cfg Config) {
	c.y += cfg.ScrollSpeed
	c.rotation += coinSpin
}

func (c *Coin) hitBox() box {
	return box{x: c.x - coinSize/2, y: c.y, w: coinSize, h: coinSize}
}

// --- Power-ups ---

// PowerUpKind selects a power-up's effect on pickup.
type PowerUpKind int

const (
	PowerUpShield PowerUpKind = iota // absorbs obstacle hits while active
	PowerUpSpeed                     // recorded in the slot, no enacted effect
	PowerUpMagnet                    // recorded in the slot, no enacted effect
	PowerUpHealth                    // instant heal, never occupies the slot
	powerUpKindCount                 // must stay last
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpSpeed:
		return "speed"
	case PowerUpMagnet:
		return "magnet"
	case PowerUpHealth:
		return "health"
	default:
		return "unknown"
	}
}

const powerUpSize = 36.0

// PowerUp is a floating pickup with the same persist-after-collect
// lifecycle as Coin.
type PowerUp struct {
	id        int
	lane      int
	kind      PowerUpKind
	x, y      float64
	collected bool
}

func (p *PowerUp) advance(cfg Config) { p.y += cfg.ScrollSpeed }

func (p *PowerUp) hitBox() box {
	return box{x: p.x - powerUpSize/2, y: p.y, w: powerUpSize, h: powerUpSize}
}

// --- Particles ---

// ParticleTint tags a particle with the event family that emitted it.
// The renderer maps tints to colors; the core stays color-agnostic.
type ParticleTint int

const (
	TintDamage ParticleTint = iota
	TintShield
	TintCoin
	TintPowerUp
	TintHeal
)

func (t ParticleTint) String() string {
	switch t {
	case TintDamage:
		return "damage"
	case TintShield:
		return "shield"
	case TintCoin:
		return "coin"
	case TintPowerUp:
		return "powerUp"
	case TintHeal:
		return "heal"
	default:
		return "unknown"
	}
}

const (
	particleDecay   = 0.025 // life lost per tick; ~40 ticks to fade
	particleGravity = 0.18  // vy gained per tick
)

// Particle is a short-lived cosmetic fragment from a burst.
type Particle struct {
	id     int
	x, y   float64
	vx, vy float64
	size   float64
	life   float64 // 1 at birth, dead at 0
	tint   ParticleTint
}

func (p *Particle) advance() {
	p.x += p.vx
	p.y += p.vy
	p.vy += particleGravity
	p.life -= particleDecay
}

// --- Geometry ---

// box is an axis-aligned rectangle; x,y is the top-left corner.
type box struct {
	x, y, w, h float64
}

func (b box) intersects(o box) bool {
	return b.x < o.x+o.w && b.x+b.w > o.x && b.y < o.y+o.h && b.y+b.h > o.y
}
