package game

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable the simulation reads. A Config is
// validated once when the session is created and treated as immutable
// afterwards; nothing in the tick pipeline mutates it.
type Config struct {
	// Track geometry. The track is LaneCount vertical lanes of equal
	// width; entities scroll down it from above toward the player.
	TrackWidth  float64 `yaml:"track_width"`
	TrackHeight float64 `yaml:"track_height"`

	// World scroll per tick, in pixels. Also the per-tick distance gain.
	ScrollSpeed float64 `yaml:"scroll_speed"`

	// Spawn cadence, expressed as distance travelled between spawns.
	ObstacleIntervalPx float64 `yaml:"obstacle_interval_px"`
	CoinIntervalPx     float64 `yaml:"coin_interval_px"`
	PowerUpIntervalPx  float64 `yaml:"power_up_interval_px"`

	// Jump tuning. While ascending the jump velocity grows by JumpPower
	// each tick; the arc tops out at MaxJumpHeight and falls back at
	// Gravity per tick.
	JumpPower     float64 `yaml:"jump_power"`
	MaxJumpHeight float64 `yaml:"max_jump_height"`
	Gravity       float64 `yaml:"gravity"`

	// Health and damage.
	MaxHealth           int `yaml:"max_health"`
	DamageAmount        int `yaml:"damage_amount"`
	HealthRestoreAmount int `yaml:"health_restore_amount"`

	// Real-time windows, in milliseconds of wall-clock time.
	InvulnerabilityMs int `yaml:"invulnerability_ms"`
	SlideMs           int `yaml:"slide_ms"`

	// Power-up lifetime, in simulated milliseconds (decremented by
	// TickMs per playing tick, so pausing freezes it).
	PowerUpMs int `yaml:"power_up_ms"`

	// Nominal duration of one tick, in milliseconds.
	TickMs int `yaml:"tick_ms"`

	// Particle pool cap. New bursts evict the oldest particles first.
	MaxParticles int `yaml:"max_particles"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		TrackWidth:          480,
		TrackHeight:         640,
		ScrollSpeed:         6,
		ObstacleIntervalPx:  240,
		CoinIntervalPx:      132,
		PowerUpIntervalPx:   900,
		JumpPower:           2,
		MaxJumpHeight:       110,
		Gravity:             6,
		MaxHealth:           100,
		DamageAmount:        25,
		HealthRestoreAmount: 25,
		InvulnerabilityMs:   2000,
		SlideMs:             500,
		PowerUpMs:           5000,
		TickMs:              16,
		MaxParticles:        512,
	}
}

// LoadConfig reads a YAML tuning file and validates it. Fields absent
// from the file keep their defaults, so a file may override only the
// values it cares about.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's flag
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects any tuning the pipeline cannot run with. The first
// offending field is named in the error.
func (c Config) Validate() error {
	positive := []struct {
		name string
		ok   bool
	}{
		{"track_width", c.TrackWidth > 0},
		{"track_height", c.TrackHeight > 0},
		{"scroll_speed", c.ScrollSpeed > 0},
		{"obstacle_interval_px", c.ObstacleIntervalPx > 0},
		{"coin_interval_px", c.CoinIntervalPx > 0},
		{"power_up_interval_px", c.PowerUpIntervalPx > 0},
		{"jump_power", c.JumpPower > 0},
		{"max_jump_height", c.MaxJumpHeight > 0},
		{"gravity", c.Gravity > 0},
		{"max_health", c.MaxHealth > 0},
		{"damage_amount", c.DamageAmount > 0},
		{"health_restore_amount", c.HealthRestoreAmount > 0},
		{"invulnerability_ms", c.InvulnerabilityMs > 0},
		{"slide_ms", c.SlideMs > 0},
		{"power_up_ms", c.PowerUpMs > 0},
		{"tick_ms", c.TickMs > 0},
		{"max_particles", c.MaxParticles > 0},
	}
	for _, p := range positive {
		if !p.ok {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}
	if c.DamageAmount > c.MaxHealth {
		return fmt.Errorf("damage_amount %d exceeds max_health %d", c.DamageAmount, c.MaxHealth)
	}
	if c.TrackWidth < LaneCount*playerWidth {
		return fmt.Errorf("track_width %.0f leaves lanes narrower than the player", c.TrackWidth)
	}
	if c.MaxJumpHeight >= c.TrackHeight {
		return fmt.Errorf("max_jump_height %.0f exceeds the track", c.MaxJumpHeight)
	}
	return nil
}

// laneWidth is the width of one of the three lanes.
func (c Config) laneWidth() float64 { return c.TrackWidth / LaneCount }

// LaneCenterX is the horizontal center of the given lane. Exported for
// renderers that need to line screen geometry up with snapshot lanes.
func (c Config) LaneCenterX(lane int) float64 {
	return c.laneWidth()*float64(lane) + c.laneWidth()/2
}

func (c Config) tickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

func (c Config) slideWindow() time.Duration {
	return time.Duration(c.SlideMs) * time.Millisecond
}

func (c Config) invulnerabilityWindow() time.Duration {
	return time.Duration(c.InvulnerabilityMs) * time.Millisecond
}
