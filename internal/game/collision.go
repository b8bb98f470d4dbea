package game

import (
	"fmt"
	"time"
)

// resolveCollisions tests the player's box against every live entity.
// Obstacles are scanned in creation order and resolve at most one
// outcome per tick: the first overlap either burns the shield or deals
// damage, and the rest of the obstacle scan is skipped. Coin and
// power-up scans run independently of invulnerability. Returns true
// when the hit was lethal; the caller makes the phase transition.
func (s *Session) resolveCollisions(now time.Time) bool {
	pb := s.player.hitBox()

	if !s.player.isInvulnerable {
		for _, o := range s.reg.obstacles {
			if !pb.intersects(o.hitBox()) {
				continue
			}
			if kind, ok := s.player.powerKind(); ok && kind == PowerUpShield {
				s.reg.EmitBurst(s.player.x, s.player.y-playerHeight/2, TintShield, s.rng)
				s.log.Add(s.tick, "collision", "shield_block",
					fmt.Sprintf("%s id=%d", o.kind, o.id), 0)
				break
			}
			s.player.applyDamage(s.cfg.DamageAmount)
			s.player.isInvulnerable = true
			s.scheduleTask(deferredInvulnClear, now.Add(s.cfg.invulnerabilityWindow()))
			s.reg.EmitBurst(s.player.x, s.player.y-playerHeight/2, TintDamage, s.rng)
			s.log.Add(s.tick, "collision", "damage",
				fmt.Sprintf("%s id=%d health=%d", o.kind, o.id, s.player.health),
				float64(s.cfg.DamageAmount))
			if s.player.health <= 0 {
				s.log.Add(s.tick, "collision", "death",
					fmt.Sprintf("%s id=%d", o.kind, o.id), 0)
				return true
			}
			break
		}
	}

	for _, c := range s.reg.coins {
		if c.collected || !pb.intersects(c.hitBox()) {
			continue
		}
		c.collected = true
		value := coinValues[c.kind]
		s.score.AddCoins(value)
		s.reg.EmitBurst(c.x, c.y+coinSize/2, TintCoin, s.rng)
		s.log.Add(s.tick, "pickup", "coin",
			fmt.Sprintf("%s id=%d value=%d", c.kind, c.id, value), float64(value))
	}

	for _, p := range s.reg.powerUps {
		if p.collected || !pb.intersects(p.hitBox()) {
			continue
		}
		p.collected = true
		tint := TintPowerUp
		if p.kind == PowerUpHealth {
			tint = TintHeal
		}
		s.reg.EmitBurst(p.x, p.y+powerUpSize/2, tint, s.rng)
		s.log.Add(s.tick, "pickup", "power_up",
			fmt.Sprintf("%s id=%d", p.kind, p.id), 0)
		s.applyPowerUp(p.kind)
	}

	return false
}
