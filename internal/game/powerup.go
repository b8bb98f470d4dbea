package game

import "fmt"

// applyPowerUp resolves a collected power-up. Health heals on the spot
// and never touches the slot; every other kind overwrites the slot and
// its countdown unconditionally, discarding whatever time the previous
// holder had left.
func (s *Session) applyPowerUp(kind PowerUpKind) {
	if kind == PowerUpHealth {
		s.player.heal(s.cfg.HealthRestoreAmount, s.cfg.MaxHealth)
		s.log.Add(s.tick, "power", "health_restore",
			fmt.Sprintf("health=%d", s.player.health), float64(s.player.health))
		return
	}
	s.player.power = &activePowerUp{kind: kind, remainingMs: s.cfg.PowerUpMs}
	s.log.Add(s.tick, "power", "activate", kind.String(), float64(s.cfg.PowerUpMs))
}

// tickPowerUp burns one nominal tick off the active power-up. The
// countdown runs on simulated time, so pausing suspends it along with
// everything else.
func (s *Session) tickPowerUp() {
	if s.player.power == nil {
		return
	}
	s.player.power.remainingMs -= s.cfg.TickMs
	if s.player.power.remainingMs <= 0 {
		s.log.Add(s.tick, "power", "expire", s.player.power.kind.String(), 0)
		s.player.power = nil
	}
}
