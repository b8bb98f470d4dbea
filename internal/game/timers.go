package game

import "time"

// deferredKind names the wall-clock mutations the session defers.
type deferredKind int

const (
	deferredSlideClear deferredKind = iota
	deferredInvulnClear
)

func (k deferredKind) String() string {
	switch k {
	case deferredSlideClear:
		return "slide_clear"
	case deferredInvulnClear:
		return "invuln_clear"
	default:
		return "unknown"
	}
}

// deferredTask is a mutation scheduled against the wall clock rather
// than the tick counter. Each task carries the session epoch it was
// scheduled under; a task whose epoch no longer matches the session's
// is dropped unapplied, so a timer armed in one run can never mutate
// the player of the next.
type deferredTask struct {
	kind   deferredKind
	epoch  uint64
	fireAt time.Time
}

// scheduleTask arms a deferred mutation, replacing any pending task of
// the same kind. Sliding again mid-slide therefore pushes the clear
// deadline out instead of stacking a second timer.
func (s *Session) scheduleTask(kind deferredKind, fireAt time.Time) {
	for i := range s.tasks {
		if s.tasks[i].kind == kind && s.tasks[i].epoch == s.epoch {
			s.tasks[i].fireAt = fireAt
			return
		}
	}
	s.tasks = append(s.tasks, deferredTask{kind: kind, epoch: s.epoch, fireAt: fireAt})
}

// applyDueTasks runs at the top of each playing tick, before physics,
// so a cleared slide or invulnerability window takes effect for the
// whole tick. Stale-epoch tasks are dropped without applying.
func (s *Session) applyDueTasks(now time.Time) {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.epoch != s.epoch {
			s.log.Add(s.tick, "timer", "stale_drop", t.kind.String(), float64(t.epoch))
			continue
		}
		if now.Before(t.fireAt) {
			kept = append(kept, t)
			continue
		}
		s.applyTask(t)
	}
	s.tasks = kept
}

func (s *Session) applyTask(t deferredTask) {
	switch t.kind {
	case deferredSlideClear:
		s.player.isSliding = false
		s.log.Add(s.tick, "timer", "slide_clear", "", 0)
	case deferredInvulnClear:
		s.player.isInvulnerable = false
		s.log.Add(s.tick, "timer", "invuln_clear", "", 0)
	}
}

// dropTasks invalidates every outstanding task. Called when a run
// ends; a mid-run restart instead leaves its tasks to die on the epoch
// check.
func (s *Session) dropTasks() {
	s.tasks = s.tasks[:0]
}
