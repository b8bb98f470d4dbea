package game

// Phase is the high-level state of a session.
type Phase int

const (
	PhaseStart    Phase = iota // title screen, waiting for start
	PhasePlaying               // tick pipeline active
	PhasePaused                // frozen mid-run, resumable
	PhaseGameOver              // run ended, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}
