package game

// Command is a single input action delivered to a session. Commands are
// phase-gated: a command that does not apply to the current phase is
// silently dropped.
type Command int

const (
	CommandStart Command = iota
	CommandRestart
	CommandPause
	CommandResume
	CommandMoveLeft
	CommandMoveRight
	CommandJump
	CommandSlide
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandRestart:
		return "restart"
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandMoveLeft:
		return "moveLeft"
	case CommandMoveRight:
		return "moveRight"
	case CommandJump:
		return "jump"
	case CommandSlide:
		return "slide"
	default:
		return "unknown"
	}
}

// isMovement reports whether the command is buffered for the physics
// step rather than handled immediately by the state machine.
func (c Command) isMovement() bool {
	switch c {
	case CommandMoveLeft, CommandMoveRight, CommandJump, CommandSlide:
		return true
	default:
		return false
	}
}
