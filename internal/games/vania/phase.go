package vania

// Phase is the top-level state of a run.
type Phase int

const (
	PhaseLoading  Phase = iota // Level generated, waiting out the loading screen
	PhasePlaying               // Simulation running
	PhaseGameOver              // Player died, waiting for restart
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Event drives phase transitions.
type Event int

const (
	EventLoaded  Event = iota // Loading timer elapsed
	EventDied                 // Health exhausted or fell out of the level
	EventRestart              // Player asked for a new run
)

func (e Event) String() string {
	switch e {
	case EventLoaded:
		return "loaded"
	case EventDied:
		return "died"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Next returns the phase after e. Events that do not apply to the current
// phase leave it unchanged.
func (p Phase) Next(e Event) Phase {
	switch {
	case p == PhaseLoading && e == EventLoaded:
		return PhasePlaying
	case p == PhasePlaying && e == EventDied:
		return PhaseGameOver
	case p == PhaseGameOver && e == EventRestart:
		return PhaseLoading
	}
	return p
}
