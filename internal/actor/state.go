package actor

// State is an actor's lifecycle state.
type State int

const (
	// Active actors are updated every frame.
	Active State = iota
	// Paused actors stay in the world but are skipped by updates.
	Paused
	// Dead is terminal: the world destroys the actor at the end of the frame.
	Dead
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Paused:
		return "paused"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

// slot tracks which world list currently holds an actor.
type slot int

const (
	slotNone slot = iota
	slotPending
	slotLive
)
