package conversation

// State of the controller. Reset is valid in either state.
type State int

const (
	StateIdle       State = iota // Ready for a new submission
	StateSubmitting              // Waiting for the backend reply
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}
