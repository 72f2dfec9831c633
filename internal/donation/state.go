package donation

// State is a step of a single donation submission.
type State string

const (
	StateCollecting State = "collecting"
	StateValidating State = "validating"
	StateInvalid    State = "invalid"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

var transitions = map[State][]State{
	StateCollecting: {StateValidating},
	StateValidating: {StateInvalid, StateSubmitting},
	StateInvalid:    {StateCollecting},
	StateSubmitting: {StateConfirmed, StateFailed},
}

// CanTransition reports whether a submission may move from one state to
// another. Confirmed and Failed are terminal.
func CanTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether s ends a submission.
func (s State) Terminal() bool {
	return s == StateConfirmed || s == StateFailed
}
