package config

// MatchStateID is the phase of the current round.
type MatchStateID int

const (
	MatchStateAiming MatchStateID = iota
	MatchStateFiring
	MatchStateFinished
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStateAiming:
		return "aiming"
	case MatchStateFiring:
		return "firing"
	case MatchStateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
