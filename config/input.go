package config

// ActionID represents a logical client action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionFire
	ActionSkip
	ActionClear
	ActionNextRound
	ActionToggleStats
	ActionToggleDebug
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionFire:
		return "fire"
	case ActionSkip:
		return "skip"
	case ActionClear:
		return "clear"
	case ActionNextRound:
		return "next_round"
	case ActionToggleStats:
		return "toggle_stats"
	case ActionToggleDebug:
		return "toggle_debug"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// InputBinding lists the keys bound to one action. Keys are ebiten key
// names ("Enter", "F5", "Escape"); the client resolves them.
type InputBinding struct {
	Keys []string `yaml:"keys" toml:"keys"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionFire:        {Keys: []string{"Enter", "NumpadEnter"}},
			ActionSkip:        {Keys: []string{"F5"}},
			ActionClear:       {Keys: []string{"Escape"}},
			ActionNextRound:   {Keys: []string{"F2"}},
			ActionToggleStats: {Keys: []string{"Tab"}},
			ActionToggleDebug: {Keys: []string{"F3"}},
			ActionQuit:        {Keys: []string{"F10"}},
		},
	}
}

// ActionByName returns the action whose String is name.
func ActionByName(name string) (ActionID, bool) {
	for a := ActionNone + 1; a < ActionCount; a++ {
		if a.String() == name {
			return a, true
		}
	}
	return ActionNone, false
}
