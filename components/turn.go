package components

import (
	cfg "github.com/automoto/mathgraph/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TurnData is the singleton turn state machine.
type TurnData struct {
	State       cfg.MatchStateID
	ActiveID    int
	Clock       *gween.Tween // counts MaxTurnTime down to zero
	Remaining   float32      // seconds left, as reported by Clock
	Seconds     int          // whole seconds shown to players
	Cursor      [2]int       // next roster index per team
	WinningTeam int
	SkipVotes   map[int]bool
}

var Turn = donburi.NewComponentType[TurnData]()
