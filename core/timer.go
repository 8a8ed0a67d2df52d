package core

import (
	"log"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// resetClock replaces the turn clock with a fresh countdown.
func (m *Match) resetClock() {
	turn := m.Turn()
	total := float32(m.opts.MaxTurnTime)
	turn.Clock = gween.New(total, 0, total, ease.Linear)
	turn.Remaining = total
	turn.Seconds = int(math.Ceil(float64(total)))
}

// tickClock runs the countdown; the turn passes on when it reaches zero.
func (m *Match) tickClock(dt float64) {
	turn := m.Turn()
	if turn.Clock == nil {
		return
	}
	remaining, done := turn.Clock.Update(float32(dt))
	turn.Remaining = remaining
	turn.Seconds = int(math.Ceil(float64(remaining)))
	if done {
		turn.Remaining, turn.Seconds = 0, 0
		log.Printf("Turn timed out for player %d", turn.ActiveID)
		m.nextTurn()
	}
}
