package core

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/automoto/mathgraph/shared/formula"
)

// FireIntent is a shot decided off the game loop. Turn identifies the turn
// it was decided for; intents for an earlier turn are dropped.
type FireIntent struct {
	PlayerID int
	Formula  string
	Turn     uint64
}

// DefaultBotFormulas is used when Options.BotFormulas is empty.
var DefaultBotFormulas = []string{
	"0",
	"x/4",
	"-x/4",
	"sin(x)",
	"2sin(x/3)",
	"x^2/40",
	"-x^2/40",
	"3cos(x/5)",
	"sqrt(abs(x))",
	"atan(x)",
}

// startBot lets bot player id think in its own goroutine. The intent
// arrives on m.intents and is picked up by Update.
func (m *Match) startBot(id int) {
	pool := m.opts.BotFormulas
	if len(pool) == 0 {
		pool = DefaultBotFormulas
	}
	intent := FireIntent{
		PlayerID: id,
		Formula:  pool[m.rng.Intn(len(pool))],
		Turn:     m.turnSeq,
	}
	delay := m.opts.BotMinDelay
	if spread := m.opts.BotMaxDelay - m.opts.BotMinDelay; spread > 0 {
		delay += time.Duration(m.rng.Int63n(int64(spread)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelBot = cancel
	m.bots.Add(1)
	go func() {
		defer m.bots.Done()
		think(ctx, delay, intent, m.intents)
	}()
}

func think(ctx context.Context, delay time.Duration, intent FireIntent, out chan<- FireIntent) {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	select {
	case out <- intent:
	case <-ctx.Done():
	}
}

func (m *Match) stopBot() {
	if m.cancelBot != nil {
		m.cancelBot()
		m.cancelBot = nil
	}
}

// drainIntents fires every pending intent that still belongs to the
// current turn.
func (m *Match) drainIntents() {
	for {
		select {
		case intent := <-m.intents:
			if intent.Turn != m.turnSeq || intent.PlayerID != m.Turn().ActiveID {
				continue
			}
			err := m.Fire(intent.PlayerID, intent.Formula)
			if errors.Is(err, formula.ErrTranslation) {
				log.Printf("Bot %d could not fire %q: %v", intent.PlayerID, intent.Formula, err)
				m.nextTurn()
			}
		default:
			return
		}
	}
}
