package core

import (
	"log"

	"github.com/automoto/mathgraph/components"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/shared/messages"
)

// nextTurn ends the round when a team is wiped out, otherwise passes the
// turn to the next living player of the other team.
func (m *Match) nextTurn() {
	if winner, over := m.roundWinner(); over {
		m.finishRound(winner)
		return
	}

	turn := m.Turn()
	team := components.TeamLeft
	if components.Player.Get(m.players[turn.ActiveID]).Team == components.TeamLeft {
		team = components.TeamRight
	}

	ids := m.order[team]
	for i := 1; i <= len(ids); i++ {
		c := (turn.Cursor[team] + i) % len(ids)
		if components.Player.Get(m.players[ids[c]]).Alive {
			turn.Cursor[team] = c
			m.setActive(ids[c])
			return
		}
	}
}

// setActive hands the turn to id: the clock restarts, pending bot work is
// cancelled and a bot player starts thinking.
func (m *Match) setActive(id int) {
	m.stopBot()
	m.turnSeq++

	turn := m.Turn()
	turn.State = cfg.MatchStateAiming
	turn.ActiveID = id
	m.resetClock()

	p := components.Player.Get(m.players[id])
	log.Printf("Turn %d: %s (team %d)", m.turnSeq, p.Name, p.Team)

	messages.PublishTurn(m.world, messages.ActivePlayerChanged{PlayerID: id})
	messages.PublishTurn(m.world, messages.TimerReset{Seconds: turn.Seconds})

	if p.Bot {
		m.startBot(id)
	}
}
