// Package core runs a MathGraph match: the obstacle field, the turn state
// machine, shots in flight and bot players. A Match is advanced by Update
// from a single goroutine (GameLoop or the client's frame loop).
package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/automoto/mathgraph/archetypes"
	"github.com/automoto/mathgraph/components"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/shared/messages"
	"github.com/automoto/mathgraph/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrShotInFlight  = errors.New("a shot is already in flight")
	ErrRoundOver     = errors.New("round is over")
	ErrInvalidRoster = errors.New("roster needs at least one player per team")
	ErrUnknownPlayer = errors.New("unknown player")
)

// PlayerSpec is one roster entry. Team is components.TeamLeft or
// components.TeamRight.
type PlayerSpec struct {
	Name string
	Team int
	Bot  bool
}

// Match owns a donburi world with the field, the players and the turn
// state. It is not safe for concurrent use; bots hand their shots over
// through an internal channel drained by Update.
type Match struct {
	world   donburi.World
	opts    Options
	rng     *rand.Rand
	roster  []PlayerSpec
	state   *donburi.Entry
	players []*donburi.Entry // indexed by player ID
	order   [2][]int         // per-team rotation order, reshuffled each round

	intents   chan FireIntent
	turnSeq   uint64
	cancelBot context.CancelFunc
	bots      sync.WaitGroup
}

// NewMatch creates the match entities in world and starts the first round.
func NewMatch(world donburi.World, roster []PlayerSpec, opts Options, seed int64) (*Match, error) {
	var teams [2]int
	for _, p := range roster {
		if p.Team != components.TeamLeft && p.Team != components.TeamRight {
			return nil, fmt.Errorf("player %q has team %d: %w", p.Name, p.Team, ErrInvalidRoster)
		}
		teams[p.Team]++
	}
	if teams[0] == 0 || teams[1] == 0 {
		return nil, ErrInvalidRoster
	}

	m := &Match{
		world:   world,
		opts:    opts,
		rng:     rand.New(rand.NewSource(seed)),
		roster:  roster,
		intents: make(chan FireIntent, 1),
	}

	m.state = archetypes.Field.Spawn(world)
	components.Turn.SetValue(m.state, components.TurnData{
		State:       cfg.MatchStateFinished,
		WinningTeam: -1,
		SkipVotes:   make(map[int]bool),
	})
	match := components.Match.Get(m.state)
	for id, spec := range roster {
		var entry *donburi.Entry
		if spec.Bot {
			entry = archetypes.Player.Spawn(world, tags.Bot)
		} else {
			entry = archetypes.Player.Spawn(world)
		}
		components.Player.SetValue(entry, components.PlayerData{
			ID:   id,
			Name: spec.Name,
			Team: spec.Team,
			Bot:  spec.Bot,
		})
		m.players = append(m.players, entry)
		m.order[spec.Team] = append(m.order[spec.Team], id)

		score := match.GetPlayerScore(id)
		score.Name = spec.Name
		score.Team = spec.Team
	}

	if err := m.NewRound(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) World() donburi.World { return m.world }

func (m *Match) Options() Options { return m.opts }

func (m *Match) Field() *components.FieldData { return components.Field.Get(m.state) }

func (m *Match) Turn() *components.TurnData { return components.Turn.Get(m.state) }

func (m *Match) Shot() *components.ShotData { return components.Shot.Get(m.state) }

func (m *Match) Stats() *components.MatchData { return components.Match.Get(m.state) }

// Player returns the player with the given ID.
func (m *Match) Player(id int) (*components.PlayerData, bool) {
	if id < 0 || id >= len(m.players) {
		return nil, false
	}
	return components.Player.Get(m.players[id]), true
}

// Players returns every player in roster order.
func (m *Match) Players() []*components.PlayerData {
	out := make([]*components.PlayerData, len(m.players))
	for i, e := range m.players {
		out[i] = components.Player.Get(e)
	}
	return out
}

// ActivePlayer returns the ID of the player whose turn it is.
func (m *Match) ActivePlayer() int { return m.Turn().ActiveID }

// Finished reports whether the current round has ended.
func (m *Match) Finished() bool { return m.Turn().State == cfg.MatchStateFinished }

// Update advances the match by dt seconds: pending bot shots are started,
// the shot in flight samples one batch, and the turn clock runs while
// players aim. Events published during the tick are dispatched at the end.
func (m *Match) Update(dt float64) {
	m.drainIntents()

	switch m.Turn().State {
	case cfg.MatchStateFiring:
		m.advanceShot()
	case cfg.MatchStateAiming:
		m.tickClock(dt)
	}

	events.ProcessAllEvents(m.world)
}

// Fire starts a shot for playerID with the formula text. A formula that
// does not compile is returned as a *formula.TranslationError and no shot
// starts.
func (m *Match) Fire(playerID int, text string) error {
	turn := m.Turn()
	switch {
	case turn.State == cfg.MatchStateFinished:
		return ErrRoundOver
	case turn.State == cfg.MatchStateFiring:
		return ErrShotInFlight
	case playerID != turn.ActiveID:
		return ErrNotYourTurn
	}
	return m.startShot(playerID, text)
}

// Skip records playerID's vote to regenerate the field. When every human
// player has voted a new round starts at once. It reports whether the
// field was regenerated.
func (m *Match) Skip(playerID int) (bool, error) {
	p, ok := m.Player(playerID)
	if !ok {
		return false, ErrUnknownPlayer
	}
	turn := m.Turn()
	if turn.State == cfg.MatchStateFiring {
		return false, ErrShotInFlight
	}
	if p.Bot {
		return false, nil
	}
	turn.SkipVotes[playerID] = true
	for id, spec := range m.roster {
		if !spec.Bot && !turn.SkipVotes[id] {
			return false, nil
		}
	}
	log.Printf("Skip vote passed, regenerating field")
	if err := m.NewRound(); err != nil {
		return false, err
	}
	return true, nil
}

// Close stops any thinking bot and waits for it to exit.
func (m *Match) Close() {
	m.stopBot()
	m.bots.Wait()
}

func (m *Match) finishRound(winningTeam int) {
	m.stopBot()
	turn := m.Turn()
	turn.State = cfg.MatchStateFinished
	turn.WinningTeam = winningTeam
	turn.Clock = nil
	m.Stats().RecordRound(winningTeam)
	log.Printf("Round %d over, winning team: %d", m.Field().Round, winningTeam)
	messages.PublishTurn(m.world, messages.GameEnd{WinningTeam: winningTeam})
}

// roundWinner reports whether a team has been wiped out and which team
// won; -1 when nobody is left alive.
func (m *Match) roundWinner() (int, bool) {
	var alive [2]int
	for _, p := range m.Players() {
		if p.Alive {
			alive[p.Team]++
		}
	}
	switch {
	case alive[0] == 0 && alive[1] == 0:
		return -1, true
	case alive[0] == 0:
		return components.TeamRight, true
	case alive[1] == 0:
		return components.TeamLeft, true
	}
	return 0, false
}
