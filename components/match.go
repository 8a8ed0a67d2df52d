package components

import (
	"github.com/yohamta/donburi"
)

// PlayerScore tracks a player's match statistics
type PlayerScore struct {
	PlayerID int
	Name     string
	Team     int
	Kills    int
	Deaths   int
	Shots    int
}

// MatchData stores scores across rounds.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	Rounds   int
	TeamWins [2]int
	Draws    int
	Scores   []PlayerScore // indexed by player ID
}

var Match = donburi.NewComponentType[MatchData]()

// GetPlayerScore returns the score for a player, creating it if needed
func (m *MatchData) GetPlayerScore(playerID int) *PlayerScore {
	for len(m.Scores) <= playerID {
		m.Scores = append(m.Scores, PlayerScore{PlayerID: len(m.Scores), Team: -1})
	}
	return &m.Scores[playerID]
}

// AddKill credits shooter with a kill and victim with a death.
// Shooting a teammate does not count as a kill.
func (m *MatchData) AddKill(shooterID, victimID int) {
	victim := m.GetPlayerScore(victimID)
	victim.Deaths++
	shooter := m.GetPlayerScore(shooterID)
	if shooter.Team != victim.Team {
		shooter.Kills++
	}
}

// RecordRound counts a finished round. winningTeam is -1 for a draw.
func (m *MatchData) RecordRound(winningTeam int) {
	m.Rounds++
	if winningTeam < 0 || winningTeam > 1 {
		m.Draws++
		return
	}
	m.TeamWins[winningTeam]++
}

// GetLeader returns the player ID with the most kills (-1 for tie, -2 for no scores)
func (m *MatchData) GetLeader() int {
	if len(m.Scores) == 0 {
		return -2
	}

	maxKills := -1
	leader := -1
	tied := false

	for _, score := range m.Scores {
		if score.Kills > maxKills {
			maxKills = score.Kills
			leader = score.PlayerID
			tied = false
		} else if score.Kills == maxKills {
			tied = true
		}
	}

	if tied {
		return -1
	}
	return leader
}
