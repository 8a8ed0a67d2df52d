package components

import "testing"

func TestMatchDataScores(t *testing.T) {
	var m MatchData
	m.GetPlayerScore(0).Team = TeamLeft
	m.GetPlayerScore(1).Team = TeamRight
	m.GetPlayerScore(2).Team = TeamRight

	if got := m.GetLeader(); got != -1 {
		t.Fatalf("GetLeader with no kills = %d, want -1 (tie)", got)
	}

	m.AddKill(0, 1)
	m.AddKill(2, 1) // teammate: death only
	if got := m.Scores[0].Kills; got != 1 {
		t.Fatalf("shooter kills = %d, want 1", got)
	}
	if got := m.Scores[2].Kills; got != 0 {
		t.Fatalf("friendly kills = %d, want 0", got)
	}
	if got := m.Scores[1].Deaths; got != 2 {
		t.Fatalf("victim deaths = %d, want 2", got)
	}
	if got := m.GetLeader(); got != 0 {
		t.Fatalf("GetLeader = %d, want 0", got)
	}

	m.RecordRound(TeamLeft)
	m.RecordRound(-1)
	if m.Rounds != 2 || m.TeamWins[TeamLeft] != 1 || m.Draws != 1 {
		t.Fatalf("rounds = %d wins = %v draws = %d", m.Rounds, m.TeamWins, m.Draws)
	}
}

func TestMatchDataEmptyLeader(t *testing.T) {
	var m MatchData
	if got := m.GetLeader(); got != -2 {
		t.Fatalf("GetLeader = %d, want -2", got)
	}
}
