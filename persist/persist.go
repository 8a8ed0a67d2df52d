// Package persist stores client settings and accumulated match statistics
// with gdata.
package persist

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/mathgraph/components"
	"github.com/quasilyte/gdata"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	settingsKey = "settings"
	statsKey    = "stats"
)

// itemStore is the part of *gdata.Manager the package uses.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Store reads and writes saved data. A nil *Store or one opened without a
// backend loads nothing and saves nothing.
type Store struct {
	items itemStore
}

// Open opens the per-user data directory of appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open persistence: %w", err)
	}
	return &Store{items: m}, nil
}

func (s *Store) enabled() bool { return s != nil && s.items != nil }

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool   `json:"fullscreen"`
	ResolutionIndex int    `json:"resolutionIndex"`
	PlayerName      string `json:"playerName"`
	LastFormula     string `json:"lastFormula"`
}

// LoadSettings returns nil, nil when nothing was saved yet.
func (s *Store) LoadSettings() (*SavedSettings, error) {
	if !s.enabled() {
		return nil, nil
	}
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func (s *Store) SaveSettings(settings *SavedSettings) error {
	if !s.enabled() {
		return nil
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// PlayerTotals are one player's results over every saved match.
type PlayerTotals struct {
	Kills  int `msgpack:"k"`
	Deaths int `msgpack:"d"`
	Shots  int `msgpack:"s"`
}

// Stats accumulates finished rounds across sessions. Players are keyed by
// name since IDs are only stable within a match.
type Stats struct {
	Rounds   int                     `msgpack:"r"`
	TeamWins [2]int                  `msgpack:"w"`
	Draws    int                     `msgpack:"dr"`
	Players  map[string]PlayerTotals `msgpack:"p"`
}

// Add folds the results of a match into s.
func (s *Stats) Add(m *components.MatchData) {
	s.Rounds += m.Rounds
	s.TeamWins[0] += m.TeamWins[0]
	s.TeamWins[1] += m.TeamWins[1]
	s.Draws += m.Draws
	if s.Players == nil {
		s.Players = make(map[string]PlayerTotals)
	}
	for _, score := range m.Scores {
		t := s.Players[score.Name]
		t.Kills += score.Kills
		t.Deaths += score.Deaths
		t.Shots += score.Shots
		s.Players[score.Name] = t
	}
}

// LoadStats returns empty stats when nothing was saved yet.
func (s *Store) LoadStats() (*Stats, error) {
	stats := &Stats{Players: make(map[string]PlayerTotals)}
	if !s.enabled() {
		return stats, nil
	}
	data, err := s.items.LoadItem(statsKey)
	if err != nil {
		log.Printf("Warning: Could not load stats: %v", err)
		return stats, nil
	}
	if len(data) == 0 {
		return stats, nil
	}
	if err := msgpack.Unmarshal(data, stats); err != nil {
		return &Stats{Players: make(map[string]PlayerTotals)}, fmt.Errorf("decode stats: %w", err)
	}
	if stats.Players == nil {
		stats.Players = make(map[string]PlayerTotals)
	}
	return stats, nil
}

func (s *Store) SaveStats(stats *Stats) error {
	if !s.enabled() {
		return nil
	}
	data, err := msgpack.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}
	if err := s.items.SaveItem(statsKey, data); err != nil {
		log.Printf("Warning: Could not save stats: %v", err)
		return err
	}
	return nil
}

// RecordMatch adds the match results to the saved stats.
func (s *Store) RecordMatch(m *components.MatchData) (*Stats, error) {
	stats, err := s.LoadStats()
	if err != nil {
		log.Printf("Warning: discarding unreadable stats: %v", err)
	}
	stats.Add(m)
	return stats, s.SaveStats(stats)
}
