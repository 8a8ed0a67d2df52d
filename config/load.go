package config

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a config override. Missing sections and
// keys keep their current values.
type File struct {
	Game     Config         `yaml:"game" toml:"game"`
	Field    FieldConfig    `yaml:"field" toml:"field"`
	Obstacle ObstacleConfig `yaml:"obstacle" toml:"obstacle"`
	Shot     ShotConfig     `yaml:"shot" toml:"shot"`
	Blast    BlastConfig    `yaml:"blast" toml:"blast"`
	Player   PlayerConfig   `yaml:"player" toml:"player"`
	Match    MatchConfig    `yaml:"match" toml:"match"`
	Bot      BotConfigData  `yaml:"bot" toml:"bot"`
	UI       UIConfig       `yaml:"ui" toml:"ui"`

	// Keys maps action names ("fire", "skip") to ebiten key names.
	Keys map[string][]string `yaml:"keys" toml:"keys"`
}

// current copies the live values, slices included, so decoding into the
// copy never touches the globals.
func current() File {
	f := File{
		Game:     *C,
		Field:    Field,
		Obstacle: Obstacle,
		Shot:     Shot,
		Blast:    Blast,
		Player:   Player,
		Match:    Match,
		Bot:      Bot,
		UI:       UI,
		Keys:     keyNames(),
	}
	f.Obstacle.Palette = append([]color.RGBA(nil), Obstacle.Palette...)
	f.Match.Roster = append([]RosterEntry(nil), Match.Roster...)
	f.Bot.Formulas = append([]string(nil), Bot.Formulas...)
	return f
}

func keyNames() map[string][]string {
	keys := make(map[string][]string, len(Input.Bindings))
	for a, b := range Input.Bindings {
		keys[a.String()] = append([]string(nil), b.Keys...)
	}
	return keys
}

func (f File) apply() {
	game := f.Game
	C = &game
	Field = f.Field
	Obstacle = f.Obstacle
	Shot = f.Shot
	Blast = f.Blast
	Player = f.Player
	Match = f.Match
	Bot = f.Bot
	UI = f.UI
	for name, keys := range f.Keys {
		if a, ok := ActionByName(name); ok {
			Input.Bindings[a] = InputBinding{Keys: keys}
		}
	}
}

// LoadFile overrides the global configuration from a .yaml, .yml or .toml
// file. Nothing is changed when the file cannot be decoded or validated.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	f, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	f.apply()
	log.Printf("Loaded config: %s", path)
	return nil
}

// Decode parses data in the format named by ext on top of the current
// values and validates the result.
func Decode(ext string, data []byte) (File, error) {
	f := current()
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("decode yaml: %w", err)
		}
	case "toml":
		meta, err := toml.Decode(string(data), &f)
		if err != nil {
			return File{}, fmt.Errorf("decode toml: %w", err)
		}
		for _, key := range meta.Undecoded() {
			log.Printf("Warning: unknown config key %q", key.String())
		}
	default:
		return File{}, fmt.Errorf("unsupported config format %q", ext)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Validate rejects values the game cannot run with.
func (f File) Validate() error {
	switch {
	case f.Field.YEdge <= 0:
		return fmt.Errorf("field.y_edge must be positive, got %v", f.Field.YEdge)
	case f.Field.Proportion <= 0:
		return fmt.Errorf("field.proportion must be positive, got %v", f.Field.Proportion)
	case f.Obstacle.MinVertices < 3 || f.Obstacle.MaxVertices < f.Obstacle.MinVertices:
		return fmt.Errorf("obstacle vertices range [%d, %d] is invalid", f.Obstacle.MinVertices, f.Obstacle.MaxVertices)
	case f.Obstacle.MinWidth <= 0 || f.Obstacle.MaxWidth < f.Obstacle.MinWidth:
		return fmt.Errorf("obstacle width range [%d, %d] is invalid", f.Obstacle.MinWidth, f.Obstacle.MaxWidth)
	case f.Obstacle.MaxAttempts <= 0:
		return fmt.Errorf("obstacle.max_attempts must be positive, got %d", f.Obstacle.MaxAttempts)
	case f.Shot.Step <= 0 || f.Shot.SamplesPerTick <= 0:
		return fmt.Errorf("shot step and samples_per_tick must be positive")
	case f.Blast.Vertices < 3 || f.Blast.Radius <= 0 || f.Blast.Precision <= 0:
		return fmt.Errorf("blast needs at least 3 vertices, a positive radius and precision")
	case f.Match.MaxTurnTime <= 0:
		return fmt.Errorf("match.max_turn_time must be positive, got %v", f.Match.MaxTurnTime)
	case f.Bot.MinDelay < 0 || f.Bot.MaxDelay < f.Bot.MinDelay:
		return fmt.Errorf("bot delay range [%v, %v] is invalid", f.Bot.MinDelay, f.Bot.MaxDelay)
	case len(f.Bot.Formulas) == 0:
		return fmt.Errorf("bot.formulas must not be empty")
	case f.Game.TPS <= 0:
		return fmt.Errorf("game.tps must be positive, got %d", f.Game.TPS)
	}
	var teams [2]int
	for _, r := range f.Match.Roster {
		switch r.Team {
		case "left":
			teams[0]++
		case "right":
			teams[1]++
		default:
			return fmt.Errorf("match.roster: player %q has team %q, want left or right", r.Name, r.Team)
		}
	}
	if teams[0] == 0 || teams[1] == 0 {
		return fmt.Errorf("match.roster needs a player on each team")
	}
	for name := range f.Keys {
		if _, ok := ActionByName(name); !ok {
			return fmt.Errorf("keys: unknown action %q", name)
		}
	}
	return nil
}
