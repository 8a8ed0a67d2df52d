package config

import "image/color"

// FieldConfig describes the coordinate field
type FieldConfig struct {
	YEdge          float64 `yaml:"y_edge" toml:"y_edge"`         // y value on the top edge
	Proportion     float64 `yaml:"proportion" toml:"proportion"` // XEdge = YEdge * Proportion
	AxesMarked     bool    `yaml:"axes_marked" toml:"axes_marked"`
	MarksFrequency int     `yaml:"marks_frequency" toml:"marks_frequency"`
	Preset         string  `yaml:"preset" toml:"preset"` // TMX file under assets/fields, empty for random
}

// ObstacleConfig contains obstacle generation and drawing values
type ObstacleConfig struct {
	Density       float64 `yaml:"density" toml:"density"` // average frequency in %
	MaxProportion float64 `yaml:"max_proportion" toml:"max_proportion"`
	MinVertices   int     `yaml:"min_vertices" toml:"min_vertices"`
	MaxVertices   int     `yaml:"max_vertices" toml:"max_vertices"`
	MinWidth      int     `yaml:"min_width" toml:"min_width"`
	MaxWidth      int     `yaml:"max_width" toml:"max_width"`
	MaxAttempts   int     `yaml:"max_attempts" toml:"max_attempts"` // candidates per obstacle

	// One colour is picked per round
	Palette     []color.RGBA `yaml:"-" toml:"-"`
	FillAlpha   uint8        `yaml:"-" toml:"-"`
	BorderAlpha uint8        `yaml:"-" toml:"-"`
}

// ShotConfig contains trajectory sampling values
type ShotConfig struct {
	Step           float64 `yaml:"step" toml:"step"` // x distance between samples, scaled by field ratio
	SamplesPerTick int     `yaml:"samples_per_tick" toml:"samples_per_tick"`
}

// BlastConfig contains the obstacle clipping values
type BlastConfig struct {
	Radius    float64 `yaml:"radius" toml:"radius"` // scaled by field ratio
	Vertices  int     `yaml:"vertices" toml:"vertices"`
	MinWidth  int     `yaml:"min_width" toml:"min_width"`
	MaxWidth  int     `yaml:"max_width" toml:"max_width"`
	Precision float64 `yaml:"precision" toml:"precision"` // integer grid step, divided by field ratio
}

// PlayerConfig contains player footprint and spawn values
type PlayerConfig struct {
	Size          float64 `yaml:"size" toml:"size"` // side of the footprint square for YEdge 16
	HitboxScale   float64 `yaml:"hitbox_scale" toml:"hitbox_scale"`
	SpawnMargin   float64 `yaml:"spawn_margin" toml:"spawn_margin"` // distance kept from top and bottom edges
	SpawnAttempts int     `yaml:"spawn_attempts" toml:"spawn_attempts"`
}

// RosterEntry is one player of the default roster. Team is "left" or
// "right".
type RosterEntry struct {
	Name string `yaml:"name" toml:"name"`
	Team string `yaml:"team" toml:"team"`
	Bot  bool   `yaml:"bot" toml:"bot"`
}

// MatchConfig contains turn and round rules
type MatchConfig struct {
	Roster       []RosterEntry `yaml:"roster" toml:"roster"`
	FriendlyFire bool          `yaml:"friendly_fire" toml:"friendly_fire"`
	MaxTurnTime  float64 `yaml:"max_turn_time" toml:"max_turn_time"` // seconds
	BlinkBelow   int     `yaml:"blink_below" toml:"blink_below"`     // HUD timer blinks under this many seconds
	EndDelay     float64 `yaml:"end_delay" toml:"end_delay"`         // seconds the result stays on screen
}

// UIConfig contains client layout and colours
type UIConfig struct {
	FieldMargin float64 `yaml:"field_margin" toml:"field_margin"`
	PanelHeight float64 `yaml:"panel_height" toml:"panel_height"`
	HUDFontSize float64 `yaml:"hud_font_size" toml:"hud_font_size"`
	LineWidth   float32 `yaml:"line_width" toml:"line_width"`

	Background  color.RGBA `yaml:"-" toml:"-"`
	AxisColor   color.RGBA `yaml:"-" toml:"-"`
	PathColor   color.RGBA `yaml:"-" toml:"-"`
	LeftTeam    color.RGBA `yaml:"-" toml:"-"`
	RightTeam   color.RGBA `yaml:"-" toml:"-"`
	DeadPlayer  color.RGBA `yaml:"-" toml:"-"`
	ActiveColor color.RGBA `yaml:"-" toml:"-"`
	TextColor   color.RGBA `yaml:"-" toml:"-"`
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	TPS    int `yaml:"tps" toml:"tps"`
}

// Global configuration instances
var C *Config
var Field FieldConfig
var Obstacle ObstacleConfig
var Shot ShotConfig
var Blast BlastConfig
var Player PlayerConfig
var Match MatchConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed   = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Gray       = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	DarkGray   = color.RGBA{R: 30, G: 30, B: 36, A: 255}
	BrightGold = color.RGBA{R: 255, G: 215, B: 80, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Field = FieldConfig{
		YEdge:          16,
		Proportion:     2.383,
		AxesMarked:     true,
		MarksFrequency: 5,
	}

	Obstacle = ObstacleConfig{
		Density:       20,
		MaxProportion: 2.383,
		MinVertices:   3,
		MaxVertices:   20,
		MinWidth:      35,
		MaxWidth:      100,
		MaxAttempts:   500,
		Palette: []color.RGBA{
			{R: 207, G: 14, B: 136, A: 255},
			{R: 37, G: 252, B: 13, A: 255},
			{R: 183, G: 16, B: 230, A: 255},
			{R: 255, G: 251, B: 10, A: 255},
			{R: 0, G: 255, B: 183, A: 255},
		},
		FillAlpha:   60,
		BorderAlpha: 150,
	}

	Shot = ShotConfig{
		Step:           0.025,
		SamplesPerTick: 12,
	}

	Blast = BlastConfig{
		Radius:    1.5,
		Vertices:  8,
		MinWidth:  85,
		MaxWidth:  100,
		Precision: 0.01,
	}

	Player = PlayerConfig{
		Size:          1.5,
		HitboxScale:   0.9,
		SpawnMargin:   0.5,
		SpawnAttempts: 500,
	}

	Match = MatchConfig{
		Roster: []RosterEntry{
			{Name: "Player", Team: "left"},
			{Name: "Bot", Team: "right", Bot: true},
		},
		FriendlyFire: true,
		MaxTurnTime:  150,
		BlinkBelow:   15,
		EndDelay:     3,
	}

	UI = UIConfig{
		FieldMargin: 16,
		PanelHeight: 110,
		HUDFontSize: 18,
		LineWidth:   1.5,
		Background:  DarkGray,
		AxisColor:   Gray,
		PathColor:   Red,
		LeftTeam:    LightBlue,
		RightTeam:   LightRed,
		DeadPlayer:  Gray,
		ActiveColor: BrightGold,
		TextColor:   White,
	}
}
