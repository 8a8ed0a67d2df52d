package core

import (
	"image/color"
	"time"

	"github.com/automoto/mathgraph/components"
	cfg "github.com/automoto/mathgraph/config"
	"github.com/automoto/mathgraph/shared/gamemath"
	"github.com/automoto/mathgraph/shared/leveldata"
	"github.com/automoto/mathgraph/shared/obstacle"
)

// Options fixes everything a Match needs; the Match never reads the
// config package itself.
type Options struct {
	Bounds gamemath.Bounds
	Gen    obstacle.GenConfig
	Clip   obstacle.ClipConfig

	Step           float64 // sample spacing before the field ratio is applied
	SamplesPerTick int

	PlayerSize    float64 // footprint side for the reference field
	HitboxScale   float64
	SpawnMargin   float64
	SpawnAttempts int

	FriendlyFire bool
	MaxTurnTime  float64 // seconds

	BotMinDelay time.Duration
	BotMaxDelay time.Duration
	BotFormulas []string

	Palette []color.RGBA

	// Preset replaces random obstacles and spawns when set.
	Preset *leveldata.Field
}

// OptionsFromConfig builds Options from the global config values.
func OptionsFromConfig() Options {
	bounds := gamemath.NewBounds(cfg.Field.YEdge, cfg.Field.Proportion)
	return Options{
		Bounds: bounds,
		Gen: obstacle.GenConfig{
			Density:       cfg.Obstacle.Density,
			MaxProportion: cfg.Obstacle.MaxProportion,
			MinVertices:   cfg.Obstacle.MinVertices,
			MaxVertices:   cfg.Obstacle.MaxVertices,
			MinWidth:      cfg.Obstacle.MinWidth,
			MaxWidth:      cfg.Obstacle.MaxWidth,
			MaxAttempts:   cfg.Obstacle.MaxAttempts,
		},
		Clip: obstacle.ClipConfig{
			Ratio:       bounds.Ratio(),
			BlastRadius: cfg.Blast.Radius,
			Vertices:    cfg.Blast.Vertices,
			MinWidth:    cfg.Blast.MinWidth,
			MaxWidth:    cfg.Blast.MaxWidth,
			Precision:   cfg.Blast.Precision,
		},
		Step:           cfg.Shot.Step,
		SamplesPerTick: cfg.Shot.SamplesPerTick,
		PlayerSize:     cfg.Player.Size,
		HitboxScale:    cfg.Player.HitboxScale,
		SpawnMargin:    cfg.Player.SpawnMargin,
		SpawnAttempts:  cfg.Player.SpawnAttempts,
		FriendlyFire:   cfg.Match.FriendlyFire,
		MaxTurnTime:    cfg.Match.MaxTurnTime,
		BotMinDelay:    seconds(cfg.Bot.MinDelay),
		BotMaxDelay:    seconds(cfg.Bot.MaxDelay),
		BotFormulas:    append([]string(nil), cfg.Bot.Formulas...),
		Palette:        append([]color.RGBA(nil), cfg.Obstacle.Palette...),
	}
}

// WithPreset switches the field to a preset and rescales the blast.
func (o Options) WithPreset(p *leveldata.Field) Options {
	o.Preset = p
	o.Bounds = gamemath.NewBounds(p.YEdge, p.Proportion)
	o.Clip.Ratio = o.Bounds.Ratio()
	return o
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// RosterFromConfig converts the configured roster.
func RosterFromConfig() []PlayerSpec {
	roster := make([]PlayerSpec, 0, len(cfg.Match.Roster))
	for _, r := range cfg.Match.Roster {
		team, _ := ParseTeam(r.Team)
		roster = append(roster, PlayerSpec{Name: r.Name, Team: team, Bot: r.Bot})
	}
	return roster
}

// ParseTeam maps "left" and "right" to team numbers.
func ParseTeam(s string) (int, bool) {
	switch s {
	case "left", "l":
		return components.TeamLeft, true
	case "right", "r":
		return components.TeamRight, true
	}
	return -1, false
}
