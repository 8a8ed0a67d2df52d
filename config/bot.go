package config

// BotConfigData holds bot player tuning
type BotConfigData struct {
	MinDelay float64  `yaml:"min_delay" toml:"min_delay"` // seconds of "thinking" before firing
	MaxDelay float64  `yaml:"max_delay" toml:"max_delay"`
	Formulas []string `yaml:"formulas" toml:"formulas"` // pool a bot picks from
}

// Bot holds bot configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		MinDelay: 1.5,
		MaxDelay: 4,
		Formulas: []string{
			"0",
			"x/4",
			"-x/4",
			"sin x",
			"2sin(x/2)",
			"3cos(x/3)",
			"x^2/40",
			"-x^2/40",
			"(tan x)/1000",
			"sqrt(abs(x))",
			"x/10 + sin(2x)",
			"5sin(x/5)",
		},
	}
}
