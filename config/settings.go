package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// DisplayConfig lists the window sizes the client offers.
type DisplayConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Display is the global display configuration
var Display DisplayConfig

func init() {
	Display = DisplayConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
		DefaultResolutionIndex: 0,
	}
}

// ResolutionAt returns the resolution at i, or the default one when i is
// out of range.
func ResolutionAt(i int) Resolution {
	if i < 0 || i >= len(Display.Resolutions) {
		i = Display.DefaultResolutionIndex
	}
	return Display.Resolutions[i]
}
