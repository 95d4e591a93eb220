package core

// WindowConfig describes the demo window.
type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	Resizable bool   `toml:"resizable"`
	VSync     bool   `toml:"vsync"`
	Samples   int    `toml:"samples"`
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     1280,
		Height:    720,
		Title:     "hexisland",
		Resizable: true,
		VSync:     true,
		Samples:   4,
	}
}
