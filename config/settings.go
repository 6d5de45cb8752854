package config

import "image/color"

// SetupMenuConfig contains the match setup screen configuration
type SetupMenuConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	StartIdle       color.RGBA
	StartHover      color.RGBA
	TitleColor      color.RGBA
	LabelColor      color.RGBA
	TitleSize       float64
	NormalSize      float64
	SmallSize       float64
}

// SetupMenu is the global setup menu configuration
var SetupMenu SetupMenuConfig

func init() {
	SetupMenu = SetupMenuConfig{
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		PanelColor:      color.RGBA{R: 30, G: 30, B: 45, A: 255},
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		StartIdle:       color.RGBA{R: 40, G: 100, B: 40, A: 255},
		StartHover:      color.RGBA{R: 60, G: 140, B: 60, A: 255},
		TitleColor:      White,
		LabelColor:      color.RGBA{R: 200, G: 200, B: 200, A: 255},
		TitleSize:       32,
		NormalSize:      16,
		SmallSize:       12,
	}
}
