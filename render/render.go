// Package render draws a match snapshot with ebiten vector shapes. It never
// writes back into the match.
package render

import (
	"image/color"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/match"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Draw renders one frame. The screen is expected to match the stage size.
func Draw(screen *ebiten.Image, s match.Snapshot, paused bool) {
	drawArena(screen, s)
	drawHazards(screen, s.Hazards)
	drawPowerUps(screen, s.PowerUps)
	for _, p := range s.Players {
		drawFighter(screen, p, s.Frame)
	}
	drawTexts(screen, s.Texts)
	drawHUD(screen, s)

	switch {
	case paused:
		drawPause(screen)
	case s.Match.State != cfg.MatchStatePlaying:
		drawBanner(screen, s.Match)
	}
}

func drawArena(screen *ebiten.Image, s match.Snapshot) {
	a := s.Arena
	if a == nil {
		a = cfg.DefaultArena(cfg.ArenaSpaceStation)
	}
	screen.Fill(a.Background)

	ground := float32(cfg.Stage.GroundY)
	vector.FillRect(screen, 0, ground, float32(cfg.Stage.Width), float32(cfg.Stage.Height)-ground, a.Ground, false)

	for _, pl := range s.Platforms {
		c := a.Platform
		if !pl.Solid {
			c = fade(c, 60)
		}
		vector.FillRect(screen, float32(pl.X), float32(pl.Y), float32(pl.Config.Width), float32(pl.Config.Height), c, false)
		if pl.Config.Bouncy || pl.Config.Sticky {
			edge := cfg.Palette.Warning
			if pl.Config.Sticky {
				edge = cfg.Green
			}
			vector.StrokeLine(screen, float32(pl.X), float32(pl.Y), float32(pl.X+pl.Config.Width), float32(pl.Y), 2, edge, false)
		}
	}

	for _, hz := range a.Hazards {
		vector.FillRect(screen, float32(hz.X), float32(hz.Y), float32(hz.Width), float32(hz.Height), fade(cfg.Red, 140), false)
	}
}

func drawHazards(screen *ebiten.Image, shapes []components.HazardShape) {
	for _, sh := range shapes {
		c := hazardColor(sh)
		switch sh.Kind {
		case components.ShapeCircle:
			if sh.Warning {
				vector.StrokeCircle(screen, float32(sh.X), float32(sh.Y), float32(sh.Size), 2, c, true)
				continue
			}
			vector.FillCircle(screen, float32(sh.X), float32(sh.Y), float32(sh.Size), c, true)
		case components.ShapeRect:
			vector.FillRect(screen, float32(sh.X), float32(sh.Y), float32(sh.X2), float32(sh.Y2), c, false)
		case components.ShapeLine:
			width := float32(4)
			if sh.Warning {
				width = 1
			}
			vector.StrokeLine(screen, float32(sh.X), float32(sh.Y), float32(sh.X2), float32(sh.Y2), width, c, true)
		case components.ShapeZone:
			vector.StrokeRect(screen, float32(sh.X), float32(sh.Y), float32(sh.X2), float32(sh.Y2), 1, c, false)
		}
	}
}

func hazardColor(sh components.HazardShape) color.RGBA {
	if sh.Warning {
		return cfg.Palette.Warning
	}
	var c color.RGBA
	switch sh.Label {
	case "icicle", "current":
		c = cfg.Cyan
	case "arc", "drone":
		c = cfg.Yellow
	case "ghost":
		c = cfg.White
	case "jellyfish":
		c = color.RGBA{R: 217, G: 70, B: 239, A: 255}
	default:
		c = cfg.Orange
	}
	if !sh.Active {
		c = fade(c, 90)
	}
	return c
}

var powerUpColors = [components.PowerUpKindCount]color.RGBA{
	components.PowerUpSpeed:     cfg.Yellow,
	components.PowerUpJump:      cfg.Green,
	components.PowerUpGiant:     cfg.Orange,
	components.PowerUpShield:    cfg.Cyan,
	components.PowerUpRapidFire: cfg.Red,
}

func drawPowerUps(screen *ebiten.Image, pickups []components.PowerUpData) {
	r := float32(cfg.PowerUp.Size / 2)
	for _, pu := range pickups {
		if !pu.Active || pu.Kind < 0 || pu.Kind >= components.PowerUpKindCount {
			continue
		}
		vector.FillCircle(screen, float32(pu.X), float32(pu.Y), r, powerUpColors[pu.Kind], true)
		vector.StrokeCircle(screen, float32(pu.X), float32(pu.Y), r+2, 1, cfg.White, true)
	}
}

func fade(c color.RGBA, alpha uint8) color.RGBA {
	scale := float64(alpha) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: alpha,
	}
}
