package render

import (
	"image/color"
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	headRadius  = 10
	limbWidth   = 3
	squashScale = 0.85
)

// drawFighter renders a stickman with its feet at (p.X, p.Y).
func drawFighter(screen *ebiten.Image, p components.PlayerData, frame int) {
	c := fighterColor(p, frame)

	scaleX, scaleY := 1.0, 1.0
	if p.Buffs.Giant.On() {
		scaleX = cfg.Stage.GiantWidth / cfg.Stage.PlayerWidth
		scaleY = scaleX
	}
	if p.Squash > 0 {
		scaleY *= squashScale
	}
	h := cfg.Stage.PlayerHeight * scaleY
	w := cfg.Stage.PlayerWidth * scaleX
	dir := p.Direction
	if dir == 0 {
		dir = cfg.DirectionRight
	}

	pt := func(dx, dy float64) (float32, float32) {
		return float32(p.X + dx*w/cfg.Stage.PlayerWidth), float32(p.Y - dy*h/cfg.Stage.PlayerHeight)
	}
	line := func(x0, y0, x1, y1 float64) {
		ax, ay := pt(x0, y0)
		bx, by := pt(x1, y1)
		vector.StrokeLine(screen, ax, ay, bx, by, limbWidth, c, true)
	}

	hx, hy := pt(0, 70)
	vector.StrokeCircle(screen, hx, hy, float32(headRadius*scaleX), limbWidth, c, true)
	line(0, 60, 0, 28)

	// Legs
	switch p.Attack.Type {
	case cfg.AttackKick, cfg.AttackSlam:
		line(0, 28, -dir*10, 0)
		line(0, 28, dir*32, 30)
	default:
		stride := 0.0
		if math.Abs(p.VX) > 0.5 && !p.Jumping {
			stride = math.Sin(float64(frame)*0.3) * 8
		}
		line(0, 28, -10+stride, 0)
		line(0, 28, 10-stride, 0)
	}

	// Arms
	switch {
	case p.Winner:
		line(0, 55, -15, 80)
		line(0, 55, 15, 80)
	case p.Attack.Type == cfg.AttackPunch || p.Attack.Type == cfg.AttackSpecial:
		line(0, 52, -dir*12, 35)
		line(0, 52, dir*30, 52)
	case p.Attack.Type == cfg.AttackUppercut:
		line(0, 52, -dir*12, 35)
		line(0, 52, dir*12, 78)
	default:
		line(0, 52, -14, 32)
		line(0, 52, 14, 32)
	}

	if p.Shielded() {
		cx, cy := pt(0, 40)
		vector.StrokeCircle(screen, cx, cy, float32(h*0.65), 2, cfg.Palette.Shield, true)
	}
	if p.OxygenTracked {
		drawOxygen(screen, p, float64(hx), float64(hy)-headRadius-10)
	}
}

// fighterColor tints a fighter by its status. Hit-stunned fighters blink.
func fighterColor(p components.PlayerData, frame int) color.RGBA {
	c := cfg.Palette.Player1
	if p.ID == cfg.Player2 {
		c = cfg.Palette.Player2
	}
	switch {
	case p.Status.Possessed.On():
		c = cfg.White
	case p.Status.Frozen.On():
		c = cfg.Cyan
	case p.Status.Stunned.On():
		c = cfg.Yellow
	case p.Status.Burning.On():
		c = cfg.Orange
	case p.Status.Poisoned.On():
		c = cfg.Green
	}
	if p.HitReaction > 0 && frame%4 < 2 {
		c = fade(c, 120)
	}
	return c
}

func drawOxygen(screen *ebiten.Image, p components.PlayerData, x, y float64) {
	const barWidth, barHeight = 40.0, 4.0
	max := float64(cfg.Hazards.Oxygen.Capacity)
	if max <= 0 {
		return
	}
	ratio := math.Max(0, math.Min(1, float64(p.Oxygen)/max))
	left := float32(x - barWidth/2)
	vector.FillRect(screen, left, float32(y), barWidth, barHeight, cfg.Palette.HealthBack, false)
	vector.FillRect(screen, left, float32(y), float32(barWidth*ratio), barHeight, cfg.Cyan, false)
}
