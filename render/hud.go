package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/fonts"
	"github.com/automoto/stickfight/match"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	hudBarWidth  = 300
	hudBarHeight = 16
	hudMargin    = 20
)

// drawHUD renders both health bars, active buffs and the round score.
func drawHUD(screen *ebiten.Image, s match.Snapshot) {
	width := float64(cfg.Stage.Width)
	for i, p := range s.Players {
		x := float64(hudMargin)
		if i == 1 {
			x = width - hudMargin - hudBarWidth
		}
		drawHealthBar(screen, p, x, hudMargin)
	}

	m := s.Match
	score := fmt.Sprintf("%d - %d", m.Wins(cfg.Player1), m.Wins(cfg.Player2))
	drawCentered(screen, score, fonts.Title.Get(), width/2, 44, cfg.Palette.Text)
	round := fmt.Sprintf("Round %d  Best of %d  %s", m.Round, m.BestOf, m.Arena)
	drawCentered(screen, round, fonts.Small.Get(), width/2, 64, cfg.Palette.Text)
}

// drawHealthBar draws a fighter's bar with its health rounded up, so a sliver
// of health never reads as zero.
func drawHealthBar(screen *ebiten.Image, p components.PlayerData, x, y float64) {
	ratio := math.Max(0, math.Min(1, p.Health/cfg.Combat.MaxHealth))
	fill := cfg.Palette.Health
	if ratio < 0.25 {
		fill = cfg.Palette.HealthLow
	}

	vector.FillRect(screen, float32(x), float32(y), hudBarWidth, hudBarHeight, cfg.Palette.HealthBack, false)
	vector.FillRect(screen, float32(x), float32(y), float32(hudBarWidth*ratio), hudBarHeight, fill, false)

	label := fmt.Sprintf("P%d  %d", int(p.ID), int(math.Ceil(p.Health)))
	c := cfg.Palette.Player1
	if p.ID == cfg.Player2 {
		c = cfg.Palette.Player2
	}
	text.Draw(screen, label, fonts.HUD.Get(), int(x), int(y)+hudBarHeight+18, c)

	if buffs := buffLine(p.Buffs); buffs != "" {
		text.Draw(screen, buffs, fonts.Small.Get(), int(x), int(y)+hudBarHeight+34, cfg.Palette.Text)
	}
}

// buffLine lists the running buffs with the seconds left on each.
func buffLine(b components.Buffs) string {
	var parts []string
	for kind := components.PowerUpKind(0); kind < components.PowerUpKindCount; kind++ {
		t := b.Timer(kind)
		if t == nil || !t.On() {
			continue
		}
		secs := (t.Remaining + cfg.Window.TPS - 1) / cfg.Window.TPS
		parts = append(parts, fmt.Sprintf("%s %ds", strings.ToUpper(kind.String()), secs))
	}
	return strings.Join(parts, "  ")
}

func drawTexts(screen *ebiten.Image, texts []components.FloatingText) {
	face := fonts.HUD.Get()
	for _, t := range texts {
		c := cfg.Palette.Text
		switch {
		case strings.HasSuffix(t.Text, "!"):
			c = cfg.Palette.Banner
		case strings.HasPrefix(t.Text, "-"):
			c = cfg.Red
		}
		drawCentered(screen, t.Text, face, t.X, t.Y, c)
	}
}

// drawBanner announces the end of a round or of the match.
func drawBanner(screen *ebiten.Image, m components.MatchData) {
	width := float64(cfg.Stage.Width)
	height := float64(cfg.Stage.Height)

	vector.FillRect(screen, 0, float32(height/2-70), float32(width), 120, cfg.Palette.Overlay, false)

	title := fmt.Sprintf("PLAYER %d WINS THE ROUND", int(m.RoundWinner))
	hint := "Enter: next round   Backspace: setup"
	if m.State == cfg.MatchStateFinished {
		title = fmt.Sprintf("PLAYER %d WINS THE MATCH", int(m.MatchWinner))
		hint = "Enter: new match   Backspace: setup"
	}
	drawCentered(screen, title, fonts.Banner.Get(), width/2, height/2-10, cfg.Palette.Banner)
	drawCentered(screen, hint, fonts.HUD.Get(), width/2, height/2+30, cfg.Palette.Text)
}

func drawPause(screen *ebiten.Image) {
	width := float64(cfg.Stage.Width)
	height := float64(cfg.Stage.Height)

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Palette.Overlay, false)
	drawCentered(screen, "PAUSED", fonts.Banner.Get(), width/2, height/2, cfg.Palette.Text)
	drawCentered(screen, "Esc: resume   Backspace: setup", fonts.Small.Get(), width/2, height-12, cfg.Palette.Text)
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, baseline float64, c color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(cx)-w/2, int(baseline), c)
}
