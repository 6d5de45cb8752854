package arenas

import (
	"fmt"
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// countdown triggers a spawn when it reaches zero and re-arms itself with
// Interval plus a random jitter.
type countdown struct {
	Remaining int
	tuning    cfg.SpawnTuning
}

func newCountdown(t cfg.SpawnTuning) countdown {
	return countdown{Remaining: t.First, tuning: t}
}

// Tick advances the countdown and reports whether it fired this frame.
func (c *countdown) Tick(sim *components.SimulationData) bool {
	c.Remaining--
	if c.Remaining > 0 {
		return false
	}
	c.Remaining = c.tuning.Interval + sim.IntN(c.tuning.Jitter)
	return true
}

// projectile is a moving hazard actor. While Warning is above zero it only
// telegraphs: it neither moves nor hurts.
type projectile struct {
	Pos     dmath.Vec2
	Vel     dmath.Vec2
	Size    float64 // Radius for round hazards, width for icicles
	Height  float64
	Gravity float64
	Warning int
}

// advance runs one frame of the projectile's kinematics. It returns false
// during the warning phase.
func (p *projectile) advance() bool {
	if p.Warning > 0 {
		p.Warning--
		return false
	}
	p.Vel.Y += p.Gravity
	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
	return true
}

func (p *projectile) distanceTo(pl *components.PlayerData) float64 {
	return math.Hypot(pl.X-p.Pos.X, pl.Y-p.Pos.Y)
}

// offStage reports whether the point left the stage by more than margin.
func offStage(pos dmath.Vec2, margin float64) bool {
	return pos.X < -margin || pos.X > cfg.Stage.Width+margin ||
		pos.Y < -margin || pos.Y > cfg.Stage.Height+margin
}

// strike lands a hazard hit on a fighter: damage, hit reaction, an optional
// status and a floating text. Nothing happens to a shielded fighter or off
// the hit period. It reports whether the hit landed.
func strike(p *components.PlayerData, sim *components.SimulationData, hit cfg.HitTuning, status *components.Timer, label string) bool {
	if p.Shielded() || !sim.Every(hit.Period) {
		return false
	}
	p.TakeDamage(hit.Damage)
	if hit.Stun > 0 {
		p.HitReaction = hit.Stun
	}
	if status != nil {
		p.Afflict(status, hit.Status)
	}
	sim.AddText(damageText(hit.Damage, label), p.X, p.Y-50, cfg.Text.DamageLifetime, p.ID)
	return true
}

func damageText(amount float64, label string) string {
	text := fmt.Sprintf("-%d", int(math.Round(amount)))
	if label != "" {
		text += " " + label
	}
	return text
}

func circleShape(label string, p projectile) components.HazardShape {
	return components.HazardShape{
		Kind:    components.ShapeCircle,
		Label:   label,
		X:       p.Pos.X,
		Y:       p.Pos.Y,
		Size:    p.Size,
		Warning: p.Warning > 0,
		Active:  p.Warning == 0,
	}
}

func zoneShape(label string, z cfg.ZoneConfig, active bool) components.HazardShape {
	return components.HazardShape{
		Kind:   components.ShapeZone,
		Label:  label,
		X:      z.X,
		Y:      z.Y,
		X2:     z.Width,
		Y2:     z.Height,
		Active: active,
	}
}
