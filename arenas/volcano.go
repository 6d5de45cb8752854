package arenas

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

const surgeBannerLifetime = 90

type vent struct {
	X, Y, Width, Height float64
	Next                int // Frames until the next eruption
	Erupting            int // Frames left in the current eruption
}

type lavaSurge struct {
	Active bool
	Timer  int
	Height float64
}

// volcano: erupting vents, meteors and periodic lava surges.
type volcano struct {
	*base
	tuning cfg.HazardTuning

	vents   []vent
	meteors []projectile
	spawn   countdown
	surge   lavaSurge
}

func newVolcano(arena *cfg.ArenaConfig) *volcano {
	return &volcano{base: newBase(arena), tuning: arena.Tuning}
}

func (v *volcano) Initialize(sim *components.SimulationData) {
	v.meteors = nil
	v.spawn = newCountdown(v.tuning.Meteors.Spawn)
	v.surge = lavaSurge{Timer: v.tuning.LavaSurge.First}

	v.vents = v.vents[:0]
	for _, z := range v.arena.ZonesOf(cfg.ZoneVolcano) {
		v.vents = append(v.vents, vent{
			X:      z.X,
			Y:      z.Y,
			Width:  z.Width,
			Height: z.Height,
			Next:   z.FirstFire + sim.IntN(v.tuning.Eruptions.FirstJitter),
		})
	}
}

func (v *volcano) Update(sim *components.SimulationData, players [2]components.PlayerData) [2]components.PlayerData {
	v.updateVents(sim)

	if v.spawn.Tick(sim) {
		v.meteors = append(v.meteors, projectile{
			Pos:     dmath.NewVec2(sim.Between(100, cfg.Stage.Width-100), -30),
			Size:    sim.Between(15, 30),
			Vel:     dmath.NewVec2(sim.Between(-2, 2), sim.Between(3, 6)),
			Warning: v.tuning.Meteors.Spawn.Warning,
		})
	}

	hit := v.tuning.Meteors.Hit
	kept := v.meteors[:0]
	for _, m := range v.meteors {
		if !m.advance() {
			kept = append(kept, m)
			continue
		}
		if m.Pos.Y > cfg.Stage.Height {
			continue
		}
		consumed := false
		for i := range players {
			p := &players[i]
			if m.distanceTo(p) < m.Size+hit.Reach {
				strike(p, sim, hit, &p.Status.Burning, "BURNING!")
				consumed = true
				break
			}
		}
		if !consumed {
			kept = append(kept, m)
		}
	}
	v.meteors = kept

	v.updateSurge(sim, &players)
	return players
}

func (v *volcano) updateVents(sim *components.SimulationData) {
	e := v.tuning.Eruptions
	for i := range v.vents {
		vt := &v.vents[i]
		vt.Next--
		if vt.Next <= 0 {
			vt.Erupting = e.Duration
			vt.Next = e.Interval + sim.IntN(e.Jitter)
			sim.AddText("VOLCANO ERUPTING!", vt.X, vt.Y-100, cfg.Text.BannerLifetime, cfg.NoPlayer)
			for k := 0; k < e.MeteorsPerEruption; k++ {
				v.meteors = append(v.meteors, projectile{
					Pos:     dmath.NewVec2(vt.X+vt.Width/2, vt.Y),
					Size:    sim.Between(15, 30),
					Vel:     dmath.NewVec2(sim.Between(-5, 5), -sim.Between(10, 15)),
					Gravity: sim.Between(0.2, 0.3),
				})
			}
		}
		if vt.Erupting > 0 {
			vt.Erupting--
		}
	}
}

func (v *volcano) updateSurge(sim *components.SimulationData, players *[2]components.PlayerData) {
	t := v.tuning.LavaSurge
	s := &v.surge

	s.Timer--
	if !s.Active {
		if s.Timer <= 0 {
			s.Active = true
			s.Timer = t.Duration
			sim.AddText("LAVA SURGE INCOMING!", cfg.Stage.Width/2-100, cfg.Stage.Height/2, surgeBannerLifetime, cfg.NoPlayer)
		}
		return
	}

	s.Height = gamemath.SurgeHeight(s.Timer, t.Duration, t.MaxHeight)
	lavaY := v.LavaLine()
	for i := range players {
		p := &players[i]
		if p.Y > lavaY {
			strike(p, sim, t.Hit, &p.Status.Burning, "BURNING!")
		}
	}

	if s.Timer <= 0 {
		s.Active = false
		s.Timer = t.Interval + sim.IntN(t.Jitter)
		s.Height = 0
	}
}

// LavaLine is the current top of the lava.
func (v *volcano) LavaLine() float64 {
	return v.tuning.LavaSurge.BaseLine - v.surge.Height
}

func (v *volcano) Shapes() []components.HazardShape {
	shapes := make([]components.HazardShape, 0, len(v.vents)+len(v.meteors)+1)
	for _, vt := range v.vents {
		shapes = append(shapes, components.HazardShape{
			Kind:   components.ShapeRect,
			Label:  "volcano",
			X:      vt.X,
			Y:      vt.Y - vt.Height,
			X2:     vt.Width,
			Y2:     vt.Height,
			Active: vt.Erupting > 0,
		})
	}
	for _, m := range v.meteors {
		shapes = append(shapes, circleShape("meteor", m))
	}
	if v.surge.Active {
		lavaY := v.LavaLine()
		shapes = append(shapes, components.HazardShape{
			Kind:   components.ShapeRect,
			Label:  "lava_surge",
			Y:      lavaY,
			X2:     cfg.Stage.Width,
			Y2:     cfg.Stage.Height - lavaY,
			Active: true,
		})
	}
	return shapes
}
