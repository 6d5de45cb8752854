package arenas

import (
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

type drone struct {
	Pos     dmath.Vec2
	Vel     dmath.Vec2
	Blink   float64
	LightOn bool
}

// arc is an electric line segment. It hurts only while Lifetime is above the
// danger threshold and the warning phase is over.
type arc struct {
	X1, Y1, X2, Y2 float64
	Lifetime       int
	Warning        int
}

// neonCity: electric arcs and patrol drones that fire arcs at the nearest
// fighter. Its moving platforms are plain arena geometry.
type neonCity struct {
	*base
	tuning cfg.HazardTuning

	drones []drone
	arcs   []arc
	spawn  countdown
}

func newNeonCity(arena *cfg.ArenaConfig) *neonCity {
	return &neonCity{base: newBase(arena), tuning: arena.Tuning}
}

func (n *neonCity) Initialize(sim *components.SimulationData) {
	n.arcs = nil
	n.spawn = newCountdown(n.tuning.Arcs.Spawn)

	n.drones = make([]drone, 0, n.tuning.Drones.Count)
	for i := 0; i < n.tuning.Drones.Count; i++ {
		n.drones = append(n.drones, drone{
			Pos:   dmath.NewVec2(sim.Between(0, cfg.Stage.Width), sim.Between(100, 300)),
			Vel:   dmath.NewVec2(sim.Between(-1, 1), sim.Between(-0.5, 0.5)),
			Blink: sim.Between(0.1, 0.2),
		})
	}
}

func (n *neonCity) arcLifetime(sim *components.SimulationData) int {
	return n.tuning.Arcs.Lifetime + sim.IntN(n.tuning.Arcs.LifeJitter)
}

func (n *neonCity) Update(sim *components.SimulationData, players [2]components.PlayerData) [2]components.PlayerData {
	n.updateDrones(sim, players)

	if n.spawn.Tick(sim) {
		x := sim.Between(100, cfg.Stage.Width-100)
		y := sim.Between(100, 250)
		n.arcs = append(n.arcs, arc{
			X1:       x,
			Y1:       y,
			X2:       x + sim.Between(-50, 50),
			Y2:       y + sim.Between(50, 100),
			Lifetime: n.arcLifetime(sim),
			Warning:  n.tuning.Arcs.Spawn.Warning,
		})
	}

	t := n.tuning.Arcs
	kept := n.arcs[:0]
	for _, a := range n.arcs {
		if a.Warning > 0 {
			a.Warning--
			kept = append(kept, a)
			continue
		}
		a.Lifetime--
		if a.Lifetime > t.DangerAbove {
			for i := range players {
				p := &players[i]
				if gamemath.SegmentDistance(p.X, p.Y, a.X1, a.Y1, a.X2, a.Y2) < t.Hit.Reach {
					strike(p, sim, t.Hit, &p.Status.Stunned, "SHOCKED!")
				}
			}
		}
		if a.Lifetime > 0 {
			kept = append(kept, a)
		}
	}
	n.arcs = kept
	return players
}

func (n *neonCity) updateDrones(sim *components.SimulationData, players [2]components.PlayerData) {
	t := n.tuning.Drones
	for i := range n.drones {
		d := &n.drones[i]
		d.Pos.X += d.Vel.X
		d.Pos.Y += d.Vel.Y

		if d.Pos.X < t.MinX || d.Pos.X > t.MaxX {
			d.Vel.X = -d.Vel.X
		}
		if d.Pos.Y < t.MinY || d.Pos.Y > t.MaxY {
			d.Vel.Y = -d.Vel.Y
		}
		if sim.Chance(t.TurnChance) {
			d.Vel = dmath.NewVec2(sim.Between(-1, 1), sim.Between(-0.5, 0.5))
		}

		d.LightOn = math.Sin(float64(sim.Frame)*d.Blink) > 0
		if !sim.Chance(t.FireChance) || !d.LightOn {
			continue
		}

		target := &players[0]
		d1 := gamemath.Distance(d.Pos.X, d.Pos.Y, players[0].X, players[0].Y)
		d2 := gamemath.Distance(d.Pos.X, d.Pos.Y, players[1].X, players[1].Y)
		if d1 >= d2 {
			target = &players[1]
		}
		n.arcs = append(n.arcs, arc{
			X1:       d.Pos.X,
			Y1:       d.Pos.Y,
			X2:       target.X,
			Y2:       target.Y,
			Lifetime: n.arcLifetime(sim),
		})
	}
}

func (n *neonCity) ApplyToPlayer(p components.PlayerData, _ *components.SimulationData) components.PlayerData {
	if p.Status.Stunned.On() {
		p.VX *= n.tuning.Arcs.StunnedDrag
		p.Attack.Cancel()
	}
	return p
}

func (n *neonCity) Shapes() []components.HazardShape {
	shapes := make([]components.HazardShape, 0, len(n.drones)+len(n.arcs))
	for _, d := range n.drones {
		shapes = append(shapes, components.HazardShape{
			Kind:   components.ShapeCircle,
			Label:  "drone",
			X:      d.Pos.X,
			Y:      d.Pos.Y,
			Size:   12,
			Active: d.LightOn,
		})
	}
	for _, a := range n.arcs {
		shapes = append(shapes, components.HazardShape{
			Kind:    components.ShapeLine,
			Label:   "arc",
			X:       a.X1,
			Y:       a.Y1,
			X2:      a.X2,
			Y2:      a.Y2,
			Warning: a.Warning > 0,
			Active:  a.Warning == 0 && a.Lifetime > n.tuning.Arcs.DangerAbove,
		})
	}
	return shapes
}
