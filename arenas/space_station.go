package arenas

import (
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// spaceStation: pulsing gravity wells and asteroids drifting across the
// stage.
type spaceStation struct {
	*base
	tuning cfg.HazardTuning

	wellStrength float64
	asteroids    []projectile
	spawn        countdown
}

func newSpaceStation(arena *cfg.ArenaConfig) *spaceStation {
	return &spaceStation{base: newBase(arena), tuning: arena.Tuning}
}

func (s *spaceStation) Initialize(*components.SimulationData) {
	s.wellStrength = 0
	s.asteroids = nil
	s.spawn = newCountdown(s.tuning.Asteroids.Spawn)
}

func (s *spaceStation) Update(sim *components.SimulationData, players [2]components.PlayerData) [2]components.PlayerData {
	wells := s.tuning.GravityWells
	s.wellStrength = math.Sin(float64(sim.Frame)*wells.Frequency) * wells.Amplitude

	if s.spawn.Tick(sim) {
		side := sim.Side()
		x := -30.0
		if side < 0 {
			x = cfg.Stage.Width + 30
		}
		s.asteroids = append(s.asteroids, projectile{
			Pos:  dmath.NewVec2(x, sim.Between(100, 400)),
			Size: sim.Between(15, 35),
			Vel:  dmath.NewVec2(side*sim.Between(1, 3), sim.Between(-1, 1)),
		})
	}

	t := s.tuning.Asteroids
	kept := s.asteroids[:0]
	for _, a := range s.asteroids {
		a.advance()
		if offStage(a.Pos, 50) {
			continue
		}
		for i := range players {
			p := &players[i]
			if a.distanceTo(p) >= a.Size+t.Hit.Reach {
				continue
			}
			strike(p, sim, t.Hit, nil, "")
			// Bounce and push happen on every contact, shielded or not
			a.Vel = dmath.NewVec2(-a.Vel.X*t.Bounce, -a.Vel.Y*t.Bounce)
			p.VX += a.Vel.X * t.Push
			p.VY += a.Vel.Y * t.Push
		}
		kept = append(kept, a)
	}
	s.asteroids = kept
	return players
}

func (s *spaceStation) ApplyToPlayer(p components.PlayerData, _ *components.SimulationData) components.PlayerData {
	for range s.zones.zonesAt(p.X, p.Y, cfg.ZoneGravityWell) {
		p.VY += s.wellStrength
	}
	return p
}

func (s *spaceStation) Shapes() []components.HazardShape {
	var shapes []components.HazardShape
	for _, z := range s.arena.ZonesOf(cfg.ZoneGravityWell) {
		shapes = append(shapes, zoneShape("gravity_well", z, s.wellStrength != 0))
	}
	for _, a := range s.asteroids {
		shapes = append(shapes, circleShape("asteroid", a))
	}
	return shapes
}
