package match

import (
	"slices"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/systems"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
)

// Platform is a platform as it stands on the snapshot's frame.
type Platform struct {
	Config cfg.PlatformConfig
	X, Y   float64
	Solid  bool
}

// Snapshot is a read-only copy of everything the renderer draws. Mutating it
// has no effect on the match.
type Snapshot struct {
	Frame     int
	Arena     *cfg.ArenaConfig
	Players   [2]components.PlayerData
	Platforms []Platform
	PowerUps  []components.PowerUpData
	Hazards   []components.HazardShape
	Texts     []components.FloatingText
	Match     components.MatchData
}

// Snapshot copies the current round state.
func (m *Match) Snapshot() Snapshot {
	sim := m.simulation()
	arena := m.arenaData()

	s := Snapshot{
		Frame:   sim.Frame,
		Arena:   arena.Config,
		Players: m.players(),
		Hazards: slices.Clone(arena.Effects.Shapes()),
		Texts:   slices.Clone(sim.Texts),
		Match:   *m.Data(),
	}
	s.Match.Scores = slices.Clone(s.Match.Scores)

	for i, pl := range arena.Config.Platforms {
		x, y := systems.PlatformPosition(pl, sim.Frame)
		s.Platforms = append(s.Platforms, Platform{
			Config: pl,
			X:      x,
			Y:      y,
			Solid:  arena.Effects.PlatformSolid(i),
		})
	}

	tags.PowerUp.Each(m.ecs.World, func(entry *donburi.Entry) {
		s.PowerUps = append(s.PowerUps, *components.PowerUp.Get(entry))
	})
	return s
}

func (m *Match) arenaData() components.ArenaData {
	entry, ok := components.Arena.First(m.ecs.World)
	if !ok {
		panic("match: round world has no arena")
	}
	return *components.Arena.Get(entry)
}
