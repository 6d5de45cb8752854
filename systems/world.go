package systems

import (
	"sync"

	"github.com/automoto/stickfight/arenas"
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getSimulation returns the singleton simulation context, or nil before the
// round world is built.
func getSimulation(e *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry)
}

// getArena returns the singleton arena. A world without one, or with a
// missing hook, degrades to a flat arena without hazards.
func getArena(e *ecs.ECS) components.ArenaData {
	entry, ok := components.Arena.First(e.World)
	if !ok {
		return flatArena()
	}
	arena := components.Arena.Get(entry)
	if arena.Config == nil || arena.Effects == nil {
		*arena = normalizeArena(*arena)
	}
	return *arena
}

func flatArena() components.ArenaData {
	return normalizeArena(components.ArenaData{})
}

// fallbackArena is built once so a world without an arena does not rebuild
// the engine, or log about it, on every tick.
var fallbackArena = sync.OnceValue(func() components.ArenaData {
	return components.ArenaData{
		Config:  cfg.DefaultArena(cfg.ArenaSpaceStation),
		Effects: arenas.New(nil),
	}
})

func normalizeArena(a components.ArenaData) components.ArenaData {
	if a.Config == nil {
		a.Config = fallbackArena().Config
	}
	if a.Effects == nil {
		a.Effects = fallbackArena().Effects
	}
	return a
}

func getMatch(e *ecs.ECS) *components.MatchData {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// readPlayers copies both fighters out of the world, indexed by slot. It
// reports false unless both fighters exist.
func readPlayers(e *ecs.ECS) ([2]components.PlayerData, bool) {
	var players [2]components.PlayerData
	var found [2]bool
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		i := p.ID.Index()
		if i < 0 || i > 1 {
			return
		}
		players[i] = *p
		found[i] = true
	})
	return players, found[0] && found[1]
}

// writePlayers stores both fighters back into their entities.
func writePlayers(e *ecs.ECS, players [2]components.PlayerData) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		i := p.ID.Index()
		if i < 0 || i > 1 {
			return
		}
		*p = players[i]
	})
}

// roundRunning reports whether the match is in the playing state. A world
// without a match always runs.
func roundRunning(e *ecs.ECS) bool {
	m := getMatch(e)
	return m == nil || m.State == cfg.MatchStatePlaying
}
