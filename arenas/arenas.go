// Package arenas implements the hazard engine of every arena. Each arena is
// one ArenaEffects implementation holding statically typed hazard actors; the
// countdown, warning, hit and expiry rules they share live in lifecycle.go.
package arenas

import (
	"log"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
)

// New returns the hazard engine for an arena. A nil configuration yields a
// flat arena without hazards.
func New(arena *cfg.ArenaConfig) components.ArenaEffects {
	if arena == nil {
		log.Printf("Warning: no arena configuration, running without hazards")
		return newBase(cfg.DefaultArena(cfg.ArenaSpaceStation))
	}

	switch arena.ID {
	case cfg.ArenaSpaceStation:
		return newSpaceStation(arena)
	case cfg.ArenaIceCave:
		return newIceCave(arena)
	case cfg.ArenaVolcano:
		return newVolcano(arena)
	case cfg.ArenaNeonCity:
		return newNeonCity(arena)
	case cfg.ArenaUnderwater:
		return newUnderwater(arena)
	case cfg.ArenaHaunted:
		return newHaunted(arena)
	}
	log.Printf("Warning: arena %d has no hazard engine", int(arena.ID))
	return newBase(arena)
}

// base is the no-hazard arena. Concrete arenas embed it and override the
// hooks they need.
type base struct {
	arena *cfg.ArenaConfig
	zones *zoneIndex
}

func newBase(arena *cfg.ArenaConfig) *base {
	return &base{
		arena: arena,
		zones: newZoneIndex(arena),
	}
}

func (b *base) Initialize(*components.SimulationData) {}

func (b *base) Update(_ *components.SimulationData, players [2]components.PlayerData) [2]components.PlayerData {
	return players
}

func (b *base) ApplyToPlayer(p components.PlayerData, _ *components.SimulationData) components.PlayerData {
	return p
}

func (b *base) PlatformSolid(i int) bool {
	return i >= 0 && i < len(b.arena.Platforms)
}

func (b *base) HazardDamage(p components.PlayerData) float64 {
	return b.zones.hazardDamage(p.X, p.Y)
}

func (b *base) Shapes() []components.HazardShape {
	return nil
}
