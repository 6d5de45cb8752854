package archetypes

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
	Match = newArchetype(
		components.Match,
	)
	Arena = newArchetype(
		components.Arena,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
