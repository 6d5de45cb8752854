package systems

import (
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards advances the arena's hazard engine against both fighters.
func UpdateHazards(e *ecs.ECS) {
	if !roundRunning(e) {
		return
	}
	sim := getSimulation(e)
	if sim == nil {
		return
	}
	players, ok := readPlayers(e)
	if !ok {
		return
	}

	players = getArena(e).Effects.Update(sim, players)
	for i := range players {
		players[i].ClampHealth()
	}
	writePlayers(e, players)
}
