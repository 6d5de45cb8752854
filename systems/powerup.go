package systems

import (
	"github.com/automoto/stickfight/archetypes"
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePowerUps spawns pickups, expires buffs and hands pickups to the
// fighters touching them. Buffs tick before collection so a fresh pickup
// keeps its full duration.
func UpdatePowerUps(e *ecs.ECS) {
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

	if pu, spawned := SpawnPowerUp(sim); spawned {
		entry := archetypes.PowerUp.Spawn(e)
		components.PowerUp.SetValue(entry, pu)
	}

	for i := range players {
		players[i].Buffs.Tick()
	}

	var entries []*donburi.Entry
	var pickups []components.PowerUpData
	components.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
		pickups = append(pickups, *components.PowerUp.Get(entry))
	})

	var taken []bool
	players, taken = CollectPowerUps(pickups, players)
	for i, entry := range entries {
		if taken[i] {
			e.World.Remove(entry.Entity())
		}
	}
	writePlayers(e, players)
}

// SpawnPowerUp rolls the per-tick spawn chance and returns the new pickup.
func SpawnPowerUp(sim *components.SimulationData) (components.PowerUpData, bool) {
	pc := cfg.PowerUp
	if !sim.Chance(pc.SpawnChance) {
		return components.PowerUpData{}, false
	}
	kind := components.PowerUpKind(sim.IntN(int(components.PowerUpKindCount)))
	return components.PowerUpData{
		X:      sim.Between(pc.MarginX, cfg.Stage.Width-pc.MarginX),
		Y:      cfg.Stage.GroundY - pc.HeightAboveGround,
		Kind:   kind,
		Active: true,
	}, true
}

// CollectPowerUps gives each active pickup to the first fighter whose center
// is within the capture radius, player 1 first. The returned flags mark the pickups that
// were taken; inactive pickups are reported as taken so they get removed.
func CollectPowerUps(pickups []components.PowerUpData, players [2]components.PlayerData) ([2]components.PlayerData, []bool) {
	taken := make([]bool, len(pickups))
	for i, pu := range pickups {
		if !pu.Active {
			taken[i] = true
			continue
		}
		for k := range players {
			p := &players[k]
			if gamemath.Distance(p.X, p.CenterY(), pu.X, pu.Y) < cfg.PowerUp.CaptureRadius {
				*p = ApplyPowerUp(*p, pu.Kind)
				taken[i] = true
				break
			}
		}
	}
	return players, taken
}

// ApplyPowerUp starts the buff of a pickup kind. Collecting a buff that is
// already running restarts its full duration. Unknown kinds are ignored.
func ApplyPowerUp(p components.PlayerData, kind components.PowerUpKind) components.PlayerData {
	if t := p.Buffs.Timer(kind); t != nil {
		t.Start(cfg.PowerUp.Duration)
	}
	return p
}
