package arenas

import (
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// underwater: currents, drifting jellyfish, water drag and a per-fighter
// oxygen tank.
type underwater struct {
	*base
	tuning cfg.HazardTuning

	jellyfish []projectile
	spawn     countdown
}

func newUnderwater(arena *cfg.ArenaConfig) *underwater {
	return &underwater{base: newBase(arena), tuning: arena.Tuning}
}

func (u *underwater) Initialize(*components.SimulationData) {
	u.jellyfish = nil
	u.spawn = newCountdown(u.tuning.Jellyfish.Spawn)
}

func (u *underwater) Update(sim *components.SimulationData, players [2]components.PlayerData) [2]components.PlayerData {
	if u.spawn.Tick(sim) {
		side := sim.Side()
		x := -30.0
		if side < 0 {
			x = cfg.Stage.Width + 30
		}
		u.jellyfish = append(u.jellyfish, projectile{
			Pos:  dmath.NewVec2(x, sim.Between(100, 300)),
			Size: sim.Between(20, 35),
			Vel:  dmath.NewVec2(side*sim.Between(0.5, 1.5), 0),
		})
	}

	hit := u.tuning.Jellyfish.Hit
	bob := math.Sin(float64(sim.Frame)*0.02) * 0.5
	kept := u.jellyfish[:0]
	for _, j := range u.jellyfish {
		j.Pos.X += j.Vel.X
		j.Pos.Y += bob
		if j.Pos.X < -50 || j.Pos.X > cfg.Stage.Width+50 {
			continue
		}
		for i := range players {
			p := &players[i]
			if j.distanceTo(p) < j.Size+hit.Reach {
				strike(p, sim, hit, &p.Status.Poisoned, "POISONED!")
			}
		}
		kept = append(kept, j)
	}
	u.jellyfish = kept

	for i := range players {
		p := &players[i]
		for _, z := range u.zones.zonesAt(p.X, p.Y, cfg.ZoneCurrent) {
			p.VX += z.Direction * z.Strength
		}
		u.breathe(p, sim)
	}
	return players
}

// breathe drains the fighter's oxygen tank. The tank is filled on the first
// frame and an empty tank stays empty for the rest of the round.
func (u *underwater) breathe(p *components.PlayerData, sim *components.SimulationData) {
	t := u.tuning.Oxygen
	if !p.OxygenTracked {
		p.Oxygen = t.Capacity
		p.OxygenTracked = true
		return
	}

	if p.Oxygen > 0 {
		p.Oxygen--
		if p.Oxygen == t.LowWarning {
			sim.AddText("LOW OXYGEN!", p.X, p.Y-70, cfg.Text.BannerLifetime, p.ID)
		}
	}
	if p.Oxygen <= 0 {
		p.Oxygen = 0
		if sim.Every(t.Hit.Period) && p.TakeDamage(t.Hit.Damage) {
			sim.AddText(damageText(t.Hit.Damage, "NO OXYGEN!"), p.X, p.Y-50, cfg.Text.DamageLifetime, p.ID)
		}
	}
}

func (u *underwater) ApplyToPlayer(p components.PlayerData, sim *components.SimulationData) components.PlayerData {
	w := u.tuning.Water
	p.VX *= w.Drag
	p.VY *= w.Drag
	if p.Status.Poisoned.On() && sim.Every(w.PoisonPeriod) {
		p.TakeDamage(w.PoisonDamage)
	}
	return p
}

func (u *underwater) Shapes() []components.HazardShape {
	var shapes []components.HazardShape
	for _, z := range u.arena.ZonesOf(cfg.ZoneCurrent) {
		shapes = append(shapes, zoneShape("current", z, true))
	}
	for _, j := range u.jellyfish {
		shapes = append(shapes, circleShape("jellyfish", j))
	}
	return shapes
}
