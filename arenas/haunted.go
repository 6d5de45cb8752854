package arenas

import (
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

type ghost struct {
	Pos    dmath.Vec2
	Vel    dmath.Vec2
	Size   float64
	Target cfg.PlayerID
	// Frames left possessing the target. The ghost is hidden meanwhile.
	Possessing int
}

// haunted: roaming ghosts that possess their target and platforms that
// vanish and come back.
type haunted struct {
	*base
	tuning cfg.HazardTuning

	ghosts  []ghost
	visible []bool
	toggle  countdown
}

func newHaunted(arena *cfg.ArenaConfig) *haunted {
	return &haunted{base: newBase(arena), tuning: arena.Tuning}
}

func (h *haunted) Initialize(sim *components.SimulationData) {
	h.toggle = newCountdown(h.tuning.PlatformToggle.Spawn)
	h.visible = make([]bool, len(h.arena.Platforms))
	for i := range h.visible {
		h.visible[i] = true
	}

	h.ghosts = make([]ghost, 0, h.tuning.Ghosts.Count)
	for i := 0; i < h.tuning.Ghosts.Count; i++ {
		g := ghost{
			Vel:    dmath.NewVec2(sim.Between(-1, 1), sim.Between(-1, 1)),
			Size:   sim.Between(30, 50),
			Target: cfg.Player2,
		}
		if sim.Float() > 0.5 {
			g.Target = cfg.Player1
		}
		h.placeGhost(&g, sim)
		h.ghosts = append(h.ghosts, g)
	}
}

func (h *haunted) placeGhost(g *ghost, sim *components.SimulationData) {
	g.Pos = dmath.NewVec2(sim.Between(0, cfg.Stage.Width), sim.Between(100, 300))
}

func (h *haunted) Update(sim *components.SimulationData, players [2]components.PlayerData) [2]components.PlayerData {
	if h.toggle.Tick(sim) && len(h.visible) > 0 {
		flips := 1 + sim.IntN(h.tuning.PlatformToggle.MaxFlips)
		for k := 0; k < flips; k++ {
			i := sim.IntN(len(h.visible))
			h.visible[i] = !h.visible[i]
			if h.visible[i] {
				continue
			}
			id := h.arena.Platforms[i].ID
			for _, p := range players {
				if p.PlatformID == id {
					sim.AddText("PLATFORM VANISHING!", p.X, p.Y-50, cfg.Text.ComboLifetime, p.ID)
				}
			}
		}
	}

	t := h.tuning.Ghosts
	for i := range h.ghosts {
		g := &h.ghosts[i]
		if g.Possessing > 0 {
			g.Possessing--
			if g.Possessing == 0 {
				// Released ghosts reappear elsewhere instead of on top of
				// their target.
				h.placeGhost(g, sim)
			}
			continue
		}

		g.Pos.X += g.Vel.X
		g.Pos.Y += g.Vel.Y
		if g.Pos.X < 0 || g.Pos.X > cfg.Stage.Width {
			g.Vel.X = -g.Vel.X
		}
		if g.Pos.Y < 0 || g.Pos.Y > cfg.Stage.Height {
			g.Vel.Y = -g.Vel.Y
		}
		if sim.Chance(t.TurnChance) {
			g.Vel = dmath.NewVec2(sim.Between(-1, 1), sim.Between(-1, 1))
		}

		target := &players[g.Target.Index()]
		if sim.Chance(t.SeekChance) {
			vx, vy := gamemath.SeekVelocity(g.Pos.X, g.Pos.Y, target.X, target.Y, sim.Between(0.5, 1.5))
			if vx != 0 || vy != 0 {
				g.Vel = dmath.NewVec2(vx, vy)
			}
		}

		dist := gamemath.Distance(g.Pos.X, g.Pos.Y, target.X, target.Y)
		if dist < g.Size/2+t.Reach && target.Afflict(&target.Status.Possessed, t.CaptureFrames) {
			g.Possessing = t.CaptureFrames
			sim.AddText("POSSESSED!", target.X, target.Y-50, cfg.Text.BannerLifetime, target.ID)
		}
	}
	return players
}

// ApplyToPlayer replaces a possessed fighter's control with random moves,
// jumps and punches.
func (h *haunted) ApplyToPlayer(p components.PlayerData, sim *components.SimulationData) components.PlayerData {
	if !p.Status.Possessed.On() {
		return p
	}
	t := h.tuning.Possession

	if sim.Chance(t.MoveChance) {
		p.VX = sim.Between(-t.MaxSpeed, t.MaxSpeed)
	}
	if sim.Chance(t.JumpChance) && !p.Jumping {
		p.VY = t.JumpImpulse
		p.Jumping = true
	}
	if sim.Chance(t.PunchChance) && !p.Attack.Active() && p.Attack.Cooldown <= 0 {
		p.Attack = components.AttackState{
			Type:     cfg.AttackPunch,
			Frames:   cfg.Combat.PunchFrames,
			Cooldown: cfg.AttackStatsFor(cfg.AttackPunch).Cooldown,
		}
	}
	return p
}

func (h *haunted) PlatformSolid(i int) bool {
	if !h.base.PlatformSolid(i) {
		return false
	}
	return i >= len(h.visible) || h.visible[i]
}

func (h *haunted) Shapes() []components.HazardShape {
	shapes := make([]components.HazardShape, 0, len(h.ghosts))
	for _, g := range h.ghosts {
		shapes = append(shapes, components.HazardShape{
			Kind:   components.ShapeCircle,
			Label:  "ghost",
			X:      g.Pos.X,
			Y:      g.Pos.Y,
			Size:   g.Size / 2,
			Active: g.Possessing == 0,
		})
	}
	return shapes
}
