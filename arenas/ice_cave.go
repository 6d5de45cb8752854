package arenas

import (
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	dmath "github.com/yohamta/donburi/features/math"
)

// iceCave: falling icicles that freeze, a slippery floor and breakable
// platforms that wear down while occupied.
type iceCave struct {
	*base
	tuning cfg.HazardTuning

	icicles []projectile
	spawn   countdown

	// Per platform, indexed like arena.Platforms
	strength []int
	wear     []int
	broken   []int // Frames until a broken platform is restored
}

func newIceCave(arena *cfg.ArenaConfig) *iceCave {
	return &iceCave{base: newBase(arena), tuning: arena.Tuning}
}

func (c *iceCave) Initialize(*components.SimulationData) {
	c.icicles = nil
	c.spawn = newCountdown(c.tuning.Icicles.Spawn)

	n := len(c.arena.Platforms)
	c.strength = make([]int, n)
	c.wear = make([]int, n)
	c.broken = make([]int, n)
	for i, p := range c.arena.Platforms {
		c.strength[i] = p.Strength
	}
}

func (c *iceCave) Update(sim *components.SimulationData, players [2]components.PlayerData) [2]components.PlayerData {
	t := c.tuning.Icicles
	if c.spawn.Tick(sim) {
		x := sim.Between(100, cfg.Stage.Width-100)
		c.icicles = append(c.icicles, projectile{
			Pos:     dmath.NewVec2(x, 0),
			Size:    sim.Between(10, 20),
			Height:  sim.Between(20, 50),
			Vel:     dmath.NewVec2(0, sim.Between(1, 3)),
			Warning: t.Spawn.Warning,
		})
	}

	kept := c.icicles[:0]
	for _, ic := range c.icicles {
		if !ic.advance() {
			kept = append(kept, ic)
			continue
		}
		if ic.Pos.Y > cfg.Stage.Height {
			continue
		}
		if c.icicleHits(&ic, sim, &players) {
			continue
		}
		kept = append(kept, ic)
	}
	c.icicles = kept

	c.wearPlatforms(sim, players)
	return players
}

// icicleHits tests player 1 then player 2. The icicle shatters on the first
// fighter it touches, shield or not.
func (c *iceCave) icicleHits(ic *projectile, sim *components.SimulationData, players *[2]components.PlayerData) bool {
	hit := c.tuning.Icicles.Hit
	for i := range players {
		p := &players[i]
		if math.Abs(p.X-ic.Pos.X) < hit.Reach && p.Y > ic.Pos.Y-10 && p.Y < ic.Pos.Y+ic.Height {
			strike(p, sim, hit, &p.Status.Frozen, "FROZEN!")
			return true
		}
	}
	return false
}

func (c *iceCave) wearPlatforms(sim *components.SimulationData, players [2]components.PlayerData) {
	ice := c.tuning.Ice
	for i, pc := range c.arena.Platforms {
		if !pc.Breakable {
			continue
		}
		if c.broken[i] > 0 {
			c.broken[i]--
			if c.broken[i] == 0 {
				c.strength[i] = pc.Strength
				c.wear[i] = 0
			}
			continue
		}
		occupied := false
		for _, p := range players {
			if p.OnPlatform && p.PlatformID == pc.ID {
				occupied = true
			}
		}
		if !occupied || ice.WearFrames <= 0 {
			continue
		}
		c.wear[i]++
		if c.wear[i] < ice.WearFrames {
			continue
		}
		c.wear[i] = 0
		c.strength[i]--
		if c.strength[i] <= 0 {
			c.broken[i] = ice.BrokenFrames
			sim.AddText("ICE BREAKING!", pc.X+pc.Width/2, pc.Y-20, cfg.Text.DamageLifetime, cfg.NoPlayer)
		}
	}
}

func (c *iceCave) ApplyToPlayer(p components.PlayerData, sim *components.SimulationData) components.PlayerData {
	ice := c.tuning.Ice

	if p.Y >= cfg.Stage.GroundY-cfg.Physics.LandingTolerance {
		p.VX *= ice.SlipDrag
		if sim.Chance(ice.SlipChance) {
			p.VX += (sim.Float() - 0.5) * 2
		}
	}

	if p.Status.Frozen.On() {
		p.VX *= ice.FrozenDrag
		p.VY *= ice.FrozenDrag
		p.Attack.Cancel()
	}

	if p.OnPlatform {
		if i := c.arena.PlatformIndex(p.PlatformID); i >= 0 && c.arena.Platforms[i].Breakable {
			if sim.Frame%4 < 2 {
				p.VX += ice.Shake
			} else {
				p.VX -= ice.Shake
			}
		}
	}
	return p
}

func (c *iceCave) PlatformSolid(i int) bool {
	if !c.base.PlatformSolid(i) {
		return false
	}
	return i >= len(c.broken) || c.broken[i] == 0
}

// PlatformStrength returns the remaining strength of a platform.
func (c *iceCave) PlatformStrength(i int) int {
	if i < 0 || i >= len(c.strength) {
		return 0
	}
	return c.strength[i]
}

func (c *iceCave) Shapes() []components.HazardShape {
	shapes := make([]components.HazardShape, 0, len(c.icicles))
	for _, ic := range c.icicles {
		shapes = append(shapes, components.HazardShape{
			Kind:    components.ShapeRect,
			Label:   "icicle",
			X:       ic.Pos.X - ic.Size/2,
			Y:       ic.Pos.Y,
			X2:      ic.Size,
			Y2:      ic.Height,
			Warning: ic.Warning > 0,
			Active:  ic.Warning == 0,
		})
	}
	return shapes
}
