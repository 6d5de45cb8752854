package systems

import (
	"strings"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Controls is the voluntary input of one fighter for one tick.
type Controls struct {
	Left      bool
	Right     bool
	Jump      bool
	Punch     bool
	Secondary bool
}

// ReadControls resolves the tick's pressed map through a fighter's bindings.
func ReadControls(sim *components.SimulationData, b cfg.PlayerBindings) Controls {
	return Controls{
		Left:      sim.IsPressed(b.Key(cfg.ActionMoveLeft)),
		Right:     sim.IsPressed(b.Key(cfg.ActionMoveRight)),
		Jump:      sim.IsPressed(b.Key(cfg.ActionJump)),
		Punch:     sim.IsPressed(b.Key(cfg.ActionPunch)),
		Secondary: sim.IsPressed(b.Key(cfg.ActionSecondary)),
	}
}

// UpdatePlayers recognizes combos and steps player 1 and then player 2.
func UpdatePlayers(e *ecs.ECS) {
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
	arena := getArena(e)

	for i := range players {
		bindings := cfg.Input.Players[i]
		combo := RecognizeCombo(sim.History[i], bindings, sim.Frame)
		p, used := StepPlayer(players[i], ReadControls(sim, bindings), combo, arena, sim)
		if used {
			sim.History[i] = sim.History[i][:0]
		}
		players[i] = p
	}
	writePlayers(e, players)
}

// StepPlayer advances one fighter by a tick and reports whether the
// recognized combo was spent on a new attack. A possessed fighter ignores
// its controls and combo; the arena hook drives it instead.
func StepPlayer(p components.PlayerData, in Controls, combo cfg.AttackType, arena components.ArenaData, sim *components.SimulationData) (components.PlayerData, bool) {
	if p.Winner {
		if p.VictoryTimer > 0 {
			p.VictoryTimer--
		}
		p.VX = 0
		return p, false
	}
	arena = normalizeArena(arena)
	a := arena.Config

	p.VX *= a.Friction

	jumpPressed := in.Jump && !p.JumpHeld
	p.JumpHeld = in.Jump
	if p.Status.Possessed.On() {
		in = Controls{}
		jumpPressed = false
		combo = cfg.AttackNone
	}

	applyMovement(&p, in, jumpPressed, a)
	used := startAttack(&p, in, combo, sim)

	prevY := p.Y
	p.VY += a.Gravity
	p.Y += p.VY
	p.X += p.VX

	landOnPlatform(&p, prevY, arena, sim.Frame)

	if p.Y >= cfg.Stage.GroundY {
		p.Y = cfg.Stage.GroundY
		p.VY = 0
		p.Jumping = false
		if p.Squash <= 0 {
			p.Squash = cfg.Physics.LandSquashFrames
		}
	}

	if dmg := arena.Effects.HazardDamage(p); dmg > 0 && sim.Every(cfg.Combat.StaticHazardPeriod) {
		p.TakeDamage(dmg)
		p.HitReaction = cfg.Combat.StaticHazardStun
	}

	p = arena.Effects.ApplyToPlayer(p, sim)

	if p.Squash > 0 {
		p.Squash--
	}
	half := cfg.Stage.PlayerWidth / 2
	p.X = gamemath.Clamp(p.X, half, cfg.Stage.Width-half)

	tickCounters(&p, sim)
	p.ClampHealth()
	return p, used
}

// applyMovement sets horizontal velocity and facing from the controls and
// starts a jump on a fresh press while grounded. Right wins over left.
func applyMovement(p *components.PlayerData, in Controls, jumpPressed bool, a *cfg.ArenaConfig) {
	speed := cfg.Physics.MoveSpeed
	if p.Buffs.Speed.On() {
		speed *= cfg.Physics.SpeedBoostMultiplier
	}
	if in.Left {
		p.VX = -speed
		p.Direction = cfg.DirectionLeft
	}
	if in.Right {
		p.VX = speed
		p.Direction = cfg.DirectionRight
	}

	grounded := !p.Jumping && (p.OnPlatform || p.Y >= cfg.Stage.GroundY)
	if !jumpPressed || !grounded {
		return
	}
	force := cfg.Physics.JumpForce
	if p.Buffs.SuperJump.On() {
		force *= cfg.Physics.SuperJumpMultiplier
	}
	p.VY = -force * a.JumpMultiplier
	p.Jumping = true
	p.OnPlatform = false
	p.Squash = cfg.Physics.JumpSquashFrames
}

// startAttack begins a combo or a basic attack when the fighter is idle, off
// cooldown and neither frozen nor stunned. A combo takes priority over the attack keys. It reports
// whether the combo was used.
func startAttack(p *components.PlayerData, in Controls, combo cfg.AttackType, sim *components.SimulationData) bool {
	if p.Attack.Active() || p.Attack.Cooldown > 0 || p.Disabled() {
		return false
	}
	rapid := p.Buffs.RapidFire.On()

	switch {
	case combo != cfg.AttackNone:
		cooldown := cfg.AttackStatsFor(combo).Cooldown
		if rapid {
			cooldown /= 2
		}
		p.Attack = components.AttackState{Type: combo, Frames: cfg.Combat.ComboAttackFrames, Cooldown: cooldown}
		p.ComboCounter++
		p.LastAttackFrame = sim.Frame
		sim.AddText(strings.ToUpper(combo.String())+"!", p.X, p.Y-100, cfg.Text.ComboLifetime, p.ID)
		return true
	case in.Punch:
		cooldown := cfg.AttackStatsFor(cfg.AttackPunch).Cooldown
		if rapid {
			cooldown = cfg.Combat.RapidPunchCooldown
		}
		p.Attack = components.AttackState{Type: cfg.AttackPunch, Frames: cfg.Combat.PunchFrames, Cooldown: cooldown}
		p.LastAttackFrame = sim.Frame
	case in.Secondary:
		cooldown := cfg.AttackStatsFor(cfg.AttackKick).Cooldown
		if rapid {
			cooldown = cfg.Combat.RapidKickCooldown
		}
		p.Attack = components.AttackState{Type: cfg.AttackKick, Frames: cfg.Combat.KickFrames, Cooldown: cooldown}
		p.LastAttackFrame = sim.Frame
	}
	return false
}

// PlatformPosition returns where a platform's top-left corner is on a frame.
func PlatformPosition(pl cfg.PlatformConfig, frame int) (x, y float64) {
	x, y = pl.X, pl.Y
	if !pl.Moving || pl.Speed == 0 {
		return x, y
	}
	if pl.Range != 0 && pl.StartX != 0 {
		x = pl.StartX + gamemath.PeriodicOffset(frame, pl.Speed, pl.Range)
	}
	if pl.StartY != 0 {
		rng := pl.Range
		if rng == 0 {
			rng = 100
		}
		y = pl.StartY + gamemath.PeriodicOffset(frame, pl.Speed, rng)
	}
	return x, y
}

// landOnPlatform snaps a falling fighter onto the first solid platform whose
// top it passed this tick, within the landing tolerance so a rising platform
// keeps its rider. Bouncy platforms throw the fighter back up instead.
func landOnPlatform(p *components.PlayerData, prevY float64, arena components.ArenaData, frame int) {
	p.OnPlatform = false
	p.PlatformID = 0
	if p.VY <= 0 {
		return
	}

	half := cfg.Stage.PlayerWidth / 2
	for i, pl := range arena.Config.Platforms {
		if !arena.Effects.PlatformSolid(i) {
			continue
		}
		px, py := PlatformPosition(pl, frame)
		tol := cfg.Physics.LandingTolerance
		if prevY > py+tol || p.Y < py-tol {
			continue
		}
		if p.X <= px-half || p.X >= px+pl.Width+half {
			continue
		}

		if pl.Bouncy && pl.BounceFactor > 0 {
			p.VY = -p.VY * pl.BounceFactor
			return
		}

		p.Y = py
		p.VY = 0
		p.Jumping = false
		p.OnPlatform = true
		p.PlatformID = pl.ID
		if pl.Moving && pl.Speed != 0 && pl.Range != 0 {
			p.VX += gamemath.PeriodicCarry(frame, pl.Speed)
		}
		if pl.Sticky && pl.StickyFactor > 0 {
			p.VX *= pl.StickyFactor
		}
		if p.Squash <= 0 {
			p.Squash = cfg.Physics.LandSquashFrames
		}
		return
	}
}

// tickCounters runs the end-of-step countdowns: attack animation, hit
// reaction, cooldown, combo decay and status effects with burn damage.
func tickCounters(p *components.PlayerData, sim *components.SimulationData) {
	if p.Attack.Active() {
		p.Attack.Frames--
		if p.Attack.Frames == 0 {
			p.Attack.Type = cfg.AttackNone
		}
	}
	if p.HitReaction > 0 {
		p.HitReaction--
	}
	if p.Attack.Cooldown > 0 {
		p.Attack.Cooldown--
	}
	if p.ComboCounter > 0 && sim.Frame-p.LastAttackFrame > cfg.Combat.ComboDecayFrames {
		p.ComboCounter = 0
	}

	if p.Status.Burning.On() && sim.Every(cfg.Combat.BurnPeriod) {
		p.TakeDamage(1)
	}
	p.Status.Tick()
}
