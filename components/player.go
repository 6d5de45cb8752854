package components

import (
	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi"
)

// AttackState is the attack a fighter is performing. Frames counts down the
// animation; the hit test runs when it equals the contact frame.
type AttackState struct {
	Type     cfg.AttackType
	Frames   int
	Cooldown int
}

// Active reports whether an attack animation is running.
func (a AttackState) Active() bool {
	return a.Type != cfg.AttackNone && a.Frames > 0
}

// Cancel ends the current attack. The cooldown keeps running.
func (a *AttackState) Cancel() {
	a.Type = cfg.AttackNone
	a.Frames = 0
}

// PlayerData is the authoritative state of one fighter. It holds no
// pointers, slices or maps so a copy is a full snapshot.
type PlayerData struct {
	ID cfg.PlayerID

	X, Y      float64 // X is the body center, Y the feet
	VX, VY    float64
	Direction float64 // -1 or +1
	Health    float64

	Jumping    bool
	JumpHeld   bool // Jump key was down last tick
	OnPlatform bool
	PlatformID int // 0 when not standing on a platform

	Attack          AttackState
	ComboCounter    int
	LastAttackFrame int

	HitReaction int
	Squash      int

	Status StatusEffects
	Buffs  Buffs

	// Underwater arena only
	Oxygen        int
	OxygenTracked bool

	Winner       bool
	VictoryTimer int
}

var Player = donburi.NewComponentType[PlayerData]()

// NewPlayer returns a fighter at its spawn point.
func NewPlayer(id cfg.PlayerID) PlayerData {
	p := PlayerData{
		ID:        id,
		Y:         cfg.Stage.GroundY,
		Health:    cfg.Combat.MaxHealth,
		Direction: cfg.DirectionRight,
	}
	if id == cfg.Player1 {
		p.X = cfg.Stage.P1SpawnX
	} else {
		p.X = cfg.Stage.P2SpawnX
		p.Direction = cfg.DirectionLeft
	}
	return p
}

// HalfWidth is half the collision width, larger under the giant buff.
func (p *PlayerData) HalfWidth() float64 {
	if p.Buffs.Giant.On() {
		return cfg.Stage.GiantWidth / 2
	}
	return cfg.Stage.PlayerWidth / 2
}

// Shielded reports whether the fighter is immune to damage and debuffs.
func (p *PlayerData) Shielded() bool {
	return p.Buffs.Shield.On()
}

// TakeDamage subtracts health unless shielded and keeps health in range. It
// reports whether the damage was applied.
func (p *PlayerData) TakeDamage(amount float64) bool {
	if p.Shielded() || amount <= 0 {
		return false
	}
	p.Health -= amount
	p.ClampHealth()
	return true
}

// ClampHealth forces health into [0, max].
func (p *PlayerData) ClampHealth() {
	if p.Health < 0 {
		p.Health = 0
	}
	if p.Health > cfg.Combat.MaxHealth {
		p.Health = cfg.Combat.MaxHealth
	}
}

// Alive reports whether the fighter still has health.
func (p *PlayerData) Alive() bool {
	return p.Health > 0
}

// CenterY is the fighter's vertical midpoint. Y is the feet.
func (p *PlayerData) CenterY() float64 {
	return p.Y - cfg.Stage.PlayerHeight/2
}

// Afflict starts a status timer unless the fighter is shielded.
func (p *PlayerData) Afflict(t *Timer, frames int) bool {
	if p.Shielded() {
		return false
	}
	t.Start(frames)
	return true
}

// Disabled reports whether a status prevents the fighter from attacking.
func (p *PlayerData) Disabled() bool {
	return p.Status.Frozen.On() || p.Status.Stunned.On()
}
