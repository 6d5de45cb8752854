package systems

import (
	"fmt"
	"math"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves both fighters' attacks against the positions they
// reached this tick. Each attacker is tested against the other fighter's
// pre-combat state, so the result does not depend on the order.
func UpdateCombat(e *ecs.ECS) {
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
	writePlayers(e, ResolveAttacks(players, sim))
}

// ResolveAttacks runs ResolveAttack for player 1 against player 2 and then
// the other way round.
func ResolveAttacks(players [2]components.PlayerData, sim *components.SimulationData) [2]components.PlayerData {
	p1, p2 := players[0], players[1]
	return [2]components.PlayerData{
		ResolveAttack(p2, p1, sim),
		ResolveAttack(p1, p2, sim),
	}
}

// ResolveAttack returns the defender after the attacker's current attack is
// tested against it. The attack connects only on its contact frame, against
// an unshielded defender in reach, in front of the attacker and inside the
// attack's vertical window. The attacker is never modified.
func ResolveAttack(attacker, defender components.PlayerData, sim *components.SimulationData) components.PlayerData {
	if !Connects(attacker, defender) {
		return defender
	}

	stats := cfg.AttackStatsFor(attacker.Attack.Type)
	damage := stats.Damage
	if attacker.Buffs.Giant.On() {
		damage *= cfg.Combat.GiantDamageMultiplier
	}
	damage *= gamemath.ComboMultiplier(attacker.ComboCounter, cfg.Combat.ComboStep, cfg.Combat.MaxComboMultiplier)

	defender.TakeDamage(damage)
	if attacker.Attack.Type == cfg.AttackUppercut {
		defender.VY = cfg.Combat.UppercutLift
	} else {
		defender.VY = cfg.Combat.HitLift
	}
	defender.VX = attacker.Direction * stats.Knockback * cfg.Combat.KnockbackScale
	defender.HitReaction = cfg.Combat.HitStunFrames

	sim.AddText(fmt.Sprintf("-%d", int(math.Round(damage))), defender.X, defender.Y-80, cfg.Text.DamageLifetime, defender.ID)
	if attacker.ComboCounter > 1 {
		sim.AddText(fmt.Sprintf("%dx COMBO!", attacker.ComboCounter), attacker.X, attacker.Y-100, cfg.Text.ComboLifetime, attacker.ID)
	}
	return defender
}

// Connects reports whether the attacker's current attack lands on the
// defender this tick.
func Connects(attacker, defender components.PlayerData) bool {
	if !attacker.Attack.Active() || attacker.Attack.Frames != cfg.Combat.ContactFrame {
		return false
	}
	if defender.Shielded() {
		return false
	}

	reach := cfg.AttackStatsFor(attacker.Attack.Type).Range
	if attacker.Buffs.Giant.On() {
		reach += cfg.Combat.GiantReachBonus
	}
	if math.Abs(attacker.X-defender.X) >= attacker.HalfWidth()+defender.HalfWidth()+reach {
		return false
	}

	return facing(attacker, defender) && inVerticalWindow(attacker.Attack.Type, attacker.Y-defender.Y)
}

// facing is strict: fighters at the same x never face each other.
func facing(attacker, defender components.PlayerData) bool {
	if attacker.Direction > 0 {
		return attacker.X < defender.X
	}
	return attacker.X > defender.X
}

// inVerticalWindow checks offset = attacker.y - defender.y against the
// window of the attack type.
func inVerticalWindow(attack cfg.AttackType, offset float64) bool {
	switch attack {
	case cfg.AttackUppercut:
		return offset > cfg.Combat.UppercutMinOffset && offset < cfg.Combat.UppercutMaxOffset
	case cfg.AttackSlam:
		return math.Abs(offset) < cfg.Combat.SlamMaxOffset
	}
	return true
}
