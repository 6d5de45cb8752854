package config

// AttackType identifies a basic or combo attack.
type AttackType int

const (
	AttackNone AttackType = iota
	AttackPunch
	AttackKick
	AttackUppercut
	AttackSlam
	AttackSpecial
)

func (a AttackType) String() string {
	switch a {
	case AttackPunch:
		return "punch"
	case AttackKick:
		return "kick"
	case AttackUppercut:
		return "uppercut"
	case AttackSlam:
		return "slam"
	case AttackSpecial:
		return "special"
	}
	return "none"
}

// AttackStats holds the per-attack combat numbers.
type AttackStats struct {
	Damage    float64
	Range     float64 // Reach added to both half-widths
	Cooldown  int
	Knockback float64
}

// Attacks is the attack table indexed by AttackType.
var Attacks map[AttackType]AttackStats

func init() {
	Attacks = map[AttackType]AttackStats{
		AttackPunch:    {Damage: 10, Range: 60, Cooldown: 20, Knockback: 20},
		AttackKick:     {Damage: 15, Range: 72, Cooldown: 25, Knockback: 30},
		AttackUppercut: {Damage: 12, Range: 48, Cooldown: 22, Knockback: 15},
		AttackSlam:     {Damage: 20, Range: 90, Cooldown: 35, Knockback: 40},
		AttackSpecial:  {Damage: 25, Range: 120, Cooldown: 50, Knockback: 50},
	}
}

// AttackStatsFor returns the stats of an attack, falling back to punch.
func AttackStatsFor(a AttackType) AttackStats {
	if s, ok := Attacks[a]; ok {
		return s
	}
	return Attacks[AttackPunch]
}
