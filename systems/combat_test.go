package systems

import (
	"math"
	"testing"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newSim() *components.SimulationData {
	sim := components.NewSimulationData(1)
	return &sim
}

// duel puts an attacker at x=400 facing right with an attack on its contact
// frame and a defender at x=440.
func duel(attack cfg.AttackType) (components.PlayerData, components.PlayerData) {
	a := components.NewPlayer(cfg.Player1)
	a.X = 400
	a.Direction = cfg.DirectionRight
	a.Attack = components.AttackState{Type: attack, Frames: cfg.Combat.ContactFrame}

	d := components.NewPlayer(cfg.Player2)
	d.X = 440
	return a, d
}

func TestPunchScenario(t *testing.T) {
	a, d := duel(cfg.AttackPunch)
	sim := newSim()

	got := ResolveAttack(a, d, sim)
	if !approx(got.Health, 90) {
		t.Errorf("health = %v, want 90", got.Health)
	}
	if !approx(got.VX, 4) {
		t.Errorf("knockback vx = %v, want 4", got.VX)
	}
	if got.VY != cfg.Combat.HitLift {
		t.Errorf("vy = %v, want %v", got.VY, cfg.Combat.HitLift)
	}
	if got.HitReaction != 15 {
		t.Errorf("hit reaction = %d, want 15", got.HitReaction)
	}
	if len(sim.Texts) != 1 || sim.Texts[0].Text != "-10" || sim.Texts[0].Owner != cfg.Player2 {
		t.Errorf("texts = %+v", sim.Texts)
	}
}

func TestKnockbackFollowsFacing(t *testing.T) {
	a, d := duel(cfg.AttackKick)
	a.X, d.X = 440, 400
	a.Direction = cfg.DirectionLeft

	got := ResolveAttack(a, d, newSim())
	if !approx(got.VX, -6) {
		t.Errorf("vx = %v, want -6", got.VX)
	}
	if !approx(got.Health, 85) {
		t.Errorf("health = %v, want 85", got.Health)
	}
}

func TestComboMultiplierAndBanner(t *testing.T) {
	a, d := duel(cfg.AttackPunch)
	a.ComboCounter = 3
	sim := newSim()

	got := ResolveAttack(a, d, sim)
	if !approx(got.Health, 87) {
		t.Errorf("health = %v, want 87", got.Health)
	}
	if len(sim.Texts) != 2 || sim.Texts[1].Text != "3x COMBO!" || sim.Texts[1].Owner != cfg.Player1 {
		t.Errorf("texts = %+v", sim.Texts)
	}

	a.ComboCounter = 1
	sim = newSim()
	ResolveAttack(a, d, sim)
	if len(sim.Texts) != 1 {
		t.Errorf("combo banner shown for a single hit: %+v", sim.Texts)
	}
}

func TestOnlyContactFrameHits(t *testing.T) {
	for frames := 1; frames <= 15; frames++ {
		a, d := duel(cfg.AttackPunch)
		a.Attack.Frames = frames
		sim := newSim()
		got := ResolveAttack(a, d, sim)

		hit := got.Health != d.Health
		if hit != (frames == cfg.Combat.ContactFrame) {
			t.Errorf("frames=%d hit=%v", frames, hit)
		}
		if !hit && len(sim.Texts) != 0 {
			t.Errorf("frames=%d emitted texts without a hit", frames)
		}
	}
}

func TestFacingAwayNeverHits(t *testing.T) {
	for _, gap := range []float64{1, 20, 40, 80} {
		a, d := duel(cfg.AttackSpecial)
		d.X = a.X + gap
		a.Direction = cfg.DirectionLeft
		if got := ResolveAttack(a, d, newSim()); got != d {
			t.Errorf("gap %v: defender changed while attacker faced away", gap)
		}
	}

	// Same x counts as not facing
	a, d := duel(cfg.AttackPunch)
	d.X = a.X
	if got := ResolveAttack(a, d, newSim()); got != d {
		t.Error("hit at zero gap")
	}
}

func TestShieldBlocksAttack(t *testing.T) {
	a, d := duel(cfg.AttackSlam)
	d.Buffs.Shield.Start(300)
	sim := newSim()
	if got := ResolveAttack(a, d, sim); got != d || len(sim.Texts) != 0 {
		t.Errorf("shielded defender changed: %+v", got)
	}
}

func TestReach(t *testing.T) {
	// Punch reach is 15 + 15 + 60
	a, d := duel(cfg.AttackPunch)
	d.X = a.X + 89
	if !Connects(a, d) {
		t.Error("gap 89 should connect")
	}
	d.X = a.X + 90
	if Connects(a, d) {
		t.Error("gap 90 should miss")
	}

	// Giant attackers gain 20 reach and 7.5 half-width
	a.Buffs.Giant.Start(300)
	d.X = a.X + 117
	if !Connects(a, d) {
		t.Error("giant gap 117 should connect")
	}
	d.X = a.X + 118
	if Connects(a, d) {
		t.Error("giant gap 118 should miss")
	}
}

func TestGiantDamage(t *testing.T) {
	a, d := duel(cfg.AttackPunch)
	a.Buffs.Giant.Start(300)
	if got := ResolveAttack(a, d, newSim()); !approx(got.Health, 85) {
		t.Errorf("health = %v, want 85", got.Health)
	}
}

func TestVerticalWindows(t *testing.T) {
	tests := []struct {
		attack  cfg.AttackType
		defDY   float64 // defender.y - attacker.y
		connect bool
	}{
		{cfg.AttackUppercut, 10, true},
		{cfg.AttackUppercut, 79, true},
		{cfg.AttackUppercut, 80, false},
		{cfg.AttackUppercut, 0, false},
		{cfg.AttackUppercut, -10, false},
		{cfg.AttackSlam, 59, true},
		{cfg.AttackSlam, -59, true},
		{cfg.AttackSlam, 60, false},
		{cfg.AttackPunch, -300, true},
		{cfg.AttackKick, 300, true},
	}
	for _, tt := range tests {
		a, d := duel(tt.attack)
		a.Y = 400
		d.Y = a.Y + tt.defDY
		if got := Connects(a, d); got != tt.connect {
			t.Errorf("%v with defender %+v below: connect = %v, want %v", tt.attack, tt.defDY, got, tt.connect)
		}
	}
}

func TestUppercutLaunches(t *testing.T) {
	a, d := duel(cfg.AttackUppercut)
	d.Y = a.Y + 10
	got := ResolveAttack(a, d, newSim())
	if got.VY != cfg.Combat.UppercutLift {
		t.Errorf("vy = %v, want %v", got.VY, cfg.Combat.UppercutLift)
	}
	if !approx(got.Health, 88) {
		t.Errorf("health = %v, want 88", got.Health)
	}
}

func TestResolveAttacksIsSymmetric(t *testing.T) {
	a, d := duel(cfg.AttackPunch)
	d.Direction = cfg.DirectionLeft
	d.Attack = components.AttackState{Type: cfg.AttackPunch, Frames: cfg.Combat.ContactFrame}

	got := ResolveAttacks([2]components.PlayerData{a, d}, newSim())
	if !approx(got[0].Health, 90) || !approx(got[1].Health, 90) {
		t.Errorf("trade = %v / %v, want both 90", got[0].Health, got[1].Health)
	}
	if got[0].Attack != a.Attack || got[1].Attack != d.Attack {
		t.Error("attack state changed by resolution")
	}
}

func TestLethalHitClampsHealth(t *testing.T) {
	a, d := duel(cfg.AttackSpecial)
	d.Health = 5
	if got := ResolveAttack(a, d, newSim()); got.Health != 0 {
		t.Errorf("health = %v, want 0", got.Health)
	}
}
