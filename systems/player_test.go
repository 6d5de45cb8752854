package systems

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
)

// stubArena is a hazard engine with fixed answers.
type stubArena struct {
	solid  bool
	damage float64
}

func (s stubArena) Initialize(*components.SimulationData) {}

func (s stubArena) Update(_ *components.SimulationData, players [2]components.PlayerData) [2]components.PlayerData {
	return players
}

func (s stubArena) ApplyToPlayer(p components.PlayerData, _ *components.SimulationData) components.PlayerData {
	return p
}

func (s stubArena) PlatformSolid(int) bool                     { return s.solid }
func (s stubArena) HazardDamage(components.PlayerData) float64 { return s.damage }
func (s stubArena) Shapes() []components.HazardShape           { return nil }

func flat() components.ArenaData {
	return components.ArenaData{
		Config:  cfg.DefaultArena(cfg.ArenaSpaceStation),
		Effects: stubArena{solid: true},
	}
}

func withPlatform(pl cfg.PlatformConfig) components.ArenaData {
	a := flat()
	a.Config.Platforms = []cfg.PlatformConfig{pl}
	return a
}

func step(p components.PlayerData, in Controls, arena components.ArenaData, sim *components.SimulationData) components.PlayerData {
	p, _ = StepPlayer(p, in, cfg.AttackNone, arena, sim)
	return p
}

func TestMovement(t *testing.T) {
	sim := newSim()
	p := components.NewPlayer(cfg.Player2)

	p = step(p, Controls{Right: true}, flat(), sim)
	if p.VX != cfg.Physics.MoveSpeed || p.Direction != cfg.DirectionRight {
		t.Errorf("right: vx=%v dir=%v", p.VX, p.Direction)
	}

	p = step(p, Controls{Left: true}, flat(), sim)
	if p.VX != -cfg.Physics.MoveSpeed || p.Direction != cfg.DirectionLeft {
		t.Errorf("left: vx=%v dir=%v", p.VX, p.Direction)
	}

	p = step(p, Controls{Left: true, Right: true}, flat(), sim)
	if p.VX != cfg.Physics.MoveSpeed {
		t.Errorf("both held: vx=%v, want right to win", p.VX)
	}

	p = step(p, Controls{}, flat(), sim)
	if !approx(p.VX, cfg.Physics.MoveSpeed*0.9) {
		t.Errorf("friction: vx=%v", p.VX)
	}
}

func TestSpeedBoost(t *testing.T) {
	p := components.NewPlayer(cfg.Player1)
	p.Buffs.Speed.Start(300)
	p = step(p, Controls{Right: true}, flat(), newSim())
	if !approx(p.VX, 8.5) {
		t.Errorf("boosted vx = %v, want 8.5", p.VX)
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	sim := newSim()
	p := components.NewPlayer(cfg.Player1)

	p = step(p, Controls{Jump: true}, flat(), sim)
	if !p.Jumping || p.VY != -11.5 || p.Y != 538.5 {
		t.Fatalf("after jump: jumping=%v vy=%v y=%v", p.Jumping, p.VY, p.Y)
	}

	// Hold jump until landing; no second jump
	for i := 0; i < 60; i++ {
		p = step(p, Controls{Jump: true}, flat(), sim)
	}
	if p.Jumping || p.Y != cfg.Stage.GroundY {
		t.Fatalf("did not land: jumping=%v y=%v", p.Jumping, p.Y)
	}
	p = step(p, Controls{Jump: true}, flat(), sim)
	if p.Jumping {
		t.Error("held jump triggered a second jump")
	}

	p = step(p, Controls{}, flat(), sim)
	p = step(p, Controls{Jump: true}, flat(), sim)
	if !p.Jumping {
		t.Error("fresh press did not jump")
	}
}

func TestJumpScaling(t *testing.T) {
	arena := flat()
	arena.Config.JumpMultiplier = 0.5
	p := components.NewPlayer(cfg.Player1)
	p.Buffs.SuperJump.Start(300)

	p = step(p, Controls{Jump: true}, arena, newSim())
	// -12 * 1.5 * 0.5 + gravity
	if !approx(p.VY, -8.5) {
		t.Errorf("vy = %v, want -8.5", p.VY)
	}
}

func TestNoJumpInAir(t *testing.T) {
	p := components.NewPlayer(cfg.Player1)
	p.Y = 300
	p = step(p, Controls{Jump: true}, flat(), newSim())
	if p.Jumping || p.VY != 0.5 {
		t.Errorf("airborne jump: jumping=%v vy=%v", p.Jumping, p.VY)
	}
}

func TestBasicAttacks(t *testing.T) {
	sim := newSim()
	sim.Frame = 42

	p := step(components.NewPlayer(cfg.Player1), Controls{Punch: true}, flat(), sim)
	if p.Attack.Type != cfg.AttackPunch || p.Attack.Frames != 9 || p.Attack.Cooldown != 19 {
		t.Errorf("punch = %+v", p.Attack)
	}
	if p.LastAttackFrame != 42 {
		t.Errorf("last attack frame = %d", p.LastAttackFrame)
	}

	p = step(components.NewPlayer(cfg.Player1), Controls{Secondary: true}, flat(), sim)
	if p.Attack.Type != cfg.AttackKick || p.Attack.Frames != 11 || p.Attack.Cooldown != 24 {
		t.Errorf("kick = %+v", p.Attack)
	}

	// Punch wins over secondary
	p = step(components.NewPlayer(cfg.Player1), Controls{Punch: true, Secondary: true}, flat(), sim)
	if p.Attack.Type != cfg.AttackPunch {
		t.Errorf("both keys = %v", p.Attack.Type)
	}
}

func TestRapidFireCooldowns(t *testing.T) {
	p := components.NewPlayer(cfg.Player1)
	p.Buffs.RapidFire.Start(300)
	got := step(p, Controls{Punch: true}, flat(), newSim())
	if got.Attack.Cooldown != 9 {
		t.Errorf("rapid punch cooldown = %d, want 9", got.Attack.Cooldown)
	}
	got = step(p, Controls{Secondary: true}, flat(), newSim())
	if got.Attack.Cooldown != 11 {
		t.Errorf("rapid kick cooldown = %d, want 11", got.Attack.Cooldown)
	}
}

func TestComboAttack(t *testing.T) {
	sim := newSim()
	sim.Frame = 10
	p, used := StepPlayer(components.NewPlayer(cfg.Player1), Controls{Punch: true}, cfg.AttackKick, flat(), sim)
	if !used {
		t.Fatal("combo not used")
	}
	if p.Attack.Type != cfg.AttackKick || p.Attack.Frames != 14 || p.Attack.Cooldown != 24 {
		t.Errorf("combo attack = %+v", p.Attack)
	}
	if p.ComboCounter != 1 || p.LastAttackFrame != 10 {
		t.Errorf("combo counter = %d last = %d", p.ComboCounter, p.LastAttackFrame)
	}
	if len(sim.Texts) != 1 || sim.Texts[0].Text != "KICK!" {
		t.Errorf("texts = %+v", sim.Texts)
	}

	// Busy fighters keep the combo for later
	_, used = StepPlayer(p, Controls{}, cfg.AttackSlam, flat(), sim)
	if used {
		t.Error("combo used while attacking")
	}
}

func TestAttackRunsToCompletion(t *testing.T) {
	sim := newSim()
	p := step(components.NewPlayer(cfg.Player1), Controls{Punch: true}, flat(), sim)
	contact := 0
	for i := 0; i < 20; i++ {
		if p.Attack.Frames == cfg.Combat.ContactFrame {
			contact++
		}
		p = step(p, Controls{}, flat(), sim)
	}
	if contact != 1 {
		t.Errorf("contact frame seen %d times", contact)
	}
	if p.Attack.Active() || p.Attack.Type != cfg.AttackNone || p.Attack.Cooldown != 0 {
		t.Errorf("attack after 21 ticks = %+v", p.Attack)
	}
}

func TestComboDecay(t *testing.T) {
	sim := newSim()
	p := components.NewPlayer(cfg.Player1)
	p.ComboCounter = 3

	sim.Frame = 120
	p = step(p, Controls{}, flat(), sim)
	if p.ComboCounter != 3 {
		t.Fatalf("combo reset early: %d", p.ComboCounter)
	}
	sim.Frame = 121
	p = step(p, Controls{}, flat(), sim)
	if p.ComboCounter != 0 {
		t.Errorf("combo = %d, want 0", p.ComboCounter)
	}
}

func TestPossessionSuppressesInput(t *testing.T) {
	p := components.NewPlayer(cfg.Player1)
	p.Status.Possessed.Start(180)

	got, used := StepPlayer(p, Controls{Right: true, Jump: true, Punch: true}, cfg.AttackSpecial, flat(), newSim())
	if used || got.Attack.Active() || got.VX != 0 || got.Jumping {
		t.Errorf("possessed fighter obeyed input: %+v used=%v", got, used)
	}
	if got.Status.Possessed.Remaining != 179 {
		t.Errorf("possession remaining = %d", got.Status.Possessed.Remaining)
	}
}

func TestDisabledFighterCannotAttack(t *testing.T) {
	for name, afflict := range map[string]func(*components.PlayerData){
		"frozen":  func(p *components.PlayerData) { p.Status.Frozen.Start(60) },
		"stunned": func(p *components.PlayerData) { p.Status.Stunned.Start(30) },
	} {
		p := components.NewPlayer(cfg.Player1)
		afflict(&p)
		sim := newSim()

		got, used := StepPlayer(p, Controls{Punch: true}, cfg.AttackKick, flat(), sim)
		if used || got.Attack.Active() || got.Attack.Cooldown != 0 {
			t.Errorf("%s fighter attacked: %+v used=%v", name, got.Attack, used)
		}
		if len(sim.Texts) != 0 {
			t.Errorf("%s fighter queued %v", name, sim.Texts)
		}
	}
}

func TestLandOnPlatform(t *testing.T) {
	arena := withPlatform(cfg.PlatformConfig{ID: 7, X: 500, Y: 400, Width: 200, Height: 20})
	sim := newSim()
	p := components.NewPlayer(cfg.Player1)
	p.X, p.Y, p.VY = 600, 398, 3
	p.Jumping = true

	p = step(p, Controls{}, arena, sim)
	if p.Y != 400 || !p.OnPlatform || p.PlatformID != 7 || p.Jumping || p.VY != 0 {
		t.Fatalf("landing = y %v on %v id %d jumping %v vy %v", p.Y, p.OnPlatform, p.PlatformID, p.Jumping, p.VY)
	}

	p = step(p, Controls{}, arena, sim)
	if p.Y != 400 || !p.OnPlatform {
		t.Errorf("standing = y %v on %v", p.Y, p.OnPlatform)
	}

	// Walk off the edge
	p.X = 450
	p = step(p, Controls{}, arena, sim)
	if p.OnPlatform || p.PlatformID != 0 {
		t.Errorf("still on platform after walking off: %+v", p)
	}
}

func TestRisingFighterPassesThrough(t *testing.T) {
	arena := withPlatform(cfg.PlatformConfig{ID: 1, X: 500, Y: 400, Width: 200, Height: 20})
	p := components.NewPlayer(cfg.Player1)
	p.X, p.Y, p.VY = 600, 405, -6
	p = step(p, Controls{}, arena, newSim())
	if p.OnPlatform || p.Y != 399.5 {
		t.Errorf("rising fighter = y %v on %v", p.Y, p.OnPlatform)
	}
}

func TestMissingPlatformIsNotSolid(t *testing.T) {
	arena := withPlatform(cfg.PlatformConfig{ID: 1, X: 500, Y: 400, Width: 200, Height: 20})
	arena.Effects = stubArena{solid: false}
	p := components.NewPlayer(cfg.Player1)
	p.X, p.Y, p.VY = 600, 398, 3
	p = step(p, Controls{}, arena, newSim())
	if p.OnPlatform || p.Y != 401.5 {
		t.Errorf("fell onto a missing platform: y %v", p.Y)
	}
}

func TestBouncyPlatform(t *testing.T) {
	arena := withPlatform(cfg.PlatformConfig{ID: 1, X: 500, Y: 400, Width: 200, Height: 20, Bouncy: true, BounceFactor: 0.8})
	p := components.NewPlayer(cfg.Player1)
	p.X, p.Y, p.VY = 600, 398, 3
	p.Jumping = true
	p = step(p, Controls{}, arena, newSim())
	if p.OnPlatform || !approx(p.VY, -2.8) || !p.Jumping {
		t.Errorf("bounce = vy %v on %v", p.VY, p.OnPlatform)
	}
}

func TestStickyPlatform(t *testing.T) {
	arena := withPlatform(cfg.PlatformConfig{ID: 1, X: 500, Y: 400, Width: 200, Height: 20, Sticky: true, StickyFactor: 0.5})
	p := components.NewPlayer(cfg.Player1)
	p.X, p.Y, p.VY = 600, 398, 3
	p = step(p, Controls{Right: true}, arena, newSim())
	if !p.OnPlatform || !approx(p.VX, 2.5) {
		t.Errorf("sticky = vx %v on %v", p.VX, p.OnPlatform)
	}
}

func TestPlatformPosition(t *testing.T) {
	pl := cfg.PlatformConfig{X: 300, Y: 350, Moving: true, Speed: 1, Range: 200, StartX: 300}
	if x, y := PlatformPosition(pl, 0); x != 300 || y != 350 {
		t.Errorf("frame 0 = (%v, %v)", x, y)
	}
	x, y := PlatformPosition(pl, 79)
	if x <= 390 || y != 350 {
		t.Errorf("near quarter period = (%v, %v)", x, y)
	}

	pl.StartY = 350
	pl.Range = 0
	pl.StartX = 0
	_, y = PlatformPosition(pl, 79)
	if y <= 390 {
		t.Errorf("vertical default range: y = %v", y)
	}

	static := cfg.PlatformConfig{X: 10, Y: 20}
	if x, y := PlatformPosition(static, 500); x != 10 || y != 20 {
		t.Errorf("static moved to (%v, %v)", x, y)
	}
}

func TestStaticHazardPeriod(t *testing.T) {
	arena := flat()
	arena.Effects = stubArena{solid: true, damage: 2}
	sim := newSim()
	p := components.NewPlayer(cfg.Player1)

	sim.Frame = 29
	p = step(p, Controls{}, arena, sim)
	if p.Health != 100 {
		t.Fatalf("damage off period: %v", p.Health)
	}
	sim.Frame = 30
	p = step(p, Controls{}, arena, sim)
	if p.Health != 98 || p.HitReaction != 4 {
		t.Errorf("health %v hit reaction %d", p.Health, p.HitReaction)
	}

	p.Buffs.Shield.Start(300)
	sim.Frame = 60
	p = step(p, Controls{}, arena, sim)
	if p.Health != 98 {
		t.Errorf("shielded health %v", p.Health)
	}
}

func TestBurning(t *testing.T) {
	sim := newSim()
	p := components.NewPlayer(cfg.Player1)
	p.Status.Burning.Start(60)

	for frame := 1; frame <= 70; frame++ {
		sim.Frame = frame
		p = step(p, Controls{}, flat(), sim)
	}
	// Burns on frames 30 and 60
	if p.Health != 98 {
		t.Errorf("health = %v, want 98", p.Health)
	}
	if p.Status.Burning.On() {
		t.Error("burning should have expired")
	}
}

func TestStageBounds(t *testing.T) {
	sim := newSim()
	p := components.NewPlayer(cfg.Player1)
	p.X = 3
	p = step(p, Controls{Left: true}, flat(), sim)
	if p.X != 15 {
		t.Errorf("x = %v, want 15", p.X)
	}
	p.X = 1199
	p = step(p, Controls{Right: true}, flat(), sim)
	if p.X != 1185 {
		t.Errorf("x = %v, want 1185", p.X)
	}
}

func TestVictoryFreezes(t *testing.T) {
	p := components.NewPlayer(cfg.Player1)
	p.Winner = true
	p.VictoryTimer = 10
	p.VX = 4
	p.Y = 300

	got := step(p, Controls{Right: true, Jump: true}, flat(), newSim())
	if got.VX != 0 || got.VictoryTimer != 9 || got.Y != 300 {
		t.Errorf("victory step = %+v", got)
	}
}

func TestHealthStaysInRange(t *testing.T) {
	arena := flat()
	arena.Effects = stubArena{solid: true, damage: 500}
	sim := newSim()
	p := components.NewPlayer(cfg.Player1)
	p.Status.Burning.Start(1000)
	for frame := 1; frame <= 200; frame++ {
		sim.Frame = frame
		p = step(p, Controls{Punch: frame%3 == 0, Jump: frame%7 == 0}, arena, sim)
		if p.Health < 0 || p.Health > cfg.Combat.MaxHealth {
			t.Fatalf("frame %d health %v", frame, p.Health)
		}
	}
}

func TestNilArenaDegrades(t *testing.T) {
	var logs bytes.Buffer
	defer log.SetOutput(log.Writer())
	log.SetOutput(&logs)

	sim := newSim()
	p := components.NewPlayer(cfg.Player1)
	got := step(p, Controls{Right: true}, components.ArenaData{}, sim)
	if got.VX != cfg.Physics.MoveSpeed {
		t.Errorf("vx = %v", got.VX)
	}
	for i := 0; i < 100; i++ {
		got = step(got, Controls{}, components.ArenaData{}, sim)
	}

	if n := strings.Count(logs.String(), "Warning"); n > 1 {
		t.Errorf("fallback arena logged %d warnings, want at most one", n)
	}
	if a, b := normalizeArena(components.ArenaData{}), normalizeArena(components.ArenaData{}); a.Effects != b.Effects || a.Config != b.Config {
		t.Error("fallback arena rebuilt between calls")
	}
}
