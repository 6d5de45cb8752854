package match

import (
	"errors"
	"maps"
	"reflect"
	"slices"
	"testing"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/arenadata"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
)

func newMatch(t *testing.T, arena cfg.ArenaID, bestOf int) *Match {
	t.Helper()
	m, err := New(Config{Arena: arena, BestOf: bestOf, Seed: 42})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func setHealth(m *Match, id cfg.PlayerID, health float64) {
	tags.Player.Each(m.ecs.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		if p.ID == id {
			p.Health = health
		}
	})
}

// knockOut ends the current round with the given loser.
func knockOut(t *testing.T, m *Match, loser cfg.PlayerID) Result {
	t.Helper()
	setHealth(m, loser, 0)
	m.Tick(nil)
	res, ok := m.Result()
	if !ok {
		t.Fatalf("round %d still running after knockout", m.Data().Round)
	}
	return res
}

func TestNewValidatesConfig(t *testing.T) {
	if _, err := New(Config{Arena: cfg.ArenaCount, BestOf: 3}); !errors.Is(err, arenadata.ErrUnknownArena) {
		t.Errorf("unknown arena: err = %v", err)
	}
	for _, bestOf := range []int{0, 2, 4, 9, -1} {
		if _, err := New(Config{Arena: cfg.ArenaIceCave, BestOf: bestOf}); !errors.Is(err, ErrInvalidBestOf) {
			t.Errorf("best of %d: err = %v", bestOf, err)
		}
	}
	for _, bestOf := range []int{1, 3, 5, 7} {
		if _, err := New(Config{Arena: cfg.ArenaIceCave, BestOf: bestOf, Seed: 1}); err != nil {
			t.Errorf("best of %d: %v", bestOf, err)
		}
	}
}

func TestNewStartsRoundOne(t *testing.T) {
	m := newMatch(t, cfg.ArenaVolcano, 3)
	s := m.Snapshot()

	if s.Frame != 0 || s.Match.Round != 1 || s.Match.State != cfg.MatchStatePlaying {
		t.Fatalf("frame %d round %d state %v", s.Frame, s.Match.Round, s.Match.State)
	}
	if s.Players[0].X != cfg.Stage.P1SpawnX || s.Players[1].X != cfg.Stage.P2SpawnX {
		t.Errorf("spawns = %v, %v", s.Players[0].X, s.Players[1].X)
	}
	if s.Players[0].Direction != cfg.DirectionRight || s.Players[1].Direction != cfg.DirectionLeft {
		t.Errorf("facing = %v, %v", s.Players[0].Direction, s.Players[1].Direction)
	}
	if s.Arena == nil || s.Arena.ID != cfg.ArenaVolcano {
		t.Errorf("arena = %+v", s.Arena)
	}
	if len(s.Platforms) != len(s.Arena.Platforms) {
		t.Errorf("platforms = %d, want %d", len(s.Platforms), len(s.Arena.Platforms))
	}
	if _, ok := m.Result(); ok {
		t.Error("result reported before the round ended")
	}
}

func TestTickAdvancesFrame(t *testing.T) {
	m := newMatch(t, cfg.ArenaNeonCity, 3)
	for i := 0; i < 10; i++ {
		m.Tick(nil)
	}
	if f := m.Snapshot().Frame; f != 10 {
		t.Errorf("frame = %d, want 10", f)
	}
}

func TestPressedKeysMoveFighters(t *testing.T) {
	m := newMatch(t, cfg.ArenaIceCave, 3)
	m.Tick(map[cfg.Key]bool{
		cfg.Input.Players[0].Key(cfg.ActionMoveRight): true,
		cfg.Input.Players[1].Key(cfg.ActionMoveLeft):  true,
	})
	s := m.Snapshot()
	if s.Players[0].X <= cfg.Stage.P1SpawnX {
		t.Errorf("p1 x = %v, want right of spawn", s.Players[0].X)
	}
	if s.Players[1].X >= cfg.Stage.P2SpawnX {
		t.Errorf("p2 x = %v, want left of spawn", s.Players[1].X)
	}
}

func TestRecordKeyFeedsCombos(t *testing.T) {
	m := newMatch(t, cfg.ArenaSpaceStation, 3)
	punch := cfg.Input.Players[0].Key(cfg.ActionPunch)
	m.RecordKey(punch)
	m.RecordKey(punch)
	m.Tick(nil)

	s := m.Snapshot()
	if got := s.Players[0].Attack.Type; got != cfg.AttackKick {
		t.Fatalf("p1 attack = %v, want kick", got)
	}
	if s.Players[0].ComboCounter != 1 {
		t.Errorf("combo counter = %d, want 1", s.Players[0].ComboCounter)
	}
	found := false
	for _, txt := range s.Texts {
		if txt.Text == "KICK!" && txt.Owner == cfg.Player1 {
			found = true
		}
	}
	if !found {
		t.Errorf("no combo banner in %+v", s.Texts)
	}
	if h := m.simulation().History[0]; len(h) != 0 {
		t.Errorf("history not cleared: %v", h)
	}
}

func TestRecordKeyRoutesByBinding(t *testing.T) {
	m := newMatch(t, cfg.ArenaSpaceStation, 3)
	m.RecordKey("z")
	m.RecordKey(cfg.Input.Players[1].Key(cfg.ActionSpecial))

	h := m.simulation().History
	if len(h[0]) != 0 {
		t.Errorf("p1 history = %v, want empty", h[0])
	}
	if len(h[1]) != 1 || h[1][0].Key != cfg.KeyPeriod {
		t.Errorf("p2 history = %v", h[1])
	}
}

func TestRecordKeyDropsOldEntries(t *testing.T) {
	m := newMatch(t, cfg.ArenaSpaceStation, 3)
	left := cfg.Input.Players[0].Key(cfg.ActionMoveLeft)
	m.RecordKey(left)
	for i := 0; i < cfg.Combo.HistoryFrames; i++ {
		m.Tick(nil)
	}
	m.RecordKey(left)
	if h := m.simulation().History[0]; len(h) != 1 || h[0].Frame != cfg.Combo.HistoryFrames {
		t.Errorf("history = %v", h)
	}
}

func TestRoundEndFreezesSimulation(t *testing.T) {
	m := newMatch(t, cfg.ArenaSpaceStation, 3)
	for i := 0; i < 5; i++ {
		m.Tick(nil)
	}
	res := knockOut(t, m, cfg.Player2)
	if res.Winner != cfg.Player1 || res.Loser != cfg.Player2 || res.MatchOver {
		t.Fatalf("result = %+v", res)
	}
	if res.Players[1].Health != 0 || !res.Players[0].Winner {
		t.Errorf("post-round players = %+v", res.Players)
	}

	before := m.Snapshot()
	for i := 0; i < 10; i++ {
		m.Tick(map[cfg.Key]bool{cfg.Input.Players[1].Key(cfg.ActionMoveLeft): true})
	}
	after := m.Snapshot()

	if after.Frame != before.Frame {
		t.Errorf("frame moved from %d to %d after the round ended", before.Frame, after.Frame)
	}
	if after.Players[1] != before.Players[1] {
		t.Errorf("loser changed: %+v", after.Players[1])
	}
	want := cfg.Match.VictoryPoseFrames - 10
	if got := after.Players[0].VictoryTimer; got != want {
		t.Errorf("victory timer = %d, want %d", got, want)
	}
}

func TestDoubleKnockoutGoesToPlayer2(t *testing.T) {
	m := newMatch(t, cfg.ArenaHaunted, 3)
	setHealth(m, cfg.Player1, 0)
	setHealth(m, cfg.Player2, 0)
	m.Tick(nil)

	res, ok := m.Result()
	if !ok {
		t.Fatal("round still running")
	}
	if res.Winner != cfg.Player2 || res.Loser != cfg.Player1 {
		t.Errorf("winner %v loser %v, want player 2 over player 1", res.Winner, res.Loser)
	}
}

func TestBestOfThree(t *testing.T) {
	m := newMatch(t, cfg.ArenaUnderwater, 3)

	knockOut(t, m, cfg.Player1)
	if !m.NextRound() {
		t.Fatal("NextRound refused after round one")
	}
	knockOut(t, m, cfg.Player2)
	if !m.NextRound() {
		t.Fatal("NextRound refused after round two")
	}
	res := knockOut(t, m, cfg.Player2)

	if !res.MatchOver || res.MatchWinner != cfg.Player1 {
		t.Fatalf("result = %+v, want match won by player 1", res)
	}
	d := m.Data()
	if d.State != cfg.MatchStateFinished || d.Round != 3 {
		t.Errorf("state %v round %d", d.State, d.Round)
	}
	if d.Wins(cfg.Player1) != 2 || d.Wins(cfg.Player2) != 1 {
		t.Errorf("score %d-%d, want 2-1", d.Wins(cfg.Player1), d.Wins(cfg.Player2))
	}
	if m.NextRound() {
		t.Error("NextRound started a round after the match finished")
	}
}

func TestBestOfOneEndsAfterOneRound(t *testing.T) {
	m := newMatch(t, cfg.ArenaIceCave, 1)
	res := knockOut(t, m, cfg.Player1)
	if !res.MatchOver || res.MatchWinner != cfg.Player2 {
		t.Errorf("result = %+v", res)
	}
}

func TestNextRoundResetsRound(t *testing.T) {
	m := newMatch(t, cfg.ArenaVolcano, 5)
	if m.NextRound() {
		t.Fatal("NextRound started a round while one was running")
	}
	for i := 0; i < 100; i++ {
		m.Tick(map[cfg.Key]bool{cfg.Input.Players[0].Key(cfg.ActionMoveRight): true})
	}
	knockOut(t, m, cfg.Player2)
	m.NextRound()

	s := m.Snapshot()
	if s.Frame != 0 || s.Match.Round != 2 || s.Match.State != cfg.MatchStatePlaying {
		t.Fatalf("frame %d round %d state %v", s.Frame, s.Match.Round, s.Match.State)
	}
	for i, p := range s.Players {
		if p != components.NewPlayer(p.ID) {
			t.Errorf("player %d not reset: %+v", i+1, p)
		}
	}
	if len(s.Texts) != 0 || len(s.PowerUps) != 0 {
		t.Errorf("texts %d pickups %d carried over", len(s.Texts), len(s.PowerUps))
	}
	if s.Match.Wins(cfg.Player1) != 1 {
		t.Errorf("p1 wins = %d, want 1", s.Match.Wins(cfg.Player1))
	}
	if s.Match.RoundWinner != cfg.NoPlayer {
		t.Errorf("round winner = %v", s.Match.RoundWinner)
	}
}

func TestNewMatchResetsScores(t *testing.T) {
	m := newMatch(t, cfg.ArenaNeonCity, 3)
	knockOut(t, m, cfg.Player2)
	m.NextRound()
	knockOut(t, m, cfg.Player2)

	m.NewMatch()
	d := m.Data()
	if d.State != cfg.MatchStatePlaying || d.Round != 1 {
		t.Errorf("state %v round %d", d.State, d.Round)
	}
	if d.Wins(cfg.Player1) != 0 || d.Wins(cfg.Player2) != 0 {
		t.Errorf("score %d-%d, want 0-0", d.Wins(cfg.Player1), d.Wins(cfg.Player2))
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := newMatch(t, cfg.ArenaSpaceStation, 3)
	m.RecordKey(cfg.KeyS)
	m.RecordKey(cfg.KeyS)
	m.Tick(nil)

	s := m.Snapshot()
	if len(s.Texts) == 0 {
		t.Fatal("expected a combo banner")
	}
	s.Texts[0].Text = "changed"
	s.Players[0].Health = 1
	s.Match.Scores[0].Wins = 9

	again := m.Snapshot()
	if again.Texts[0].Text == "changed" || again.Players[0].Health == 1 || again.Match.Scores[0].Wins == 9 {
		t.Error("snapshot shares state with the match")
	}
}

func TestSameSeedSameMatch(t *testing.T) {
	for id := cfg.ArenaID(0); id < cfg.ArenaCount; id++ {
		t.Run(id.Slug(), func(t *testing.T) {
			a := newMatch(t, id, 3)
			b := newMatch(t, id, 3)
			for frame := 1; frame <= 900; frame++ {
				pressed := scriptedInput(frame)
				if frame%15 == 0 {
					recordPressed(a, pressed)
					recordPressed(b, pressed)
				}
				a.Tick(pressed)
				b.Tick(pressed)
			}
			if sa, sb := a.Snapshot(), b.Snapshot(); !reflect.DeepEqual(sa, sb) {
				t.Errorf("snapshots diverged at frame %d", sa.Frame)
			}
		})
	}
}

func TestHealthStaysInRange(t *testing.T) {
	for id := cfg.ArenaID(0); id < cfg.ArenaCount; id++ {
		m := newMatch(t, id, 7)
		for frame := 1; frame <= 1500; frame++ {
			pressed := scriptedInput(frame)
			if frame%7 == 0 {
				recordPressed(m, pressed)
			}
			m.Tick(pressed)
			for _, p := range m.Snapshot().Players {
				if p.Health < 0 || p.Health > cfg.Combat.MaxHealth {
					t.Fatalf("%s frame %d: player %d health %v", id, frame, p.ID, p.Health)
				}
			}
			if m.State() == cfg.MatchStateRoundOver {
				m.NextRound()
			}
		}
	}
}

// recordPressed records the held keys in a fixed order.
func recordPressed(m *Match, pressed map[cfg.Key]bool) {
	for _, k := range slices.Sorted(maps.Keys(pressed)) {
		m.RecordKey(k)
	}
}

// scriptedInput walks both fighters toward each other and has them trade
// punches, kicks and jumps.
func scriptedInput(frame int) map[cfg.Key]bool {
	p1, p2 := cfg.Input.Players[0], cfg.Input.Players[1]
	pressed := map[cfg.Key]bool{
		p1.Key(cfg.ActionMoveRight): frame%120 < 80,
		p2.Key(cfg.ActionMoveLeft):  frame%100 < 70,
		p1.Key(cfg.ActionPunch):     frame%9 == 0,
		p2.Key(cfg.ActionSecondary): frame%13 == 0,
		p1.Key(cfg.ActionJump):      frame%90 == 0,
		p2.Key(cfg.ActionJump):      frame%70 == 0,
	}
	for k, down := range pressed {
		if !down {
			delete(pressed, k)
		}
	}
	return pressed
}
