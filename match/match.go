// Package match runs a best-of-N fight between two fighters. Each round is a
// fresh donburi world; scores live on the Match and carry across rounds.
package match

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/automoto/stickfight/archetypes"
	"github.com/automoto/stickfight/arenas"
	"github.com/automoto/stickfight/assets"
	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/automoto/stickfight/shared/arenadata"
	"github.com/automoto/stickfight/systems"
	"github.com/automoto/stickfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ErrInvalidBestOf is returned for a match format other than 1, 3, 5 or 7.
var ErrInvalidBestOf = errors.New("match: best-of must be one of 1, 3, 5 or 7")

// Config selects the arena and format of a match. It is fixed once the match
// starts.
type Config struct {
	Arena cfg.ArenaID
	// ArenaConfig overrides the embedded arena data when set.
	ArenaConfig *cfg.ArenaConfig
	BestOf      int
	// Seed drives every random roll. Zero falls back to config.Match.RNGSeed
	// and then to the clock.
	Seed uint64
}

// Validate checks the arena id and match format.
func (c Config) Validate() error {
	if !c.Arena.Valid() {
		return fmt.Errorf("match: arena %d: %w", int(c.Arena), arenadata.ErrUnknownArena)
	}
	if !slices.Contains(cfg.Match.BestOfOptions, c.BestOf) {
		return fmt.Errorf("%w (got %d)", ErrInvalidBestOf, c.BestOf)
	}
	return nil
}

// Match owns the round world and the running score.
type Match struct {
	conf  Config
	arena *cfg.ArenaConfig
	seed  uint64

	ecs *ecs.ECS
}

// New validates the configuration and starts round one.
func New(c Config) (*Match, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	arena := c.ArenaConfig
	if arena == nil {
		arena = assets.Arena(c.Arena)
	}
	seed := c.Seed
	if seed == 0 {
		seed = cfg.Match.RNGSeed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	m := &Match{conf: c, arena: arena, seed: seed}
	m.NewMatch()
	return m, nil
}

// NewMatch resets the score and starts round one.
func (m *Match) NewMatch() {
	score := components.MatchData{
		Arena:  m.conf.Arena,
		BestOf: m.conf.BestOf,
	}
	score.GetPlayerScore(cfg.Player2.Index())
	m.startRound(score, 1)
	log.Printf("Match started: %s, best of %d", m.conf.Arena, m.conf.BestOf)
}

// NextRound starts the next round after a round-over signal. It does nothing
// while a round is running or once the match is finished.
func (m *Match) NextRound() bool {
	if m.State() != cfg.MatchStateRoundOver {
		return false
	}
	d := m.Data()
	m.startRound(*d, d.Round+1)
	return true
}

// SetArena swaps the arena data used from the next round on. A nil arena is
// ignored.
func (m *Match) SetArena(arena *cfg.ArenaConfig) {
	if arena == nil || arena.ID != m.conf.Arena {
		return
	}
	m.arena = arena
}

// startRound builds a fresh world: new fighters, no pickups or texts, frame
// zero and a new hazard runtime. The score in data carries over.
func (m *Match) startRound(data components.MatchData, round int) {
	data.Scores = slices.Clone(data.Scores)
	data.State = cfg.MatchStatePlaying
	data.Round = round
	data.RoundWinner = cfg.NoPlayer
	data.RoundLoser = cfg.NoPlayer
	data.MatchWinner = cfg.NoPlayer

	e := ecs.NewECS(donburi.NewWorld())

	// The victory pose runs first so it only ticks after the round ended.
	e.AddSystem(systems.UpdateVictory)
	e.AddSystem(systems.UpdatePlayers)
	e.AddSystem(systems.UpdateCombat)
	e.AddSystem(systems.UpdateHazards)
	e.AddSystem(systems.UpdateTexts)
	e.AddSystem(systems.UpdatePowerUps)
	e.AddSystem(systems.UpdateRound)

	sim := components.NewSimulationData(roundSeed(m.seed, round))
	effects := arenas.New(m.arena)
	effects.Initialize(&sim)

	components.Simulation.SetValue(archetypes.Simulation.Spawn(e), sim)
	components.Match.SetValue(archetypes.Match.Spawn(e), data)
	components.Arena.SetValue(archetypes.Arena.Spawn(e), components.ArenaData{
		Config:  m.arena,
		Effects: effects,
	})
	for _, id := range []cfg.PlayerID{cfg.Player1, cfg.Player2} {
		components.Player.SetValue(archetypes.Player.Spawn(e), components.NewPlayer(id))
	}

	m.ecs = e
}

// roundSeed derives a distinct stream per round from the match seed.
func roundSeed(seed uint64, round int) uint64 {
	return seed + uint64(round-1)*0x9e3779b97f4a7c15
}

// Tick runs one frame with the given keys held. The frame counter only
// advances while the round is running; afterwards only the victory pose
// moves.
func (m *Match) Tick(pressed map[cfg.Key]bool) {
	sim := m.simulation()
	clear(sim.Pressed)
	for k, down := range pressed {
		if down {
			sim.Pressed[k] = true
		}
	}
	if m.State() == cfg.MatchStatePlaying {
		sim.Frame++
	}
	m.ecs.Update()
}

// RecordKey adds a fresh key press to the combo history of the fighter it is
// bound to. Keys bound to neither fighter are ignored, as are presses while
// the round is over.
func (m *Match) RecordKey(key cfg.Key) {
	if m.State() != cfg.MatchStatePlaying {
		return
	}
	sim := m.simulation()
	for i, b := range cfg.Input.Players {
		if b.Action(key) == cfg.ActionNone {
			continue
		}
		sim.History[i] = sim.History[i].Record(key, sim.Frame, cfg.Combo.HistoryFrames)
	}
}

// State is the current match state.
func (m *Match) State() cfg.MatchStateID {
	return m.Data().State
}

// Data returns the live match singleton of the current round.
func (m *Match) Data() *components.MatchData {
	entry, ok := components.Match.First(m.ecs.World)
	if !ok {
		panic("match: round world has no match data")
	}
	return components.Match.Get(entry)
}

func (m *Match) simulation() *components.SimulationData {
	entry, ok := components.Simulation.First(m.ecs.World)
	if !ok {
		panic("match: round world has no simulation context")
	}
	return components.Simulation.Get(entry)
}

// Result is the terminal signal of a round.
type Result struct {
	Round       int
	Winner      cfg.PlayerID
	Loser       cfg.PlayerID
	Players     [2]components.PlayerData
	MatchOver   bool
	MatchWinner cfg.PlayerID
}

// Result reports how the last round ended. It returns false while the round
// is still running.
func (m *Match) Result() (Result, bool) {
	d := m.Data()
	if d.State == cfg.MatchStatePlaying {
		return Result{}, false
	}
	return Result{
		Round:       d.Round,
		Winner:      d.RoundWinner,
		Loser:       d.RoundLoser,
		Players:     m.players(),
		MatchOver:   d.State == cfg.MatchStateFinished,
		MatchWinner: d.MatchWinner,
	}, true
}

func (m *Match) players() [2]components.PlayerData {
	var players [2]components.PlayerData
	tags.Player.Each(m.ecs.World, func(entry *donburi.Entry) {
		p := components.Player.Get(entry)
		if i := p.ID.Index(); i >= 0 && i < 2 {
			players[i] = *p
		}
	})
	return players
}
