package components

import (
	"math/rand/v2"

	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi"
)

// KeyPress is one entry of a fighter's input history.
type KeyPress struct {
	Key   cfg.Key
	Frame int
}

// KeyHistory is the time-stamped combo input buffer of one fighter.
type KeyHistory []KeyPress

// Record appends a key and drops entries older than keep frames.
func (h KeyHistory) Record(k cfg.Key, frame, keep int) KeyHistory {
	h = append(h, KeyPress{Key: k, Frame: frame})
	return h.Prune(frame, keep)
}

// Prune drops entries with frame-entry.Frame >= keep. The result shares the
// receiver's backing array.
func (h KeyHistory) Prune(frame, keep int) KeyHistory {
	out := h[:0]
	for _, kp := range h {
		if frame-kp.Frame < keep {
			out = append(out, kp)
		}
	}
	return out
}

// FloatingText is a damage number or banner. Owner is NoPlayer for arena
// announcements.
type FloatingText struct {
	Text     string
	X, Y     float64
	Lifetime int
	Owner    cfg.PlayerID
}

// SimulationData is the per-round context threaded through every system: the
// frame counter, the seeded random source, this tick's input and the
// floating-text queue. The orchestrator owns it; systems borrow it for one
// call.
type SimulationData struct {
	Frame   int
	RNG     *rand.Rand
	Pressed map[cfg.Key]bool
	History [2]KeyHistory
	Texts   []FloatingText
}

var Simulation = donburi.NewComponentType[SimulationData]()

// NewSimulationData returns a context seeded for a deterministic round.
func NewSimulationData(seed uint64) SimulationData {
	return SimulationData{
		RNG:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Pressed: map[cfg.Key]bool{},
	}
}

// IsPressed reports whether a key is down this tick. Unknown keys read as
// released.
func (s *SimulationData) IsPressed(k cfg.Key) bool {
	return s.Pressed[k]
}

// AddText queues a floating text.
func (s *SimulationData) AddText(text string, x, y float64, lifetime int, owner cfg.PlayerID) {
	s.Texts = append(s.Texts, FloatingText{Text: text, X: x, Y: y, Lifetime: lifetime, Owner: owner})
}

// Every reports whether the current frame falls on a period boundary. A
// period of zero or less matches every frame.
func (s *SimulationData) Every(period int) bool {
	if period <= 0 {
		return true
	}
	return s.Frame%period == 0
}

// Chance returns true with probability p.
func (s *SimulationData) Chance(p float64) bool {
	return s.RNG.Float64() < p
}

// Float returns a value in [0, 1).
func (s *SimulationData) Float() float64 {
	return s.RNG.Float64()
}

// Between returns a value in [min, max).
func (s *SimulationData) Between(min, max float64) float64 {
	return min + s.RNG.Float64()*(max-min)
}

// IntN returns a value in [0, n). It returns 0 for n <= 0.
func (s *SimulationData) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.RNG.IntN(n)
}

// Side returns +1 or -1 with equal probability.
func (s *SimulationData) Side() float64 {
	if s.RNG.Float64() > 0.5 {
		return 1
	}
	return -1
}
