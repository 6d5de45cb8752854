package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer the simulation uses.
const Default ecs.LayerID = iota

// MatchStateID tracks where the match is between ticks.
type MatchStateID int

const (
	MatchStatePlaying MatchStateID = iota
	MatchStateRoundOver
	MatchStateFinished
)

func (s MatchStateID) String() string {
	switch s {
	case MatchStatePlaying:
		return "playing"
	case MatchStateRoundOver:
		return "round over"
	case MatchStateFinished:
		return "finished"
	}
	return "unknown"
}

// PlayerID is the 1-based fighter number. NoPlayer marks floating texts not
// tied to a fighter.
type PlayerID int

const (
	NoPlayer PlayerID = 0
	Player1  PlayerID = 1
	Player2  PlayerID = 2
)

// Index returns the 0-based slot of a fighter.
func (p PlayerID) Index() int {
	return int(p) - 1
}

// Opponent returns the other fighter.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}
