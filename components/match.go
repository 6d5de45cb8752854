package components

import (
	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi"
)

// PlayerScore tracks a fighter's match statistics
type PlayerScore struct {
	PlayerIndex int
	Wins        int // Rounds won
	Losses      int
}

// MatchData stores the current match state and scores.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	State       cfg.MatchStateID
	Arena       cfg.ArenaID
	BestOf      int
	Round       int           // 1-based number of the round being played
	Scores      []PlayerScore // Score per fighter slot (indexed by PlayerIndex)
	RoundWinner cfg.PlayerID  // NoPlayer while the round runs
	RoundLoser  cfg.PlayerID
	MatchWinner cfg.PlayerID // NoPlayer until the match is decided
}

var Match = donburi.NewComponentType[MatchData]()

// GetPlayerScore returns the score for a fighter, creating it if needed
func (m *MatchData) GetPlayerScore(playerIndex int) *PlayerScore {
	// Ensure slice is large enough
	for len(m.Scores) <= playerIndex {
		m.Scores = append(m.Scores, PlayerScore{
			PlayerIndex: len(m.Scores),
		})
	}
	return &m.Scores[playerIndex]
}

// AddWin credits a round to a fighter
func (m *MatchData) AddWin(playerIndex int) {
	score := m.GetPlayerScore(playerIndex)
	score.Wins++
}

// AddLoss records a lost round
func (m *MatchData) AddLoss(playerIndex int) {
	score := m.GetPlayerScore(playerIndex)
	score.Losses++
}

// Wins returns the rounds won by a fighter.
func (m *MatchData) Wins(id cfg.PlayerID) int {
	return m.GetPlayerScore(id.Index()).Wins
}

// WinsNeeded is the number of rounds that decides a best-of-N match.
func (m *MatchData) WinsNeeded() int {
	return (m.BestOf + 1) / 2
}
