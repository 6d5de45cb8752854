package systems

import (
	"log"

	"github.com/automoto/stickfight/components"
	cfg "github.com/automoto/stickfight/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRound ends the round when a fighter is out of health and scores it.
func UpdateRound(e *ecs.ECS) {
	m := getMatch(e)
	if m == nil || m.State != cfg.MatchStatePlaying {
		return
	}
	players, ok := readPlayers(e)
	if !ok {
		return
	}

	loser := RoundLoser(players)
	if loser == cfg.NoPlayer {
		return
	}
	winner := loser.Opponent()

	players[loser.Index()].Health = 0
	w := &players[winner.Index()]
	w.Winner = true
	w.VictoryTimer = cfg.Match.VictoryPoseFrames
	writePlayers(e, players)

	ScoreRound(m, winner)
	if sim := getSimulation(e); sim != nil {
		log.Printf("Round %d won by player %d at frame %d", m.Round, int(winner), sim.Frame)
	}
	if m.State == cfg.MatchStateFinished {
		log.Printf("Match won by player %d (%d-%d)", int(winner), m.Wins(cfg.Player1), m.Wins(cfg.Player2))
	}
}

// RoundLoser returns the fighter that lost the round, or NoPlayer while both
// are standing. Player 1 is checked first, so a double knockout goes to
// player 2.
func RoundLoser(players [2]components.PlayerData) cfg.PlayerID {
	if !players[0].Alive() {
		return cfg.Player1
	}
	if !players[1].Alive() {
		return cfg.Player2
	}
	return cfg.NoPlayer
}

// ScoreRound credits a round and moves the match to round-over, or to
// finished once the winner reaches the wins needed.
func ScoreRound(m *components.MatchData, winner cfg.PlayerID) {
	loser := winner.Opponent()
	m.AddWin(winner.Index())
	m.AddLoss(loser.Index())
	m.RoundWinner = winner
	m.RoundLoser = loser

	if m.Wins(winner) >= m.WinsNeeded() {
		m.State = cfg.MatchStateFinished
		m.MatchWinner = winner
		return
	}
	m.State = cfg.MatchStateRoundOver
}

// UpdateVictory plays the winner's victory pose while the round is over.
// Nothing else moves.
func UpdateVictory(e *ecs.ECS) {
	if roundRunning(e) {
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
	arena := getArena(e)
	for i := range players {
		if players[i].Winner {
			players[i], _ = StepPlayer(players[i], Controls{}, cfg.AttackNone, arena, sim)
		}
	}
	writePlayers(e, players)
}
