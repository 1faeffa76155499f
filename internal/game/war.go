package game

import (
	"github.com/charmbracelet/log"

	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/randutil"
)

// Stats are counters collected while a game is played.
type Stats struct {
	Rounds     uint64 // Rounds played, including the final one
	Wars       uint64 // Ties resolved across all rounds
	LongestWar int    // Most ties in a single round
	LargestPot int    // Most cards at stake in a single round
}

// Game is a single game of War between two players. A Game is played once;
// construct a new one for every simulation.
type Game struct {
	rng     *randutil.Source
	player1 *PlayerDeck
	player2 *PlayerDeck
	params  Params
	logger  *log.Logger

	// work holds every card at stake in the current round
	work []deck.Card

	stats  Stats
	done   bool
	result Result
	turns  uint64
}

// New creates (but does not play) a game between the given decks. The game
// takes ownership of both decks and of rng.
func New(params Params, rng *randutil.Source, player1, player2 *PlayerDeck, opts ...Option) *Game {
	if rng == nil {
		panic("rng is required for game creation")
	}
	g := &Game{
		rng:     rng,
		player1: player1,
		player2: player2,
		params:  params,
		work:    make([]deck.Card, 0, player1.Cards()+player2.Cards()),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Play runs the game to completion and returns the result along with the
// number of turns taken. Every round is one turn, however many wars it
// contains. Calling Play again returns the same outcome without playing.
func (g *Game) Play() (Result, uint64) {
	if g.done {
		return g.result, g.turns
	}

	var turn uint64
	for {
		turn++

		round := g.playRound()
		if round.over {
			g.done = true
			g.result = round.result
			g.turns = turn
			if g.logger != nil {
				g.logger.Debug("Game over", "turn", turn, "result", round.result,
					"wars", g.stats.Wars, "longest_war", g.stats.LongestWar)
			}
			return g.result, g.turns
		}

		won := g.award(round.winner)
		if g.logger != nil {
			g.logger.Debug("Round won", "turn", turn, "winner", round.winner,
				"cards", won, "player1", g.player1.Cards(), "player2", g.player2.Cards())
		}
	}
}

// playRound resolves one round, including any chain of wars. The cards played
// accumulate in g.work; ties loop rather than recurse.
func (g *Game) playRound() roundResult {
	g.work = g.work[:0]
	g.stats.Rounds++
	wars := 0
	defer func() {
		g.stats.Wars += uint64(wars)
		g.stats.LongestWar = max(g.stats.LongestWar, wars)
		g.stats.LargestPot = max(g.stats.LargestPot, len(g.work))
	}()

	for {
		// A player who cannot flip a card has lost
		card1, ok1 := g.player1.Draw(g.rng)
		card2, ok2 := g.player2.Draw(g.rng)
		switch {
		case !ok1 && !ok2:
			return gameOver(Draw)
		case !ok1:
			return gameOver(Player2Wins)
		case !ok2:
			return gameOver(Player1Wins)
		}

		g.work = append(g.work, card1, card2)

		switch card1.Compare(card2) {
		case 1:
			return roundWin(Player1)
		case -1:
			return roundWin(Player2)
		}

		wars++
		g.ante(g.player1)
		g.ante(g.player2)
	}
}

// award gives the cards at stake to the round winner and returns how many
// there were.
func (g *Game) award(winner Player) int {
	switch winner {
	case Player1:
		g.player1.WinLoot(g.work)
	case Player2:
		g.player2.WinLoot(g.work)
	}
	won := len(g.work)
	g.work = g.work[:0]
	return won
}

// ante moves the face-down cards of a war from p into the work buffer.
func (g *Game) ante(p *PlayerDeck) {
	for range faceDown(p.Cards(), g.params.WarDepth) {
		card, _ := p.Draw(g.rng)
		g.work = append(g.work, card)
	}
}

// faceDown returns how many cards a player holding cards antes in a war: at
// most k, and never the last card, which is kept for the face-up comparison.
func faceDown(cards int, k uint) int {
	if cards <= 1 {
		return 0
	}
	spare := cards - 1
	if uint64(k) < uint64(spare) {
		return int(k)
	}
	return spare
}

// CardCounts returns the cards owned by each player and the cards currently
// at stake. Their sum stays equal to the dealt total until the game ends.
func (g *Game) CardCounts() (player1, player2, atStake int) {
	return g.player1.Cards(), g.player2.Cards(), len(g.work)
}

// Stats returns the counters collected so far
func (g *Game) Stats() Stats {
	return g.stats
}
