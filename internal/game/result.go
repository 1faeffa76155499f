package game

// Player identifies one of the two seats in a game.
type Player int

const (
	Player1 Player = iota + 1
	Player2
)

// String returns a human readable player name
func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "unknown"
	}
}

// Result is the outcome of a finished game. A game is drawn when both players
// flip their last cards into a war.
type Result int

const (
	Player1Wins Result = iota + 1
	Draw
	Player2Wins
)

// String returns a human readable result
func (r Result) String() string {
	switch r {
	case Player1Wins:
		return "player1"
	case Draw:
		return "draw"
	case Player2Wins:
		return "player2"
	default:
		return "unknown"
	}
}

// Score returns the result from player 1's point of view: 1 for a win, 0.5
// for a draw and 0 for a loss.
func (r Result) Score() float64 {
	switch r {
	case Player1Wins:
		return 1
	case Draw:
		return 0.5
	default:
		return 0
	}
}

// roundResult is the outcome of a single round: either a player takes the
// cards at stake, or the game is over.
type roundResult struct {
	winner Player
	result Result
	over   bool
}

func roundWin(p Player) roundResult {
	return roundResult{winner: p}
}

func gameOver(r Result) roundResult {
	return roundResult{result: r, over: true}
}
