package statistics

import (
	"fmt"
	"math"
	"slices"

	"github.com/lox/warsim/internal/game"
)

// GameResult represents the outcome of a single simulated game
type GameResult struct {
	Result     game.Result
	Turns      uint64
	Wars       uint64 // Ties resolved during the game
	LongestWar int    // Most ties in one round
}

// Statistics accumulates results over many games of a scenario
type Statistics struct {
	Games       int
	Player1Wins int
	Player2Wins int
	Draws       int

	SumScore  float64 // Player 1 score: win 1, draw 0.5, loss 0
	SumScore2 float64 // Sum of squares for score variance

	SumTurns  float64
	SumTurns2 float64  // Sum of squares for turn variance
	Turns     []uint64 // Game lengths in play order, persisted by the driver
	MinTurns  uint64
	MaxTurns  uint64

	Wars       uint64 // Ties across all games
	LongestWar int    // Longest chain of ties seen in one round
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	score := result.Result.Score()
	turns := float64(result.Turns)

	s.Games++
	switch result.Result {
	case game.Player1Wins:
		s.Player1Wins++
	case game.Player2Wins:
		s.Player2Wins++
	case game.Draw:
		s.Draws++
	}

	s.SumScore += score
	s.SumScore2 += score * score

	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.Turns = append(s.Turns, result.Turns)
	if s.Games == 1 || result.Turns < s.MinTurns {
		s.MinTurns = result.Turns
	}
	s.MaxTurns = max(s.MaxTurns, result.Turns)

	s.Wars += result.Wars
	s.LongestWar = max(s.LongestWar, result.LongestWar)
}

// MeanScore returns player 1's mean score, i.e. the win rate with draws
// counted as half a win
func (s *Statistics) MeanScore() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumScore / float64(s.Games)
}

// ScoreStdError returns the standard error of the mean score
func (s *Statistics) ScoreStdError() float64 {
	if s.Games < 2 {
		return 0
	}
	n := float64(s.Games)
	mean := s.MeanScore()
	variance := (s.SumScore2 - n*mean*mean) / (n - 1)
	return math.Sqrt(math.Max(variance, 0) / n)
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean score
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.MeanScore()
	margin := 1.96 * s.ScoreStdError()
	return mean - margin, mean + margin
}

// MeanTurns returns the mean game length in turns
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// Variance returns the population variance of game lengths
func (s *Statistics) Variance() float64 {
	if s.Games == 0 {
		return 0
	}
	mean := s.MeanTurns()
	v := s.SumTurns2/float64(s.Games) - mean*mean
	return math.Max(v, 0)
}

// StdDev returns the population standard deviation of game lengths
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean game length
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// Median returns the median game length
func (s *Statistics) Median() float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := s.sortedTurns()

	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

// Percentile returns the game length at the given percentile (0.0 to 1.0),
// interpolating between neighbouring games
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Turns) == 0 {
		return 0
	}
	sorted := s.sortedTurns()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return float64(sorted[len(sorted)-1])
	}

	weight := index - float64(lower)
	return float64(sorted[lower])*(1-weight) + float64(sorted[upper])*weight
}

func (s *Statistics) sortedTurns() []uint64 {
	sorted := slices.Clone(s.Turns)
	slices.Sort(sorted)
	return sorted
}

// Validate performs consistency checks on the accumulated data
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Turns) != s.Games {
		return fmt.Errorf("turns length (%d) does not match games count (%d)",
			len(s.Turns), s.Games)
	}

	if total := s.Player1Wins + s.Player2Wins + s.Draws; total != s.Games {
		return fmt.Errorf("results total (%d) does not match games count (%d)", total, s.Games)
	}

	for i, turns := range s.Turns {
		if turns == 0 {
			return fmt.Errorf("game %d finished in zero turns", i)
		}
	}

	return nil
}
