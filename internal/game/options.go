package game

import "github.com/charmbracelet/log"

// Params are the rule variations of a game.
type Params struct {
	// WarDepth is the number of face-down cards each player antes during a
	// war before the next face-up comparison.
	WarDepth uint
}

// DefaultParams returns the assumed house rules: three cards face down in a
// war.
func DefaultParams() Params {
	return Params{WarDepth: 3}
}

// Option configures a Game during creation.
type Option func(*Game)

// WithLogger traces every round at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}
