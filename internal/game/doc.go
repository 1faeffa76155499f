// Package game implements the core engine for the card game War.
//
// Each player owns a PlayerDeck split into a draw pile and a discard pile.
// Cards are drawn from the draw pile until it runs out, at which point the
// discard pile (everything won since the last reshuffle) is shuffled to become
// the new draw pile.
//
// A Game plays rounds until one player can no longer draw. Each round both
// players flip a card and the higher card takes everything at stake. On a tie
// (a war) each player antes up to Params.WarDepth face-down cards, always
// keeping at least one card back for the next face-up comparison, and the
// comparison repeats.
//
// # Basic Usage
//
//	rng := randutil.NewSource(42)
//	p1 := game.NewPlayerDeck(deck.MustParse("1-13x2"))
//	p2 := game.NewPlayerDeck(deck.MustParse("1-13x2"))
//	g := game.New(game.DefaultParams(), rng.Fork(), p1, p2)
//	result, turns := g.Play()
//
// # Deterministic Testing
//
// A Game consumes randomness only when reshuffling a discard pile, so the same
// seed and the same initial decks always yield the same result and turn count.
// Simulations that run many games should give each game its own fork of a root
// source (randutil.Source.Fork or ForkAt) rather than sharing one stream.
package game
