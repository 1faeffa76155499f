package game

import (
	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/randutil"
)

// PlayerDeck holds the cards owned by one player. Cards are drawn from the
// draw pile until it is empty, then the discard pile is shuffled to become the
// new draw pile. Won cards go to the discard pile.
type PlayerDeck struct {
	draw    []deck.Card
	discard []deck.Card
}

// NewPlayerDeck creates a deck owning cards. Every card starts in the discard
// pile so the first draw shuffles them.
func NewPlayerDeck(cards []deck.Card) *PlayerDeck {
	discard := make([]deck.Card, len(cards))
	copy(discard, cards)
	return &PlayerDeck{discard: discard}
}

// Cards returns the number of cards the player owns
func (d *PlayerDeck) Cards() int {
	return len(d.draw) + len(d.discard)
}

// Draw removes and returns the top card of the draw pile, reshuffling the
// discard pile into it first if the draw pile is empty. It returns false when
// the player owns no cards.
func (d *PlayerDeck) Draw(rng *randutil.Source) (deck.Card, bool) {
	if len(d.draw) == 0 {
		rng.Shuffle(len(d.discard), func(i, j int) {
			d.discard[i], d.discard[j] = d.discard[j], d.discard[i]
		})
		d.draw, d.discard = d.discard, d.draw
	}

	n := len(d.draw)
	if n == 0 {
		return 0, false
	}
	card := d.draw[n-1]
	d.draw = d.draw[:n-1]
	return card, true
}

// WinLoot adds cards to the discard pile in the given order
func (d *PlayerDeck) WinLoot(cards []deck.Card) {
	d.discard = append(d.discard, cards...)
}

// Clone returns an independent copy of the deck, piles and order included.
func (d *PlayerDeck) Clone() *PlayerDeck {
	return &PlayerDeck{
		draw:    append([]deck.Card(nil), d.draw...),
		discard: append([]deck.Card(nil), d.discard...),
	}
}
