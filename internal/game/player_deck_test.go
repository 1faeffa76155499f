package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/warsim/internal/deck"
	"github.com/lox/warsim/internal/randutil"
)

func TestNewPlayerDeck(t *testing.T) {
	cards := deck.Ranks(1, 2, 3)
	d := NewPlayerDeck(cards)

	assert.Equal(t, 3, d.Cards())
	assert.Empty(t, d.draw, "draw pile starts empty")
	assert.Equal(t, cards, d.discard)

	// The deck owns a copy of its cards
	cards[0] = 9
	assert.Equal(t, deck.Card(1), d.discard[0])
}

func TestPlayerDeckDrawExhausts(t *testing.T) {
	rng := randutil.NewSource(42)
	d := NewPlayerDeck(deck.Ranks(1, 2, 3))

	var drawn []deck.Card
	for i := range 3 {
		card, ok := d.Draw(rng)
		require.True(t, ok, "draw %d", i+1)
		drawn = append(drawn, card)
		assert.Equal(t, 2-i, d.Cards())
	}
	assert.ElementsMatch(t, deck.Ranks(1, 2, 3), drawn)

	_, ok := d.Draw(rng)
	assert.False(t, ok, "fourth draw from an exhausted deck")
	assert.Zero(t, d.Cards())
}

func TestPlayerDeckReshufflesLootOnlyWhenDrawPileEmpty(t *testing.T) {
	rng := randutil.NewSource(7)
	d := NewPlayerDeck(deck.Ranks(1, 2))

	first, ok := d.Draw(rng)
	require.True(t, ok)
	assert.Len(t, d.draw, 1)
	assert.Empty(t, d.discard)

	d.WinLoot(deck.Ranks(10, 11))
	assert.Equal(t, 3, d.Cards())

	// The remaining dealt card comes before any loot
	second, ok := d.Draw(rng)
	require.True(t, ok)
	assert.ElementsMatch(t, deck.Ranks(1, 2), []deck.Card{first, second})

	var loot []deck.Card
	for range 2 {
		card, ok := d.Draw(rng)
		require.True(t, ok)
		loot = append(loot, card)
	}
	assert.ElementsMatch(t, deck.Ranks(10, 11), loot)
}

func TestPlayerDeckEmpty(t *testing.T) {
	d := NewPlayerDeck(nil)
	assert.Zero(t, d.Cards())

	_, ok := d.Draw(randutil.NewSource(1))
	assert.False(t, ok)
}

func TestPlayerDeckWinLootPreservesOrder(t *testing.T) {
	d := NewPlayerDeck(nil)
	d.WinLoot(deck.Ranks(4, 1))
	d.WinLoot(deck.Ranks(7))
	assert.Equal(t, deck.Ranks(4, 1, 7), d.discard)
}

func TestPlayerDeckClone(t *testing.T) {
	rng := randutil.NewSource(3)
	d := NewPlayerDeck(deck.Ranks(1, 2, 3, 4))
	_, _ = d.Draw(rng)

	c := d.Clone()
	assert.Equal(t, d.Cards(), c.Cards())

	_, _ = c.Draw(rng)
	c.WinLoot(deck.Ranks(9))
	assert.Equal(t, 3, d.Cards(), "clone must not share piles")
}
