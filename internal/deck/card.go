package deck

import "strconv"

// Card is a playing card identified by rank alone. Suits play no part in War,
// so two cards of the same rank are interchangeable and tie when compared.
type Card uint8

// String returns the decimal rank of the card
func (c Card) String() string {
	return strconv.Itoa(int(c))
}

// Compare returns -1, 0 or +1 depending on whether c ranks below, equal to or
// above other.
func (c Card) Compare(other Card) int {
	switch {
	case c > other:
		return 1
	case c < other:
		return -1
	default:
		return 0
	}
}

// Ranks converts plain rank values to cards
func Ranks(ranks ...uint8) []Card {
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = Card(r)
	}
	return cards
}
