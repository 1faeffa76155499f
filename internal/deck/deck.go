package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSpec is returned by Parse for malformed deck specs.
var ErrInvalidSpec = errors.New("invalid deck spec")

// Parse reads a deck spec: comma separated terms, each a rank ("5") or an
// inclusive rank range ("1-13"), optionally repeated with an "xN" suffix.
// "1-13x4" is a standard deck, "13x4" four aces, "1,1,2" three cards.
// Whitespace around terms is ignored and an empty spec is an empty deck.
func Parse(spec string) ([]Card, error) {
	cards := []Card{}
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return cards, nil
	}

	for term := range strings.SplitSeq(spec, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			return nil, fmt.Errorf("%w: empty term in %q", ErrInvalidSpec, spec)
		}

		copies := 1
		if base, count, ok := strings.Cut(term, "x"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(count))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad repeat count in %q", ErrInvalidSpec, term)
			}
			copies = n
			term = strings.TrimSpace(base)
		}

		lo, hi, err := parseRanks(term)
		if err != nil {
			return nil, err
		}
		for rank := int(lo); rank <= int(hi); rank++ {
			for range copies {
				cards = append(cards, Card(rank))
			}
		}
	}

	return cards, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// built-in scenarios.
func MustParse(spec string) []Card {
	cards, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return cards
}

func parseRanks(term string) (uint8, uint8, error) {
	from, to, isRange := strings.Cut(term, "-")
	lo, err := parseRank(from)
	if err != nil {
		return 0, 0, err
	}
	if !isRange {
		return lo, lo, nil
	}
	hi, err := parseRank(to)
	if err != nil {
		return 0, 0, err
	}
	if hi < lo {
		return 0, 0, fmt.Errorf("%w: descending range %q", ErrInvalidSpec, term)
	}
	return lo, hi, nil
}

func parseRank(s string) (uint8, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: bad rank %q", ErrInvalidSpec, s)
	}
	return uint8(n), nil
}
