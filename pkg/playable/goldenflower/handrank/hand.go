package handrank

import (
	"errors"
	"fmt"
	"sort"

	"goldenflower/pkg/deck"
)

// ErrHandSize is returned when a hand is not exactly three cards
var ErrHandSize = errors.New("a hand must have exactly three cards")

// Hand is a three card hand
// The cards are kept sorted by deck.Card.Less, lowest first.
type Hand struct {
	cards [3]deck.Card
}

// NewHand returns a hand from three valid cards
// Distinctness is not checked, dealing from a single deck guarantees it.
func NewHand(cards []deck.Card) (Hand, error) {
	if len(cards) != 3 {
		return Hand{}, fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}

	var h Hand
	for i, card := range cards {
		c, err := deck.NewCard(card.Rank, card.Suit)
		if err != nil {
			return Hand{}, err
		}

		h.cards[i] = c
	}

	sort.Slice(h.cards[:], func(i, j int) bool {
		return h.cards[i].Less(h.cards[j])
	})

	return h, nil
}

// HandFromString returns a hand from the compact notation, e.g. "2c,3h,5s"
// This panics on bad input and should only be used with literals.
func HandFromString(s string) Hand {
	h, err := NewHand(deck.CardsFromString(s))
	if err != nil {
		panic(fmt.Sprintf("could not build hand %q: %v", s, err))
	}

	return h
}

// Cards returns the cards, lowest first
func (h Hand) Cards() []deck.Card {
	return []deck.Card{h.cards[0], h.cards[1], h.cards[2]}
}

// Lowest returns the lowest card
func (h Hand) Lowest() deck.Card {
	return h.cards[0]
}

// Middle returns the middle card
func (h Hand) Middle() deck.Card {
	return h.cards[1]
}

// Highest returns the highest card
func (h Hand) Highest() deck.Card {
	return h.cards[2]
}

// IsSpecial235 returns true if the ranks are exactly 2, 3 and 5
func (h Hand) IsSpecial235() bool {
	return h.cards[0].Rank == 2 && h.cards[1].Rank == 3 && h.cards[2].Rank == 5
}

// IsThreeOfAKind returns true if all three ranks match
func (h Hand) IsThreeOfAKind() bool {
	return h.cards[0].Rank == h.cards[1].Rank && h.cards[1].Rank == h.cards[2].Rank
}

// IsFlush returns true if all three suits match
func (h Hand) IsFlush() bool {
	return h.cards[0].Suit == h.cards[1].Suit && h.cards[1].Suit == h.cards[2].Suit
}

// IsStraight returns true for three consecutive ranks or A-2-3
func (h Hand) IsStraight() bool {
	if h.isWheel() {
		return true
	}

	return h.cards[1].Rank-h.cards[0].Rank == 1 && h.cards[2].Rank-h.cards[1].Rank == 1
}

// isWheel is the A-2-3 straight
func (h Hand) isWheel() bool {
	return h.cards[0].Rank == 2 && h.cards[1].Rank == 3 && h.cards[2].Rank == deck.Ace
}

// IsPair returns true if exactly two ranks match
func (h Hand) IsPair() bool {
	if h.IsThreeOfAKind() {
		return false
	}

	return h.cards[0].Rank == h.cards[1].Rank || h.cards[1].Rank == h.cards[2].Rank
}

// StraightHigh returns the top card of a straight
// A-2-3 is the lowest straight, so its top card is the 3.
func (h Hand) StraightHigh() deck.Card {
	if h.isWheel() {
		return h.cards[1]
	}

	return h.cards[2]
}

// PairCard returns the stronger-suited card of the pair
func (h Hand) PairCard() (deck.Card, bool) {
	if !h.IsPair() {
		return deck.Card{}, false
	}

	if h.cards[1].Rank == h.cards[2].Rank {
		return h.cards[2], true
	}

	return h.cards[1], true
}

// Kicker returns the odd card of a pair
func (h Hand) Kicker() (deck.Card, bool) {
	if !h.IsPair() {
		return deck.Card{}, false
	}

	if h.cards[1].Rank == h.cards[2].Rank {
		return h.cards[0], true
	}

	return h.cards[2], true
}

// Equal returns true if both hands hold the same cards
func (h Hand) Equal(other Hand) bool {
	return h.cards == other.cards
}

func (h Hand) String() string {
	return deck.Hand(h.Cards()).String()
}
