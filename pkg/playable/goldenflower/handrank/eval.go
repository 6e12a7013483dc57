package handrank

import (
	"fmt"

	"github.com/paulhankin/poker"
	"goldenflower/pkg/deck"
)

// rankScore scores the ranks of a hand, ignoring suits: trips, then pairs with
// their kicker, then high cards from the top down. Higher is better.
// It is only meaningful between two hands of the same Category.
func rankScore(h Hand) int16 {
	var cards [3]poker.Card
	for i, c := range h.cards {
		cards[i] = toPoker(c)
	}

	return poker.Eval3(&cards)
}

func toPoker(c deck.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	case deck.Spades:
		s = poker.Spade
	}

	// the library ranks aces as 1
	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}

	card, err := poker.MakeCard(s, r)
	if err != nil {
		// hands are validated on construction
		panic(fmt.Sprintf("could not convert card %s: %v", c, err))
	}

	return card
}
