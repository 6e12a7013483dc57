package handrank

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"goldenflower/pkg/deck"
)

func TestNewHand(t *testing.T) {
	a := assert.New(t)

	h, err := NewHand(deck.CardsFromString("14h,2c,14c"))
	a.NoError(err)
	a.Equal("2c,14c,14h", deck.CardsToString(h.Cards()))
	a.Equal(deck.CardFromString("2c"), h.Lowest())
	a.Equal(deck.CardFromString("14c"), h.Middle())
	a.Equal(deck.CardFromString("14h"), h.Highest())
	a.Equal("2 of Clubs, A of Clubs, A of Hearts", h.String())

	_, err = NewHand(deck.CardsFromString("14h,2c"))
	a.True(errors.Is(err, ErrHandSize))
	a.EqualError(err, "a hand must have exactly three cards: got 2")

	_, err = NewHand([]deck.Card{{Rank: 1, Suit: deck.Hearts}, {Rank: 2, Suit: deck.Hearts}, {Rank: 3, Suit: deck.Hearts}})
	a.EqualError(err, "invalid rank: 1")
}

func TestHand_Pair(t *testing.T) {
	tests := []struct {
		name   string
		hand   string
		pair   string
		kicker string
	}{
		{"low kicker", "9c,9h,3s", "9h", "3s"},
		{"high kicker", "9s,9d,14c", "9s", "14c"},
		{"aces", "14d,2h,14s", "14s", "2h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HandFromString(tt.hand)

			pair, ok := h.PairCard()
			assert.True(t, ok)
			assert.Equal(t, deck.CardFromString(tt.pair), pair)

			kicker, ok := h.Kicker()
			assert.True(t, ok)
			assert.Equal(t, deck.CardFromString(tt.kicker), kicker)
		})
	}

	_, ok := HandFromString("9c,9h,9s").PairCard()
	assert.False(t, ok)

	_, ok = HandFromString("9c,10h,2s").Kicker()
	assert.False(t, ok)
}

func TestHand_StraightHigh(t *testing.T) {
	a := assert.New(t)
	a.Equal(deck.CardFromString("3d"), HandFromString("14h,2c,3d").StraightHigh())
	a.Equal(deck.CardFromString("14h"), HandFromString("14h,12c,13d").StraightHigh())
	a.Equal(deck.CardFromString("6s"), HandFromString("5h,4c,6s").StraightHigh())
}

func TestHand_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(HandFromString("2c,3d,4h").Equal(HandFromString("4h,3d,2c")))
	a.False(HandFromString("2c,3d,4h").Equal(HandFromString("2c,3d,4s")))
}

func TestHandFromString(t *testing.T) {
	assert.Panics(t, func() {
		HandFromString("2c,3d")
	})
}
