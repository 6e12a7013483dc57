package deck

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2 of Hearts", Card{Rank: 2, Suit: Hearts}.String())
	a.Equal("10 of Spades", Card{Rank: 10, Suit: Spades}.String())
	a.Equal("J of Clubs", Card{Rank: Jack, Suit: Clubs}.String())
	a.Equal("Q of Diamonds", Card{Rank: Queen, Suit: Diamonds}.String())
	a.Equal("K of Spades", Card{Rank: King, Suit: Spades}.String())
	a.Equal("A of Hearts", Card{Rank: Ace, Suit: Hearts}.String())
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("10 of Diamonds")
	a.NoError(err)
	a.Equal(Card{Rank: 10, Suit: Diamonds}, card)

	card, err = ParseCard("A of Spades")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)
}

func TestParseCard_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"empty", "", `expected "<Rank> of <Suit>"`},
		{"no separator", "A-Hearts", `expected "<Rank> of <Suit>"`},
		{"extra token", "A of Hearts please", `expected "<Rank> of <Suit>"`},
		{"bad rank", "1 of Hearts", `unknown rank "1"`},
		{"numeric ace", "14 of Hearts", `unknown rank "14"`},
		{"lowercase rank", "a of Hearts", `unknown rank "a"`},
		{"bad suit", "A of Stars", `unknown suit "Stars"`},
		{"lowercase suit", "A of hearts", `unknown suit "hearts"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCard(tt.input)
			var pe *ParseError
			if assert.True(t, errors.As(err, &pe)) {
				assert.Equal(t, tt.input, pe.Input)
				assert.Equal(t, tt.reason, pe.Reason)
			}
			assert.True(t, errors.Is(err, ErrParse))
		})
	}
}

func TestCard_RoundTrip(t *testing.T) {
	for _, card := range Standard() {
		parsed, err := ParseCard(card.String())
		assert.NoError(t, err)
		assert.True(t, parsed.Equal(card), "round trip of %s", card)
	}
}

func TestCard_JSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal([]Card{{Rank: Ace, Suit: Hearts}, {Rank: 10, Suit: Clubs}})
	a.NoError(err)
	a.Equal(`["A of Hearts","10 of Clubs"]`, string(b))

	var cards []Card
	a.NoError(json.Unmarshal(b, &cards))
	a.Equal([]Card{{Rank: Ace, Suit: Hearts}, {Rank: 10, Suit: Clubs}}, cards)

	a.Error(json.Unmarshal([]byte(`["X of Hearts"]`), &cards))

	_, err = json.Marshal(Card{})
	a.Error(err)
}

func TestNewCard(t *testing.T) {
	a := assert.New(t)

	card, err := NewCard(Queen, Diamonds)
	a.NoError(err)
	a.Equal(Card{Rank: Queen, Suit: Diamonds}, card)

	_, err = NewCard(1, Diamonds)
	a.EqualError(err, "invalid rank: 1")

	_, err = NewCard(15, Diamonds)
	a.EqualError(err, "invalid rank: 15")

	_, err = NewCard(2, Suit(4))
	a.EqualError(err, "invalid suit: 4")
}

func TestSuit_Beats(t *testing.T) {
	a := assert.New(t)
	a.True(Hearts.Beats(Spades))
	a.True(Spades.Beats(Diamonds))
	a.True(Diamonds.Beats(Clubs))
	a.True(Hearts.Beats(Clubs))
	a.False(Clubs.Beats(Hearts))
	a.False(Hearts.Beats(Hearts))
}

func TestCard_Less(t *testing.T) {
	a := assert.New(t)

	// rank first
	a.True(CardFromString("2h").Less(CardFromString("3c")))
	a.False(CardFromString("3c").Less(CardFromString("2h")))

	// hearts is the largest of a rank
	a.True(CardFromString("14c").Less(CardFromString("14h")))
	a.True(CardFromString("14d").Less(CardFromString("14s")))
	a.True(CardFromString("14s").Less(CardFromString("14h")))
	a.False(CardFromString("14h").Less(CardFromString("14c")))

	a.False(CardFromString("9s").Less(CardFromString("9s")))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(Card{Rank: 14, Suit: Clubs}, CardFromString("14c"))
	a.Equal(Card{Rank: 10, Suit: Hearts}, CardFromString("10H"))
	a.Panics(func() {
		CardFromString("1c")
	})
	a.Panics(func() {
		CardFromString("")
	})

	a.Equal("2c,13h,14s", CardsToString(CardsFromString("2c, 13h, 14s")))
	a.Equal([]Card{}, CardsFromString(""))
}
