package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"goldenflower/internal/rng"
)

func TestNewDeck(t *testing.T) {
	a := assert.New(t)
	d := New()

	a.Equal(52, d.CardsLeft())
	a.Equal(Card{Rank: 2, Suit: Clubs}, d.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Hearts}, d.Cards[51])

	seen := make(map[Card]bool)
	for _, card := range d.Cards {
		a.False(seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	a.Len(seen, 52)
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New()
	d1.Shuffle(rng.NewSeeded(1))

	d2 := New()
	d2.Shuffle(rng.NewSeeded(1))

	// same seed, same permutation
	a.Equal(d1.HashCode(), d2.HashCode())
	a.NotEqual(New().HashCode(), d1.HashCode())

	// a different seed gives a different permutation
	d3 := New()
	d3.Shuffle(rng.NewSeeded(2))
	a.NotEqual(d1.HashCode(), d3.HashCode())

	// shuffling keeps every card
	a.Equal(52, d1.CardsLeft())
	for _, card := range Standard() {
		a.True(Hand(d1.Cards).HasCard(card))
	}
}

func TestDeck_ShuffleCrypto(t *testing.T) {
	// it's possible this could fail, but not likely
	hashes := make(map[string]bool)
	for i := 0; i < 10; i++ {
		d := New()
		d.Shuffle(rng.Crypto{})
		hashes[d.HashCode()] = true
	}

	assert.Len(t, hashes, 10)
}

func TestDeck_Draw(t *testing.T) {
	d := New()

	if !d.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if d.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		_, err := d.Draw()
		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if d.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := d.Draw()
	assert.Equal(t, Card{}, card)
	assert.Equal(t, ErrEndOfDeck, err)
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)

	d := New()
	d.Cards = CardsFromString("2c,3c,4c,5c,6c,7c,8c")
	hands, err := d.Deal(2, 3)
	a.NoError(err)
	a.Len(hands, 2)

	// round robin
	a.Equal("2c,4c,6c", CardsToString(hands[0]))
	a.Equal("3c,5c,7c", CardsToString(hands[1]))
	a.Equal("8c", CardsToString(d.Cards))
}

func TestDeck_DealDistinct(t *testing.T) {
	for players := 1; players <= 17; players++ {
		d := New()
		d.Shuffle(rng.NewSeeded(int64(players)))

		hands, err := d.Deal(players, CardsPerPlayer)
		assert.NoError(t, err)

		seen := make(map[Card]bool)
		for _, hand := range hands {
			assert.Len(t, hand, 3)
			for _, card := range hand {
				assert.False(t, seen[card], "duplicate card %s", card)
				seen[card] = true
			}
		}

		assert.Len(t, seen, players*3)
		assert.Equal(t, 52-players*3, d.CardsLeft())
	}
}

func TestDeck_DealErrors(t *testing.T) {
	a := assert.New(t)

	d := New()
	_, err := d.Deal(0, 3)
	a.Equal(ErrInvalidPlayerCount, err)

	_, err = d.Deal(-1, 3)
	a.Equal(ErrInvalidPlayerCount, err)

	_, err = d.Deal(18, 3)
	a.True(errors.Is(err, ErrNotEnoughCards))
	a.EqualError(err, "not enough cards in the deck: need 54, have 52")

	_, err = d.Deal(2, 0)
	a.Error(err)

	// a failed deal does not consume cards
	a.Equal(52, d.CardsLeft())
}
