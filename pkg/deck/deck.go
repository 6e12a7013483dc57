package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"goldenflower/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// ErrNotEnoughCards is returned when a deal would need more cards than the deck holds
var ErrNotEnoughCards = errors.New("not enough cards in the deck")

// ErrInvalidPlayerCount is returned when a deal is requested for zero or fewer players
var ErrInvalidPlayerCount = errors.New("number of players must be positive")

// CardsPerPlayer is the size of a golden flower hand
const CardsPerPlayer = 3

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return &Deck{Cards: Standard()}
}

// Standard returns every combination of the 13 ranks and 4 suits exactly once
func Standard() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range []Suit{Clubs, Diamonds, Spades, Hearts} {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Shuffle performs a Fisher-Yates shuffle of the remaining cards with the supplied generator
func (d *Deck) Shuffle(gen rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(CardToString(card)))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with the zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Deal deals round-robin: one card to each player, repeated cardsPerPlayer times.
// Nothing is drawn if the deal cannot be completed.
func (d *Deck) Deal(numPlayers, cardsPerPlayer int) ([]Hand, error) {
	if numPlayers <= 0 {
		return nil, ErrInvalidPlayerCount
	}

	if cardsPerPlayer <= 0 {
		return nil, fmt.Errorf("cards per player must be positive, got %d", cardsPerPlayer)
	}

	if !d.CanDraw(numPlayers * cardsPerPlayer) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrNotEnoughCards, numPlayers*cardsPerPlayer, d.CardsLeft())
	}

	hands := make([]Hand, numPlayers)
	for i := range hands {
		hands[i] = make(Hand, 0, cardsPerPlayer)
	}

	for n := 0; n < cardsPerPlayer; n++ {
		for i := range hands {
			card, err := d.Draw()
			if err != nil {
				return nil, err
			}

			hands[i].AddCard(card)
		}
	}

	return hands, nil
}
