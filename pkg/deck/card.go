package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrParse is matched by every ParseError
var ErrParse = errors.New("could not parse card")

// ParseError is returned when a card string does not follow the "<Rank> of <Suit>" grammar
type ParseError struct {
	Input  string
	Reason string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("could not parse card %q: %s", p.Input, p.Reason)
}

// Is allows errors.Is(err, ErrParse)
func (p *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Suit represents a card suit
// The order of the constants is the precedence used to break ties: Hearts > Spades > Diamonds > Clubs
type Suit int

// suit constants
const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
)

// Suits lists every suit from strongest to weakest
var Suits = []Suit{Hearts, Spades, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Beats returns true if s takes precedence over other
func (s Suit) Beats(other Suit) bool {
	return s < other
}

func (s Suit) valid() bool {
	return s >= Hearts && s <= Clubs
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// rank bounds
const (
	MinRank = 2
	MaxRank = Ace
)

// Card is an individual playing card
// Cards are values; two cards are equal when rank and suit match.
type Card struct {
	Rank int
	Suit Suit
}

// NewCard returns a card after validating the rank and suit
func NewCard(rank int, suit Suit) (Card, error) {
	if rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("invalid rank: %d", rank)
	}

	if !suit.valid() {
		return Card{}, fmt.Errorf("invalid suit: %d", int(suit))
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// String returns the canonical form, e.g. "10 of Spades" or "A of Hearts"
func (c Card) String() string {
	return RankString(c.Rank) + " of " + c.Suit.String()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Less orders cards by rank ascending. When the ranks match, the card with the
// stronger suit sorts last, so Hearts is always the "largest" of a rank.
func (c Card) Less(card Card) bool {
	if c.Rank != card.Rank {
		return c.Rank < card.Rank
	}

	return card.Suit.Beats(c.Suit)
}

// MarshalText encodes the card in its canonical form
func (c Card) MarshalText() ([]byte, error) {
	if !c.Suit.valid() || c.Rank < MinRank || c.Rank > MaxRank {
		return nil, fmt.Errorf("cannot marshal invalid card: rank=%d suit=%d", c.Rank, int(c.Suit))
	}

	return []byte(c.String()), nil
}

// UnmarshalText decodes a card from its canonical form
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// RankString returns the rank token used in the canonical form
func RankString(rank int) string {
	switch rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return strconv.Itoa(rank)
	}
}

var rankTokens = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"J": Jack, "Q": Queen, "K": King, "A": Ace,
}

var suitTokens = map[string]Suit{
	"Hearts":   Hearts,
	"Spades":   Spades,
	"Diamonds": Diamonds,
	"Clubs":    Clubs,
}

var canonicalRx = regexp.MustCompile(`^(\S+) of (\S+)\z`)

// ParseCard parses the canonical "<Rank> of <Suit>" form produced by Card.String()
func ParseCard(s string) (Card, error) {
	match := canonicalRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, &ParseError{Input: s, Reason: `expected "<Rank> of <Suit>"`}
	}

	rank, ok := rankTokens[match[1]]
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown rank %q", match[1])}
	}

	suit, ok := suitTokens[match[2]]
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown suit %q", match[2])}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

var compactRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the compact test notation.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
// This panics on bad input and should only be used with literals.
func CardFromString(s string) Card {
	match := compactRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return Card{Rank: rank, Suit: suit}
}

// CardsFromString will return a slice of cards from the compact notation, e.g. "14h,2c,3s"
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(strings.TrimSpace(card))
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to the compact notation (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to the compact notation 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
