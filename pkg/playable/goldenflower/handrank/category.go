package handrank

import "fmt"

// Category is the rank category of a three card hand
// The ordinal order is low to high. Special235 only beats ThreeOfAKind, see Compare.
type Category int

const (
	// HighCard is three unrelated cards
	HighCard Category = iota
	// Pair is two cards of the same rank
	Pair
	// Straight is three consecutive ranks, including A-2-3
	Straight
	// Flush is three cards of the same suit
	Flush
	// StraightFlush is a straight in a single suit
	StraightFlush
	// ThreeOfAKind is three cards of the same rank
	ThreeOfAKind
	// Special235 is a 2, 3 and 5
	Special235
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case StraightFlush:
		return "Straight Flush"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Special235:
		return "Special 235"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// MarshalText encodes the category by name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
