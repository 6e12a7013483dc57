package handrank

import "goldenflower/pkg/deck"

// IsGreater returns true if hand a beats hand b
func IsGreater(a, b Hand) bool {
	return Compare(a, b) > 0
}

// Compare returns 1 if a beats b, -1 if b beats a
// Suits always break a tie, so 0 is only returned for identical hands.
func Compare(a, b Hand) int {
	catA, catB := Classify(a), Classify(b)

	// a 2-3-5 beats three of a kind and loses to everything else
	if catA == Special235 && catB != Special235 {
		if catB == ThreeOfAKind {
			return 1
		}

		return -1
	}

	if catB == Special235 && catA != Special235 {
		if catA == ThreeOfAKind {
			return -1
		}

		return 1
	}

	if catA != catB {
		return compareInts(int(catA), int(catB))
	}

	var cmp int
	switch catA {
	case ThreeOfAKind:
		cmp = compareCards(a.Highest(), b.Highest())
	case Straight, StraightFlush:
		cmp = compareCards(a.StraightHigh(), b.StraightHigh())
	case Pair:
		cmp = compareInts(int(rankScore(a)), int(rankScore(b)))
		if cmp == 0 {
			pairA, _ := a.PairCard()
			pairB, _ := b.PairCard()
			cmp = compareSuits(pairA.Suit, pairB.Suit)
		}
	default:
		// HighCard, Flush, and Special235
		cmp = compareInts(int(rankScore(a)), int(rankScore(b)))
		if cmp == 0 {
			cmp = compareSuits(a.Highest().Suit, b.Highest().Suit)
		}
	}

	if cmp != 0 {
		return cmp
	}

	// only reachable with hands that could not come from one deck
	for i := 2; i >= 0; i-- {
		if cmp := compareCards(a.cards[i], b.cards[i]); cmp != 0 {
			return cmp
		}
	}

	return 0
}

// compareCards compares by rank, then by suit precedence
func compareCards(a, b deck.Card) int {
	if cmp := compareInts(a.Rank, b.Rank); cmp != 0 {
		return cmp
	}

	return compareSuits(a.Suit, b.Suit)
}

func compareSuits(a, b deck.Suit) int {
	switch {
	case a.Beats(b):
		return 1
	case b.Beats(a):
		return -1
	default:
		return 0
	}
}

func compareInts(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
