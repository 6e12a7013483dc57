package handrank

// Classify returns the category of the hand
// The checks run in a fixed order and the first match wins: a 2-3-5 is always
// Special235, even when suited.
func Classify(h Hand) Category {
	if h.IsSpecial235() {
		return Special235
	}

	if h.IsThreeOfAKind() {
		return ThreeOfAKind
	}

	isFlush := h.IsFlush()
	isStraight := h.IsStraight()

	switch {
	case isFlush && isStraight:
		return StraightFlush
	case isFlush:
		return Flush
	case isStraight:
		return Straight
	case h.IsPair():
		return Pair
	default:
		return HighCard
	}
}
