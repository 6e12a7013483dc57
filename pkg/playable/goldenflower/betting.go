package goldenflower

// MinimumBet returns the smallest legal bet for the player at idx
func (g *Game) MinimumBet(idx int) (int, error) {
	if err := g.checkBetting(idx); err != nil {
		return 0, err
	}

	return g.minimumBet(idx), nil
}

// ShowdownBet returns the cost of a forced showdown for the player at idx
func (g *Game) ShowdownBet(idx int) (int, error) {
	if err := g.checkBetting(idx); err != nil {
		return 0, err
	}

	return g.showdownBet(idx), nil
}

// minimumBet compares the player with the previous active player.
//
//	current  previous  minimum
//	blind    blind     previous bet
//	blind    looked    previous bet / 2, rounded up
//	looked   blind     previous bet * 2
//	looked   looked    previous bet
//
// The dealer's first bet, or any bet made before anyone else has bet, is the
// entrance fee, doubled for a player who has looked.
func (g *Game) minimumBet(idx int) int {
	p := g.players[idx]
	prev := g.players[g.previousActive(idx)]

	if (p.isDealer && !p.hasBet) || !prev.hasBet {
		if p.hasLooked() {
			return g.options.EntranceFee * 2
		}

		return g.options.EntranceFee
	}

	last := prev.lastRoundBet

	var min int
	switch {
	case p.hasLooked() && !prev.hasLooked():
		min = last * 2
	case !p.hasLooked() && prev.hasLooked():
		min = (last + 1) / 2
	default:
		min = last
	}

	if min < 1 {
		return 1
	}

	return min
}

func (g *Game) showdownBet(idx int) int {
	return g.minimumBet(idx) * 2
}

// previousActive returns the first non-folded player before idx, or idx itself
func (g *Game) previousActive(idx int) int {
	n := len(g.players)
	for i := 1; i < n; i++ {
		prev := (idx - i + n) % n
		if g.players[prev].isActive() {
			return prev
		}
	}

	return idx
}

// nextActive returns the first non-folded player after idx, or idx itself
func (g *Game) nextActive(idx int) int {
	n := len(g.players)
	for i := 1; i < n; i++ {
		next := (idx + i) % n
		if g.players[next].isActive() {
			return next
		}
	}

	return idx
}

func (g *Game) activePlayers() []int {
	active := make([]int, 0, len(g.players))
	for i, p := range g.players {
		if p.isActive() {
			active = append(active, i)
		}
	}

	return active
}
