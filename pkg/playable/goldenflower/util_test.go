package goldenflower

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"goldenflower/internal/rng"
	"goldenflower/pkg/playable/goldenflower/handrank"
)

func testOptions(players int) Options {
	return Options{
		Players:        players,
		InitialBalance: 1000,
		EntranceFee:    10,
	}
}

func newTestGame(t *testing.T, opts Options) (*Game, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := NewGame(logger, rng.NewSeeded(1), opts)
	require.NoError(t, err)

	return g, hook
}

// arrange starts a round, then hands out the given cards and moves the dealer
func arrange(t *testing.T, g *Game, dealer int, hands ...string) {
	t.Helper()

	_, err := g.StartRound()
	require.NoError(t, err)

	rig(g, dealer, hands...)
}

// rig replaces the hands and the dealer of a round in progress
func rig(g *Game, dealer int, hands ...string) {
	for i, p := range g.players {
		p.isDealer = i == dealer
		if i < len(hands) {
			p.hand = handrank.HandFromString(hands[i])
		}
	}

	g.dealerIndex = dealer
	g.currentIndex = dealer
}

func balances(g *Game) []int {
	b := make([]int, len(g.players))
	for i, p := range g.players {
		b[i] = p.balance
	}

	return b
}

// chips is every chip on the table, it never changes during a game
func chips(g *Game) int {
	total := g.pot + g.retained
	for _, p := range g.players {
		total += p.balance
	}

	return total
}
