package goldenflower

import (
	"goldenflower/pkg/deck"
	"goldenflower/pkg/playable/goldenflower/handrank"
)

// SettleReason is how a round ended
type SettleReason string

// settle reasons
const (
	SettleFold     SettleReason = "fold"
	SettleShowdown SettleReason = "showdown"
	SettleOpen     SettleReason = "open"
)

// RoundView is the public state of the table
// It is a copy, changing it does not change the game.
type RoundView struct {
	RoundID     string `json:"roundId"`
	RoundNumber int    `json:"roundNumber"`
	Phase       Phase  `json:"phase"`
	Pot         int    `json:"pot"`
	EntranceFee int    `json:"entranceFee"`
	// Dealer is -1 before the first round
	Dealer int `json:"dealer"`
	// Current is -1 unless the round is in the betting phase
	Current    int           `json:"current"`
	Retained   int           `json:"retained"`
	Players    []*PlayerView `json:"players"`
	Settlement *Settlement   `json:"settlement,omitempty"`
}

// PlayerView is the public state of a player
type PlayerView struct {
	Index          int    `json:"index"`
	Name           string `json:"name"`
	Balance        int    `json:"balance"`
	TotalCommitted int    `json:"totalCommitted"`
	LastRoundBet   int    `json:"lastRoundBet"`
	Status         Status `json:"status"`
	IsDealer       bool   `json:"isDealer"`
}

// HandView is a player's revealed hand
type HandView struct {
	Player   int               `json:"player"`
	Cards    []deck.Card       `json:"cards"`
	Category handrank.Category `json:"category"`
}

// ShowdownResult is the outcome of RequestShowdown()
type ShowdownResult struct {
	Challenger int         `json:"challenger"`
	Target     int         `json:"target"`
	Winner     int         `json:"winner"`
	Loser      int         `json:"loser"`
	Bet        int         `json:"bet"`
	Hands      []*HandView `json:"hands"`
	Round      *RoundView  `json:"round"`
}

// Settlement is how the pot of a finished round was paid
type Settlement struct {
	Winner int          `json:"winner"`
	Reason SettleReason `json:"reason"`
	Pot    int          `json:"pot"`
	// Fees are the entrance fees paid to the winner
	Fees   int `json:"fees"`
	Payout int `json:"payout"`
	// Retained are the entrance fees kept by the table
	Retained int `json:"retained"`
	// Revealed is only populated when the round ended with a showdown
	Revealed []*HandView `json:"revealed,omitempty"`
}

// View returns the public state of the table
func (g *Game) View() *RoundView {
	players := make([]*PlayerView, len(g.players))
	for i, p := range g.players {
		players[i] = &PlayerView{
			Index:          i,
			Name:           p.Name,
			Balance:        p.balance,
			TotalCommitted: p.totalCommitted,
			LastRoundBet:   p.lastRoundBet,
			Status:         p.status,
			IsDealer:       p.isDealer,
		}
	}

	view := &RoundView{
		RoundID:     g.roundID,
		RoundNumber: g.roundNumber,
		Phase:       g.phase,
		Pot:         g.pot,
		EntranceFee: g.options.EntranceFee,
		Dealer:      g.dealerIndex,
		Current:     g.CurrentPlayer(),
		Retained:    g.retained,
		Players:     players,
	}

	if g.settlement != nil {
		s := *g.settlement
		view.Settlement = &s
	}

	return view
}

func (g *Game) handView(idx int) *HandView {
	h := g.players[idx].hand
	return &HandView{
		Player:   idx,
		Cards:    h.Cards(),
		Category: handrank.Classify(h),
	}
}
