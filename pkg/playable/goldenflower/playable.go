package goldenflower

import (
	"errors"
	"fmt"

	"goldenflower/pkg/deck"
	"goldenflower/pkg/playable"
)

// PlayerState is the state of the table as seen by one seat
type PlayerState struct {
	Round *RoundView `json:"round"`
	Seat  int64      `json:"seat"`
	// Hand and Category are only populated once the player has looked
	Hand        []deck.Card `json:"hand,omitempty"`
	Category    string      `json:"category,omitempty"`
	IsTurn      bool        `json:"isTurn"`
	MinimumBet  int         `json:"minimumBet"`
	ShowdownBet int         `json:"showdownBet"`
}

// Name returns "golden-flower"
func (g *Game) Name() string {
	return "golden-flower"
}

// LogChan returns a channel for sending log messages
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Action performs an action for a seat, seat ids start at 1
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	idx := int(playerID) - 1
	if err := g.checkPlayer(idx); err != nil {
		return nil, false, err
	}

	switch message.Action {
	case "start":
		if _, err := g.StartRound(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "look":
		hv, err := g.Look(idx)
		if err != nil {
			return nil, false, err
		}

		return &playable.Response{
			Key:     "hand",
			Value:   hv.Category.String(),
			Data:    hv,
			Context: message.Context,
		}, true, nil
	case "bet":
		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok {
			return nil, false, errors.New("missing 'amount' parameter")
		}

		if _, err := g.Bet(idx, amount); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "fold":
		if _, err := g.Fold(idx); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case "showdown":
		target, ok := message.AdditionalData.GetInt("target")
		if !ok {
			return nil, false, errors.New("missing 'target' parameter")
		}

		result, err := g.RequestShowdown(idx, target-1)
		if err != nil {
			return nil, false, err
		}

		return &playable.Response{
			Key:     "showdown",
			Value:   fmt.Sprintf("%d", seatID(result.Winner)),
			Data:    result,
			Context: message.Context,
		}, true, nil
	case "open":
		if _, err := g.Showdown(idx); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	default:
		return nil, false, fmt.Errorf("unknown action: %s", message.Action)
	}
}

// GetPlayerState returns the state for the given seat
// Spectators get the public view only.
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	state := &PlayerState{
		Round: g.View(),
		Seat:  playerID,
	}

	idx := int(playerID) - 1
	if g.checkPlayer(idx) == nil {
		p := g.players[idx]
		if p.hasHand && (p.status == StatusLooked || g.phase == PhaseFinished) {
			hv := g.handView(idx)
			state.Hand = hv.Cards
			state.Category = hv.Category.String()
		}

		if g.phase == PhaseBetting && p.isActive() {
			state.IsTurn = g.currentIndex == idx
			state.MinimumBet = g.minimumBet(idx)
			state.ShowdownBet = g.showdownBet(idx)
		}
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data:  state,
	}, nil
}

// GetEndOfGameDetails returns how much each seat won or lost since the game began
// nil and false are returned while a round is in progress.
func (g *Game) GetEndOfGameDetails() (gameOverDetails *playable.GameOverDetails, isGameOver bool) {
	if g.phase != PhaseFinished {
		return nil, false
	}

	adjustments := make(map[int64]int)
	for i, p := range g.players {
		adjustments[seatID(i)] = p.balance - g.options.InitialBalance
	}

	return &playable.GameOverDetails{
		BalanceAdjustments: adjustments,
		Log:                g.settlement,
	}, true
}

var _ playable.Playable = (*Game)(nil)
