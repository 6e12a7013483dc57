package goldenflower

import (
	"github.com/sirupsen/logrus"
	"goldenflower/pkg/playable/goldenflower/handrank"
)

// Look lets a blind player see their cards
// Looking does not need the player's turn and does not end it.
func (g *Game) Look(idx int) (*HandView, error) {
	if err := g.checkBetting(idx); err != nil {
		return nil, g.reject("look", idx, err)
	}

	p := g.players[idx]
	switch p.status {
	case StatusFolded:
		return nil, g.reject("look", idx, ErrPlayerFolded)
	case StatusLooked:
		return nil, g.reject("look", idx, ErrAlreadyLooked)
	}

	p.status = StatusLooked

	g.log().WithField("player", idx).Debug("player looked")
	g.sendLogMessages(newLogMessage(idx, "{} looked at their cards"))

	return g.handView(idx), nil
}

// Bet wagers amount for the current player and passes the turn
// The amount must be at least MinimumBet(), anything above the player's
// balance is reduced to the balance.
func (g *Game) Bet(idx, amount int) (*RoundView, error) {
	if err := g.checkTurn(idx); err != nil {
		return nil, g.reject("bet", idx, err)
	}

	if amount <= 0 {
		return nil, g.reject("bet", idx, ErrInvalidBetAmount)
	}

	p := g.players[idx]
	if p.balance <= 0 {
		return nil, g.reject("bet", idx, ErrInsufficientFunds)
	}

	if min := g.minimumBet(idx); amount < min {
		return nil, g.reject("bet", idx, BetTooSmallError{Minimum: min, Got: amount})
	}

	if amount > p.balance {
		amount = p.balance
	}

	p.commit(amount)
	g.pot += amount

	g.log().WithFields(logrus.Fields{
		"player": idx,
		"amount": amount,
	}).Debug("player bet")
	g.sendLogMessages(newLogMessage(idx, "{} bet %d", amount))

	g.currentIndex = g.nextActive(idx)

	return g.View(), nil
}

// Fold takes the current player out of the round
// The round is settled when only one player is left.
func (g *Game) Fold(idx int) (*RoundView, error) {
	if err := g.checkTurn(idx); err != nil {
		return nil, g.reject("fold", idx, err)
	}

	g.players[idx].status = StatusFolded

	g.log().WithField("player", idx).Debug("player folded")
	g.sendLogMessages(newLogMessage(idx, "{} folded"))

	if active := g.activePlayers(); len(active) == 1 {
		g.settle(active[0], SettleFold, nil)
	} else {
		g.currentIndex = g.nextActive(idx)
	}

	return g.View(), nil
}

// RequestShowdown pays ShowdownBet() to compare the current player's hand with
// target's. The loser folds.
func (g *Game) RequestShowdown(idx, target int) (*ShowdownResult, error) {
	if err := g.checkTurn(idx); err != nil {
		return nil, g.reject("showdown", idx, err)
	}

	if len(g.activePlayers()) < 2 {
		return nil, g.reject("showdown", idx, ErrNoEligibleTarget)
	}

	if target < 0 || target >= len(g.players) || target == idx || !g.players[target].isActive() {
		return nil, g.reject("showdown", idx, ErrInvalidTarget)
	}

	p := g.players[idx]
	cost := g.showdownBet(idx)
	if p.balance < cost {
		return nil, g.reject("showdown", idx, ErrInsufficientFunds)
	}

	p.commit(cost)
	g.pot += cost

	winner, loser := idx, target
	if !handrank.IsGreater(p.hand, g.players[target].hand) {
		winner, loser = target, idx
	}

	g.players[loser].status = StatusFolded

	result := &ShowdownResult{
		Challenger: idx,
		Target:     target,
		Winner:     winner,
		Loser:      loser,
		Bet:        cost,
		Hands:      []*HandView{g.handView(idx), g.handView(target)},
	}

	g.log().WithFields(logrus.Fields{
		"player": idx,
		"target": target,
		"amount": cost,
		"winner": winner,
	}).Info("showdown")
	winning := g.handView(winner)
	g.sendLogMessages(
		newLogMessage(idx, "{} paid %d for a showdown", cost),
		newLogMessageWithCards(winner, winning.Cards, "{} won the showdown with %s", winning.Category),
		newLogMessage(loser, "{} lost the showdown and folded"),
	)

	if active := g.activePlayers(); len(active) == 1 {
		g.settle(active[0], SettleShowdown, result.Hands)
	} else {
		g.currentIndex = g.nextActive(idx)
	}

	result.Round = g.View()
	return result, nil
}

// Showdown opens every remaining hand and ends the round
// The best hand wins the pot, the entrance fees stay with the table.
func (g *Game) Showdown(idx int) (*RoundView, error) {
	if err := g.checkTurn(idx); err != nil {
		return nil, g.reject("open", idx, err)
	}

	active := g.activePlayers()
	if len(active) < 2 {
		return nil, g.reject("open", idx, ErrNoEligibleTarget)
	}

	winner := active[0]
	revealed := make([]*HandView, 0, len(active))
	for _, i := range active {
		revealed = append(revealed, g.handView(i))
		if handrank.IsGreater(g.players[i].hand, g.players[winner].hand) {
			winner = i
		}
	}

	g.log().WithFields(logrus.Fields{
		"player": idx,
		"winner": winner,
	}).Info("all hands opened")
	g.sendLogMessages(newLogMessage(idx, "{} opened all hands"))

	g.settle(winner, SettleOpen, revealed)

	return g.View(), nil
}

// settle pays the winner and finishes the round
// Only a round ended by RequestShowdown also pays the entrance fees of every
// other player. Fees that are not paid out are retained.
func (g *Game) settle(winner int, reason SettleReason, revealed []*HandView) {
	g.setPhase(PhaseSettling)

	n := len(g.players)
	fees := 0
	if reason == SettleShowdown {
		fees = g.options.EntranceFee * (n - 1)
	}

	retained := g.options.EntranceFee*n - fees
	payout := g.pot + fees

	g.players[winner].balance += payout
	g.retained += retained

	g.settlement = &Settlement{
		Winner:   winner,
		Reason:   reason,
		Pot:      g.pot,
		Fees:     fees,
		Payout:   payout,
		Retained: retained,
		Revealed: revealed,
	}
	g.pot = 0

	g.log().WithFields(logrus.Fields{
		"winner": winner,
		"amount": payout,
		"reason": string(reason),
	}).Info("round settled")

	msg := newLogMessage(winner, "{} won %d", payout)
	for _, hv := range revealed {
		if hv.Player == winner {
			msg = newLogMessageWithCards(winner, hv.Cards, "{} won %d with %s", payout, hv.Category)
		}
	}
	g.sendLogMessages(msg)

	g.setPhase(PhaseFinished)
}
