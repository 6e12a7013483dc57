package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"goldenflower/pkg/deck"
	"goldenflower/pkg/playable"
	"goldenflower/pkg/playable/goldenflower"
)

const (
	actionLook     = "Look at cards"
	actionBet      = "Bet"
	actionFold     = "Fold"
	actionShowdown = "Request showdown"
	actionOpen     = "Open all hands"
)

// spectator is a seat id outside the table, it only sees the public view
const spectator = 0

// table is a hot-seat game, every player shares one terminal
type table struct {
	game   playable.Playable
	prompt prompter
}

func (t *table) run() error {
	for {
		if _, _, err := t.game.Action(1, &playable.PayloadIn{Action: "start"}); err != nil {
			if errors.Is(err, goldenflower.ErrIllegalAction) {
				pterm.Error.Printfln("cannot start a new round: %v", err)
				return nil
			}

			return err
		}
		t.printLog()

		for {
			view, err := t.view()
			if err != nil {
				return err
			}

			if view.Phase != goldenflower.PhaseBetting {
				break
			}

			if err := t.turn(view); err != nil {
				return err
			}
			t.printLog()
		}

		view, err := t.view()
		if err != nil {
			return err
		}

		t.render(view)
		t.renderSettlement(view)
		t.renderStandings(view)

		again, err := t.prompt.Confirm("Ready for the next round?")
		if err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}

func (t *table) state(seat int64) (*goldenflower.PlayerState, error) {
	res, err := t.game.GetPlayerState(seat)
	if err != nil {
		return nil, err
	}

	state, ok := res.Data.(*goldenflower.PlayerState)
	if !ok {
		return nil, fmt.Errorf("unexpected player state %T", res.Data)
	}

	return state, nil
}

func (t *table) view() (*goldenflower.RoundView, error) {
	state, err := t.state(spectator)
	if err != nil {
		return nil, err
	}

	return state.Round, nil
}

// turn asks the current player for one action
// Rejected actions are shown and the same player is asked again.
func (t *table) turn(view *goldenflower.RoundView) error {
	t.render(view)

	seat := int64(view.Current + 1)
	player := view.Players[view.Current]
	state, err := t.state(seat)
	if err != nil {
		return err
	}

	actions := make([]string, 0, 5)
	if player.Status == goldenflower.StatusBlind {
		actions = append(actions, actionLook)
	}
	actions = append(actions, actionBet, actionFold, actionShowdown, actionOpen)

	choice, err := t.prompt.Select(fmt.Sprintf("%s, choose your action", pterm.LightCyan(player.Name)), actions)
	if err != nil {
		return err
	}

	payload := &playable.PayloadIn{}
	switch choice {
	case actionLook:
		payload.Action = "look"
	case actionBet:
		amount, err := t.prompt.Int(fmt.Sprintf("Bet amount (minimum %d, balance %d)", state.MinimumBet, player.Balance), state.MinimumBet)
		if err != nil {
			return err
		}

		payload.Action = "bet"
		payload.AdditionalData = playable.AdditionalData{"amount": amount}
	case actionFold:
		payload.Action = "fold"
	case actionShowdown:
		target, err := t.chooseTarget(view, state)
		if err != nil {
			return err
		}

		payload.Action = "showdown"
		payload.AdditionalData = playable.AdditionalData{"target": target}
	case actionOpen:
		payload.Action = "open"
	}

	res, _, err := t.game.Action(seat, payload)
	if errors.Is(err, goldenflower.ErrIllegalAction) {
		pterm.Error.Println(err.Error())
		return nil
	} else if err != nil {
		return err
	}

	t.renderResponse(view, res)
	return nil
}

// chooseTarget returns the seat id of the opponent to show down with
func (t *table) chooseTarget(view *goldenflower.RoundView, state *goldenflower.PlayerState) (int64, error) {
	targets := make(map[string]int64)
	options := make([]string, 0, len(view.Players))
	for _, p := range view.Players {
		seat := int64(p.Index + 1)
		if seat == state.Seat || p.Status == goldenflower.StatusFolded {
			continue
		}

		option := fmt.Sprintf("%d. %s", seat, p.Name)
		targets[option] = seat
		options = append(options, option)
	}

	choice, err := t.prompt.Select(fmt.Sprintf("Show down with whom? It costs %d", state.ShowdownBet), options)
	if err != nil {
		return 0, err
	}

	return targets[choice], nil
}

func (t *table) renderResponse(view *goldenflower.RoundView, res *playable.Response) {
	if res == nil {
		return
	}

	switch data := res.Data.(type) {
	case *goldenflower.HandView:
		pterm.Info.Printfln("%s holds %s (%s)", view.Players[data.Player].Name, deck.Hand(data.Cards), data.Category)
	case *goldenflower.ShowdownResult:
		for _, hv := range data.Hands {
			pterm.Info.Printfln("%s shows %s (%s)", view.Players[hv.Player].Name, deck.Hand(hv.Cards), hv.Category)
		}
		pterm.Success.Printfln("%s wins the showdown, %s folds", view.Players[data.Winner].Name, view.Players[data.Loser].Name)
	}
}

func (t *table) render(view *goldenflower.RoundView) {
	data := pterm.TableData{
		{"Seat", "Name", "Balance", "Committed", "Last bet", "Status", ""},
	}

	for _, p := range view.Players {
		var marks []string
		if p.IsDealer {
			marks = append(marks, "dealer")
		}
		if p.Index == view.Current {
			marks = append(marks, pterm.LightGreen("to act"))
		}

		status := p.Status.String()
		if p.Status == goldenflower.StatusFolded {
			status = pterm.LightRed(status)
		}

		data = append(data, []string{
			strconv.Itoa(p.Index + 1),
			p.Name,
			strconv.Itoa(p.Balance),
			strconv.Itoa(p.TotalCommitted),
			strconv.Itoa(p.LastRoundBet),
			status,
			strings.Join(marks, ", "),
		})
	}

	pterm.DefaultSection.Printfln("Round %d, pot %d, %s", view.RoundNumber, view.Pot, view.Phase)
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}

func (t *table) renderSettlement(view *goldenflower.RoundView) {
	s := view.Settlement
	if s == nil {
		return
	}

	lines := []string{
		pterm.Sprintfln("%s wins %d", pterm.LightCyan(view.Players[s.Winner].Name), s.Payout),
		pterm.Sprintfln("pot %d, entrance fees %d, kept by the table %d", s.Pot, s.Fees, s.Retained),
	}

	for _, hv := range s.Revealed {
		lines = append(lines, pterm.Sprintfln("%s: %s (%s)", view.Players[hv.Player].Name, deck.Hand(hv.Cards), hv.Category))
	}

	pterm.DefaultBox.WithTitle(fmt.Sprintf("Round %d", view.RoundNumber)).WithTitleTopCenter().Println(strings.Join(lines, ""))
}

// renderStandings shows every seat's winnings since the game began
func (t *table) renderStandings(view *goldenflower.RoundView) {
	details, over := t.game.GetEndOfGameDetails()
	if !over {
		return
	}

	data := pterm.TableData{{"Name", "Won"}}
	for _, p := range view.Players {
		data = append(data, []string{p.Name, fmt.Sprintf("%+d", details.BalanceAdjustments[int64(p.Index+1)])})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}

// printLog prints every queued game log message
func (t *table) printLog() {
	view, err := t.view()
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	for {
		select {
		case msgs := <-t.game.LogChan():
			for _, msg := range msgs {
				pterm.Info.Println(formatLogMessage(view, msg))
			}
		default:
			return
		}
	}
}

// formatLogMessage replaces each "{}" with the name of the next seat in PlayerIDs
func formatLogMessage(view *goldenflower.RoundView, msg *playable.LogMessage) string {
	text := msg.Message
	for _, id := range msg.PlayerIDs {
		name := fmt.Sprintf("Seat %d", id)
		if idx := int(id) - 1; idx >= 0 && idx < len(view.Players) {
			name = view.Players[idx].Name
		}

		text = strings.Replace(text, "{}", name, 1)
	}

	return text
}
