package goldenflower

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"goldenflower/internal/rng"
	"goldenflower/pkg/deck"
	"goldenflower/pkg/playable"
	"goldenflower/pkg/playable/goldenflower/handrank"
)

// Phase represents the current phase of the game
type Phase int

const (
	// PhaseIdle is before the first round
	PhaseIdle Phase = iota
	// PhaseDealing is while fees are collected and cards are dealt
	PhaseDealing
	// PhaseBetting is when players look, bet, fold and show down
	PhaseBetting
	// PhaseSettling is while the pot is paid to the winner
	PhaseSettling
	// PhaseFinished is after a round has been settled
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDealing:
		return "dealing"
	case PhaseBetting:
		return "betting"
	case PhaseSettling:
		return "settling"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// MarshalText encodes the phase by name
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Game is a table of Golden Flower
// A Game is not safe for concurrent use, actions are expected one at a time.
type Game struct {
	options Options
	gen     rng.Generator
	players []*Player

	phase        Phase
	roundID      string
	roundNumber  int
	deckHash     string
	pot          int
	dealerIndex  int
	currentIndex int
	// retained is the sum of entrance fees that were never paid out
	retained   int
	settlement *Settlement

	logger  logrus.FieldLogger
	logChan chan []*playable.LogMessage
}

// NewGame returns a new game, call StartRound() to deal the first round
func NewGame(logger logrus.FieldLogger, gen rng.Generator, opts Options) (*Game, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	players := make([]*Player, opts.Players)
	for i := range players {
		players[i] = newPlayer(opts.name(i), opts.InitialBalance)
	}

	g := &Game{
		options:      opts,
		gen:          gen,
		players:      players,
		phase:        PhaseIdle,
		dealerIndex:  -1,
		currentIndex: -1,
		logger:       logger,
		logChan:      make(chan []*playable.LogMessage, 256),
	}

	g.log().WithFields(logrus.Fields{
		"players":     opts.Players,
		"entranceFee": opts.EntranceFee,
	}).Info("new game")
	g.sendLogMessages(newLogMessage(-1, "New game of Golden Flower with %d players and an entrance fee of %d", opts.Players, opts.EntranceFee))

	return g, nil
}

// StartRound collects the entrance fee from every player, deals a freshly
// shuffled deck and draws a new dealer, who acts first
func (g *Game) StartRound() (*RoundView, error) {
	if g.phase != PhaseIdle && g.phase != PhaseFinished {
		return nil, g.reject("start", -1, ErrRoundInProgress)
	}

	for i, p := range g.players {
		if p.balance < g.options.EntranceFee {
			return nil, g.reject("start", i, ErrInsufficientFunds)
		}
	}

	d := deck.New()
	d.Shuffle(g.gen)
	deckHash := d.HashCode()

	dealt, err := d.Deal(len(g.players), deck.CardsPerPlayer)
	if err != nil {
		return nil, &InvariantError{Reason: "could not deal", Err: err}
	}

	hands := make([]handrank.Hand, len(dealt))
	for i, cards := range dealt {
		h, err := handrank.NewHand(cards)
		if err != nil {
			return nil, &InvariantError{Reason: "could not deal", Err: err}
		}

		hands[i] = h
	}

	dealer := g.gen.Intn(len(g.players))

	g.roundID = uuid.New().String()
	g.roundNumber++
	g.setPhase(PhaseDealing)

	g.deckHash = deckHash
	g.pot = 0
	g.settlement = nil
	for i, p := range g.players {
		p.reset(hands[i], g.options.EntranceFee)
	}

	g.players[dealer].isDealer = true
	g.dealerIndex = dealer
	g.currentIndex = dealer

	g.log().WithFields(logrus.Fields{
		"dealer":   dealer,
		"deckHash": deckHash,
	}).Info("round started")
	g.sendLogMessages(
		newLogMessage(-1, "Round %d started, everyone paid the entrance fee of %d", g.roundNumber, g.options.EntranceFee),
		newLogMessage(dealer, "{} is the dealer"),
	)

	g.setPhase(PhaseBetting)

	return g.View(), nil
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// Pot returns the chips wagered this round
func (g *Game) Pot() int {
	return g.pot
}

// CurrentPlayer returns the index of the player to act, -1 outside of betting
func (g *Game) CurrentPlayer() int {
	if g.phase != PhaseBetting {
		return -1
	}

	return g.currentIndex
}

// DeckHash returns the hash of the deck as it was shuffled for the current round
func (g *Game) DeckHash() string {
	return g.deckHash
}

// Retained returns the entrance fees kept by the table across all rounds
func (g *Game) Retained() int {
	return g.retained
}

// Options returns the options the game was created with
func (g *Game) Options() Options {
	return g.options
}

func (g *Game) setPhase(phase Phase) {
	g.phase = phase
	g.log().WithField("phase", phase.String()).Debug("phase changed")
}

func (g *Game) log() logrus.FieldLogger {
	return g.logger.WithFields(logrus.Fields{
		"round":       g.roundID,
		"roundNumber": g.roundNumber,
	})
}

// reject logs a refused action and returns err
func (g *Game) reject(action string, idx int, err error) error {
	g.log().WithError(err).WithFields(logrus.Fields{
		"action": action,
		"player": idx,
	}).Debug("action rejected")

	return err
}

func (g *Game) checkPlayer(idx int) error {
	if idx < 0 || idx >= len(g.players) {
		return ErrPlayerNotFound
	}

	return nil
}

// checkBetting is the precondition for every betting action
func (g *Game) checkBetting(idx int) error {
	if err := g.checkPlayer(idx); err != nil {
		return err
	}

	if g.phase != PhaseBetting {
		return ErrRoundNotInProgress
	}

	return nil
}

// checkTurn is checkBetting plus the player must be the one to act
func (g *Game) checkTurn(idx int) error {
	if err := g.checkBetting(idx); err != nil {
		return err
	}

	if g.currentIndex != idx {
		return ErrNotYourTurn
	}

	return nil
}
