package goldenflower

import (
	"fmt"

	"goldenflower/pkg/playable/goldenflower/handrank"
)

// Status is what a player knows about their hand, or whether they are out
type Status int

// status constants
const (
	StatusWaiting Status = iota
	StatusBlind
	StatusLooked
	StatusFolded
)

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusBlind:
		return "blind"
	case StatusLooked:
		return "looked"
	case StatusFolded:
		return "folded"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText encodes the status by name
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Player is a seat at the table
// Only the balance survives from one round to the next.
type Player struct {
	Name string

	balance        int
	totalCommitted int
	lastRoundBet   int
	hasBet         bool
	status         Status
	isDealer       bool

	hand    handrank.Hand
	hasHand bool
}

func newPlayer(name string, balance int) *Player {
	return &Player{
		Name:    name,
		balance: balance,
		status:  StatusWaiting,
	}
}

// Balance returns the money not committed to the pot
func (p *Player) Balance() int {
	return p.balance
}

// Status returns the status of the player
func (p *Player) Status() Status {
	return p.status
}

// IsDealer returns true if the player is the dealer this round
func (p *Player) IsDealer() bool {
	return p.isDealer
}

// TotalCommitted returns the sum of the player's bets this round
func (p *Player) TotalCommitted() int {
	return p.totalCommitted
}

// LastRoundBet returns the player's most recent bet
func (p *Player) LastRoundBet() int {
	return p.lastRoundBet
}

// Hand returns the player's hand, false if no cards were dealt yet
func (p *Player) Hand() (handrank.Hand, bool) {
	return p.hand, p.hasHand
}

func (p *Player) isActive() bool {
	return p.status != StatusFolded
}

// hasLooked treats Waiting the same as Blind
func (p *Player) hasLooked() bool {
	return p.status == StatusLooked
}

// reset prepares the player for a new round and pays the entrance fee
func (p *Player) reset(hand handrank.Hand, entranceFee int) {
	p.balance -= entranceFee
	p.totalCommitted = 0
	p.lastRoundBet = 0
	p.hasBet = false
	p.status = StatusBlind
	p.isDealer = false
	p.hand = hand
	p.hasHand = true
}

// commit moves amount from the balance into the player's bets
func (p *Player) commit(amount int) {
	p.balance -= amount
	p.totalCommitted += amount
	p.lastRoundBet = amount
	p.hasBet = true
}
