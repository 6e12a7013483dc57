package goldenflower

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is matched by every error returned for bad game options
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ErrIllegalAction is matched by every error returned for an action the rules do not allow
var ErrIllegalAction = errors.New("illegal action")

// ErrStateInvariant is matched by errors that indicate a programming error
var ErrStateInvariant = errors.New("state invariant violation")

// IllegalActionError is an action that was rejected by the rules
// The game state is never changed when one is returned.
type IllegalActionError struct {
	msg string
}

func (i *IllegalActionError) Error() string {
	return i.msg
}

// Is allows errors.Is(err, ErrIllegalAction)
func (i *IllegalActionError) Is(target error) bool {
	return target == ErrIllegalAction
}

// illegal actions
var (
	// ErrNotYourTurn is returned when a player acts out of turn
	ErrNotYourTurn = &IllegalActionError{msg: "it is not your turn"}
	// ErrRoundNotInProgress is returned when a betting action is made outside of a round
	ErrRoundNotInProgress = &IllegalActionError{msg: "round is not in progress"}
	// ErrRoundInProgress is returned when a new round is requested before the current one finished
	ErrRoundInProgress = &IllegalActionError{msg: "round is already in progress"}
	// ErrAlreadyLooked is returned when a player looks at their cards twice
	ErrAlreadyLooked = &IllegalActionError{msg: "player has already looked at their cards"}
	// ErrPlayerFolded is returned when a folded player tries to act
	ErrPlayerFolded = &IllegalActionError{msg: "player has folded"}
	// ErrInsufficientFunds is returned when a player cannot cover the amount required
	ErrInsufficientFunds = &IllegalActionError{msg: "insufficient funds"}
	// ErrNoEligibleTarget is returned when there is nobody left to show down with
	ErrNoEligibleTarget = &IllegalActionError{msg: "no eligible showdown target"}
	// ErrInvalidTarget is returned when the showdown target is not an active opponent
	ErrInvalidTarget = &IllegalActionError{msg: "invalid showdown target"}
	// ErrInvalidBetAmount is returned for bets of zero or less
	ErrInvalidBetAmount = &IllegalActionError{msg: "bet amount must be positive"}
)

// BetTooSmallError is returned when a bet is below the minimum
type BetTooSmallError struct {
	Minimum int
	Got     int
}

func (b BetTooSmallError) Error() string {
	return fmt.Sprintf("insufficient bet: minimum is %d, got %d", b.Minimum, b.Got)
}

// Is allows errors.Is(err, ErrIllegalAction)
func (b BetTooSmallError) Is(target error) bool {
	return target == ErrIllegalAction
}

// PlayerCountError is an error on the number of players in the game
type PlayerCountError struct {
	Min int
	Max int
	Got int
}

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", p.Min, p.Max, p.Got)
}

// Is allows errors.Is(err, ErrInvalidConfiguration)
func (p PlayerCountError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// ConfigError is an invalid option
type ConfigError struct {
	Field  string
	Reason string
}

func (c ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", c.Field, c.Reason)
}

// Is allows errors.Is(err, ErrInvalidConfiguration)
func (c ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// InvariantError means the engine reached a state it should never be in
type InvariantError struct {
	Reason string
	Err    error
}

func (i *InvariantError) Error() string {
	if i.Err != nil {
		return fmt.Sprintf("%s: %v", i.Reason, i.Err)
	}

	return i.Reason
}

// Is allows errors.Is(err, ErrStateInvariant)
func (i *InvariantError) Is(target error) bool {
	return target == ErrStateInvariant
}

func (i *InvariantError) Unwrap() error {
	return i.Err
}

// ErrPlayerNotFound is returned for a player index outside of the table
var ErrPlayerNotFound = &InvariantError{Reason: "player not found"}
