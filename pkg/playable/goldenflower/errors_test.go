package goldenflower

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"goldenflower/pkg/deck"
)

func TestErrors_Is(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrNotYourTurn, ErrIllegalAction},
		{ErrRoundNotInProgress, ErrIllegalAction},
		{ErrRoundInProgress, ErrIllegalAction},
		{ErrAlreadyLooked, ErrIllegalAction},
		{ErrPlayerFolded, ErrIllegalAction},
		{ErrInsufficientFunds, ErrIllegalAction},
		{ErrNoEligibleTarget, ErrIllegalAction},
		{ErrInvalidTarget, ErrIllegalAction},
		{ErrInvalidBetAmount, ErrIllegalAction},
		{BetTooSmallError{Minimum: 10, Got: 5}, ErrIllegalAction},
		{PlayerCountError{Min: 2, Max: 17, Got: 1}, ErrInvalidConfiguration},
		{ConfigError{Field: "names", Reason: "x"}, ErrInvalidConfiguration},
		{ErrPlayerNotFound, ErrStateInvariant},
	}

	kinds := []error{ErrIllegalAction, ErrInvalidConfiguration, ErrStateInvariant}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("seat 1: %w", tt.err)
			for _, kind := range kinds {
				assert.Equal(t, kind == tt.kind, errors.Is(wrapped, kind), "%v", kind)
			}

			assert.True(t, errors.Is(wrapped, tt.err))
		})
	}
}

func TestInvariantError(t *testing.T) {
	a := assert.New(t)

	err := &InvariantError{Reason: "could not deal", Err: deck.ErrNotEnoughCards}
	a.EqualError(err, "could not deal: not enough cards in the deck")
	a.True(errors.Is(err, ErrStateInvariant))
	a.True(errors.Is(err, deck.ErrNotEnoughCards))

	a.EqualError(ErrPlayerNotFound, "player not found")
	a.Nil(errors.Unwrap(ErrPlayerNotFound))
}
