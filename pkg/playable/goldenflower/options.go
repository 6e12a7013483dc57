package goldenflower

import "fmt"

// player count bounds, 17 hands use 51 of the 52 cards
const (
	MinPlayers = 2
	MaxPlayers = 17
)

// Options are options for creating a new game
type Options struct {
	Players        int
	InitialBalance int
	// EntranceFee is withheld from every balance at the start of each round
	EntranceFee int
	// Names is optional, seats are named "Player N" when empty
	Names []string
}

// DefaultOptions returns the default options for a game
func DefaultOptions() Options {
	return Options{
		Players:        4,
		InitialBalance: 1000,
		EntranceFee:    10,
	}
}

// Validate checks the options
func (o Options) Validate() error {
	if o.Players < MinPlayers || o.Players > MaxPlayers {
		return PlayerCountError{
			Min: MinPlayers,
			Max: MaxPlayers,
			Got: o.Players,
		}
	}

	if o.InitialBalance <= 0 {
		return ConfigError{Field: "initial balance", Reason: fmt.Sprintf("must be positive, got %d", o.InitialBalance)}
	}

	if maxFee := o.InitialBalance / 10; o.EntranceFee < 1 || o.EntranceFee > maxFee {
		return ConfigError{Field: "entrance fee", Reason: fmt.Sprintf("must be between 1 and %d, got %d", maxFee, o.EntranceFee)}
	}

	if len(o.Names) > 0 && len(o.Names) != o.Players {
		return ConfigError{Field: "names", Reason: fmt.Sprintf("expected %d names, got %d", o.Players, len(o.Names))}
	}

	return nil
}

func (o Options) name(i int) string {
	if len(o.Names) > 0 && o.Names[i] != "" {
		return o.Names[i]
	}

	return fmt.Sprintf("Player %d", i+1)
}
