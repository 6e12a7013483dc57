package goldenflower

import (
	"goldenflower/pkg/deck"
	"goldenflower/pkg/playable"
)

// seatID is the 1-based id of a player index
func seatID(idx int) int64 {
	return int64(idx + 1)
}

// newLogMessage returns a message about the player at idx, or a general message if idx < 0
func newLogMessage(idx int, format string, a ...interface{}) *playable.LogMessage {
	if idx < 0 {
		return playable.SimpleLogMessage(0, format, a...)
	}

	return playable.SimpleLogMessage(seatID(idx), format, a...)
}

func newLogMessageWithCards(idx int, cards []deck.Card, format string, a ...interface{}) *playable.LogMessage {
	lm := newLogMessage(idx, format, a...)
	lm.Cards = cards

	return lm
}

// sendLogMessages never blocks, messages are dropped if nobody is reading
func (g *Game) sendLogMessages(msg ...*playable.LogMessage) {
	select {
	case g.logChan <- msg:
	default:
		g.log().WithField("messages", len(msg)).Warn("log channel is full, dropping messages")
	}
}
