package service

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/game"
)

// eventLog logs every event of a table's game and keeps the latest lines as a
// move history. Events arrive under the table lock.
type eventLog struct {
	tableID    int64
	playerName string
	size       int
	lines      []string
}

func newEventLog(tableID int64, playerName string, size int) *eventLog {
	return &eventLog{tableID: tableID, playerName: playerName, size: size}
}

func (l *eventLog) OnGameStarted(payload event.GameStartedPayload) {
	l.lines = l.lines[:0]
	l.record("game %s started, first card %s", payload.GameID, payload.FirstCard)
}

func (l *eventLog) OnCardPlayed(payload event.CardPlayedPayload) {
	l.record("%s played %s", l.name(payload.PlayerName), payload.Card)
}

func (l *eventLog) OnCardDrawn(payload event.CardDrawnPayload) {
	l.record("%s drew a card, %d in hand", l.name(payload.PlayerName), payload.HandSize)
}

func (l *eventLog) OnSuitChosen(payload event.SuitChosenPayload) {
	l.record("%s chose %s", l.name(payload.PlayerName), payload.Suit)
}

func (l *eventLog) OnDeckReshuffled(payload event.DeckReshuffledPayload) {
	l.record("discard pile reshuffled, %d cards in deck", payload.DeckSize)
}

func (l *eventLog) OnActionRejected(payload event.ActionRejectedPayload) {
	l.record("%s was refused: %s", l.name(payload.PlayerName), payload.Reason)
}

func (l *eventLog) OnGameWon(payload event.GameWonPayload) {
	l.record("%s won", l.name(payload.PlayerName))
}

func (l *eventLog) History() []string {
	return append([]string(nil), l.lines...)
}

func (l *eventLog) name(side string) string {
	if game.Side(side) == game.Human {
		return l.playerName
	}
	return game.Side(side).DisplayName()
}

func (l *eventLog) record(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	log.Infof("table %d: %s\n", l.tableID, line)
	l.lines = append(l.lines, line)
	if len(l.lines) > l.size {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-l.size:]...)
	}
}
