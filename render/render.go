package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
)

// JSON encodes a snapshot for front-ends that draw the table themselves.
func JSON(state game.State) string {
	return string(json.Marshal(state))
}

func Cards(cards []card.Card) string {
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, c.Paint())
	}
	return strings.Join(labels, " ")
}

// NumberedCards lists cards with the 1-based index used by the play command.
func NumberedCards(cards []card.Card) string {
	labels := make([]string, 0, len(cards))
	for index, c := range cards {
		labels = append(labels, fmt.Sprintf("%d:%s", index+1, c.Paint()))
	}
	return strings.Join(labels, "  ")
}

func ActiveSuit(state game.State) string {
	return state.CurrentSuit.Paintf("%s %s (%s)", state.CurrentRank, state.CurrentSuit.Symbol(), state.CurrentSuit)
}

func Turn(state game.State, playerName string) string {
	switch state.Status {
	case game.Waiting:
		return "Type 'start' to deal the cards"
	case game.ChoosingSuit:
		return fmt.Sprintf("%s, choose a suit", playerName)
	case game.GameOver:
		if state.Winner == game.Human {
			return fmt.Sprintf("%s won!", playerName)
		}
		return fmt.Sprintf("%s won!", msg.ComputerName)
	}
	if state.Turn == game.Human {
		return fmt.Sprintf("%s to play", playerName)
	}
	return fmt.Sprintf("%s is thinking...", msg.ComputerName)
}

func Help() string {
	buf := bytes.Buffer{}
	buf.WriteString("Commands:\n")
	buf.WriteString("  start | restart   deal a new game\n")
	buf.WriteString("  play <n>          play the n-th card of your hand\n")
	buf.WriteString("  draw              draw a card\n")
	buf.WriteString("  suit <name>       name the suit after playing an 8\n")
	buf.WriteString("  history           show the latest moves\n")
	buf.WriteString("  quit              leave the table\n")
	return buf.String()
}
