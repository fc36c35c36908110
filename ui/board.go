package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/ratel-online/eights/render"
)

var (
	borderColor    = lipgloss.Color("240")
	highlightColor = lipgloss.Color("214")
	backColor      = lipgloss.Color("239")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1).
			Align(lipgloss.Center)

	backStyle = cardStyle.Copy().
			Foreground(backColor)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)
)

// Board draws the whole table as seen by the human player.
func Board(state game.State, playerName string) string {
	lines := []string{titleStyle.Render("Crazy Eights")}
	if state.Status != game.Waiting {
		lines = append(lines,
			table(state),
			fmt.Sprintf("Active: %s", render.ActiveSuit(state)),
			fmt.Sprintf("%s: %s", playerName, render.NumberedCards(state.PlayerHand)),
		)
	}
	if state.Message != "" {
		lines = append(lines, state.Message)
	}
	lines = append(lines, titleStyle.Render(render.Turn(state, playerName)))
	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func table(state game.State) string {
	top := "--"
	if c, ok := state.TopCard(); ok {
		top = c.Paint()
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		cardStyle.Render(top),
		"  ",
		backStyle.Render(fmt.Sprintf("Deck %d", len(state.Deck))),
		"  ",
		fmt.Sprintf("%s: %d card(s)", msg.ComputerName, len(state.ComputerHand)),
	)
}
