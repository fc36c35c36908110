package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/rank"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/msg"
)

type Side string

const (
	NoSide   Side = ""
	Human    Side = "player"
	Computer Side = "computer"
)

func (s Side) Other() Side {
	switch s {
	case Human:
		return Computer
	case Computer:
		return Human
	}
	return NoSide
}

func (s Side) Valid() bool {
	return s == Human || s == Computer
}

func (s Side) DisplayName() string {
	switch s {
	case Human:
		return msg.HumanName
	case Computer:
		return msg.ComputerName
	}
	return ""
}

type Status string

const (
	Waiting      Status = "waiting"
	Playing      Status = "playing"
	ChoosingSuit Status = "choosingSuit"
	GameOver     Status = "gameOver"
)

// State is a detached snapshot; changing it never affects the game it came from.
type State struct {
	GameID       string      `json:"gameId"`
	Version      uint64      `json:"version"`
	Deck         []card.Card `json:"deck"`
	PlayerHand   []card.Card `json:"playerHand"`
	ComputerHand []card.Card `json:"computerHand"`
	DiscardPile  []card.Card `json:"discardPile"`
	CurrentSuit  suit.Suit   `json:"currentSuit"`
	CurrentRank  rank.Rank   `json:"currentRank"`
	Turn         Side        `json:"turn"`
	Status       Status      `json:"status"`
	Winner       Side        `json:"winner"`
	Message      string      `json:"message"`
}

func (s State) Hand(side Side) []card.Card {
	switch side {
	case Human:
		return s.PlayerHand
	case Computer:
		return s.ComputerHand
	}
	return nil
}

func (s State) TopCard() (card.Card, bool) {
	if len(s.DiscardPile) == 0 {
		return card.Card{}, false
	}
	return s.DiscardPile[len(s.DiscardPile)-1], true
}

// CardCount sums every zone; it is consts.DeckSize for any started game.
func (s State) CardCount() int {
	return len(s.Deck) + len(s.PlayerHand) + len(s.ComputerHand) + len(s.DiscardPile)
}

// AwaitsComputer is true when the computer is the side expected to act.
func (s State) AwaitsComputer() bool {
	return s.Status == Playing && s.Turn == Computer
}

func (s State) String() string {
	var lines []string
	if top, ok := s.TopCard(); ok {
		lines = append(lines, fmt.Sprintf("Top card: %s", top))
	}
	lines = append(lines, fmt.Sprintf("Active: %s %s", s.CurrentRank, s.CurrentSuit))
	lines = append(lines, fmt.Sprintf("Deck: %d card(s), %s: %d card(s)", len(s.Deck), msg.ComputerName, len(s.ComputerHand)))
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.PlayerHand))
	lines = append(lines, fmt.Sprintf("Status: %s, turn: %s", s.Status, s.Turn))
	return strings.Join(lines, "\n")
}
