package msg_test

import (
	"testing"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/rank"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	scenarios := []struct {
		description string
		message     string
		expected    string
	}{
		{
			description: "human_played_card",
			message:     msg.Message.PlayerPlayedCard(msg.HumanName, card.New(suit.Clubs, rank.Seven)),
			expected:    "You played 7 of clubs.",
		},
		{
			description: "computer_played_card",
			message:     msg.Message.PlayerPlayedCard(msg.ComputerName, card.New(suit.Hearts, rank.Queen)),
			expected:    "Computer played Q of hearts.",
		},
		{
			description: "human_picked_suit",
			message:     msg.Message.HumanPickedSuit(msg.HumanName, suit.Spades),
			expected:    "You chose spades. Computer's turn.",
		},
		{
			description: "named_human_picked_suit",
			message:     msg.Message.HumanPickedSuit("Tina", suit.Hearts),
			expected:    "Tina chose hearts. Computer's turn.",
		},
		{
			description: "named_human_drew_card",
			message:     msg.Message.PlayerDrewCard("Tina"),
			expected:    "Tina drew a card.",
		},
		{
			description: "computer_picked_suit",
			message:     msg.Message.ComputerPickedSuit(suit.Diamonds),
			expected:    "Computer played an 8 and chose diamonds.",
		},
		{
			description: "human_drew_card",
			message:     msg.Message.PlayerDrewCard(msg.HumanName),
			expected:    "You drew a card.",
		},
		{
			description: "human_won",
			message:     msg.Message.WinnerFound("Tina", true),
			expected:    "Congratulations! You won!",
		},
		{
			description: "computer_won",
			message:     msg.Message.WinnerFound(msg.ComputerName, false),
			expected:    "Computer won. Better luck next time!",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.message)
		})
	}
}
