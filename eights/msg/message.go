package msg

import (
	"fmt"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
)

const (
	HumanName    = "You"
	ComputerName = "Computer"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return "Welcome to Crazy Eights!"
}

func (m MessageWriter) GameStarted() string {
	return "Your turn! Match the suit or rank."
}

func (m MessageWriter) IllegalPlay() string {
	return "You can't play that card!"
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return fmt.Sprintf("%s played %s.", playerName, c)
}

func (m MessageWriter) HumanPlayedEight() string {
	return "Crazy 8! Choose a new suit."
}

func (m MessageWriter) HumanPickedSuit(playerName string, s suit.Suit) string {
	return fmt.Sprintf("%s chose %s. %s's turn.", playerName, s, ComputerName)
}

func (m MessageWriter) ComputerPickedSuit(s suit.Suit) string {
	return fmt.Sprintf("%s played an 8 and chose %s.", ComputerName, s)
}

func (m MessageWriter) PlayerDrewCard(playerName string) string {
	return fmt.Sprintf("%s drew a card.", playerName)
}

func (m MessageWriter) NoCardsLeft() string {
	return "No more cards in deck!"
}

func (m MessageWriter) DeckReshuffled() string {
	return "Discard pile reshuffled into the deck."
}

// WinnerFound congratulates the human directly; the computer is named.
func (m MessageWriter) WinnerFound(playerName string, human bool) string {
	if human {
		return "Congratulations! You won!"
	}
	return fmt.Sprintf("%s won. Better luck next time!", playerName)
}
