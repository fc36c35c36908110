package player

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
)

// computerPlayer plays the first playable card in hand order.
type computerPlayer struct {
	name string
}

func NewComputerPlayer() game.Player {
	return computerPlayer{name: msg.ComputerName}
}

func (p computerPlayer) Name() string {
	return p.name
}

func (p computerPlayer) Play(playableCards []card.Card, gameState game.State) card.Card {
	firstCard := playableCards[0]
	return firstCard
}
