package game

import (
	"github.com/ratel-online/eights/eights/card"
)

// Player decides a move for a side that is not driven by a person.
type Player interface {
	Name() string
	Play(playableCards []card.Card, gameState State) card.Card
}
