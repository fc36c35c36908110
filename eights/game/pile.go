package game

import (
	"github.com/ratel-online/eights/eights/card"
)

// Pile is the discard pile; its last card is the active one.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 52)}
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Top() (card.Card, bool) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, false
	}
	return p.cards[pileSize-1], true
}

// TakeUnderTop removes and returns every card except the top one.
func (p *Pile) TakeUnderTop() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	under := make([]card.Card, len(p.cards)-1)
	copy(under, p.cards[:len(p.cards)-1])
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return under
}

func (p *Pile) Size() int {
	return len(p.cards)
}
