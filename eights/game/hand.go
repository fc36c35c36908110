package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/rank"
	"github.com/ratel-online/eights/eights/card/suit"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 7)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Find(id string) (card.Card, bool) {
	for _, cardInHand := range h.cards {
		if cardInHand.ID == id {
			return cardInHand, true
		}
	}
	return card.Card{}, false
}

func (h *Hand) PlayableCards(requiredSuit suit.Suit, requiredRank rank.Rank) []card.Card {
	return PlayableCards(h.cards, requiredSuit, requiredRank)
}

// RemoveCard drops the first copy of c and keeps the order of the rest.
func (h *Hand) RemoveCard(c card.Card) bool {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			h.cards = append(h.cards[:index:index], h.cards[index+1:]...)
			return true
		}
	}
	return false
}

func (h *Hand) Size() int {
	return len(h.cards)
}
