package game

import (
	"math/rand"

	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/rank"
	"github.com/ratel-online/eights/eights/card/suit"
)

// Deck is the draw pile. The top card is the last one.
type Deck struct {
	cards []card.Card
}

func NewDeck(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

// Build returns one card per suit and rank, suits outer and ranks inner, both in canonical order.
func Build() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, s := range suit.All() {
		for _, r := range rank.All() {
			cards = append(cards, card.New(s, r))
		}
	}
	return cards
}

// Shuffle returns a uniformly random permutation of cards, leaving the input as is.
func Shuffle(cards []card.Card, rng *rand.Rand) []card.Card {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return shuffled
}

func (d *Deck) DrawOne() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// Draw takes up to amount cards from the top, in draw order.
func (d *Deck) Draw(amount int) []card.Card {
	cards := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		c, ok := d.DrawOne()
		if !ok {
			break
		}
		cards = append(cards, c)
	}
	return cards
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}
