package card

import (
	"fmt"

	"github.com/ratel-online/eights/eights/card/rank"
	"github.com/ratel-online/eights/eights/card/suit"
)

type Card struct {
	ID      string    `json:"id"`
	Suit    suit.Suit `json:"suit"`
	Rank    rank.Rank `json:"rank"`
	Artwork Artwork   `json:"artwork"`
}

func New(s suit.Suit, r rank.Rank) Card {
	return Card{
		ID:   ID(s, r),
		Suit: s,
		Rank: r,
	}
}

func ID(s suit.Suit, r rank.Rank) string {
	return fmt.Sprintf("%s-%s", r, s)
}

func (c Card) Wild() bool {
	return c.Rank == rank.Wild
}

// Equal compares identity only; artwork is ignored.
func (c Card) Equal(other Card) bool {
	return c.ID == other.ID
}

func (c Card) Label() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit.Symbol())
}

func (c Card) Paint() string {
	return c.Suit.Paint(c.Label())
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
