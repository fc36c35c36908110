package game_test

import (
	"testing"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/rank"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/stretchr/testify/require"
)

func TestCards(t *testing.T) {
	pile := game.NewPile()
	pile.Add(card.New(suit.Hearts, rank.Five))
	pile.Add(card.New(suit.Clubs, rank.Five))
	require.Equal(t, []card.Card{
		card.New(suit.Hearts, rank.Five),
		card.New(suit.Clubs, rank.Five),
	}, pile.Cards())
}

func TestTop(t *testing.T) {
	pile := game.NewPile()
	_, ok := pile.Top()
	require.False(t, ok)

	pile.Add(card.New(suit.Hearts, rank.Five))
	pile.Add(card.New(suit.Clubs, rank.Five))
	top, ok := pile.Top()
	require.True(t, ok)
	require.Equal(t, card.New(suit.Clubs, rank.Five), top)
}

func TestTakeUnderTop(t *testing.T) {
	t.Run("keeps_only_the_top_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.New(suit.Hearts, rank.Five))
		pile.Add(card.New(suit.Clubs, rank.Five))
		pile.Add(card.New(suit.Clubs, rank.Nine))

		require.Equal(t, []card.Card{
			card.New(suit.Hearts, rank.Five),
			card.New(suit.Clubs, rank.Five),
		}, pile.TakeUnderTop())
		require.Equal(t, []card.Card{card.New(suit.Clubs, rank.Nine)}, pile.Cards())
	})

	t.Run("returns_nothing_for_a_single_card", func(t *testing.T) {
		pile := game.NewPile()
		pile.Add(card.New(suit.Hearts, rank.Five))
		require.Empty(t, pile.TakeUnderTop())
		require.Equal(t, 1, pile.Size())
	})
}
