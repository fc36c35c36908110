package game

import (
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/rank"
	"github.com/ratel-online/eights/eights/card/suit"
)

// Playable reports whether candidateCard may go on a pile asking for requiredSuit and requiredRank.
func Playable(candidateCard card.Card, requiredSuit suit.Suit, requiredRank rank.Rank) bool {
	return candidateCard.Wild() ||
		candidateCard.Suit == requiredSuit ||
		candidateCard.Rank == requiredRank
}

// PlayableCards keeps hand order.
func PlayableCards(cards []card.Card, requiredSuit suit.Suit, requiredRank rank.Rank) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range cards {
		if Playable(candidateCard, requiredSuit, requiredRank) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// MostFrequentSuit picks the suit held most often. Ties go to the suit that shows up
// first in hand order; an empty hand yields hearts.
func MostFrequentSuit(cards []card.Card) suit.Suit {
	if len(cards) == 0 {
		return suit.Hearts
	}

	suitCounts := make(map[suit.Suit]int)
	var seen []suit.Suit
	for _, c := range cards {
		if suitCounts[c.Suit] == 0 {
			seen = append(seen, c.Suit)
		}
		suitCounts[c.Suit]++
	}

	mostFrequentSuit := seen[0]
	for _, s := range seen[1:] {
		if suitCounts[s] > suitCounts[mostFrequentSuit] {
			mostFrequentSuit = s
		}
	}
	return mostFrequentSuit
}
