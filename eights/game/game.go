package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/rank"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/msg"
	uuid "github.com/satori/go.uuid"
)

type Options struct {
	// Rand drives every shuffle. A time seeded source is used when nil.
	Rand    *rand.Rand
	Catalog card.Catalog
	// PlayerName labels the human in messages. Defaults to msg.HumanName.
	PlayerName string
}

// Game is the only writer of a match. Callers serialize access to it.
type Game struct {
	id      string
	version uint64
	rng     *rand.Rand
	catalog card.Catalog
	events  *event.Bus
	player  string

	deck  *Deck
	hands map[Side]*Hand
	pile  *Pile

	suit    suit.Suit
	rank    rank.Rank
	turn    Side
	status  Status
	winner  Side
	message string
}

func New(options Options) *Game {
	rng := options.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	player := options.PlayerName
	if player == "" {
		player = msg.HumanName
	}
	return &Game{
		player:  player,
		rng:     rng,
		catalog: options.Catalog,
		events:  event.NewBus(),
		deck:    NewDeck(nil),
		hands:   map[Side]*Hand{Human: NewHand(), Computer: NewHand()},
		pile:    NewPile(),
		status:  Waiting,
		message: msg.Message.Welcome(),
	}
}

// Load rebuilds a game positioned at state. The snapshot is copied.
func Load(state State, options Options) *Game {
	g := New(options)
	g.id = state.GameID
	g.version = state.Version
	g.deck = NewDeck(state.Deck)
	g.hands[Human].AddCards(state.PlayerHand)
	g.hands[Computer].AddCards(state.ComputerHand)
	for _, c := range state.DiscardPile {
		g.pile.Add(c)
	}
	g.suit = state.CurrentSuit
	g.rank = state.CurrentRank
	g.turn = state.Turn
	g.status = state.Status
	g.winner = state.Winner
	g.message = state.Message
	return g
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Version() uint64 {
	return g.version
}

func (g *Game) Events() *event.Bus {
	return g.events
}

// Start throws away whatever match was in progress and deals a new one.
func (g *Game) Start() {
	cards := Build()
	if !g.catalog.Empty() {
		cards = card.Decorate(cards, g.catalog)
	}

	g.id = uuid.NewV4().String()
	g.deck = NewDeck(Shuffle(cards, g.rng))
	g.hands = map[Side]*Hand{Human: NewHand(), Computer: NewHand()}
	g.hands[Human].AddCards(g.deck.Draw(consts.HandSize))
	g.hands[Computer].AddCards(g.deck.Draw(consts.HandSize))

	firstCard, _ := g.deck.DrawOne()
	g.pile = NewPile()
	g.pile.Add(firstCard)

	g.suit = firstCard.Suit
	g.rank = firstCard.Rank
	g.turn = Human
	g.status = Playing
	g.winner = NoSide
	g.message = msg.Message.GameStarted()
	g.version++

	g.events.GameStarted.Emit(event.GameStartedPayload{
		GameID:    g.id,
		FirstCard: firstCard,
	})
}

func (g *Game) Play(c card.Card, actor Side) error {
	if err := g.checkTurn(actor); err != nil {
		return err
	}
	hand := g.hands[actor]
	playedCard, found := hand.Find(c.ID)
	if !found {
		return consts.ErrorsCardNotInHand
	}
	if actor == Human && !Playable(playedCard, g.suit, g.rank) {
		g.reject(actor, msg.Message.IllegalPlay())
		return consts.ErrorsIllegalPlay
	}

	hand.RemoveCard(playedCard)
	g.pile.Add(playedCard)
	g.version++
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: string(actor),
		Card:       playedCard,
	})

	if hand.Empty() {
		g.status = GameOver
		g.winner = actor
		g.message = msg.Message.WinnerFound(g.name(actor), actor == Human)
		g.events.GameWon.Emit(event.GameWonPayload{PlayerName: string(actor)})
		return nil
	}

	if playedCard.Wild() {
		if actor == Human {
			g.status = ChoosingSuit
			g.message = msg.Message.HumanPlayedEight()
			return nil
		}
		g.pickSuit(actor, MostFrequentSuit(hand.Cards()))
		g.message = msg.Message.ComputerPickedSuit(g.suit)
		return nil
	}

	g.suit = playedCard.Suit
	g.rank = playedCard.Rank
	g.turn = actor.Other()
	g.message = msg.Message.PlayerPlayedCard(g.name(actor), playedCard)
	return nil
}

// ChooseSuit settles the suit after the human played an 8.
func (g *Game) ChooseSuit(s suit.Suit) error {
	if g.status != ChoosingSuit {
		return consts.ErrorsNotChoosingSuit
	}
	if !s.Valid() {
		return consts.ErrorsUnknownSuit
	}
	g.status = Playing
	g.pickSuit(Human, s)
	g.message = msg.Message.HumanPickedSuit(g.player, s)
	g.version++
	return nil
}

// Draw gives actor the top card of the deck. With an empty deck the discard pile
// under the active card is shuffled into a new deck instead; nothing is drawn and
// the turn stays with actor.
func (g *Game) Draw(actor Side) error {
	if err := g.checkTurn(actor); err != nil {
		return err
	}

	if g.deck.Empty() {
		if g.pile.Size() <= 1 {
			g.reject(actor, msg.Message.NoCardsLeft())
			return consts.ErrorsNoCardsLeft
		}
		g.deck = NewDeck(Shuffle(g.pile.TakeUnderTop(), g.rng))
		g.message = msg.Message.DeckReshuffled()
		g.version++
		g.events.DeckReshuffled.Emit(event.DeckReshuffledPayload{DeckSize: g.deck.Size()})
		return nil
	}

	drawnCard, _ := g.deck.DrawOne()
	hand := g.hands[actor]
	hand.AddCards([]card.Card{drawnCard})
	g.turn = actor.Other()
	g.message = msg.Message.PlayerDrewCard(g.name(actor))
	g.version++
	g.events.CardDrawn.Emit(event.CardDrawnPayload{
		PlayerName: string(actor),
		HandSize:   hand.Size(),
	})
	return nil
}

func (g *Game) State() State {
	return State{
		GameID:       g.id,
		Version:      g.version,
		Deck:         g.deck.Cards(),
		PlayerHand:   g.hands[Human].Cards(),
		ComputerHand: g.hands[Computer].Cards(),
		DiscardPile:  g.pile.Cards(),
		CurrentSuit:  g.suit,
		CurrentRank:  g.rank,
		Turn:         g.turn,
		Status:       g.status,
		Winner:       g.winner,
		Message:      g.message,
	}
}

func (g *Game) name(side Side) string {
	if side == Human {
		return g.player
	}
	return side.DisplayName()
}

func (g *Game) checkTurn(actor Side) error {
	if !actor.Valid() {
		return consts.ErrorsUnknownSide
	}
	if g.status != Playing {
		return consts.ErrorsGameNotPlaying
	}
	if g.turn != actor {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func (g *Game) pickSuit(actor Side, s suit.Suit) {
	g.suit = s
	g.rank = rank.Wild
	g.turn = actor.Other()
	g.events.SuitChosen.Emit(event.SuitChosenPayload{
		PlayerName: string(actor),
		Suit:       s,
	})
}

func (g *Game) reject(actor Side, reason string) {
	g.message = reason
	g.events.ActionRejected.Emit(event.ActionRejectedPayload{
		PlayerName: string(actor),
		Reason:     reason,
	})
}
