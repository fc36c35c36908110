package service_test

import (
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/event"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/service"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	sync.Mutex
	states []game.State
}

func (r *recorder) OnStateChanged(state game.State) {
	r.Lock()
	defer r.Unlock()
	r.states = append(r.states, state)
}

func (r *recorder) Snapshots() []game.State {
	r.Lock()
	defer r.Unlock()
	return append([]game.State(nil), r.states...)
}

func newTable(seed int64, delay time.Duration) *service.Table {
	return service.NewTable(1, service.TableOptions{
		ComputerDelay: delay,
		Rand:          rand.New(rand.NewSource(seed)),
	})
}

func humanCanAct(state game.State) bool {
	return state.Status == game.GameOver ||
		state.Status == game.ChoosingSuit ||
		(state.Status == game.Playing && state.Turn == game.Human)
}

// passTurn makes any legal human move that hands the turn to the computer.
func passTurn(t *testing.T, table *service.Table) game.State {
	state := table.Snapshot()
	for {
		switch {
		case state.Status == game.ChoosingSuit:
			next, err := table.ChooseSuit(game.MostFrequentSuit(state.PlayerHand))
			require.NoError(t, err)
			return next
		case state.Turn == game.Computer || state.Status == game.GameOver:
			return state
		}
		playable := game.PlayableCards(state.PlayerHand, state.CurrentSuit, state.CurrentRank)
		var err error
		if len(playable) > 0 {
			state, err = table.PlayCard(playable[0].ID, game.Human)
		} else {
			state, err = table.DrawCard(game.Human)
		}
		require.NoError(t, err)
	}
}

func TestStartGame(t *testing.T) {
	table := newTable(1, time.Millisecond)
	listener := &recorder{}
	table.Subscribe(listener)

	require.Equal(t, game.Waiting, table.Snapshot().Status)

	state, err := table.StartGame()
	require.NoError(t, err)
	require.Equal(t, game.Playing, state.Status)
	require.Equal(t, game.Human, state.Turn)
	require.Equal(t, 52, state.CardCount())
	require.Equal(t, []game.State{state}, listener.Snapshots())
}

func TestComputerAnswersAfterHumanMove(t *testing.T) {
	table := newTable(2, 5*time.Millisecond)
	listener := &recorder{}
	table.Subscribe(listener)
	_, err := table.StartGame()
	require.NoError(t, err)

	state := passTurn(t, table)
	require.True(t, state.AwaitsComputer())

	require.Eventually(t, func() bool {
		return humanCanAct(table.Snapshot())
	}, time.Second, time.Millisecond)

	after := table.Snapshot()
	require.Greater(t, after.Version, state.Version)
	require.Equal(t, 52, after.CardCount())
	require.Equal(t, after, listener.Snapshots()[len(listener.Snapshots())-1])
}

func TestHumanIntentsOutOfTurnAreRefused(t *testing.T) {
	table := newTable(3, time.Hour)
	_, err := table.StartGame()
	require.NoError(t, err)

	state := passTurn(t, table)
	require.True(t, state.AwaitsComputer())

	_, err = table.DrawCard(game.Human)
	require.Equal(t, consts.ErrorsNotYourTurn, err)
	_, err = table.ChooseSuit(suit.Hearts)
	require.Equal(t, consts.ErrorsNotChoosingSuit, err)
	require.Equal(t, state, table.Snapshot())
}

func TestPlayCard(t *testing.T) {
	t.Run("unknown_card_id", func(t *testing.T) {
		table := newTable(4, time.Hour)
		before, err := table.StartGame()
		require.NoError(t, err)

		state, err := table.PlayCard("joker", game.Human)
		require.Equal(t, consts.ErrorsUnknownCard, err)
		require.Equal(t, before, state)
	})

	t.Run("illegal_card_sets_the_message", func(t *testing.T) {
		table := newTable(4, time.Hour)
		listener := &recorder{}
		table.Subscribe(listener)
		before, err := table.StartGame()
		require.NoError(t, err)

		for _, c := range before.PlayerHand {
			if game.Playable(c, before.CurrentSuit, before.CurrentRank) {
				continue
			}
			state, err := table.PlayCard(c.ID, game.Human)
			require.Equal(t, consts.ErrorsIllegalPlay, err)
			require.Equal(t, "You can't play that card!", state.Message)
			require.Equal(t, before.PlayerHand, state.PlayerHand)
			require.Len(t, listener.Snapshots(), 2)
			return
		}
		t.Skip("every dealt card was playable")
	})
}

func TestRestartCancelsPendingComputerMove(t *testing.T) {
	table := newTable(5, 50*time.Millisecond)
	_, err := table.StartGame()
	require.NoError(t, err)

	state := passTurn(t, table)
	require.True(t, state.AwaitsComputer())

	restarted, err := table.StartGame()
	require.NoError(t, err)
	require.NotEqual(t, state.GameID, restarted.GameID)

	time.Sleep(150 * time.Millisecond)
	require.Equal(t, restarted, table.Snapshot())
}

func TestClose(t *testing.T) {
	table := newTable(6, 20*time.Millisecond)
	_, err := table.StartGame()
	require.NoError(t, err)
	state := passTurn(t, table)

	table.Close()
	require.True(t, table.Closed())

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, state, table.Snapshot())

	_, err = table.DrawCard(game.Human)
	require.Equal(t, consts.ErrorsTableClosed, err)
	_, err = table.StartGame()
	require.Equal(t, consts.ErrorsTableClosed, err)
}

func TestWholeGameReachesGameOver(t *testing.T) {
	table := newTable(7, time.Millisecond)
	_, err := table.StartGame()
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		state := table.Snapshot()
		require.Equal(t, 52, state.CardCount())
		if state.Status == game.GameOver {
			require.True(t, state.Winner.Valid())
			require.Empty(t, state.Hand(state.Winner))
			return
		}
		passTurn(t, table)
		require.Eventually(t, func() bool {
			return humanCanAct(table.Snapshot())
		}, time.Second, time.Millisecond)
	}
	t.Fatal("game did not finish")
}

func TestHistoryFollowsGameEvents(t *testing.T) {
	table := service.NewTable(1, service.TableOptions{
		PlayerName:    "Tina",
		ComputerDelay: time.Hour,
		Rand:          rand.New(rand.NewSource(8)),
	})
	defer table.Close()
	events := event.NewDummyListener()
	table.AddEventListener(events)
	require.Empty(t, table.History())

	started, err := table.StartGame()
	require.NoError(t, err)
	drawn, err := table.DrawCard(game.Human)
	require.NoError(t, err)
	require.Equal(t, "Tina drew a card.", drawn.Message)

	history := table.History()
	require.Len(t, history, 2)
	require.Equal(t, "game "+started.GameID+" started, first card "+started.DiscardPile[0].String(), history[0])
	require.Equal(t, "Tina drew a card, 8 in hand", history[1])
	require.Len(t, events.ReceivedPayloads(), 2)

	restarted, err := table.StartGame()
	require.NoError(t, err)
	require.Equal(t, []string{"game " + restarted.GameID + " started, first card " + restarted.DiscardPile[0].String()}, table.History())
}

func TestHistoryKeepsTheLatestMoves(t *testing.T) {
	table := newTable(9, time.Millisecond)
	defer table.Close()
	_, err := table.StartGame()
	require.NoError(t, err)

	for i := 0; i < consts.HistorySize; i++ {
		if table.Snapshot().Status == game.GameOver {
			break
		}
		passTurn(t, table)
		require.Eventually(t, func() bool {
			return humanCanAct(table.Snapshot())
		}, time.Second, time.Millisecond)
	}
	require.LessOrEqual(t, len(table.History()), consts.HistorySize)
	require.NotContains(t, table.History()[0], "started")
}
