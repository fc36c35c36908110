package scheduler_test

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/rank"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/player"
	"github.com/ratel-online/eights/eights/scheduler"
	"github.com/stretchr/testify/require"
)

const delay = 10 * time.Millisecond

func computerTurn(version uint64) game.State {
	return game.State{
		GameID:  "game",
		Version: version,
		Status:  game.Playing,
		Turn:    game.Computer,
	}
}

func TestObserve(t *testing.T) {
	t.Run("fires_once_for_a_computer_turn", func(t *testing.T) {
		s := scheduler.New(delay)
		var fired int32
		var firedKey atomic.Value

		require.True(t, s.Observe(computerTurn(3), func(key scheduler.Key) {
			atomic.AddInt32(&fired, 1)
			firedKey.Store(key)
		}))

		require.Eventually(t, func() bool { return atomic.LoadInt32(&fired) == 1 }, time.Second, time.Millisecond)
		require.Equal(t, scheduler.Key{GameID: "game", Version: 3}, firedKey.Load())
	})

	t.Run("does_not_double_fire_for_the_same_state", func(t *testing.T) {
		s := scheduler.New(delay)
		var fired int32
		fire := func(scheduler.Key) { atomic.AddInt32(&fired, 1) }

		require.True(t, s.Observe(computerTurn(3), fire))
		require.False(t, s.Observe(computerTurn(3), fire))
		require.False(t, s.Observe(computerTurn(3), fire))

		time.Sleep(10 * delay)
		require.Equal(t, int32(1), atomic.LoadInt32(&fired))
	})

	t.Run("ignores_states_not_waiting_on_the_computer", func(t *testing.T) {
		s := scheduler.New(delay)
		fire := func(scheduler.Key) { t.Fatal("unexpected fire") }

		require.False(t, s.Observe(game.State{Status: game.Playing, Turn: game.Human}, fire))
		require.False(t, s.Observe(game.State{Status: game.ChoosingSuit, Turn: game.Human}, fire))
		require.False(t, s.Observe(game.State{Status: game.GameOver, Turn: game.Computer}, fire))
		time.Sleep(5 * delay)
	})

	t.Run("a_new_state_replaces_the_pending_move", func(t *testing.T) {
		s := scheduler.New(5 * delay)
		var keys []scheduler.Key
		done := make(chan scheduler.Key, 2)
		fire := func(key scheduler.Key) { done <- key }

		require.True(t, s.Observe(computerTurn(3), fire))
		require.True(t, s.Observe(computerTurn(4), fire))

		select {
		case key := <-done:
			keys = append(keys, key)
		case <-time.After(time.Second):
			t.Fatal("move never fired")
		}
		time.Sleep(10 * delay)
		require.Equal(t, []scheduler.Key{{GameID: "game", Version: 4}}, keys)
		require.Empty(t, done)
	})

	t.Run("a_human_turn_cancels_the_pending_move", func(t *testing.T) {
		s := scheduler.New(5 * delay)
		var fired int32

		require.True(t, s.Observe(computerTurn(3), func(scheduler.Key) { atomic.AddInt32(&fired, 1) }))
		require.False(t, s.Observe(game.State{GameID: "other", Status: game.Playing, Turn: game.Human}, nil))

		time.Sleep(10 * delay)
		require.Equal(t, int32(0), atomic.LoadInt32(&fired))
		_, armed := s.Pending()
		require.False(t, armed)
	})
}

func TestCancel(t *testing.T) {
	s := scheduler.New(5 * delay)
	var fired int32
	s.Observe(computerTurn(1), func(scheduler.Key) { atomic.AddInt32(&fired, 1) })
	s.Cancel()

	time.Sleep(10 * delay)
	require.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestDone(t *testing.T) {
	s := scheduler.New(time.Hour)
	s.Observe(computerTurn(1), func(scheduler.Key) {})

	key, armed := s.Pending()
	require.True(t, armed)
	require.False(t, s.Done(scheduler.Key{GameID: "game", Version: 2}))
	require.True(t, s.Done(key))
	require.False(t, s.Done(key))
}

func TestDecide(t *testing.T) {
	computer := player.NewComputerPlayer()

	t.Run("plays_first_playable_card", func(t *testing.T) {
		state := game.State{
			ComputerHand: []card.Card{
				card.New(suit.Spades, rank.Two),
				card.New(suit.Diamonds, rank.King),
				card.New(suit.Diamonds, rank.Three),
			},
			CurrentSuit: suit.Diamonds,
			CurrentRank: rank.Four,
		}
		move := scheduler.Decide(computer, state)
		require.False(t, move.Draw)
		require.Equal(t, card.New(suit.Diamonds, rank.King), move.Card)
		require.Equal(t, "play K of diamonds", move.String())
	})

	t.Run("draws_without_a_playable_card", func(t *testing.T) {
		state := game.State{
			ComputerHand: []card.Card{card.New(suit.Spades, rank.Two)},
			CurrentSuit:  suit.Diamonds,
			CurrentRank:  rank.Four,
		}
		move := scheduler.Decide(computer, state)
		require.True(t, move.Draw)
		require.Equal(t, "draw", move.String())
	})
}

func TestApply(t *testing.T) {
	g := game.New(game.Options{Rand: rand.New(rand.NewSource(5))})
	g.Start()
	state := g.State()

	for _, c := range state.PlayerHand {
		if game.Playable(c, state.CurrentSuit, state.CurrentRank) {
			require.NoError(t, g.Play(c, game.Human))
			break
		}
	}
	if g.State().Status == game.ChoosingSuit {
		require.NoError(t, g.ChooseSuit(suit.Hearts))
	}
	if g.State().Turn != game.Computer {
		require.NoError(t, g.Draw(game.Human))
	}
	require.True(t, g.State().AwaitsComputer())

	before := g.State()
	move, err := scheduler.Apply(g, player.NewComputerPlayer())
	require.NoError(t, err)

	after := g.State()
	require.Greater(t, after.Version, before.Version)
	if move.Draw {
		require.Len(t, after.ComputerHand, len(before.ComputerHand)+1)
	} else {
		require.NotContains(t, after.ComputerHand, move.Card)
		top, _ := after.TopCard()
		require.Equal(t, move.Card, top)
	}
}

func TestFiredPositionIsNotArmedAgain(t *testing.T) {
	s := scheduler.New(time.Hour)
	state := computerTurn(1)
	require.True(t, s.Observe(state, func(scheduler.Key) {}))
	require.True(t, s.Done(scheduler.KeyOf(state)))

	require.False(t, s.Observe(state, func(scheduler.Key) {}))
	require.True(t, s.Observe(computerTurn(2), func(scheduler.Key) {}))
	s.Cancel()
}
