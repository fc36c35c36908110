package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/game"
)

// Key identifies the exact position a computer move was scheduled for.
type Key struct {
	GameID  string
	Version uint64
}

func KeyOf(state game.State) Key {
	return Key{GameID: state.GameID, Version: state.Version}
}

// Scheduler holds at most one pending computer move.
type Scheduler struct {
	sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending Key
	armed   bool
	fired   Key
}

func New(delay time.Duration) *Scheduler {
	return &Scheduler{delay: delay}
}

// Observe arms a move when state waits on the computer and drops any pending
// move that no longer matches. A position whose move already fired is never
// armed again. fire runs on its own goroutine once the delay elapses and must
// re-check the key against the live game. Reports whether a timer was armed.
func (s *Scheduler) Observe(state game.State, fire func(Key)) bool {
	s.Lock()
	defer s.Unlock()
	if !state.AwaitsComputer() {
		s.stop()
		return false
	}
	key := KeyOf(state)
	if (s.armed && s.pending == key) || s.fired == key {
		return false
	}
	s.stop()
	s.pending = key
	s.armed = true
	s.timer = time.AfterFunc(s.delay, func() {
		fire(key)
	})
	log.Infof("computer move scheduled, game %s version %d\n", key.GameID, key.Version)
	return true
}

// Done consumes key. It returns false when key was cancelled or replaced meanwhile.
func (s *Scheduler) Done(key Key) bool {
	s.Lock()
	defer s.Unlock()
	if !s.armed || s.pending != key {
		return false
	}
	s.armed = false
	s.timer = nil
	s.fired = key
	return true
}

func (s *Scheduler) Cancel() {
	s.Lock()
	defer s.Unlock()
	s.stop()
}

func (s *Scheduler) Pending() (Key, bool) {
	s.Lock()
	defer s.Unlock()
	return s.pending, s.armed
}

func (s *Scheduler) stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.armed = false
	s.pending = Key{}
}

type Move struct {
	Draw bool
	Card card.Card
}

func (m Move) String() string {
	if m.Draw {
		return "draw"
	}
	return fmt.Sprintf("play %s", m.Card)
}

// Decide scans the computer's hand for playable cards; with none it draws.
func Decide(computer game.Player, state game.State) Move {
	playableCards := game.PlayableCards(state.ComputerHand, state.CurrentSuit, state.CurrentRank)
	if len(playableCards) == 0 {
		return Move{Draw: true}
	}
	return Move{Card: computer.Play(playableCards, state)}
}

// Apply makes the computer's move through the same calls a person would use.
func Apply(g *game.Game, computer game.Player) (Move, error) {
	move := Decide(computer, g.State())
	if move.Draw {
		return move, g.Draw(game.Computer)
	}
	return move, g.Play(move.Card, game.Computer)
}
