package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/card"
	"github.com/ratel-online/eights/eights/card/suit"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/eights/msg"
	"github.com/ratel-online/eights/eights/player"
	"github.com/ratel-online/eights/eights/scheduler"
)

// Listener receives a snapshot after every accepted transition or rejection.
// It runs while the table is locked and must not call back into the table.
type Listener interface {
	OnStateChanged(state game.State)
}

type ListenerFunc func(state game.State)

func (f ListenerFunc) OnStateChanged(state game.State) {
	f(state)
}

type TableOptions struct {
	PlayerName    string
	ComputerDelay time.Duration
	Rand          *rand.Rand
	Catalog       card.Catalog
	Computer      game.Player
}

// Table owns one game and serializes every change to it: human intents and the
// computer's scheduled moves alike.
type Table struct {
	sync.Mutex
	ID         int64
	game       *game.Game
	computer   game.Player
	scheduler  *scheduler.Scheduler
	listeners  []Listener
	history    *eventLog
	sessions   int
	closed     bool
	lastActive time.Time
}

func NewTable(id int64, options TableOptions) *Table {
	computer := options.Computer
	if computer == nil {
		computer = player.NewComputerPlayer()
	}
	playerName := options.PlayerName
	if playerName == "" {
		playerName = msg.HumanName
	}
	t := &Table{
		ID: id,
		game: game.New(game.Options{
			Rand:       options.Rand,
			Catalog:    options.Catalog,
			PlayerName: playerName,
		}),
		computer:   computer,
		scheduler:  scheduler.New(options.ComputerDelay),
		history:    newEventLog(id, playerName, consts.HistorySize),
		lastActive: time.Now(),
	}
	t.game.Events().AddListener(t.history)
	return t
}

// AddEventListener subscribes listener to every game event whose listener
// interface it implements. Events are delivered under the table lock.
func (t *Table) AddEventListener(listener interface{}) {
	t.Lock()
	defer t.Unlock()
	t.game.Events().AddListener(listener)
}

// History returns the most recent moves of the current game, oldest first.
func (t *Table) History() []string {
	t.Lock()
	defer t.Unlock()
	return t.history.History()
}

// Join marks a session as attached. Tables with a session are never swept as idle.
func (t *Table) Join() {
	t.Lock()
	defer t.Unlock()
	t.sessions++
	t.lastActive = time.Now()
}

func (t *Table) Leave() {
	t.Lock()
	defer t.Unlock()
	if t.sessions > 0 {
		t.sessions--
	}
	t.lastActive = time.Now()
}

// Abandoned reports whether the table is closed, or has no session and saw no
// intent for longer than maxIdle.
func (t *Table) Abandoned(maxIdle time.Duration) bool {
	t.Lock()
	defer t.Unlock()
	return t.closed || (t.sessions == 0 && time.Since(t.lastActive) > maxIdle)
}

func (t *Table) Subscribe(listener Listener) {
	t.Lock()
	defer t.Unlock()
	t.listeners = append(t.listeners, listener)
}

func (t *Table) Snapshot() game.State {
	t.Lock()
	defer t.Unlock()
	return t.game.State()
}

func (t *Table) LastActive() time.Time {
	t.Lock()
	defer t.Unlock()
	return t.lastActive
}

func (t *Table) Closed() bool {
	t.Lock()
	defer t.Unlock()
	return t.closed
}

// StartGame deals a new match, dropping any computer move still pending for the old one.
func (t *Table) StartGame() (game.State, error) {
	t.Lock()
	defer t.Unlock()
	if t.closed {
		return t.game.State(), consts.ErrorsTableClosed
	}
	t.lastActive = time.Now()
	t.scheduler.Cancel()
	t.game.Start()
	log.Infof("table %d started game %s\n", t.ID, t.game.ID())
	return t.commit(), nil
}

func (t *Table) DrawCard(actor game.Side) (game.State, error) {
	t.Lock()
	defer t.Unlock()
	if t.closed {
		return t.game.State(), consts.ErrorsTableClosed
	}
	t.lastActive = time.Now()
	return t.settle(t.game.Draw(actor))
}

func (t *Table) PlayCard(cardID string, actor game.Side) (game.State, error) {
	t.Lock()
	defer t.Unlock()
	if t.closed {
		return t.game.State(), consts.ErrorsTableClosed
	}
	t.lastActive = time.Now()
	state := t.game.State()
	for _, c := range state.Hand(actor) {
		if c.ID == cardID {
			return t.settle(t.game.Play(c, actor))
		}
	}
	return state, consts.ErrorsUnknownCard
}

func (t *Table) ChooseSuit(s suit.Suit) (game.State, error) {
	t.Lock()
	defer t.Unlock()
	if t.closed {
		return t.game.State(), consts.ErrorsTableClosed
	}
	t.lastActive = time.Now()
	return t.settle(t.game.ChooseSuit(s))
}

func (t *Table) Close() {
	t.Lock()
	defer t.Unlock()
	t.closed = true
	t.scheduler.Cancel()
}

func (t *Table) settle(err error) (game.State, error) {
	if err != nil && !consts.IsRejection(err) {
		log.Errorf("table %d refused intent: %v\n", t.ID, err)
		return t.game.State(), err
	}
	return t.commit(), err
}

func (t *Table) commit() game.State {
	state := t.game.State()
	t.lastActive = time.Now()
	for _, listener := range t.listeners {
		listener.OnStateChanged(state)
	}
	t.scheduler.Observe(state, t.playComputer)
	return state
}

func (t *Table) playComputer(key scheduler.Key) {
	t.Lock()
	defer t.Unlock()
	if t.closed || !t.scheduler.Done(key) || scheduler.KeyOf(t.game.State()) != key {
		log.Infof("table %d dropped stale computer move for game %s version %d\n", t.ID, key.GameID, key.Version)
		return
	}
	move, err := scheduler.Apply(t.game, t.computer)
	if err != nil && !consts.IsRejection(err) {
		log.Errorf("table %d computer move %s failed: %v\n", t.ID, move, err)
		return
	}
	log.Infof("table %d computer: %s\n", t.ID, move)
	t.commit()
}
