package ui

import (
	"bufio"
	"io"
	"strings"
	"sync"

	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/game"
	"github.com/ratel-online/eights/render"
	"github.com/ratel-online/eights/service"
)

// Terminal redraws the board on every state change.
type Terminal struct {
	sync.Mutex
	out        io.Writer
	playerName string
}

func NewTerminal(out io.Writer, playerName string) *Terminal {
	return &Terminal{out: out, playerName: playerName}
}

func (t *Terminal) OnStateChanged(state game.State) {
	t.Lock()
	defer t.Unlock()
	Println(t.out, Board(state, t.playerName))
}

// JSONWriter prints one JSON snapshot per line.
type JSONWriter struct {
	sync.Mutex
	out io.Writer
}

func NewJSONWriter(out io.Writer) *JSONWriter {
	return &JSONWriter{out: out}
}

func (w *JSONWriter) OnStateChanged(state game.State) {
	w.Lock()
	defer w.Unlock()
	Println(w.out, render.JSON(state))
}

// Run feeds commands read from in to the table until quit, end of input or the
// table closes. The table counts as attached while Run is active.
func Run(table *service.Table, in io.Reader, out io.Writer) error {
	table.Join()
	defer table.Leave()

	done := make(chan struct{})
	defer close(done)
	lines := make(chan string)
	async.Async(func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	})
	for line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		command, err := ParseCommand(line)
		if err != nil {
			Printfln(out, "%s Type 'help' for commands.", err)
			continue
		}
		quit, err := Execute(table, command, out)
		if quit {
			return nil
		}
		if err != nil {
			if e, ok := err.(consts.Error); ok && e.Exit {
				return err
			}
			// Rejections already reach the player through the state message.
			if !consts.IsRejection(err) {
				Println(out, err)
			}
		}
	}
	return nil
}

// Execute maps a command to a table intent on behalf of the human player.
func Execute(table *service.Table, command Command, out io.Writer) (bool, error) {
	var err error
	switch command.Kind {
	case CommandStart:
		_, err = table.StartGame()
	case CommandDraw:
		_, err = table.DrawCard(game.Human)
	case CommandPlay:
		hand := table.Snapshot().PlayerHand
		if command.Index < 1 || command.Index > len(hand) {
			return false, consts.ErrorsInputInvalid
		}
		_, err = table.PlayCard(hand[command.Index-1].ID, game.Human)
	case CommandSuit:
		_, err = table.ChooseSuit(command.Suit)
	case CommandHistory:
		history := table.History()
		if len(history) == 0 {
			Println(out, "No moves yet.")
		} else {
			Printlns(out, history)
		}
	case CommandHelp:
		Println(out, render.Help())
	case CommandQuit:
		return true, nil
	default:
		err = consts.ErrorsInputInvalid
	}
	return false, err
}
