package ui

import (
	"strconv"
	"strings"

	"github.com/ratel-online/eights/consts"
	"github.com/ratel-online/eights/eights/card/suit"
)

type CommandKind string

const (
	CommandStart   CommandKind = "start"
	CommandDraw    CommandKind = "draw"
	CommandPlay    CommandKind = "play"
	CommandSuit    CommandKind = "suit"
	CommandHistory CommandKind = "history"
	CommandHelp    CommandKind = "help"
	CommandQuit    CommandKind = "quit"
)

type Command struct {
	Kind  CommandKind
	Index int
	Suit  suit.Suit
}

var aliases = map[string]CommandKind{
	"start":   CommandStart,
	"restart": CommandStart,
	"r":       CommandStart,
	"draw":    CommandDraw,
	"d":       CommandDraw,
	"play":    CommandPlay,
	"p":       CommandPlay,
	"suit":    CommandSuit,
	"s":       CommandSuit,
	"history": CommandHistory,
	"moves":   CommandHistory,
	"help":    CommandHelp,
	"h":       CommandHelp,
	"quit":    CommandQuit,
	"q":       CommandQuit,
	"exit":    CommandQuit,
}

// ParseCommand reads one input line. A bare number is shorthand for play.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{}, consts.ErrorsInputInvalid
	}
	if index, err := strconv.Atoi(fields[0]); err == nil && len(fields) == 1 {
		return playCommand(index)
	}
	kind, ok := aliases[fields[0]]
	if !ok {
		return Command{}, consts.ErrorsInputInvalid
	}
	args := fields[1:]
	switch kind {
	case CommandPlay:
		if len(args) != 1 {
			return Command{}, consts.ErrorsInputInvalid
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, consts.ErrorsInputInvalid
		}
		return playCommand(index)
	case CommandSuit:
		if len(args) != 1 {
			return Command{}, consts.ErrorsInputInvalid
		}
		s, err := suit.ByName(args[0])
		if err != nil {
			return Command{}, consts.ErrorsInputInvalid
		}
		return Command{Kind: kind, Suit: s}, nil
	}
	if len(args) != 0 {
		return Command{}, consts.ErrorsInputInvalid
	}
	return Command{Kind: kind}, nil
}

func playCommand(index int) (Command, error) {
	if index < 1 {
		return Command{}, consts.ErrorsInputInvalid
	}
	return Command{Kind: CommandPlay, Index: index}, nil
}
