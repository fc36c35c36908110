package consts

import (
	"time"
)

const (
	DeckSize = 52
	HandSize = 7

	// HistorySize is how many recent moves a table remembers.
	HistorySize = 10

	ComputerMoveDelay = 1500 * time.Millisecond
	TableIdleTimeout  = 30 * time.Minute
	SweepInterval     = 1 * time.Minute
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// Rule rejections carry code 1 and also land in the game message.
// Contract violations carry code 2 and leave the game untouched.
var (
	ErrorsIllegalPlay     = NewErr(1, false, "Card does not match the active suit or rank. ")
	ErrorsNoCardsLeft     = NewErr(1, false, "No cards left to draw. ")
	ErrorsCardNotInHand   = NewErr(2, false, "Card is not in hand. ")
	ErrorsNotYourTurn     = NewErr(2, false, "Not your turn. ")
	ErrorsGameNotPlaying  = NewErr(2, false, "Game is not in play. ")
	ErrorsNotChoosingSuit = NewErr(2, false, "No suit to choose. ")
	ErrorsUnknownCard     = NewErr(2, false, "Unknown card. ")
	ErrorsUnknownSuit     = NewErr(2, false, "Unknown suit. ")
	ErrorsUnknownSide     = NewErr(2, false, "Unknown side. ")
	ErrorsTableClosed     = NewErr(2, true, "Table closed. ")
	ErrorsInputInvalid    = NewErr(3, false, "Input invalid. ")
)

// IsRejection reports whether err is a rule rejection rather than a contract violation.
func IsRejection(err error) bool {
	e, ok := err.(Error)
	return ok && e.Code == 1
}
