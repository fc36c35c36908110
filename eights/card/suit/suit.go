package suit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

var symbols = map[Suit]string{
	Hearts:   "♥",
	Diamonds: "♦",
	Clubs:    "♣",
	Spades:   "♠",
}

var (
	red   = color.New(color.FgHiRed).SprintfFunc()
	black = color.New(color.FgHiWhite).SprintfFunc()
)

var Stdout io.Writer = color.Output

// All returns the suits in canonical order.
func All() []Suit {
	return []Suit{Hearts, Diamonds, Clubs, Spades}
}

func (s Suit) Symbol() string {
	return symbols[s]
}

func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) Paint(text string) string {
	return s.Paintf("%s", text)
}

func (s Suit) Paintf(format string, args ...interface{}) string {
	if s.Red() {
		return red(format, args...)
	}
	return black(format, args...)
}

func (s Suit) Valid() bool {
	_, ok := symbols[s]
	return ok
}

func (s Suit) String() string {
	return string(s)
}

// ByName accepts a suit name or its symbol.
func ByName(name string) (Suit, error) {
	for _, s := range All() {
		if string(s) == name || s.Symbol() == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid suit '%s'", name)
}

// DisableColor turns painting off, e.g. when output is not a terminal.
func DisableColor() {
	color.NoColor = true
}
