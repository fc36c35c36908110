package rank

import "fmt"

type Rank string

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Wild is the rank that can be played on anything.
const Wild = Eight

// All returns the ranks in canonical order.
func All() []Rank {
	return []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
}

func (r Rank) Valid() bool {
	for _, candidate := range All() {
		if candidate == r {
			return true
		}
	}
	return false
}

func (r Rank) String() string {
	return string(r)
}

func Parse(text string) (Rank, error) {
	r := Rank(text)
	if !r.Valid() {
		return "", fmt.Errorf("invalid rank '%s'", text)
	}
	return r, nil
}
