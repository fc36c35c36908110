package event

import "github.com/ratel-online/eights/eights/card/suit"

type SuitChosenPayload struct {
	PlayerName string
	Suit       suit.Suit
}

type SuitChosenListener interface {
	OnSuitChosen(SuitChosenPayload)
}

type suitChosenEmitter struct {
	listeners []SuitChosenListener
}

func (e *suitChosenEmitter) AddListener(listener SuitChosenListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *suitChosenEmitter) Emit(payload SuitChosenPayload) {
	for _, listener := range e.listeners {
		listener.OnSuitChosen(payload)
	}
}
