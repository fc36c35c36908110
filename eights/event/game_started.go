package event

import "github.com/ratel-online/eights/eights/card"

type GameStartedPayload struct {
	GameID    string
	FirstCard card.Card
}

type GameStartedListener interface {
	OnGameStarted(GameStartedPayload)
}

type gameStartedEmitter struct {
	listeners []GameStartedListener
}

func (e *gameStartedEmitter) AddListener(listener GameStartedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *gameStartedEmitter) Emit(payload GameStartedPayload) {
	for _, listener := range e.listeners {
		listener.OnGameStarted(payload)
	}
}
