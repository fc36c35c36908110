package event

type CardDrawnPayload struct {
	PlayerName string
	HandSize   int
}

type CardDrawnListener interface {
	OnCardDrawn(CardDrawnPayload)
}

type cardDrawnEmitter struct {
	listeners []CardDrawnListener
}

func (e *cardDrawnEmitter) AddListener(listener CardDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardDrawnEmitter) Emit(payload CardDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardDrawn(payload)
	}
}
