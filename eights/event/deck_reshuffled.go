package event

type DeckReshuffledPayload struct {
	DeckSize int
}

type DeckReshuffledListener interface {
	OnDeckReshuffled(DeckReshuffledPayload)
}

type deckReshuffledEmitter struct {
	listeners []DeckReshuffledListener
}

func (e *deckReshuffledEmitter) AddListener(listener DeckReshuffledListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *deckReshuffledEmitter) Emit(payload DeckReshuffledPayload) {
	for _, listener := range e.listeners {
		listener.OnDeckReshuffled(payload)
	}
}
