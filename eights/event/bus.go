package event

// Bus holds the emitters of a single game. Nothing here is shared between games.
type Bus struct {
	GameStarted    *gameStartedEmitter
	CardPlayed     *cardPlayedEmitter
	CardDrawn      *cardDrawnEmitter
	SuitChosen     *suitChosenEmitter
	DeckReshuffled *deckReshuffledEmitter
	ActionRejected *actionRejectedEmitter
	GameWon        *gameWonEmitter
}

func NewBus() *Bus {
	return &Bus{
		GameStarted:    &gameStartedEmitter{},
		CardPlayed:     &cardPlayedEmitter{},
		CardDrawn:      &cardDrawnEmitter{},
		SuitChosen:     &suitChosenEmitter{},
		DeckReshuffled: &deckReshuffledEmitter{},
		ActionRejected: &actionRejectedEmitter{},
		GameWon:        &gameWonEmitter{},
	}
}

// AddListener subscribes listener to every event whose listener interface it implements.
func (b *Bus) AddListener(listener interface{}) {
	if l, ok := listener.(GameStartedListener); ok {
		b.GameStarted.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardDrawnListener); ok {
		b.CardDrawn.AddListener(l)
	}
	if l, ok := listener.(SuitChosenListener); ok {
		b.SuitChosen.AddListener(l)
	}
	if l, ok := listener.(DeckReshuffledListener); ok {
		b.DeckReshuffled.AddListener(l)
	}
	if l, ok := listener.(ActionRejectedListener); ok {
		b.ActionRejected.AddListener(l)
	}
	if l, ok := listener.(GameWonListener); ok {
		b.GameWon.AddListener(l)
	}
}
