package event

type ActionRejectedPayload struct {
	PlayerName string
	Reason     string
}

type ActionRejectedListener interface {
	OnActionRejected(ActionRejectedPayload)
}

type actionRejectedEmitter struct {
	listeners []ActionRejectedListener
}

func (e *actionRejectedEmitter) AddListener(listener ActionRejectedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *actionRejectedEmitter) Emit(payload ActionRejectedPayload) {
	for _, listener := range e.listeners {
		listener.OnActionRejected(payload)
	}
}
