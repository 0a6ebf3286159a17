package event

type DummyListener struct {
	receivedPayloads []Payload
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]Payload, 0)}
}

func (l *DummyListener) ReceivedPayloads() []Payload {
	return l.receivedPayloads
}

// Types lists the received payload types in order.
func (l *DummyListener) Types() []Type {
	types := make([]Type, 0, len(l.receivedPayloads))
	for _, payload := range l.receivedPayloads {
		types = append(types, payload.Type)
	}
	return types
}

func (l *DummyListener) OnEvent(payload Payload) {
	l.receivedPayloads = append(l.receivedPayloads, payload)
}
