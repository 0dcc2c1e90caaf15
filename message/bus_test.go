package message

import (
	"testing"

	"github.com/logiksim/circuitcore/vocab"
)

func TestBusDeliversInOrderToEverySubscriber(t *testing.T) {
	b := NewBus()
	r1 := NewRecorder()
	r2 := NewRecorder()
	b.Subscribe(r1)
	b.Subscribe(r2)

	b.Publish(
		LogicItemCreated{ID: 1},
		LogicItemInserted{ID: 1, Data: ElementCalculationData{Position: vocab.Point{X: 1, Y: 2}}},
	)

	for _, r := range []*Recorder{r1, r2} {
		if r.Len() != 2 {
			t.Fatalf("expected 2 messages delivered, got %d", r.Len())
		}
		if _, ok := r.Messages()[0].(LogicItemCreated); !ok {
			t.Fatalf("expected first message to be LogicItemCreated, got %T", r.Messages()[0])
		}
		if _, ok := r.Messages()[1].(LogicItemInserted); !ok {
			t.Fatalf("expected second message to be LogicItemInserted, got %T", r.Messages()[1])
		}
	}
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	b := NewBus()
	r := NewRecorder()
	b.Subscribe(r)
	b.Publish(LogicItemCreated{ID: 1})
	b.Unsubscribe(r)
	b.Publish(LogicItemDeleted{ID: 1})

	if r.Len() != 1 {
		t.Fatalf("expected unsubscribed recorder to stop receiving messages, got %d", r.Len())
	}
}

type reentrantSubscriber struct {
	bus *Bus
}

func (s reentrantSubscriber) HandleMessage(Message) {
	s.bus.Publish(LogicItemCreated{ID: 1})
}

func TestBusPanicsOnReentrantPublish(t *testing.T) {
	b := NewBus()
	b.Subscribe(reentrantSubscriber{bus: b})

	defer func() {
		if recover() == nil {
			t.Fatalf("expected re-entrant Publish to panic")
		}
	}()
	b.Publish(LogicItemCreated{ID: 1})
}
