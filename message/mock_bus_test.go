package message

import (
	"testing"

	gomock "github.com/golang/mock/gomock"

	"github.com/logiksim/circuitcore/vocab"
)

func TestBusDeliversToMockSubscriberInPublishOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub := NewMockSubscriber(ctrl)

	created := LogicItemCreated{ID: 1}
	inserted := LogicItemInserted{ID: 1, Data: ElementCalculationData{Position: vocab.Point{X: 1, Y: 2}}}

	gomock.InOrder(
		sub.EXPECT().HandleMessage(created),
		sub.EXPECT().HandleMessage(inserted),
	)

	b := NewBus()
	b.Subscribe(sub)
	b.Publish(created, inserted)
}

func TestBusDeliversToMockSubscriberAlongsideOtherSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	sub := NewMockSubscriber(ctrl)
	rec := NewRecorder()

	msg := LogicItemDeleted{ID: 7}
	sub.EXPECT().HandleMessage(msg)

	b := NewBus()
	b.Subscribe(rec)
	b.Subscribe(sub)
	b.Publish(msg)

	if rec.Len() != 1 {
		t.Fatalf("expected the plain recorder to also observe the message, got %d", rec.Len())
	}
}
