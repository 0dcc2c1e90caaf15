package message

import (
	"context"
	"log/slog"
)

//go:generate mockgen -write_package_comment=false -package=message -destination=mock_subscriber_test.go github.com/logiksim/circuitcore/message Subscriber

// Subscriber receives layout messages in publication order. Implementations
// must exhaustively switch over the concrete Message variants they care
// about; unrecognised variants should be ignored rather than treated as an
// error, since new variants are only ever added inside this package.
type Subscriber interface {
	HandleMessage(Message)
}

// Bus is an ordered, synchronous publish-subscribe broadcaster, adapted from
// the teacher's Hookable/HookPos/HookCtx pattern (core/port.go) by
// collapsing its per-port hook list and HookCtx domain payload into a single
// aggregate-wide subscriber list carrying Message values directly. Unlike
// Hookable it has no notion of simulation time: delivery happens
// immediately and synchronously inside Publish, matching spec.md §5's
// single-threaded, no-suspension-point core.
type Bus struct {
	subscribers []Subscriber
	delivering  bool
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers s to receive every message published from this point
// on, in the order subscribers were added.
func (b *Bus) Subscribe(s Subscriber) {
	b.subscribers = append(b.subscribers, s)
}

// Unsubscribe removes s. It is a no-op if s was never subscribed.
func (b *Bus) Unsubscribe(s Subscriber) {
	for i, sub := range b.subscribers {
		if sub == s {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers each message, in argument order, to every subscriber, in
// subscription order, before returning. Publish must not be called
// re-entrantly from inside a subscriber's HandleMessage; doing so panics,
// matching spec.md §5's prohibition on suspension points inside message
// delivery.
func (b *Bus) Publish(msgs ...Message) {
	if b.delivering {
		panic("message: Publish called re-entrantly from inside a subscriber")
	}
	b.delivering = true
	defer func() { b.delivering = false }()

	for _, m := range msgs {
		slog.Log(context.Background(), LevelTrace, "publish", "message", m)
		for _, s := range b.subscribers {
			s.HandleMessage(m)
		}
	}
}

// LevelTrace is a custom slog level below Debug, mirroring the teacher's
// core.LevelTrace, used to log every individual message published on the
// bus without drowning out ordinary debug logging.
const LevelTrace = slog.Level(-8)
