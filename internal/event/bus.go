package event

import "time"

// Handler receives published events.
type Handler func(Event)

// Subscription identifies one registered handler so it can be removed.
type Subscription uint64

// Bus delivers canvas change events to subscribers synchronously and
// in subscription order. Delivery happens on the publisher's call
// stack; the engine is single-owner, so there is no queueing or
// locking. A panicking handler is isolated so the remaining handlers
// still run.
type Bus struct {
	subs   []subscriber
	nextID Subscription
}

type subscriber struct {
	id      Subscription
	typ     Type // 0 matches every type
	handler Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{nextID: 1}
}

// Subscribe registers handler for one event type and returns its
// subscription id.
func (b *Bus) Subscribe(typ Type, handler Handler) Subscription {
	return b.add(typ, handler)
}

// SubscribeAll registers handler for every event type.
func (b *Bus) SubscribeAll(handler Handler) Subscription {
	return b.add(0, handler)
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (b *Bus) Unsubscribe(id Subscription) {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish stamps the event and delivers it to matching subscribers.
func (b *Bus) Publish(ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	for _, s := range b.subs {
		if s.typ != 0 && s.typ != ev.Type {
			continue
		}
		b.deliver(s.handler, ev)
	}
}

// SubscriberCount returns the number of registered handlers.
func (b *Bus) SubscriberCount() int {
	return len(b.subs)
}

func (b *Bus) add(typ Type, handler Handler) Subscription {
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, typ: typ, handler: handler})
	return id
}

func (b *Bus) deliver(h Handler, ev Event) {
	defer func() {
		_ = recover()
	}()
	h(ev)
}
