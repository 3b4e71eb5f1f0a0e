package event

import (
	"testing"

	"github.com/mveld/canvasforge/internal/engine/object"
)

func TestSubscribeReceivesMatchingType(t *testing.T) {
	b := NewBus()

	var got []Event
	b.Subscribe(TypeObjectAdded, func(ev Event) {
		got = append(got, ev)
	})

	b.Publish(Event{Type: TypeObjectAdded, IDs: []object.ID{1}, Version: 1})
	b.Publish(Event{Type: TypeObjectDeleted, IDs: []object.ID{1}, Version: 2})

	if len(got) != 1 {
		t.Fatalf("handler called %d times, want 1", len(got))
	}
	if got[0].Type != TypeObjectAdded || got[0].Version != 1 {
		t.Errorf("event = %+v", got[0])
	}
	if got[0].Timestamp.IsZero() {
		t.Error("event not timestamped")
	}
}

func TestSubscribeAllReceivesEverything(t *testing.T) {
	b := NewBus()

	count := 0
	b.SubscribeAll(func(Event) { count++ })

	b.Publish(Event{Type: TypeObjectAdded})
	b.Publish(Event{Type: TypeObjectMoved})
	b.Publish(Event{Type: TypeViewportChanged})

	if count != 3 {
		t.Errorf("handler called %d times, want 3", count)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()

	count := 0
	sub := b.SubscribeAll(func(Event) { count++ })

	b.Publish(Event{Type: TypeObjectAdded})
	b.Unsubscribe(sub)
	b.Publish(Event{Type: TypeObjectAdded})

	if count != 1 {
		t.Errorf("handler called %d times, want 1", count)
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount() = %d, want 0", b.SubscriberCount())
	}

	// Unknown ids are a no-op.
	b.Unsubscribe(Subscription(99))
}

func TestDeliveryOrderFollowsSubscription(t *testing.T) {
	b := NewBus()

	var order []int
	b.SubscribeAll(func(Event) { order = append(order, 1) })
	b.SubscribeAll(func(Event) { order = append(order, 2) })
	b.SubscribeAll(func(Event) { order = append(order, 3) })

	b.Publish(Event{Type: TypeObjectAdded})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("delivery order = %v, want [1 2 3]", order)
	}
}

func TestPanickingHandlerIsIsolated(t *testing.T) {
	b := NewBus()

	called := false
	b.SubscribeAll(func(Event) { panic("handler bug") })
	b.SubscribeAll(func(Event) { called = true })

	b.Publish(Event{Type: TypeObjectAdded})

	if !called {
		t.Error("handler after panicking one was not called")
	}
}

func TestTypeString(t *testing.T) {
	if TypeObjectMoved.String() != "object.moved" {
		t.Errorf("String() = %q", TypeObjectMoved.String())
	}
	if Type(200).String() != "unknown" {
		t.Errorf("String() for invalid type = %q", Type(200).String())
	}
}
