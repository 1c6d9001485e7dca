package events

import "testing"

type recorder struct {
	types []EventType
	seen  []GameEvent
	push  func(ev GameEvent)
}

func (r *recorder) HandleEvent(ctx *EventQueue, ev GameEvent) {
	r.seen = append(r.seen, ev)
	if r.push != nil {
		r.push(ev)
	}
}

func (r *recorder) EventTypes() []EventType { return r.types }

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventEnemyArrived, Frame: 1})
	q.Push(GameEvent{Type: EventEnemyDefeated, Frame: 2})

	if q.Len() != 2 {
		t.Fatalf("Expected 2 pending events, got %d", q.Len())
	}

	got := q.Consume()
	if len(got) != 2 || got[0].Frame != 1 || got[1].Frame != 2 {
		t.Fatalf("Expected FIFO order, got %+v", got)
	}
	if q.Consume() != nil {
		t.Error("Expected nil after draining")
	}
}

func TestQueueClear(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventInputMiss})
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after Clear, got %d", q.Len())
	}
}

// TestRouterDispatchOrder verifies handlers run in registration order per event
func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*EventQueue](q)

	var order []string
	r.Register(HandlerFunc[*EventQueue]{
		Types: []EventType{EventEnemyDefeated},
		Fn:    func(_ *EventQueue, _ GameEvent) { order = append(order, "first") },
	})
	r.Register(HandlerFunc[*EventQueue]{
		Types: []EventType{EventEnemyDefeated, EventEnemyArrived},
		Fn:    func(_ *EventQueue, _ GameEvent) { order = append(order, "second") },
	})

	q.Push(GameEvent{Type: EventEnemyDefeated})
	if n := r.DispatchAll(q); n != 1 {
		t.Errorf("Expected 1 dispatched event, got %d", n)
	}

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Unexpected handler order: %v", order)
	}
	if !r.HasHandlers(EventEnemyArrived) || r.HasHandlers(EventStateChanged) {
		t.Error("HasHandlers reported wrong registrations")
	}
}

// TestRouterHandlerPushes verifies events pushed during dispatch are also delivered
func TestRouterHandlerPushes(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*EventQueue](q)

	arrived := &recorder{types: []EventType{EventEnemyArrived}}
	changed := &recorder{types: []EventType{EventStateChanged}}
	arrived.push = func(GameEvent) {
		q.Push(GameEvent{Type: EventStateChanged})
	}
	r.Register(arrived)
	r.Register(changed)

	q.Push(GameEvent{Type: EventEnemyArrived})
	q.Push(GameEvent{Type: EventEnemyArrived})

	if n := r.DispatchAll(q); n != 4 {
		t.Errorf("Expected 4 dispatched events, got %d", n)
	}
	if len(arrived.seen) != 2 || len(changed.seen) != 2 {
		t.Errorf("Expected 2 arrivals and 2 state changes, got %d and %d", len(arrived.seen), len(changed.seen))
	}
}

func TestEventTypeNames(t *testing.T) {
	if EventEnemyDefeated.String() != "enemy_defeated" {
		t.Errorf("Unexpected name %q", EventEnemyDefeated.String())
	}
	if EventType(99).String() != "unknown" {
		t.Error("Expected unknown for unregistered type")
	}
}
