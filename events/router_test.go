package events

import "testing"

type recordHandler struct {
	name  string
	types []EventType
	log   *[]string
	seen  []GameEvent
}

func (h *recordHandler) EventTypes() []EventType { return h.types }

func (h *recordHandler) HandleEvent(ctx *int, ev GameEvent) {
	*ctx++
	h.seen = append(h.seen, ev)
	*h.log = append(*h.log, h.name+":"+ev.Type.String())
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	var log []string
	r.Register(&recordHandler{name: "a", types: []EventType{EventPaddleHit, EventBallMissed}, log: &log})
	r.Register(&recordHandler{name: "b", types: []EventType{EventPaddleHit}, log: &log})

	q.Push(GameEvent{Type: EventPaddleHit})
	q.Push(GameEvent{Type: EventWallBounce})
	q.Push(GameEvent{Type: EventBallMissed})

	calls := 0
	if n := r.DispatchAll(&calls); n != 3 {
		t.Errorf("Expected 3 events consumed, got %d", n)
	}

	want := []string{"a:paddle_hit", "b:paddle_hit", "a:ball_missed"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Call %d: expected %s, got %s", i, want[i], log[i])
		}
	}
	if calls != 3 {
		t.Errorf("Expected context seen 3 times, got %d", calls)
	}

	if n := r.DispatchAll(&calls); n != 0 {
		t.Errorf("Expected empty dispatch, got %d", n)
	}
}

func TestRouterDeliversPayload(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*int](q)

	var log []string
	h := &recordHandler{name: "hits", types: []EventType{EventPaddleHit}, log: &log}
	r.Register(h)

	q.Push(GameEvent{Type: EventPaddleHit, Payload: &PaddleHitPayload{Ball: 2}, Tick: 7})
	q.Push(GameEvent{Type: EventWallBounce})

	calls := 0
	r.DispatchAll(&calls)

	if len(h.seen) != 1 {
		t.Fatalf("Expected 1 event delivered, got %d", len(h.seen))
	}
	if h.seen[0].Tick != 7 {
		t.Errorf("Expected tick 7, got %d", h.seen[0].Tick)
	}
	if p, ok := h.seen[0].Payload.(*PaddleHitPayload); !ok || p.Ball != 2 {
		t.Errorf("Expected paddle hit payload for ball 2, got %#v", h.seen[0].Payload)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventGameStarted.String() != "game_started" {
		t.Errorf("Expected game_started, got %s", EventGameStarted.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", EventType(99).String())
	}
}
