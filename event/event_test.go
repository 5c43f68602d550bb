package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/diegetic/parameter"
)

func TestQueuePushConsumeFIFO(t *testing.T) {
	q := NewQueue()

	for i := 0; i < 5; i++ {
		q.Push(Event{Type: EventPointerInput, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("event %d: expected frame %d, got %d", i, i, ev.Frame)
		}
	}

	if got := q.Consume(); got != nil {
		t.Errorf("expected empty queue after consume, got %d events", len(got))
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewQueue()

	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventPointerInput, Frame: int64(i)})
	}

	events := q.Consume()
	if len(events) != parameter.EventQueueSize {
		t.Fatalf("expected %d events, got %d", parameter.EventQueueSize, len(events))
	}
	// Oldest events were overwritten
	if events[0].Frame != 10 {
		t.Errorf("expected oldest surviving frame 10, got %d", events[0].Frame)
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()

	const producers = 8
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Event{Type: EventPointerInput})
			}
		}()
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("expected %d events, got %d", producers*perProducer, got)
	}
}

type recordingHandler struct {
	seen []Event
}

func (h *recordingHandler) HandleEvent(ev Event) {
	h.seen = append(h.seen, ev)
}

func (h *recordingHandler) EventTypes() []EventType {
	return []EventType{EventPointerInput}
}

func TestRouterDispatch(t *testing.T) {
	q := NewQueue()
	r := NewRouter(q)

	first := &recordingHandler{}
	second := &recordingHandler{}
	r.Register(first)
	r.Register(second)

	if got := r.HandlerCount(EventPointerInput); got != 2 {
		t.Fatalf("expected 2 handlers, got %d", got)
	}

	q.Push(Event{Type: EventPointerInput, Frame: 1})
	q.Push(Event{Type: EventPointerInput, Frame: 2})
	r.DispatchAll()

	for name, h := range map[string]*recordingHandler{"first": first, "second": second} {
		if len(h.seen) != 2 {
			t.Fatalf("%s handler: expected 2 events, got %d", name, len(h.seen))
		}
		if h.seen[0].Frame != 1 || h.seen[1].Frame != 2 {
			t.Errorf("%s handler: expected FIFO order, got %v", name, h.seen)
		}
	}

	// Nothing left for a second dispatch
	first.seen = nil
	r.DispatchAll()
	if len(first.seen) != 0 {
		t.Errorf("expected no redelivery, got %d events", len(first.seen))
	}
}
