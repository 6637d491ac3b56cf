// Package audittest records dispatched audit events in memory.
package audittest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/audit"
)

type Recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *Recorder) Log(_ context.Context, ev audit.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

// Actions returns the recorded action names in dispatch order.
func (r *Recorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

// New returns a dispatcher backed by a Recorder and a flush func that
// drains the queue; call flush before inspecting the recorder.
func New(t testing.TB) (*audit.Dispatcher, *Recorder, func()) {
	t.Helper()
	rec := &Recorder{}
	d := audit.NewDispatcher(rec)

	var once sync.Once
	flush := func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := d.Close(ctx); err != nil {
				t.Errorf("audit flush: %v", err)
			}
		})
	}
	t.Cleanup(flush)
	return d, rec, flush
}
