package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/hotel-services/internal/db/dbtest"
	"github.com/BruksfildServices01/hotel-services/internal/models"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (s *recordingSink) Log(_ context.Context, ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink down")
	}
	s.events = append(s.events, ev)
	return nil
}

func TestDispatcher_DrainsOnClose(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "service_created", Entity: "service", EntityID: Ptr(uint(i))})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}

	if len(sink.events) != 10 {
		t.Errorf("Expected 10 events, got %d", len(sink.events))
	}

	// dispatching after close is a no-op
	d.Dispatch(Event{Action: "late"})
}

func TestDispatcher_SinkErrorsDoNotStopWorker(t *testing.T) {
	sink := &recordingSink{fail: true}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestLogger_PersistsRow(t *testing.T) {
	gdb := dbtest.New(t)
	l := New(gdb)

	actor := uint(7)
	err := l.Log(context.Background(), Event{
		ActorAccountID: &actor,
		Action:         "booking_created",
		Entity:         "booking",
		EntityID:       Ptr(3),
		Metadata:       map[string]any{"status": "pending"},
	})
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	var row models.AuditLog
	if err := gdb.First(&row).Error; err != nil {
		t.Fatalf("read back: %v", err)
	}
	if row.Action != "booking_created" || row.ActorAccountID == nil || *row.ActorAccountID != 7 {
		t.Errorf("Unexpected row %+v", row)
	}
	if string(row.Metadata) != `{"status":"pending"}` {
		t.Errorf("Unexpected metadata %s", row.Metadata)
	}
}
