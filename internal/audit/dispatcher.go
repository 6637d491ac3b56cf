package audit

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

type Event struct {
	ActorAccountID *uint
	Action         string
	Entity         string
	EntityID       *uint
	Metadata       any
}

// Sink persists a single event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			logrus.WithError(err).
				WithField("action", ev.Action).
				Warn("audit write failed")
		}
	}
}

// Dispatch never blocks; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		logrus.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits until queued ones are written or ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Ptr is a helper for the optional id fields of Event.
func Ptr(id uint) *uint {
	return &id
}
