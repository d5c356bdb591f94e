package handler

import (
	"context"
	"sync"

	"github.com/Philanthropists/phab-email-events/internal/sync/types"
)

// Recorder keeps every event it receives, in order.
type Recorder struct {
	Events

	mu     sync.Mutex
	events []types.Event
}

func NewRecorder() *Recorder {
	r := &Recorder{}
	r.Events = r.record

	return r
}

func (r *Recorder) record(_ context.Context, e types.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, e)
}

func (r *Recorder) Recorded() []types.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	events := make([]types.Event, len(r.events))
	copy(events, r.events)

	return events
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}
