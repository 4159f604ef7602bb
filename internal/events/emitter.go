package events

import (
	"sync"

	model "marketplace-engine/internal/models"
	"marketplace-engine/utils"
)

// Emitter receives a notification on every listing/auction state transition.
// It is the sole channel by which external observers see engine activity.
type Emitter interface {
	Emit(e model.Event)
}

// LogEmitter writes notifications as structured log entries
type LogEmitter struct{}

// NewLogEmitter creates a LogEmitter
func NewLogEmitter() *LogEmitter {
	return &LogEmitter{}
}

// Emit logs the event with its identifying fields
func (LogEmitter) Emit(e model.Event) {
	utils.Info("market event: "+e.Name, map[string]any{
		"event":      e.Name,
		"id":         e.ID,
		"collection": e.Asset.Collection,
		"unit":       e.Asset.Unit,
		"quantity":   e.Asset.Quantity,
		"actor":      e.Actor,
		"amount":     e.Amount,
		"at":         e.At,
	})
}

// NopEmitter discards everything. Used where event output is pure noise,
// such as benchmarks.
type NopEmitter struct{}

// NewNopEmitter creates a NopEmitter
func NewNopEmitter() *NopEmitter {
	return &NopEmitter{}
}

// Emit drops the event
func (NopEmitter) Emit(model.Event) {}

// Recorder collects events in memory. Intended for tests.
type Recorder struct {
	mu     sync.Mutex
	events []model.Event
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit appends the event
func (r *Recorder) Emit(e model.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything emitted so far
func (r *Recorder) Events() []model.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Event(nil), r.events...)
}
