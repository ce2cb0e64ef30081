package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"resume-builder/internal/store"
)

// Tracker turns store changes into debounced pushes. A change qualifies
// when it moves the template, the color scheme or the full name. The push
// carries the latest state at fire time and is skipped while the full
// name is empty.
type Tracker struct {
	ctx  context.Context
	sink Sink
	deb  *Debouncer

	mu     sync.Mutex
	latest Snapshot
}

func NewTracker(ctx context.Context, sink Sink, delay time.Duration) *Tracker {
	return &Tracker{ctx: ctx, sink: sink, deb: NewDebouncer(delay)}
}

// Observe is a store.Listener.
func (t *Tracker) Observe(c store.Change) {
	t.mu.Lock()
	t.latest = snapshotOf(c.Current)
	t.mu.Unlock()

	if qualifies(c) {
		t.deb.Trigger(t.fire)
	}
}

func (t *Tracker) Close() {
	t.deb.Stop()
}

func qualifies(c store.Change) bool {
	return c.Previous.TemplateID != c.Current.TemplateID ||
		c.Previous.ColorSchemeID != c.Current.ColorSchemeID ||
		c.Previous.Document.PersonalInfo.FullName != c.Current.Document.PersonalInfo.FullName
}

func (t *Tracker) fire() {
	t.mu.Lock()
	snap := t.latest
	t.mu.Unlock()

	if snap.Data.PersonalInfo.FullName == "" {
		return
	}
	if err := t.sink.Push(t.ctx, snap); err != nil {
		slog.Warn("analytics: push failed", "template", string(snap.Template), "error", err)
	}
}

func snapshotOf(s store.State) Snapshot {
	return Snapshot{Template: s.TemplateID, ColorScheme: s.ColorSchemeID, Data: s.Document}
}
