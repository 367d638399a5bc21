package dispatch

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Invocation is a best-effort note of one in-flight operation, kept for
// observability only.
type Invocation struct {
	ID        string    `json:"id"`
	Operation string    `json:"operation"`
	StartedAt time.Time `json:"started_at"`
}

// Tracker records in-flight invocations. It is the dispatcher's only
// cross-request state and carries no functional weight.
type Tracker struct {
	mu      sync.Mutex
	entries map[string]Invocation
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{entries: make(map[string]Invocation)}
}

// Begin registers a new invocation and returns its request ID.
func (t *Tracker) Begin(operation string) string {
	id := uuid.NewString()
	t.mu.Lock()
	t.entries[id] = Invocation{
		ID:        id,
		Operation: operation,
		StartedAt: time.Now().UTC(),
	}
	t.mu.Unlock()
	return id
}

// End removes a finished invocation.
func (t *Tracker) End(id string) {
	t.mu.Lock()
	delete(t.entries, id)
	t.mu.Unlock()
}

// List returns a snapshot of in-flight invocations, oldest first.
func (t *Tracker) List() []Invocation {
	t.mu.Lock()
	out := make([]Invocation, 0, len(t.entries))
	for _, inv := range t.entries {
		out = append(out, inv)
	}
	t.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
