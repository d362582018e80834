package audit

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCapacity bounds the trail to the most recent mutations.
const DefaultCapacity = 100

// Entry is one recorded mutation against the store.
type Entry struct {
	EntryID   string
	Action    string
	Detail    string
	CreatedAt time.Time
}

// Trail is an append-only, fixed-capacity mutation log shared by every
// module in the process. Eviction happens on insert, oldest first.
type Trail struct {
	mu      sync.RWMutex
	entries []Entry
	next    int
	size    int
	now     func() time.Time
}

func NewTrail(capacity int) *Trail {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Trail{
		entries: make([]Entry, capacity),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithNowFunc overrides the trail clock. Test wiring only.
func (t *Trail) WithNowFunc(now func() time.Time) *Trail {
	if now != nil {
		t.now = now
	}
	return t
}

func (t *Trail) Append(action string, detail string) Entry {
	entry := Entry{
		EntryID:   uuid.NewString(),
		Action:    strings.TrimSpace(action),
		Detail:    strings.TrimSpace(detail),
		CreatedAt: t.now().UTC(),
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[t.next] = entry
	t.next = (t.next + 1) % len(t.entries)
	if t.size < len(t.entries) {
		t.size++
	}
	return entry
}

// List returns entries newest-first. The result is an independent copy.
func (t *Trail) List() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	items := make([]Entry, 0, t.size)
	for i := 1; i <= t.size; i++ {
		idx := (t.next - i + len(t.entries)) % len(t.entries)
		items = append(items, t.entries[idx])
	}
	return items
}

func (t *Trail) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}
