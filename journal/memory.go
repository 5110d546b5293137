package journal

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	order   []string // Insertion order, used as the tie break in Recent
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		entries: make(map[string]*Entry),
	}
}

// Save stores a copy of the entry
func (r *MemoryRepository) Save(ctx context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[e.ID]; !exists {
		r.order = append(r.order, e.ID)
	}
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

// Get returns a copy of the entry with the given id
func (r *MemoryRepository) Get(ctx context.Context, id string) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, exists := r.entries[id]
	if !exists {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

// Recent returns up to limit entries, latest end time first
func (r *MemoryRepository) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		cp := *r.entries[r.order[i]]
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EndedAt.After(out[j].EndedAt)
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Summary counts played and won deals
func (r *MemoryRepository) Summary(ctx context.Context) (Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var s Summary
	for _, e := range r.entries {
		s.Played++
		if e.Outcome == OutcomeWon {
			s.Won++
		}
	}
	return s, nil
}

// Close is a no-op
func (r *MemoryRepository) Close() error { return nil }
