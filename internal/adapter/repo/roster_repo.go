package repo

import (
	"context"
	"sync"

	"internportal/internal/domain"
)

// RosterRepositoryMemory implements domain.RosterStore in process memory.
// Records live in a map keyed by id with a separate insertion-ordered index.
type RosterRepositoryMemory struct {
	mu    sync.RWMutex
	byID  map[int]domain.Intern
	order []int
}

// NewRosterRepository creates a roster pre-seeded with entries, assigning ids
// 1..n in seed order.
func NewRosterRepository(seed []SeedEntry) *RosterRepositoryMemory {
	r := &RosterRepositoryMemory{byID: make(map[int]domain.Intern, len(seed))}
	for _, e := range seed {
		r.appendLocked(e.Name, e.Email, e.DonationsRaised)
	}
	return r
}

// Get returns the intern with the given id.
func (r *RosterRepositoryMemory) Get(_ context.Context, id int) (domain.Intern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	in, ok := r.byID[id]
	if !ok {
		return domain.Intern{}, domain.ErrNotFound
	}
	return in, nil
}

// List returns a copy of every intern in insertion order.
func (r *RosterRepositoryMemory) List(_ context.Context) ([]domain.Intern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Intern, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// FindByEmail returns the earliest inserted intern with a matching email.
func (r *RosterRepositoryMemory) FindByEmail(_ context.Context, email string) (domain.Intern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if in := r.byID[id]; in.Email == email {
			return in, nil
		}
	}
	return domain.Intern{}, domain.ErrNotFound
}

// Append adds a new intern with the next sequential id.
func (r *RosterRepositoryMemory) Append(_ context.Context, name, email string, donations int64) (domain.Intern, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.appendLocked(name, email, donations), nil
}

func (r *RosterRepositoryMemory) appendLocked(name, email string, donations int64) domain.Intern {
	in := domain.NewIntern(len(r.order)+1, name, email, donations)
	r.byID[in.ID] = in
	r.order = append(r.order, in.ID)
	return in
}

var _ domain.RosterStore = (*RosterRepositoryMemory)(nil)
