// Package guard keeps a process-local record of which users are mid-attempt for
// which lock key. It only saves store round-trips on client double submits; it is
// not shared between instances and correctness never depends on it.
package guard

import "sync"

type Stats struct {
	TotalActiveProducts int
	TotalActiveUsers    int
	PerProductUserCount map[string]int
}

type Registry struct {
	mu     sync.Mutex
	active map[string]map[string]struct{}
	total  int
}

func NewRegistry() *Registry {
	return &Registry{
		active: make(map[string]map[string]struct{}),
	}
}

// TryRegister performs the membership test and the insert under one lock and
// reports whether the caller now owns the (key, user) slot.
func (r *Registry) TryRegister(key, userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.active[key]
	if !ok {
		users = make(map[string]struct{})
		r.active[key] = users
	}
	if _, busy := users[userID]; busy {
		return false
	}
	users[userID] = struct{}{}
	r.total++
	return true
}

func (r *Registry) IsActive(key, userID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.active[key][userID]
	return ok
}

func (r *Registry) Register(key, userID string) {
	r.TryRegister(key, userID)
}

// Unregister removes the user and drops the key once its set is empty.
func (r *Registry) Unregister(key, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.active[key]
	if !ok {
		return
	}
	if _, present := users[userID]; present {
		delete(users, userID)
		r.total--
	}
	if len(users) == 0 {
		delete(r.active, key)
	}
}

// Active is the number of outstanding (key, user) registrations.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

func (r *Registry) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	per := make(map[string]int, len(r.active))
	for key, users := range r.active {
		per[key] = len(users)
	}
	return Stats{
		TotalActiveProducts: len(r.active),
		TotalActiveUsers:    r.total,
		PerProductUserCount: per,
	}
}
