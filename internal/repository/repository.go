// Package repository keeps a bounded in-memory record of completed workflow
// results. Nothing survives a restart; persistence is out of scope for this
// service, the store only feeds the system-status gauges and result lookups.
package repository

import (
	"fmt"
	"sync"
	"time"
)

// Entry is one completed workflow result.
type Entry struct {
	RequestID   string
	Workflow    string
	Result      any
	CompletedAt time.Time
}

// ResultStore is an in-memory TTL cache of recent workflow results.
type ResultStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
}

// NewResultStore creates a store whose entries expire after ttl.
func NewResultStore(ttl time.Duration) *ResultStore {
	return &ResultStore{
		entries: make(map[string]Entry),
		ttl:     ttl,
	}
}

// Put records a completed result under its request ID.
func (s *ResultStore) Put(requestID, workflow string, result any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	s.entries[requestID] = Entry{
		RequestID:   requestID,
		Workflow:    workflow,
		Result:      result,
		CompletedAt: time.Now(),
	}
}

// Get retrieves a recent result by request ID.
func (s *ResultStore) Get(requestID string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[requestID]
	if !ok || time.Since(entry.CompletedAt) > s.ttl {
		return Entry{}, fmt.Errorf("result %s not found", requestID)
	}
	return entry, nil
}

// Size reports the number of live entries.
func (s *ResultStore) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	return len(s.entries)
}

// prune drops expired entries. Callers must hold the write lock.
func (s *ResultStore) prune() {
	cutoff := time.Now().Add(-s.ttl)
	for id, entry := range s.entries {
		if entry.CompletedAt.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}
