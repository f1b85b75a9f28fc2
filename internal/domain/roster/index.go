// Package roster defines the derived email membership index.
package roster

import (
	"context"
	"sync"
	"sync/atomic"
)

// Index tracks which activity, if any, an email is registered in. It backs
// the directory-wide rule that an email may be signed up for at most one
// activity at a time.
type Index interface {
	// Record atomically checks whether email is registered anywhere and
	// records it against activity if not. Returns false when the email is
	// already registered. Thread-safe and atomic.
	Record(ctx context.Context, email, activity string) bool

	// Unrecord removes an email from the index, allowing it to sign up again.
	Unrecord(ctx context.Context, email string)

	// Lookup returns the activity an email is registered in, if any.
	Lookup(ctx context.Context, email string) (string, bool)

	Size() int64
}

// inMemoryIndex implements Index with a mutex-guarded map. The directory it
// serves holds a fixed set of activities, so the index stays small and no
// eviction is needed.
type inMemoryIndex struct {
	mu       sync.RWMutex
	byEmail  map[string]string // email -> activity name
	size     atomic.Int64
	sizeHint int
}

// NewInMemoryIndex creates a new in-memory membership index.
func NewInMemoryIndex(opts ...Option) Index {
	idx := &inMemoryIndex{
		sizeHint: 64,
	}

	for _, opt := range opts {
		opt(idx)
	}

	idx.byEmail = make(map[string]string, idx.sizeHint)
	return idx
}

// Record atomically checks whether email is registered anywhere and records
// it against activity if not.
func (i *inMemoryIndex) Record(ctx context.Context, email, activity string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, exists := i.byEmail[email]; exists {
		return false
	}
	i.byEmail[email] = activity
	i.size.Add(1)
	return true
}

// Unrecord removes an email from the index.
func (i *inMemoryIndex) Unrecord(ctx context.Context, email string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, exists := i.byEmail[email]; exists {
		delete(i.byEmail, email)
		i.size.Add(-1)
	}
}

// Lookup returns the activity an email is registered in, if any.
func (i *inMemoryIndex) Lookup(ctx context.Context, email string) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	activity, ok := i.byEmail[email]
	return activity, ok
}

// Size returns the current number of registered emails.
func (i *inMemoryIndex) Size() int64 {
	return i.size.Load()
}
