// Package repository defines the activity directory store interface and errors.
package repository

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/internal/domain/roster"
	"github.com/mergington/activities/pkg/metrics"
)

// Mutex-guarded, in-memory Store implementation.
//
// The key set is fixed at construction: activities are never created or
// deleted at runtime. Every operation is a single serialized
// read-modify-write, so a rejected signup or unregister can never leave a
// roster half-mutated.

// Directory holds the process-wide mapping of activity name to activity.
type Directory struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
	membership roster.Index
	seed       map[string]model.Activity
}

// NewDirectory creates a Directory seeded with the built-in activities
// unless a seed is injected via options.
func NewDirectory(ctx context.Context, opts ...Option) *Directory {
	d := &Directory{}

	for _, opt := range opts {
		opt(d)
	}

	if d.seed == nil {
		d.seed = DefaultSeed()
	}
	if d.membership == nil {
		d.membership = roster.NewInMemoryIndex(roster.WithSizeHint(len(d.seed) * 8))
	}

	d.activities = make(map[string]*model.Activity, len(d.seed))
	for name, activity := range d.seed {
		a := activity.Clone()
		d.activities[name] = &a
		for _, email := range a.Participants {
			d.membership.Record(ctx, email, name)
		}
	}

	metrics.UpdateActivityCount(len(d.activities))
	metrics.UpdateParticipantCount(int(d.membership.Size()))
	return d
}

// List returns a deep copy of every activity keyed by name.
func (d *Directory) List(ctx context.Context) map[string]model.Activity {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(map[string]model.Activity, len(d.activities))
	for name, activity := range d.activities {
		out[name] = activity.Clone()
	}
	return out
}

// Get returns a deep copy of one activity.
func (d *Directory) Get(ctx context.Context, name string) (model.Activity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	activity, ok := d.activities[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// Signup appends email to the named activity's roster. The membership index
// enforces directory-wide uniqueness: an email on any roster cannot join a
// second activity. Capacity is advisory and never checked here.
func (d *Directory) Signup(ctx context.Context, name, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if !d.membership.Record(ctx, email, name) {
		return ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	metrics.UpdateParticipantCount(int(d.membership.Size()))
	return nil
}

// Unregister removes email from the named activity's roster.
func (d *Directory) Unregister(ctx context.Context, name, email string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	activity, ok := d.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if !activity.HasParticipant(email) {
		return ErrNotRegistered
	}

	kept := activity.Participants[:0]
	for _, p := range activity.Participants {
		if p != email {
			kept = append(kept, p)
		}
	}
	activity.Participants = kept
	d.membership.Unrecord(ctx, email)
	metrics.UpdateParticipantCount(int(d.membership.Size()))
	return nil
}

// Count returns the number of activities in the directory.
func (d *Directory) Count(ctx context.Context) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.activities)
}

// ParticipantCount returns the total number of registered emails.
func (d *Directory) ParticipantCount(ctx context.Context) int {
	return int(d.membership.Size())
}
