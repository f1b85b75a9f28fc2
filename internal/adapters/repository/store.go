// Package repository defines the activity directory store interface and errors.
package repository

import (
	"context"

	"github.com/mergington/activities/internal/domain/model"
)

// Store provides read/write access to the activity directory.
type Store interface {
	// List returns a deep copy of every activity keyed by name.
	List(ctx context.Context) map[string]model.Activity

	// Get returns a deep copy of one activity.
	// Returns ErrActivityNotFound if the name is unknown.
	Get(ctx context.Context, name string) (model.Activity, error)

	// Signup appends email to the named activity's roster.
	// Returns ErrActivityNotFound for unknown activities and
	// ErrAlreadySignedUp when the email is registered anywhere in the
	// directory. A rejected signup leaves all rosters untouched.
	Signup(ctx context.Context, name, email string) error

	// Unregister removes email from the named activity's roster.
	// Returns ErrActivityNotFound for unknown activities and
	// ErrNotRegistered when the email is not on that roster.
	Unregister(ctx context.Context, name, email string) error

	// Count returns the number of activities in the directory.
	Count(ctx context.Context) int

	// ParticipantCount returns the total number of registered emails.
	ParticipantCount(ctx context.Context) int
}
