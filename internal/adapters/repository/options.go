// Package repository defines the activity directory store interface and errors.
package repository

import (
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/internal/domain/roster"
)

// Option applies a configuration option to the Directory.
type Option func(*Directory)

// WithSeed replaces the built-in activity seed. The map is cloned on
// construction, so callers keep ownership of their copy.
func WithSeed(seed map[string]model.Activity) Option {
	return func(d *Directory) {
		if len(seed) > 0 {
			d.seed = seed
		}
	}
}

// WithMembershipIndex injects a custom membership index.
func WithMembershipIndex(idx roster.Index) Option {
	return func(d *Directory) {
		if idx != nil {
			d.membership = idx
		}
	}
}
