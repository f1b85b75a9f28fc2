// Package roster defines the derived email membership index.
package roster

// Option applies a configuration option to the InMemoryIndex.
type Option func(*inMemoryIndex)

// WithSizeHint pre-sizes the underlying map. The directory is small, so this
// is purely an allocation hint.
func WithSizeHint(hint int) Option {
	return func(i *inMemoryIndex) {
		if hint > 0 {
			i.sizeHint = hint
		}
	}
}
