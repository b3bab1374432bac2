// Package records persists the medical file records as one JSON array in a
// single named slot. The slot is the whole persistence boundary: callers
// read the full list, mutate in memory, and write the full list back.
package records

import "context"

// Slot is one named blob of bytes. Get returns common.ErrorNotFound when the
// slot has never been written; Put overwrites the previous contents.
type Slot interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, data []byte) error
}
