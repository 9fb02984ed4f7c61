// Package catalog defines options and sentinel errors for the topology
// store.
package catalog

import "errors"

// Sentinel errors for catalog operations.
var (
	// ErrBadParam indicates an invalid Opts combination.
	ErrBadParam = errors.New("catalog: bad catalog param")

	// ErrReadOnly indicates a write on a read-only catalog.
	ErrReadOnly = errors.New("catalog: catalog opened read-only")

	// ErrClosed indicates use after Close.
	ErrClosed = errors.New("catalog: catalog closed")
)

// Opts specifies params for opening a catalog.
type Opts struct {
	// Path is the database directory; omit for an in-memory catalog.
	Path string

	// ReadOnly opens the store for reads only. Requires Path.
	ReadOnly bool
}
