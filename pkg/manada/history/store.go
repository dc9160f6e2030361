// Package history records completed conversions.
//
// The history is an audit log: it is written after a conversion succeeds and
// is never read to answer one.
package history

import (
	"errors"

	"github.com/google/uuid"
)

// Store persists conversion records.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a record.
	// Returns ErrDuplicate if a record with the same ID exists.
	Save(r *Record) error

	// Get retrieves a record by ID.
	// Returns ErrNotFound if it doesn't exist.
	Get(id uuid.UUID) (*Record, error)

	// List returns up to limit records, newest first. A limit of zero or
	// less returns every record. Returns an empty slice (not error) if the
	// history is empty.
	List(limit int) ([]*Record, error)

	// Clear removes every record.
	Clear() error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for history operations.
var (
	// ErrNotFound indicates a record doesn't exist.
	ErrNotFound = errors.New("history record not found")

	// ErrDuplicate indicates a record with the same ID was already saved.
	ErrDuplicate = errors.New("history record already exists")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("history store closed")
)
