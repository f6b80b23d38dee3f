// Package storage provides the persistent blob store the reminder collection
// round-trips through: one JSON array under a fixed storage key, last writer
// wins.  Two backends exist — a local file for CLI/offline use and a redis key
// for the server deployment — plus the Repository adapter that decodes the
// blob fail-open.
package storage

import (
	"context"

	"github.com/sozialtools/fristenwaechter/pkg/errors"
)

// StorageKey is the fixed key the reminder collection is stored under.
const StorageKey = "fristenwaechter.erinnerungen"

// ErrBlobNotFound is returned by Load when no blob has been written yet.
// Callers treat it as an empty collection, not as a failure.
var ErrBlobNotFound = errors.New(errors.ErrCodeNotFound, "blob not found")

// BlobStore reads and writes a single opaque blob.  Concurrent writers are
// not reconciled; the store is a simple last-writer-wins cell.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
