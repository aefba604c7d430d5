// Package store persists the studio state as one JSON document.  The
// document is loaded wholesale, mutated in memory by the engine, and
// written back wholesale.
package store

import (
	"context"

	"github.com/jaev1996/atria-fitness/internal/model"
)

// Store is the persistence boundary of the engine.  Implementations must
// return a document the caller may mutate freely; Save replaces the stored
// state with the given document.
type Store interface {
	Load(ctx context.Context) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document) error
}
