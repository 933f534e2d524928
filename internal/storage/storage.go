// Package storage defines the Storage interface (the contract the talker
// handlers depend on) together with the sentinel errors every backend
// must return.
//
// CONSISTENCY CONTRACT
// ────────────────────
// Implementations are NOT required to serialise concurrent mutations.
// Two requests that mutate the collection at the same time may both start
// from the same snapshot; whichever write lands last wins and the other
// change is lost. Callers must not rely on anything stronger.
package storage

import (
	"context"
	"errors"

	"github.com/aanand-mishra/talker-api/internal/types"
)

// ErrNotFound is returned by GetTalkerByID when no talker has the id.
// Check for it with errors.Is; backends may wrap it.
var ErrNotFound = errors.New("talker not found")

// Storage is the persistence contract for the talker collection.
type Storage interface {
	// GetTalkers returns the whole collection in stored order.
	// Returns an empty slice (not nil) if there are no talkers.
	GetTalkers(ctx context.Context) ([]types.Talker, error)

	// GetTalkerByID returns the first talker with the given id, or an
	// error wrapping ErrNotFound.
	GetTalkerByID(ctx context.Context, id int) (types.Talker, error)

	// CreateTalker appends a talker with id = max(existing ids) + 1 and
	// returns the stored record.
	CreateTalker(ctx context.Context, in types.TalkerInput) (types.Talker, error)

	// ReplaceTalkerByID removes every talker with the given id and appends
	// the replacement. A missing id is NOT an error: the talker is created.
	ReplaceTalkerByID(ctx context.Context, id int, in types.TalkerInput) (types.Talker, error)

	// DeleteTalkerByID removes every talker with the given id. Deleting an
	// id that does not exist is not an error.
	DeleteTalkerByID(ctx context.Context, id int) error
}
