// Package ports defines the persistence contracts of the application core.
// These interfaces sit between the in-memory state tree and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"verdant/internal/core/domain/model/order"
)

// OrderArchive defines the durable store for placed orders. The state tree
// stays the source of truth while an order is in flight; the archive is the
// write-behind record that survives process restarts.
type OrderArchive interface {
	// Add persists a placed order with its line snapshots.
	// Archiving the same order id twice is an error.
	Add(ctx context.Context, o order.CustomerOrder) error

	// Update persists the current status of an already archived order.
	Update(ctx context.Context, o order.CustomerOrder) error

	// Get retrieves an archived order by id, including its lines.
	Get(ctx context.Context, id string) (order.CustomerOrder, error)

	// ArchivedIDs returns the ids of every archived order. The recorder
	// uses this on startup to avoid re-archiving after a restart.
	ArchivedIDs(ctx context.Context) ([]string, error)
}
