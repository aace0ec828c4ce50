// Package archive implements write-behind persistence for placed orders.
// The state tree stays the source of truth while an order is in flight; the
// recorder periodically flushes new orders and status changes to the order
// archive so they survive process restarts.
package archive

import (
	"context"
	"log/slog"
	"sync"

	"verdant/internal/core/application/store"
	"verdant/internal/core/domain/model/order"
	"verdant/internal/core/ports"
)

// Recorder tracks which orders have been archived and flushes the rest.
// It is safe for concurrent use; each flush runs in its own transaction.
type Recorder struct {
	store   *store.Store
	factory ports.UnitOfWorkFactory
	logger  *slog.Logger

	mu       sync.Mutex
	archived map[string]order.Status
}

// NewRecorder creates a recorder over the given store and archive.
func NewRecorder(st *store.Store, factory ports.UnitOfWorkFactory, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		store:    st,
		factory:  factory,
		logger:   logger.With("component", "archive_recorder"),
		archived: make(map[string]order.Status),
	}
}

// Prime loads the ids already present in the archive so a restarted process
// does not re-archive them. Statuses are marked unknown and get refreshed on
// the next flush.
func (r *Recorder) Prime(ctx context.Context) error {
	uow := r.factory.Create()
	ids, err := uow.OrderArchive().ArchivedIDs(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if _, ok := r.archived[id]; !ok {
			r.archived[id] = order.Unknown
		}
	}

	r.logger.Info("primed from archive", "orders", len(ids))
	return nil
}

// Flush persists every unarchived order and the status of every archived
// order that advanced since the last flush, all within one transaction.
// A failed flush leaves the tracking state untouched so the next run
// retries the same work.
func (r *Recorder) Flush(ctx context.Context) error {
	state := r.store.State()
	if len(state.Orders.List) == 0 {
		return nil
	}

	r.mu.Lock()
	var toAdd, toUpdate []order.CustomerOrder
	for _, o := range state.Orders.List {
		last, ok := r.archived[o.ID]
		switch {
		case !ok:
			toAdd = append(toAdd, o)
		case last != o.Status:
			toUpdate = append(toUpdate, o)
		}
	}
	r.mu.Unlock()

	if len(toAdd) == 0 && len(toUpdate) == 0 {
		return nil
	}

	uow := r.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	for _, o := range toAdd {
		if err := uow.OrderArchive().Add(ctx, o); err != nil {
			_ = uow.Rollback(ctx)
			r.logger.Error("archiving order failed", "order_id", o.ID, "error", err)
			return err
		}
	}
	for _, o := range toUpdate {
		if err := uow.OrderArchive().Update(ctx, o); err != nil {
			_ = uow.Rollback(ctx)
			r.logger.Error("updating archived order failed", "order_id", o.ID, "error", err)
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	for _, o := range toAdd {
		r.archived[o.ID] = o.Status
	}
	for _, o := range toUpdate {
		r.archived[o.ID] = o.Status
	}
	r.mu.Unlock()

	r.logger.Info("flushed orders to archive",
		"added", len(toAdd), "updated", len(toUpdate))
	return nil
}
