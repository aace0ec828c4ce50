package store

import "sync"

// Binding adapts a selector for a rendering layer: it subscribes to the
// store and exposes the projection with change detection, so consumers
// re-render only when the value they care about actually changed.
//
// Example:
//
//	totals := store.Bind(st, selectors.CartTotals, nil)
//	stop := totals.Watch(func(t cart.Totals) { render(t) })
//	defer stop()
type Binding[T any] struct {
	store    *Store
	selector Selector[T]
	eq       func(a, b T) bool

	mu       sync.Mutex
	current  T
	watchers map[int]func(T)
	nextID   int

	unsubscribe func()
}

// Bind creates a binding for the selector. A nil eq makes every store
// notification propagate; with eq set, watchers fire only when the
// selector output changes by that comparison. The binding captures the
// selector applied to the current state as its starting value.
func Bind[T any](s *Store, selector Selector[T], eq func(a, b T) bool) *Binding[T] {
	b := &Binding[T]{
		store:    s,
		selector: selector,
		eq:       eq,
		current:  selector(s.State()),
		watchers: make(map[int]func(T)),
	}
	b.unsubscribe = s.Subscribe(b.refresh)
	return b
}

// Get applies the selector to the current state outside the subscription
// path. This is the snapshot read used for initial renders; it works even
// after Close.
func (b *Binding[T]) Get() T {
	return b.selector(b.store.State())
}

// Current returns the last value the binding observed through the
// subscription, without recomputing.
func (b *Binding[T]) Current() T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Watch registers a watcher invoked with the new value whenever the
// projection changes. The returned function removes the watcher.
func (b *Binding[T]) Watch(fn func(T)) (stop func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.watchers[id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.watchers, id)
	}
}

// Close detaches the binding from the store. Watchers stop firing; Get
// keeps working.
func (b *Binding[T]) Close() {
	b.unsubscribe()
}

// refresh runs on every store notification: recompute, compare, fan out.
func (b *Binding[T]) refresh() {
	next := b.selector(b.store.State())

	b.mu.Lock()
	if b.eq != nil && b.eq(next, b.current) {
		b.mu.Unlock()
		return
	}
	b.current = next
	watchers := make([]func(T), 0, len(b.watchers))
	for _, fn := range b.watchers {
		watchers = append(watchers, fn)
	}
	b.mu.Unlock()

	for _, fn := range watchers {
		fn(next)
	}
}
