// Package store implements the application state core: a single immutable
// state tree behind a publish/subscribe container, memoized selectors for
// derived views, and the named dispatchers that are the only public
// mutation surface.
//
// Concurrency model: the tree is replaced, never mutated in place. A
// single mutex serializes writers; readers take the current tree pointer
// and can use it indefinitely as an immutable snapshot. Subscribers are
// notified synchronously after each committed transition.
package store
