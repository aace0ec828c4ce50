// Package kernel contains the shared value objects of the marketplace
// domain: exact cent-denominated money, the cart quantity clamp, and the
// sequential order identifier generator. Value objects here are immutable
// and safe for concurrent use.
package kernel
