package kernel

const (
	// MinQuantity is the floor of the cart line quantity clamp. Zero is
	// permitted by the clamp itself; callers remove zero-quantity lines.
	MinQuantity = 0

	// MaxQuantity is the per-line purchase limit.
	MaxQuantity = 9
)

// ClampQuantity restricts a requested line quantity to [MinQuantity,
// MaxQuantity]. The clamp is monotonic and idempotent.
func ClampQuantity(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}
