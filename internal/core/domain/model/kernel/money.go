package kernel

import (
	"fmt"
	"math"
)

// Money is a monetary amount in US cents. Keeping amounts integral makes
// cart arithmetic exact; Scale and DivInt are the only rounding points.
//
// Example:
//
//	subtotal := kernel.NewMoneyFromCents(13200) // $132.00
//	tax := subtotal.Scale(0.095)                // $12.54
//	fmt.Println(subtotal.Add(tax))              // "$144.54"
type Money int64

// NewMoneyFromCents creates a Money value from an amount in cents.
func NewMoneyFromCents(cents int64) Money {
	return Money(cents)
}

// NewMoneyFromDollars creates a Money value from a dollar amount,
// rounding half away from zero to the nearest cent.
func NewMoneyFromDollars(dollars float64) Money {
	return Money(math.Round(dollars * 100))
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return int64(m)
}

// Dollars returns the amount as a dollar float. Intended for presentation
// and serialization, not for further arithmetic.
func (m Money) Dollars() float64 {
	return float64(m) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// MulInt returns the amount multiplied by an integer quantity.
func (m Money) MulInt(n int) Money {
	return m * Money(n)
}

// Scale returns the amount multiplied by a rate, rounded half away from
// zero to the nearest cent. Used for tax and service fee computation.
func (m Money) Scale(rate float64) Money {
	return Money(math.Round(float64(m) * rate))
}

// DivInt returns the amount divided by n, rounded to the nearest cent.
// Division by zero returns zero.
func (m Money) DivInt(n int) Money {
	if n == 0 {
		return 0
	}
	return Money(math.Round(float64(m) / float64(n)))
}

// GTE reports whether the amount is greater than or equal to other.
func (m Money) GTE(other Money) bool {
	return m >= other
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m == 0
}

// String renders the amount as a dollar string, e.g. "$164.10".
// Negative amounts render as "-$4.20".
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
