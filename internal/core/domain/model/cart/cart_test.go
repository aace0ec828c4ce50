package cart_test

import (
	"testing"

	"verdant/internal/core/domain/model/cart"
	"verdant/internal/core/domain/model/catalog"
	"verdant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLookup() cart.ProductLookup {
	products := map[int]catalog.Product{
		2: {ID: 2, Name: "Wedding Cake 3.5g", Price: kernel.NewMoneyFromDollars(52)},
		5: {ID: 5, Name: "Midnight Berry Gummies 100mg", Price: kernel.NewMoneyFromDollars(28)},
		7: {ID: 7, Name: "Gelato Live Resin Cart 1g", Price: kernel.NewMoneyFromDollars(65)},
	}
	return func(id int) (catalog.Product, bool) {
		p, ok := products[id]
		return p, ok
	}
}

func TestCart_Add(t *testing.T) {
	t.Run("appends_new_line_with_quantity_one", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2)

		require.Len(t, c.Items, 1)
		assert.Equal(t, cart.LineItem{ProductID: 2, Quantity: 1}, c.Items[0])
	})

	t.Run("increments_existing_line", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2).Add(2).Add(2)

		require.Len(t, c.Items, 1)
		assert.Equal(t, 3, c.Items[0].Quantity)
	})

	t.Run("increment_clamps_at_per_line_maximum", func(t *testing.T) {
		c := cart.New(cart.DefaultRates())
		for range 15 {
			c = c.Add(2)
		}

		require.Len(t, c.Items, 1)
		assert.Equal(t, kernel.MaxQuantity, c.Items[0].Quantity)
	})

	t.Run("does_not_mutate_receiver", func(t *testing.T) {
		before := cart.New(cart.DefaultRates()).Add(2)
		_ = before.Add(2)

		assert.Equal(t, 1, before.Items[0].Quantity)
	})

	t.Run("at_maximum_returns_receiver_untouched", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2).SetQuantity(2, kernel.MaxQuantity)

		unchanged := c.Add(2)

		assert.Equal(t, kernel.MaxQuantity, unchanged.Items[0].Quantity)
		assert.Same(t, &c.Items[0], &unchanged.Items[0])
	})
}

func TestCart_Quantity(t *testing.T) {
	c := cart.New(cart.DefaultRates()).Add(2).Add(2)

	q, ok := c.Quantity(2)
	require.True(t, ok)
	assert.Equal(t, 2, q)

	_, ok = c.Quantity(99)
	assert.False(t, ok)
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("replaces_quantity", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2).SetQuantity(2, 4)

		assert.Equal(t, 4, c.Items[0].Quantity)
	})

	t.Run("zero_removes_the_line", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2).Add(5).SetQuantity(5, 0)

		require.Len(t, c.Items, 1)
		for _, item := range c.Items {
			assert.NotEqual(t, 5, item.ProductID)
		}
	})

	t.Run("negative_clamps_to_zero_and_removes", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2).SetQuantity(2, -3)

		assert.True(t, c.IsEmpty())
	})

	t.Run("above_maximum_clamps_to_nine", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2).SetQuantity(2, 40)

		assert.Equal(t, kernel.MaxQuantity, c.Items[0].Quantity)
	})

	t.Run("unknown_product_returns_receiver_untouched", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2)

		unchanged := c.SetQuantity(99, 3)

		require.Len(t, unchanged.Items, 1)
		assert.Equal(t, 2, unchanged.Items[0].ProductID)
		assert.Same(t, &c.Items[0], &unchanged.Items[0])
	})

	t.Run("unknown_product_on_empty_cart_keeps_nil_items", func(t *testing.T) {
		unchanged := cart.New(cart.DefaultRates()).SetQuantity(2, 5)

		assert.Nil(t, unchanged.Items)
	})

	t.Run("unchanged_quantity_returns_receiver_untouched", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2).SetQuantity(2, 4)

		unchanged := c.SetQuantity(2, 4)

		assert.Same(t, &c.Items[0], &unchanged.Items[0])
	})
}

func TestCart_Totals(t *testing.T) {
	t.Run("standard_breakdown", func(t *testing.T) {
		// $52 x 2 + $28 x 1 with 9.5% tax, 8% service, $9 delivery base.
		c := cart.New(cart.DefaultRates()).Add(2).Add(2).Add(5)

		totals := c.Totals(testLookup())

		assert.Equal(t, int64(13200), totals.Subtotal.Cents())
		assert.Equal(t, int64(1056), totals.ServiceFee.Cents())
		assert.Equal(t, int64(1254), totals.Tax.Cents())
		assert.Equal(t, int64(900), totals.DeliveryFee.Cents())
		assert.Equal(t, int64(16410), totals.Total.Cents())
		assert.Equal(t, 3, totals.ItemCount)
	})

	t.Run("total_is_sum_of_parts", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(5).Add(7).Add(7)

		totals := c.Totals(testLookup())

		sum := totals.Subtotal.Add(totals.ServiceFee).Add(totals.Tax).Add(totals.DeliveryFee)
		assert.Equal(t, sum, totals.Total)
	})

	t.Run("delivery_waived_at_threshold", func(t *testing.T) {
		// 3 x $52 = $156 >= $150.
		c := cart.New(cart.DefaultRates()).Add(2).SetQuantity(2, 3)

		totals := c.Totals(testLookup())

		assert.Equal(t, int64(15600), totals.Subtotal.Cents())
		assert.True(t, totals.DeliveryFee.IsZero())
	})

	t.Run("unresolved_products_are_dropped_silently", func(t *testing.T) {
		c := cart.New(cart.DefaultRates()).Add(2)
		c.Items = append(c.Items, cart.LineItem{ProductID: 404, Quantity: 2})

		totals := c.Totals(testLookup())

		assert.Equal(t, int64(5200), totals.Subtotal.Cents())
		assert.Equal(t, 1, totals.ItemCount)
	})
}

func TestCart_DetailedItems(t *testing.T) {
	c := cart.New(cart.DefaultRates()).Add(2).Add(2).Add(5)

	items := c.DetailedItems(testLookup())

	require.Len(t, items, 2)
	assert.Equal(t, "Wedding Cake 3.5g", items[0].Product.Name)
	assert.Equal(t, int64(10400), items[0].LineTotal.Cents())
	assert.Equal(t, int64(2800), items[1].LineTotal.Cents())
}
