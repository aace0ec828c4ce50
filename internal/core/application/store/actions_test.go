package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verdant/internal/core/application/store"
	"verdant/internal/core/domain/model/driver"
	"verdant/internal/core/domain/model/kernel"
	"verdant/internal/core/domain/model/order"
	"verdant/internal/pkg/errs"
)

func mustCheckoutPayload(t *testing.T) store.CheckoutPayload {
	t.Helper()
	payload, err := store.NewCheckoutPayload(
		"Riley Chen", "555-0142", "88 Alder Way, Apt 3", "Gate code 2288",
	)
	require.NoError(t, err)
	return payload
}

func Test_NewCheckoutPayload_RequiresContactFields(t *testing.T) {
	tests := []struct {
		name    string
		payload func() (store.CheckoutPayload, error)
	}{
		{"missing name", func() (store.CheckoutPayload, error) {
			return store.NewCheckoutPayload("", "555-0142", "88 Alder Way", "")
		}},
		{"missing phone", func() (store.CheckoutPayload, error) {
			return store.NewCheckoutPayload("Riley Chen", "", "88 Alder Way", "")
		}},
		{"missing address", func() (store.CheckoutPayload, error) {
			return store.NewCheckoutPayload("Riley Chen", "555-0142", "", "")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.payload()
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func Test_Checkout_RejectsZeroValuePayload(t *testing.T) {
	// Given
	st := newTestStore(t)
	st.AddToCart(2)

	// When
	_, err := st.Checkout(store.CheckoutPayload{})

	// Then
	assert.ErrorIs(t, err, store.ErrCheckoutPayloadIsNotConstructed)
}

func Test_AddToCart_ClampsLineAtMaximum(t *testing.T) {
	// Given
	st := newTestStore(t)

	// When
	for range 12 {
		st.AddToCart(2)
	}

	// Then
	items := st.State().Cart.Items
	require.Len(t, items, 1)
	assert.Equal(t, kernel.MaxQuantity, items[0].Quantity)
}

func Test_UpdateCartQuantity_ZeroRemovesLine(t *testing.T) {
	// Given
	st := newTestStore(t)
	st.AddToCart(2)
	st.AddToCart(5)

	// When
	st.UpdateCartQuantity(2, 0)

	// Then
	items := st.State().Cart.Items
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].ProductID)
}

func Test_CartDispatchers_UnchangedCartDoesNotNotify(t *testing.T) {
	// Given: a cart holding product 2 at the per-line maximum
	st := newTestStore(t)
	st.AddToCart(2)
	st.UpdateCartQuantity(2, kernel.MaxQuantity)
	before := st.State()
	notified := 0
	defer st.Subscribe(func() { notified++ })()

	// When: a product not in the cart
	st.UpdateCartQuantity(5, 3)
	// When: the quantity the line already has
	st.UpdateCartQuantity(2, kernel.MaxQuantity)
	// When: an over-maximum quantity that clamps to the current one
	st.UpdateCartQuantity(2, 40)
	// When: adding to a line already at the maximum
	st.AddToCart(2)

	// Then
	assert.Equal(t, 0, notified)
	assert.Same(t, before, st.State())
}

func Test_UpdateCartQuantity_NegativeClampsToRemoval(t *testing.T) {
	// Given
	st := newTestStore(t)
	st.AddToCart(2)

	// When
	st.UpdateCartQuantity(2, -4)

	// Then
	assert.True(t, st.State().Cart.IsEmpty())
}

func Test_Checkout_PlacesOrderFromCart(t *testing.T) {
	// Given: 2x Wedding Cake ($52) and 1x Midnight Berry Gummies ($28)
	st := newTestStore(t)
	st.AddToCart(2)
	st.AddToCart(2)
	st.AddToCart(5)

	// When
	placed, err := st.Checkout(mustCheckoutPayload(t))

	// Then
	require.NoError(t, err)
	assert.Equal(t, "VD-1041", placed.ID)
	assert.Equal(t, order.Preparing, placed.Status)
	assert.Equal(t, "disp-emerald", placed.DispensaryID)
	require.Len(t, placed.Items, 2)
	assert.Equal(t, "Wedding Cake 3.5g", placed.Items[0].Name)
	assert.Equal(t, int64(10400), placed.Items[0].LineTotal.Cents())

	assert.Equal(t, int64(13200), placed.Totals.Subtotal.Cents())
	assert.Equal(t, int64(1056), placed.Totals.ServiceFee.Cents())
	assert.Equal(t, int64(1254), placed.Totals.Tax.Cents())
	assert.Equal(t, int64(900), placed.Totals.DeliveryFee.Cents())
	assert.Equal(t, int64(16410), placed.Totals.Total.Cents())
	assert.Equal(t, "$164.10", placed.Totals.Total.String())

	state := st.State()
	assert.True(t, state.Cart.IsEmpty())
	assert.Equal(t, placed.ID, state.Orders.ActiveOrderID)
	require.Len(t, state.Orders.List, 1)

	// And: the admin projection is recomputed in the same transition
	assert.Equal(t, 1, state.Admin.Metrics.OrderCount)
	assert.Equal(t, int64(16410), state.Admin.Metrics.Revenue.Cents())
	assert.Equal(t, 1, state.Admin.Metrics.ActiveOrders)
	require.Len(t, state.Admin.Orders, 1)
	assert.Equal(t, "Emerald Coast Collective", state.Admin.Orders[0].DispensaryName)
	assert.Equal(t, "preparing", state.Admin.Orders[0].Status)
}

func Test_Checkout_SequentialIDs(t *testing.T) {
	// Given
	st := newTestStore(t)
	payload := mustCheckoutPayload(t)

	// When
	st.AddToCart(2)
	first, err := st.Checkout(payload)
	require.NoError(t, err)
	st.AddToCart(5)
	second, err := st.Checkout(payload)
	require.NoError(t, err)

	// Then: newest first, second order is the active one
	assert.Equal(t, "VD-1041", first.ID)
	assert.Equal(t, "VD-1042", second.ID)
	state := st.State()
	require.Len(t, state.Orders.List, 2)
	assert.Equal(t, second.ID, state.Orders.List[0].ID)
	assert.Equal(t, second.ID, state.Orders.ActiveOrderID)
}

func Test_Checkout_EmptyCartFailsWithoutStateChange(t *testing.T) {
	// Given
	st := newTestStore(t)
	before := st.State()
	notified := 0
	defer st.Subscribe(func() { notified++ })()

	// When
	_, err := st.Checkout(mustCheckoutPayload(t))

	// Then
	assert.ErrorIs(t, err, store.ErrCartIsEmpty)
	assert.Same(t, before, st.State())
	assert.Equal(t, 0, notified)
}

func Test_Checkout_CartOfOnlyStaleLinesFails(t *testing.T) {
	// Given: a cart line whose product is gone from the catalog
	st := newTestStore(t)
	st.AddToCart(999)

	// When
	_, err := st.Checkout(mustCheckoutPayload(t))

	// Then
	assert.ErrorIs(t, err, store.ErrCartIsEmpty)
}

func Test_AdvanceActiveOrderStatus_WalksLifecycleAndClampsAtDelivered(t *testing.T) {
	// Given
	st := newTestStore(t)
	st.AddToCart(2)
	placed, err := st.Checkout(mustCheckoutPayload(t))
	require.NoError(t, err)
	require.Equal(t, order.Preparing, placed.Status)

	// When: preparing -> enroute -> arriving -> delivered, then two extra
	for range 5 {
		st.AdvanceActiveOrderStatus()
	}

	// Then
	active, ok := store.ActiveOrder(st.State())
	require.True(t, ok)
	assert.Equal(t, order.Delivered, active.Status)
	assert.False(t, active.IsActive())
	assert.Equal(t, 0, st.State().Admin.Metrics.ActiveOrders)
}

func Test_AdvanceActiveOrderStatus_TerminalOrderDoesNotNotify(t *testing.T) {
	// Given
	st := newTestStore(t)
	st.AddToCart(2)
	_, err := st.Checkout(mustCheckoutPayload(t))
	require.NoError(t, err)
	for range 3 {
		st.AdvanceActiveOrderStatus()
	}
	before := st.State()
	notified := 0
	defer st.Subscribe(func() { notified++ })()

	// When
	st.AdvanceActiveOrderStatus()

	// Then
	assert.Same(t, before, st.State())
	assert.Equal(t, 0, notified)
}

func Test_AdvanceActiveOrderStatus_WithoutActiveOrderIsNoOp(t *testing.T) {
	// Given
	st := newTestStore(t)
	before := st.State()

	// When
	st.AdvanceActiveOrderStatus()

	// Then
	assert.Same(t, before, st.State())
}

func Test_AdvanceAssignment_WalksDriverLifecycle(t *testing.T) {
	// Given
	st := newTestStore(t)
	assignments := st.State().Driver.Assignments
	require.NotEmpty(t, assignments)
	id := assignments[0].ID

	// When
	st.AdvanceAssignment(id)

	// Then
	updated, ok := store.AssignmentByID(st.State(), id)
	require.True(t, ok)
	assert.Equal(t, driver.Accepted, updated.Status)

	// And: the seeded snapshot is untouched
	assert.Equal(t, driver.Assigned, assignments[0].Status)
}

func Test_AdvanceAssignment_UnknownIDIsNoOp(t *testing.T) {
	// Given
	st := newTestStore(t)
	before := st.State()

	// When
	st.AdvanceAssignment("no-such-assignment")

	// Then
	assert.Same(t, before, st.State())
}

func Test_SelectDispensary_SwitchesSession(t *testing.T) {
	// Given
	st := newTestStore(t)

	// When
	st.SelectDispensary("disp-golden")

	// Then
	assert.Equal(t, "disp-golden", st.State().Session.SelectedDispensaryID)
}
