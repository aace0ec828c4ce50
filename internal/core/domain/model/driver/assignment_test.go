package driver_test

import (
	"testing"

	"verdant/internal/core/domain/model/driver"
	"verdant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Advance(t *testing.T) {
	tests := []struct {
		from     driver.Status
		expected driver.Status
	}{
		{driver.Assigned, driver.Accepted},
		{driver.Accepted, driver.Enroute},
		{driver.Enroute, driver.Arrived},
		{driver.Arrived, driver.Delivered},
		{driver.Delivered, driver.Delivered},
		{driver.Unknown, driver.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.Advance())
		})
	}
}

func TestNewAssignment(t *testing.T) {
	t.Run("starts_assigned_with_generated_id", func(t *testing.T) {
		a, err := driver.NewAssignment("VD-1041", "Riley Chen", "88 Cedar Ave", "2.4 mi", kernel.NewMoneyFromDollars(14))

		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, driver.Assigned, a.Status)
	})

	t.Run("requires_order_reference", func(t *testing.T) {
		_, err := driver.NewAssignment("", "Riley Chen", "88 Cedar Ave", "2.4 mi", kernel.NewMoneyFromDollars(14))

		require.ErrorIs(t, err, driver.ErrOrderIDIsRequired)
	})
}

func TestAssignment_Advanced(t *testing.T) {
	a, err := driver.NewAssignment("VD-1041", "Riley Chen", "88 Cedar Ave", "2.4 mi", kernel.NewMoneyFromDollars(14))
	require.NoError(t, err)

	// Advancing walks the full sequence and stays put at the terminal.
	statuses := []driver.Status{driver.Accepted, driver.Enroute, driver.Arrived, driver.Delivered, driver.Delivered}
	for _, expected := range statuses {
		a = a.Advanced()
		assert.Equal(t, expected, a.Status)
	}
}
