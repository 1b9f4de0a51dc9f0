package warehouse_test

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/warehouse"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouse(t *testing.T) {
	now := time.Now()
	operator := kernel.NewUUID()

	w, err := warehouse.NewWarehouse(kernel.NewUUID(), " North Dock ", "Pune", 5000, "ops@north.example", operator, now)

	require.NoError(t, err)
	assert.Equal(t, "North Dock", w.Name())
	assert.Equal(t, 5000, w.Capacity())
	assert.True(t, w.OperatorID().IsEqual(operator))
	require.NoError(t, w.Validate())
}

func TestNewWarehouse_Invalid(t *testing.T) {
	_, err := warehouse.NewWarehouse(kernel.NewUUID(), "", "", 0, "nope", kernel.UUID{}, time.Now())

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.Contains(t, err.Error(), "capacity")
	assert.Contains(t, err.Error(), "contactEmail")
}

func TestWarehouse_Validate(t *testing.T) {
	var w *warehouse.Warehouse
	assert.Equal(t, warehouse.ErrWarehouseIsNotConstructed, w.Validate())
}
