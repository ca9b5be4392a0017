package fulfillment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

func testPartition(t *testing.T) fulfillment.Partition {
	t.Helper()
	loc := testLocation(t, "acme-wholesale", "Acme Warehouse")
	mapping := testMapping(t, "20001", loc)
	return fulfillment.Partition{
		Location: *loc,
		Items: []fulfillment.ResolvedItem{
			{Item: fulfillment.LineItem{ID: 1, VariantID: 20001, Quantity: 2}, Mapping: *mapping},
		},
	}
}

func testOrderContext() fulfillment.OrderContext {
	return fulfillment.OrderContext{
		OrderID:       450789469,
		CustomerEmail: "customer@example.com",
		ShippingAddress: &fulfillment.OrderAddress{
			Name:     "Jane Customer",
			Address1: "742 Evergreen Terrace",
			City:     "Springfield",
			Country:  "United States",
			Zip:      "62701",
		},
	}
}

func TestBuildRequest(t *testing.T) {
	partition := testPartition(t)
	req := BuildRequest(testOrderContext(), partition)

	assert.Equal(t, "acme-wholesale", req.SupplierID)
	assert.Equal(t, partition.Location.ID, req.LocationID)
	assert.Equal(t, "Storefront order #450789469", req.OrderNote)
	assert.Equal(t, "customer@example.com", req.CustomerEmail)
	assert.Equal(t, "742 Evergreen Terrace", req.ShippingAddress.Address1)
	require.Len(t, req.Items, 1)
	assert.Equal(t, "ACME-SKU-20001", req.Items[0].SupplierProductID)
	assert.Equal(t, 2, req.Items[0].Quantity)
}

func TestDispatcher_Success(t *testing.T) {
	partition := testPartition(t)
	gateway := NewMockSupplierGateway("acme-wholesale")
	registry := new(MockGatewayRegistry)
	registry.On("GetGateway", "acme-wholesale").Return(gateway, nil)
	gateway.On("Submit", mock.Anything, mock.Anything).Return(&fulfillment.SupplierOrderResult{
		SupplierID:     "acme-wholesale",
		LocationID:     partition.Location.ID,
		Success:        true,
		TrackingNumber: "TRK-1001",
	}, nil)

	d := NewDispatcher(registry, time.Second, zap.NewNop())
	result := d.Dispatch(context.Background(), testOrderContext(), partition)

	assert.True(t, result.Success)
	assert.Equal(t, "TRK-1001", result.TrackingNumber)
}

func TestDispatcher_GatewayError(t *testing.T) {
	partition := testPartition(t)
	gateway := NewMockSupplierGateway("acme-wholesale")
	registry := new(MockGatewayRegistry)
	registry.On("GetGateway", "acme-wholesale").Return(gateway, nil)
	gateway.On("Submit", mock.Anything, mock.Anything).
		Return(nil, errors.New("supplier API returned 502"))

	d := NewDispatcher(registry, time.Second, zap.NewNop())
	result := d.Dispatch(context.Background(), testOrderContext(), partition)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "502")
	assert.Equal(t, "acme-wholesale", result.SupplierID)
	assert.Equal(t, partition.Location.ID, result.LocationID)
}

func TestDispatcher_UnregisteredSupplier(t *testing.T) {
	partition := testPartition(t)
	registry := new(MockGatewayRegistry)
	registry.On("GetGateway", "acme-wholesale").
		Return(nil, fulfillment.ErrGatewayNotRegistered)

	d := NewDispatcher(registry, time.Second, zap.NewNop())
	result := d.Dispatch(context.Background(), testOrderContext(), partition)

	assert.False(t, result.Success)
	assert.Equal(t, fulfillment.ErrGatewayNotRegistered.Error(), result.Error)
}

func TestDispatcher_Timeout(t *testing.T) {
	partition := testPartition(t)
	gateway := NewMockSupplierGateway("acme-wholesale")
	registry := new(MockGatewayRegistry)
	registry.On("GetGateway", "acme-wholesale").Return(gateway, nil)
	gateway.On("Submit", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(nil, context.DeadlineExceeded)

	d := NewDispatcher(registry, 20*time.Millisecond, zap.NewNop())
	result := d.Dispatch(context.Background(), testOrderContext(), partition)

	assert.False(t, result.Success)
	assert.Equal(t, fulfillment.ErrDispatchTimeout.Error(), result.Error)
}

func TestDispatcher_PanicBecomesFailure(t *testing.T) {
	partition := testPartition(t)
	registry := new(MockGatewayRegistry)
	registry.On("GetGateway", "acme-wholesale").
		Run(func(mock.Arguments) { panic("gateway misbehaved") }).
		Return(nil, nil)

	d := NewDispatcher(registry, time.Second, zap.NewNop())
	result := d.Dispatch(context.Background(), testOrderContext(), partition)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "gateway misbehaved")
}
