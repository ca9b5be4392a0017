package fulfillment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// DefaultDispatchTimeout bounds one supplier submission when no timeout is
// configured
const DefaultDispatchTimeout = 30 * time.Second

// Dispatcher submits one partition to its supplier's gateway. Every fault,
// including a panicking gateway, becomes a failed SupplierOrderResult so the
// caller can keep dispatching the remaining partitions.
type Dispatcher struct {
	registry fulfillment.SupplierGatewayRegistry
	timeout  time.Duration
	logger   *zap.Logger
}

// NewDispatcher creates a new Dispatcher
func NewDispatcher(registry fulfillment.SupplierGatewayRegistry, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultDispatchTimeout
	}
	return &Dispatcher{
		registry: registry,
		timeout:  timeout,
		logger:   logger,
	}
}

// BuildRequest converts a partition into the outbound supplier order payload
func BuildRequest(order fulfillment.OrderContext, partition fulfillment.Partition) *fulfillment.SupplierOrderRequest {
	req := &fulfillment.SupplierOrderRequest{
		SupplierID:    partition.Location.SupplierID,
		LocationID:    partition.Location.ID,
		CustomerEmail: order.CustomerEmail,
		OrderNote:     fmt.Sprintf("Storefront order #%d", order.OrderID),
	}
	if order.ShippingAddress != nil {
		req.ShippingAddress = *order.ShippingAddress
	}
	for _, resolved := range partition.Items {
		req.Items = append(req.Items, fulfillment.SupplierOrderItem{
			SupplierProductID: resolved.Mapping.SupplierProductID,
			SupplierVariantID: resolved.Mapping.SupplierVariantID,
			Quantity:          resolved.Item.Quantity,
			UnitCost:          resolved.Mapping.UnitCost,
			Currency:          resolved.Mapping.Currency,
		})
	}
	return req
}

// Dispatch submits one partition and always returns a result, never an error
func (d *Dispatcher) Dispatch(ctx context.Context, order fulfillment.OrderContext, partition fulfillment.Partition) (result *fulfillment.SupplierOrderResult) {
	req := BuildRequest(order, partition)

	failed := func(reason string) *fulfillment.SupplierOrderResult {
		return &fulfillment.SupplierOrderResult{
			SupplierID: req.SupplierID,
			LocationID: req.LocationID,
			Success:    false,
			Error:      reason,
		}
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("supplier gateway panicked",
				zap.String("supplier_id", req.SupplierID),
				zap.Any("panic", r))
			result = failed(fmt.Sprintf("gateway panic: %v", r))
		}
	}()

	gateway, err := d.registry.GetGateway(req.SupplierID)
	if err != nil {
		d.logger.Error("no gateway for supplier",
			zap.String("supplier_id", req.SupplierID),
			zap.Error(err))
		return failed(err.Error())
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	res, err := gateway.Submit(dispatchCtx, req)
	elapsed := time.Since(start)

	if err != nil {
		if dispatchCtx.Err() == context.DeadlineExceeded {
			d.logger.Error("supplier dispatch timed out",
				zap.String("supplier_id", req.SupplierID),
				zap.Duration("timeout", d.timeout))
			return failed(fulfillment.ErrDispatchTimeout.Error())
		}
		d.logger.Error("supplier dispatch failed",
			zap.String("supplier_id", req.SupplierID),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return failed(err.Error())
	}

	if res == nil {
		return failed("gateway returned no result")
	}

	d.logger.Info("supplier dispatch completed",
		zap.String("supplier_id", res.SupplierID),
		zap.Bool("success", res.Success),
		zap.String("tracking_number", res.TrackingNumber),
		zap.Duration("elapsed", elapsed))
	return res
}
