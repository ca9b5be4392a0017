package fulfillment

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// NoMappingsMessage is returned when no line item resolves to a supplier
const NoMappingsMessage = "No supplier mappings found"

// Orchestrator drives one fulfillment request through partitioning, parallel
// dispatch and aggregation. Process never returns an error: every fault is
// absorbed into the response status so the storefront platform always gets a
// well-formed answer.
type Orchestrator struct {
	partitioner *Partitioner
	dispatcher  *Dispatcher
	aggregator  *Aggregator
	logger      *zap.Logger
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(
	partitioner *Partitioner,
	dispatcher *Dispatcher,
	aggregator *Aggregator,
	logger *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		partitioner: partitioner,
		dispatcher:  dispatcher,
		aggregator:  aggregator,
		logger:      logger,
	}
}

// Process handles one fulfillment request end to end.
//
// Partitions are dispatched concurrently, one goroutine per partition, and
// their results collected back in partition order so tracking aggregation is
// deterministic. A failing partition never cancels its siblings: a customer
// order that can be partially fulfilled should be.
func (o *Orchestrator) Process(ctx context.Context, req *fulfillment.FulfillmentRequest) (resp *fulfillment.FulfillmentResponse) {
	f := req.Fulfillment
	log := o.logger.With(
		zap.Int64("fulfillment_id", f.ID),
		zap.Int64("order_id", f.OrderID))
	defer func() {
		if r := recover(); r != nil {
			log.Error("fulfillment processing panicked",
				zap.String("stage", string(fulfillment.StageFailed)),
				zap.Any("panic", r))
			resp = &fulfillment.FulfillmentResponse{Fulfillment: f}
			resp.Fulfillment.Status = fulfillment.StatusError
			resp.Message = "internal error during fulfillment processing"
		}
	}()
	log.Info("fulfillment request received",
		zap.String("stage", string(fulfillment.StageReceived)),
		zap.Int("line_items", len(f.LineItems)))

	resp = &fulfillment.FulfillmentResponse{Fulfillment: f}

	partitioned, err := o.partitioner.PartitionOrder(ctx, f.LineItems)
	if err != nil {
		log.Error("partitioning failed",
			zap.String("stage", string(fulfillment.StageFailed)),
			zap.Error(err))
		resp.Fulfillment.Status = fulfillment.StatusError
		resp.Message = err.Error()
		return resp
	}
	resp.UnmappedVariantIDs = partitioned.UnmappedVariantIDs
	log.Info("order partitioned",
		zap.String("stage", string(fulfillment.StagePartitioned)),
		zap.Int("partitions", len(partitioned.Partitions)),
		zap.Int("unmapped_variants", len(partitioned.UnmappedVariantIDs)))

	if partitioned.IsEmpty() {
		log.Warn("no supplier mappings for order",
			zap.String("stage", string(fulfillment.StageFailed)))
		resp.Fulfillment.Status = fulfillment.StatusError
		resp.Message = NoMappingsMessage
		return resp
	}

	order := fulfillment.OrderContext{
		OrderID:         f.OrderID,
		ShippingAddress: f.DestinationAddress,
		CustomerEmail:   f.Email,
	}

	log.Info("dispatching partitions",
		zap.String("stage", string(fulfillment.StageDispatching)),
		zap.Int("partitions", len(partitioned.Partitions)))

	results := make([]fulfillment.SupplierOrderResult, len(partitioned.Partitions))
	var wg sync.WaitGroup
	for i, partition := range partitioned.Partitions {
		wg.Add(1)
		go func(i int, partition fulfillment.Partition) {
			defer wg.Done()
			results[i] = *o.dispatcher.Dispatch(ctx, order, partition)
		}(i, partition)
	}
	wg.Wait()

	outcome := o.aggregator.Aggregate(results)
	log.Info("dispatch results aggregated",
		zap.String("stage", string(fulfillment.StageAggregated)),
		zap.String("status", outcome.Status.String()),
		zap.String("tracking_number", outcome.TrackingNumber))

	resp.Fulfillment.Status = outcome.Status
	if outcome.HasTracking() {
		company := outcome.TrackingCompany
		number := outcome.TrackingNumber
		url := outcome.TrackingURL
		resp.Fulfillment.TrackingCompany = &company
		resp.Fulfillment.TrackingNumber = &number
		resp.Fulfillment.TrackingURL = &url
	}
	for _, r := range results {
		resp.SupplierResults = append(resp.SupplierResults, fulfillment.SupplierResultInfo{
			SupplierID:     r.SupplierID,
			LocationID:     r.LocationID.String(),
			Success:        r.Success,
			TrackingNumber: r.TrackingNumber,
			Error:          r.Error,
		})
	}

	log.Info("fulfillment request completed",
		zap.String("stage", string(fulfillment.StageResponded)),
		zap.String("status", resp.Fulfillment.Status.String()))
	return resp
}
