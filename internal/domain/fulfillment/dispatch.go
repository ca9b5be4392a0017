package fulfillment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Partition Value Objects
// ---------------------------------------------------------------------------

// ResolvedItem is a line item decorated with its resolved variant mapping
type ResolvedItem struct {
	Item    LineItem
	Mapping VariantMapping
}

// Partition is the subset of an order's line items routed to one supplier
// location. Partitions exist for one dispatch cycle and are never persisted.
type Partition struct {
	Location SupplierLocation
	Items    []ResolvedItem
}

// PartitionResult is the outcome of partitioning one order. Partitions are
// ordered by first appearance of their location in the order's line items so
// that dispatch (and therefore tracking aggregation) is deterministic.
// UnmappedVariantIDs lists variants that had no active mapping, deduplicated,
// in encounter order.
type PartitionResult struct {
	Partitions         []Partition
	UnmappedVariantIDs []string
}

// IsEmpty returns true when no line item resolved to a supplier location
func (r *PartitionResult) IsEmpty() bool {
	return len(r.Partitions) == 0
}

// ---------------------------------------------------------------------------
// Supplier Order Value Objects
// ---------------------------------------------------------------------------

// OrderContext carries the order-scoped data every dispatch needs
type OrderContext struct {
	// OrderID is the storefront order id
	OrderID int64
	// ShippingAddress is the customer's destination address
	ShippingAddress *OrderAddress
	// CustomerEmail is the customer's contact email
	CustomerEmail string
}

// SupplierOrderItem is one line of an outbound supplier order
type SupplierOrderItem struct {
	SupplierProductID string          `json:"supplier_product_id"`
	SupplierVariantID string          `json:"supplier_variant_id,omitempty"`
	Quantity          int             `json:"quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	Currency          string          `json:"currency"`
}

// SupplierOrderRequest is the outbound payload for one partition. It is built
// fresh per dispatch and never persisted.
type SupplierOrderRequest struct {
	SupplierID      string              `json:"supplier_id"`
	LocationID      uuid.UUID           `json:"location_id"`
	Items           []SupplierOrderItem `json:"items"`
	ShippingAddress OrderAddress        `json:"shipping_address"`
	CustomerEmail   string              `json:"customer_email,omitempty"`
	OrderNote       string              `json:"order_note,omitempty"`
}

// SupplierOrderResult is the outcome of one dispatch. A transport fault is
// always converted into Success=false with Error set; it never propagates as
// an error past the dispatcher.
type SupplierOrderResult struct {
	SupplierID     string
	LocationID     uuid.UUID
	Success        bool
	TrackingNumber string
	Error          string
}

// AggregateOutcome is the merged status/tracking result across all partitions
// of one order
type AggregateOutcome struct {
	Status          Status
	TrackingCompany string
	TrackingNumber  string
	TrackingURL     string
}

// HasTracking returns true if the outcome carries tracking information
func (o AggregateOutcome) HasTracking() bool {
	return o.TrackingNumber != ""
}

// ---------------------------------------------------------------------------
// SupplierGateway Port Interface
// ---------------------------------------------------------------------------

// SupplierGateway is the port for submitting orders to one supplier's
// fulfillment system. Implementations (HTTP marketplace APIs, the simulated
// gateway) live in the infrastructure layer. Submit is expected to be remote,
// latent and fallible; callers bound it with a context deadline. Retry policy
// belongs to the gateway implementation, never to the caller.
type SupplierGateway interface {
	// SupplierID returns the supplier this gateway submits to
	SupplierID() string

	// Submit places one supplier order and reports its outcome
	Submit(ctx context.Context, req *SupplierOrderRequest) (*SupplierOrderResult, error)
}

// SupplierGatewayRegistry provides access to the configured supplier gateways
type SupplierGatewayRegistry interface {
	// GetGateway returns the gateway for the given supplier id.
	// Returns ErrGatewayNotRegistered when the supplier is unknown.
	GetGateway(supplierID string) (SupplierGateway, error)

	// ListGateways returns all registered gateways
	ListGateways() []SupplierGateway
}
