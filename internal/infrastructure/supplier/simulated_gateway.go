package supplier

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// SimulatedGateway is a local stand-in for a real supplier order API. It
// accepts every order, generates tracking numbers, and can be configured to
// fail a fraction of submissions for resilience testing.
// It implements fulfillment.SupplierGateway.
type SimulatedGateway struct {
	supplierID  string
	failureRate float64

	mu   sync.Mutex
	rng  *rand.Rand
	next int
}

// NewSimulatedGateway creates a simulated gateway.
// failureRate is the fraction of submissions that fail, within [0,1].
func NewSimulatedGateway(supplierID string, failureRate float64, seed int64) *SimulatedGateway {
	return &SimulatedGateway{
		supplierID:  supplierID,
		failureRate: failureRate,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// SupplierID returns the supplier this gateway submits to
func (g *SimulatedGateway) SupplierID() string {
	return g.supplierID
}

// Submit accepts the order or simulates a supplier-side failure
func (g *SimulatedGateway) Submit(ctx context.Context, req *fulfillment.SupplierOrderRequest) (*fulfillment.SupplierOrderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.next++
	seq := g.next
	fail := g.rng.Float64() < g.failureRate
	g.mu.Unlock()

	if fail {
		return nil, fmt.Errorf("supplier: %s rejected the order", g.supplierID)
	}

	return &fulfillment.SupplierOrderResult{
		SupplierID:     g.supplierID,
		LocationID:     req.LocationID,
		Success:        true,
		TrackingNumber: fmt.Sprintf("SIM-%s-%06d", g.supplierID, seq),
	}, nil
}

// Ensure SimulatedGateway implements SupplierGateway
var _ fulfillment.SupplierGateway = (*SimulatedGateway)(nil)
