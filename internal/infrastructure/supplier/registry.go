package supplier

import (
	"fmt"
	"sync"
	"time"

	"github.com/furcel/backend/internal/domain/fulfillment"
	"github.com/furcel/backend/internal/infrastructure/config"
)

// Registry holds the configured supplier gateways keyed by supplier id.
// It implements fulfillment.SupplierGatewayRegistry.
type Registry struct {
	mu       sync.RWMutex
	gateways map[string]fulfillment.SupplierGateway
}

// NewRegistry creates an empty gateway registry
func NewRegistry() *Registry {
	return &Registry{
		gateways: make(map[string]fulfillment.SupplierGateway),
	}
}

// Register adds a gateway, replacing any previous one for the same supplier
func (r *Registry) Register(gateway fulfillment.SupplierGateway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gateways[gateway.SupplierID()] = gateway
}

// GetGateway returns the gateway for the given supplier id
func (r *Registry) GetGateway(supplierID string) (fulfillment.SupplierGateway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gateway, ok := r.gateways[supplierID]
	if !ok {
		return nil, fulfillment.ErrGatewayNotRegistered
	}
	return gateway, nil
}

// ListGateways returns all registered gateways
func (r *Registry) ListGateways() []fulfillment.SupplierGateway {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gateways := make([]fulfillment.SupplierGateway, 0, len(r.gateways))
	for _, g := range r.gateways {
		gateways = append(gateways, g)
	}
	return gateways
}

// BuildRegistry constructs a registry from supplier configuration entries
func BuildRegistry(configs []config.SupplierConfig) (*Registry, error) {
	registry := NewRegistry()
	for _, sc := range configs {
		switch sc.Mode {
		case "http":
			gateway, err := NewHTTPGateway(&HTTPGatewayConfig{
				SupplierID:     sc.ID,
				BaseURL:        sc.BaseURL,
				APIKey:         sc.APIKey,
				TimeoutSeconds: sc.TimeoutSeconds,
			})
			if err != nil {
				return nil, fmt.Errorf("supplier %q: %w", sc.ID, err)
			}
			registry.Register(gateway)
		case "simulated":
			registry.Register(NewSimulatedGateway(sc.ID, sc.FailureRate, time.Now().UnixNano()))
		default:
			return nil, fmt.Errorf("supplier %q: unknown mode %q", sc.ID, sc.Mode)
		}
	}
	return registry, nil
}

// Ensure Registry implements SupplierGatewayRegistry
var _ fulfillment.SupplierGatewayRegistry = (*Registry)(nil)
