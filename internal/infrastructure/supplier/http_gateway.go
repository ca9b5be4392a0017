package supplier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// maxResponseSize is the maximum allowed response size from a supplier API (1MB)
const maxResponseSize = 1 * 1024 * 1024

// HTTPGatewayConfig holds the connection settings for one supplier's order API
type HTTPGatewayConfig struct {
	SupplierID     string
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// Validate validates the gateway configuration
func (c *HTTPGatewayConfig) Validate() error {
	if c.SupplierID == "" {
		return errors.New("supplier: gateway config missing supplier id")
	}
	if c.BaseURL == "" {
		return errors.New("supplier: gateway config missing base URL")
	}
	if c.TimeoutSeconds <= 0 {
		return errors.New("supplier: gateway config requires a positive timeout")
	}
	return nil
}

// HTTPGateway submits supplier orders over the supplier's JSON order API.
// It implements fulfillment.SupplierGateway.
type HTTPGateway struct {
	config     *HTTPGatewayConfig
	httpClient *http.Client
}

// NewHTTPGateway creates a new HTTP gateway with the given configuration
func NewHTTPGateway(config *HTTPGatewayConfig) (*HTTPGateway, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &HTTPGateway{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// SupplierID returns the supplier this gateway submits to
func (g *HTTPGateway) SupplierID() string {
	return g.config.SupplierID
}

// orderResponse is the supplier API's answer to an order submission
type orderResponse struct {
	OrderID        string `json:"order_id"`
	TrackingNumber string `json:"tracking_number"`
	Message        string `json:"message"`
}

// Submit places one supplier order against the supplier's /orders endpoint
func (g *HTTPGateway) Submit(ctx context.Context, req *fulfillment.SupplierOrderRequest) (*fulfillment.SupplierOrderResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("supplier: failed to encode order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", g.config.BaseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("supplier: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if g.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.config.APIKey)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", fulfillment.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("supplier: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("supplier: %s order API returned HTTP %d", g.config.SupplierID, resp.StatusCode)
	}

	var parsed orderResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("supplier: failed to decode response: %w", err)
	}

	return &fulfillment.SupplierOrderResult{
		SupplierID:     g.config.SupplierID,
		LocationID:     req.LocationID,
		Success:        true,
		TrackingNumber: parsed.TrackingNumber,
	}, nil
}

// Ensure HTTPGateway implements SupplierGateway
var _ fulfillment.SupplierGateway = (*HTTPGateway)(nil)
