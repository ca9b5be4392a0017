package supplier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

func testOrderRequest() *fulfillment.SupplierOrderRequest {
	return &fulfillment.SupplierOrderRequest{
		SupplierID: "acme-wholesale",
		LocationID: uuid.New(),
		Items: []fulfillment.SupplierOrderItem{
			{SupplierProductID: "ACME-SKU-1", Quantity: 2, UnitCost: decimal.NewFromFloat(4.50), Currency: "USD"},
		},
		ShippingAddress: fulfillment.OrderAddress{
			Name: "Jane Customer", Address1: "742 Evergreen Terrace",
			City: "Springfield", Country: "United States", Zip: "62701",
		},
		CustomerEmail: "customer@example.com",
		OrderNote:     "Storefront order #450789469",
	}
}

func TestHTTPGatewayConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  HTTPGatewayConfig
		wantErr bool
	}{
		{
			name:   "valid",
			config: HTTPGatewayConfig{SupplierID: "acme", BaseURL: "https://api.acme.example", TimeoutSeconds: 20},
		},
		{
			name:    "missing supplier id",
			config:  HTTPGatewayConfig{BaseURL: "https://api.acme.example", TimeoutSeconds: 20},
			wantErr: true,
		},
		{
			name:    "missing base url",
			config:  HTTPGatewayConfig{SupplierID: "acme", TimeoutSeconds: 20},
			wantErr: true,
		},
		{
			name:    "zero timeout",
			config:  HTTPGatewayConfig{SupplierID: "acme", BaseURL: "https://api.acme.example"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHTTPGateway_Submit(t *testing.T) {
	var gotAuth string
	var gotBody fulfillment.SupplierOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"order_id":        "SUP-778899",
			"tracking_number": "TRK-445566",
		})
	}))
	defer server.Close()

	gateway, err := NewHTTPGateway(&HTTPGatewayConfig{
		SupplierID:     "acme-wholesale",
		BaseURL:        server.URL,
		APIKey:         "test-key",
		TimeoutSeconds: 5,
	})
	require.NoError(t, err)

	req := testOrderRequest()
	result, err := gateway.Submit(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "TRK-445566", result.TrackingNumber)
	assert.Equal(t, req.LocationID, result.LocationID)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "acme-wholesale", gotBody.SupplierID)
	assert.Len(t, gotBody.Items, 1)
}

func TestHTTPGateway_SubmitHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "out of stock", http.StatusConflict)
	}))
	defer server.Close()

	gateway, err := NewHTTPGateway(&HTTPGatewayConfig{
		SupplierID:     "acme-wholesale",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})
	require.NoError(t, err)

	_, err = gateway.Submit(context.Background(), testOrderRequest())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 409")
}

func TestHTTPGateway_SubmitUnreachable(t *testing.T) {
	gateway, err := NewHTTPGateway(&HTTPGatewayConfig{
		SupplierID:     "acme-wholesale",
		BaseURL:        "http://127.0.0.1:1",
		TimeoutSeconds: 1,
	})
	require.NoError(t, err)

	_, err = gateway.Submit(context.Background(), testOrderRequest())
	assert.ErrorIs(t, err, fulfillment.ErrGatewayUnavailable)
}
