package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

func TestAggregator_Aggregate(t *testing.T) {
	a := NewAggregator("https://track.example.com", "", "")

	tests := []struct {
		name         string
		results      []fulfillment.SupplierOrderResult
		wantStatus   fulfillment.Status
		wantCompany  string
		wantTracking string
		wantURL      string
	}{
		{
			name: "single success",
			results: []fulfillment.SupplierOrderResult{
				{Success: true, TrackingNumber: "TRK-1001"},
			},
			wantStatus:   fulfillment.StatusSuccess,
			wantCompany:  DefaultTrackingCompany,
			wantTracking: "TRK-1001",
			wantURL:      "https://track.example.com/TRK-1001",
		},
		{
			name: "multiple successes combine tracking in order",
			results: []fulfillment.SupplierOrderResult{
				{Success: true, TrackingNumber: "TRK-1001"},
				{Success: true, TrackingNumber: "TRK-2002"},
			},
			wantStatus:   fulfillment.StatusSuccess,
			wantCompany:  DefaultTrackingCompanyMultiple,
			wantTracking: "TRK-1001,TRK-2002",
			wantURL:      "https://track.example.com/combined/TRK-1001,TRK-2002",
		},
		{
			name: "one failure fails the order but keeps surviving tracking",
			results: []fulfillment.SupplierOrderResult{
				{Success: true, TrackingNumber: "TRK-1001"},
				{Success: false, Error: "supplier API returned 502"},
			},
			wantStatus:   fulfillment.StatusError,
			wantCompany:  DefaultTrackingCompany,
			wantTracking: "TRK-1001",
			wantURL:      "https://track.example.com/TRK-1001",
		},
		{
			name: "all failures yield no tracking",
			results: []fulfillment.SupplierOrderResult{
				{Success: false, Error: "timeout"},
				{Success: false, Error: "timeout"},
			},
			wantStatus: fulfillment.StatusError,
		},
		{
			name: "success without tracking number",
			results: []fulfillment.SupplierOrderResult{
				{Success: true},
			},
			wantStatus: fulfillment.StatusSuccess,
		},
		{
			name:       "no results",
			results:    nil,
			wantStatus: fulfillment.StatusError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := a.Aggregate(tt.results)
			assert.Equal(t, tt.wantStatus, outcome.Status)
			assert.Equal(t, tt.wantCompany, outcome.TrackingCompany)
			assert.Equal(t, tt.wantTracking, outcome.TrackingNumber)
			assert.Equal(t, tt.wantURL, outcome.TrackingURL)
		})
	}
}

func TestAggregator_TrimsTrailingSlash(t *testing.T) {
	a := NewAggregator("https://track.example.com/", "", "")
	outcome := a.Aggregate([]fulfillment.SupplierOrderResult{
		{Success: true, TrackingNumber: "TRK-1001"},
	})
	assert.Equal(t, "https://track.example.com/TRK-1001", outcome.TrackingURL)
}

func TestAggregator_CustomLabels(t *testing.T) {
	a := NewAggregator("https://track.example.com", "Acme Shipping", "Acme Shipping (Split)")
	outcome := a.Aggregate([]fulfillment.SupplierOrderResult{
		{Success: true, TrackingNumber: "TRK-1001"},
		{Success: true, TrackingNumber: "TRK-2002"},
	})
	assert.Equal(t, "Acme Shipping (Split)", outcome.TrackingCompany)
}
