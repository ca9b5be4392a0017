package fulfillment

import (
	"fmt"
	"strings"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// Default tracking labels shown to the customer
const (
	DefaultTrackingCompany         = "Dropship Service"
	DefaultTrackingCompanyMultiple = "Dropship Service (Multiple)"
)

// Aggregator merges per-partition dispatch results into a single order
// outcome
type Aggregator struct {
	baseURL         string
	company         string
	companyMultiple string
}

// NewAggregator creates a new Aggregator. baseURL is the public tracking page
// root, without a trailing slash.
func NewAggregator(baseURL, company, companyMultiple string) *Aggregator {
	if company == "" {
		company = DefaultTrackingCompany
	}
	if companyMultiple == "" {
		companyMultiple = DefaultTrackingCompanyMultiple
	}
	return &Aggregator{
		baseURL:         strings.TrimRight(baseURL, "/"),
		company:         company,
		companyMultiple: companyMultiple,
	}
}

// Aggregate reduces dispatch results to one status plus merged tracking.
// The order is successful only when every partition succeeded. Tracking
// numbers are concatenated in result order, so callers must pass results in
// partition order.
func (a *Aggregator) Aggregate(results []fulfillment.SupplierOrderResult) fulfillment.AggregateOutcome {
	allSucceeded := len(results) > 0
	var trackingNumbers []string
	for _, r := range results {
		if !r.Success {
			allSucceeded = false
			continue
		}
		if r.TrackingNumber != "" {
			trackingNumbers = append(trackingNumbers, r.TrackingNumber)
		}
	}

	outcome := fulfillment.AggregateOutcome{Status: fulfillment.StatusError}
	if allSucceeded {
		outcome.Status = fulfillment.StatusSuccess
	}

	switch len(trackingNumbers) {
	case 0:
	case 1:
		outcome.TrackingCompany = a.company
		outcome.TrackingNumber = trackingNumbers[0]
		outcome.TrackingURL = fmt.Sprintf("%s/%s", a.baseURL, trackingNumbers[0])
	default:
		joined := strings.Join(trackingNumbers, ",")
		outcome.TrackingCompany = a.companyMultiple
		outcome.TrackingNumber = joined
		outcome.TrackingURL = fmt.Sprintf("%s/combined/%s", a.baseURL, joined)
	}

	return outcome
}
