package fulfillment

// ---------------------------------------------------------------------------
// Status represents the storefront platform's fulfillment status
// ---------------------------------------------------------------------------

// Status represents the storefront platform's fulfillment status.
// The orchestration core only ever sets StatusSuccess or StatusError; the
// remaining values are part of the platform contract and passed through.
type Status string

const (
	// StatusPending indicates the fulfillment has not been processed yet
	StatusPending Status = "pending"
	// StatusOpen indicates the fulfillment has been acknowledged by the service
	StatusOpen Status = "open"
	// StatusSuccess indicates every supplier dispatch succeeded
	StatusSuccess Status = "success"
	// StatusCancelled indicates the fulfillment was cancelled
	StatusCancelled Status = "cancelled"
	// StatusError indicates at least one supplier dispatch failed
	StatusError Status = "error"
	// StatusFailure indicates the platform rejected the fulfillment
	StatusFailure Status = "failure"
)

// IsValid returns true if the status is part of the platform contract
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusOpen, StatusSuccess, StatusCancelled, StatusError, StatusFailure:
		return true
	default:
		return false
	}
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// ---------------------------------------------------------------------------
// Stage represents the orchestrator's processing stage for one request
// ---------------------------------------------------------------------------

// Stage represents how far one fulfillment request has progressed through
// the orchestrator. Stages are per-request and never persisted.
type Stage string

const (
	StageReceived    Stage = "received"
	StagePartitioned Stage = "partitioned"
	StageDispatching Stage = "dispatching"
	StageAggregated  Stage = "aggregated"
	StageResponded   Stage = "responded"
	StageFailed      Stage = "failed"
)

// String returns the string representation of Stage
func (s Stage) String() string {
	return string(s)
}
