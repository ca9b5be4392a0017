package fulfillment

import "github.com/furcel/backend/internal/domain/shared"

var (
	// Location errors
	ErrLocationNotFound          = shared.NewDomainError("NOT_FOUND", "fulfillment: supplier location not found")
	ErrLocationInvalidSupplierID = shared.NewDomainError("INVALID_INPUT", "fulfillment: invalid supplier ID")
	ErrLocationInvalidName       = shared.NewDomainError("INVALID_INPUT", "fulfillment: invalid location name")
	ErrLocationInvalidAddress    = shared.NewDomainError("INVALID_INPUT", "fulfillment: invalid location address")
	ErrLocationInactive          = shared.NewDomainError("INVALID_STATE", "fulfillment: supplier location is inactive")

	// Mapping errors
	ErrMappingNotFound                 = shared.NewDomainError("NOT_FOUND", "fulfillment: variant mapping not found")
	ErrMappingConflict                 = shared.NewDomainError("CONCURRENCY_CONFLICT", "fulfillment: multiple active mappings for variant")
	ErrMappingInvalidVariantID         = shared.NewDomainError("INVALID_INPUT", "fulfillment: invalid variant ID")
	ErrMappingInvalidProductID         = shared.NewDomainError("INVALID_INPUT", "fulfillment: invalid product ID")
	ErrMappingInvalidSupplierID        = shared.NewDomainError("INVALID_INPUT", "fulfillment: invalid supplier ID for mapping")
	ErrMappingInvalidSupplierProductID = shared.NewDomainError("INVALID_INPUT", "fulfillment: invalid supplier product ID")
	ErrMappingInvalidLocationID        = shared.NewDomainError("INVALID_INPUT", "fulfillment: invalid supplier location ID")
	ErrMappingInvalidCurrency          = shared.NewDomainError("INVALID_INPUT", "fulfillment: invalid currency code")
	ErrMappingNegativeCost             = shared.NewDomainError("INVALID_INPUT", "fulfillment: unit cost cannot be negative")

	// Orchestration errors
	ErrNoSupplierMappings = shared.NewDomainError("NOT_FOUND", "fulfillment: no supplier mappings found")

	// Gateway errors. These never cross the HTTP boundary, dispatch folds
	// them into per-supplier failure results instead.
	ErrGatewayNotRegistered = shared.NewDomainError("NOT_FOUND", "fulfillment: no gateway registered for supplier")
	ErrGatewayUnavailable   = shared.NewDomainError("UNAVAILABLE", "fulfillment: supplier gateway temporarily unavailable")
	ErrDispatchTimeout      = shared.NewDomainError("TIMEOUT", "fulfillment: supplier dispatch timed out")
)
