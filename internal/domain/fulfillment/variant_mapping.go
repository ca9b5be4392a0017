package fulfillment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// VariantMapping Entity
// ---------------------------------------------------------------------------

// VariantMapping binds one storefront product variant to one supplier's
// sellable unit at one supplier location.
//
// Invariant: at most one *active* mapping may exist per storefront variant id.
// The invariant is enforced at write time (UpsertMapping replaces any prior
// active mapping); a read that still finds duplicates fails with
// ErrMappingConflict instead of silently picking the first match.
type VariantMapping struct {
	// ID is the unique identifier of this mapping
	ID uuid.UUID
	// ProductID is the storefront product id
	ProductID string
	// VariantID is the storefront variant id (the lookup key)
	VariantID string
	// SupplierID identifies the supplier that sells this variant
	SupplierID string
	// SupplierProductID is the product id on the supplier's side
	SupplierProductID string
	// SupplierVariantID is the variant id on the supplier's side (optional)
	SupplierVariantID string
	// LocationID references the SupplierLocation that ships this variant
	LocationID uuid.UUID
	// UnitCost is the per-unit cost charged by the supplier
	UnitCost decimal.Decimal
	// Currency is the ISO 4217 currency code of UnitCost
	Currency string
	// IsActive indicates if this mapping is currently in effect
	IsActive bool
	// CreatedAt is when this mapping was created
	CreatedAt time.Time
	// UpdatedAt is when this mapping was last updated
	UpdatedAt time.Time
}

// NewVariantMapping creates a new variant mapping
func NewVariantMapping(
	productID string,
	variantID string,
	supplierID string,
	supplierProductID string,
	locationID uuid.UUID,
	unitCost decimal.Decimal,
	currency string,
) (*VariantMapping, error) {
	if productID == "" {
		return nil, ErrMappingInvalidProductID
	}
	if variantID == "" {
		return nil, ErrMappingInvalidVariantID
	}
	if supplierID == "" {
		return nil, ErrMappingInvalidSupplierID
	}
	if supplierProductID == "" {
		return nil, ErrMappingInvalidSupplierProductID
	}
	if locationID == uuid.Nil {
		return nil, ErrMappingInvalidLocationID
	}
	if unitCost.IsNegative() {
		return nil, ErrMappingNegativeCost
	}
	if len(currency) != 3 {
		return nil, ErrMappingInvalidCurrency
	}

	now := time.Now()
	return &VariantMapping{
		ID:                uuid.New(),
		ProductID:         productID,
		VariantID:         variantID,
		SupplierID:        supplierID,
		SupplierProductID: supplierProductID,
		LocationID:        locationID,
		UnitCost:          unitCost,
		Currency:          currency,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// Validate validates the variant mapping
func (m *VariantMapping) Validate() error {
	if m.ProductID == "" {
		return ErrMappingInvalidProductID
	}
	if m.VariantID == "" {
		return ErrMappingInvalidVariantID
	}
	if m.SupplierID == "" {
		return ErrMappingInvalidSupplierID
	}
	if m.SupplierProductID == "" {
		return ErrMappingInvalidSupplierProductID
	}
	if m.LocationID == uuid.Nil {
		return ErrMappingInvalidLocationID
	}
	if m.UnitCost.IsNegative() {
		return ErrMappingNegativeCost
	}
	if len(m.Currency) != 3 {
		return ErrMappingInvalidCurrency
	}
	return nil
}

// Activate activates this mapping
func (m *VariantMapping) Activate() {
	m.IsActive = true
	m.UpdatedAt = time.Now()
}

// Deactivate deactivates this mapping
func (m *VariantMapping) Deactivate() {
	m.IsActive = false
	m.UpdatedAt = time.Now()
}

// ---------------------------------------------------------------------------
// VariantMappingRepository Interface
// ---------------------------------------------------------------------------

// VariantMappingRepository defines the interface for persisting variant
// mappings. ReplaceActiveForVariant is the write path that upholds the
// at-most-one-active invariant: it must deactivate every other active mapping
// for the same variant and save the given one in a single atomic operation.
type VariantMappingRepository interface {
	// FindByID finds a mapping by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*VariantMapping, error)

	// FindActiveByVariant returns the unique active mapping for a variant.
	// Returns ErrMappingNotFound when none exists and ErrMappingConflict when
	// storage holds more than one active mapping for the variant.
	FindActiveByVariant(ctx context.Context, variantID string) (*VariantMapping, error)

	// ListByVariant returns every mapping (active or not) for a variant
	ListByVariant(ctx context.Context, variantID string) ([]VariantMapping, error)

	// Save creates or updates a mapping without touching sibling mappings
	Save(ctx context.Context, mapping *VariantMapping) error

	// ReplaceActiveForVariant saves the mapping and deactivates any other
	// active mapping for the same variant id, atomically
	ReplaceActiveForVariant(ctx context.Context, mapping *VariantMapping) error
}
