package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// The memory driver backs the repositories with plain maps. It exists for
// development and tests, and honors the same contracts as the GORM
// implementations: whole-record replacement on save and the
// at-most-one-active mapping invariant on ReplaceActiveForVariant.

// MemorySupplierLocationRepository is an in-memory SupplierLocationRepository
type MemorySupplierLocationRepository struct {
	mu        sync.RWMutex
	locations map[uuid.UUID]fulfillment.SupplierLocation
}

// NewMemorySupplierLocationRepository creates a new in-memory location repository
func NewMemorySupplierLocationRepository() *MemorySupplierLocationRepository {
	return &MemorySupplierLocationRepository{
		locations: make(map[uuid.UUID]fulfillment.SupplierLocation),
	}
}

// FindByID finds a location by its ID
func (r *MemorySupplierLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*fulfillment.SupplierLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	loc, ok := r.locations[id]
	if !ok {
		return nil, fulfillment.ErrLocationNotFound
	}
	copied := loc
	return &copied, nil
}

// FindBySupplierAndFingerprint finds a location by its upsert identity
func (r *MemorySupplierLocationRepository) FindBySupplierAndFingerprint(ctx context.Context, supplierID, fingerprint string) (*fulfillment.SupplierLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, loc := range r.locations {
		if loc.SupplierID == supplierID && loc.Fingerprint() == fingerprint {
			copied := loc
			return &copied, nil
		}
	}
	return nil, fulfillment.ErrLocationNotFound
}

// ListActiveBySupplier returns all active locations for a supplier
func (r *MemorySupplierLocationRepository) ListActiveBySupplier(ctx context.Context, supplierID string) ([]fulfillment.SupplierLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []fulfillment.SupplierLocation
	for _, loc := range r.locations {
		if loc.SupplierID == supplierID && loc.IsActive {
			result = append(result, loc)
		}
	}
	return result, nil
}

// Save creates or updates a location. The record is stored by value, so a
// concurrent reader never observes a partial update.
func (r *MemorySupplierLocationRepository) Save(ctx context.Context, location *fulfillment.SupplierLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.locations[location.ID] = *location
	return nil
}

// UpsertByIdentity creates the location or replaces the record sharing its
// (supplier, fingerprint) identity. Lookup and write happen under one lock
// acquisition, so concurrent upserts of the same identity serialize instead
// of both inserting.
func (r *MemorySupplierLocationRepository) UpsertByIdentity(ctx context.Context, incoming *fulfillment.SupplierLocation) (*fulfillment.SupplierLocation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fingerprint := incoming.Fingerprint()
	for id, loc := range r.locations {
		if loc.SupplierID == incoming.SupplierID && loc.Fingerprint() == fingerprint {
			loc.ApplyUpsert(incoming)
			r.locations[id] = loc
			copied := loc
			return &copied, nil
		}
	}

	r.locations[incoming.ID] = *incoming
	copied := *incoming
	return &copied, nil
}

// MemoryVariantMappingRepository is an in-memory VariantMappingRepository
type MemoryVariantMappingRepository struct {
	mu       sync.RWMutex
	mappings map[uuid.UUID]fulfillment.VariantMapping
}

// NewMemoryVariantMappingRepository creates a new in-memory mapping repository
func NewMemoryVariantMappingRepository() *MemoryVariantMappingRepository {
	return &MemoryVariantMappingRepository{
		mappings: make(map[uuid.UUID]fulfillment.VariantMapping),
	}
}

// FindByID finds a mapping by its ID
func (r *MemoryVariantMappingRepository) FindByID(ctx context.Context, id uuid.UUID) (*fulfillment.VariantMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.mappings[id]
	if !ok {
		return nil, fulfillment.ErrMappingNotFound
	}
	copied := m
	return &copied, nil
}

// FindActiveByVariant returns the unique active mapping for a variant
func (r *MemoryVariantMappingRepository) FindActiveByVariant(ctx context.Context, variantID string) (*fulfillment.VariantMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *fulfillment.VariantMapping
	for _, m := range r.mappings {
		if m.VariantID != variantID || !m.IsActive {
			continue
		}
		if found != nil {
			return nil, fulfillment.ErrMappingConflict
		}
		copied := m
		found = &copied
	}
	if found == nil {
		return nil, fulfillment.ErrMappingNotFound
	}
	return found, nil
}

// ListByVariant returns every mapping for a variant
func (r *MemoryVariantMappingRepository) ListByVariant(ctx context.Context, variantID string) ([]fulfillment.VariantMapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []fulfillment.VariantMapping
	for _, m := range r.mappings {
		if m.VariantID == variantID {
			result = append(result, m)
		}
	}
	return result, nil
}

// Save creates or updates a mapping without touching sibling mappings
func (r *MemoryVariantMappingRepository) Save(ctx context.Context, mapping *fulfillment.VariantMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.mappings[mapping.ID] = *mapping
	return nil
}

// ReplaceActiveForVariant saves the mapping and deactivates any other active
// mapping for the same variant under one lock acquisition
func (r *MemoryVariantMappingRepository) ReplaceActiveForVariant(ctx context.Context, mapping *fulfillment.VariantMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, m := range r.mappings {
		if m.VariantID == mapping.VariantID && m.IsActive && id != mapping.ID {
			m.IsActive = false
			r.mappings[id] = m
		}
	}
	r.mappings[mapping.ID] = *mapping
	return nil
}
