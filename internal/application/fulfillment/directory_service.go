package fulfillment

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// DirectoryService manages the supplier directory: locations and the variant
// mappings that route storefront variants to them.
type DirectoryService struct {
	locationRepo fulfillment.SupplierLocationRepository
	mappingRepo  fulfillment.VariantMappingRepository
	logger       *zap.Logger
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(
	locationRepo fulfillment.SupplierLocationRepository,
	mappingRepo fulfillment.VariantMappingRepository,
	logger *zap.Logger,
) *DirectoryService {
	return &DirectoryService{
		locationRepo: locationRepo,
		mappingRepo:  mappingRepo,
		logger:       logger,
	}
}

// UpsertLocation creates the location or, when one already exists for the
// same (supplier, address fingerprint) pair, replaces its mutable fields
// while keeping the original ID and CreatedAt. The find-and-replace is the
// repository's single atomic operation, so concurrent upserts of the same
// identity converge on one record.
func (s *DirectoryService) UpsertLocation(ctx context.Context, incoming *fulfillment.SupplierLocation) (*fulfillment.SupplierLocation, error) {
	if err := incoming.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.locationRepo.UpsertByIdentity(ctx, incoming)
	if err != nil {
		return nil, err
	}

	if saved.ID == incoming.ID {
		s.logger.Info("supplier location created",
			zap.String("location_id", saved.ID.String()),
			zap.String("supplier_id", saved.SupplierID))
	} else {
		s.logger.Info("supplier location updated",
			zap.String("location_id", saved.ID.String()),
			zap.String("supplier_id", saved.SupplierID))
	}
	return saved, nil
}

// GetLocation returns a location by id
func (s *DirectoryService) GetLocation(ctx context.Context, id uuid.UUID) (*fulfillment.SupplierLocation, error) {
	return s.locationRepo.FindByID(ctx, id)
}

// ListLocationsBySupplier returns all active locations of a supplier
func (s *DirectoryService) ListLocationsBySupplier(ctx context.Context, supplierID string) ([]fulfillment.SupplierLocation, error) {
	return s.locationRepo.ListActiveBySupplier(ctx, supplierID)
}

// UpsertMapping saves the mapping and deactivates any other active mapping
// for the same variant, so at most one active mapping exists per variant.
func (s *DirectoryService) UpsertMapping(ctx context.Context, mapping *fulfillment.VariantMapping) (*fulfillment.VariantMapping, error) {
	if err := mapping.Validate(); err != nil {
		return nil, err
	}

	loc, err := s.locationRepo.FindByID(ctx, mapping.LocationID)
	if err != nil {
		return nil, err
	}
	if !loc.IsActive {
		return nil, fulfillment.ErrLocationInactive
	}

	if err := s.mappingRepo.ReplaceActiveForVariant(ctx, mapping); err != nil {
		return nil, err
	}
	s.logger.Info("variant mapping upserted",
		zap.String("mapping_id", mapping.ID.String()),
		zap.String("variant_id", mapping.VariantID),
		zap.String("supplier_id", mapping.SupplierID))
	return mapping, nil
}

// GetMappingForVariant returns the unique active mapping for a variant
func (s *DirectoryService) GetMappingForVariant(ctx context.Context, variantID string) (*fulfillment.VariantMapping, error) {
	if variantID == "" {
		return nil, fulfillment.ErrMappingInvalidVariantID
	}
	return s.mappingRepo.FindActiveByVariant(ctx, variantID)
}

// GetLocationForVariant resolves a variant to its supplier location through
// the active mapping
func (s *DirectoryService) GetLocationForVariant(ctx context.Context, variantID string) (*fulfillment.SupplierLocation, *fulfillment.VariantMapping, error) {
	mapping, err := s.GetMappingForVariant(ctx, variantID)
	if err != nil {
		return nil, nil, err
	}
	loc, err := s.locationRepo.FindByID(ctx, mapping.LocationID)
	if err != nil {
		return nil, nil, err
	}
	return loc, mapping, nil
}
