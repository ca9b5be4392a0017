package fulfillment

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// Partitioner splits an order's line items into per-location partitions by
// resolving each variant through the mapping directory.
type Partitioner struct {
	locationRepo fulfillment.SupplierLocationRepository
	mappingRepo  fulfillment.VariantMappingRepository
	logger       *zap.Logger
}

// NewPartitioner creates a new Partitioner
func NewPartitioner(
	locationRepo fulfillment.SupplierLocationRepository,
	mappingRepo fulfillment.VariantMappingRepository,
	logger *zap.Logger,
) *Partitioner {
	return &Partitioner{
		locationRepo: locationRepo,
		mappingRepo:  mappingRepo,
		logger:       logger,
	}
}

// PartitionOrder groups line items by the supplier location their variant
// maps to. Partitions come back ordered by first appearance of the location
// in the line items. Items whose variant has no active mapping, or whose
// location is missing or inactive, are reported in UnmappedVariantIDs
// (deduplicated, encounter order) instead of being dropped silently.
//
// A mapping conflict (more than one active mapping for a variant) is a data
// integrity fault and fails the whole partitioning.
func (p *Partitioner) PartitionOrder(ctx context.Context, items []fulfillment.LineItem) (*fulfillment.PartitionResult, error) {
	result := &fulfillment.PartitionResult{}

	index := make(map[uuid.UUID]int)           // location id -> partition position
	locations := make(map[uuid.UUID]*fulfillment.SupplierLocation)
	unmappedSeen := make(map[string]struct{})

	markUnmapped := func(variantID string) {
		if _, ok := unmappedSeen[variantID]; ok {
			return
		}
		unmappedSeen[variantID] = struct{}{}
		result.UnmappedVariantIDs = append(result.UnmappedVariantIDs, variantID)
	}

	for _, item := range items {
		variantID := strconv.FormatInt(item.VariantID, 10)

		mapping, err := p.mappingRepo.FindActiveByVariant(ctx, variantID)
		if err != nil {
			if errors.Is(err, fulfillment.ErrMappingNotFound) {
				markUnmapped(variantID)
				continue
			}
			return nil, err
		}

		loc, ok := locations[mapping.LocationID]
		if !ok {
			loc, err = p.locationRepo.FindByID(ctx, mapping.LocationID)
			if err != nil {
				if errors.Is(err, fulfillment.ErrLocationNotFound) {
					p.logger.Warn("mapping references missing location",
						zap.String("variant_id", variantID),
						zap.String("location_id", mapping.LocationID.String()))
					markUnmapped(variantID)
					continue
				}
				return nil, err
			}
			locations[mapping.LocationID] = loc
		}

		if !loc.IsActive {
			p.logger.Warn("mapping references inactive location",
				zap.String("variant_id", variantID),
				zap.String("location_id", loc.ID.String()))
			markUnmapped(variantID)
			continue
		}

		pos, ok := index[loc.ID]
		if !ok {
			pos = len(result.Partitions)
			index[loc.ID] = pos
			result.Partitions = append(result.Partitions, fulfillment.Partition{Location: *loc})
		}
		result.Partitions[pos].Items = append(result.Partitions[pos].Items, fulfillment.ResolvedItem{
			Item:    item,
			Mapping: *mapping,
		})
	}

	return result, nil
}
