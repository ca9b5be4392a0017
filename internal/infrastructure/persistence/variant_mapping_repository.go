package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/furcel/backend/internal/domain/fulfillment"
	"github.com/furcel/backend/internal/infrastructure/persistence/models"
)

// GormVariantMappingRepository implements VariantMappingRepository using GORM
type GormVariantMappingRepository struct {
	db *gorm.DB
}

// NewGormVariantMappingRepository creates a new GormVariantMappingRepository
func NewGormVariantMappingRepository(db *gorm.DB) *GormVariantMappingRepository {
	return &GormVariantMappingRepository{db: db}
}

// FindByID finds a mapping by its ID
func (r *GormVariantMappingRepository) FindByID(ctx context.Context, id uuid.UUID) (*fulfillment.VariantMapping, error) {
	var model models.VariantMappingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fulfillment.ErrMappingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByVariant returns the unique active mapping for a variant.
// Finding more than one active row means a writer bypassed
// ReplaceActiveForVariant; that is reported instead of silently picking one.
func (r *GormVariantMappingRepository) FindActiveByVariant(ctx context.Context, variantID string) (*fulfillment.VariantMapping, error) {
	var mappingModels []models.VariantMappingModel
	if err := r.db.WithContext(ctx).
		Where("variant_id = ? AND is_active = ?", variantID, true).
		Limit(2).
		Find(&mappingModels).Error; err != nil {
		return nil, err
	}

	switch len(mappingModels) {
	case 0:
		return nil, fulfillment.ErrMappingNotFound
	case 1:
		return mappingModels[0].ToDomain(), nil
	default:
		return nil, fulfillment.ErrMappingConflict
	}
}

// ListByVariant returns every mapping for a variant, newest first
func (r *GormVariantMappingRepository) ListByVariant(ctx context.Context, variantID string) ([]fulfillment.VariantMapping, error) {
	var mappingModels []models.VariantMappingModel
	if err := r.db.WithContext(ctx).
		Where("variant_id = ?", variantID).
		Order("created_at DESC").
		Find(&mappingModels).Error; err != nil {
		return nil, err
	}

	mappings := make([]fulfillment.VariantMapping, len(mappingModels))
	for i, model := range mappingModels {
		mappings[i] = *model.ToDomain()
	}
	return mappings, nil
}

// Save creates or updates a mapping without touching sibling mappings
func (r *GormVariantMappingRepository) Save(ctx context.Context, mapping *fulfillment.VariantMapping) error {
	model := models.VariantMappingModelFromDomain(mapping)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// ReplaceActiveForVariant saves the mapping and deactivates any other active
// mapping for the same variant in one transaction
func (r *GormVariantMappingRepository) ReplaceActiveForVariant(ctx context.Context, mapping *fulfillment.VariantMapping) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VariantMappingModel{}).
			Where("variant_id = ? AND is_active = ? AND id <> ?", mapping.VariantID, true, mapping.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}

		model := models.VariantMappingModelFromDomain(mapping)
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(model).Error
	})
}
