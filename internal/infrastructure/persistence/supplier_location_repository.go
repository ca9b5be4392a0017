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

// GormSupplierLocationRepository implements SupplierLocationRepository using GORM
type GormSupplierLocationRepository struct {
	db *gorm.DB
}

// NewGormSupplierLocationRepository creates a new GormSupplierLocationRepository
func NewGormSupplierLocationRepository(db *gorm.DB) *GormSupplierLocationRepository {
	return &GormSupplierLocationRepository{db: db}
}

// FindByID finds a location by its ID
func (r *GormSupplierLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*fulfillment.SupplierLocation, error) {
	var model models.SupplierLocationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fulfillment.ErrLocationNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySupplierAndFingerprint finds a location by its upsert identity
func (r *GormSupplierLocationRepository) FindBySupplierAndFingerprint(ctx context.Context, supplierID, fingerprint string) (*fulfillment.SupplierLocation, error) {
	var model models.SupplierLocationModel
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND fingerprint = ?", supplierID, fingerprint).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fulfillment.ErrLocationNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListActiveBySupplier returns all active locations for a supplier
func (r *GormSupplierLocationRepository) ListActiveBySupplier(ctx context.Context, supplierID string) ([]fulfillment.SupplierLocation, error) {
	var locationModels []models.SupplierLocationModel
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ? AND is_active = ?", supplierID, true).
		Find(&locationModels).Error; err != nil {
		return nil, err
	}

	locations := make([]fulfillment.SupplierLocation, len(locationModels))
	for i, model := range locationModels {
		locations[i] = *model.ToDomain()
	}
	return locations, nil
}

// Save creates or updates a location. The whole row is written in one
// statement so concurrent readers never observe a partially updated record.
func (r *GormSupplierLocationRepository) Save(ctx context.Context, location *fulfillment.SupplierLocation) error {
	model := models.SupplierLocationModelFromDomain(location)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(model).Error
}

// UpsertByIdentity creates the location or replaces the row sharing its
// (supplier, fingerprint) identity. The write is a single
// INSERT ... ON CONFLICT on the identity's unique index, so concurrent
// upserts of the same identity serialize in the database; the losing
// writer updates instead of erroring. The id and created_at of an existing
// row survive the replacement, which is why the assignment list excludes
// them.
func (r *GormSupplierLocationRepository) UpsertByIdentity(ctx context.Context, incoming *fulfillment.SupplierLocation) (*fulfillment.SupplierLocation, error) {
	model := models.SupplierLocationModelFromDomain(incoming)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "supplier_id"}, {Name: "fingerprint"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "address1", "address2", "city", "province", "country",
				"zip", "phone", "email", "is_active", "updated_at",
			}),
		}).
		Create(model).Error; err != nil {
		return nil, err
	}

	return r.FindBySupplierAndFingerprint(ctx, incoming.SupplierID, model.Fingerprint)
}
