package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// SupplierLocationModel is the persistence model for the SupplierLocation
// domain entity. Fingerprint is denormalized so the (supplier, fingerprint)
// upsert identity can be a plain unique index.
type SupplierLocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	SupplierID  string    `gorm:"type:varchar(100);not null;index:idx_location_supplier_fingerprint,unique,priority:1"`
	Fingerprint string    `gorm:"type:varchar(255);not null;index:idx_location_supplier_fingerprint,unique,priority:2"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Address1    string    `gorm:"type:varchar(255);not null"`
	Address2    string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(100);not null"`
	Province    string    `gorm:"type:varchar(100)"`
	Country     string    `gorm:"type:varchar(100);not null"`
	Zip         string    `gorm:"type:varchar(20)"`
	Phone       string    `gorm:"type:varchar(50)"`
	Email       string    `gorm:"type:varchar(255)"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SupplierLocationModel) TableName() string {
	return "supplier_locations"
}

// ToDomain converts the persistence model to a domain SupplierLocation entity
func (m *SupplierLocationModel) ToDomain() *fulfillment.SupplierLocation {
	return &fulfillment.SupplierLocation{
		ID:         m.ID,
		SupplierID: m.SupplierID,
		Name:       m.Name,
		Address: fulfillment.Address{
			Address1: m.Address1,
			Address2: m.Address2,
			City:     m.City,
			Province: m.Province,
			Country:  m.Country,
			Zip:      m.Zip,
		},
		Phone:     m.Phone,
		Email:     m.Email,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain SupplierLocation entity
func (m *SupplierLocationModel) FromDomain(l *fulfillment.SupplierLocation) {
	m.ID = l.ID
	m.SupplierID = l.SupplierID
	m.Fingerprint = l.Fingerprint()
	m.Name = l.Name
	m.Address1 = l.Address.Address1
	m.Address2 = l.Address.Address2
	m.City = l.Address.City
	m.Province = l.Address.Province
	m.Country = l.Address.Country
	m.Zip = l.Address.Zip
	m.Phone = l.Phone
	m.Email = l.Email
	m.IsActive = l.IsActive
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt
}

// SupplierLocationModelFromDomain creates a new persistence model from a domain entity
func SupplierLocationModelFromDomain(l *fulfillment.SupplierLocation) *SupplierLocationModel {
	m := &SupplierLocationModel{}
	m.FromDomain(l)
	return m
}

// VariantMappingModel is the persistence model for the VariantMapping domain
// entity
type VariantMappingModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID         string          `gorm:"type:varchar(100);not null"`
	VariantID         string          `gorm:"type:varchar(100);not null;index:idx_mapping_variant,priority:1"`
	SupplierID        string          `gorm:"type:varchar(100);not null"`
	SupplierProductID string          `gorm:"type:varchar(100);not null"`
	SupplierVariantID string          `gorm:"type:varchar(100)"`
	LocationID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitCost          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Currency          string          `gorm:"type:varchar(3);not null"`
	IsActive          bool            `gorm:"not null;default:true;index:idx_mapping_variant,priority:2"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (VariantMappingModel) TableName() string {
	return "variant_mappings"
}

// ToDomain converts the persistence model to a domain VariantMapping entity
func (m *VariantMappingModel) ToDomain() *fulfillment.VariantMapping {
	return &fulfillment.VariantMapping{
		ID:                m.ID,
		ProductID:         m.ProductID,
		VariantID:         m.VariantID,
		SupplierID:        m.SupplierID,
		SupplierProductID: m.SupplierProductID,
		SupplierVariantID: m.SupplierVariantID,
		LocationID:        m.LocationID,
		UnitCost:          m.UnitCost,
		Currency:          m.Currency,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain VariantMapping entity
func (m *VariantMappingModel) FromDomain(vm *fulfillment.VariantMapping) {
	m.ID = vm.ID
	m.ProductID = vm.ProductID
	m.VariantID = vm.VariantID
	m.SupplierID = vm.SupplierID
	m.SupplierProductID = vm.SupplierProductID
	m.SupplierVariantID = vm.SupplierVariantID
	m.LocationID = vm.LocationID
	m.UnitCost = vm.UnitCost
	m.Currency = vm.Currency
	m.IsActive = vm.IsActive
	m.CreatedAt = vm.CreatedAt
	m.UpdatedAt = vm.UpdatedAt
}

// VariantMappingModelFromDomain creates a new persistence model from a domain entity
func VariantMappingModelFromDomain(vm *fulfillment.VariantMapping) *VariantMappingModel {
	m := &VariantMappingModel{}
	m.FromDomain(vm)
	return m
}
