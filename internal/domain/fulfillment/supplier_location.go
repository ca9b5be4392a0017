package fulfillment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Address Value Object
// ---------------------------------------------------------------------------

// Address is a postal address attached to a supplier location
type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city"`
	Province string `json:"province"`
	Country  string `json:"country"`
	Zip      string `json:"zip"`
}

// Validate validates the address
func (a Address) Validate() error {
	if a.Address1 == "" || a.City == "" || a.Country == "" {
		return ErrLocationInvalidAddress
	}
	return nil
}

// Fingerprint returns a caller-stable identity component for the address.
// Two addresses with the same fingerprint are treated as the same physical
// location for upsert purposes.
func (a Address) Fingerprint() string {
	parts := []string{a.Address1, a.City, a.Zip}
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "|")
}

// ---------------------------------------------------------------------------
// SupplierLocation Entity
// ---------------------------------------------------------------------------

// SupplierLocation represents a warehouse or fulfillment node operated by one
// supplier. It is the unit of dispatch: each partition of an order is sent to
// exactly one location.
//
// Identity: the ID is an opaque generated UUID. The upsert identity is
// (SupplierID, Address.Fingerprint()), enforced by the repository.
// Locations are never physically deleted, only deactivated.
type SupplierLocation struct {
	// ID is the unique identifier of this location
	ID uuid.UUID
	// SupplierID identifies the owning supplier
	SupplierID string
	// Name is the display name of the location
	Name string
	// Address is the postal address of the warehouse
	Address Address
	// Phone is an optional contact phone number
	Phone string
	// Email is an optional contact email
	Email string
	// IsActive indicates if this location accepts dispatches
	IsActive bool
	// CreatedAt is when this location was first registered
	CreatedAt time.Time
	// UpdatedAt is when this location was last updated
	UpdatedAt time.Time
}

// NewSupplierLocation creates a new supplier location
func NewSupplierLocation(supplierID, name string, address Address) (*SupplierLocation, error) {
	if supplierID == "" {
		return nil, ErrLocationInvalidSupplierID
	}
	if name == "" {
		return nil, ErrLocationInvalidName
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &SupplierLocation{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       name,
		Address:    address,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Validate validates the supplier location
func (l *SupplierLocation) Validate() error {
	if l.SupplierID == "" {
		return ErrLocationInvalidSupplierID
	}
	if l.Name == "" {
		return ErrLocationInvalidName
	}
	return l.Address.Validate()
}

// ApplyUpsert copies the mutable fields of incoming onto the existing record,
// preserving identity and CreatedAt. The supplier id and address fingerprint
// are the upsert key and must already match.
func (l *SupplierLocation) ApplyUpsert(incoming *SupplierLocation) {
	l.Name = incoming.Name
	l.Address = incoming.Address
	l.Phone = incoming.Phone
	l.Email = incoming.Email
	l.IsActive = incoming.IsActive
	l.UpdatedAt = time.Now()
}

// Activate activates the location
func (l *SupplierLocation) Activate() {
	l.IsActive = true
	l.UpdatedAt = time.Now()
}

// Deactivate deactivates the location. Deactivation is the only supported
// removal: mappings may still reference the location by id.
func (l *SupplierLocation) Deactivate() {
	l.IsActive = false
	l.UpdatedAt = time.Now()
}

// Fingerprint returns the address fingerprint of this location
func (l *SupplierLocation) Fingerprint() string {
	return l.Address.Fingerprint()
}

// ---------------------------------------------------------------------------
// SupplierLocationRepository Interface
// ---------------------------------------------------------------------------

// SupplierLocationRepository defines the interface for persisting supplier
// locations. Save must replace the whole record atomically: a concurrent
// reader observes either the old or the new record, never a mix.
type SupplierLocationRepository interface {
	// FindByID finds a location by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierLocation, error)

	// FindBySupplierAndFingerprint finds a location by its upsert identity
	FindBySupplierAndFingerprint(ctx context.Context, supplierID, fingerprint string) (*SupplierLocation, error)

	// ListActiveBySupplier returns all active locations for a supplier.
	// Order is unspecified (set semantics).
	ListActiveBySupplier(ctx context.Context, supplierID string) ([]SupplierLocation, error)

	// Save creates or updates a location by ID
	Save(ctx context.Context, location *SupplierLocation) error

	// UpsertByIdentity creates the location or replaces the record sharing
	// its (supplier, fingerprint) identity in one atomic operation, so two
	// concurrent upserts of the same identity cannot both insert. The
	// returned record carries the surviving ID and CreatedAt.
	UpsertByIdentity(ctx context.Context, incoming *SupplierLocation) (*SupplierLocation, error)
}
