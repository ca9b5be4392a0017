package dto

import (
	"github.com/shopspring/decimal"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// UpsertLocationRequest is the payload for creating or replacing a supplier
// location
type UpsertLocationRequest struct {
	SupplierID string `json:"supplier_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Address1   string `json:"address1" binding:"required"`
	Address2   string `json:"address2"`
	City       string `json:"city" binding:"required"`
	Province   string `json:"province"`
	Country    string `json:"country" binding:"required"`
	Zip        string `json:"zip"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	IsActive   *bool  `json:"is_active"`
}

// ToDomain converts the request into a domain SupplierLocation
func (r *UpsertLocationRequest) ToDomain() (*fulfillment.SupplierLocation, error) {
	loc, err := fulfillment.NewSupplierLocation(r.SupplierID, r.Name, fulfillment.Address{
		Address1: r.Address1,
		Address2: r.Address2,
		City:     r.City,
		Province: r.Province,
		Country:  r.Country,
		Zip:      r.Zip,
	})
	if err != nil {
		return nil, err
	}
	loc.Phone = r.Phone
	loc.Email = r.Email
	if r.IsActive != nil {
		loc.IsActive = *r.IsActive
	}
	return loc, nil
}

// LocationResponse is the API shape of a supplier location
type LocationResponse struct {
	ID         string              `json:"id"`
	SupplierID string              `json:"supplier_id"`
	Name       string              `json:"name"`
	Address    fulfillment.Address `json:"address"`
	Phone      string              `json:"phone,omitempty"`
	Email      string              `json:"email,omitempty"`
	IsActive   bool                `json:"is_active"`
}

// LocationResponseFromDomain converts a domain location to its API shape
func LocationResponseFromDomain(l *fulfillment.SupplierLocation) LocationResponse {
	return LocationResponse{
		ID:         l.ID.String(),
		SupplierID: l.SupplierID,
		Name:       l.Name,
		Address:    l.Address,
		Phone:      l.Phone,
		Email:      l.Email,
		IsActive:   l.IsActive,
	}
}

// UpsertMappingRequest is the payload for creating or replacing the active
// mapping of a variant
type UpsertMappingRequest struct {
	ProductID         string          `json:"product_id" binding:"required"`
	VariantID         string          `json:"variant_id" binding:"required"`
	SupplierID        string          `json:"supplier_id" binding:"required"`
	SupplierProductID string          `json:"supplier_product_id" binding:"required"`
	SupplierVariantID string          `json:"supplier_variant_id"`
	LocationID        string          `json:"location_id" binding:"required"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	Currency          string          `json:"currency" binding:"required"`
}

// MappingResponse is the API shape of a variant mapping
type MappingResponse struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"product_id"`
	VariantID         string          `json:"variant_id"`
	SupplierID        string          `json:"supplier_id"`
	SupplierProductID string          `json:"supplier_product_id"`
	SupplierVariantID string          `json:"supplier_variant_id,omitempty"`
	LocationID        string          `json:"location_id"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	Currency          string          `json:"currency"`
	IsActive          bool            `json:"is_active"`
}

// MappingResponseFromDomain converts a domain mapping to its API shape
func MappingResponseFromDomain(m *fulfillment.VariantMapping) MappingResponse {
	return MappingResponse{
		ID:                m.ID.String(),
		ProductID:         m.ProductID,
		VariantID:         m.VariantID,
		SupplierID:        m.SupplierID,
		SupplierProductID: m.SupplierProductID,
		SupplierVariantID: m.SupplierVariantID,
		LocationID:        m.LocationID.String(),
		UnitCost:          m.UnitCost,
		Currency:          m.Currency,
		IsActive:          m.IsActive,
	}
}

// VariantRoutingResponse answers "where does this variant ship from"
type VariantRoutingResponse struct {
	Mapping  MappingResponse  `json:"mapping"`
	Location LocationResponse `json:"location"`
}

// TestOrderRequest is a synthetic order used to exercise the dispatch path
// without a storefront platform callback
type TestOrderRequest struct {
	OrderID            int64                     `json:"order_id" binding:"required"`
	Email              string                    `json:"email"`
	LineItems          []fulfillment.LineItem    `json:"line_items" binding:"required,min=1"`
	DestinationAddress *fulfillment.OrderAddress `json:"destination_address"`
}
