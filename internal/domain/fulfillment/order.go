package fulfillment

// ---------------------------------------------------------------------------
// Storefront platform contract types
//
// Field shapes mirror the platform's JSON (snake_case). The core reads only
// variant id, quantity and order id; everything else is passthrough data that
// must survive a round trip unmodified.
// ---------------------------------------------------------------------------

// OrderAddress is an address as delivered by the storefront platform
type OrderAddress struct {
	Name         string `json:"name,omitempty"`
	Company      string `json:"company,omitempty"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2,omitempty"`
	City         string `json:"city"`
	Province     string `json:"province,omitempty"`
	ProvinceCode string `json:"province_code,omitempty"`
	Country      string `json:"country"`
	CountryCode  string `json:"country_code,omitempty"`
	Zip          string `json:"zip"`
	Phone        string `json:"phone,omitempty"`
}

// LineItem is one ordered unit (variant + quantity) within a fulfillment.
// Title, SKU and Price are presentational passthrough fields.
type LineItem struct {
	ID           int64  `json:"id"`
	VariantID    int64  `json:"variant_id"`
	ProductID    int64  `json:"product_id,omitempty"`
	Title        string `json:"title,omitempty"`
	VariantTitle string `json:"variant_title,omitempty"`
	SKU          string `json:"sku,omitempty"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price,omitempty"`
	Vendor       string `json:"vendor,omitempty"`
	Grams        int    `json:"grams,omitempty"`
}

// ServiceInfo identifies the fulfillment service on the platform side
type ServiceInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ServiceName string `json:"service_name"`
}

// Fulfillment is the platform's fulfillment object. The orchestrator mutates
// only Status and the three tracking fields on the response copy.
type Fulfillment struct {
	ID                 int64         `json:"id"`
	OrderID            int64         `json:"order_id"`
	Status             Status        `json:"status"`
	CreatedAt          string        `json:"created_at,omitempty"`
	Service            ServiceInfo   `json:"service"`
	TrackingCompany    *string       `json:"tracking_company"`
	TrackingNumber     *string       `json:"tracking_number"`
	TrackingURL        *string       `json:"tracking_url"`
	LineItems          []LineItem    `json:"line_items"`
	LocationID         int64         `json:"location_id,omitempty"`
	Email              string        `json:"email,omitempty"`
	OriginAddress      *OrderAddress `json:"origin_address,omitempty"`
	DestinationAddress *OrderAddress `json:"destination_address,omitempty"`
}

// FulfillmentRequest is the inbound platform payload
type FulfillmentRequest struct {
	Fulfillment Fulfillment `json:"fulfillment"`
}

// SupplierResultInfo reports one partition's outcome in the response metadata
type SupplierResultInfo struct {
	SupplierID     string `json:"supplier_id"`
	LocationID     string `json:"location_id"`
	Success        bool   `json:"success"`
	TrackingNumber string `json:"tracking_number,omitempty"`
	Error          string `json:"error,omitempty"`
}

// FulfillmentResponse is the core's answer to a fulfillment request: the
// mutated copy of the fulfillment plus per-supplier detail the single status
// field cannot carry.
type FulfillmentResponse struct {
	Fulfillment        Fulfillment          `json:"fulfillment"`
	Message            string               `json:"message,omitempty"`
	SupplierResults    []SupplierResultInfo `json:"supplier_results,omitempty"`
	UnmappedVariantIDs []string             `json:"unmapped_variant_ids,omitempty"`
}
