// Package fulfillment contains the domain model for routing storefront
// orders to third-party supplier warehouses.
//
// The bounded context covers the mapping directory (supplier locations and
// variant mappings), the transient partition/dispatch value objects, and the
// outbound SupplierGateway port. Application services that orchestrate these
// types live in internal/application/fulfillment; adapters for concrete
// suppliers live in internal/infrastructure/supplier.
package fulfillment
