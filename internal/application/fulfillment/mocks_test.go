package fulfillment

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/furcel/backend/internal/domain/fulfillment"
)

// MockSupplierLocationRepository is a mock implementation of SupplierLocationRepository
type MockSupplierLocationRepository struct {
	mock.Mock
}

func (m *MockSupplierLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*fulfillment.SupplierLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.SupplierLocation), args.Error(1)
}

func (m *MockSupplierLocationRepository) FindBySupplierAndFingerprint(ctx context.Context, supplierID, fingerprint string) (*fulfillment.SupplierLocation, error) {
	args := m.Called(ctx, supplierID, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.SupplierLocation), args.Error(1)
}

func (m *MockSupplierLocationRepository) ListActiveBySupplier(ctx context.Context, supplierID string) ([]fulfillment.SupplierLocation, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fulfillment.SupplierLocation), args.Error(1)
}

func (m *MockSupplierLocationRepository) Save(ctx context.Context, location *fulfillment.SupplierLocation) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockSupplierLocationRepository) UpsertByIdentity(ctx context.Context, incoming *fulfillment.SupplierLocation) (*fulfillment.SupplierLocation, error) {
	args := m.Called(ctx, incoming)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.SupplierLocation), args.Error(1)
}

// MockVariantMappingRepository is a mock implementation of VariantMappingRepository
type MockVariantMappingRepository struct {
	mock.Mock
}

func (m *MockVariantMappingRepository) FindByID(ctx context.Context, id uuid.UUID) (*fulfillment.VariantMapping, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.VariantMapping), args.Error(1)
}

func (m *MockVariantMappingRepository) FindActiveByVariant(ctx context.Context, variantID string) (*fulfillment.VariantMapping, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.VariantMapping), args.Error(1)
}

func (m *MockVariantMappingRepository) ListByVariant(ctx context.Context, variantID string) ([]fulfillment.VariantMapping, error) {
	args := m.Called(ctx, variantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fulfillment.VariantMapping), args.Error(1)
}

func (m *MockVariantMappingRepository) Save(ctx context.Context, mapping *fulfillment.VariantMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockVariantMappingRepository) ReplaceActiveForVariant(ctx context.Context, mapping *fulfillment.VariantMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

// MockSupplierGateway is a mock implementation of SupplierGateway
type MockSupplierGateway struct {
	mock.Mock
	supplierID string
}

func NewMockSupplierGateway(supplierID string) *MockSupplierGateway {
	return &MockSupplierGateway{supplierID: supplierID}
}

func (m *MockSupplierGateway) SupplierID() string {
	return m.supplierID
}

func (m *MockSupplierGateway) Submit(ctx context.Context, req *fulfillment.SupplierOrderRequest) (*fulfillment.SupplierOrderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fulfillment.SupplierOrderResult), args.Error(1)
}

// MockGatewayRegistry is a mock implementation of SupplierGatewayRegistry
type MockGatewayRegistry struct {
	mock.Mock
}

func (m *MockGatewayRegistry) GetGateway(supplierID string) (fulfillment.SupplierGateway, error) {
	args := m.Called(supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(fulfillment.SupplierGateway), args.Error(1)
}

func (m *MockGatewayRegistry) ListGateways() []fulfillment.SupplierGateway {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]fulfillment.SupplierGateway)
}
