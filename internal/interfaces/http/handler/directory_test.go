package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furcel/backend/internal/interfaces/http/dto"
)

func locationPayload(name string) map[string]any {
	return map[string]any{
		"supplier_id": "acme-wholesale",
		"name":        name,
		"address1":    "123 Supplier Street",
		"city":        "Shenzhen",
		"province":    "Guangdong",
		"country":     "China",
		"zip":         "518000",
	}
}

func decodeData[T any](t *testing.T, body []byte) T {
	t.Helper()
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	require.True(t, envelope.Success)
	var out T
	require.NoError(t, json.Unmarshal(envelope.Data, &out))
	return out
}

func TestDirectoryHandler_UpsertLocation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/locations", locationPayload("Acme Warehouse"))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeData[dto.LocationResponse](t, w.Body.Bytes())
	assert.Equal(t, "Acme Warehouse", created.Name)
	assert.True(t, created.IsActive)

	// Same supplier and address replaces the record, identity survives
	w = env.do(t, http.MethodPost, "/api/v1/locations", locationPayload("Acme Warehouse Renamed"))
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeData[dto.LocationResponse](t, w.Body.Bytes())
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme Warehouse Renamed", updated.Name)
}

func TestDirectoryHandler_UpsertLocationValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/locations", map[string]any{
		"supplier_id": "acme-wholesale",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDirectoryHandler_ListLocations(t *testing.T) {
	env := newTestEnv(t)
	env.seedRouting(t, "acme-wholesale", "20001")

	w := env.do(t, http.MethodGet, "/api/v1/locations?supplier_id=acme-wholesale", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeData[[]dto.LocationResponse](t, w.Body.Bytes())
	assert.Len(t, list, 1)

	w = env.do(t, http.MethodGet, "/api/v1/locations", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "supplier_id is required")
}

func TestDirectoryHandler_GetLocation(t *testing.T) {
	env := newTestEnv(t)
	loc := env.seedRouting(t, "acme-wholesale", "20001")

	w := env.do(t, http.MethodGet, "/api/v1/locations/"+loc.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/locations/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/locations/00000000-0000-0000-0000-000000000099", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDirectoryHandler_UpsertMapping(t *testing.T) {
	env := newTestEnv(t)
	loc := env.seedRouting(t, "acme-wholesale", "20001")

	payload := map[string]any{
		"product_id":          "10002",
		"variant_id":          "20002",
		"supplier_id":         "acme-wholesale",
		"supplier_product_id": "ACME-SKU-2",
		"location_id":         loc.ID.String(),
		"unit_cost":           "7.25",
		"currency":            "USD",
	}

	w := env.do(t, http.MethodPost, "/api/v1/mappings", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	first := decodeData[dto.MappingResponse](t, w.Body.Bytes())
	assert.True(t, first.IsActive)

	// A second upsert for the same variant replaces the active mapping
	w = env.do(t, http.MethodPost, "/api/v1/mappings", payload)
	require.Equal(t, http.StatusCreated, w.Code)
	second := decodeData[dto.MappingResponse](t, w.Body.Bytes())
	assert.NotEqual(t, first.ID, second.ID)

	w = env.do(t, http.MethodGet, "/api/v1/mappings/variant/20002", nil)
	require.Equal(t, http.StatusOK, w.Code)
	active := decodeData[dto.MappingResponse](t, w.Body.Bytes())
	assert.Equal(t, second.ID, active.ID)
}

func TestDirectoryHandler_UpsertMappingUnknownLocation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/mappings", map[string]any{
		"product_id":          "10002",
		"variant_id":          "20002",
		"supplier_id":         "acme-wholesale",
		"supplier_product_id": "ACME-SKU-2",
		"location_id":         "00000000-0000-0000-0000-000000000099",
		"unit_cost":           "7.25",
		"currency":            "USD",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDirectoryHandler_GetMappingForVariantNotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/mappings/variant/99999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
