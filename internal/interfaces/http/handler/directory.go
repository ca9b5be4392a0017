package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	appfulfillment "github.com/furcel/backend/internal/application/fulfillment"
	"github.com/furcel/backend/internal/domain/fulfillment"
	"github.com/furcel/backend/internal/domain/shared"
	"github.com/furcel/backend/internal/interfaces/http/dto"
)

// DirectoryHandler manages supplier locations and variant mappings
type DirectoryHandler struct {
	BaseHandler
	directory *appfulfillment.DirectoryService
	logger    *zap.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler
func NewDirectoryHandler(directory *appfulfillment.DirectoryService, logger *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directory: directory,
		logger:    logger,
	}
}

// RegisterRoutes registers directory routes
func (h *DirectoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	locations := rg.Group("/locations")
	{
		locations.POST("", h.UpsertLocation)
		locations.GET("", h.ListLocations)
		locations.GET("/:id", h.GetLocation)
	}

	mappings := rg.Group("/mappings")
	{
		mappings.POST("", h.UpsertMapping)
		mappings.GET("/variant/:variantId", h.GetMappingForVariant)
	}
}

// UpsertLocation creates a location or replaces the one sharing its
// (supplier, address) identity
func (h *DirectoryHandler) UpsertLocation(c *gin.Context) {
	var req dto.UpsertLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "invalid location payload: "+err.Error())
		return
	}

	incoming, err := req.ToDomain()
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	saved, err := h.directory.UpsertLocation(c.Request.Context(), incoming)
	if err != nil {
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) {
			h.logger.Error("location upsert failed", zap.Error(err))
		}
		h.HandleDomainError(c, err)
		return
	}

	if saved.ID == incoming.ID {
		h.Created(c, dto.LocationResponseFromDomain(saved))
		return
	}
	h.Success(c, dto.LocationResponseFromDomain(saved))
}

// ListLocations lists the active locations of a supplier
func (h *DirectoryHandler) ListLocations(c *gin.Context) {
	supplierID := c.Query("supplier_id")
	if supplierID == "" {
		h.BadRequest(c, "supplier_id query parameter is required")
		return
	}

	locations, err := h.directory.ListLocationsBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		h.logger.Error("location list failed", zap.String("supplier_id", supplierID), zap.Error(err))
		h.Internal(c, "location list failed")
		return
	}

	out := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		out[i] = dto.LocationResponseFromDomain(&locations[i])
	}
	h.Success(c, out)
}

// GetLocation returns one location by id
func (h *DirectoryHandler) GetLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid location id")
		return
	}

	loc, err := h.directory.GetLocation(c.Request.Context(), id)
	if err != nil {
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) {
			h.logger.Error("location lookup failed", zap.String("location_id", id.String()), zap.Error(err))
		}
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dto.LocationResponseFromDomain(loc))
}

// UpsertMapping creates a mapping and deactivates any prior active mapping
// for the same variant
func (h *DirectoryHandler) UpsertMapping(c *gin.Context) {
	var req dto.UpsertMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "invalid mapping payload: "+err.Error())
		return
	}

	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		h.BadRequest(c, "invalid location id")
		return
	}

	mapping, err := fulfillment.NewVariantMapping(req.ProductID, req.VariantID,
		req.SupplierID, req.SupplierProductID, locationID, req.UnitCost, req.Currency)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	mapping.SupplierVariantID = req.SupplierVariantID

	saved, err := h.directory.UpsertMapping(c.Request.Context(), mapping)
	if err != nil {
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) {
			h.logger.Error("mapping upsert failed", zap.String("variant_id", req.VariantID), zap.Error(err))
		}
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, dto.MappingResponseFromDomain(saved))
}

// GetMappingForVariant returns the active mapping for a variant
func (h *DirectoryHandler) GetMappingForVariant(c *gin.Context) {
	variantID := c.Param("variantId")

	mapping, err := h.directory.GetMappingForVariant(c.Request.Context(), variantID)
	if err != nil {
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) {
			h.logger.Error("mapping lookup failed", zap.String("variant_id", variantID), zap.Error(err))
		}
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dto.MappingResponseFromDomain(mapping))
}
