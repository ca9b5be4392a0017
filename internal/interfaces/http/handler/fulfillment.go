package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appfulfillment "github.com/furcel/backend/internal/application/fulfillment"
	"github.com/furcel/backend/internal/domain/fulfillment"
	"github.com/furcel/backend/internal/domain/shared"
	"github.com/furcel/backend/internal/interfaces/http/dto"
)

// FulfillmentHandler serves the storefront platform's fulfillment callback
// and the operator-facing test endpoint
type FulfillmentHandler struct {
	BaseHandler
	orchestrator *appfulfillment.Orchestrator
	directory    *appfulfillment.DirectoryService
	logger       *zap.Logger
}

// NewFulfillmentHandler creates a new FulfillmentHandler
func NewFulfillmentHandler(
	orchestrator *appfulfillment.Orchestrator,
	directory *appfulfillment.DirectoryService,
	logger *zap.Logger,
) *FulfillmentHandler {
	return &FulfillmentHandler{
		orchestrator: orchestrator,
		directory:    directory,
		logger:       logger,
	}
}

// RegisterRoutes registers fulfillment routes
func (h *FulfillmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/fulfillment")
	{
		group.POST("/process", h.Process)
		group.POST("/test-order", h.TestOrder)
		group.GET("/location-for-variant/:variantId", h.LocationForVariant)
	}
}

// Process handles the platform's fulfillment request. The response body is
// the platform contract shape, not the API envelope, and the HTTP status is
// always 200: the outcome travels in the fulfillment status field.
func (h *FulfillmentHandler) Process(c *gin.Context) {
	var req fulfillment.FulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "invalid fulfillment payload: "+err.Error())
		return
	}

	resp := h.orchestrator.Process(c.Request.Context(), &req)
	c.JSON(http.StatusOK, resp)
}

// TestOrder runs a synthetic order through the full dispatch path
func (h *FulfillmentHandler) TestOrder(c *gin.Context) {
	var req dto.TestOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "invalid test order payload: "+err.Error())
		return
	}

	fulfillmentReq := &fulfillment.FulfillmentRequest{
		Fulfillment: fulfillment.Fulfillment{
			OrderID:            req.OrderID,
			Status:             fulfillment.StatusPending,
			Email:              req.Email,
			LineItems:          req.LineItems,
			DestinationAddress: req.DestinationAddress,
		},
	}

	resp := h.orchestrator.Process(c.Request.Context(), fulfillmentReq)
	h.Success(c, resp)
}

// LocationForVariant resolves a variant id to its supplier location
func (h *FulfillmentHandler) LocationForVariant(c *gin.Context) {
	variantID := c.Param("variantId")

	loc, mapping, err := h.directory.GetLocationForVariant(c.Request.Context(), variantID)
	if err != nil {
		var domainErr *shared.DomainError
		if !errors.As(err, &domainErr) {
			h.logger.Error("variant routing lookup failed", zap.String("variant_id", variantID), zap.Error(err))
		}
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, dto.VariantRoutingResponse{
		Mapping:  dto.MappingResponseFromDomain(mapping),
		Location: dto.LocationResponseFromDomain(loc),
	})
}
