package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/furcel/backend/internal/domain/fulfillment"
	"github.com/furcel/backend/internal/domain/shared"
	"github.com/furcel/backend/internal/interfaces/http/dto"
)

// DeliveryIDHeader identifies one webhook delivery for duplicate suppression
const DeliveryIDHeader = "X-Shopify-Webhook-Id"

// webhookOrder is the subset of the platform's order payload the handler
// cares about
type webhookOrder struct {
	ID        int64                  `json:"id"`
	Email     string                 `json:"email"`
	LineItems []fulfillment.LineItem `json:"line_items"`
}

// WebhookHandler receives storefront platform webhooks. Signature
// verification happens in middleware; this handler only deduplicates and
// records the delivery.
type WebhookHandler struct {
	BaseHandler
	idempotency shared.IdempotencyStore
	ttl         time.Duration
	logger      *zap.Logger
	middleware  []gin.HandlerFunc
}

// NewWebhookHandler creates a new WebhookHandler. Any middleware given here
// (signature verification in particular) is applied to the webhook group when
// routes are registered.
func NewWebhookHandler(idempotency shared.IdempotencyStore, ttl time.Duration, logger *zap.Logger, middleware ...gin.HandlerFunc) *WebhookHandler {
	if ttl <= 0 {
		ttl = shared.DefaultIdempotencyConfig().TTL
	}
	return &WebhookHandler{
		idempotency: idempotency,
		ttl:         ttl,
		logger:      logger,
		middleware:  middleware,
	}
}

// RegisterRoutes registers webhook routes
func (h *WebhookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/webhooks", h.middleware...)
	{
		group.POST("/orders-create", h.OrdersCreate)
	}
}

// OrdersCreate acknowledges an order creation webhook. The platform retries
// deliveries aggressively, so duplicates are expected and answered 200
// without reprocessing.
func (h *WebhookHandler) OrdersCreate(c *gin.Context) {
	var order webhookOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "invalid order payload: "+err.Error())
		return
	}

	deliveryID := c.GetHeader(DeliveryIDHeader)
	if deliveryID == "" && order.ID != 0 {
		deliveryID = "orders-create:" + strconv.FormatInt(order.ID, 10)
	}

	fresh := true
	if deliveryID == "" {
		// No header and no order id leaves nothing to tell deliveries
		// apart, so dedup would collapse unrelated payloads onto one key
		h.logger.Warn("webhook delivery has no usable identity, skipping dedup")
	} else {
		var err error
		fresh, err = h.idempotency.MarkProcessed(c.Request.Context(), deliveryID, h.ttl)
		if err != nil {
			// Fail open: a broken dedup store must not drop order notifications
			h.logger.Error("idempotency check failed, processing anyway",
				zap.String("delivery_id", deliveryID),
				zap.Error(err))
			fresh = true
		}
	}

	if !fresh {
		h.logger.Info("duplicate webhook delivery ignored",
			zap.String("delivery_id", deliveryID),
			zap.Int64("order_id", order.ID))
		h.Success(c, gin.H{"status": "duplicate", "order_id": order.ID})
		return
	}

	h.logger.Info("order webhook received",
		zap.String("delivery_id", deliveryID),
		zap.Int64("order_id", order.ID),
		zap.Int("line_items", len(order.LineItems)))

	h.Success(c, gin.H{"status": "accepted", "order_id": order.ID})
}
