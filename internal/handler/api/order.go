package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/dto/request"
	resdto "github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/dto/response"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/middleware"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/pkg/jwt"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase/shared"
)

type OrderHandler struct {
	queries  usecase.OrderQueries
	commands usecase.OrderCommands
	refunds  usecase.RefundCommands
}

func NewOrderHandler(queries usecase.OrderQueries, commands usecase.OrderCommands, refunds usecase.RefundCommands) *OrderHandler {
	return &OrderHandler{queries: queries, commands: commands, refunds: refunds}
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.queries.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	// Customers see only their own orders. 404 rather than 403 so order IDs
	// are not probeable.
	role, _ := middleware.GetUserRole(c)
	if role != jwt.RoleAdmin && view.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary List own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.queries.ListUserOrders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Start order
// @Description Mark the kitchen as having begun the order (admin)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/start [post]
func (h *OrderHandler) StartOrder(c *gin.Context) {
	h.transition(c, h.commands.Start)
}

// @Summary Complete order
// @Description Mark the order ready for pickup (admin)
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /orders/{id}/complete [post]
func (h *OrderHandler) CompleteOrder(c *gin.Context) {
	h.transition(c, h.commands.Complete)
}

// @Summary Refund order
// @Description Reverse a settled order through the payment processor (admin)
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.RefundRequest false "Refund reason"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /orders/{id}/refund [post]
func (h *OrderHandler) RefundOrder(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req reqdto.RefundRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	view, err := h.refunds.Refund(c.Request.Context(), id, req.ToReason())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, usecase.ErrAlreadyRefunded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order already refunded",
			})
		case errors.Is(err, usecase.ErrNoPaymentReference), errors.Is(err, usecase.ErrInvalidRefundReason):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Order cannot be refunded",
			})
		case errors.Is(err, usecase.ErrPaymentGatewayFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment service unavailable, please retry",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func (h *OrderHandler) transition(c *gin.Context, fn func(context.Context, uuid.UUID) (*shared.OrderView, error)) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	view, err := fn(c.Request.Context(), id)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func (h *OrderHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *OrderHandler) respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
	case errors.Is(err, usecase.ErrOrderAlreadyStarted),
		errors.Is(err, usecase.ErrOrderAlreadyCompleted),
		errors.Is(err, usecase.ErrOrderCanceled):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Order is not in a valid state for this operation",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
