package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/dto/request"
	resdto "github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/dto/response"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/handler/middleware"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
)

type CheckoutHandler struct {
	validator usecase.OrderValidator
	checkout  usecase.CheckoutCommands
}

func NewCheckoutHandler(validator usecase.OrderValidator, checkout usecase.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{validator: validator, checkout: checkout}
}

// @Summary Create checkout
// @Description Validate the draft a final time, then create a payment session or settle directly against a stored-value card
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := req.Draft.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid draft order",
		})
		return
	}

	// Always settle the draft the validator last saw, not the one the client
	// last rendered.
	validation, err := h.validator.Validate(c.Request.Context(), userID, draft, usecase.ValidateOptions{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if validation.Corrected != nil {
		draft = *validation.Corrected
	}
	if len(draft.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":            "No orderable items remain in the cart",
			"removedItemNames": validation.RemovedItemNames,
		})
		return
	}

	result, err := h.checkout.CreateCheckout(c.Request.Context(), userID, draft, req.PickupName)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDraft):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid draft order",
			})
		case errors.Is(err, usecase.ErrStoredValueCardNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Stored value card not found",
			})
		case errors.Is(err, usecase.ErrStoredValueConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Stored value balance changed, please retry",
			})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
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

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
