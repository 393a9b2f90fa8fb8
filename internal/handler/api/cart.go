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

type CartHandler struct {
	validator usecase.OrderValidator
}

func NewCartHandler(validator usecase.OrderValidator) *CartHandler {
	return &CartHandler{validator: validator}
}

// @Summary Validate cart
// @Description Revalidate a client-held draft order against current catalog and schedule state
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DraftOrderRequest true "Draft order"
// @Success 200 {object} resdto.ValidateCartResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart/validate [post]
func (h *CartHandler) ValidateCart(c *gin.Context) {
	h.validate(c, usecase.ValidateOptions{})
}

// @Summary Validate reorder
// @Description Validate a past order being placed again; pickup scheduling is skipped and reward flags are stripped
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.DraftOrderRequest true "Draft order"
// @Success 200 {object} resdto.ValidateReorderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart/validate-reorder [post]
func (h *CartHandler) ValidateReorder(c *gin.Context) {
	h.validate(c, usecase.ValidateOptions{Reorder: true})
}

func (h *CartHandler) validate(c *gin.Context, opts usecase.ValidateOptions) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.DraftOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	draft, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid draft order",
		})
		return
	}

	result, err := h.validator.Validate(c.Request.Context(), userID, draft, opts)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDraft):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid draft order",
			})
		case errors.Is(err, usecase.ErrPickupConfigMissing), errors.Is(err, usecase.ErrCategoryMissing):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Service misconfigured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	if opts.Reorder {
		c.JSON(http.StatusOK, resdto.FromReorderResult(result))
		return
	}
	c.JSON(http.StatusOK, resdto.FromValidationResult(result))
}
