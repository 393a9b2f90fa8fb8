package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/usecase"
)

type PrintHandler struct {
	queue usecase.PrintQueueCommands
}

func NewPrintHandler(queue usecase.PrintQueueCommands) *PrintHandler {
	return &PrintHandler{queue: queue}
}

// @Summary Poll print queue
// @Description Return the oldest pending receipt job without removing it; the device deletes by token after printing
// @Tags print
// @Produce json
// @Success 200 {object} usecase.PrintJobResult
// @Success 204 "Queue empty"
// @Router /print/poll [get]
func (h *PrintHandler) Poll(c *gin.Context) {
	job, err := h.queue.Poll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if job == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, job)
}

// @Summary Acknowledge print job
// @Description Remove a printed job from the queue by its token
// @Tags print
// @Param token path string true "Job token"
// @Success 204 "Job removed"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /print/{token} [delete]
func (h *PrintHandler) Delete(c *gin.Context) {
	token, err := uuid.Parse(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid token format",
		})
		return
	}

	if err := h.queue.Delete(c.Request.Context(), token); err != nil {
		if errors.Is(err, usecase.ErrPrintJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Print job not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
