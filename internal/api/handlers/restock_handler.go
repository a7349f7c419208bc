package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prasetyadi/dealer-restock/internal/service"
)

type RestockHandler struct {
	service *service.RestockService
}

func NewRestockHandler(service *service.RestockService) *RestockHandler {
	return &RestockHandler{service: service}
}

// dealerParam extracts the required dealer query parameter.
func (h *RestockHandler) dealerParam(c *gin.Context) (string, bool) {
	dealer := strings.TrimSpace(c.Query("dealer"))
	if dealer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dealer query parameter is required"})
		return "", false
	}
	return dealer, true
}

// GetPlan runs the full planning pass. Zero empty slots is a normal result
// with nothing_to_plan set, not an error.
func (h *RestockHandler) GetPlan(c *gin.Context) {
	dealer, ok := h.dealerParam(c)
	if !ok {
		return
	}

	result, err := h.service.Plan(c.Request.Context(), dealer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RestockHandler) GetAggregates(c *gin.Context) {
	dealer, ok := h.dealerParam(c)
	if !ok {
		return
	}

	aggregates, err := h.service.Aggregates(c.Request.Context(), dealer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dealer": dealer, "aggregates": aggregates})
}

func (h *RestockHandler) GetCapacity(c *gin.Context) {
	dealer, ok := h.dealerParam(c)
	if !ok {
		return
	}

	capacity, err := h.service.Capacity(c.Request.Context(), dealer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, capacity)
}

func (h *RestockHandler) GetCheckpoint(c *gin.Context) {
	dealer, ok := h.dealerParam(c)
	if !ok {
		return
	}

	checkpoint, err := h.service.Checkpoint(c.Request.Context(), dealer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, checkpoint)
}
