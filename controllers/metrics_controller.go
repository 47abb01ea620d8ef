// controllers/metrics_controller.go
package controllers

import (
	"net/http"

	"github.com/DevAnseSenior/daily-diet/middlewares"
	"github.com/DevAnseSenior/daily-diet/services"

	"github.com/gin-gonic/gin"
)

type MetricsController struct {
	Svc *services.MetricsService
}

func NewMetricsController(svc *services.MetricsService) *MetricsController {
	return &MetricsController{Svc: svc}
}

func (h *MetricsController) GetMealMetrics(c *gin.Context) {
	sessionID, ok := middlewares.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	out, err := h.Svc.Summary(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
