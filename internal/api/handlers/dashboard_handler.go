package handlers

import (
	"net/http"
	"time"

	"github.com/agrisetu/registry-go/internal/application"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *application.StatsService
}

func NewDashboardHandler(svc *application.StatsService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.svc.Dashboard(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
