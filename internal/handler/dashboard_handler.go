package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostel-system/hostel-management/internal/service"
	"github.com/hostel-system/hostel-management/pkg/utils"
)

// DashboardHandler exposes the admin summary endpoint.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// AdminDashboard handles GET /admin-dashboard.
func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	summary, err := h.dashboardService.Summary()
	if err != nil {
		utils.Error(c, utils.ErrCodeInternalError, "failed to compute dashboard: %v", err)
		return
	}

	utils.Success(c, http.StatusOK, summary)
}
