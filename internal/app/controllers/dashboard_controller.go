package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/services"
	"github.com/kerem/campuscore/internal/middleware"
)

// DashboardController serves the institutional statistics report
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard computes the dashboard report
// @Summary Get the dashboard report
// @Description Computes a point-in-time statistical snapshot across students, courses, faculty, fees, enrollments, attendance and marks
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardReport} "Dashboard report"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute dashboard report"
// @Router /dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	report, err := c.dashboardService.ComputeDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}
