package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/services"
	"github.com/kerem/campuscore/internal/middleware"
	"github.com/kerem/campuscore/internal/pkg/helpers"
)

// AttendanceController handles attendance record operations
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// CreateAttendance records attendance
// @Summary Create an attendance record
// @Description Records attendance for a student in a course session
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAttendanceRequest true "Attendance information"
// @Success 201 {object} dto.APIResponse{data=models.Attendance} "Attendance recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [post]
func (c *AttendanceController) CreateAttendance(ctx *gin.Context) {
	var req dto.CreateAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.attendanceService.CreateAttendance(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// GetAttendanceByID retrieves an attendance record by ID
// @Summary Get attendance record details
// @Description Retrieves an attendance record by ID
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Attendance record retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance record ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [get]
func (c *AttendanceController) GetAttendanceByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "attendance record")
	if !ok {
		return
	}

	record, err := c.attendanceService.GetAttendanceByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// GetAllAttendance lists attendance records
// @Summary List attendance records
// @Description Lists attendance records with optional filters, paginated
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student ID"
// @Param courseId query int false "Filter by course ID"
// @Param from query string false "Start date (RFC 3339)"
// @Param to query string false "End date (RFC 3339)"
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Attendance} "Attendance records retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid date filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance [get]
func (c *AttendanceController) GetAllAttendance(ctx *gin.Context) {
	filter := dto.AttendanceFilter{
		StudentID: parseQueryInt64(ctx, "studentId"),
		CourseID:  parseQueryInt64(ctx, "courseId"),
	}

	for name, dst := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		if raw := ctx.Query(name); raw != "" {
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
					dto.NewErrorDetail(dto.ErrorCodeInvalidInput, name+" must be an RFC 3339 timestamp").WithField(name)))
				return
			}
			*dst = &t
		}
	}

	page, size := helpers.ParsePaginationParams(ctx)

	records, err := c.attendanceService.GetAllAttendance(ctx.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// UpdateAttendanceStatus updates the status of an attendance record
// @Summary Update an attendance record
// @Description Updates the status of an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance record ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAttendanceRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Attendance} "Attendance record updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [put]
func (c *AttendanceController) UpdateAttendanceStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "attendance record")
	if !ok {
		return
	}

	var req dto.UpdateAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	record, err := c.attendanceService.UpdateAttendanceStatus(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// DeleteAttendance hard-deletes an attendance record
// @Summary Delete an attendance record
// @Description Hard-deletes an attendance record
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path int true "Attendance record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Attendance record deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance record ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Attendance record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) DeleteAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "attendance record")
	if !ok {
		return
	}

	if err := c.attendanceService.DeleteAttendance(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Attendance record deleted successfully"},
		Timestamp: time.Now(),
	})
}
