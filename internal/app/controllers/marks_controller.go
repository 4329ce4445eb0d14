package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/services"
	"github.com/kerem/campuscore/internal/middleware"
)

// MarksController handles marks record operations
type MarksController struct {
	marksService services.MarksService
}

// NewMarksController creates a new MarksController
func NewMarksController(marksService services.MarksService) *MarksController {
	return &MarksController{marksService: marksService}
}

// CreateMarks records marks
// @Summary Create a marks record
// @Description Records component marks for a (student, course, semester). The total and grade are derived server-side.
// @Tags marks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateMarksRequest true "Marks information"
// @Success 201 {object} dto.APIResponse{data=models.Marks} "Marks recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 409 {object} dto.ErrorResponse "Marks already recorded for this student, course and semester"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /marks [post]
func (c *MarksController) CreateMarks(ctx *gin.Context) {
	var req dto.CreateMarksRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	marks, err := c.marksService.CreateMarks(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      marks,
		Timestamp: time.Now(),
	})
}

// GetMarksByID retrieves a marks record by ID
// @Summary Get marks record details
// @Description Retrieves a marks record by ID
// @Tags marks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Marks record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Marks} "Marks record retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid marks record ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Marks record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /marks/{id} [get]
func (c *MarksController) GetMarksByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "marks record")
	if !ok {
		return
	}

	marks, err := c.marksService.GetMarksByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      marks,
		Timestamp: time.Now(),
	})
}

// GetAllMarks lists marks records
// @Summary List marks records
// @Description Lists marks records, optionally filtered by student, course or semester
// @Tags marks
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student ID"
// @Param courseId query int false "Filter by course ID"
// @Param semester query int false "Filter by semester"
// @Success 200 {object} dto.APIResponse{data=[]models.Marks} "Marks records retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /marks [get]
func (c *MarksController) GetAllMarks(ctx *gin.Context) {
	records, err := c.marksService.GetAllMarks(ctx.Request.Context(),
		parseQueryInt64(ctx, "studentId"), parseQueryInt64(ctx, "courseId"), parseQueryInt(ctx, "semester"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// UpdateMarks updates component marks
// @Summary Update a marks record
// @Description Updates component marks and re-derives the total and grade
// @Tags marks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Marks record ID" Format(int64) minimum(1)
// @Param request body dto.UpdateMarksRequest true "Component marks to update"
// @Success 200 {object} dto.APIResponse{data=models.Marks} "Marks record updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Marks record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /marks/{id} [put]
func (c *MarksController) UpdateMarks(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "marks record")
	if !ok {
		return
	}

	var req dto.UpdateMarksRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	marks, err := c.marksService.UpdateMarks(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      marks,
		Timestamp: time.Now(),
	})
}

// DeleteMarks hard-deletes a marks record
// @Summary Delete a marks record
// @Description Hard-deletes a marks record
// @Tags marks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Marks record ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Marks record deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid marks record ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Marks record not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /marks/{id} [delete]
func (c *MarksController) DeleteMarks(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "marks record")
	if !ok {
		return
	}

	if err := c.marksService.DeleteMarks(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Marks record deleted successfully"},
		Timestamp: time.Now(),
	})
}
