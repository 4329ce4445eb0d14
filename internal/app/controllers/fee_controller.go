package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/services"
	"github.com/kerem/campuscore/internal/middleware"
	"github.com/kerem/campuscore/internal/pkg/helpers"
)

// FeeController handles fee lifecycle and payment operations
type FeeController struct {
	feeService services.FeeService
}

// NewFeeController creates a new FeeController
func NewFeeController(feeService services.FeeService) *FeeController {
	return &FeeController{feeService: feeService}
}

// CreateFee handles fee creation
// @Summary Create a new fee
// @Description Creates a pending fee for a student and increments their outstanding balance
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFeeRequest true "Fee information"
// @Success 201 {object} dto.APIResponse{data=models.Fee} "Fee created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees [post]
func (c *FeeController) CreateFee(ctx *gin.Context) {
	var req dto.CreateFeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fee, err := c.feeService.CreateFee(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      fee,
		Timestamp: time.Now(),
	})
}

// GetFeeByID retrieves a fee by ID
// @Summary Get fee details
// @Description Retrieves a fee by ID
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Fee retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid fee ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/{id} [get]
func (c *FeeController) GetFeeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "fee")
	if !ok {
		return
	}

	fee, err := c.feeService.GetFeeByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      fee,
		Timestamp: time.Now(),
	})
}

// GetAllFees lists fees
// @Summary List fees
// @Description Lists fees with optional filters, paginated. Pending fees past their due date are reported as overdue.
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param studentId query int false "Filter by student ID"
// @Param status query string false "Filter by status" Enums(pending, overdue, paid)
// @Param type query string false "Filter by fee type" Enums(tuition, exam, library, hostel)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.Fee} "Fees retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees [get]
func (c *FeeController) GetAllFees(ctx *gin.Context) {
	filter := dto.FeeFilter{
		StudentID: parseQueryInt64(ctx, "studentId"),
		Status:    ctx.Query("status"),
		Type:      ctx.Query("type"),
	}
	page, size := helpers.ParsePaginationParams(ctx)

	fees, pagination, err := c.feeService.GetAllFees(ctx.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:       fees,
		Pagination: &pagination,
		Timestamp:  time.Now(),
	})
}

// UpdateFee applies a partial update to a fee
// @Summary Update a fee
// @Description Applies a partial update to a fee. Amount and due date are only updatable while unpaid.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID" Format(int64) minimum(1)
// @Param request body dto.UpdateFeeRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Fee} "Fee updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Failure 422 {object} dto.ErrorResponse "Fee is paid and cannot be modified"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/{id} [put]
func (c *FeeController) UpdateFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "fee")
	if !ok {
		return
	}

	var req dto.UpdateFeeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	fee, err := c.feeService.UpdateFee(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      fee,
		Timestamp: time.Now(),
	})
}

// DeleteFee hard-deletes a fee
// @Summary Delete a fee
// @Description Hard-deletes a fee. An unpaid fee's amount is removed from the student's balance.
// @Tags fees
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Fee deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid fee ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Fee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/{id} [delete]
func (c *FeeController) DeleteFee(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "fee")
	if !ok {
		return
	}

	if err := c.feeService.DeleteFee(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Fee deleted successfully"},
		Timestamp: time.Now(),
	})
}

// RecordPayment settles a fee
// @Summary Record a payment
// @Description Settles a pending or overdue fee and decrements the student's balance. The acting user is taken from the session; payloads carrying unknown fields (such as a caller-supplied identity) are rejected.
// @Tags fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Fee ID" Format(int64) minimum(1)
// @Param request body dto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} dto.APIResponse{data=dto.PaymentResult} "Payment recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Fee or student not found"
// @Failure 409 {object} dto.ErrorResponse "Fee is already paid"
// @Failure 422 {object} dto.ErrorResponse "Amount mismatch or invalid fee state"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /fees/{id}/payments [post]
func (c *FeeController) RecordPayment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "fee")
	if !ok {
		return
	}

	// Strict decode: the actor comes from the session token, so a payload
	// that tries to supply one (or any other unknown field) is an input error.
	var req dto.RecordPaymentRequest
	decoder := json.NewDecoder(ctx.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Invalid payment payload: "+err.Error())))
		return
	}

	actor := middleware.ActorFromContext(ctx)

	result, err := c.feeService.RecordPayment(ctx.Request.Context(), id, &req, actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}
