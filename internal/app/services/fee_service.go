package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
	"github.com/kerem/campuscore/internal/pkg/helpers"
	"github.com/kerem/campuscore/internal/pkg/logger"
)

// paymentAmountTolerance is the absolute tolerance when comparing a submitted
// payment against the fee amount, absorbing floating-point representation
// error.
const paymentAmountTolerance = 0.01

// feeStore is the fee persistence surface the service depends on
type feeStore interface {
	CreateFee(ctx context.Context, fee *models.Fee) (int64, error)
	GetFeeByID(ctx context.Context, id int64) (*models.Fee, error)
	GetAllFees(ctx context.Context, filter dto.FeeFilter, offset uint64, limit int) ([]*models.Fee, error)
	CountFees(ctx context.Context, filter dto.FeeFilter) (int64, error)
	UpdateFee(ctx context.Context, id int64, req *dto.UpdateFeeRequest) error
	DeleteFee(ctx context.Context, id int64) error
	ApplyPayment(ctx context.Context, feeID int64, amount float64, method, transactionID string, paidAt time.Time) (*models.Fee, float64, error)
}

// studentReader is the read-only student lookup the fee service needs
type studentReader interface {
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
}

// FeeService handles fee lifecycle operations and payment reconciliation
type FeeService interface {
	CreateFee(ctx context.Context, req *dto.CreateFeeRequest) (*models.Fee, error)
	GetFeeByID(ctx context.Context, id int64) (*models.Fee, error)
	GetAllFees(ctx context.Context, filter dto.FeeFilter, page, size int) ([]*models.Fee, dto.PaginationInfo, error)
	UpdateFee(ctx context.Context, id int64, req *dto.UpdateFeeRequest) (*models.Fee, error)
	DeleteFee(ctx context.Context, id int64) error
	RecordPayment(ctx context.Context, feeID int64, req *dto.RecordPaymentRequest, actor models.Actor) (*dto.PaymentResult, error)
}

// feeServiceImpl implements the FeeService interface
type feeServiceImpl struct {
	feeRepo     feeStore
	studentRepo studentReader
}

// NewFeeService creates a new fee service instance
func NewFeeService(feeRepo feeStore, studentRepo studentReader) FeeService {
	return &feeServiceImpl{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
	}
}

// CreateFee creates a new pending fee for a student
func (s *feeServiceImpl) CreateFee(ctx context.Context, req *dto.CreateFeeRequest) (*models.Fee, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	// The owning student must exist before the balance increment
	if _, err := s.studentRepo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	fee := &models.Fee{
		StudentID: req.StudentID,
		Amount:    req.Amount,
		Type:      models.FeeType(req.Type),
		Status:    models.FeePending,
		DueDate:   req.DueDate,
	}

	id, err := s.feeRepo.CreateFee(ctx, fee)
	if err != nil {
		return nil, fmt.Errorf("error creating fee: %w", err)
	}

	return s.feeRepo.GetFeeByID(ctx, id)
}

// GetFeeByID retrieves a fee by ID
func (s *feeServiceImpl) GetFeeByID(ctx context.Context, id int64) (*models.Fee, error) {
	if id <= 0 {
		return nil, apperrors.ErrFeeNotFound
	}
	return s.feeRepo.GetFeeByID(ctx, id)
}

// GetAllFees lists fees matching the filter with pagination
func (s *feeServiceImpl) GetAllFees(ctx context.Context, filter dto.FeeFilter, page, size int) ([]*models.Fee, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	fees, err := s.feeRepo.GetAllFees(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing fees: %w", err)
	}

	total, err := s.feeRepo.CountFees(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting fees: %w", err)
	}

	return fees, helpers.NewPaginationInfo(total, page, size), nil
}

// UpdateFee applies a partial update to an unpaid fee
func (s *feeServiceImpl) UpdateFee(ctx context.Context, id int64, req *dto.UpdateFeeRequest) (*models.Fee, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	if err := s.feeRepo.UpdateFee(ctx, id, req); err != nil {
		return nil, err
	}

	return s.feeRepo.GetFeeByID(ctx, id)
}

// DeleteFee hard-deletes a fee, reversing its balance contribution when unpaid
func (s *feeServiceImpl) DeleteFee(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrFeeNotFound
	}
	return s.feeRepo.DeleteFee(ctx, id)
}

// validatePaymentInput checks the payment fields after the fee and student
// lookups have succeeded.
func validatePaymentInput(req *dto.RecordPaymentRequest) error {
	if req == nil {
		return apperrors.NewInvalidInputError("request body is required")
	}
	if req.AmountPaid <= 0 {
		return apperrors.NewInvalidInputError("amountPaid must be greater than zero")
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return apperrors.NewInvalidInputError("paymentMethod is required")
	}
	if strings.TrimSpace(req.TransactionID) == "" {
		return apperrors.NewInvalidInputError("transactionId is required")
	}
	return nil
}

// RecordPayment settles a fee. Validation is ordered and fail-fast: fee
// lookup, student lookup, input fields, payable status, amount tolerance.
// The status flip and the balance decrement are applied atomically by the
// repository; a concurrent payment of the same fee loses the conditional
// write and surfaces as a conflict without touching the balance.
func (s *feeServiceImpl) RecordPayment(ctx context.Context, feeID int64, req *dto.RecordPaymentRequest, actor models.Actor) (*dto.PaymentResult, error) {
	fee, err := s.feeRepo.GetFeeByID(ctx, feeID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetStudentByID(ctx, fee.StudentID)
	if err != nil {
		return nil, err
	}

	if err := validatePaymentInput(req); err != nil {
		return nil, err
	}

	if fee.Status == models.FeePaid {
		return nil, apperrors.ErrFeeAlreadyPaid
	}
	if !fee.IsPayable() {
		return nil, apperrors.NewInvalidStateError(fmt.Sprintf("fee cannot be paid in status %s", fee.Status))
	}

	if math.Abs(req.AmountPaid-fee.Amount) > paymentAmountTolerance {
		return nil, apperrors.NewAmountMismatchError(
			fmt.Sprintf("payment amount %.2f does not match fee amount %.2f", req.AmountPaid, fee.Amount))
	}

	paidAt := time.Now()
	method := strings.TrimSpace(req.PaymentMethod)
	transactionID := strings.TrimSpace(req.TransactionID)

	updated, newBalance, err := s.feeRepo.ApplyPayment(ctx, feeID, fee.Amount, method, transactionID, paidAt)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("feeId", feeID).
		Int64("studentId", student.ID).
		Float64("amount", fee.Amount).
		Str("paymentMethod", method).
		Str("transactionId", transactionID).
		Int64("actorId", actor.ID).
		Msg("Payment recorded")

	return &dto.PaymentResult{
		Fee: updated,
		Receipt: dto.PaymentReceipt{
			FeeID:         feeID,
			Amount:        fee.Amount,
			PaymentMethod: method,
			TransactionID: transactionID,
			ActorID:       actor.ID,
			PaidAt:        paidAt,
		},
		StudentInfo: dto.PaymentStudentInfo{
			StudentID:     student.ID,
			Name:          student.FirstName + " " + student.LastName,
			BalanceBefore: newBalance + fee.Amount,
			BalanceAfter:  newBalance,
		},
	}, nil
}
