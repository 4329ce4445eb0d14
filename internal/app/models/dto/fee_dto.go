package dto

import (
	"time"

	"github.com/kerem/campuscore/internal/app/models"
)

// CreateFeeRequest is the fee creation payload
type CreateFeeRequest struct {
	StudentID int64     `json:"studentId" binding:"required,min=1" example:"7"`
	Amount    float64   `json:"amount" binding:"required,gt=0" example:"500.00"`
	Type      string    `json:"type" binding:"required,oneof=tuition exam library hostel" example:"tuition"`
	DueDate   time.Time `json:"dueDate" binding:"required"`
}

// UpdateFeeRequest is the partial fee update payload. Amount and due date
// are only updatable while the fee is unpaid.
type UpdateFeeRequest struct {
	Amount  *float64   `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Type    *string    `json:"type,omitempty" binding:"omitempty,oneof=tuition exam library hostel"`
	DueDate *time.Time `json:"dueDate,omitempty"`
}

// RecordPaymentRequest is the inbound payment payload for the reconciler.
// The acting user is resolved from the session, never from this payload;
// the controller rejects unknown fields so a caller-supplied identity is an
// input error.
type RecordPaymentRequest struct {
	AmountPaid    float64 `json:"amountPaid" example:"500.00"`
	PaymentMethod string  `json:"paymentMethod" example:"cash"`
	TransactionID string  `json:"transactionId" example:"TXN-001"`
}

// PaymentReceipt records the applied payment for the caller.
type PaymentReceipt struct {
	FeeID         int64     `json:"feeId" example:"1"`
	Amount        float64   `json:"amount" example:"500.00"`
	PaymentMethod string    `json:"paymentMethod" example:"cash"`
	TransactionID string    `json:"transactionId" example:"TXN-001"`
	ActorID       int64     `json:"actorId" example:"1"`
	PaidAt        time.Time `json:"paidAt"`
}

// PaymentStudentInfo carries the owning student's balance before and after
// the payment was applied.
type PaymentStudentInfo struct {
	StudentID     int64   `json:"studentId" example:"7"`
	Name          string  `json:"name" example:"Aylin Demir"`
	BalanceBefore float64 `json:"balanceBefore" example:"1200.00"`
	BalanceAfter  float64 `json:"balanceAfter" example:"700.00"`
}

// PaymentResult is the reconciler's response payload.
type PaymentResult struct {
	Fee         *models.Fee        `json:"fee"`
	Receipt     PaymentReceipt     `json:"receipt"`
	StudentInfo PaymentStudentInfo `json:"studentInfo"`
}

// FeeFilter carries list filters for fees
type FeeFilter struct {
	StudentID int64
	Status    string
	Type      string
}
