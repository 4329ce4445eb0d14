package models

import "time"

// Fee defines a monetary obligation owed by a student, based on the 'fees'
// table. Once Status is paid, Amount and PaidDate are immutable; a fee can
// only transition pending/overdue -> paid, never backward.
type Fee struct {
	ID            int64      `json:"id" db:"id" example:"1"`
	StudentID     int64      `json:"studentId" db:"student_id" example:"7"`
	Amount        float64    `json:"amount" db:"amount" example:"500.00"`
	Type          FeeType    `json:"type" db:"type" example:"tuition"`
	Status        FeeStatus  `json:"status" db:"status" example:"pending"`
	DueDate       time.Time  `json:"dueDate" db:"due_date"`
	PaidDate      *time.Time `json:"paidDate,omitempty" db:"paid_date"`
	PaymentMethod *string    `json:"paymentMethod,omitempty" db:"payment_method"`
	TransactionID *string    `json:"transactionId,omitempty" db:"transaction_id"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
}

// EffectiveStatus returns the status with the overdue read-boundary rule
// applied: a pending fee past its due date reads as overdue.
func (f *Fee) EffectiveStatus(now time.Time) FeeStatus {
	if f.Status == FeePending && f.DueDate.Before(now) {
		return FeeOverdue
	}
	return f.Status
}

// IsPayable reports whether the fee can accept a payment.
func (f *Fee) IsPayable() bool {
	return f.Status == FeePending || f.Status == FeeOverdue
}
