package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
)

// fakeFeeStore is a hand-written feeStore double. Only the methods the
// payment path touches carry behavior.
type fakeFeeStore struct {
	fee        *models.Fee
	getErr     error
	applyErr   error
	newBalance float64
	applyCalls int

	appliedAmount float64
	appliedMethod string
	appliedTxnID  string
}

func (f *fakeFeeStore) CreateFee(ctx context.Context, fee *models.Fee) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeFeeStore) GetFeeByID(ctx context.Context, id int64) (*models.Fee, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.fee
	return &cp, nil
}

func (f *fakeFeeStore) GetAllFees(ctx context.Context, filter dto.FeeFilter, offset uint64, limit int) ([]*models.Fee, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeFeeStore) CountFees(ctx context.Context, filter dto.FeeFilter) (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeFeeStore) UpdateFee(ctx context.Context, id int64, req *dto.UpdateFeeRequest) error {
	return errors.New("not implemented")
}

func (f *fakeFeeStore) DeleteFee(ctx context.Context, id int64) error {
	return errors.New("not implemented")
}

func (f *fakeFeeStore) ApplyPayment(ctx context.Context, feeID int64, amount float64, method, transactionID string, paidAt time.Time) (*models.Fee, float64, error) {
	f.applyCalls++
	if f.applyErr != nil {
		return nil, 0, f.applyErr
	}
	f.appliedAmount = amount
	f.appliedMethod = method
	f.appliedTxnID = transactionID

	paid := *f.fee
	paid.Status = models.FeePaid
	paid.PaidDate = &paidAt
	paid.PaymentMethod = &method
	paid.TransactionID = &transactionID
	return &paid, f.newBalance, nil
}

type fakeStudentReader struct {
	student *models.Student
	getErr  error
}

func (f *fakeStudentReader) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.student
	return &cp, nil
}

func paymentFixtures() (*fakeFeeStore, *fakeStudentReader) {
	feeStore := &fakeFeeStore{
		fee: &models.Fee{
			ID:        1,
			StudentID: 7,
			Amount:    500.00,
			Type:      models.FeeTuition,
			Status:    models.FeePending,
			DueDate:   time.Now().Add(30 * 24 * time.Hour),
		},
		newBalance: 700.00,
	}
	studentReader := &fakeStudentReader{
		student: &models.Student{
			ID:        7,
			FirstName: "Aylin",
			LastName:  "Demir",
			Balance:   1200.00,
			Status:    models.StudentActive,
		},
	}
	return feeStore, studentReader
}

func validPaymentRequest() *dto.RecordPaymentRequest {
	return &dto.RecordPaymentRequest{
		AmountPaid:    500.00,
		PaymentMethod: "cash",
		TransactionID: "TXN-001",
	}
}

func TestRecordPayment_Success(t *testing.T) {
	feeStore, studentReader := paymentFixtures()
	svc := NewFeeService(feeStore, studentReader)
	actor := models.Actor{ID: 3, Email: "admin@campus.edu", Role: "ADMIN"}

	result, err := svc.RecordPayment(context.Background(), 1, validPaymentRequest(), actor)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, models.FeePaid, result.Fee.Status)
	require.NotNil(t, result.Fee.PaidDate)

	assert.Equal(t, int64(1), result.Receipt.FeeID)
	assert.Equal(t, 500.00, result.Receipt.Amount)
	assert.Equal(t, "cash", result.Receipt.PaymentMethod)
	assert.Equal(t, "TXN-001", result.Receipt.TransactionID)
	assert.Equal(t, int64(3), result.Receipt.ActorID)

	assert.Equal(t, int64(7), result.StudentInfo.StudentID)
	assert.Equal(t, "Aylin Demir", result.StudentInfo.Name)
	assert.InDelta(t, 1200.00, result.StudentInfo.BalanceBefore, 0.001)
	assert.InDelta(t, 700.00, result.StudentInfo.BalanceAfter, 0.001)

	assert.Equal(t, 1, feeStore.applyCalls)
	assert.Equal(t, 500.00, feeStore.appliedAmount)
}

func TestRecordPayment_FeeNotFound(t *testing.T) {
	feeStore, studentReader := paymentFixtures()
	feeStore.getErr = apperrors.ErrFeeNotFound
	svc := NewFeeService(feeStore, studentReader)

	_, err := svc.RecordPayment(context.Background(), 99, validPaymentRequest(), models.Actor{ID: 3})
	assert.ErrorIs(t, err, apperrors.ErrFeeNotFound)
	assert.Zero(t, feeStore.applyCalls)
}

func TestRecordPayment_StudentNotFound(t *testing.T) {
	feeStore, studentReader := paymentFixtures()
	studentReader.getErr = apperrors.ErrStudentNotFound
	svc := NewFeeService(feeStore, studentReader)

	_, err := svc.RecordPayment(context.Background(), 1, validPaymentRequest(), models.Actor{ID: 3})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Zero(t, feeStore.applyCalls)
}

// The fee lookup must fail before input fields are even inspected.
func TestRecordPayment_ValidationOrder(t *testing.T) {
	feeStore, studentReader := paymentFixtures()
	feeStore.getErr = apperrors.ErrFeeNotFound
	svc := NewFeeService(feeStore, studentReader)

	req := &dto.RecordPaymentRequest{AmountPaid: -5}
	_, err := svc.RecordPayment(context.Background(), 99, req, models.Actor{ID: 3})
	assert.ErrorIs(t, err, apperrors.ErrFeeNotFound)
}

func TestRecordPayment_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *dto.RecordPaymentRequest
	}{
		{"zero amount", &dto.RecordPaymentRequest{AmountPaid: 0, PaymentMethod: "cash", TransactionID: "TXN-001"}},
		{"negative amount", &dto.RecordPaymentRequest{AmountPaid: -500, PaymentMethod: "cash", TransactionID: "TXN-001"}},
		{"missing method", &dto.RecordPaymentRequest{AmountPaid: 500, PaymentMethod: "  ", TransactionID: "TXN-001"}},
		{"missing transaction id", &dto.RecordPaymentRequest{AmountPaid: 500, PaymentMethod: "cash", TransactionID: ""}},
		{"nil body", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			feeStore, studentReader := paymentFixtures()
			svc := NewFeeService(feeStore, studentReader)

			_, err := svc.RecordPayment(context.Background(), 1, tc.req, models.Actor{ID: 3})
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Zero(t, feeStore.applyCalls)
		})
	}
}

func TestRecordPayment_AlreadyPaid(t *testing.T) {
	feeStore, studentReader := paymentFixtures()
	feeStore.fee.Status = models.FeePaid
	svc := NewFeeService(feeStore, studentReader)

	_, err := svc.RecordPayment(context.Background(), 1, validPaymentRequest(), models.Actor{ID: 3})
	assert.ErrorIs(t, err, apperrors.ErrFeeAlreadyPaid)
	assert.Zero(t, feeStore.applyCalls, "a paid fee must never reach the write path")
}

// A concurrent payment can settle the fee between the status pre-check and
// the conditional write. The loser must surface the conflict and leave the
// balance alone.
func TestRecordPayment_LostRace(t *testing.T) {
	feeStore, studentReader := paymentFixtures()
	feeStore.applyErr = apperrors.ErrFeeAlreadyPaid
	svc := NewFeeService(feeStore, studentReader)

	_, err := svc.RecordPayment(context.Background(), 1, validPaymentRequest(), models.Actor{ID: 3})
	assert.ErrorIs(t, err, apperrors.ErrFeeAlreadyPaid)
	assert.Equal(t, 1, feeStore.applyCalls)
}

func TestRecordPayment_AmountMismatch(t *testing.T) {
	feeStore, studentReader := paymentFixtures()
	feeStore.fee.Amount = 300.00
	svc := NewFeeService(feeStore, studentReader)

	req := validPaymentRequest()
	req.AmountPaid = 250.00

	_, err := svc.RecordPayment(context.Background(), 1, req, models.Actor{ID: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrAmountMismatch)
	assert.Contains(t, err.Error(), "250.00")
	assert.Contains(t, err.Error(), "300.00")
	assert.Zero(t, feeStore.applyCalls)
}

func TestRecordPayment_AmountTolerance(t *testing.T) {
	tests := []struct {
		name       string
		amountPaid float64
		wantErr    bool
	}{
		{"exact", 500.00, false},
		{"one cent under", 499.99, false},
		{"one cent over", 500.01, false},
		{"two cents over", 500.02, true},
		{"well under", 499.50, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			feeStore, studentReader := paymentFixtures()
			svc := NewFeeService(feeStore, studentReader)

			req := validPaymentRequest()
			req.AmountPaid = tc.amountPaid

			_, err := svc.RecordPayment(context.Background(), 1, req, models.Actor{ID: 3})
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrAmountMismatch)
			} else {
				assert.NoError(t, err)
				// The ledger applies the fee amount, not the submitted amount
				assert.Equal(t, 500.00, feeStore.appliedAmount)
			}
		})
	}
}

func TestRecordPayment_OverdueFeeIsPayable(t *testing.T) {
	feeStore, studentReader := paymentFixtures()
	feeStore.fee.Status = models.FeeOverdue
	svc := NewFeeService(feeStore, studentReader)

	result, err := svc.RecordPayment(context.Background(), 1, validPaymentRequest(), models.Actor{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, models.FeePaid, result.Fee.Status)
}
