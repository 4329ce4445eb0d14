package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/db"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
	"github.com/kerem/campuscore/internal/pkg/dberrors"
	"github.com/kerem/campuscore/internal/pkg/logger"
)

// FeeRepository handles fee database operations. It is the single writer of
// the paid transition and of student balance adjustments: every balance
// mutation happens inside a fee lifecycle transaction here.
type FeeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeeRepository creates a new FeeRepository
func NewFeeRepository(db *pgxpool.Pool) *FeeRepository {
	return &FeeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var feeColumns = []string{
	"id", "student_id", "amount", "type", "status", "due_date",
	"paid_date", "payment_method", "transaction_id", "created_at", "updated_at",
}

func scanFee(row pgx.Row) (*models.Fee, error) {
	f := &models.Fee{}
	err := row.Scan(
		&f.ID, &f.StudentID, &f.Amount, &f.Type, &f.Status, &f.DueDate,
		&f.PaidDate, &f.PaymentMethod, &f.TransactionID, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFee inserts a new pending fee and adds its amount to the owning
// student's balance in the same transaction.
func (r *FeeRepository) CreateFee(ctx context.Context, fee *models.Fee) (int64, error) {
	var id int64
	now := time.Now()

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertSQL, args, err := r.sb.Insert("fees").
			Columns("student_id", "amount", "type", "status", "due_date", "created_at", "updated_at").
			Values(fee.StudentID, fee.Amount, fee.Type, models.FeePending, fee.DueDate, now, now).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create fee query: %w", err)
		}

		if err := tx.QueryRow(ctx, insertSQL, args...).Scan(&id); err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error creating fee: %w", err)
		}

		cmdTag, err := tx.Exec(ctx,
			`UPDATE students SET balance = balance + $1, updated_at = $2 WHERE id = $3`,
			fee.Amount, now, fee.StudentID)
		if err != nil {
			return fmt.Errorf("error adding fee amount to student balance: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
	if err != nil {
		logger.Error().Err(err).Int64("studentID", fee.StudentID).Msg("Create fee transaction failed")
		return 0, err
	}

	return id, nil
}

// GetFeeByID retrieves a fee by ID
func (r *FeeRepository) GetFeeByID(ctx context.Context, id int64) (*models.Fee, error) {
	sql, args, err := r.sb.Select(feeColumns...).
		From("fees").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get fee by ID SQL")
		return nil, fmt.Errorf("failed to build get fee query: %w", err)
	}

	fee, err := scanFee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFeeNotFound
		}
		logger.Error().Err(err).Int64("feeID", id).Msg("Error scanning fee row")
		return nil, fmt.Errorf("error getting fee by ID: %w", err)
	}

	return fee, nil
}

// listQuery applies fee list filters. The overdue read-boundary rule is
// applied here: a pending fee past its due date matches status=overdue, not
// status=pending.
func (r *FeeRepository) listQuery(builder squirrel.SelectBuilder, filter dto.FeeFilter, now time.Time) squirrel.SelectBuilder {
	if filter.StudentID > 0 {
		builder = builder.Where(squirrel.Eq{"student_id": filter.StudentID})
	}
	if filter.Type != "" {
		builder = builder.Where(squirrel.Eq{"type": filter.Type})
	}
	switch models.FeeStatus(filter.Status) {
	case models.FeePending:
		builder = builder.Where(squirrel.Eq{"status": models.FeePending}).
			Where(squirrel.GtOrEq{"due_date": now})
	case models.FeeOverdue:
		builder = builder.Where(squirrel.Or{
			squirrel.Eq{"status": models.FeeOverdue},
			squirrel.And{
				squirrel.Eq{"status": models.FeePending},
				squirrel.Lt{"due_date": now},
			},
		})
	case models.FeePaid:
		builder = builder.Where(squirrel.Eq{"status": models.FeePaid})
	}
	return builder
}

// GetAllFees lists fees matching the filter, newest first
func (r *FeeRepository) GetAllFees(ctx context.Context, filter dto.FeeFilter, offset uint64, limit int) ([]*models.Fee, error) {
	builder := r.listQuery(r.sb.Select(feeColumns...).From("fees"), filter, time.Now()).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit))

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all fees SQL")
		return nil, fmt.Errorf("failed to build get all fees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all fees query")
		return nil, fmt.Errorf("error querying fees: %w", err)
	}
	defer rows.Close()

	fees := []*models.Fee{}
	for rows.Next() {
		fee, err := scanFee(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning fee row during list")
			return nil, fmt.Errorf("error scanning fee row: %w", err)
		}
		fees = append(fees, fee)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating fee rows")
		return nil, fmt.Errorf("error iterating fee rows: %w", err)
	}

	return fees, nil
}

// CountFees counts fees matching the filter
func (r *FeeRepository) CountFees(ctx context.Context, filter dto.FeeFilter) (int64, error) {
	builder := r.listQuery(r.sb.Select("COUNT(*)").From("fees"), filter, time.Now())

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count fees SQL")
		return 0, fmt.Errorf("failed to build count fees query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error executing count fees query")
		return 0, fmt.Errorf("error counting fees: %w", err)
	}

	return count, nil
}

// UpdateFee applies a partial update to an unpaid fee. An amount change
// adjusts the owning student's balance by the difference in the same
// transaction. Updating a paid fee's amount or due date is an invalid state.
func (r *FeeRepository) UpdateFee(ctx context.Context, id int64, req *dto.UpdateFeeRequest) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var studentID int64
		var oldAmount float64
		var status models.FeeStatus

		// Lock the fee row so concurrent payments serialize behind this update.
		err := tx.QueryRow(ctx,
			`SELECT student_id, amount, status FROM fees WHERE id = $1 FOR UPDATE`, id).
			Scan(&studentID, &oldAmount, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrFeeNotFound
			}
			return fmt.Errorf("error locking fee row: %w", err)
		}

		if status == models.FeePaid && (req.Amount != nil || req.DueDate != nil) {
			return apperrors.NewInvalidStateError("amount and due date of a paid fee are immutable")
		}

		now := time.Now()
		update := map[string]interface{}{"updated_at": now}
		if req.Amount != nil {
			update["amount"] = *req.Amount
		}
		if req.Type != nil {
			update["type"] = *req.Type
		}
		if req.DueDate != nil {
			update["due_date"] = *req.DueDate
		}

		updateSQL, args, err := r.sb.Update("fees").
			SetMap(update).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update fee query: %w", err)
		}

		if _, err := tx.Exec(ctx, updateSQL, args...); err != nil {
			return fmt.Errorf("error updating fee: %w", err)
		}

		if req.Amount != nil && *req.Amount != oldAmount {
			delta := *req.Amount - oldAmount
			if _, err := tx.Exec(ctx,
				`UPDATE students SET balance = balance + $1, updated_at = $2 WHERE id = $3`,
				delta, now, studentID); err != nil {
				return fmt.Errorf("error adjusting student balance: %w", err)
			}
		}

		return nil
	})
}

// DeleteFee hard-deletes a fee. Deleting an unpaid fee subtracts its amount
// from the owning student's balance; deleting a paid fee leaves the balance
// untouched.
func (r *FeeRepository) DeleteFee(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var studentID int64
		var amount float64
		var status models.FeeStatus

		err := tx.QueryRow(ctx,
			`SELECT student_id, amount, status FROM fees WHERE id = $1 FOR UPDATE`, id).
			Scan(&studentID, &amount, &status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrFeeNotFound
			}
			return fmt.Errorf("error locking fee row: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM fees WHERE id = $1`, id); err != nil {
			return fmt.Errorf("error deleting fee: %w", err)
		}

		if status != models.FeePaid {
			if _, err := tx.Exec(ctx,
				`UPDATE students SET balance = balance - $1, updated_at = $2 WHERE id = $3`,
				amount, time.Now(), studentID); err != nil {
				return fmt.Errorf("error subtracting fee amount from student balance: %w", err)
			}
		}

		return nil
	})
}

// ApplyPayment transitions a fee to paid and decrements the owning student's
// balance in one transaction. The status transition is a conditional write
// guarded on the current status; a lost race surfaces as ErrFeeAlreadyPaid
// without touching the balance.
func (r *FeeRepository) ApplyPayment(ctx context.Context, feeID int64, amount float64, method, transactionID string, paidAt time.Time) (*models.Fee, float64, error) {
	var fee *models.Fee
	var newBalance float64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var studentID int64
		err := tx.QueryRow(ctx,
			`UPDATE fees
			 SET status = $1, paid_date = $2, payment_method = $3, transaction_id = $4, updated_at = $2
			 WHERE id = $5 AND status IN ($6, $7)
			 RETURNING student_id`,
			models.FeePaid, paidAt, method, transactionID, feeID, models.FeePending, models.FeeOverdue).
			Scan(&studentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// No payable row: distinguish a missing fee from a lost race.
				var status models.FeeStatus
				checkErr := tx.QueryRow(ctx, `SELECT status FROM fees WHERE id = $1`, feeID).Scan(&status)
				if errors.Is(checkErr, pgx.ErrNoRows) {
					return apperrors.ErrFeeNotFound
				}
				if checkErr != nil {
					return fmt.Errorf("error checking fee status: %w", checkErr)
				}
				return apperrors.ErrFeeAlreadyPaid
			}
			return fmt.Errorf("error applying payment to fee: %w", err)
		}

		err = tx.QueryRow(ctx,
			`UPDATE students SET balance = balance - $1, updated_at = $2 WHERE id = $3 RETURNING balance`,
			amount, paidAt, studentID).
			Scan(&newBalance)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("error decrementing student balance: %w", err)
		}

		updated, err := scanFee(tx.QueryRow(ctx,
			`SELECT `+feeSelectList+` FROM fees WHERE id = $1`, feeID))
		if err != nil {
			return fmt.Errorf("error reading updated fee: %w", err)
		}
		fee = updated

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return fee, newBalance, nil
}

const feeSelectList = "id, student_id, amount, type, status, due_date, paid_date, payment_method, transaction_id, created_at, updated_at"
