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
	"github.com/kerem/campuscore/internal/pkg/apperrors"
	"github.com/kerem/campuscore/internal/pkg/dberrors"
	"github.com/kerem/campuscore/internal/pkg/logger"
)

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var attendanceColumns = []string{"id", "student_id", "course_id", "date", "session", "status", "created_at"}

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	a := &models.Attendance{}
	err := row.Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Date, &a.Session, &a.Status, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateAttendance inserts a new attendance record
func (r *AttendanceRepository) CreateAttendance(ctx context.Context, record *models.Attendance) (int64, error) {
	sql, args, err := r.sb.Insert("attendance").
		Columns("student_id", "course_id", "date", "session", "status", "created_at").
		Values(record.StudentID, record.CourseID, record.Date, record.Session, record.Status, time.Now()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create attendance SQL")
		return 0, fmt.Errorf("failed to build create attendance query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewNotFoundError("student or course not found")
		}
		logger.Error().Err(err).Msg("Error executing create attendance query")
		return 0, fmt.Errorf("error creating attendance record: %w", err)
	}

	return id, nil
}

// GetAttendanceByID retrieves an attendance record by ID
func (r *AttendanceRepository) GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error) {
	sql, args, err := r.sb.Select(attendanceColumns...).
		From("attendance").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get attendance by ID SQL")
		return nil, fmt.Errorf("failed to build get attendance query: %w", err)
	}

	record, err := scanAttendance(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		logger.Error().Err(err).Int64("attendanceID", id).Msg("Error scanning attendance row")
		return nil, fmt.Errorf("error getting attendance by ID: %w", err)
	}

	return record, nil
}

// GetAllAttendance lists attendance records matching the filter, newest first
func (r *AttendanceRepository) GetAllAttendance(ctx context.Context, filter dto.AttendanceFilter, offset uint64, limit int) ([]*models.Attendance, error) {
	builder := r.sb.Select(attendanceColumns...).
		From("attendance").
		OrderBy("date DESC, id DESC").
		Offset(offset).
		Limit(uint64(limit))

	if filter.StudentID > 0 {
		builder = builder.Where(squirrel.Eq{"student_id": filter.StudentID})
	}
	if filter.CourseID > 0 {
		builder = builder.Where(squirrel.Eq{"course_id": filter.CourseID})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"date": *filter.To})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all attendance SQL")
		return nil, fmt.Errorf("failed to build get all attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all attendance query")
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning attendance row during list")
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating attendance rows")
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}

// UpdateAttendanceStatus updates the status of an attendance record
func (r *AttendanceRepository) UpdateAttendanceStatus(ctx context.Context, id int64, status models.AttendanceStatus) error {
	sql, args, err := r.sb.Update("attendance").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update attendance SQL")
		return fmt.Errorf("failed to build update attendance query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("attendanceID", id).Msg("Error executing update attendance query")
		return fmt.Errorf("error updating attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}

// DeleteAttendance hard-deletes an attendance record
func (r *AttendanceRepository) DeleteAttendance(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("attendance").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete attendance SQL")
		return fmt.Errorf("failed to build delete attendance query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("attendanceID", id).Msg("Error executing delete attendance query")
		return fmt.Errorf("error deleting attendance record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAttendanceNotFound
	}

	return nil
}
