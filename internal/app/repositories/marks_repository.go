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
	"github.com/kerem/campuscore/internal/pkg/apperrors"
	"github.com/kerem/campuscore/internal/pkg/dberrors"
	"github.com/kerem/campuscore/internal/pkg/logger"
)

// MarksRepository handles marks database operations
type MarksRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMarksRepository creates a new MarksRepository
func NewMarksRepository(db *pgxpool.Pool) *MarksRepository {
	return &MarksRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var marksColumns = []string{
	"id", "student_id", "course_id", "semester",
	"internal_marks", "external_marks", "total_marks", "grade",
	"created_at", "updated_at",
}

func scanMarks(row pgx.Row) (*models.Marks, error) {
	m := &models.Marks{}
	err := row.Scan(
		&m.ID, &m.StudentID, &m.CourseID, &m.Semester,
		&m.InternalMarks, &m.ExternalMarks, &m.TotalMarks, &m.Grade,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// CreateMarks inserts a new marks record with derived total and grade
func (r *MarksRepository) CreateMarks(ctx context.Context, marks *models.Marks) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("marks").
		Columns("student_id", "course_id", "semester", "internal_marks", "external_marks", "total_marks", "grade", "created_at", "updated_at").
		Values(marks.StudentID, marks.CourseID, marks.Semester, marks.InternalMarks, marks.ExternalMarks, marks.TotalMarks, marks.Grade, now, now).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create marks SQL")
		return 0, fmt.Errorf("failed to build create marks query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "marks_student_id_course_id_semester_key") {
			return 0, apperrors.NewConflictError("marks already recorded for this student, course and semester")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.NewNotFoundError("student or course not found")
		}
		logger.Error().Err(err).Msg("Error executing create marks query")
		return 0, fmt.Errorf("error creating marks record: %w", err)
	}

	return id, nil
}

// GetMarksByID retrieves a marks record by ID
func (r *MarksRepository) GetMarksByID(ctx context.Context, id int64) (*models.Marks, error) {
	sql, args, err := r.sb.Select(marksColumns...).
		From("marks").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get marks by ID SQL")
		return nil, fmt.Errorf("failed to build get marks query: %w", err)
	}

	marks, err := scanMarks(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMarksNotFound
		}
		logger.Error().Err(err).Int64("marksID", id).Msg("Error scanning marks row")
		return nil, fmt.Errorf("error getting marks by ID: %w", err)
	}

	return marks, nil
}

// GetAllMarks lists marks records, optionally filtered by student, course or semester
func (r *MarksRepository) GetAllMarks(ctx context.Context, studentID, courseID int64, semester int) ([]*models.Marks, error) {
	builder := r.sb.Select(marksColumns...).
		From("marks").
		OrderBy("created_at DESC")

	if studentID > 0 {
		builder = builder.Where(squirrel.Eq{"student_id": studentID})
	}
	if courseID > 0 {
		builder = builder.Where(squirrel.Eq{"course_id": courseID})
	}
	if semester > 0 {
		builder = builder.Where(squirrel.Eq{"semester": semester})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all marks SQL")
		return nil, fmt.Errorf("failed to build get all marks query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all marks query")
		return nil, fmt.Errorf("error querying marks: %w", err)
	}
	defer rows.Close()

	records := []*models.Marks{}
	for rows.Next() {
		marks, err := scanMarks(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning marks row during list")
			return nil, fmt.Errorf("error scanning marks row: %w", err)
		}
		records = append(records, marks)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating marks rows")
		return nil, fmt.Errorf("error iterating marks rows: %w", err)
	}

	return records, nil
}

// UpdateMarks updates the component marks together with the re-derived
// total and grade.
func (r *MarksRepository) UpdateMarks(ctx context.Context, marks *models.Marks) error {
	sql, args, err := r.sb.Update("marks").
		SetMap(map[string]interface{}{
			"internal_marks": marks.InternalMarks,
			"external_marks": marks.ExternalMarks,
			"total_marks":    marks.TotalMarks,
			"grade":          marks.Grade,
			"updated_at":     time.Now(),
		}).
		Where(squirrel.Eq{"id": marks.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update marks SQL")
		return fmt.Errorf("failed to build update marks query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("marksID", marks.ID).Msg("Error executing update marks query")
		return fmt.Errorf("error updating marks record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMarksNotFound
	}

	return nil
}

// DeleteMarks hard-deletes a marks record
func (r *MarksRepository) DeleteMarks(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("marks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete marks SQL")
		return fmt.Errorf("failed to build delete marks query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("marksID", id).Msg("Error executing delete marks query")
		return fmt.Errorf("error deleting marks record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMarksNotFound
	}

	return nil
}
