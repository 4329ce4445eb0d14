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

// ErrFacultyEmailExists is returned when a faculty member with the same email exists.
var ErrFacultyEmailExists = fmt.Errorf("%w: faculty member with this email already exists", apperrors.ErrEmailAlreadyExists)

// FacultyRepository handles faculty member database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var facultyColumns = []string{"id", "first_name", "last_name", "email", "department", "designation", "created_at", "updated_at"}

func scanFaculty(row pgx.Row) (*models.Faculty, error) {
	f := &models.Faculty{}
	err := row.Scan(&f.ID, &f.FirstName, &f.LastName, &f.Email, &f.Department, &f.Designation, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// CreateFaculty inserts a new faculty member
func (r *FacultyRepository) CreateFaculty(ctx context.Context, faculty *models.Faculty) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("faculty").
		Columns("first_name", "last_name", "email", "department", "designation", "created_at", "updated_at").
		Values(faculty.FirstName, faculty.LastName, faculty.Email, faculty.Department, faculty.Designation, now, now).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create faculty SQL")
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, ErrFacultyEmailExists
		}
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty member: %w", err)
	}

	return id, nil
}

// GetFacultyByID retrieves a faculty member by ID
func (r *FacultyRepository) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get faculty by ID SQL")
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty, err := scanFaculty(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty member by ID: %w", err)
	}

	return faculty, nil
}

// GetAllFaculty lists faculty members, optionally filtered by department or
// a substring search on name or email.
func (r *FacultyRepository) GetAllFaculty(ctx context.Context, department, search string) ([]*models.Faculty, error) {
	builder := r.sb.Select(facultyColumns...).
		From("faculty").
		OrderBy("last_name ASC, first_name ASC")

	if department != "" {
		builder = builder.Where(squirrel.Eq{"department": department})
	}
	if search != "" {
		pattern := "%" + search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"first_name || ' ' || last_name": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all faculty SQL")
		return nil, fmt.Errorf("failed to build get all faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	members := []*models.Faculty{}
	for rows.Next() {
		member, err := scanFaculty(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning faculty row during list")
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating faculty rows")
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return members, nil
}

// UpdateFaculty applies a partial update
func (r *FacultyRepository) UpdateFaculty(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) error {
	update := map[string]interface{}{"updated_at": time.Now()}
	if req.FirstName != nil {
		update["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		update["last_name"] = *req.LastName
	}
	if req.Email != nil {
		update["email"] = *req.Email
	}
	if req.Department != nil {
		update["department"] = *req.Department
	}
	if req.Designation != nil {
		update["designation"] = *req.Designation
	}

	sql, args, err := r.sb.Update("faculty").
		SetMap(update).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update faculty SQL")
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return ErrFacultyEmailExists
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// DeleteFaculty hard-deletes a faculty member
func (r *FacultyRepository) DeleteFaculty(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete faculty SQL")
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
