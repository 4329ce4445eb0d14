package services

import (
	"context"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/repositories"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
)

// ComputeTotalMarks derives the total from the component marks. Internal and
// external each range over [0,100], so the total ranges over [0,200].
func ComputeTotalMarks(internal, external float64) float64 {
	return internal + external
}

// DeriveGrade maps a total mark to a letter grade band on its percentage of
// the 200-mark maximum.
func DeriveGrade(totalMarks float64) string {
	percentage := totalMarks / 2

	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B+"
	case percentage >= 60:
		return "B"
	case percentage >= 50:
		return "C"
	case percentage >= 40:
		return "D"
	default:
		return "F"
	}
}

// MarksService handles marks record operations. It is the sole writer of the
// derived total and grade fields.
type MarksService interface {
	CreateMarks(ctx context.Context, req *dto.CreateMarksRequest) (*models.Marks, error)
	GetMarksByID(ctx context.Context, id int64) (*models.Marks, error)
	GetAllMarks(ctx context.Context, studentID, courseID int64, semester int) ([]*models.Marks, error)
	UpdateMarks(ctx context.Context, id int64, req *dto.UpdateMarksRequest) (*models.Marks, error)
	DeleteMarks(ctx context.Context, id int64) error
}

// marksServiceImpl implements the MarksService interface
type marksServiceImpl struct {
	marksRepo *repositories.MarksRepository
}

// NewMarksService creates a new marks service instance
func NewMarksService(marksRepo *repositories.MarksRepository) MarksService {
	return &marksServiceImpl{marksRepo: marksRepo}
}

func validateComponentMarks(internal, external float64) error {
	if internal < 0 || internal > 100 {
		return apperrors.NewInvalidInputError("internalMarks must be between 0 and 100")
	}
	if external < 0 || external > 100 {
		return apperrors.NewInvalidInputError("externalMarks must be between 0 and 100")
	}
	return nil
}

// CreateMarks records component marks for a (student, course, semester) and
// derives the total and grade.
func (s *marksServiceImpl) CreateMarks(ctx context.Context, req *dto.CreateMarksRequest) (*models.Marks, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}
	if err := validateComponentMarks(req.InternalMarks, req.ExternalMarks); err != nil {
		return nil, err
	}

	total := ComputeTotalMarks(req.InternalMarks, req.ExternalMarks)
	marks := &models.Marks{
		StudentID:     req.StudentID,
		CourseID:      req.CourseID,
		Semester:      req.Semester,
		InternalMarks: req.InternalMarks,
		ExternalMarks: req.ExternalMarks,
		TotalMarks:    total,
		Grade:         DeriveGrade(total),
	}

	id, err := s.marksRepo.CreateMarks(ctx, marks)
	if err != nil {
		return nil, err
	}

	return s.marksRepo.GetMarksByID(ctx, id)
}

// GetMarksByID retrieves a marks record by ID
func (s *marksServiceImpl) GetMarksByID(ctx context.Context, id int64) (*models.Marks, error) {
	if id <= 0 {
		return nil, apperrors.ErrMarksNotFound
	}
	return s.marksRepo.GetMarksByID(ctx, id)
}

// GetAllMarks lists marks records, optionally filtered by student, course or semester
func (s *marksServiceImpl) GetAllMarks(ctx context.Context, studentID, courseID int64, semester int) ([]*models.Marks, error) {
	return s.marksRepo.GetAllMarks(ctx, studentID, courseID, semester)
}

// UpdateMarks updates component marks and re-derives the total and grade
// from the resulting pair.
func (s *marksServiceImpl) UpdateMarks(ctx context.Context, id int64, req *dto.UpdateMarksRequest) (*models.Marks, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	existing, err := s.marksRepo.GetMarksByID(ctx, id)
	if err != nil {
		return nil, err
	}

	internal := existing.InternalMarks
	external := existing.ExternalMarks
	if req.InternalMarks != nil {
		internal = *req.InternalMarks
	}
	if req.ExternalMarks != nil {
		external = *req.ExternalMarks
	}
	if err := validateComponentMarks(internal, external); err != nil {
		return nil, err
	}

	total := ComputeTotalMarks(internal, external)
	existing.InternalMarks = internal
	existing.ExternalMarks = external
	existing.TotalMarks = total
	existing.Grade = DeriveGrade(total)

	if err := s.marksRepo.UpdateMarks(ctx, existing); err != nil {
		return nil, err
	}

	return s.marksRepo.GetMarksByID(ctx, id)
}

// DeleteMarks hard-deletes a marks record
func (s *marksServiceImpl) DeleteMarks(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrMarksNotFound
	}
	return s.marksRepo.DeleteMarks(ctx, id)
}
