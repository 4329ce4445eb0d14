package services

import (
	"context"
	"strings"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/repositories"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
)

// FacultyService handles faculty member operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAllFaculty(ctx context.Context, department, search string) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyRepo *repositories.FacultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo *repositories.FacultyRepository) FacultyService {
	return &facultyServiceImpl{facultyRepo: facultyRepo}
}

// CreateFaculty creates a new faculty member
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	faculty := &models.Faculty{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Department:  strings.TrimSpace(req.Department),
		Designation: strings.TrimSpace(req.Designation),
	}

	id, err := s.facultyRepo.CreateFaculty(ctx, faculty)
	if err != nil {
		return nil, err
	}

	return s.facultyRepo.GetFacultyByID(ctx, id)
}

// GetFacultyByID retrieves a faculty member by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if id <= 0 {
		return nil, apperrors.ErrFacultyNotFound
	}
	return s.facultyRepo.GetFacultyByID(ctx, id)
}

// GetAllFaculty lists faculty members, optionally filtered by department or
// a name/email search
func (s *facultyServiceImpl) GetAllFaculty(ctx context.Context, department, search string) ([]*models.Faculty, error) {
	return s.facultyRepo.GetAllFaculty(ctx, strings.TrimSpace(department), strings.TrimSpace(search))
}

// UpdateFaculty applies a partial update to a faculty member
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, id int64, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	if err := s.facultyRepo.UpdateFaculty(ctx, id, req); err != nil {
		return nil, err
	}

	return s.facultyRepo.GetFacultyByID(ctx, id)
}

// DeleteFaculty hard-deletes a faculty member
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrFacultyNotFound
	}
	return s.facultyRepo.DeleteFaculty(ctx, id)
}
