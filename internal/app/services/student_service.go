package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/repositories"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
	"github.com/kerem/campuscore/internal/pkg/helpers"
)

// StudentService handles student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, filter dto.StudentFilter, page, size int) ([]*models.Student, dto.PaginationInfo, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	courseRepo  *repositories.CourseRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, courseRepo *repositories.CourseRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		courseRepo:  courseRepo,
	}
}

// CreateStudent creates a new student. The balance always starts at zero;
// it is maintained by the fee lifecycle, never set directly.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	if req.CourseID != nil {
		if _, err := s.courseRepo.GetCourseByID(ctx, *req.CourseID); err != nil {
			return nil, err
		}
	}

	status := models.StudentActive
	if req.Status != "" {
		status = models.StudentStatus(req.Status)
	}

	student := &models.Student{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     req.Phone,
		CourseID:  req.CourseID,
		Year:      req.Year,
		Status:    status,
	}

	id, err := s.studentRepo.CreateStudent(ctx, student)
	if err != nil {
		return nil, err
	}

	return s.studentRepo.GetStudentByID(ctx, id)
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, apperrors.ErrStudentNotFound
	}
	return s.studentRepo.GetStudentByID(ctx, id)
}

// GetAllStudents lists students matching the filter with pagination
func (s *studentServiceImpl) GetAllStudents(ctx context.Context, filter dto.StudentFilter, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, err := s.studentRepo.GetAllStudents(ctx, filter, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing students: %w", err)
	}

	total, err := s.studentRepo.CountStudents(ctx, filter)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting students: %w", err)
	}

	return students, helpers.NewPaginationInfo(total, page, size), nil
}

// UpdateStudent applies a partial update to a student. Balance is not an
// updatable field.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	if req.CourseID != nil {
		if _, err := s.courseRepo.GetCourseByID(ctx, *req.CourseID); err != nil {
			return nil, err
		}
	}

	if err := s.studentRepo.UpdateStudent(ctx, id, req); err != nil {
		return nil, err
	}

	return s.studentRepo.GetStudentByID(ctx, id)
}

// DeleteStudent hard-deletes a student
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrStudentNotFound
	}
	return s.studentRepo.DeleteStudent(ctx, id)
}
