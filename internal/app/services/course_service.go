package services

import (
	"context"
	"strings"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/repositories"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context, search string) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo *repositories.CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository) CourseService {
	return &courseServiceImpl{courseRepo: courseRepo}
}

// CreateCourse creates a new course. Codes are stored uppercase.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	course := &models.Course{
		Name:       strings.TrimSpace(req.Name),
		Code:       strings.ToUpper(strings.TrimSpace(req.Code)),
		Department: strings.TrimSpace(req.Department),
		Credits:    req.Credits,
	}

	id, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}

	return s.courseRepo.GetCourseByID(ctx, id)
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, apperrors.ErrCourseNotFound
	}
	return s.courseRepo.GetCourseByID(ctx, id)
}

// GetAllCourses lists courses, optionally filtered by a name or code search
func (s *courseServiceImpl) GetAllCourses(ctx context.Context, search string) ([]*models.Course, error) {
	return s.courseRepo.GetAllCourses(ctx, strings.TrimSpace(search))
}

// UpdateCourse applies a partial update to a course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	if req.Code != nil {
		upper := strings.ToUpper(strings.TrimSpace(*req.Code))
		req.Code = &upper
	}

	if err := s.courseRepo.UpdateCourse(ctx, id, req); err != nil {
		return nil, err
	}

	return s.courseRepo.GetCourseByID(ctx, id)
}

// DeleteCourse hard-deletes a course. Courses with dependent records
// surface a conflict from the repository.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrCourseNotFound
	}
	return s.courseRepo.DeleteCourse(ctx, id)
}
