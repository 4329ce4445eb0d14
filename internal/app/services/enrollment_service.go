package services

import (
	"context"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/repositories"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
)

// EnrollmentService handles enrollment operations
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error)
	GetAllEnrollments(ctx context.Context, studentID, courseID int64) ([]*models.Enrollment, error)
	UpdateEnrollmentStatus(ctx context.Context, id int64, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error)
	DeleteEnrollment(ctx context.Context, id int64) error
}

// enrollmentServiceImpl implements the EnrollmentService interface
type enrollmentServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
	studentRepo    *repositories.StudentRepository
	courseRepo     *repositories.CourseRepository
}

// NewEnrollmentService creates a new enrollment service instance
func NewEnrollmentService(enrollmentRepo *repositories.EnrollmentRepository, studentRepo *repositories.StudentRepository, courseRepo *repositories.CourseRepository) EnrollmentService {
	return &enrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		courseRepo:     courseRepo,
	}
}

// CreateEnrollment enrolls a student in a course. The (student, course) pair
// is unique; a duplicate surfaces as a conflict.
func (s *enrollmentServiceImpl) CreateEnrollment(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	if _, err := s.studentRepo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}
	if _, err := s.courseRepo.GetCourseByID(ctx, req.CourseID); err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	}

	id, err := s.enrollmentRepo.CreateEnrollment(ctx, enrollment)
	if err != nil {
		return nil, err
	}

	return s.enrollmentRepo.GetEnrollmentByID(ctx, id)
}

// GetEnrollmentByID retrieves an enrollment by ID
func (s *enrollmentServiceImpl) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	if id <= 0 {
		return nil, apperrors.ErrEnrollmentNotFound
	}
	return s.enrollmentRepo.GetEnrollmentByID(ctx, id)
}

// GetAllEnrollments lists enrollments, optionally filtered by student or course
func (s *enrollmentServiceImpl) GetAllEnrollments(ctx context.Context, studentID, courseID int64) ([]*models.Enrollment, error) {
	return s.enrollmentRepo.GetAllEnrollments(ctx, studentID, courseID)
}

// UpdateEnrollmentStatus updates the status of an enrollment
func (s *enrollmentServiceImpl) UpdateEnrollmentStatus(ctx context.Context, id int64, req *dto.UpdateEnrollmentRequest) (*models.Enrollment, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	status := models.EnrollmentStatus(req.Status)
	if !models.ValidEnrollmentStatus(status) {
		return nil, apperrors.NewInvalidInputError("invalid enrollment status")
	}

	if err := s.enrollmentRepo.UpdateEnrollmentStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.GetEnrollmentByID(ctx, id)
}

// DeleteEnrollment hard-deletes an enrollment
func (s *enrollmentServiceImpl) DeleteEnrollment(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return s.enrollmentRepo.DeleteEnrollment(ctx, id)
}
