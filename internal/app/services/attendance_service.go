package services

import (
	"context"
	"strings"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/repositories"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
	"github.com/kerem/campuscore/internal/pkg/helpers"
)

// AttendanceService handles attendance record operations
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*models.Attendance, error)
	GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error)
	GetAllAttendance(ctx context.Context, filter dto.AttendanceFilter, page, size int) ([]*models.Attendance, error)
	UpdateAttendanceStatus(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.Attendance, error)
	DeleteAttendance(ctx context.Context, id int64) error
}

// attendanceServiceImpl implements the AttendanceService interface
type attendanceServiceImpl struct {
	attendanceRepo *repositories.AttendanceRepository
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo *repositories.AttendanceRepository) AttendanceService {
	return &attendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// CreateAttendance records attendance for a student in a course session
func (s *attendanceServiceImpl) CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*models.Attendance, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	status := models.AttendanceStatus(req.Status)
	if !models.ValidAttendanceStatus(status) {
		return nil, apperrors.NewInvalidInputError("invalid attendance status")
	}

	record := &models.Attendance{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Date:      req.Date,
		Session:   strings.TrimSpace(req.Session),
		Status:    status,
	}

	id, err := s.attendanceRepo.CreateAttendance(ctx, record)
	if err != nil {
		return nil, err
	}

	return s.attendanceRepo.GetAttendanceByID(ctx, id)
}

// GetAttendanceByID retrieves an attendance record by ID
func (s *attendanceServiceImpl) GetAttendanceByID(ctx context.Context, id int64) (*models.Attendance, error) {
	if id <= 0 {
		return nil, apperrors.ErrAttendanceNotFound
	}
	return s.attendanceRepo.GetAttendanceByID(ctx, id)
}

// GetAllAttendance lists attendance records matching the filter
func (s *attendanceServiceImpl) GetAllAttendance(ctx context.Context, filter dto.AttendanceFilter, page, size int) ([]*models.Attendance, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.attendanceRepo.GetAllAttendance(ctx, filter, offset, limit)
}

// UpdateAttendanceStatus updates the status of an attendance record
func (s *attendanceServiceImpl) UpdateAttendanceStatus(ctx context.Context, id int64, req *dto.UpdateAttendanceRequest) (*models.Attendance, error) {
	if req == nil {
		return nil, apperrors.NewInvalidInputError("request body is required")
	}

	status := models.AttendanceStatus(req.Status)
	if !models.ValidAttendanceStatus(status) {
		return nil, apperrors.NewInvalidInputError("invalid attendance status")
	}

	if err := s.attendanceRepo.UpdateAttendanceStatus(ctx, id, status); err != nil {
		return nil, err
	}

	return s.attendanceRepo.GetAttendanceByID(ctx, id)
}

// DeleteAttendance hard-deletes an attendance record
func (s *attendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrAttendanceNotFound
	}
	return s.attendanceRepo.DeleteAttendance(ctx, id)
}
