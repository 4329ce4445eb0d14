package dto

import "time"

// CreateAttendanceRequest is the attendance record creation payload
type CreateAttendanceRequest struct {
	StudentID int64     `json:"studentId" binding:"required,min=1" example:"7"`
	CourseID  int64     `json:"courseId" binding:"required,min=1" example:"3"`
	Date      time.Time `json:"date" binding:"required"`
	Session   string    `json:"session" binding:"required" example:"morning"`
	Status    string    `json:"status" binding:"required,oneof=present absent late" example:"present"`
}

// UpdateAttendanceRequest updates the status of an attendance record
type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=present absent late" example:"late"`
}

// AttendanceFilter carries list filters for attendance records
type AttendanceFilter struct {
	StudentID int64
	CourseID  int64
	From      *time.Time
	To        *time.Time
}
