package models

import "time"

// Attendance defines an attendance record based on the 'attendance' table.
// Records are keyed by (student, course, date, session); no uniqueness is
// enforced on the tuple.
type Attendance struct {
	ID        int64            `json:"id" db:"id" example:"42"`
	StudentID int64            `json:"studentId" db:"student_id" example:"7"`
	CourseID  int64            `json:"courseId" db:"course_id" example:"3"`
	Date      time.Time        `json:"date" db:"date"`
	Session   string           `json:"session" db:"session" example:"morning"`
	Status    AttendanceStatus `json:"status" db:"status" example:"present"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}
