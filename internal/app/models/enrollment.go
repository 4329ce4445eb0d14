package models

import "time"

// Enrollment links a student to a course, based on the 'enrollments' table.
// At most one enrollment may exist per (student, course) pair, enforced by a
// unique constraint.
type Enrollment struct {
	ID        int64            `json:"id" db:"id" example:"11"`
	StudentID int64            `json:"studentId" db:"student_id" example:"7"`
	CourseID  int64            `json:"courseId" db:"course_id" example:"3"`
	Status    EnrollmentStatus `json:"status" db:"status" example:"active"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time        `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
