package models

import "time"

// Marks defines a marks record based on the 'marks' table, keyed by
// (student, course, semester). TotalMarks and Grade are derived fields,
// written only by the marks service, never taken from caller input.
type Marks struct {
	ID            int64     `json:"id" db:"id" example:"21"`
	StudentID     int64     `json:"studentId" db:"student_id" example:"7"`
	CourseID      int64     `json:"courseId" db:"course_id" example:"3"`
	Semester      int       `json:"semester" db:"semester" example:"4"`
	InternalMarks float64   `json:"internalMarks" db:"internal_marks" example:"42"`
	ExternalMarks float64   `json:"externalMarks" db:"external_marks" example:"78"`
	TotalMarks    float64   `json:"totalMarks" db:"total_marks" example:"120"`
	Grade         string    `json:"grade" db:"grade" example:"B+"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
