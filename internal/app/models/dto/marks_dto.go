package dto

// CreateMarksRequest is the marks record creation payload. Total and grade
// are derived server-side and never accepted from the caller.
type CreateMarksRequest struct {
	StudentID     int64   `json:"studentId" binding:"required,min=1" example:"7"`
	CourseID      int64   `json:"courseId" binding:"required,min=1" example:"3"`
	Semester      int     `json:"semester" binding:"required,min=1,max=12" example:"4"`
	InternalMarks float64 `json:"internalMarks" binding:"min=0,max=100" example:"42"`
	ExternalMarks float64 `json:"externalMarks" binding:"min=0,max=100" example:"78"`
}

// UpdateMarksRequest is the partial marks update payload
type UpdateMarksRequest struct {
	InternalMarks *float64 `json:"internalMarks,omitempty" binding:"omitempty,min=0,max=100"`
	ExternalMarks *float64 `json:"externalMarks,omitempty" binding:"omitempty,min=0,max=100"`
}
