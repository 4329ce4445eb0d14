package dto

// CreateEnrollmentRequest is the enrollment creation payload
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"studentId" binding:"required,min=1" example:"7"`
	CourseID  int64 `json:"courseId" binding:"required,min=1" example:"3"`
}

// UpdateEnrollmentRequest updates the status of an enrollment
type UpdateEnrollmentRequest struct {
	Status string `json:"status" binding:"required,oneof=active dropped completed" example:"completed"`
}
