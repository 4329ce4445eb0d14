package dto

// CreateStudentRequest is the student creation payload. Balance is not
// accepted from the caller; it is maintained by the fee lifecycle.
type CreateStudentRequest struct {
	FirstName string  `json:"firstName" binding:"required" example:"Aylin"`
	LastName  string  `json:"lastName" binding:"required" example:"Demir"`
	Email     string  `json:"email" binding:"required,email" example:"aylin.demir@campus.edu"`
	Phone     *string `json:"phone,omitempty"`
	CourseID  *int64  `json:"courseId,omitempty" example:"3"`
	Year      int     `json:"year" binding:"required,min=1,max=8" example:"2"`
	Status    string  `json:"status,omitempty" binding:"omitempty,oneof=active inactive graduated" example:"active"`
}

// UpdateStudentRequest is the partial student update payload
type UpdateStudentRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	CourseID  *int64  `json:"courseId,omitempty"`
	Year      *int    `json:"year,omitempty" binding:"omitempty,min=1,max=8"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive graduated"`
}

// StudentFilter carries list filters for students
type StudentFilter struct {
	Search   string // substring match on name or email
	CourseID int64
	Year     int
	Status   string
}
