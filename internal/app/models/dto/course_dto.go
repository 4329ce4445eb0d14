package dto

// CreateCourseRequest is the course creation payload
type CreateCourseRequest struct {
	Name       string `json:"name" binding:"required" example:"Computer Science"`
	Code       string `json:"code" binding:"required" example:"CS101"`
	Department string `json:"department" binding:"required" example:"Engineering"`
	Credits    int    `json:"credits" binding:"required,min=1,max=30" example:"4"`
}

// UpdateCourseRequest is the partial course update payload
type UpdateCourseRequest struct {
	Name       *string `json:"name,omitempty"`
	Code       *string `json:"code,omitempty"`
	Department *string `json:"department,omitempty"`
	Credits    *int    `json:"credits,omitempty" binding:"omitempty,min=1,max=30"`
}
