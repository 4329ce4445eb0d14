package dto

// CreateFacultyRequest is the faculty member creation payload
type CreateFacultyRequest struct {
	FirstName   string `json:"firstName" binding:"required" example:"Mehmet"`
	LastName    string `json:"lastName" binding:"required" example:"Kaya"`
	Email       string `json:"email" binding:"required,email" example:"mehmet.kaya@campus.edu"`
	Department  string `json:"department" binding:"required" example:"Mathematics"`
	Designation string `json:"designation" binding:"required" example:"Professor"`
}

// UpdateFacultyRequest is the partial faculty member update payload
type UpdateFacultyRequest struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
}
