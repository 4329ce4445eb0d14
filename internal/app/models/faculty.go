package models

import "time"

// Faculty defines a faculty member based on the 'faculty' table
type Faculty struct {
	ID          int64     `json:"id" db:"id" example:"2"`
	FirstName   string    `json:"firstName" db:"first_name" example:"Mehmet"`
	LastName    string    `json:"lastName" db:"last_name" example:"Kaya"`
	Email       string    `json:"email" db:"email" example:"mehmet.kaya@campus.edu"`
	Department  string    `json:"department" db:"department" example:"Mathematics"`
	Designation string    `json:"designation" db:"designation" example:"Professor"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
