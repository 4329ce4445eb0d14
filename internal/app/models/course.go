package models

import "time"

// Course defines the course model based on the 'courses' table
type Course struct {
	ID         int64     `json:"id" db:"id" example:"3"`
	Name       string    `json:"name" db:"name" example:"Computer Science"`
	Code       string    `json:"code" db:"code" example:"CS101"`
	Department string    `json:"department" db:"department" example:"Engineering"`
	Credits    int       `json:"credits" db:"credits" example:"4"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
