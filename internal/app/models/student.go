package models

import "time"

// Student defines the student model based on the 'students' table.
// Balance is the signed monetary amount owed by the student. It is mutated
// only by fee lifecycle events (fee creation, unpaid fee deletion, payment),
// never directly through create/update payloads.
type Student struct {
	ID        int64         `json:"id" db:"id" example:"7"`
	FirstName string        `json:"firstName" db:"first_name" example:"Aylin"`
	LastName  string        `json:"lastName" db:"last_name" example:"Demir"`
	Email     string        `json:"email" db:"email" example:"aylin.demir@campus.edu"`
	Phone     *string       `json:"phone,omitempty" db:"phone"`
	CourseID  *int64        `json:"courseId,omitempty" db:"course_id"` // Enrolled programme course (nullable)
	Year      int           `json:"year" db:"year" example:"2"`
	Balance   float64       `json:"balance" db:"balance" example:"1200.00"`
	Status    StudentStatus `json:"status" db:"status" example:"active"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
