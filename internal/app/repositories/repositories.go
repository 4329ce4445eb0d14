package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	FacultyRepository    *FacultyRepository
	FeeRepository        *FeeRepository
	EnrollmentRepository *EnrollmentRepository
	AttendanceRepository *AttendanceRepository
	MarksRepository      *MarksRepository
	DashboardRepository  *DashboardRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		FeeRepository:        NewFeeRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		MarksRepository:      NewMarksRepository(db),
		DashboardRepository:  NewDashboardRepository(db),
	}
}
