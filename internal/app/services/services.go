package services

import (
	"github.com/kerem/campuscore/internal/app/repositories"
	"github.com/kerem/campuscore/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	Auth       AuthService
	Student    StudentService
	Course     CourseService
	Faculty    FacultyService
	Fee        FeeService
	Enrollment EnrollmentService
	Attendance AttendanceService
	Marks      MarksService
	Dashboard  DashboardService
}

// NewServices initializes all services on top of the repository set
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		Student:    NewStudentService(repos.StudentRepository, repos.CourseRepository),
		Course:     NewCourseService(repos.CourseRepository),
		Faculty:    NewFacultyService(repos.FacultyRepository),
		Fee:        NewFeeService(repos.FeeRepository, repos.StudentRepository),
		Enrollment: NewEnrollmentService(repos.EnrollmentRepository, repos.StudentRepository, repos.CourseRepository),
		Attendance: NewAttendanceService(repos.AttendanceRepository),
		Marks:      NewMarksService(repos.MarksRepository),
		Dashboard:  NewDashboardService(repos.DashboardRepository),
	}
}
