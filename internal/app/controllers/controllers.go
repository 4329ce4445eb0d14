package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	Auth       *AuthController
	Student    *StudentController
	Course     *CourseController
	Faculty    *FacultyController
	Fee        *FeeController
	Enrollment *EnrollmentController
	Attendance *AttendanceController
	Marks      *MarksController
	Dashboard  *DashboardController
}

// NewControllers initializes all controllers on top of the service set
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(svcs.Auth),
		Student:    NewStudentController(svcs.Student),
		Course:     NewCourseController(svcs.Course),
		Faculty:    NewFacultyController(svcs.Faculty),
		Fee:        NewFeeController(svcs.Fee),
		Enrollment: NewEnrollmentController(svcs.Enrollment),
		Attendance: NewAttendanceController(svcs.Attendance),
		Marks:      NewMarksController(svcs.Marks),
		Dashboard:  NewDashboardController(svcs.Dashboard),
	}
}

// parseIDParam parses the :id path parameter. On failure it writes a 400
// response and returns false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Invalid "+name+" ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// parseQueryInt64 parses an optional int64 query parameter, returning 0 when absent
func parseQueryInt64(ctx *gin.Context, name string) int64 {
	v, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseQueryInt parses an optional int query parameter, returning 0 when absent
func parseQueryInt(ctx *gin.Context, name string) int {
	v, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return v
}
