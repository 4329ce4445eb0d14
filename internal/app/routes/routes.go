package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/campuscore/internal/app/controllers"
	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/refresh", ctrl.Auth.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", ctrl.Auth.Logout)
		authenticated.GET("/auth/me", ctrl.Auth.Me)

		// Account creation is restricted to administrators
		adminOnly := authenticated.Group("")
		adminOnly.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminOnly.POST("/auth/register", ctrl.Auth.Register)
		}

		students := authenticated.Group("/students")
		{
			students.POST("", ctrl.Student.CreateStudent)
			students.GET("", ctrl.Student.GetAllStudents)
			students.GET("/:id", ctrl.Student.GetStudentByID)
			students.PUT("/:id", ctrl.Student.UpdateStudent)
			students.DELETE("/:id", ctrl.Student.DeleteStudent)
		}

		courses := authenticated.Group("/courses")
		{
			courses.POST("", ctrl.Course.CreateCourse)
			courses.GET("", ctrl.Course.GetAllCourses)
			courses.GET("/:id", ctrl.Course.GetCourseByID)
			courses.PUT("/:id", ctrl.Course.UpdateCourse)
			courses.DELETE("/:id", ctrl.Course.DeleteCourse)
		}

		faculty := authenticated.Group("/faculty")
		{
			faculty.POST("", ctrl.Faculty.CreateFaculty)
			faculty.GET("", ctrl.Faculty.GetAllFaculty)
			faculty.GET("/:id", ctrl.Faculty.GetFacultyByID)
			faculty.PUT("/:id", ctrl.Faculty.UpdateFaculty)
			faculty.DELETE("/:id", ctrl.Faculty.DeleteFaculty)
		}

		fees := authenticated.Group("/fees")
		{
			fees.POST("", ctrl.Fee.CreateFee)
			fees.GET("", ctrl.Fee.GetAllFees)
			fees.GET("/:id", ctrl.Fee.GetFeeByID)
			fees.PUT("/:id", ctrl.Fee.UpdateFee)
			fees.DELETE("/:id", ctrl.Fee.DeleteFee)
			fees.POST("/:id/payments", ctrl.Fee.RecordPayment)
		}

		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.POST("", ctrl.Enrollment.CreateEnrollment)
			enrollments.GET("", ctrl.Enrollment.GetAllEnrollments)
			enrollments.GET("/:id", ctrl.Enrollment.GetEnrollmentByID)
			enrollments.PUT("/:id", ctrl.Enrollment.UpdateEnrollmentStatus)
			enrollments.DELETE("/:id", ctrl.Enrollment.DeleteEnrollment)
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.POST("", ctrl.Attendance.CreateAttendance)
			attendance.GET("", ctrl.Attendance.GetAllAttendance)
			attendance.GET("/:id", ctrl.Attendance.GetAttendanceByID)
			attendance.PUT("/:id", ctrl.Attendance.UpdateAttendanceStatus)
			attendance.DELETE("/:id", ctrl.Attendance.DeleteAttendance)
		}

		marks := authenticated.Group("/marks")
		{
			marks.POST("", ctrl.Marks.CreateMarks)
			marks.GET("", ctrl.Marks.GetAllMarks)
			marks.GET("/:id", ctrl.Marks.GetMarksByID)
			marks.PUT("/:id", ctrl.Marks.UpdateMarks)
			marks.DELETE("/:id", ctrl.Marks.DeleteMarks)
		}

		authenticated.GET("/dashboard", ctrl.Dashboard.GetDashboard)
	}
}
