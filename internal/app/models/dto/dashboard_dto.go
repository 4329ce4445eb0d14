package dto

import "time"

// DashboardReport is the point-in-time statistical snapshot served by the
// dashboard endpoint. All sub-aggregates tolerate empty input and report
// zero values rather than failing.
type DashboardReport struct {
	Overview        OverviewCounts    `json:"overview"`
	Distributions   Distributions     `json:"distributions"`
	EnrollmentStats EnrollmentStats   `json:"enrollmentStats"`
	RecentActivity  RecentActivity    `json:"recentActivity"`
	FeeStats        FeeStats          `json:"feeStats"`
	AttendanceStats AttendanceStats   `json:"attendanceStats"`
	Performance     PerformanceStats  `json:"performance"`
	GeneratedAt     time.Time         `json:"generatedAt"`
}

// OverviewCounts carries the headline entity counts.
type OverviewCounts struct {
	ActiveStudents int64 `json:"activeStudents" example:"120"`
	TotalCourses   int64 `json:"totalCourses" example:"14"`
	TotalFaculty   int64 `json:"totalFaculty" example:"23"`
	PendingFees    int64 `json:"pendingFees" example:"31"`
	OverdueFees    int64 `json:"overdueFees" example:"6"`
}

// GroupCount is a (label, count) pair for distribution breakdowns.
type GroupCount struct {
	Label string `json:"label" example:"Computer Science"`
	Count int64  `json:"count" example:"40"`
}

// Distributions carries grouped entity counts.
type Distributions struct {
	StudentsByCourse    []GroupCount `json:"studentsByCourse"`
	StudentsByYear      []GroupCount `json:"studentsByYear"`
	StudentsByStatus    []GroupCount `json:"studentsByStatus"`
	FacultyByDepartment []GroupCount `json:"facultyByDepartment"`
}

// EnrollmentStats carries enrollment totals and the completion rate.
type EnrollmentStats struct {
	Total          int64 `json:"total" example:"210"`
	Active         int64 `json:"active" example:"180"`
	CompletionRate int   `json:"completionRate" example:"86"`
}

// RecentEnrollment is an enrollment joined with display names.
type RecentEnrollment struct {
	ID          int64     `json:"id"`
	StudentName string    `json:"studentName" example:"Aylin Demir"`
	CourseName  string    `json:"courseName" example:"Computer Science"`
	Status      string    `json:"status" example:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RecentPayment is a paid fee joined with the student's display name.
type RecentPayment struct {
	FeeID       int64     `json:"feeId"`
	StudentName string    `json:"studentName" example:"Aylin Demir"`
	Amount      float64   `json:"amount" example:"500.00"`
	Type        string    `json:"type" example:"tuition"`
	PaidDate    time.Time `json:"paidDate"`
}

// RecentActivity carries the latest enrollments and payments, newest first.
type RecentActivity struct {
	Enrollments []RecentEnrollment `json:"enrollments"`
	Payments    []RecentPayment    `json:"payments"`
}

// MonthlyTotal is a paid-amount total for one calendar month.
type MonthlyTotal struct {
	Month string  `json:"month" example:"2026-08"`
	Total float64 `json:"total" example:"12500.00"`
}

// TypeAmount is an amount total for one fee type.
type TypeAmount struct {
	Type   string  `json:"type" example:"tuition"`
	Amount float64 `json:"amount" example:"3200.00"`
}

// FeeStats carries monetary aggregates across fees.
type FeeStats struct {
	TotalPaid     float64        `json:"totalPaid" example:"45250.00"`
	TotalPending  float64        `json:"totalPending" example:"10400.00"`
	MonthlyPaid   []MonthlyTotal `json:"monthlyPaid"`
	OverdueByType []TypeAmount   `json:"overdueByType"`
}

// AttendanceStats carries attendance totals and the overall percentage.
type AttendanceStats struct {
	TotalRecords      int64 `json:"totalRecords" example:"900"`
	PresentRecords    int64 `json:"presentRecords" example:"810"`
	OverallPercentage int   `json:"overallPercentage" example:"90"`
}

// CoursePerformance is the average total marks for one course.
type CoursePerformance struct {
	CourseName string  `json:"courseName" example:"Computer Science"`
	Average    float64 `json:"average" example:"132.5"`
}

// PerformanceStats carries per-course mark averages and the top courses by
// average, descending.
type PerformanceStats struct {
	CourseAverages []CoursePerformance `json:"courseAverages"`
	TopCourses     []CoursePerformance `json:"topCourses"`
}
