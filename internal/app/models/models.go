package models

// UserRole defines the role of an authenticated user
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// StudentStatus defines the lifecycle status of a student
type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentGraduated StudentStatus = "graduated"
)

// FeeStatus defines the lifecycle status of a fee. A fee can only move
// pending/overdue -> paid; paid is terminal.
type FeeStatus string

const (
	FeePending FeeStatus = "pending"
	FeeOverdue FeeStatus = "overdue"
	FeePaid    FeeStatus = "paid"
)

// FeeType defines the category of a fee
type FeeType string

const (
	FeeTuition FeeType = "tuition"
	FeeExam    FeeType = "exam"
	FeeLibrary FeeType = "library"
	FeeHostel  FeeType = "hostel"
)

// EnrollmentStatus defines the status of a student-course enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentDropped   EnrollmentStatus = "dropped"
	EnrollmentCompleted EnrollmentStatus = "completed"
)

// AttendanceStatus defines the status of an attendance record
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// ValidFeeType reports whether t is a known fee type.
func ValidFeeType(t FeeType) bool {
	switch t {
	case FeeTuition, FeeExam, FeeLibrary, FeeHostel:
		return true
	}
	return false
}

// ValidStudentStatus reports whether s is a known student status.
func ValidStudentStatus(s StudentStatus) bool {
	switch s {
	case StudentActive, StudentInactive, StudentGraduated:
		return true
	}
	return false
}

// ValidEnrollmentStatus reports whether s is a known enrollment status.
func ValidEnrollmentStatus(s EnrollmentStatus) bool {
	switch s {
	case EnrollmentActive, EnrollmentDropped, EnrollmentCompleted:
		return true
	}
	return false
}

// ValidAttendanceStatus reports whether s is a known attendance status.
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate:
		return true
	}
	return false
}
