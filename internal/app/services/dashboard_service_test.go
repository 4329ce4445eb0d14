package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
	"github.com/kerem/campuscore/internal/pkg/helpers"
)

// fakeDashboardStore is a hand-written dashboardStore double. Any field set
// in errs makes the matching query fail.
type fakeDashboardStore struct {
	overview        dto.OverviewCounts
	byCourse        []dto.GroupCount
	byYear          []dto.GroupCount
	byStatus        []dto.GroupCount
	byDepartment    []dto.GroupCount
	enrollTotal     int64
	enrollActive    int64
	enrollments     []dto.RecentEnrollment
	payments        []dto.RecentPayment
	totalPaid       float64
	totalPending    float64
	monthly         []dto.MonthlyTotal
	overdueByType   []dto.TypeAmount
	attTotal        int64
	attPresent      int64
	courseAverages  []dto.CoursePerformance
	errs            map[string]error
}

func (f *fakeDashboardStore) err(key string) error {
	if f.errs == nil {
		return nil
	}
	return f.errs[key]
}

func (f *fakeDashboardStore) GetOverviewCounts(ctx context.Context, now time.Time) (dto.OverviewCounts, error) {
	return f.overview, f.err("overview")
}

func (f *fakeDashboardStore) GetStudentCountsByCourse(ctx context.Context) ([]dto.GroupCount, error) {
	return f.byCourse, f.err("byCourse")
}

func (f *fakeDashboardStore) GetStudentCountsByYear(ctx context.Context) ([]dto.GroupCount, error) {
	return f.byYear, f.err("byYear")
}

func (f *fakeDashboardStore) GetStudentCountsByStatus(ctx context.Context) ([]dto.GroupCount, error) {
	return f.byStatus, f.err("byStatus")
}

func (f *fakeDashboardStore) GetFacultyCountsByDepartment(ctx context.Context) ([]dto.GroupCount, error) {
	return f.byDepartment, f.err("byDepartment")
}

func (f *fakeDashboardStore) GetEnrollmentTotals(ctx context.Context) (int64, int64, error) {
	return f.enrollTotal, f.enrollActive, f.err("enrollTotals")
}

func (f *fakeDashboardStore) GetRecentEnrollments(ctx context.Context, limit uint64) ([]dto.RecentEnrollment, error) {
	return f.enrollments, f.err("recentEnrollments")
}

func (f *fakeDashboardStore) GetRecentPayments(ctx context.Context, limit uint64) ([]dto.RecentPayment, error) {
	return f.payments, f.err("recentPayments")
}

func (f *fakeDashboardStore) GetFeeTotals(ctx context.Context) (float64, float64, error) {
	return f.totalPaid, f.totalPending, f.err("feeTotals")
}

func (f *fakeDashboardStore) GetMonthlyPaidTotals(ctx context.Context, now time.Time, months int) ([]dto.MonthlyTotal, error) {
	return f.monthly, f.err("monthly")
}

func (f *fakeDashboardStore) GetOverdueAmountsByType(ctx context.Context, now time.Time) ([]dto.TypeAmount, error) {
	return f.overdueByType, f.err("overdueByType")
}

func (f *fakeDashboardStore) GetAttendanceTotals(ctx context.Context) (int64, int64, error) {
	return f.attTotal, f.attPresent, f.err("attendanceTotals")
}

func (f *fakeDashboardStore) GetCourseAverages(ctx context.Context) ([]dto.CoursePerformance, error) {
	return f.courseAverages, f.err("courseAverages")
}

func TestComputeDashboard_PopulatedDataset(t *testing.T) {
	store := &fakeDashboardStore{
		overview:     dto.OverviewCounts{ActiveStudents: 120, TotalCourses: 14, TotalFaculty: 23, PendingFees: 31, OverdueFees: 6},
		byCourse:     []dto.GroupCount{{Label: "Computer Science", Count: 40}},
		enrollTotal:  210,
		enrollActive: 180,
		totalPaid:    45250.00,
		totalPending: 10400.00,
		monthly: []dto.MonthlyTotal{
			{Month: helpers.MonthKey(time.Now().AddDate(0, -1, 0)), Total: 12100.00},
			{Month: helpers.MonthKey(time.Now()), Total: 9300.00},
		},
		attTotal:     900,
		attPresent:   810,
		courseAverages: []dto.CoursePerformance{
			{CourseName: "Computer Science", Average: 152.3},
			{CourseName: "Mathematics", Average: 140.1},
		},
	}
	svc := NewDashboardService(store)

	report, err := svc.ComputeDashboard(context.Background())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, int64(120), report.Overview.ActiveStudents)
	assert.Equal(t, int64(210), report.EnrollmentStats.Total)
	assert.Equal(t, int64(180), report.EnrollmentStats.Active)
	assert.Equal(t, 86, report.EnrollmentStats.CompletionRate) // round(180/210*100)
	assert.Equal(t, 90, report.AttendanceStats.OverallPercentage)
	assert.InDelta(t, 45250.00, report.FeeStats.TotalPaid, 0.001)
	require.Len(t, report.FeeStats.MonthlyPaid, 2)
	assert.Equal(t, helpers.MonthKey(time.Now()), report.FeeStats.MonthlyPaid[1].Month)
	assert.Len(t, report.Performance.TopCourses, 2)
	assert.False(t, report.GeneratedAt.IsZero())
}

// An empty institution must produce a zero-valued report, never NaN or a
// division error.
func TestComputeDashboard_EmptyDataset(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardStore{})

	report, err := svc.ComputeDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.EnrollmentStats.CompletionRate)
	assert.Equal(t, 0, report.AttendanceStats.OverallPercentage)
	assert.Zero(t, report.FeeStats.TotalPaid)
	assert.Empty(t, report.Performance.TopCourses)
}

func TestComputeDashboard_TopCoursesTruncation(t *testing.T) {
	store := &fakeDashboardStore{
		courseAverages: []dto.CoursePerformance{
			{CourseName: "A", Average: 180},
			{CourseName: "B", Average: 170},
			{CourseName: "C", Average: 160},
			{CourseName: "D", Average: 150},
			{CourseName: "E", Average: 140},
			{CourseName: "F", Average: 130},
			{CourseName: "G", Average: 120},
		},
	}
	svc := NewDashboardService(store)

	report, err := svc.ComputeDashboard(context.Background())
	require.NoError(t, err)

	assert.Len(t, report.Performance.CourseAverages, 7)
	require.Len(t, report.Performance.TopCourses, 5)
	assert.Equal(t, "A", report.Performance.TopCourses[0].CourseName)
	assert.Equal(t, "E", report.Performance.TopCourses[4].CourseName)
}

// Any failing sub-query collapses the whole computation into a single
// aggregation error; the underlying cause is not surfaced to the caller.
func TestComputeDashboard_SubQueryFailure(t *testing.T) {
	for _, key := range []string{"overview", "feeTotals", "courseAverages", "recentPayments"} {
		t.Run(key, func(t *testing.T) {
			store := &fakeDashboardStore{
				errs: map[string]error{key: errors.New("pq: relation does not exist")},
			}
			svc := NewDashboardService(store)

			report, err := svc.ComputeDashboard(context.Background())
			assert.Nil(t, report)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrAggregationFailed)
			assert.NotContains(t, err.Error(), "pq:")
		})
	}
}

func TestRoundRate(t *testing.T) {
	assert.Equal(t, 0, roundRate(0, 0))
	assert.Equal(t, 0, roundRate(5, 0))
	assert.Equal(t, 100, roundRate(10, 10))
	assert.Equal(t, 50, roundRate(1, 2))
	assert.Equal(t, 86, roundRate(180, 210))
	assert.Equal(t, 33, roundRate(1, 3))
	assert.Equal(t, 67, roundRate(2, 3))
}
