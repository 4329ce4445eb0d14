package services

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
	"github.com/kerem/campuscore/internal/pkg/logger"
)

const (
	recentActivityLimit = 10
	monthlyWindowMonths = 6
	topCoursesLimit     = 5
)

// dashboardStore is the aggregate query surface the service depends on
type dashboardStore interface {
	GetOverviewCounts(ctx context.Context, now time.Time) (dto.OverviewCounts, error)
	GetStudentCountsByCourse(ctx context.Context) ([]dto.GroupCount, error)
	GetStudentCountsByYear(ctx context.Context) ([]dto.GroupCount, error)
	GetStudentCountsByStatus(ctx context.Context) ([]dto.GroupCount, error)
	GetFacultyCountsByDepartment(ctx context.Context) ([]dto.GroupCount, error)
	GetEnrollmentTotals(ctx context.Context) (total, active int64, err error)
	GetRecentEnrollments(ctx context.Context, limit uint64) ([]dto.RecentEnrollment, error)
	GetRecentPayments(ctx context.Context, limit uint64) ([]dto.RecentPayment, error)
	GetFeeTotals(ctx context.Context) (totalPaid, totalPending float64, err error)
	GetMonthlyPaidTotals(ctx context.Context, now time.Time, months int) ([]dto.MonthlyTotal, error)
	GetOverdueAmountsByType(ctx context.Context, now time.Time) ([]dto.TypeAmount, error)
	GetAttendanceTotals(ctx context.Context) (total, present int64, err error)
	GetCourseAverages(ctx context.Context) ([]dto.CoursePerformance, error)
}

// DashboardService computes the institutional statistics report
type DashboardService interface {
	ComputeDashboard(ctx context.Context) (*dto.DashboardReport, error)
}

// dashboardServiceImpl implements the DashboardService interface
type dashboardServiceImpl struct {
	repo dashboardStore
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(repo dashboardStore) DashboardService {
	return &dashboardServiceImpl{repo: repo}
}

// roundRate converts a part/total pair into a whole percentage. A zero total
// yields 0 rather than NaN.
func roundRate(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// ComputeDashboard builds the full report from scratch on every call. The
// sub-aggregates run concurrently; any single failure aborts the whole
// computation and surfaces as one aggregation error, with the cause logged
// server-side only.
func (s *dashboardServiceImpl) ComputeDashboard(ctx context.Context) (*dto.DashboardReport, error) {
	now := time.Now()
	report := &dto.DashboardReport{GeneratedAt: now}

	var (
		enrollTotal, enrollActive int64
		attTotal, attPresent      int64
		courseAverages            []dto.CoursePerformance
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		report.Overview, err = s.repo.GetOverviewCounts(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		report.Distributions.StudentsByCourse, err = s.repo.GetStudentCountsByCourse(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.Distributions.StudentsByYear, err = s.repo.GetStudentCountsByYear(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.Distributions.StudentsByStatus, err = s.repo.GetStudentCountsByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.Distributions.FacultyByDepartment, err = s.repo.GetFacultyCountsByDepartment(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		enrollTotal, enrollActive, err = s.repo.GetEnrollmentTotals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.RecentActivity.Enrollments, err = s.repo.GetRecentEnrollments(gctx, recentActivityLimit)
		return err
	})
	g.Go(func() error {
		var err error
		report.RecentActivity.Payments, err = s.repo.GetRecentPayments(gctx, recentActivityLimit)
		return err
	})
	g.Go(func() error {
		var err error
		report.FeeStats.TotalPaid, report.FeeStats.TotalPending, err = s.repo.GetFeeTotals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		report.FeeStats.MonthlyPaid, err = s.repo.GetMonthlyPaidTotals(gctx, now, monthlyWindowMonths)
		return err
	})
	g.Go(func() error {
		var err error
		report.FeeStats.OverdueByType, err = s.repo.GetOverdueAmountsByType(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		attTotal, attPresent, err = s.repo.GetAttendanceTotals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		courseAverages, err = s.repo.GetCourseAverages(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("Error computing dashboard report")
		return nil, apperrors.NewCustomError(apperrors.ErrAggregationFailed, "failed to compute dashboard report")
	}

	report.EnrollmentStats = dto.EnrollmentStats{
		Total:          enrollTotal,
		Active:         enrollActive,
		CompletionRate: roundRate(enrollActive, enrollTotal),
	}
	report.AttendanceStats = dto.AttendanceStats{
		TotalRecords:      attTotal,
		PresentRecords:    attPresent,
		OverallPercentage: roundRate(attPresent, attTotal),
	}

	// Averages arrive sorted highest first
	top := courseAverages
	if len(top) > topCoursesLimit {
		top = top[:topCoursesLimit]
	}
	report.Performance = dto.PerformanceStats{
		CourseAverages: courseAverages,
		TopCourses:     top,
	}

	return report, nil
}
