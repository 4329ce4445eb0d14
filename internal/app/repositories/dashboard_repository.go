package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/models/dto"
	"github.com/kerem/campuscore/internal/pkg/logger"
)

// DashboardRepository runs the read-only aggregate queries behind the
// dashboard report. Every query tolerates empty tables and returns zero
// values or empty slices.
type DashboardRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDashboardRepository creates a new DashboardRepository
func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *DashboardRepository) countRows(ctx context.Context, table string, pred interface{}, args ...interface{}) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From(table)
	if pred != nil {
		builder = builder.Where(pred, args...)
	}

	sql, sqlArgs, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, sqlArgs...).Scan(&count); err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error executing count query")
		return 0, fmt.Errorf("error counting rows in %s: %w", table, err)
	}

	return count, nil
}

// GetOverviewCounts returns the headline entity counts. Pending and overdue
// fee counts apply the same due-date boundary as fee listing: a pending fee
// past its due date is reported as overdue.
func (r *DashboardRepository) GetOverviewCounts(ctx context.Context, now time.Time) (dto.OverviewCounts, error) {
	var counts dto.OverviewCounts
	var err error

	if counts.ActiveStudents, err = r.countRows(ctx, "students", squirrel.Eq{"status": models.StudentActive}); err != nil {
		return dto.OverviewCounts{}, err
	}
	if counts.TotalCourses, err = r.countRows(ctx, "courses", nil); err != nil {
		return dto.OverviewCounts{}, err
	}
	if counts.TotalFaculty, err = r.countRows(ctx, "faculty", nil); err != nil {
		return dto.OverviewCounts{}, err
	}
	if counts.PendingFees, err = r.countRows(ctx, "fees",
		squirrel.And{squirrel.Eq{"status": models.FeePending}, squirrel.GtOrEq{"due_date": now}}); err != nil {
		return dto.OverviewCounts{}, err
	}
	if counts.OverdueFees, err = r.countRows(ctx, "fees",
		squirrel.Or{
			squirrel.Eq{"status": models.FeeOverdue},
			squirrel.And{squirrel.Eq{"status": models.FeePending}, squirrel.Lt{"due_date": now}},
		}); err != nil {
		return dto.OverviewCounts{}, err
	}

	return counts, nil
}

func (r *DashboardRepository) queryGroupCounts(ctx context.Context, builder squirrel.SelectBuilder) ([]dto.GroupCount, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build group count query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing group count query")
		return nil, fmt.Errorf("error querying group counts: %w", err)
	}
	defer rows.Close()

	groups := []dto.GroupCount{}
	for rows.Next() {
		var g dto.GroupCount
		if err := rows.Scan(&g.Label, &g.Count); err != nil {
			return nil, fmt.Errorf("error scanning group count row: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group count rows: %w", err)
	}

	return groups, nil
}

// GetStudentCountsByCourse groups students by their course name. Students
// without an assigned course are excluded.
func (r *DashboardRepository) GetStudentCountsByCourse(ctx context.Context) ([]dto.GroupCount, error) {
	return r.queryGroupCounts(ctx, r.sb.Select("c.name", "COUNT(*)").
		From("students s").
		Join("courses c ON c.id = s.course_id").
		GroupBy("c.name").
		OrderBy("COUNT(*) DESC, c.name ASC"))
}

// GetStudentCountsByYear groups students by study year
func (r *DashboardRepository) GetStudentCountsByYear(ctx context.Context) ([]dto.GroupCount, error) {
	return r.queryGroupCounts(ctx, r.sb.Select("year::text", "COUNT(*)").
		From("students").
		GroupBy("year").
		OrderBy("year ASC"))
}

// GetStudentCountsByStatus groups students by status
func (r *DashboardRepository) GetStudentCountsByStatus(ctx context.Context) ([]dto.GroupCount, error) {
	return r.queryGroupCounts(ctx, r.sb.Select("status", "COUNT(*)").
		From("students").
		GroupBy("status").
		OrderBy("status ASC"))
}

// GetFacultyCountsByDepartment groups faculty members by department
func (r *DashboardRepository) GetFacultyCountsByDepartment(ctx context.Context) ([]dto.GroupCount, error) {
	return r.queryGroupCounts(ctx, r.sb.Select("department", "COUNT(*)").
		From("faculty").
		GroupBy("department").
		OrderBy("COUNT(*) DESC, department ASC"))
}

// GetEnrollmentTotals returns the total and active enrollment counts
func (r *DashboardRepository) GetEnrollmentTotals(ctx context.Context) (total, active int64, err error) {
	sql, args, err := r.sb.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'active')",
	).From("enrollments").ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build enrollment totals query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total, &active); err != nil {
		logger.Error().Err(err).Msg("Error executing enrollment totals query")
		return 0, 0, fmt.Errorf("error querying enrollment totals: %w", err)
	}

	return total, active, nil
}

// GetRecentEnrollments returns the latest enrollments joined with student
// and course display names, newest first.
func (r *DashboardRepository) GetRecentEnrollments(ctx context.Context, limit uint64) ([]dto.RecentEnrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id",
		"s.first_name || ' ' || s.last_name",
		"c.name",
		"e.status",
		"e.created_at",
	).
		From("enrollments e").
		Join("students s ON s.id = e.student_id").
		Join("courses c ON c.id = e.course_id").
		OrderBy("e.created_at DESC, e.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent enrollments query")
		return nil, fmt.Errorf("error querying recent enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []dto.RecentEnrollment{}
	for rows.Next() {
		var e dto.RecentEnrollment
		if err := rows.Scan(&e.ID, &e.StudentName, &e.CourseName, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning recent enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent enrollment rows: %w", err)
	}

	return enrollments, nil
}

// GetRecentPayments returns the latest paid fees joined with student display
// names, newest first.
func (r *DashboardRepository) GetRecentPayments(ctx context.Context, limit uint64) ([]dto.RecentPayment, error) {
	sql, args, err := r.sb.Select(
		"f.id",
		"s.first_name || ' ' || s.last_name",
		"f.amount",
		"f.type",
		"f.paid_date",
	).
		From("fees f").
		Join("students s ON s.id = f.student_id").
		Where(squirrel.Eq{"f.status": models.FeePaid}).
		OrderBy("f.paid_date DESC, f.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent payments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing recent payments query")
		return nil, fmt.Errorf("error querying recent payments: %w", err)
	}
	defer rows.Close()

	payments := []dto.RecentPayment{}
	for rows.Next() {
		var p dto.RecentPayment
		if err := rows.Scan(&p.FeeID, &p.StudentName, &p.Amount, &p.Type, &p.PaidDate); err != nil {
			return nil, fmt.Errorf("error scanning recent payment row: %w", err)
		}
		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent payment rows: %w", err)
	}

	return payments, nil
}

// GetFeeTotals returns the collected (paid) and outstanding (unpaid) amount
// sums across all fees.
func (r *DashboardRepository) GetFeeTotals(ctx context.Context) (totalPaid, totalPending float64, err error) {
	sql, args, err := r.sb.Select(
		"COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)",
		"COALESCE(SUM(amount) FILTER (WHERE status <> 'paid'), 0)",
	).From("fees").ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build fee totals query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&totalPaid, &totalPending); err != nil {
		logger.Error().Err(err).Msg("Error executing fee totals query")
		return 0, 0, fmt.Errorf("error querying fee totals: %w", err)
	}

	return totalPaid, totalPending, nil
}

// GetMonthlyPaidTotals returns paid-amount totals per calendar month for the
// trailing window that ends at the month containing now. Months with no
// payments are absent from the result.
func (r *DashboardRepository) GetMonthlyPaidTotals(ctx context.Context, now time.Time, months int) ([]dto.MonthlyTotal, error) {
	sql, args, err := r.sb.Select(
		"to_char(date_trunc('month', paid_date), 'YYYY-MM')",
		"COALESCE(SUM(amount), 0)",
	).
		From("fees").
		Where(squirrel.Eq{"status": models.FeePaid}).
		Where(squirrel.Expr("paid_date >= date_trunc('month', ?::timestamptz) - make_interval(months => ?)", now, months-1)).
		GroupBy("1").
		OrderBy("1 ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build monthly paid totals query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing monthly paid totals query")
		return nil, fmt.Errorf("error querying monthly paid totals: %w", err)
	}
	defer rows.Close()

	totals := []dto.MonthlyTotal{}
	for rows.Next() {
		var t dto.MonthlyTotal
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, fmt.Errorf("error scanning monthly total row: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", err)
	}

	return totals, nil
}

// GetOverdueAmountsByType returns outstanding overdue amounts grouped by fee
// type, applying the same due-date boundary as fee listing.
func (r *DashboardRepository) GetOverdueAmountsByType(ctx context.Context, now time.Time) ([]dto.TypeAmount, error) {
	sql, args, err := r.sb.Select("type", "COALESCE(SUM(amount), 0)").
		From("fees").
		Where(squirrel.Or{
			squirrel.Eq{"status": models.FeeOverdue},
			squirrel.And{squirrel.Eq{"status": models.FeePending}, squirrel.Lt{"due_date": now}},
		}).
		GroupBy("type").
		OrderBy("type ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build overdue amounts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing overdue amounts query")
		return nil, fmt.Errorf("error querying overdue amounts: %w", err)
	}
	defer rows.Close()

	amounts := []dto.TypeAmount{}
	for rows.Next() {
		var a dto.TypeAmount
		if err := rows.Scan(&a.Type, &a.Amount); err != nil {
			return nil, fmt.Errorf("error scanning overdue amount row: %w", err)
		}
		amounts = append(amounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating overdue amount rows: %w", err)
	}

	return amounts, nil
}

// GetAttendanceTotals returns the total and present attendance record counts
func (r *DashboardRepository) GetAttendanceTotals(ctx context.Context) (total, present int64, err error) {
	sql, args, err := r.sb.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'present')",
	).From("attendance").ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build attendance totals query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total, &present); err != nil {
		logger.Error().Err(err).Msg("Error executing attendance totals query")
		return 0, 0, fmt.Errorf("error querying attendance totals: %w", err)
	}

	return total, present, nil
}

// GetCourseAverages returns the average total marks per course, highest
// first. Only courses with at least one graded record count; zero totals are
// treated as ungraded placeholders and skipped.
func (r *DashboardRepository) GetCourseAverages(ctx context.Context) ([]dto.CoursePerformance, error) {
	sql, args, err := r.sb.Select(
		"c.name",
		"ROUND(AVG(m.total_marks)::numeric, 2)",
	).
		From("marks m").
		Join("courses c ON c.id = m.course_id").
		Where(squirrel.Gt{"m.total_marks": 0}).
		GroupBy("c.name").
		OrderBy("AVG(m.total_marks) DESC, c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course averages query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course averages query")
		return nil, fmt.Errorf("error querying course averages: %w", err)
	}
	defer rows.Close()

	averages := []dto.CoursePerformance{}
	for rows.Next() {
		var p dto.CoursePerformance
		if err := rows.Scan(&p.CourseName, &p.Average); err != nil {
			return nil, fmt.Errorf("error scanning course average row: %w", err)
		}
		averages = append(averages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course average rows: %w", err)
	}

	return averages, nil
}
