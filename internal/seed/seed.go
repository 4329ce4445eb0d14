package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/campuscore/internal/app/models"
	"github.com/kerem/campuscore/internal/app/repositories"
	"github.com/kerem/campuscore/internal/config"
	"github.com/kerem/campuscore/internal/pkg/apperrors"
	"github.com/kerem/campuscore/internal/pkg/auth"
	"github.com/kerem/campuscore/internal/pkg/logger"
)

// CreateDefaultData seeds the default admin account and a small demo
// dataset. Every step is create-if-not-exists, so running it repeatedly
// is safe.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	repos := repositories.NewRepositories(dbPool)

	var errs error

	if err := createAdminUser(ctx, repos.UserRepository, cfg); err != nil {
		errs = errors.Join(errs, err)
	}

	courseIDs, err := createDemoCourses(ctx, repos.CourseRepository)
	if err != nil {
		errs = errors.Join(errs, err)
	}

	if err := createDemoFaculty(ctx, repos.FacultyRepository); err != nil {
		errs = errors.Join(errs, err)
	}

	if err := createDemoStudents(ctx, repos, courseIDs); err != nil {
		errs = errors.Join(errs, err)
	}

	return errs
}

// createAdminUser creates the default administrator from config.
func createAdminUser(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		logger.Warn().Msg("Seed admin credentials not configured, skipping admin creation")
		return nil
	}

	if _, err := userRepo.GetUserByEmail(ctx, cfg.Seed.AdminEmail); err == nil {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:     cfg.Seed.AdminEmail,
		Password:  hashed,
		FirstName: "System",
		LastName:  "Administrator",
		Role:      models.RoleAdmin,
		IsActive:  true,
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info().Str("email", cfg.Seed.AdminEmail).Msg("Default admin user created")
	return nil
}

// createDemoCourses creates demo courses and returns their IDs keyed by code.
func createDemoCourses(ctx context.Context, courseRepo *repositories.CourseRepository) (map[string]int64, error) {
	demo := []models.Course{
		{Name: "Computer Science", Code: "CS101", Department: "Engineering", Credits: 4},
		{Name: "Business Administration", Code: "BA201", Department: "Business", Credits: 3},
		{Name: "Applied Mathematics", Code: "MA150", Department: "Science", Credits: 4},
	}

	ids := make(map[string]int64, len(demo))

	existing, err := courseRepo.GetAllCourses(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list courses for seeding: %w", err)
	}
	for _, c := range existing {
		ids[c.Code] = c.ID
	}

	var errs error
	for i := range demo {
		course := demo[i]
		if _, ok := ids[course.Code]; ok {
			continue
		}

		id, err := courseRepo.CreateCourse(ctx, &course)
		if err != nil {
			if errors.Is(err, repositories.ErrCourseAlreadyExists) {
				continue
			}
			errs = errors.Join(errs, fmt.Errorf("failed to create course %s: %w", course.Code, err))
			continue
		}
		ids[course.Code] = id
	}

	if errs == nil && len(existing) == 0 {
		logger.Info().Int("count", len(demo)).Msg("Demo courses created")
	}
	return ids, errs
}

// createDemoFaculty creates a few demo faculty members.
func createDemoFaculty(ctx context.Context, facultyRepo *repositories.FacultyRepository) error {
	demo := []models.Faculty{
		{FirstName: "Mehmet", LastName: "Kaya", Email: "mehmet.kaya@campus.edu", Department: "Mathematics", Designation: "Professor"},
		{FirstName: "Elif", LastName: "Yilmaz", Email: "elif.yilmaz@campus.edu", Department: "Engineering", Designation: "Associate Professor"},
	}

	var errs error
	for i := range demo {
		member := demo[i]
		if _, err := facultyRepo.CreateFaculty(ctx, &member); err != nil {
			if errors.Is(err, repositories.ErrFacultyEmailExists) {
				continue
			}
			errs = errors.Join(errs, fmt.Errorf("failed to create faculty %s: %w", member.Email, err))
		}
	}
	return errs
}

// createDemoStudents creates demo students and, for students created in this
// run only, a pending fee each. Fees have no natural key, so seeding them
// for pre-existing students would duplicate rows and inflate balances.
func createDemoStudents(ctx context.Context, repos *repositories.Repositories, courseIDs map[string]int64) error {
	type demoStudent struct {
		student    models.Student
		courseCode string
		feeAmount  float64
		feeType    models.FeeType
	}

	demo := []demoStudent{
		{
			student:    models.Student{FirstName: "Aylin", LastName: "Demir", Email: "aylin.demir@campus.edu", Year: 2, Status: models.StudentActive},
			courseCode: "CS101",
			feeAmount:  500.00,
			feeType:    models.FeeTuition,
		},
		{
			student:    models.Student{FirstName: "Burak", LastName: "Aksoy", Email: "burak.aksoy@campus.edu", Year: 1, Status: models.StudentActive},
			courseCode: "BA201",
			feeAmount:  350.00,
			feeType:    models.FeeHostel,
		},
	}

	var errs error
	for i := range demo {
		entry := demo[i]
		if id, ok := courseIDs[entry.courseCode]; ok {
			entry.student.CourseID = &id
		}

		studentID, err := repos.StudentRepository.CreateStudent(ctx, &entry.student)
		if err != nil {
			if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
				continue
			}
			errs = errors.Join(errs, fmt.Errorf("failed to create student %s: %w", entry.student.Email, err))
			continue
		}

		fee := &models.Fee{
			StudentID: studentID,
			Amount:    entry.feeAmount,
			Type:      entry.feeType,
			Status:    models.FeePending,
			DueDate:   time.Now().AddDate(0, 1, 0),
		}
		if _, err := repos.FeeRepository.CreateFee(ctx, fee); err != nil {
			errs = errors.Join(errs, fmt.Errorf("failed to create fee for student %s: %w", entry.student.Email, err))
		}
	}
	return errs
}
