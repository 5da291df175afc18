package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"studentportfolio/internal/config"
	"studentportfolio/internal/dataprocessing"
	"studentportfolio/internal/sheets"
	"studentportfolio/pkg/contracts/domain"
)

// PortfolioService assembles per-student portfolio documents from the sheet
// source. It holds no per-request state; every call works on fresh Sheet
// snapshots, so concurrent requests need no locking.
type PortfolioService struct {
	source       sheets.Source
	keyColumn    string
	recentTests  int
	fetchTimeout time.Duration
	logger       *slog.Logger
}

// NewPortfolioService creates a portfolio service over the given source.
func NewPortfolioService(source sheets.Source, cfg config.SourceConfig, logger *slog.Logger) *PortfolioService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PortfolioService{
		source:       source,
		keyColumn:    cfg.KeyColumn,
		recentTests:  cfg.RecentTests,
		fetchTimeout: cfg.FetchTimeout,
		logger:       logger.With(slog.String("component", "portfolio_service")),
	}
}

// GetPortfolio fetches every category tab, locates the student's row in each
// and assembles the full document. Only the Students tab is load-bearing: a
// category tab that cannot be fetched, or has no row for the student,
// degrades to an empty collection.
func (s *PortfolioService) GetPortfolio(ctx context.Context, admissionNo string) (*domain.Portfolio, error) {
	fetched, err := s.fetchAll(ctx, sheets.Categories)
	if err != nil {
		return nil, err
	}

	students := fetched[sheets.CategoryStudents]
	if students == nil {
		return nil, fmt.Errorf("%w: students tab unavailable", ErrSheetFetch)
	}
	studentRow, ok := students.Locate(s.keyColumn, admissionNo)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, admissionNo)
	}

	student := dataprocessing.DecodeStudent(students, studentRow)
	if student.AdmissionNo == "" {
		student.AdmissionNo = admissionNo
	}

	// Each category decodes against its own tab's matched row.
	row := func(cat sheets.Category) (*dataprocessing.Sheet, []string) {
		sheet := fetched[cat]
		if sheet == nil {
			return nil, nil
		}
		r, ok := sheet.Locate(s.keyColumn, admissionNo)
		if !ok {
			return nil, nil
		}
		return sheet, r
	}

	var (
		subjects    []domain.SubjectProgress
		activities  []domain.Activity
		assignments []domain.Assignment
		tests       []domain.Test
		corrections []domain.Correction
		attendance  []domain.AttendanceMonth
	)
	if sheet, r := row(sheets.CategorySubjects); sheet != nil {
		subjects = dataprocessing.DecodeSubjects(sheet, r)
	}
	if sheet, r := row(sheets.CategoryActivities); sheet != nil {
		activities = dataprocessing.DecodeActivities(sheet, r)
	}
	if sheet, r := row(sheets.CategoryAssignments); sheet != nil {
		assignments = dataprocessing.DecodeAssignments(sheet, r)
	}
	if sheet, r := row(sheets.CategoryTests); sheet != nil {
		tests = dataprocessing.DecodeTests(sheet, r)
	}
	if sheet, r := row(sheets.CategoryCorrections); sheet != nil {
		corrections = dataprocessing.DecodeCorrections(sheet, r)
	}
	if sheet, r := row(sheets.CategoryAttendance); sheet != nil {
		attendance = dataprocessing.DecodeAttendance(sheet, r)
	}

	s.logger.InfoContext(ctx, "portfolio assembled",
		slog.String("admission_no", admissionNo),
		slog.Int("subjects", len(subjects)),
		slog.Int("tests", len(tests)),
		slog.Int("attendance_months", len(attendance)))

	return &domain.Portfolio{
		StudentInfo: student,
		Subjects:    nonNil(subjects),
		Activities:  nonNil(activities),
		Assignments: nonNil(assignments),
		Tests:       nonNil(tests),
		RecentTests: nonNil(dataprocessing.SelectRecentTests(tests, s.recentTests)),
		Corrections: nonNil(corrections),
		Attendance:  nonNil(attendance),
		Summary:     dataprocessing.Summarize(assignments, attendance, subjects),
	}, nil
}

// GetRecentTests fetches only the tabs the recent-tests view needs. The
// student must still exist in the Students tab; an unknown admission number
// is NotFound, not an empty list.
func (s *PortfolioService) GetRecentTests(ctx context.Context, admissionNo string) ([]domain.TestSummary, error) {
	fetched, err := s.fetchAll(ctx, []sheets.Category{sheets.CategoryStudents, sheets.CategoryTests})
	if err != nil {
		return nil, err
	}

	students := fetched[sheets.CategoryStudents]
	if students == nil {
		return nil, fmt.Errorf("%w: students tab unavailable", ErrSheetFetch)
	}
	if _, ok := students.Locate(s.keyColumn, admissionNo); !ok {
		return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, admissionNo)
	}

	var tests []domain.Test
	if sheet := fetched[sheets.CategoryTests]; sheet != nil {
		if r, ok := sheet.Locate(s.keyColumn, admissionNo); ok {
			tests = dataprocessing.DecodeTests(sheet, r)
		}
	}
	return nonNil(dataprocessing.SelectRecentTests(tests, s.recentTests)), nil
}

// fetchAll fetches the given tabs concurrently. A failed Students fetch
// fails the whole request; any other tab logs a warning and stays nil.
func (s *PortfolioService) fetchAll(ctx context.Context, categories []sheets.Category) (map[sheets.Category]*dataprocessing.Sheet, error) {
	if s.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fetchTimeout)
		defer cancel()
	}

	results := make([]*dataprocessing.Sheet, len(categories))
	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range categories {
		g.Go(func() error {
			sheet, err := s.source.Fetch(gctx, cat)
			if err != nil {
				if cat == sheets.CategoryStudents {
					return fmt.Errorf("%w: %v", ErrSheetFetch, err)
				}
				s.logger.WarnContext(gctx, "category tab unavailable",
					slog.String("category", string(cat)),
					slog.String("error", err.Error()))
				return nil
			}
			results[i] = sheet
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fetched := make(map[sheets.Category]*dataprocessing.Sheet, len(categories))
	for i, cat := range categories {
		fetched[cat] = results[i]
	}
	return fetched, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
