package dataprocessing

import (
	"fmt"
	"sort"
	"time"

	"studentportfolio/pkg/contracts/domain"
)

// testDateLayout is the canonical sheet date format, day first. Dates are
// never reinterpreted as yyyy-mm-dd regardless of separators.
const testDateLayout = "02-01-2006"

// Summarize computes the aggregate statistics over the decoded collections.
// Assignments with a status other than "complete" or "pending" are counted in
// neither bucket. Zero attendance months yield "0.0%", never NaN.
func Summarize(assignments []domain.Assignment, attendance []domain.AttendanceMonth, subjects []domain.SubjectProgress) domain.Summary {
	s := domain.Summary{TotalSubjects: len(subjects)}
	for _, a := range assignments {
		switch a.Status {
		case domain.AssignmentComplete:
			s.CompletedAssignments++
		case domain.AssignmentPending:
			s.PendingAssignments++
		}
	}
	var pct float64
	if len(attendance) > 0 {
		var sum float64
		for _, m := range attendance {
			sum += m.Percentage
		}
		pct = sum / float64(len(attendance))
	}
	s.OverallAttendance = fmt.Sprintf("%.1f%%", pct)
	return s
}

// SelectRecentTests returns the n most recent tests as display projections,
// sorted by calendar date descending. The sort is stable, so tests sharing a
// date keep their decode (header) order. Unparsable dates sort last.
func SelectRecentTests(tests []domain.Test, n int) []domain.TestSummary {
	sorted := make([]domain.Test, len(tests))
	copy(sorted, tests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return parseTestDate(sorted[i].Date).After(parseTestDate(sorted[j].Date))
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]domain.TestSummary, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, domain.TestSummary{
			Subject:    t.Subject,
			Name:       t.Name,
			Date:       t.Date,
			Marks:      fmt.Sprintf("%d/%d", t.MarksObtained, t.MaxMarks),
			Percentage: t.Percentage,
			Grade:      t.Grade,
		})
	}
	return out
}

func parseTestDate(s string) time.Time {
	t, err := time.Parse(testDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
