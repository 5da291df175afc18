// Package sheets supplies the raw tabular payloads the decoder works on.
// Two sources exist: the live Google Sheets spreadsheet and a local .xlsx
// snapshot of it. Both hand back the same Sheet shape, so everything past
// this boundary is source-agnostic.
package sheets

import (
	"context"

	"studentportfolio/internal/dataprocessing"
)

// Category names one tab of the source spreadsheet. Tab names double as
// category identifiers throughout the service.
type Category string

const (
	CategoryStudents    Category = "Students"
	CategorySubjects    Category = "Subjects"
	CategoryActivities  Category = "Activities"
	CategoryAssignments Category = "Assignments"
	CategoryTests       Category = "Tests"
	CategoryCorrections Category = "Corrections"
	CategoryAttendance  Category = "Attendance"
)

// Categories lists every tab a portfolio request reads, in document order.
var Categories = []Category{
	CategoryStudents,
	CategorySubjects,
	CategoryActivities,
	CategoryAssignments,
	CategoryTests,
	CategoryCorrections,
	CategoryAttendance,
}

// Source fetches one category tab as a Sheet snapshot. Implementations must
// be safe for concurrent use; a portfolio request fetches all tabs at once.
type Source interface {
	Fetch(ctx context.Context, category Category) (*dataprocessing.Sheet, error)
}
