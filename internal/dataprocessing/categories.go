package dataprocessing

import (
	"regexp"

	"studentportfolio/pkg/contracts/domain"
)

// Category specs for the six wide-schema record groups. Patterns match the
// whole lowercased column name; satellite columns are resolved by suffix
// against the same group at decode time.
var (
	subjectSpec = categorySpec{
		name:            "subjects",
		pattern:         regexp.MustCompile(`^(.+)_progress$`),
		satellitesOnKey: true,
		satellites: []satellite{
			{suffix: "_grade", field: "grade"},
			{suffix: "_remarks", field: "remarks"},
		},
	}

	activitySpec = categorySpec{
		name:    "activities",
		pattern: regexp.MustCompile(`^(.+)_activity(\d+)$`),
		ordinal: true,
		satellites: []satellite{
			{suffix: "_date", field: "date"},
			{suffix: "_remarks", field: "remarks"},
		},
	}

	assignmentSpec = categorySpec{
		name:    "assignments",
		pattern: regexp.MustCompile(`^(.+)_assignment(\d+)$`),
		ordinal: true,
		satellites: []satellite{
			{suffix: "_date", field: "date"},
			{suffix: "_status", field: "status"},
		},
	}

	testSpec = categorySpec{
		name:    "tests",
		pattern: regexp.MustCompile(`^(.+)_test(\d+)$`),
		ordinal: true,
		satellites: []satellite{
			{suffix: "_date", field: "date"},
			{suffix: "_max_marks", field: "max_marks"},
			{suffix: "_marks_obtained", field: "marks_obtained"},
			{suffix: "_percentage", field: "percentage"},
			{suffix: "_grade", field: "grade"},
		},
	}

	correctionSpec = categorySpec{
		name:    "corrections",
		pattern: regexp.MustCompile(`^(.+)_correction(\d+)$`),
		ordinal: true,
		satellites: []satellite{
			{suffix: "_date", field: "date"},
			{suffix: "_status", field: "status"},
		},
	}

	attendanceSpec = categorySpec{
		name:            "attendance",
		pattern:         regexp.MustCompile(`^(.+)_working$`),
		satellitesOnKey: true,
		numericGate:     true,
		satellites: []satellite{
			{suffix: "_present", field: "present"},
			{suffix: "_absent", field: "absent"},
			{suffix: "_percentage", field: "percentage"},
		},
	}
)

// DecodeSubjects extracts per-subject progress entries from the matched row.
func DecodeSubjects(s *Sheet, row []string) []domain.SubjectProgress {
	var out []domain.SubjectProgress
	for _, g := range decodeGroups(s, row, subjectSpec) {
		out = append(out, domain.SubjectProgress{
			Subject:  g.Display,
			Progress: g.Primary.Text(),
			Grade:    g.Field("grade").Text(),
			Remarks:  g.Field("remarks").Text(),
		})
	}
	return out
}

// DecodeActivities extracts co-curricular activity entries from the matched row.
func DecodeActivities(s *Sheet, row []string) []domain.Activity {
	var out []domain.Activity
	for _, g := range decodeGroups(s, row, activitySpec) {
		out = append(out, domain.Activity{
			Category: g.Display,
			Name:     g.Primary.Text(),
			Date:     g.Field("date").Text(),
			Remarks:  g.Field("remarks").Text(),
		})
	}
	return out
}

// DecodeAssignments extracts assignment entries from the matched row. Status
// defaults to "pending" when its column is absent or empty.
func DecodeAssignments(s *Sheet, row []string) []domain.Assignment {
	var out []domain.Assignment
	for _, g := range decodeGroups(s, row, assignmentSpec) {
		out = append(out, domain.Assignment{
			Subject: g.Display,
			Name:    g.Primary.Text(),
			Date:    g.Field("date").Text(),
			Status:  g.Field("status").Status(),
		})
	}
	return out
}

// DecodeTests extracts test entries from the matched row. The percentage
// column is used verbatim when it parses; otherwise it is derived from the
// group's own marks columns.
func DecodeTests(s *Sheet, row []string) []domain.Test {
	var out []domain.Test
	for _, g := range decodeGroups(s, row, testSpec) {
		maxMarks := g.Field("max_marks").Int()
		obtained := g.Field("marks_obtained").Int()
		out = append(out, domain.Test{
			Subject:       g.Display,
			Name:          g.Primary.Text(),
			Date:          g.Field("date").Text(),
			MaxMarks:      maxMarks,
			MarksObtained: obtained,
			Percentage:    derivePercent(g.Field("percentage"), float64(obtained), float64(maxMarks)),
			Grade:         g.Field("grade").Text(),
		})
	}
	return out
}

// DecodeCorrections extracts notebook correction entries from the matched row.
func DecodeCorrections(s *Sheet, row []string) []domain.Correction {
	var out []domain.Correction
	for _, g := range decodeGroups(s, row, correctionSpec) {
		out = append(out, domain.Correction{
			Subject: g.Display,
			Work:    g.Primary.Text(),
			Date:    g.Field("date").Text(),
			Status:  g.Field("status").Status(),
		})
	}
	return out
}

// DecodeAttendance extracts monthly attendance entries from the matched row.
// The working-days column is the primary: a month only materializes when it
// parses to a strictly positive integer.
func DecodeAttendance(s *Sheet, row []string) []domain.AttendanceMonth {
	var out []domain.AttendanceMonth
	for _, g := range decodeGroups(s, row, attendanceSpec) {
		working := g.Primary.Int()
		present := g.Field("present").Int()
		out = append(out, domain.AttendanceMonth{
			Month:       g.Display,
			WorkingDays: working,
			Present:     present,
			Absent:      g.Field("absent").Int(),
			Percentage:  derivePercent(g.Field("percentage"), float64(present), float64(working)),
		})
	}
	return out
}

// studentColumns maps Student fields to the column aliases seen across sheet
// revisions; the first alias present in the header wins.
var studentColumns = []struct {
	aliases []string
	assign  func(*domain.Student, string)
}{
	{[]string{"admission_no", "admission_number"}, func(st *domain.Student, v string) { st.AdmissionNo = v }},
	{[]string{"student_name", "name"}, func(st *domain.Student, v string) { st.Name = v }},
	{[]string{"class"}, func(st *domain.Student, v string) { st.Class = v }},
	{[]string{"section"}, func(st *domain.Student, v string) { st.Section = v }},
	{[]string{"roll_no", "roll_number"}, func(st *domain.Student, v string) { st.RollNumber = v }},
	{[]string{"dob", "date_of_birth"}, func(st *domain.Student, v string) { st.DateOfBirth = v }},
	{[]string{"father_name"}, func(st *domain.Student, v string) { st.FatherName = v }},
	{[]string{"mother_name"}, func(st *domain.Student, v string) { st.MotherName = v }},
	{[]string{"contact", "phone", "mobile"}, func(st *domain.Student, v string) { st.Contact = v }},
	{[]string{"email"}, func(st *domain.Student, v string) { st.Email = v }},
	{[]string{"address"}, func(st *domain.Student, v string) { st.Address = v }},
	{[]string{"house"}, func(st *domain.Student, v string) { st.House = v }},
	{[]string{"blood_group"}, func(st *domain.Student, v string) { st.BloodGroup = v }},
	{[]string{"photo_url", "photo"}, func(st *domain.Student, v string) { st.PhotoURL = v }},
	{[]string{"admission_date"}, func(st *domain.Student, v string) { st.AdmissionDate = v }},
}

// DecodeStudent builds the singleton identity record from the Students sheet
// row. Absent columns leave their fields empty.
func DecodeStudent(s *Sheet, row []string) domain.Student {
	var st domain.Student
	for _, c := range studentColumns {
		for _, alias := range c.aliases {
			if col, ok := s.ColumnIndex(alias); ok {
				c.assign(&st, Cell(row, col))
				break
			}
		}
	}
	return st
}
