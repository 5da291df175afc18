package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studentportfolio/pkg/contracts/domain"
)

func TestDecodeTestsMinimalGroup(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "math_test1", "math_test1_max_marks", "math_test1_marks_obtained"},
		{"10234", "Unit Test", "50", "45"},
	})
	row, ok := s.Locate("admission_no", "10234")
	require.True(t, ok)

	tests := DecodeTests(s, row)
	require.Len(t, tests, 1)
	assert.Equal(t, domain.Test{
		Subject:       "Math",
		Name:          "Unit Test",
		MaxMarks:      50,
		MarksObtained: 45,
		Percentage:    90,
		Grade:         "",
	}, tests[0])
}

func TestDecodeTestsEmptyPrimarySkipsGroup(t *testing.T) {
	// No ghost records: an empty primary cell never yields an entity, even
	// when its satellites carry values.
	s := NewSheet([][]string{
		{"admission_no", "math_test1", "math_test1_max_marks", "science_test1"},
		{"10234", "", "50", "Quiz"},
	})
	row, _ := s.Locate("admission_no", "10234")

	tests := DecodeTests(s, row)
	require.Len(t, tests, 1)
	assert.Equal(t, "Science", tests[0].Subject)
}

func TestDecodeTestsNonNumericMarksDefaultToZero(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "math_test1", "math_test1_max_marks", "math_test1_marks_obtained", "math_test1_grade"},
		{"10234", "Unit Test", "fifty", "45", "A"},
	})
	row, _ := s.Locate("admission_no", "10234")

	tests := DecodeTests(s, row)
	require.Len(t, tests, 1)
	// The malformed cell degrades to 0; the rest of the group still decodes.
	assert.Equal(t, 0, tests[0].MaxMarks)
	assert.Equal(t, 45, tests[0].MarksObtained)
	assert.Equal(t, "A", tests[0].Grade)
	// Derivation has no positive denominator, so percentage is 0.
	assert.Zero(t, tests[0].Percentage)
}

func TestDecodeTestsPercentageVerbatimVersusDerived(t *testing.T) {
	withColumn := NewSheet([][]string{
		{"admission_no", "math_test1", "math_test1_max_marks", "math_test1_marks_obtained", "math_test1_percentage"},
		{"10234", "Unit Test", "50", "45", "90"},
	})
	withoutColumn := NewSheet([][]string{
		{"admission_no", "math_test1", "math_test1_max_marks", "math_test1_marks_obtained"},
		{"10234", "Unit Test", "50", "45"},
	})

	rowA, _ := withColumn.Locate("admission_no", "10234")
	rowB, _ := withoutColumn.Locate("admission_no", "10234")

	a := DecodeTests(withColumn, rowA)
	b := DecodeTests(withoutColumn, rowB)
	require.Len(t, a, 1)
	require.Len(t, b, 1)
	// A consistent percentage column and the derived fallback agree.
	assert.Equal(t, a[0].Percentage, b[0].Percentage)
}

func TestDecodeTestsPercentageColumnWinsWhenPresent(t *testing.T) {
	// Verbatim rule: a parseable percentage is never recomputed, even when it
	// disagrees with the marks columns.
	s := NewSheet([][]string{
		{"admission_no", "math_test1", "math_test1_max_marks", "math_test1_marks_obtained", "math_test1_percentage"},
		{"10234", "Unit Test", "50", "45", "85.5"},
	})
	row, _ := s.Locate("admission_no", "10234")

	tests := DecodeTests(s, row)
	require.Len(t, tests, 1)
	assert.Equal(t, 85.5, tests[0].Percentage)
}

func TestDecodeTestsMultipleOrdinalsPreserveHeaderOrder(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "math_test2", "math_test1", "science_test1"},
		{"10234", "Half Yearly", "Unit Test", "Quiz"},
	})
	row, _ := s.Locate("admission_no", "10234")

	tests := DecodeTests(s, row)
	require.Len(t, tests, 3)
	assert.Equal(t, "Half Yearly", tests[0].Name)
	assert.Equal(t, "Unit Test", tests[1].Name)
	assert.Equal(t, "Quiz", tests[2].Name)
}

func TestDecodeTestsSatelliteLookupCaseInsensitive(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "Math_Test1", "MATH_TEST1_MAX_MARKS", "math_test1_marks_obtained"},
		{"10234", "Unit Test", "50", "40"},
	})
	row, _ := s.Locate("admission_no", "10234")

	tests := DecodeTests(s, row)
	require.Len(t, tests, 1)
	assert.Equal(t, 50, tests[0].MaxMarks)
	assert.Equal(t, 80.0, tests[0].Percentage)
}

func TestDecodeAttendance(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "april_working", "april_present"},
		{"10234", "20", "18"},
	})
	row, _ := s.Locate("admission_no", "10234")

	months := DecodeAttendance(s, row)
	require.Len(t, months, 1)
	assert.Equal(t, domain.AttendanceMonth{
		Month:       "April",
		WorkingDays: 20,
		Present:     18,
		Absent:      0,
		Percentage:  90,
	}, months[0])
}

func TestDecodeAttendanceGatesOnWorkingDays(t *testing.T) {
	cases := []struct {
		name    string
		working string
	}{
		{"zero working days", "0"},
		{"negative working days", "-5"},
		{"unparsable working days", "n/a"},
		{"empty working days", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSheet([][]string{
				{"admission_no", "april_working", "april_present"},
				{"10234", tc.working, "18"},
			})
			row, _ := s.Locate("admission_no", "10234")
			assert.Empty(t, DecodeAttendance(s, row))
		})
	}
}

func TestDecodeAssignmentsStatusDefaultsToPending(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "math_assignment1", "math_assignment2", "math_assignment2_status"},
		{"10234", "Worksheet 3", "Worksheet 4", "Complete"},
	})
	row, _ := s.Locate("admission_no", "10234")

	assignments := DecodeAssignments(s, row)
	require.Len(t, assignments, 2)
	assert.Equal(t, "pending", assignments[0].Status)
	// Status text is lowercased on decode.
	assert.Equal(t, "complete", assignments[1].Status)
}

func TestDecodeSubjects(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "math_progress", "math_grade", "social_science_progress"},
		{"10234", "On Track", "A", "Needs Attention"},
	})
	row, _ := s.Locate("admission_no", "10234")

	subjects := DecodeSubjects(s, row)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Math", subjects[0].Subject)
	assert.Equal(t, "On Track", subjects[0].Progress)
	assert.Equal(t, "A", subjects[0].Grade)
	// Multi-word keys render capitalized per word.
	assert.Equal(t, "Social Science", subjects[1].Subject)
	assert.Empty(t, subjects[1].Grade)
}

func TestDecodeActivities(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "sports_activity1", "sports_activity1_date", "music_activity1"},
		{"10234", "Annual Sports Day", "12-11-2025", ""},
	})
	row, _ := s.Locate("admission_no", "10234")

	activities := DecodeActivities(s, row)
	require.Len(t, activities, 1)
	assert.Equal(t, "Sports", activities[0].Category)
	assert.Equal(t, "Annual Sports Day", activities[0].Name)
	assert.Equal(t, "12-11-2025", activities[0].Date)
}

func TestDecodeCorrections(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "english_correction1", "english_correction1_date", "english_correction1_status"},
		{"10234", "Essay rewrite", "03-07-2025", "complete"},
	})
	row, _ := s.Locate("admission_no", "10234")

	corrections := DecodeCorrections(s, row)
	require.Len(t, corrections, 1)
	assert.Equal(t, "English", corrections[0].Subject)
	assert.Equal(t, "Essay rewrite", corrections[0].Work)
	assert.Equal(t, "complete", corrections[0].Status)
}

func TestDecodeStudent(t *testing.T) {
	s := NewSheet([][]string{
		{"admission_no", "student_name", "class", "section", "roll_no", "dob"},
		{"10234", "Asha Verma", "7", "B", "14", "21-08-2013"},
	})
	row, _ := s.Locate("admission_no", "10234")

	st := DecodeStudent(s, row)
	assert.Equal(t, "10234", st.AdmissionNo)
	assert.Equal(t, "Asha Verma", st.Name)
	assert.Equal(t, "7", st.Class)
	assert.Equal(t, "B", st.Section)
	assert.Equal(t, "14", st.RollNumber)
	assert.Equal(t, "21-08-2013", st.DateOfBirth)
	// Columns absent from the header leave their fields empty.
	assert.Empty(t, st.Email)
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"math":           "Math",
		"april":          "April",
		"social_science": "Social Science",
		"MATH":           "Math",
	}
	for in, want := range cases {
		assert.Equal(t, want, displayName(in), "displayName(%q)", in)
	}
}
