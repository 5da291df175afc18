package domain

// SubjectProgress represents one subject's current progress entry from the
// Subjects sheet. One entry exists per subject column group present in the
// matched row.
type SubjectProgress struct {
	Subject  string `json:"subject" validate:"required"`
	Progress string `json:"progress"`
	Grade    string `json:"grade"`
	Remarks  string `json:"remarks"`
}

// Activity represents one co-curricular activity entry decoded from the
// Activities sheet.
type Activity struct {
	Category string `json:"category" validate:"required"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Remarks  string `json:"remarks"`
}

// AssignmentStatus values are lowercased free text from the sheet; only
// "complete" and "pending" participate in summary counting.
const (
	AssignmentComplete = "complete"
	AssignmentPending  = "pending"
)

// Assignment represents one homework/assignment entry decoded from the
// Assignments sheet.
type Assignment struct {
	Subject string `json:"subject" validate:"required"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// Test represents one test/exam entry decoded from the Tests sheet.
// Percentage is taken verbatim from the sheet when present, otherwise
// derived from MarksObtained/MaxMarks.
type Test struct {
	Subject       string  `json:"subject" validate:"required"`
	Name          string  `json:"name"`
	Date          string  `json:"date"`
	MaxMarks      int     `json:"maxMarks" validate:"min=0"`
	MarksObtained int     `json:"marksObtained" validate:"min=0"`
	Percentage    float64 `json:"percentage" validate:"min=0"`
	Grade         string  `json:"grade"`
}

// Correction represents one notebook correction entry decoded from the
// Corrections sheet.
type Correction struct {
	Subject string `json:"subject" validate:"required"`
	Work    string `json:"work"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// AttendanceMonth represents one month's attendance decoded from the
// Attendance sheet. A month only materializes when its working-days column
// parses to a positive integer.
type AttendanceMonth struct {
	Month       string  `json:"month" validate:"required"`
	WorkingDays int     `json:"workingDays" validate:"min=1"`
	Present     int     `json:"present" validate:"min=0"`
	Absent      int     `json:"absent" validate:"min=0"`
	Percentage  float64 `json:"percentage" validate:"min=0"`
}

// TestSummary is the display-oriented projection of a Test used by the
// recent-tests view: marks are pre-rendered as "obtained/max".
type TestSummary struct {
	Subject    string  `json:"subject"`
	Name       string  `json:"name"`
	Date       string  `json:"date"`
	Marks      string  `json:"marks"`
	Percentage float64 `json:"percentage"`
	Grade      string  `json:"grade"`
}

// Summary holds the aggregate statistics computed over the decoded
// collections.
type Summary struct {
	TotalSubjects         int    `json:"totalSubjects"`
	CompletedAssignments  int    `json:"completedAssignments"`
	PendingAssignments    int    `json:"pendingAssignments"`
	OverallAttendance     string `json:"overallAttendance"`
}
