package domain

// Portfolio is the complete per-student document assembled from all decoded
// category collections. It is constructed fresh per request and never
// mutated after assembly.
type Portfolio struct {
	StudentInfo Student           `json:"studentInfo"`
	Subjects    []SubjectProgress `json:"subjects"`
	Activities  []Activity        `json:"activities"`
	Assignments []Assignment      `json:"assignments"`
	Tests       []Test            `json:"tests"`
	RecentTests []TestSummary     `json:"recentTests"`
	Corrections []Correction      `json:"corrections"`
	Attendance  []AttendanceMonth `json:"attendance"`
	Summary     Summary           `json:"summary"`
}
