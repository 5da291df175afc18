package domain

// Student represents the singleton identity record decoded from the
// Students sheet. This is the primary data structure for the portfolio
// document's studentInfo section.
type Student struct {
	AdmissionNo   string `json:"admissionNo" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Class         string `json:"class"`
	Section       string `json:"section"`
	RollNumber    string `json:"rollNumber"`
	DateOfBirth   string `json:"dateOfBirth"`
	FatherName    string `json:"fatherName"`
	MotherName    string `json:"motherName"`
	Contact       string `json:"contact"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	House         string `json:"house"`
	BloodGroup    string `json:"bloodGroup"`
	PhotoURL      string `json:"photoUrl"`
	AdmissionDate string `json:"admissionDate"`
}
