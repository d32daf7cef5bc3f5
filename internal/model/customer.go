package model

// Sex is customer sex as stored in the roster file
type Sex string

const (
	// SexMale means customer registered as male
	SexMale Sex = "Male"
	// SexFemale means customer registered as female
	SexFemale Sex = "Female"
	// SexOther means customer registered as other
	SexOther Sex = "Other"
)

// DateLayout is the date of birth format used in the roster file
const DateLayout = "2006-01-02"

// Customer is customer model entity. JSON keys are pinned to the legacy
// roster file format, including the historical lowercase "credit" key.
type Customer struct {
	Name   string `json:"Name"`
	Sex    Sex    `json:"Sex"`
	Age    int    `json:"Age"`
	DOB    string `json:"DOB"`
	Credit string `json:"credit"`
	Email  string `json:"Email"`
	Phone  string `json:"Phone"`
}
