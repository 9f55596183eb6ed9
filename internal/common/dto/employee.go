package dto

// AddEmployeeRequest represents an admin adding a new employee
type AddEmployeeRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	Location         string `json:"location"`
	Designation      string `json:"designation"`
	ExperienceLevel  string `json:"experience_level"`
	Department       string `json:"department"`
	ReportingManager string `json:"reporting_manager"`
	Company          string `json:"company"`
}

// UpdateEmployeeRequest represents an employee profile update.
// Password is optional and rehashed only when provided; WorkingSheet
// replaces the user's sheet assignment list when non-nil.
type UpdateEmployeeRequest struct {
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	Location         string   `json:"location"`
	Designation      string   `json:"designation"`
	ExperienceLevel  string   `json:"experience_level"`
	Department       string   `json:"department"`
	ReportingManager string   `json:"reporting_manager"`
	Company          string   `json:"company"`
	WorkingSheet     []string `json:"working_sheet"`
}
