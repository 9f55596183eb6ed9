package dto

// SheetRequest represents sheet creation and update payloads
type SheetRequest struct {
	SheetName  string `json:"sheet_name"`
	SheetLink  string `json:"sheet_link"`
	Department string `json:"department"`
	PCName     string `json:"pc_name"`
	SheetOwner string `json:"sheet_owner"`
}

// DepartmentRequest represents department creation and update payloads
type DepartmentRequest struct {
	DepartmentName string `json:"department_name"`
	DepartmentHOD  string `json:"department_hod"`
	UserID         string `json:"userId"`
}
