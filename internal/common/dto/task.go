package dto

// CreateTaskRequest represents a task creation payload. AssignedTo is a
// username; it is resolved to a user ID before the row is stored.
type CreateTaskRequest struct {
	TaskName          string `json:"task_name"`
	AssignedTo        string `json:"assigned_to"`
	DueTime           string `json:"due_time"`
	TaskDescription   string `json:"task_description"`
	ReviewStatus      string `json:"review_status"`
	TaskStatus        string `json:"task_status"`
	AdditionalComment string `json:"additional_comment"`
	TaskType          string `json:"task_type"`
	TaskFrequency     string `json:"task_frequency"`
}

// UpdateTaskRequest represents a task update payload
type UpdateTaskRequest struct {
	TaskName          string `json:"task_name"`
	AssignedTo        string `json:"assigned_to"`
	DueTime           string `json:"due_time"`
	TaskDescription   string `json:"task_description"`
	ReviewStatus      string `json:"review_status"`
	TaskStatus        string `json:"task_status"`
	AdditionalComment string `json:"additional_comment"`
	TaskType          string `json:"task_type"`
	TaskFrequency     string `json:"task_frequency"`
	FinalRemarks      string `json:"final_remarks"`
}
