package database

import "time"

// User represents an employee or administrator account.
// WorkingSheet holds the ordered sheet IDs the user processes daily.
type User struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(32)"`
	Username         string    `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	Email            string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password         string    `json:"-" gorm:"not null"`
	Role             string    `json:"role" gorm:"type:varchar(20);not null;default:'user'"`
	Location         string    `json:"location" gorm:"type:varchar(255)"`
	Designation      string    `json:"designation" gorm:"type:varchar(255)"`
	ExperienceLevel  string    `json:"experience_level" gorm:"type:varchar(100)"`
	Department       string    `json:"department" gorm:"type:varchar(255)"`
	ReportingManager string    `json:"reporting_manager" gorm:"type:varchar(255)"`
	Company          string    `json:"company" gorm:"type:varchar(255)"`
	WorkingSheet     []string  `json:"working_sheet" gorm:"serializer:json;type:text"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Sheet represents a recurring unit of work assignable to users.
type Sheet struct {
	ID         string    `json:"sheet_id" gorm:"primaryKey;type:varchar(32)"`
	SheetName  string    `json:"sheet_name" gorm:"type:varchar(255);not null"`
	SheetLink  string    `json:"sheet_link" gorm:"type:text;not null"`
	Department string    `json:"department" gorm:"type:varchar(255);not null"`
	PCName     string    `json:"pc_name" gorm:"type:varchar(255);not null"`
	SheetOwner string    `json:"sheet_owner" gorm:"type:varchar(255);not null"`
	UserID     string    `json:"userId" gorm:"type:varchar(32);index;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Process is one day's tracked unit of work for one user against one sheet.
// SheetName is a point-in-time snapshot; a later sheet rename does not
// propagate to historical rows. The composite unique index guarantees at
// most one row per (user, sheet, civil day).
type Process struct {
	ID        string `json:"process_id" gorm:"primaryKey;type:varchar(32)"`
	SheetID   string `json:"sheet_id" gorm:"type:varchar(32);not null;uniqueIndex:idx_user_sheet_day"`
	SheetName string `json:"sheet_name" gorm:"type:varchar(255);not null"`
	UserID    string `json:"userId" gorm:"type:varchar(32);not null;uniqueIndex:idx_user_sheet_day;index"`
	Day       string `json:"day" gorm:"type:varchar(10);not null;uniqueIndex:idx_user_sheet_day;index"`

	Timestamp1    *time.Time `json:"time_stamp_1"`
	Call1Attended *bool      `json:"first_call_attended"`
	Reason1       string     `json:"reason_for_call"`
	Outcome1      string     `json:"outcome"`

	Timestamp2    *time.Time `json:"time_stamp_2"`
	Call2Attended *bool      `json:"second_call_attended"`
	Reason2       string     `json:"reason_for_call_1"`
	Outcome2      string     `json:"outcome_1"`

	Timestamp3    *time.Time `json:"time_stamp_3"`
	Call3Attended *bool      `json:"third_call_attended"`
	Reason3       string     `json:"reason_for_call_2"`
	Outcome3      string     `json:"outcome_2"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Task represents an assigned piece of work with a due time.
type Task struct {
	ID                string    `json:"task_id" gorm:"primaryKey;type:varchar(32)"`
	TaskName          string    `json:"task_name" gorm:"type:varchar(255);not null"`
	AssignedTo        string    `json:"assigned_to" gorm:"type:varchar(32);index;not null"`
	DueTime           time.Time `json:"due_time" gorm:"not null"`
	TaskDescription   string    `json:"task_description" gorm:"type:text"`
	ReviewStatus      string    `json:"review_status" gorm:"type:varchar(100);not null"`
	TaskStatus        string    `json:"task_status" gorm:"type:varchar(20);not null;default:'NOT DONE'"`
	AdditionalComment string    `json:"additional_comment" gorm:"type:text"`
	TaskType          string    `json:"task_type" gorm:"type:varchar(100)"`
	TaskFrequency     string    `json:"task_frequency" gorm:"type:varchar(100)"`
	FinalRemarks      string    `json:"final_remarks" gorm:"type:text"`
	UserID            string    `json:"userId" gorm:"type:varchar(32);index;not null"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Department is a simple organisational unit.
type Department struct {
	ID             string    `json:"department_id" gorm:"primaryKey;type:varchar(32)"`
	DepartmentName string    `json:"department_name" gorm:"type:varchar(255);not null"`
	DepartmentHOD  string    `json:"department_hod" gorm:"type:varchar(255);not null"`
	UserID         string    `json:"userId" gorm:"type:varchar(32);index;not null"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Ticket tracks an IT-support style request. Status flips to CLOSE once an
// actual completion date is recorded.
type Ticket struct {
	ID                   string     `json:"ticket_id" gorm:"primaryKey;type:varchar(64)"`
	AssignedTo           string     `json:"ticket_assigned_to_pc" gorm:"type:varchar(100);index;not null"`
	DueDate              string     `json:"due_date" gorm:"type:varchar(64);not null"`
	TicketStatus         string     `json:"ticket_status" gorm:"type:varchar(10);not null;default:'OPEN'"`
	TicketIssue          string     `json:"ticket_issue" gorm:"type:text;not null"`
	ActualCompletionDate *time.Time `json:"actual_completion_date"`
	Remarks              string     `json:"remarks" gorm:"type:text"`
	UserID               string     `json:"userId" gorm:"type:varchar(32);index;not null"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}
