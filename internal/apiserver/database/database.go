package database

import (
	"context"
	"time"
)

// Database defines the store operations the apiserver relies on.
// Implementations map gorm's not-found error to cnst.ErrNotFound.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Transaction runs fn inside a single store transaction. The context
	// passed to fn carries the transaction for nested store calls.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// User operations.
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, user *User) error
	DeleteUser(ctx context.Context, id string) error
	LatestUserID(ctx context.Context) (string, error)

	// Sheet operations.
	CreateSheet(ctx context.Context, sheet *Sheet) error
	GetSheetByID(ctx context.Context, id string) (*Sheet, error)
	ListSheets(ctx context.Context) ([]*Sheet, error)
	UpdateSheet(ctx context.Context, sheet *Sheet) error
	DeleteSheet(ctx context.Context, id string) error
	LatestSheetID(ctx context.Context) (string, error)

	// Process operations.
	CreateProcesses(ctx context.Context, processes []*Process) error
	GetProcessByID(ctx context.Context, id string) (*Process, error)
	ListProcessesByUser(ctx context.Context, userID string) ([]*Process, error)
	ListProcessesByUserAndDay(ctx context.Context, userID, day string) ([]*Process, error)
	ListProcessesByUserInRange(ctx context.Context, userID string, from, to *time.Time) ([]*Process, error)
	CountProcesses(ctx context.Context, userID string) (int64, error)
	ProcessIDExists(ctx context.Context, id string) (bool, error)
	UpdateProcess(ctx context.Context, process *Process) error

	// Task operations.
	CreateTask(ctx context.Context, task *Task) error
	GetTaskByID(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTasksByAssignee(ctx context.Context, userID string) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id string) error
	LatestTaskID(ctx context.Context) (string, error)

	// Department operations.
	CreateDepartment(ctx context.Context, department *Department) error
	GetDepartmentByID(ctx context.Context, id string) (*Department, error)
	ListDepartments(ctx context.Context) ([]*Department, error)
	UpdateDepartment(ctx context.Context, department *Department) error
	DeleteDepartment(ctx context.Context, id string) error
	LatestDepartmentID(ctx context.Context) (string, error)

	// Ticket operations.
	CreateTicket(ctx context.Context, ticket *Ticket) error
	GetTicketByID(ctx context.Context, id string) (*Ticket, error)
	ListTickets(ctx context.Context) ([]*Ticket, error)
	UpdateTicket(ctx context.Context, ticket *Ticket) error
}
