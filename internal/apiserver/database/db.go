package database

import (
	"context"
	"errors"
	"time"

	"github.com/workdesk/backoffice/internal/common/cnst"

	"gorm.io/gorm"
)

// DB implements the Database interface on top of gorm.
type DB struct {
	db *gorm.DB
}

func newDB(gormDB *gorm.DB) (*DB, error) {
	if err := gormDB.AutoMigrate(&User{}, &Sheet{}, &Process{}, &Task{}, &Department{}, &Ticket{}); err != nil {
		return nil, err
	}
	return &DB{db: gormDB}, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn inside a single gorm transaction carried by context.
func (d *DB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTransaction(ctx, tx))
	})
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cnst.ErrNotFound
	}
	return err
}

// User operations

func (d *DB) CreateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, d.db).Create(user).Error
}

func (d *DB) GetUserByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, d.db).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (d *DB) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, d.db).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (d *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := getDBFromContext(ctx, d.db).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &user, nil
}

func (d *DB) ListUsers(ctx context.Context) ([]*User, error) {
	var users []*User
	err := getDBFromContext(ctx, d.db).Order("created_at desc").Find(&users).Error
	return users, err
}

func (d *DB) UpdateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, d.db).Save(user).Error
}

func (d *DB) DeleteUser(ctx context.Context, id string) error {
	return getDBFromContext(ctx, d.db).Where("id = ?", id).Delete(&User{}).Error
}

func (d *DB) LatestUserID(ctx context.Context) (string, error) {
	return d.latestID(ctx, &User{})
}

// Sheet operations

func (d *DB) CreateSheet(ctx context.Context, sheet *Sheet) error {
	return getDBFromContext(ctx, d.db).Create(sheet).Error
}

func (d *DB) GetSheetByID(ctx context.Context, id string) (*Sheet, error) {
	var sheet Sheet
	err := getDBFromContext(ctx, d.db).Where("id = ?", id).First(&sheet).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &sheet, nil
}

func (d *DB) ListSheets(ctx context.Context) ([]*Sheet, error) {
	var sheets []*Sheet
	err := getDBFromContext(ctx, d.db).Order("created_at desc").Find(&sheets).Error
	return sheets, err
}

func (d *DB) UpdateSheet(ctx context.Context, sheet *Sheet) error {
	return getDBFromContext(ctx, d.db).Save(sheet).Error
}

func (d *DB) DeleteSheet(ctx context.Context, id string) error {
	return getDBFromContext(ctx, d.db).Where("id = ?", id).Delete(&Sheet{}).Error
}

func (d *DB) LatestSheetID(ctx context.Context) (string, error) {
	return d.latestID(ctx, &Sheet{})
}

// Process operations

func (d *DB) CreateProcesses(ctx context.Context, processes []*Process) error {
	if len(processes) == 0 {
		return nil
	}
	return getDBFromContext(ctx, d.db).Create(processes).Error
}

func (d *DB) GetProcessByID(ctx context.Context, id string) (*Process, error) {
	var process Process
	err := getDBFromContext(ctx, d.db).Where("id = ?", id).First(&process).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &process, nil
}

func (d *DB) ListProcessesByUser(ctx context.Context, userID string) ([]*Process, error) {
	var processes []*Process
	err := getDBFromContext(ctx, d.db).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&processes).Error
	return processes, err
}

func (d *DB) ListProcessesByUserAndDay(ctx context.Context, userID, day string) ([]*Process, error) {
	var processes []*Process
	err := getDBFromContext(ctx, d.db).
		Where("user_id = ? AND day = ?", userID, day).
		Find(&processes).Error
	return processes, err
}

func (d *DB) ListProcessesByUserInRange(ctx context.Context, userID string, from, to *time.Time) ([]*Process, error) {
	q := getDBFromContext(ctx, d.db).Where("user_id = ?", userID)
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}
	var processes []*Process
	err := q.Order("created_at desc").Find(&processes).Error
	return processes, err
}

func (d *DB) CountProcesses(ctx context.Context, userID string) (int64, error) {
	q := getDBFromContext(ctx, d.db).Model(&Process{})
	if userID != "" {
		q = q.Where("user_id = ?", userID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (d *DB) ProcessIDExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := getDBFromContext(ctx, d.db).
		Model(&Process{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (d *DB) UpdateProcess(ctx context.Context, process *Process) error {
	return getDBFromContext(ctx, d.db).Save(process).Error
}

// Task operations

func (d *DB) CreateTask(ctx context.Context, task *Task) error {
	return getDBFromContext(ctx, d.db).Create(task).Error
}

func (d *DB) GetTaskByID(ctx context.Context, id string) (*Task, error) {
	var task Task
	err := getDBFromContext(ctx, d.db).Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &task, nil
}

func (d *DB) ListTasks(ctx context.Context) ([]*Task, error) {
	var tasks []*Task
	err := getDBFromContext(ctx, d.db).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (d *DB) ListTasksByAssignee(ctx context.Context, userID string) ([]*Task, error) {
	var tasks []*Task
	err := getDBFromContext(ctx, d.db).
		Where("assigned_to = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

func (d *DB) UpdateTask(ctx context.Context, task *Task) error {
	return getDBFromContext(ctx, d.db).Save(task).Error
}

func (d *DB) DeleteTask(ctx context.Context, id string) error {
	return getDBFromContext(ctx, d.db).Where("id = ?", id).Delete(&Task{}).Error
}

func (d *DB) LatestTaskID(ctx context.Context) (string, error) {
	return d.latestID(ctx, &Task{})
}

// Department operations

func (d *DB) CreateDepartment(ctx context.Context, department *Department) error {
	return getDBFromContext(ctx, d.db).Create(department).Error
}

func (d *DB) GetDepartmentByID(ctx context.Context, id string) (*Department, error) {
	var department Department
	err := getDBFromContext(ctx, d.db).Where("id = ?", id).First(&department).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &department, nil
}

func (d *DB) ListDepartments(ctx context.Context) ([]*Department, error) {
	var departments []*Department
	err := getDBFromContext(ctx, d.db).Order("created_at desc").Find(&departments).Error
	return departments, err
}

func (d *DB) UpdateDepartment(ctx context.Context, department *Department) error {
	return getDBFromContext(ctx, d.db).Save(department).Error
}

func (d *DB) DeleteDepartment(ctx context.Context, id string) error {
	return getDBFromContext(ctx, d.db).Where("id = ?", id).Delete(&Department{}).Error
}

func (d *DB) LatestDepartmentID(ctx context.Context) (string, error) {
	return d.latestID(ctx, &Department{})
}

// Ticket operations

func (d *DB) CreateTicket(ctx context.Context, ticket *Ticket) error {
	return getDBFromContext(ctx, d.db).Create(ticket).Error
}

func (d *DB) GetTicketByID(ctx context.Context, id string) (*Ticket, error) {
	var ticket Ticket
	err := getDBFromContext(ctx, d.db).Where("id = ?", id).First(&ticket).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &ticket, nil
}

func (d *DB) ListTickets(ctx context.Context) ([]*Ticket, error) {
	var tickets []*Ticket
	err := getDBFromContext(ctx, d.db).Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (d *DB) UpdateTicket(ctx context.Context, ticket *Ticket) error {
	return getDBFromContext(ctx, d.db).Save(ticket).Error
}

// latestID returns the primary key of the most recently created row of the
// given model, or "" when the table is empty. The id tiebreaker keeps the
// answer stable when two rows share a creation timestamp.
func (d *DB) latestID(ctx context.Context, model any) (string, error) {
	var row struct{ ID string }
	err := getDBFromContext(ctx, d.db).
		Model(model).
		Order("created_at desc, id desc").
		Limit(1).
		Select("id").
		Scan(&row).Error
	if err != nil {
		return "", err
	}
	return row.ID, nil
}
