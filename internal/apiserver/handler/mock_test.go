package handler

import (
	"context"
	"sort"
	"time"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/common/cnst"
)

// mockDB is an in-memory database.Database used by the handler tests.
type mockDB struct {
	users       map[string]*database.User
	sheets      map[string]*database.Sheet
	processes   map[string]*database.Process
	tasks       map[string]*database.Task
	departments map[string]*database.Department
	tickets     map[string]*database.Ticket

	userOrder       []string
	sheetOrder      []string
	taskOrder       []string
	departmentOrder []string

	updateProcessErr error
}

func newMockDB() *mockDB {
	return &mockDB{
		users:       map[string]*database.User{},
		sheets:      map[string]*database.Sheet{},
		processes:   map[string]*database.Process{},
		tasks:       map[string]*database.Task{},
		departments: map[string]*database.Department{},
		tickets:     map[string]*database.Ticket{},
	}
}

func (m *mockDB) Close() error { return nil }

func (m *mockDB) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockDB) CreateUser(ctx context.Context, user *database.User) error {
	m.users[user.ID] = user
	m.userOrder = append(m.userOrder, user.ID)
	return nil
}

func (m *mockDB) GetUserByID(ctx context.Context, id string) (*database.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, cnst.ErrNotFound
}

func (m *mockDB) GetUserByUsername(ctx context.Context, username string) (*database.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, cnst.ErrNotFound
}

func (m *mockDB) GetUserByEmail(ctx context.Context, email string) (*database.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, cnst.ErrNotFound
}

func (m *mockDB) ListUsers(ctx context.Context) ([]*database.User, error) {
	out := make([]*database.User, 0, len(m.users))
	for _, id := range m.userOrder {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockDB) UpdateUser(ctx context.Context, user *database.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return cnst.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockDB) DeleteUser(ctx context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return cnst.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *mockDB) LatestUserID(ctx context.Context) (string, error) {
	if len(m.userOrder) == 0 {
		return "", nil
	}
	return m.userOrder[len(m.userOrder)-1], nil
}

func (m *mockDB) CreateSheet(ctx context.Context, sheet *database.Sheet) error {
	m.sheets[sheet.ID] = sheet
	m.sheetOrder = append(m.sheetOrder, sheet.ID)
	return nil
}

func (m *mockDB) GetSheetByID(ctx context.Context, id string) (*database.Sheet, error) {
	if s, ok := m.sheets[id]; ok {
		return s, nil
	}
	return nil, cnst.ErrNotFound
}

func (m *mockDB) ListSheets(ctx context.Context) ([]*database.Sheet, error) {
	out := make([]*database.Sheet, 0, len(m.sheets))
	for _, id := range m.sheetOrder {
		if s, ok := m.sheets[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockDB) UpdateSheet(ctx context.Context, sheet *database.Sheet) error {
	if _, ok := m.sheets[sheet.ID]; !ok {
		return cnst.ErrNotFound
	}
	m.sheets[sheet.ID] = sheet
	return nil
}

func (m *mockDB) DeleteSheet(ctx context.Context, id string) error {
	if _, ok := m.sheets[id]; !ok {
		return cnst.ErrNotFound
	}
	delete(m.sheets, id)
	return nil
}

func (m *mockDB) LatestSheetID(ctx context.Context) (string, error) {
	if len(m.sheetOrder) == 0 {
		return "", nil
	}
	return m.sheetOrder[len(m.sheetOrder)-1], nil
}

func (m *mockDB) CreateProcesses(ctx context.Context, processes []*database.Process) error {
	for _, p := range processes {
		m.processes[p.ID] = p
	}
	return nil
}

func (m *mockDB) GetProcessByID(ctx context.Context, id string) (*database.Process, error) {
	if p, ok := m.processes[id]; ok {
		return p, nil
	}
	return nil, cnst.ErrNotFound
}

func (m *mockDB) ListProcessesByUser(ctx context.Context, userID string) ([]*database.Process, error) {
	var out []*database.Process
	for _, p := range m.processes {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockDB) ListProcessesByUserAndDay(ctx context.Context, userID, day string) ([]*database.Process, error) {
	var out []*database.Process
	for _, p := range m.processes {
		if p.UserID == userID && p.Day == day {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockDB) ListProcessesByUserInRange(ctx context.Context, userID string, from, to *time.Time) ([]*database.Process, error) {
	var out []*database.Process
	for _, p := range m.processes {
		if p.UserID != userID {
			continue
		}
		if from != nil && p.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !p.CreatedAt.Before(*to) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockDB) CountProcesses(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return int64(len(m.processes)), nil
	}
	var n int64
	for _, p := range m.processes {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (m *mockDB) ProcessIDExists(ctx context.Context, id string) (bool, error) {
	_, ok := m.processes[id]
	return ok, nil
}

func (m *mockDB) UpdateProcess(ctx context.Context, process *database.Process) error {
	if m.updateProcessErr != nil {
		return m.updateProcessErr
	}
	if _, ok := m.processes[process.ID]; !ok {
		return cnst.ErrNotFound
	}
	m.processes[process.ID] = process
	return nil
}

func (m *mockDB) CreateTask(ctx context.Context, task *database.Task) error {
	m.tasks[task.ID] = task
	m.taskOrder = append(m.taskOrder, task.ID)
	return nil
}

func (m *mockDB) GetTaskByID(ctx context.Context, id string) (*database.Task, error) {
	if t, ok := m.tasks[id]; ok {
		return t, nil
	}
	return nil, cnst.ErrNotFound
}

func (m *mockDB) ListTasks(ctx context.Context) ([]*database.Task, error) {
	out := make([]*database.Task, 0, len(m.tasks))
	for _, id := range m.taskOrder {
		if t, ok := m.tasks[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockDB) ListTasksByAssignee(ctx context.Context, userID string) ([]*database.Task, error) {
	var out []*database.Task
	for _, id := range m.taskOrder {
		if t, ok := m.tasks[id]; ok && t.AssignedTo == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockDB) UpdateTask(ctx context.Context, task *database.Task) error {
	if _, ok := m.tasks[task.ID]; !ok {
		return cnst.ErrNotFound
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *mockDB) DeleteTask(ctx context.Context, id string) error {
	if _, ok := m.tasks[id]; !ok {
		return cnst.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *mockDB) LatestTaskID(ctx context.Context) (string, error) {
	if len(m.taskOrder) == 0 {
		return "", nil
	}
	return m.taskOrder[len(m.taskOrder)-1], nil
}

func (m *mockDB) CreateDepartment(ctx context.Context, department *database.Department) error {
	m.departments[department.ID] = department
	m.departmentOrder = append(m.departmentOrder, department.ID)
	return nil
}

func (m *mockDB) GetDepartmentByID(ctx context.Context, id string) (*database.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, cnst.ErrNotFound
}

func (m *mockDB) ListDepartments(ctx context.Context) ([]*database.Department, error) {
	out := make([]*database.Department, 0, len(m.departments))
	for _, id := range m.departmentOrder {
		if d, ok := m.departments[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDB) UpdateDepartment(ctx context.Context, department *database.Department) error {
	if _, ok := m.departments[department.ID]; !ok {
		return cnst.ErrNotFound
	}
	m.departments[department.ID] = department
	return nil
}

func (m *mockDB) DeleteDepartment(ctx context.Context, id string) error {
	if _, ok := m.departments[id]; !ok {
		return cnst.ErrNotFound
	}
	delete(m.departments, id)
	return nil
}

func (m *mockDB) LatestDepartmentID(ctx context.Context) (string, error) {
	if len(m.departmentOrder) == 0 {
		return "", nil
	}
	return m.departmentOrder[len(m.departmentOrder)-1], nil
}

func (m *mockDB) CreateTicket(ctx context.Context, ticket *database.Ticket) error {
	m.tickets[ticket.ID] = ticket
	return nil
}

func (m *mockDB) GetTicketByID(ctx context.Context, id string) (*database.Ticket, error) {
	if t, ok := m.tickets[id]; ok {
		return t, nil
	}
	return nil, cnst.ErrNotFound
}

func (m *mockDB) ListTickets(ctx context.Context) ([]*database.Ticket, error) {
	out := make([]*database.Ticket, 0, len(m.tickets))
	for _, t := range m.tickets {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *mockDB) UpdateTicket(ctx context.Context, ticket *database.Ticket) error {
	if _, ok := m.tickets[ticket.ID]; !ok {
		return cnst.ErrNotFound
	}
	m.tickets[ticket.ID] = ticket
	return nil
}
