package cnst

// User roles.
const (
	RoleSuperAdmin = "super_admin"
	RoleUser       = "user"
)

// Task completion statuses.
const (
	TaskStatusDone    = "DONE"
	TaskStatusNotDone = "NOT DONE"
)

// Ticket statuses.
const (
	TicketStatusOpen  = "OPEN"
	TicketStatusClose = "CLOSE"
)
