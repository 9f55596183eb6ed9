package handler

import (
	"github.com/workdesk/backoffice/internal/apiserver/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(h.jwtService))
	{
		protected.GET("/auth/me", h.Me)
		protected.PATCH("/auth/profile", h.UpdateProfile)
		protected.GET("/auth/users", middleware.RequireSuperAdmin(), h.ListUsers)

		employees := protected.Group("/employees")
		{
			employees.POST("", middleware.RequireSuperAdmin(), h.AddEmployee)
			employees.GET("", middleware.RequireSuperAdmin(), h.ListEmployees)
			employees.GET("/:id", h.GetEmployee)
			employees.PATCH("/:id", h.UpdateEmployee)
			employees.DELETE("/:id", middleware.RequireSuperAdmin(), h.DeleteEmployee)
		}

		sheets := protected.Group("/sheets")
		{
			sheets.POST("", middleware.RequireSuperAdmin(), h.CreateSheet)
			sheets.GET("", h.ListSheets)
			sheets.GET("/:id", h.GetSheet)
			sheets.PATCH("/:id", middleware.RequireSuperAdmin(), h.UpdateSheet)
			sheets.DELETE("/:id", middleware.RequireSuperAdmin(), h.DeleteSheet)
		}

		departments := protected.Group("/departments")
		{
			departments.POST("", middleware.RequireSuperAdmin(), h.CreateDepartment)
			departments.GET("", h.ListDepartments)
			departments.GET("/:id", h.GetDepartment)
			departments.PATCH("/:id", middleware.RequireSuperAdmin(), h.UpdateDepartment)
			departments.DELETE("/:id", middleware.RequireSuperAdmin(), h.DeleteDepartment)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.POST("", h.CreateTask)
			tasks.GET("", h.ListTasks)
			tasks.GET("/:id", h.GetTask)
			tasks.PATCH("/:id", h.UpdateTask)
			tasks.DELETE("/:id", h.DeleteTask)
		}

		processes := protected.Group("/processes")
		{
			processes.GET("", h.ListOwnProcesses)
			processes.GET("/:id", h.GetProcess)
			processes.PATCH("/:id", h.UpdateProcess)
		}

		tickets := protected.Group("/tickets")
		{
			tickets.POST("", middleware.RequireSuperAdmin(), h.CreateTicket)
			tickets.GET("", middleware.RequireSuperAdmin(), h.ListTickets)
			tickets.GET("/:id", h.GetTicket)
			tickets.PATCH("/:id", h.UpdateTicket)
		}

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/summary", h.ProcessSummaryCount)
			dashboard.GET("/processes", h.ProcessDashboard)
			dashboard.GET("/processes/fleet", middleware.RequireSuperAdmin(), h.FleetProcessDashboard)
			dashboard.GET("/processes/fleet/range", middleware.RequireSuperAdmin(), h.FleetProcessRangeDashboard)
			dashboard.GET("/tasks", h.TaskDashboard)
			dashboard.GET("/tasks/fleet", middleware.RequireSuperAdmin(), h.FleetTaskDashboard)
		}

		protected.POST("/provision/run", middleware.RequireSuperAdmin(), h.TriggerProvision)
	}
}
