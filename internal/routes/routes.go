package routes

import (
	"github.com/gin-gonic/gin"

	"chronos/internal/handlers"
	"chronos/internal/middleware"
	"chronos/internal/models"
	"chronos/internal/services"
	"chronos/internal/state"
)

func SetupRoutes(
	r *gin.Engine,
	container *state.Container,
	authService services.AuthService,
	stateHandler *handlers.StateHandler,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	billHandler *handlers.BillHandler,
	reminderHandler *handlers.ReminderHandler,
	userHandler *handlers.UserHandler,
	settingsHandler *handlers.SettingsHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	perm := func(check func(models.Permission) bool) gin.HandlerFunc {
		return middleware.RequirePermission(container, check)
	}

	// ---- public
	r.POST("/auth/admin", authHandler.AdminLogin)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// snapshot and operator switch are ungated: the rendering layer
	// needs both before any permission can be evaluated
	r.GET("/state", stateHandler.Get)
	r.POST("/users/:id/switch", userHandler.Switch)
	r.POST("/settings/dark-mode", settingsHandler.ToggleDarkMode)

	// TASKS
	tasks := r.Group("/tasks")
	{
		edit := perm(func(p models.Permission) bool { return p.EditTasks })
		timer := perm(func(p models.Permission) bool { return p.StartTimer })

		tasks.POST("/", edit, taskHandler.Create)
		tasks.PUT("/:id", edit, taskHandler.Update)
		tasks.DELETE("/:id", edit, taskHandler.Delete)
		tasks.POST("/:id/clone", edit, taskHandler.Clone)
		tasks.POST("/:id/start", timer, taskHandler.Start)
		tasks.POST("/:id/pause", timer, taskHandler.Pause)
		tasks.POST("/:id/complete", timer, taskHandler.Complete)
		tasks.POST("/:id/reopen", timer, taskHandler.Reopen)
	}

	// REMINDERS (blueprints spawn tasks, so task editing rights apply)
	reminders := r.Group("/reminders", perm(func(p models.Permission) bool { return p.EditTasks }))
	{
		reminders.POST("/", reminderHandler.Create)
		reminders.PUT("/:id", reminderHandler.Update)
		reminders.DELETE("/:id", reminderHandler.Delete)
		reminders.POST("/:id/instantiate", reminderHandler.Instantiate)
	}

	// UTILITIES
	bills := r.Group("/bills", perm(func(p models.Permission) bool { return p.ManageBills }))
	{
		bills.POST("/", billHandler.Create)
		bills.PUT("/:id", billHandler.Update)
		bills.DELETE("/:id", billHandler.Delete)
		bills.POST("/:id/clone", billHandler.Clone)
	}

	// REPORTS
	reports := r.Group("/reports", perm(func(p models.Permission) bool { return p.DownloadReports }))
	{
		reports.GET("/summary", reportHandler.Summary)
		reports.POST("/export", reportHandler.Export)
		reports.POST("/email", reportHandler.Email)
		reports.POST("/overdue/notify", reportHandler.NotifyOverdue)
	}

	// ---- admin area: passcode session on top of role permissions
	admin := r.Group("/", middleware.AdminSession(authService))

	users := admin.Group("/users", perm(func(p models.Permission) bool { return p.ManageUsers }))
	{
		users.POST("/", userHandler.Create)
		users.PUT("/:id", userHandler.Update)
		users.DELETE("/:id", userHandler.Delete)
	}

	settings := admin.Group("/settings", perm(func(p models.Permission) bool { return p.ManageSettings }))
	{
		settings.PUT("/", settingsHandler.Update)
	}

	return r
}
