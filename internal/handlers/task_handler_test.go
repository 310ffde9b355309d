package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronos/internal/middleware"
	"chronos/internal/models"
	"chronos/internal/services"
	"chronos/internal/state"
)

type testEnv struct {
	router    *gin.Engine
	container *state.Container
	tasks     services.TaskService
	auth      services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := &models.AppState{
		ReminderSeq: map[models.RecurrenceType]int{},
		Users: []models.User{
			{ID: "admin", Name: "Admin", Email: "admin@chronos.local", Role: models.RoleSuperAdmin},
			{ID: "staff", Name: "Staff", Email: "staff@chronos.local", Role: models.RoleStaff},
		},
		CurrentUserID: "admin",
		Settings: models.Settings{
			OrgName: "Test Org",
			Modules: models.ModuleToggles{Tasks: true, Utilities: true, Reports: true},
		},
	}
	container := state.NewContainer(nil, st)
	taskService := services.NewTaskService(container)
	authService := services.NewAuthService()
	userService := services.NewUserService(container)
	settingsService := services.NewSettingsService(container)

	taskHandler := NewTaskHandler(taskService, container, nil)
	userHandler := NewUserHandler(userService)
	settingsHandler := NewSettingsHandler(settingsService)

	perm := func(check func(models.Permission) bool) gin.HandlerFunc {
		return middleware.RequirePermission(container, check)
	}

	r := gin.New()
	r.POST("/users/:id/switch", userHandler.Switch)

	edit := perm(func(p models.Permission) bool { return p.EditTasks })
	timer := perm(func(p models.Permission) bool { return p.StartTimer })
	r.POST("/tasks/", edit, taskHandler.Create)
	r.PUT("/tasks/:id", edit, taskHandler.Update)
	r.DELETE("/tasks/:id", edit, taskHandler.Delete)
	r.POST("/tasks/:id/start", timer, taskHandler.Start)
	r.POST("/tasks/:id/complete", timer, taskHandler.Complete)

	admin := r.Group("/", middleware.AdminSession(authService))
	admin.PUT("/settings/", perm(func(p models.Permission) bool { return p.ManageSettings }), settingsHandler.Update)

	return &testEnv{router: r, container: container, tasks: taskService, auth: authService}
}

func (e *testEnv) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestCreateTask(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/tasks/", `{"title":"Stock count","category":"Operations","priority":"High","estimated_time":60,"type":"Weekly"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var task models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &task))
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Len(t, env.container.Snapshot().Tasks, 1)
}

func TestCreateTask_EmptyTitleRejected(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/tasks/", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.container.Snapshot().Tasks)
}

func TestUpdateTask_UnknownIDIs404(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPut, "/tasks/missing", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPermissionGate_StaffCannotEditTasks(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/users/staff/switch", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/tasks/", `{"title":"forbidden"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, env.container.Snapshot().Tasks)

	// the timer flag is granted to staff, so start still works
	task := env.tasks.Add(services.TaskDraft{Title: "allowed"})
	w = env.do(http.MethodPost, "/tasks/"+task.ID+"/start", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPermissionGate_SuspendedUserDenied(t *testing.T) {
	env := newTestEnv(t)
	env.container.Mutate(func(st *models.AppState) bool {
		st.UserByID("admin").Suspended = true
		return true
	})

	w := env.do(http.MethodPost, "/tasks/", `{"title":"nope"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestManualTimeEdit_GatedByTrackingRule(t *testing.T) {
	env := newTestEnv(t)
	task := env.tasks.Add(services.TaskDraft{Title: "timed"})

	w := env.do(http.MethodPut, "/tasks/"+task.ID, `{"actual_time":15}`)
	assert.Equal(t, http.StatusForbidden, w.Code, "manual time edits need the tracking rule enabled")

	env.container.Mutate(func(st *models.AppState) bool {
		st.Settings.AllowManualTime = true
		return true
	})
	w = env.do(http.MethodPut, "/tasks/"+task.ID, `{"actual_time":15}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 15.0, env.container.Snapshot().TaskByID(task.ID).ActualTime)
}

func TestAdminArea_RequiresPasscodeSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPut, "/settings/", `{"org_name":"Renamed"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPut, "/settings/", `{"org_name":"Renamed"}`, "Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := env.auth.IssueAdminToken()
	require.NoError(t, err)
	w = env.do(http.MethodPut, "/settings/", `{"org_name":"Renamed"}`, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Renamed", env.container.Snapshot().Settings.OrgName)
}

func TestCompletionTransition(t *testing.T) {
	pending := &models.Task{ID: "t1", Status: models.StatusPending}
	done := &models.Task{ID: "t1", Status: models.StatusCompleted}

	assert.True(t, completionTransition(pending, done))
	assert.True(t, completionTransition(nil, done))
	assert.False(t, completionTransition(done, done), "editing a finished task must not re-announce it")
	assert.False(t, completionTransition(done, pending))
	assert.False(t, completionTransition(pending, pending))
}

func TestCompleteTask_ViaHTTP(t *testing.T) {
	env := newTestEnv(t)
	task := env.tasks.Add(services.TaskDraft{Title: "wrap up"})

	w := env.do(http.MethodPost, "/tasks/"+task.ID+"/complete", "")
	require.Equal(t, http.StatusOK, w.Code)

	got := env.container.Snapshot().TaskByID(task.ID)
	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.NotNil(t, got.CompletedAt)
}
