package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chronos/internal/authz"
	"chronos/internal/models"
	"chronos/internal/services"
	"chronos/internal/state"
)

type TaskHandler struct {
	service   services.TaskService
	container *state.Container

	// ↓↓↓ Telegram notifications, may be nil
	tg *services.TelegramService
}

func NewTaskHandler(service services.TaskService, container *state.Container, tg *services.TelegramService) *TaskHandler {
	return &TaskHandler{service: service, container: container, tg: tg}
}

// @Summary      Create a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Param        task  body      services.TaskDraft  true  "Task draft"
// @Success      201   {object}  models.Task
// @Failure      400   {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req services.TaskDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" {
		log.Printf("[task][create][err] empty title")
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	task := h.service.Add(req)
	log.Printf("[task][create][ok] id=%s title=%q", task.ID, task.Title)
	c.JSON(http.StatusCreated, task)
}

// PUT /tasks/:id
func (h *TaskHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.TaskUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// manual time edits are double-gated: the tracking rule and the role
	if req.ActualTime != nil && !h.canEditTime(c) {
		log.Printf("[task][update][deny] manual time edit id=%s", id)
		c.JSON(http.StatusForbidden, gin.H{"error": "manual time editing not allowed"})
		return
	}

	prev := h.container.Snapshot().TaskByID(id)
	task, err := h.service.Update(id, req)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[task][update][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	log.Printf("[task][update][ok] id=%s", id)
	c.JSON(http.StatusOK, task)

	if completionTransition(prev, task) {
		h.tg.NotifyTaskCompleted(task)
	}
}

// completionTransition reports whether an update actually moved the task
// into Completed, so edits to an already finished task stay silent.
func completionTransition(prev, curr *models.Task) bool {
	if curr == nil || curr.Status != models.StatusCompleted {
		return false
	}
	return prev == nil || prev.Status != models.StatusCompleted
}

// DELETE /tasks/:id
func (h *TaskHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(id); errors.Is(err, services.ErrNotFound) {
		log.Printf("[task][delete][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	log.Printf("[task][delete][ok] id=%s", id)
	c.Status(http.StatusNoContent)
}

// POST /tasks/:id/clone
func (h *TaskHandler) Clone(c *gin.Context) {
	id := c.Param("id")
	clone, err := h.service.Clone(id)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[task][clone][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	log.Printf("[task][clone][ok] src=%s clone=%s", id, clone.ID)
	c.JSON(http.StatusCreated, clone)
}

// POST /tasks/:id/start
func (h *TaskHandler) Start(c *gin.Context) {
	h.transition(c, "start", h.service.Start)
}

// POST /tasks/:id/pause
func (h *TaskHandler) Pause(c *gin.Context) {
	h.transition(c, "pause", h.service.Pause)
}

// POST /tasks/:id/complete
func (h *TaskHandler) Complete(c *gin.Context) {
	id := c.Param("id")
	task, err := h.service.Complete(id)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[task][complete][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	log.Printf("[task][complete][ok] id=%s actual=%.2f", id, task.ActualTime)
	c.JSON(http.StatusOK, task)

	h.tg.NotifyTaskCompleted(task)
}

// POST /tasks/:id/reopen
func (h *TaskHandler) Reopen(c *gin.Context) {
	h.transition(c, "reopen", h.service.Reopen)
}

func (h *TaskHandler) transition(c *gin.Context, op string, fn func(string) (*models.Task, error)) {
	id := c.Param("id")
	task, err := fn(id)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[task][%s][404] id=%s", op, id)
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	log.Printf("[task][%s][ok] id=%s status=%q", op, id, task.Status)
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) canEditTime(c *gin.Context) bool {
	st := h.container.Snapshot()
	if !st.Settings.AllowManualTime {
		return false
	}
	user := st.UserByID(st.CurrentUserID)
	if user == nil {
		return false
	}
	return authz.Effective(st.Settings, user.Role).EditTime
}
