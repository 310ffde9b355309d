package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chronos/internal/models"
	"chronos/internal/services"
)

type ReminderHandler struct {
	service services.ReminderService
}

func NewReminderHandler(service services.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// POST /reminders
func (h *ReminderHandler) Create(c *gin.Context) {
	var req services.ReminderDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[reminder][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	reminder, err := h.service.Add(req)
	if err != nil {
		log.Printf("[reminder][create][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[reminder][create][ok] id=%s display_id=%s", reminder.ID, reminder.DisplayID)
	c.JSON(http.StatusCreated, reminder)
}

// PUT /reminders/:id
func (h *ReminderHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.ReminderUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[reminder][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reminder, err := h.service.Update(id, req)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[reminder][update][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}
	log.Printf("[reminder][update][ok] id=%s", id)
	c.JSON(http.StatusOK, reminder)
}

// DELETE /reminders/:id
func (h *ReminderHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(id); errors.Is(err, services.ErrNotFound) {
		log.Printf("[reminder][delete][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}
	log.Printf("[reminder][delete][ok] id=%s", id)
	c.Status(http.StatusNoContent)
}

// POST /reminders/:id/instantiate spawns a concrete task from the
// blueprint; the blueprint is reusable without limit
func (h *ReminderHandler) Instantiate(c *gin.Context) {
	id := c.Param("id")
	task, err := h.service.Instantiate(id)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[reminder][instantiate][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}
	log.Printf("[reminder][instantiate][ok] reminder=%s task=%s", id, task.ID)
	c.JSON(http.StatusCreated, task)
}
