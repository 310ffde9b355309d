package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chronos/internal/models"
	"chronos/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req services.UserDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[user][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	user, err := h.service.Add(req)
	if err != nil {
		log.Printf("[user][create][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[user][create][ok] id=%s role=%q", user.ID, user.Role)
	c.JSON(http.StatusCreated, user)
}

// PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var req models.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[user][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.service.Update(id, req)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[user][update][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[user][update][ok] id=%s", id)
	c.JSON(http.StatusOK, user)
}

// DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(id); errors.Is(err, services.ErrNotFound) {
		log.Printf("[user][delete][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	log.Printf("[user][delete][ok] id=%s", id)
	c.Status(http.StatusNoContent)
}

// POST /users/:id/switch picks who is acting; suspended users cannot
// become the current operator
func (h *UserHandler) Switch(c *gin.Context) {
	id := c.Param("id")
	user, err := h.service.SetCurrent(id)
	if errors.Is(err, services.ErrNotFound) {
		log.Printf("[user][switch][404] id=%s", id)
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if errors.Is(err, services.ErrSuspended) {
		log.Printf("[user][switch][deny] suspended id=%s", id)
		c.JSON(http.StatusForbidden, gin.H{"error": "user suspended"})
		return
	}
	log.Printf("[user][switch][ok] id=%s name=%q", user.ID, user.Name)
	c.JSON(http.StatusOK, user)
}
