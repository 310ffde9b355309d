package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"chronos/internal/models"
	"chronos/internal/services"
)

type SettingsHandler struct {
	service services.SettingsService
}

func NewSettingsHandler(service services.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// PUT /settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req models.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[settings][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings := h.service.Update(req)
	log.Printf("[settings][update][ok]")
	c.JSON(http.StatusOK, settings)
}

// POST /settings/dark-mode
func (h *SettingsHandler) ToggleDarkMode(c *gin.Context) {
	dark := h.service.ToggleDarkMode()
	log.Printf("[settings][dark-mode][ok] dark=%v", dark)
	c.JSON(http.StatusOK, gin.H{"dark_mode": dark})
}
