package handlers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"chronos/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// @Summary      Unlock the admin area
// @Description  Checks the operator passcode and returns a volatile admin-session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        challenge  body      map[string]string  true  "Passcode"
// @Success      200        {object}  map[string]interface{}
// @Failure      400        {object}  map[string]string
// @Failure      401        {object}  map[string]string
// @Router       /auth/admin [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	start := time.Now()

	var req struct {
		Passcode string `json:"passcode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][admin] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// mismatch is retryable; no lockout, no rate limiting
	if !h.authService.VerifyPasscode(strings.TrimSpace(req.Passcode)) {
		log.Printf("[auth][admin] passcode mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid passcode"})
		return
	}

	token, err := h.authService.IssueAdminToken()
	if err != nil {
		log.Printf("[auth][admin][err] issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create admin session"})
		return
	}

	log.Printf("[auth][admin][ok] took=%s", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"expires_in": int((8 * time.Hour).Seconds()),
	})
}
