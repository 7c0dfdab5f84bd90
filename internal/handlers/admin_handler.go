package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/auth"
)

type AdminHandler struct {
	adminEmail string
}

func NewAdminHandler(adminEmail string) *AdminHandler {
	return &AdminHandler{adminEmail: adminEmail}
}

type adminLoginRequest struct {
	Email string `json:"email"`
}

// HandleAdminLogin exchanges the admin email for a session token. This is
// the same single-address check the original UI did client-side, moved
// behind the API boundary.
func (h *AdminHandler) HandleAdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		respondError(c, http.StatusBadRequest, CodeMissingField, "Email is required")
		return
	}

	if !strings.EqualFold(strings.TrimSpace(req.Email), strings.TrimSpace(h.adminEmail)) {
		log.Printf("WARN: Admin login rejected for %q", req.Email)
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "message": "Access denied. You are not an admin."})
		return
	}

	token, err := auth.GenerateAdminToken(h.adminEmail)
	if err != nil {
		log.Printf("ERROR: Failed to issue admin token: %v", err)
		respondError(c, http.StatusInternalServerError, CodeStorageError, "Server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token})
}
