// internal/handlers/helpers.go

package handlers

import (
	"github.com/gin-gonic/gin"
)

// Stable error codes, one per taxonomy entry, so clients and tests do not
// have to match on human-readable strings.
const (
	CodeMissingField  = "MISSING_FIELD"
	CodeProofRequired = "PROOF_REQUIRED"
	CodeNotFound      = "NOT_FOUND"
	CodeNotifyFailed  = "NOTIFY_FAILED"
	CodeStorageError  = "STORAGE_ERROR"
)

// respondError writes the error shape the frontend expects: ok=false plus a
// short human-readable message, with a stable code alongside.
func respondError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, gin.H{
		"ok":      false,
		"code":    code,
		"message": message,
	})
}
