package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/models"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/services"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/storage"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/store"
)

type VerifyHandler struct {
	store  store.PaymentStore
	proofs storage.ProofStorage
	mailer services.Mailer
}

func NewVerifyHandler(st store.PaymentStore, proofs storage.ProofStorage, mailer services.Mailer) *VerifyHandler {
	return &VerifyHandler{store: st, proofs: proofs, mailer: mailer}
}

// HandleVerifyPayment flips a record to confirmed without notifying anyone.
// Verifying an already-confirmed record is a no-op that still returns 200.
func (h *VerifyHandler) HandleVerifyPayment(c *gin.Context) {
	rec, err := h.store.GetByID(c.Param("id"))
	if err == store.ErrNotFound {
		respondError(c, http.StatusNotFound, CodeNotFound, "Not found")
		return
	}
	if err != nil {
		log.Printf("ERROR: Failed fetching payment %s for verification: %v", c.Param("id"), err)
		respondError(c, http.StatusInternalServerError, CodeStorageError, "Server error")
		return
	}

	if !rec.Confirmed {
		rec.Confirmed = true
		if err := h.store.Update(rec); err != nil {
			respondError(c, http.StatusInternalServerError, CodeStorageError, "Server error")
			return
		}
		log.Printf("INFO: Payment %s marked confirmed", rec.ID)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "payment": rec})
}

type confirmationRequest struct {
	PaymentID string `json:"paymentId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Plan      string `json:"plan"`
}

// HandleSendConfirmation confirms a record and emails the payer. The admin
// dialog may attach a late proof screenshot when verifying manually; that
// arrives as multipart with the same field names.
func (h *VerifyHandler) HandleSendConfirmation(c *gin.Context) {
	var req confirmationRequest
	multipart := strings.HasPrefix(c.ContentType(), "multipart/form-data")

	if multipart {
		req.PaymentID = c.PostForm("paymentId")
		req.Email = c.PostForm("email")
		req.Name = c.PostForm("name")
		req.Plan = c.PostForm("plan")
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, CodeMissingField, "Invalid request payload")
			return
		}
	}

	if req.PaymentID == "" && (req.Email == "" || req.Name == "" || req.Plan == "") {
		respondError(c, http.StatusBadRequest, CodeMissingField, "Missing required fields")
		return
	}

	rec, err := h.resolveRecord(req)
	if err == store.ErrNotFound {
		respondError(c, http.StatusNotFound, CodeNotFound, "Payment not found")
		return
	}
	if err != nil {
		log.Printf("ERROR: Failed resolving payment for confirmation: %v", err)
		respondError(c, http.StatusInternalServerError, CodeStorageError, "Server error")
		return
	}

	if multipart {
		if fh, ferr := c.FormFile("screenshot"); ferr == nil {
			if fh.Size > maxUploadBytes {
				respondError(c, http.StatusBadRequest, CodeProofRequired, "Screenshot too large (max 5MB)")
				return
			}
			src, oerr := fh.Open()
			if oerr != nil {
				respondError(c, http.StatusInternalServerError, CodeStorageError, "Failed to read the uploaded screenshot")
				return
			}
			name, url, serr := h.proofs.Save(fh.Filename, src)
			src.Close()
			if serr != nil {
				log.Printf("ERROR: Failed storing late proof for payment %s: %v", rec.ID, serr)
				respondError(c, http.StatusInternalServerError, CodeStorageError, "Failed to store the uploaded screenshot")
				return
			}
			// A late proof replaces whatever was attached before.
			rec.ScreenshotFilename = name
			rec.ScreenshotURL = url
		}
	}

	rec.Confirmed = true
	if err := h.store.Update(rec); err != nil {
		respondError(c, http.StatusInternalServerError, CodeStorageError, "Server error")
		return
	}
	log.Printf("INFO: Payment %s confirmed, notifying %s", rec.ID, rec.Email)

	// The record stays confirmed even when the email fails; the failure is
	// only reported to the caller.
	if err := h.mailer.SendConfirmation(rec.Email, rec.Name, rec.Plan); err != nil {
		log.Printf("ERROR: Confirmation email for payment %s failed: %v", rec.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"code":    CodeNotifyFailed,
			"message": "Payment confirmed but notification email failed",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// resolveRecord tries the exact id first, then falls back to the exact
// (email, name, plan) triple in current collection order.
func (h *VerifyHandler) resolveRecord(req confirmationRequest) (*models.PaymentRecord, error) {
	if req.PaymentID != "" {
		rec, err := h.store.GetByID(req.PaymentID)
		if err == nil {
			return rec, nil
		}
		if err != store.ErrNotFound {
			return nil, err
		}
	}

	if req.Email == "" || req.Name == "" || req.Plan == "" {
		return nil, store.ErrNotFound
	}

	records, err := h.store.List()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Email == req.Email && records[i].Name == req.Name && records[i].Plan == req.Plan {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}
