package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/models"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/services"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/storage"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/store"
)

// maxUploadBytes caps proof screenshots at 5 MB.
const maxUploadBytes = 5 << 20

type PaymentHandler struct {
	store  store.PaymentStore
	proofs storage.ProofStorage
	paypal *services.PayPalClient
}

func NewPaymentHandler(st store.PaymentStore, proofs storage.ProofStorage, paypal *services.PayPalClient) *PaymentHandler {
	return &PaymentHandler{store: st, proofs: proofs, paypal: paypal}
}

// generatePaymentID creates a unique id whose millisecond prefix keeps ids
// roughly sortable by creation time.
func generatePaymentID() string {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(bytes))
}

type submitRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Plan          string `json:"plan"`
	PaymentMethod string `json:"paymentMethod"`
	UPIID         string `json:"upiId"`
	UPIRef        string `json:"upiRef"`
	PayPalOrderID string `json:"paypalOrderId"`
}

// HandleSubmitPayment accepts a new payment submission. Screenshot flows
// post multipart/form-data with a "screenshot" file field; the PayPal SDK
// flow posts plain JSON carrying the captured order id.
func (h *PaymentHandler) HandleSubmitPayment(c *gin.Context) {
	var req submitRequest
	var fileHeader *multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.Name = c.PostForm("name")
		req.Email = c.PostForm("email")
		req.Address = c.PostForm("address")
		req.Plan = c.PostForm("plan")
		req.PaymentMethod = c.PostForm("paymentMethod")
		req.UPIID = c.PostForm("upiId")
		req.UPIRef = c.PostForm("upiRef")
		req.PayPalOrderID = c.PostForm("paypalOrderId")

		if fh, err := c.FormFile("screenshot"); err == nil {
			fileHeader = fh
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, CodeMissingField, "Invalid request payload")
			return
		}
	}

	if req.Name == "" || req.Email == "" || req.Address == "" || req.Plan == "" || req.PaymentMethod == "" {
		respondError(c, http.StatusBadRequest, CodeMissingField, "Missing required fields")
		return
	}
	if !models.KnownPlan(req.Plan) {
		respondError(c, http.StatusBadRequest, CodeMissingField, "Invalid plan")
		return
	}

	method := models.PaymentMethod(req.PaymentMethod)
	rule, ok := models.RuleFor(method)
	if !ok {
		respondError(c, http.StatusBadRequest, CodeMissingField, "Invalid payment method")
		return
	}

	if rule.RequiresScreenshot && fileHeader == nil {
		respondError(c, http.StatusBadRequest, CodeProofRequired, "Payment screenshot is required")
		return
	}
	if rule.RequiresUPI && (req.UPIID == "" || req.UPIRef == "") {
		respondError(c, http.StatusBadRequest, CodeProofRequired, "UPI ID and reference number are required")
		return
	}
	if rule.RequiresOrderID && req.PayPalOrderID == "" {
		respondError(c, http.StatusBadRequest, CodeProofRequired, "PayPal order id is required")
		return
	}

	confirmed := rule.SelfConfirming

	// Server-side check of the SDK capture, when credentials are present.
	// Without credentials the capture is trusted as-is.
	if rule.RequiresOrderID && h.paypal != nil && h.paypal.Configured() {
		verified, _, err := h.paypal.VerifyOrder(req.PayPalOrderID)
		if err != nil || !verified {
			log.Printf("WARN: PayPal verification rejected order '%s': %v", req.PayPalOrderID, err)
			respondError(c, http.StatusBadRequest, CodeProofRequired, "PayPal order could not be verified")
			return
		}
	}

	record := models.PaymentRecord{
		ID:            generatePaymentID(),
		Name:          req.Name,
		Email:         req.Email,
		Address:       req.Address,
		Plan:          req.Plan,
		PaymentMethod: method,
		UPIID:         req.UPIID,
		UPIRef:        req.UPIRef,
		PayPalOrderID: req.PayPalOrderID,
		Confirmed:     confirmed,
		CreatedAt:     time.Now().UTC(),
	}

	if fileHeader != nil {
		if fileHeader.Size > maxUploadBytes {
			respondError(c, http.StatusBadRequest, CodeProofRequired, "Screenshot too large (max 5MB)")
			return
		}
		name, url, err := h.saveProof(fileHeader)
		if err != nil {
			log.Printf("ERROR: Failed to store proof upload for %s: %v", req.Email, err)
			respondError(c, http.StatusInternalServerError, CodeStorageError, "Failed to store the uploaded screenshot")
			return
		}
		record.ScreenshotFilename = name
		record.ScreenshotURL = url
	}

	if err := h.store.Create(&record); err != nil {
		respondError(c, http.StatusInternalServerError, CodeStorageError, "Server error")
		return
	}

	log.Printf("INFO: Recorded %s payment %s for %s (plan %s, confirmed=%t)",
		record.PaymentMethod, record.ID, record.Email, record.Plan, record.Confirmed)
	c.JSON(http.StatusOK, gin.H{"ok": true, "payment": record})
}

func (h *PaymentHandler) saveProof(fh *multipart.FileHeader) (string, string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()
	return h.proofs.Save(fh.Filename, src)
}

// HandleListPayments returns every record, newest first.
func (h *PaymentHandler) HandleListPayments(c *gin.Context) {
	payments, err := h.store.List()
	if err != nil {
		log.Printf("ERROR: Failed listing payments: %v", err)
		respondError(c, http.StatusInternalServerError, CodeStorageError, "Server error")
		return
	}
	if payments == nil {
		payments = []models.PaymentRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "payments": payments})
}

func (h *PaymentHandler) HandleGetPayment(c *gin.Context) {
	rec, err := h.store.GetByID(c.Param("id"))
	if err == store.ErrNotFound {
		respondError(c, http.StatusNotFound, CodeNotFound, "Not found")
		return
	}
	if err != nil {
		log.Printf("ERROR: Failed fetching payment %s: %v", c.Param("id"), err)
		respondError(c, http.StatusInternalServerError, CodeStorageError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "payment": rec})
}

// HandleUserInfo is the self-service status lookup by email + plan.
func (h *PaymentHandler) HandleUserInfo(c *gin.Context) {
	email := c.Query("email")
	plan := c.Query("plan")
	if email == "" || plan == "" {
		respondError(c, http.StatusBadRequest, CodeMissingField, "Missing email or plan")
		return
	}

	rec, err := h.store.GetByEmailPlan(email, plan)
	if err == store.ErrNotFound {
		respondError(c, http.StatusNotFound, CodeNotFound, "Not found")
		return
	}
	if err != nil {
		log.Printf("ERROR: Failed looking up payment for %s/%s: %v", email, plan, err)
		respondError(c, http.StatusInternalServerError, CodeStorageError, "Server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "payment": rec})
}
