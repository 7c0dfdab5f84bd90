package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/models"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/store"
)

func newSubmitRouter(ms *mockStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPaymentHandler(ms, &mockProofs{}, nil)
	r := gin.New()
	r.POST("/api/payments", h.HandleSubmitPayment)
	r.GET("/api/payments/:id", h.HandleGetPayment)
	r.GET("/api/user-info", h.HandleUserInfo)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func TestSubmitMissingNameRejected(t *testing.T) {
	ms := &mockStore{}
	r := newSubmitRouter(ms)

	buf, ctype := multipartBody(t, map[string]string{
		"email":         "a@b.com",
		"address":       "Somewhere 1",
		"plan":          "monthly",
		"paymentMethod": "upi",
		"upiId":         "x@upi",
		"upiRef":        "123",
	}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", buf)
	req.Header.Set("Content-Type", ctype)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decodeBody(t, w)
	if body["ok"] != false || body["message"] != "Missing required fields" {
		t.Errorf("unexpected body: %v", body)
	}
	if len(ms.created) != 0 {
		t.Errorf("record was created despite validation failure")
	}
}

func TestSubmitUPIMissingRefRejected(t *testing.T) {
	ms := &mockStore{}
	r := newSubmitRouter(ms)

	buf, ctype := multipartBody(t, map[string]string{
		"name":          "Test User",
		"email":         "a@b.com",
		"address":       "Somewhere 1",
		"plan":          "monthly",
		"paymentMethod": "upi",
		"upiId":         "x@upi",
	}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", buf)
	req.Header.Set("Content-Type", ctype)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != CodeProofRequired {
		t.Errorf("code = %v, want %s", body["code"], CodeProofRequired)
	}
	if len(ms.created) != 0 {
		t.Errorf("record was created despite missing upiRef")
	}
}

func TestSubmitScreenshotMethodWithoutFileRejected(t *testing.T) {
	ms := &mockStore{}
	r := newSubmitRouter(ms)

	buf, ctype := multipartBody(t, map[string]string{
		"name":          "Test User",
		"email":         "a@b.com",
		"address":       "Somewhere 1",
		"plan":          "annually",
		"paymentMethod": "paypal-screenshot",
	}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", buf)
	req.Header.Set("Content-Type", ctype)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decodeBody(t, w); body["code"] != CodeProofRequired {
		t.Errorf("code = %v, want %s", body["code"], CodeProofRequired)
	}
	if len(ms.created) != 0 {
		t.Errorf("record was created despite missing screenshot")
	}
}

func TestSubmitUPISucceedsPending(t *testing.T) {
	ms := &mockStore{}
	r := newSubmitRouter(ms)

	buf, ctype := multipartBody(t, map[string]string{
		"name":          "Test User",
		"email":         "a@b.com",
		"address":       "Somewhere 1",
		"plan":          "monthly",
		"paymentMethod": "upi",
		"upiId":         "x@upi",
		"upiRef":        "123",
	}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/payments", buf)
	req.Header.Set("Content-Type", ctype)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	payment := body["payment"].(map[string]interface{})
	if payment["confirmed"] != false {
		t.Error("upi submission must start unconfirmed")
	}
	if payment["upiId"] != "x@upi" {
		t.Errorf("upiId = %v", payment["upiId"])
	}
	if payment["id"] == "" || payment["id"] == nil {
		t.Error("expected an assigned id")
	}
	if len(ms.created) != 1 {
		t.Fatalf("expected 1 created record, got %d", len(ms.created))
	}
}

func TestSubmitScreenshotStoresProof(t *testing.T) {
	ms := &mockStore{}
	r := newSubmitRouter(ms)

	buf, ctype := multipartBody(t, map[string]string{
		"name":          "Test User",
		"email":         "a@b.com",
		"address":       "Somewhere 1",
		"plan":          "annually",
		"paymentMethod": "paypal-screenshot",
	}, []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/payments", buf)
	req.Header.Set("Content-Type", ctype)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if len(ms.created) != 1 {
		t.Fatalf("expected 1 created record, got %d", len(ms.created))
	}
	rec := ms.created[0]
	if rec.ScreenshotFilename != "stored.png" || rec.ScreenshotURL != "/uploads/stored.png" {
		t.Errorf("proof not attached: %+v", rec)
	}
	if rec.Confirmed {
		t.Error("screenshot submission must start unconfirmed")
	}
}

func TestSubmitPayPalButtonSelfConfirms(t *testing.T) {
	ms := &mockStore{}
	r := newSubmitRouter(ms)

	payload, _ := json.Marshal(map[string]string{
		"name":          "Test User",
		"email":         "a@b.com",
		"address":       "Somewhere 1",
		"plan":          "annually",
		"paymentMethod": "paypal-button",
		"paypalOrderId": "ORDER-123",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	if len(ms.created) != 1 {
		t.Fatalf("expected 1 created record, got %d", len(ms.created))
	}
	rec := ms.created[0]
	if !rec.Confirmed {
		t.Error("paypal-button submission must be created confirmed")
	}
	if rec.PayPalOrderID != "ORDER-123" {
		t.Errorf("paypalOrderId = %s", rec.PayPalOrderID)
	}
}

func TestSubmitPayPalButtonWithoutOrderIDRejected(t *testing.T) {
	ms := &mockStore{}
	r := newSubmitRouter(ms)

	payload, _ := json.Marshal(map[string]string{
		"name":          "Test User",
		"email":         "a@b.com",
		"address":       "Somewhere 1",
		"plan":          "annually",
		"paymentMethod": "paypal-button",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(ms.created) != 0 {
		t.Errorf("record was created despite missing order id")
	}
}

func TestSubmitIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := generatePaymentID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGetPaymentNotFound(t *testing.T) {
	r := newSubmitRouter(&mockStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/payments/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUserInfoMissingParams(t *testing.T) {
	r := newSubmitRouter(&mockStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/user-info?email=a@b.com", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUserInfoFound(t *testing.T) {
	ms := &mockStore{
		GetByEmailPlanFunc: func(email, plan string) (*models.PaymentRecord, error) {
			if email == " A@B.com " && plan == "monthly" {
				return &models.PaymentRecord{ID: "1", Email: "a@b.com", Plan: "monthly"}, nil
			}
			return nil, store.ErrNotFound
		},
	}
	r := newSubmitRouter(ms)

	req := httptest.NewRequest(http.MethodGet, "/api/user-info?email=%20A@B.com%20&plan=monthly", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
}
