package handlers

import (
	"bytes"
	"io"
	"mime/multipart"
	"testing"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/models"
	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/store"
)

// mockStore implements store.PaymentStore with overridable function fields.
type mockStore struct {
	CreateFunc         func(rec *models.PaymentRecord) error
	ListFunc           func() ([]models.PaymentRecord, error)
	GetByIDFunc        func(id string) (*models.PaymentRecord, error)
	GetByEmailPlanFunc func(email, plan string) (*models.PaymentRecord, error)
	UpdateFunc         func(rec *models.PaymentRecord) error

	created []models.PaymentRecord
	updated []models.PaymentRecord
}

func (m *mockStore) Create(rec *models.PaymentRecord) error {
	m.created = append(m.created, *rec)
	if m.CreateFunc != nil {
		return m.CreateFunc(rec)
	}
	return nil
}

func (m *mockStore) List() ([]models.PaymentRecord, error) {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil, nil
}

func (m *mockStore) GetByID(id string) (*models.PaymentRecord, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, store.ErrNotFound
}

func (m *mockStore) GetByEmailPlan(email, plan string) (*models.PaymentRecord, error) {
	if m.GetByEmailPlanFunc != nil {
		return m.GetByEmailPlanFunc(email, plan)
	}
	return nil, store.ErrNotFound
}

func (m *mockStore) Update(rec *models.PaymentRecord) error {
	m.updated = append(m.updated, *rec)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(rec)
	}
	return nil
}

// mockProofs implements storage.ProofStorage without touching disk.
type mockProofs struct {
	SaveFunc func(originalName string, r io.Reader) (string, string, error)
}

func (m *mockProofs) Save(originalName string, r io.Reader) (string, string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(originalName, r)
	}
	return "stored.png", "/uploads/stored.png", nil
}

// mockMailer records SendConfirmation calls.
type mockMailer struct {
	SendFunc func(to, name, plan string) error
	sent     [][3]string
}

func (m *mockMailer) SendConfirmation(to, name, plan string) error {
	m.sent = append(m.sent, [3]string{to, name, plan})
	if m.SendFunc != nil {
		return m.SendFunc(to, name, plan)
	}
	return nil
}

// multipartBody builds a multipart form with the given fields and an
// optional screenshot file.
func multipartBody(t *testing.T, fields map[string]string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField(%s): %v", k, err)
		}
	}
	if fileContent != nil {
		fw, err := w.CreateFormFile("screenshot", "proof.png")
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, w.FormDataContentType()
}
