// internal/store/store.go
package store

import (
	"errors"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/models"
)

// ErrNotFound is returned when no payment matches the lookup.
var ErrNotFound = errors.New("payment not found")

// PaymentStore is the persistence capability for payment records. List is
// always newest-first by insertion.
type PaymentStore interface {
	Create(rec *models.PaymentRecord) error
	List() ([]models.PaymentRecord, error)
	GetByID(id string) (*models.PaymentRecord, error)
	// GetByEmailPlan compares email case-insensitively after trimming
	// whitespace; plan is an exact match. The first match in current
	// order wins.
	GetByEmailPlan(email, plan string) (*models.PaymentRecord, error)
	Update(rec *models.PaymentRecord) error
}
