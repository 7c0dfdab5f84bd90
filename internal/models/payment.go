// internal/models/payment.go
package models

import (
	"time"
)

// PaymentMethod identifies how the payer claims to have paid.
type PaymentMethod string

const (
	MethodPayPalScreenshot PaymentMethod = "paypal-screenshot"
	MethodPayPalButton     PaymentMethod = "paypal-button"
	MethodUPI              PaymentMethod = "upi"
)

// MethodRule declares what counts as sufficient proof for a payment method.
// SelfConfirming methods (PayPal SDK capture) create the record already
// confirmed; everything else waits for an admin.
type MethodRule struct {
	RequiresScreenshot bool
	RequiresUPI        bool
	RequiresOrderID    bool
	SelfConfirming     bool
}

var methodRules = map[PaymentMethod]MethodRule{
	MethodPayPalScreenshot: {RequiresScreenshot: true},
	MethodPayPalButton:     {RequiresOrderID: true, SelfConfirming: true},
	MethodUPI:              {RequiresUPI: true},
}

// RuleFor returns the proof rule for a payment method. The second return
// value is false for unknown methods.
func RuleFor(m PaymentMethod) (MethodRule, bool) {
	rule, ok := methodRules[m]
	return rule, ok
}

// PlanPrices maps the subscription plan identifiers to their USD price.
var PlanPrices = map[string]float64{
	"monthly":  30.0,
	"annually": 200.0,
}

// KnownPlan reports whether plan is one of the offered subscription plans.
func KnownPlan(plan string) bool {
	_, ok := PlanPrices[plan]
	return ok
}

// PaymentRecord is one payment submission and its verification state.
// JSON field names are the wire names the frontend expects.
type PaymentRecord struct {
	ID                 string        `json:"id" gorm:"primaryKey;size:64"`
	Name               string        `json:"name" gorm:"size:255"`
	Email              string        `json:"email" gorm:"size:255;index"`
	Address            string        `json:"address" gorm:"size:512"`
	Plan               string        `json:"plan" gorm:"size:32;index"`
	PaymentMethod      PaymentMethod `json:"paymentMethod" gorm:"size:32"`
	UPIID              string        `json:"upiId,omitempty" gorm:"column:upi_id;size:128"`
	UPIRef             string        `json:"upiRef,omitempty" gorm:"column:upi_ref;size:128"`
	PayPalOrderID      string        `json:"paypalOrderId,omitempty" gorm:"column:paypal_order_id;size:64"`
	ScreenshotFilename string        `json:"screenshotFilename,omitempty" gorm:"size:255"`
	ScreenshotURL      string        `json:"screenshotUrl,omitempty" gorm:"size:512"`
	Confirmed          bool          `json:"confirmed"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// TableName keeps the gorm table name aligned with the JSON data file.
func (PaymentRecord) TableName() string {
	return "payments"
}
