// internal/services/mailer.go
package services

import (
	"fmt"
	"log"
	"strconv"

	gomail "gopkg.in/gomail.v2"

	"github.com/ManasRanjan7894438047/Payment-Webpage/internal/config"
)

// Mailer dispatches the payment-confirmation notification. A failed dispatch
// never rolls back the confirmed flag; callers only report it.
type Mailer interface {
	SendConfirmation(to, name, plan string) error
}

// SMTPMailer sends plain-text mail over SMTP via gomail.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		log.Printf("WARN: Invalid SMTP_PORT %q, falling back to 587", cfg.SMTPPort)
		port = 587
	}
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: port,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

func (m *SMTPMailer) SendConfirmation(to, name, plan string) error {
	if m.host == "" {
		return fmt.Errorf("mailer is not configured (missing SMTP host)")
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour payment for the %s plan has been received and confirmed.\nThank you for subscribing!\n\nMy Payment Systems",
		name, plan,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Payment Received & Confirmed")
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send confirmation email to %s: %w", to, err)
	}

	log.Printf("INFO: Confirmation email sent to %s for plan '%s'", to, plan)
	return nil
}
