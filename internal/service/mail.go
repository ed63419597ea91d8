package service

import (
	"fmt"
	"net"
	"net/smtp"

	"github.com/AiraSunae/Blogify/internal/domain"
)

// Mailer relays contact-form messages to the configured mailbox.
type Mailer interface {
	SendContactMessage(name, email, phone, message string) error
}

// SMTPMailer sends mail over an authenticated SMTP session (STARTTLS when
// the server offers it). Messages go to the account's own mailbox.
type SMTPMailer struct {
	host     string
	port     string
	address  string
	password string
}

// NewSMTPMailer creates a mailer for the given SMTP account.
func NewSMTPMailer(host, port, address, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, address: address, password: password}
}

// SendContactMessage composes a plain-text message and relays it. Any
// connect/auth/send failure wraps domain.ErrMailRelay so the contact page
// can degrade gracefully instead of surfacing a server error.
func (m *SMTPMailer) SendContactMessage(name, email, phone, message string) error {
	body := fmt.Sprintf(
		"Subject: New Message\r\n\r\nName: %s\nEmail: %s\nPhone: %s\nMessage: %s\n",
		name, email, phone, message,
	)

	auth := smtp.PlainAuth("", m.address, m.password, m.host)
	addr := net.JoinHostPort(m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.address, []string{m.address}, []byte(body)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailRelay, err)
	}
	return nil
}
