package service_test

import (
	"errors"
	"testing"

	"github.com/AiraSunae/Blogify/internal/domain"
	"github.com/AiraSunae/Blogify/internal/service"
)

func TestSMTPMailer_ConnectFailureWrapsErrMailRelay(t *testing.T) {
	// Port 1 on loopback has nothing listening; the dial fails immediately.
	mailer := service.NewSMTPMailer("127.0.0.1", "1", "blog@example.com", "app-password")

	err := mailer.SendContactMessage("Visitor", "visitor@example.com", "555-0100", "hello")
	if err == nil {
		t.Fatal("expected send to an unreachable relay to fail")
	}
	if !errors.Is(err, domain.ErrMailRelay) {
		t.Fatalf("expected ErrMailRelay, got %v", err)
	}
}
