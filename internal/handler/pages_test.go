package handler_test

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestAboutPage_NoAuthRequired(t *testing.T) {
	srv, _, _, _ := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/about")
	if err != nil {
		t.Fatalf("GET /about: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestContact_SendsMessage(t *testing.T) {
	mailer := &fakeMailer{}
	srv, _, _, _ := newTestServer(t, mailer)

	resp, err := http.PostForm(srv.URL+"/contact", url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"phone":   {"555-0100"},
		"message": {"Hello there"},
	})
	if err != nil {
		t.Fatalf("POST /contact: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Successfully sent your message!") {
		t.Fatal("expected confirmation copy in response body")
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 relayed message, got %d", len(mailer.sent))
	}
	if !strings.Contains(mailer.sent[0], "Hello there") {
		t.Fatalf("expected message body relayed, got %q", mailer.sent[0])
	}
}

func TestContact_RelayFailureDegrades(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("connection refused")}
	srv, _, _, _ := newTestServer(t, mailer)

	resp, err := http.PostForm(srv.URL+"/contact", url.Values{
		"name":    {"Visitor"},
		"email":   {"visitor@example.com"},
		"message": {"Hello?"},
	})
	if err != nil {
		t.Fatalf("POST /contact: %v", err)
	}
	defer resp.Body.Close()

	// Not a 500: the form re-renders with a retry message.
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "try again later") {
		t.Fatal("expected retry copy in response body")
	}
}
