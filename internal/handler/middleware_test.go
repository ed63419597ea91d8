package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/AiraSunae/Blogify/internal/handler"
	"github.com/AiraSunae/Blogify/internal/repository/sqlite"
	"github.com/AiraSunae/Blogify/internal/service"
)

const testSecret = "test-secret-for-handler-tests-32ch!"

// fakeMailer records contact messages instead of relaying them.
type fakeMailer struct {
	err  error
	sent []string
}

func (m *fakeMailer) SendContactMessage(name, email, phone, message string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, fmt.Sprintf("%s <%s> %s: %s", name, email, phone, message))
	return nil
}

func newTestServices(t *testing.T) (*service.AuthService, *service.BlogService, *sqlite.DB) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return service.NewAuthService(db.Users(), testSecret),
		service.NewBlogService(db.Posts(), db.Comments()),
		db
}

func newTestServer(t *testing.T, mailer service.Mailer) (*httptest.Server, *service.AuthService, *service.BlogService, *sqlite.DB) {
	t.Helper()
	auth, blog, db := newTestServices(t)
	if mailer == nil {
		mailer = &fakeMailer{}
	}

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, blog, mailer, false)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, auth, blog, db
}

func sessionCookie(t *testing.T, auth *service.AuthService, address string) *http.Cookie {
	t.Helper()
	user, err := auth.Login(context.Background(), address, "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	token, err := auth.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	return &http.Cookie{Name: "session", Value: token}
}

func TestGuard_ValidSession(t *testing.T) {
	auth, _, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "Valid User", "valid@example.com", "password123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	var gotName string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := handler.UserFromContext(r.Context()); user != nil {
			gotName = user.Name
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, auth, "valid@example.com"))
	w := httptest.NewRecorder()

	handler.WithIdentity(auth, handler.Guard(auth, inner)).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotName != "Valid User" {
		t.Fatalf("expected user 'Valid User', got %q", gotName)
	}
}

func TestGuard_Anonymous(t *testing.T) {
	auth, _, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.WithIdentity(auth, handler.Guard(auth, inner)).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestGuard_InvalidToken(t *testing.T) {
	auth, _, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "invalid.jwt.token"})
	w := httptest.NewRecorder()

	handler.WithIdentity(auth, handler.Guard(auth, inner)).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestGuard_UserDeletedAfterIssuing(t *testing.T) {
	auth, _, db := newTestServices(t)
	ctx := context.Background()

	user, err := auth.Register(ctx, "Doomed", "doomed@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	cookie := sessionCookie(t, auth, "doomed@example.com")

	// The session stays signed and unexpired; only the backing row goes away.
	if _, err := db.SqlDB.ExecContext(ctx, "DELETE FROM users WHERE id = ?", user.ID); err != nil {
		t.Fatalf("delete user row: %v", err)
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()

	handler.WithIdentity(auth, handler.Guard(auth, inner)).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for deleted user, got %d", w.Code)
	}
}

func TestWithIdentity_AnonymousProceeds(t *testing.T) {
	auth, _, _ := newTestServices(t)

	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if user := handler.UserFromContext(r.Context()); user != nil {
			t.Fatalf("expected anonymous identity, got %+v", user)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	w := httptest.NewRecorder()

	handler.WithIdentity(auth, inner).ServeHTTP(w, req)

	if !called {
		t.Fatal("expected unguarded handler to run for anonymous visitor")
	}
}
