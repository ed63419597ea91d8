package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AiraSunae/Blogify/internal/domain"
	"github.com/AiraSunae/Blogify/internal/service"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// HandleRegisterPage renders the registration form.
// GET /register
func (h *AuthHandler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, http.StatusOK, "register.html", &htmlData{Title: "Register"})
}

// HandleRegister processes the registration form. A duplicate address sends
// the visitor to the login page with a flash message; success logs the new
// user straight in.
// POST /register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("name")
	address := r.PostFormValue("address")
	password := r.PostFormValue("password")

	user, err := h.auth.Register(r.Context(), name, address, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateAddress):
			setFlash(w, "There is already an account associated with that address. Please login!")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.Is(err, domain.ErrInvalidInput):
			renderHTML(w, r, http.StatusUnprocessableEntity, "register.html", &htmlData{
				Title:     "Register",
				FormError: err.Error(),
				FormData:  map[string]string{"name": name, "address": address},
			})
		default:
			slog.Error("register user", "error", err)
			ServerError(w, err)
		}
		return
	}

	h.establishSession(w, r, user)
}

// HandleLoginPage renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, http.StatusOK, "login.html", &htmlData{Title: "Login"})
}

// HandleLogin verifies credentials and establishes a session. An unknown
// address and a wrong password get distinct flash copy, both bouncing back
// to the login form.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	address := r.PostFormValue("address")
	password := r.PostFormValue("password")

	user, err := h.auth.Login(r.Context(), address, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSuchAddress):
			setFlash(w, "This address does not exist.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.Is(err, domain.ErrBadPassword):
			setFlash(w, "Incorrect password. Please try again!")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		default:
			slog.Error("login user", "error", err)
			ServerError(w, err)
		}
		return
	}

	h.establishSession(w, r, user)
}

// HandleLogout clears the session cookie.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.cookieSecure)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *AuthHandler) establishSession(w http.ResponseWriter, r *http.Request, user *domain.User) {
	token, err := h.auth.IssueToken(user)
	if err != nil {
		slog.Error("issue session token", "error", err)
		ServerError(w, err)
		return
	}

	setSessionCookie(w, token, h.cookieSecure)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
