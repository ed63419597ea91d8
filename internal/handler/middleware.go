package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AiraSunae/Blogify/internal/domain"
	"github.com/AiraSunae/Blogify/internal/service"
)

type contextKey string

const userContextKey contextKey = "user"

const sessionCookieName = "session"

// UserFromContext extracts the resolved identity from the request context.
// Returns nil for anonymous requests.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// WithIdentity resolves the session cookie to a user on every request and
// injects it into the context. A missing cookie, an invalid token, or a
// token for a user no longer in storage all resolve to anonymous; the
// request always proceeds.
func WithIdentity(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := resolveIdentity(r, auth); user != nil {
			ctx := context.WithValue(r.Context(), userContextKey, user)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// Guard protects a route. The identity must be non-anonymous and its address
// must survive a live re-query of all registered addresses; anything else is
// a 403 and the wrapped handler never runs.
func Guard(auth *service.AuthService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := auth.Authorize(r.Context(), UserFromContext(r.Context()))
		if err != nil {
			if !errors.Is(err, domain.ErrForbidden) {
				slog.Error("authorize request", "error", err)
			}
			Forbidden(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// resolveIdentity re-reads the user from storage on each call; sessions are
// never trusted as a cache.
func resolveIdentity(r *http.Request, auth *service.AuthService) *domain.User {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}

	userID, err := auth.ValidateToken(cookie.Value)
	if err != nil {
		return nil
	}

	user, err := auth.GetUserByID(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.Error("load session user", "error", err)
		}
		return nil
	}

	return user
}

// setSessionCookie attaches the session token to the response.
func setSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 24 hours, matches token expiry
	})
}

// clearSessionCookie expires the session cookie.
func clearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
