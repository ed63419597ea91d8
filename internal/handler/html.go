package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/AiraSunae/Blogify/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

const flashCookieName = "flash"

// htmlData is the view model handed to every page template.
type htmlData struct {
	Title       string
	CurrentUser *domain.User
	Flash       string
	FormError   string
	FormData    map[string]string
	Posts       []domain.Post
	Post        *domain.Post
	Comments    []domain.Comment
	IsEdit      bool
	MsgSent     bool
}

// renderHTML renders the base layout with the given page file, popping any
// pending flash message into the view model.
func renderHTML(w http.ResponseWriter, r *http.Request, status int, page string, data *htmlData) {
	if data == nil {
		data = &htmlData{}
	}
	if data.CurrentUser == nil {
		data.CurrentUser = UserFromContext(r.Context())
	}
	if data.FormData == nil {
		data.FormData = map[string]string{}
	}
	if data.Flash == "" {
		data.Flash = popFlash(w, r)
	}

	ts, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+page)
	if err != nil {
		slog.Error("parse templates", "page", page, "error", err)
		ServerError(w, err)
		return
	}

	// Render to a buffer first so a template error never produces a
	// half-written page.
	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		slog.Error("execute template", "page", page, "error", err)
		ServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// setFlash stores a one-shot message shown on the next rendered page.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

// ServerError logs the error and responds with a generic 500.
func ServerError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// NotFound responds with a 404.
func NotFound(w http.ResponseWriter) {
	http.Error(w, "Not Found", http.StatusNotFound)
}

// Forbidden responds with a 403.
func Forbidden(w http.ResponseWriter) {
	http.Error(w, "Forbidden", http.StatusForbidden)
}
