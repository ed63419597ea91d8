package handler

import (
	"net/http"

	"github.com/AiraSunae/Blogify/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Every route
// resolves the session identity; the guarded routes additionally pass
// through the access guard.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, blog *service.BlogService, mailer service.Mailer, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	blogHandler := NewBlogHandler(blog)
	pageHandler := NewPageHandler(mailer)

	open := func(h http.HandlerFunc) http.Handler {
		return WithIdentity(auth, h)
	}
	guarded := func(h http.HandlerFunc) http.Handler {
		return WithIdentity(auth, Guard(auth, h))
	}

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("GET /register", open(authHandler.HandleRegisterPage))
	mux.Handle("POST /register", open(authHandler.HandleRegister))
	mux.Handle("GET /login", open(authHandler.HandleLoginPage))
	mux.Handle("POST /login", open(authHandler.HandleLogin))
	mux.Handle("GET /logout", open(authHandler.HandleLogout))

	mux.Handle("GET /{$}", guarded(blogHandler.HandleHome))
	mux.Handle("GET /post/{id}", guarded(blogHandler.HandleShowPost))
	mux.Handle("POST /post/{id}", guarded(blogHandler.HandleAddComment))
	mux.Handle("GET /new-post", guarded(blogHandler.HandleNewPostPage))
	mux.Handle("POST /new-post", guarded(blogHandler.HandleCreatePost))
	mux.Handle("GET /edit-post/{id}", guarded(blogHandler.HandleEditPostPage))
	mux.Handle("POST /edit-post/{id}", guarded(blogHandler.HandleEditPost))
	mux.Handle("GET /delete/{id}", guarded(blogHandler.HandleDeletePost))

	mux.Handle("GET /about", open(pageHandler.HandleAbout))
	mux.Handle("GET /contact", open(pageHandler.HandleContactPage))
	mux.Handle("POST /contact", open(pageHandler.HandleContact))
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
