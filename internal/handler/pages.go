package handler

import (
	"log/slog"
	"net/http"

	"github.com/AiraSunae/Blogify/internal/service"
)

// PageHandler serves the static pages and the contact form.
type PageHandler struct {
	mailer service.Mailer
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(mailer service.Mailer) *PageHandler {
	return &PageHandler{mailer: mailer}
}

// HandleAbout renders the about page.
// GET /about
func (h *PageHandler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, http.StatusOK, "about.html", &htmlData{Title: "About"})
}

// HandleContactPage renders the contact form.
// GET /contact
func (h *PageHandler) HandleContactPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, http.StatusOK, "contact.html", &htmlData{Title: "Contact"})
}

// HandleContact relays the contact form by mail. A relay failure re-renders
// the form with a retry message instead of surfacing a server error.
// POST /contact
func (h *PageHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	err := h.mailer.SendContactMessage(
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("phone"),
		r.PostFormValue("message"),
	)
	if err != nil {
		slog.Error("relay contact message", "error", err)
		renderHTML(w, r, http.StatusOK, "contact.html", &htmlData{
			Title:     "Contact",
			FormError: "Your message could not be sent. Please try again later.",
			FormData: map[string]string{
				"name":    r.PostFormValue("name"),
				"email":   r.PostFormValue("email"),
				"phone":   r.PostFormValue("phone"),
				"message": r.PostFormValue("message"),
			},
		})
		return
	}

	renderHTML(w, r, http.StatusOK, "contact.html", &htmlData{
		Title:   "Contact",
		MsgSent: true,
	})
}
