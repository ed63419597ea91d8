package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/AiraSunae/Blogify/internal/domain"
	"github.com/AiraSunae/Blogify/internal/service"
)

// BlogHandler handles post listing, viewing, authoring, and comments.
type BlogHandler struct {
	blog *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blog *service.BlogService) *BlogHandler {
	return &BlogHandler{blog: blog}
}

// HandleHome renders the post listing.
// GET /
func (h *BlogHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	posts, err := h.blog.ListPosts(r.Context())
	if err != nil {
		slog.Error("list posts", "error", err)
		ServerError(w, err)
		return
	}

	renderHTML(w, r, http.StatusOK, "index.html", &htmlData{
		Title: "All Posts",
		Posts: posts,
	})
}

// HandleShowPost renders a single post with the comment section.
// GET /post/{id}
func (h *BlogHandler) HandleShowPost(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}
	h.renderPost(w, r, http.StatusOK, post, "")
}

// HandleAddComment attaches a comment to a post. Anonymous visitors are
// bounced to the login page with a flash rather than denied outright.
// POST /post/{id}
func (h *BlogHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	user := UserFromContext(r.Context())
	_, err := h.blog.AddComment(r.Context(), user, post.ID, r.PostFormValue("content"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			setFlash(w, "You need to login or register to comment.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
		case errors.Is(err, domain.ErrInvalidInput):
			h.renderPost(w, r, http.StatusUnprocessableEntity, post, err.Error())
		default:
			slog.Error("add comment", "error", err)
			ServerError(w, err)
		}
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", post.ID), http.StatusSeeOther)
}

// HandleNewPostPage renders the post creation form.
// GET /new-post
func (h *BlogHandler) HandleNewPostPage(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, r, http.StatusOK, "make-post.html", &htmlData{Title: "New Post"})
}

// HandleCreatePost publishes a new post authored by the session user.
// POST /new-post
func (h *BlogHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	fields := postFieldsFromForm(r)

	_, err := h.blog.CreatePost(r.Context(), UserFromContext(r.Context()), fields)
	if err != nil {
		h.handlePostFormError(w, r, err, fields, false, 0)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleEditPostPage renders the editor prefilled with the post's fields.
// GET /edit-post/{id}
func (h *BlogHandler) HandleEditPostPage(w http.ResponseWriter, r *http.Request) {
	post, ok := h.loadPost(w, r)
	if !ok {
		return
	}

	renderHTML(w, r, http.StatusOK, "make-post.html", &htmlData{
		Title:  "Edit Post",
		IsEdit: true,
		Post:   post,
		FormData: map[string]string{
			"title":    post.Title,
			"subtitle": post.Subtitle,
			"image":    post.Image,
			"content":  post.Content,
		},
	})
}

// HandleEditPost overwrites a post's fields, re-stamping the author display
// name to the editing user. The release date never changes.
// POST /edit-post/{id}
func (h *BlogHandler) HandleEditPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		NotFound(w)
		return
	}

	fields := postFieldsFromForm(r)

	post, err := h.blog.EditPost(r.Context(), UserFromContext(r.Context()), id, fields)
	if err != nil {
		h.handlePostFormError(w, r, err, fields, true, id)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/post/%d", post.ID), http.StatusSeeOther)
}

// HandleDeletePost removes a post. Its comments stay in storage.
// GET /delete/{id}
func (h *BlogHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		NotFound(w)
		return
	}

	if err := h.blog.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			NotFound(w)
			return
		}
		slog.Error("delete post", "error", err)
		ServerError(w, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BlogHandler) loadPost(w http.ResponseWriter, r *http.Request) (*domain.Post, bool) {
	id, err := pathID(r)
	if err != nil {
		NotFound(w)
		return nil, false
	}

	post, err := h.blog.GetPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			NotFound(w)
			return nil, false
		}
		slog.Error("get post", "error", err)
		ServerError(w, err)
		return nil, false
	}
	return post, true
}

func (h *BlogHandler) renderPost(w http.ResponseWriter, r *http.Request, status int, post *domain.Post, formError string) {
	// The comment section shows the full comment table, not just this
	// post's comments; see DESIGN.md before changing this.
	comments, err := h.blog.ListComments(r.Context())
	if err != nil {
		slog.Error("list comments", "error", err)
		ServerError(w, err)
		return
	}

	renderHTML(w, r, status, "post.html", &htmlData{
		Title:     post.Title,
		Post:      post,
		Comments:  comments,
		FormError: formError,
	})
}

func (h *BlogHandler) handlePostFormError(w http.ResponseWriter, r *http.Request, err error, fields service.PostFields, isEdit bool, id int64) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		NotFound(w)
	case errors.Is(err, domain.ErrDuplicateTitle), errors.Is(err, domain.ErrInvalidInput):
		title := "New Post"
		if isEdit {
			title = "Edit Post"
		}
		message := err.Error()
		if errors.Is(err, domain.ErrDuplicateTitle) {
			message = "A post with that title already exists."
		}
		renderHTML(w, r, http.StatusUnprocessableEntity, "make-post.html", &htmlData{
			Title:     title,
			IsEdit:    isEdit,
			Post:      &domain.Post{ID: id},
			FormError: message,
			FormData: map[string]string{
				"title":    fields.Title,
				"subtitle": fields.Subtitle,
				"image":    fields.Image,
				"content":  fields.Content,
			},
		})
	default:
		slog.Error("save post", "error", err)
		ServerError(w, err)
	}
}

func postFieldsFromForm(r *http.Request) service.PostFields {
	return service.PostFields{
		Title:    r.PostFormValue("title"),
		Subtitle: r.PostFormValue("subtitle"),
		Image:    r.PostFormValue("image"),
		Content:  r.PostFormValue("content"),
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
