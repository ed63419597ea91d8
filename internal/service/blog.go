package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/AiraSunae/Blogify/internal/domain"
)

// releaseFormat renders dates as "January 02, 2006". Release is a display
// string stamped once at creation; edits never refresh it.
const releaseFormat = "January 02, 2006"

// PostFields carries the user-editable fields of a post form.
type PostFields struct {
	Title    string
	Subtitle string
	Image    string
	Content  string
}

// BlogService handles post and comment operations, stamping authorship from
// the session identity.
type BlogService struct {
	posts    domain.PostRepository
	comments domain.CommentRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(posts domain.PostRepository, comments domain.CommentRepository) *BlogService {
	return &BlogService{posts: posts, comments: comments}
}

// CreatePost validates the fields and publishes a new post. The author name
// and id come from the creating user; the release date is stamped from
// server time.
func (s *BlogService) CreatePost(ctx context.Context, user *domain.User, fields PostFields) (*domain.Post, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := validatePostFields(fields); err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:    fields.Title,
		Subtitle: fields.Subtitle,
		Image:    fields.Image,
		Content:  fields.Content,
		Author:   user.Name,
		Release:  time.Now().Format(releaseFormat),
		AuthorID: user.ID,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// EditPost overwrites the editable fields of an existing post and re-stamps
// the author display name to the editing user's current name. The original
// author id and release date stay as they were, even when the editor is a
// different user than the creator.
func (s *BlogService) EditPost(ctx context.Context, user *domain.User, id int64, fields PostFields) (*domain.Post, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := validatePostFields(fields); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = fields.Title
	post.Subtitle = fields.Subtitle
	post.Image = fields.Image
	post.Content = fields.Content
	post.Author = user.Name

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post. Comments attached to it are left in storage.
func (s *BlogService) DeletePost(ctx context.Context, id int64) error {
	return s.posts.Delete(ctx, id)
}

// GetPost returns a post by id.
func (s *BlogService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	return s.posts.GetByID(ctx, id)
}

// ListPosts returns every post in storage order.
func (s *BlogService) ListPosts(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

// AddComment attaches a comment to a post, denormalizing the commenting
// user's name and address. Anonymous identities are rejected with
// ErrUnauthorized; the handler turns that into a redirect to login.
func (s *BlogService) AddComment(ctx context.Context, user *domain.User, postID int64, body string) (*domain.Comment, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if body == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrInvalidInput)
	}

	comment := &domain.Comment{
		Body:          body,
		AuthorAddress: user.Address,
		AuthorName:    user.Name,
		AuthorID:      user.ID,
		PostID:        postID,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments returns every comment in storage. The post page shows this
// full listing rather than filtering by post, matching the platform's
// long-standing behavior; see DESIGN.md.
func (s *BlogService) ListComments(ctx context.Context) ([]domain.Comment, error) {
	return s.comments.ListAll(ctx)
}

// CommentsForPost returns only the comments attached to one post.
func (s *BlogService) CommentsForPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

func validatePostFields(fields PostFields) error {
	if fields.Title == "" || fields.Subtitle == "" || fields.Image == "" || fields.Content == "" {
		return fmt.Errorf("%w: title, subtitle, image URL, and content are required", domain.ErrInvalidInput)
	}

	u, err := url.Parse(fields.Image)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: image must be a valid URL", domain.ErrInvalidInput)
	}
	return nil
}
