package domain

import "context"

// Comment is a reader comment on a post. AuthorName and AuthorAddress are
// denormalized copies of the commenting user's fields at creation time.
// Comments are never edited or deleted once written.
type Comment struct {
	ID            int64
	Body          string
	AuthorAddress string
	AuthorName    string
	AuthorID      int64
	PostID        int64
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	// ListAll returns every comment in storage order.
	ListAll(ctx context.Context) ([]Comment, error)
	// ListByPost returns the comments attached to one post.
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
}
