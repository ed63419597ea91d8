package domain

import "context"

// Post is a published blog post. Author carries the display name of the
// user who last created or edited the post, denormalized at write time.
// Release is a display string ("January 02, 2006") stamped once at creation.
type Post struct {
	ID       int64
	Title    string
	Subtitle string
	Image    string
	Content  string
	Author   string
	Release  string
	AuthorID int64
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	GetByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Post, error)
}
