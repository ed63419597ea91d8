package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AiraSunae/Blogify/internal/domain"
)

// CommentRepository implements domain.CommentRepository using SQLite.
type CommentRepository struct {
	db *sql.DB
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (body, author_address, author_name, author_id, post_id)
		 VALUES (?, ?, ?, ?, ?)`,
		comment.Body, comment.AuthorAddress, comment.AuthorName, comment.AuthorID, comment.PostID,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	comment.ID = id
	return nil
}

func (r *CommentRepository) ListAll(ctx context.Context) ([]domain.Comment, error) {
	return r.list(ctx,
		`SELECT id, body, author_address, author_name, author_id, post_id FROM comments`)
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	return r.list(ctx,
		`SELECT id, body, author_address, author_name, author_id, post_id
		 FROM comments WHERE post_id = ?`, postID)
}

func (r *CommentRepository) list(ctx context.Context, query string, args ...any) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Body, &c.AuthorAddress, &c.AuthorName, &c.AuthorID, &c.PostID); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
