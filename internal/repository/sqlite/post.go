package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AiraSunae/Blogify/internal/domain"
)

// PostRepository implements domain.PostRepository using SQLite.
type PostRepository struct {
	db *sql.DB
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, subtitle, image, content, author, release_date, author_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		post.Title, post.Subtitle, post.Image, post.Content, post.Author, post.Release, post.AuthorID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateTitle
		}
		return fmt.Errorf("insert post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	post.ID = id
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	post := &domain.Post{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, subtitle, image, content, author, release_date, author_id
		 FROM posts WHERE id = ?`, id,
	).Scan(&post.ID, &post.Title, &post.Subtitle, &post.Image, &post.Content,
		&post.Author, &post.Release, &post.AuthorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query post by id: %w", err)
	}
	return post, nil
}

// Update overwrites the mutable columns. release_date and author_id are
// stamped at creation and never rewritten.
func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, subtitle = ?, image = ?, content = ?, author = ?
		 WHERE id = ?`,
		post.Title, post.Subtitle, post.Image, post.Content, post.Author, post.ID,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateTitle
		}
		return fmt.Errorf("update post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the post row only. Comments referencing the post are left
// in place.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostRepository) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, subtitle, image, content, author, release_date, author_id FROM posts`)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Image,
			&post.Content, &post.Author, &post.Release, &post.AuthorID); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
