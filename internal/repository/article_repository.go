package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

// PostgresArticleStore implements ArticleStore using PostgreSQL.
type PostgresArticleStore struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleStore creates a new PostgresArticleStore.
func NewPostgresArticleStore(pool *pgxpool.Pool) *PostgresArticleStore {
	return &PostgresArticleStore{pool: pool}
}

const articleColumns = `id, title, category_id, keywords, important,
	publish_start, publish_end, target_audience, question, answer, comment,
	approval_group, created_at, updated_at`

// GetByID fetches an article by ID. Missing rows surface as
// domain.ErrArticleNotFound.
func (r *PostgresArticleStore) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	query := fmt.Sprintf(`SELECT %s FROM articles WHERE id = $1`, articleColumns)

	var a domain.Article
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.CategoryID, &a.Keywords, &a.Important,
		&a.PublishStart, &a.PublishEnd, &a.TargetAudience, &a.Question,
		&a.Answer, &a.Comment, &a.ApprovalGroup, &a.CreatedAt, &a.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("article %s: %w", id, domain.ErrArticleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", id, err)
	}
	return &a, nil
}

// Update persists every mutable article field.
func (r *PostgresArticleStore) Update(ctx context.Context, article *domain.Article) error {
	query := `
		UPDATE articles
		SET title = $2, category_id = $3, keywords = $4, important = $5,
			publish_start = $6, publish_end = $7, target_audience = $8,
			question = $9, answer = $10, comment = $11, updated_at = $12
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		article.ID, article.Title, article.CategoryID, article.Keywords,
		article.Important, article.PublishStart, article.PublishEnd,
		article.TargetAudience, article.Question, article.Answer,
		article.Comment, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update article %s: %w", article.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("article %s: %w", article.ID, domain.ErrArticleNotFound)
	}
	return nil
}
