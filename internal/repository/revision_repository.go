package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

// PostgresRevisionStore implements RevisionStore using PostgreSQL.
type PostgresRevisionStore struct {
	pool *pgxpool.Pool
}

// NewPostgresRevisionStore creates a new PostgresRevisionStore.
func NewPostgresRevisionStore(pool *pgxpool.Pool) *PostgresRevisionStore {
	return &PostgresRevisionStore{pool: pool}
}

const revisionColumns = `id, article_id, proposer_id, approver_id, status,
	reason, after_title, after_category_id, after_keywords, after_important,
	after_publish_start, after_publish_end, after_target_audience,
	after_question, after_answer, after_comment, created_at, updated_at,
	processed_at`

func scanRevision(row pgx.Row) (*domain.Revision, error) {
	var rev domain.Revision
	err := row.Scan(
		&rev.ID, &rev.ArticleID, &rev.ProposerID, &rev.ApproverID, &rev.Status,
		&rev.Reason, &rev.AfterTitle, &rev.AfterCategoryID, &rev.AfterKeywords,
		&rev.AfterImportant, &rev.AfterPublishStart, &rev.AfterPublishEnd,
		&rev.AfterTargetAudience, &rev.AfterQuestion, &rev.AfterAnswer,
		&rev.AfterComment, &rev.CreatedAt, &rev.UpdatedAt, &rev.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *PostgresRevisionStore) collect(ctx context.Context, query string, args ...any) ([]domain.Revision, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query revisions: %w", err)
	}
	defer rows.Close()

	var revs []domain.Revision
	for rows.Next() {
		rev, err := scanRevision(rows)
		if err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		revs = append(revs, *rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revisions: %w", err)
	}
	return revs, nil
}

// GetByID fetches a revision by ID. Missing rows surface as
// domain.ErrRevisionNotFound.
func (r *PostgresRevisionStore) GetByID(ctx context.Context, id string) (*domain.Revision, error) {
	query := fmt.Sprintf(`SELECT %s FROM revisions WHERE id = $1`, revisionColumns)

	rev, err := scanRevision(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("revision %s: %w", id, domain.ErrRevisionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get revision %s: %w", id, err)
	}
	return rev, nil
}

// Create inserts a new revision row.
func (r *PostgresRevisionStore) Create(ctx context.Context, rev *domain.Revision) error {
	query := `
		INSERT INTO revisions (
			id, article_id, proposer_id, approver_id, status, reason,
			after_title, after_category_id, after_keywords, after_important,
			after_publish_start, after_publish_end, after_target_audience,
			after_question, after_answer, after_comment,
			created_at, updated_at, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.pool.Exec(ctx, query,
		rev.ID, rev.ArticleID, rev.ProposerID, rev.ApproverID, rev.Status,
		rev.Reason, rev.AfterTitle, rev.AfterCategoryID, rev.AfterKeywords,
		rev.AfterImportant, rev.AfterPublishStart, rev.AfterPublishEnd,
		rev.AfterTargetAudience, rev.AfterQuestion, rev.AfterAnswer,
		rev.AfterComment, rev.CreatedAt, rev.UpdatedAt, rev.ProcessedAt,
	)
	if err != nil {
		return fmt.Errorf("create revision %s: %w", rev.ID, err)
	}
	return nil
}

// Update persists the proposer-editable fields. Status is deliberately not
// part of this statement; UpdateStatus owns every status write.
func (r *PostgresRevisionStore) Update(ctx context.Context, rev *domain.Revision) error {
	query := `
		UPDATE revisions
		SET reason = $2, after_title = $3, after_category_id = $4,
			after_keywords = $5, after_important = $6, after_publish_start = $7,
			after_publish_end = $8, after_target_audience = $9,
			after_question = $10, after_answer = $11, after_comment = $12,
			updated_at = $13
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		rev.ID, rev.Reason, rev.AfterTitle, rev.AfterCategoryID,
		rev.AfterKeywords, rev.AfterImportant, rev.AfterPublishStart,
		rev.AfterPublishEnd, rev.AfterTargetAudience, rev.AfterQuestion,
		rev.AfterAnswer, rev.AfterComment, rev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update revision %s: %w", rev.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("revision %s: %w", rev.ID, domain.ErrRevisionNotFound)
	}
	return nil
}

// UpdateStatus transitions a revision conditionally on its current status.
// Zero affected rows means another writer transitioned the row first; the
// caller sees that as a late-arriving invalid state transition.
func (r *PostgresRevisionStore) UpdateStatus(ctx context.Context, rev *domain.Revision, expected domain.RevisionStatus) error {
	query := `
		UPDATE revisions
		SET status = $2, approver_id = $3, processed_at = $4, updated_at = $5
		WHERE id = $1 AND status = $6`

	tag, err := r.pool.Exec(ctx, query,
		rev.ID, rev.Status, rev.ApproverID, rev.ProcessedAt, rev.UpdatedAt, expected,
	)
	if err != nil {
		return fmt.Errorf("update revision %s status: %w", rev.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("revision %s no longer %s: %w", rev.ID, expected, domain.ErrInvalidStateTransition)
	}
	return nil
}

// Delete removes a revision permanently.
func (r *PostgresRevisionStore) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM revisions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete revision %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("revision %s: %w", id, domain.ErrRevisionNotFound)
	}
	return nil
}

// ListByStatus returns revisions in the given status, oldest first, bounded
// by limit.
func (r *PostgresRevisionStore) ListByStatus(ctx context.Context, status domain.RevisionStatus, limit int) ([]domain.Revision, error) {
	query := fmt.Sprintf(`SELECT %s FROM revisions WHERE status = $1 ORDER BY created_at ASC LIMIT $2`, revisionColumns)
	return r.collect(ctx, query, status, limit)
}

// ListByProposer returns a proposer's revisions, newest first.
func (r *PostgresRevisionStore) ListByProposer(ctx context.Context, proposerID string, limit int) ([]domain.Revision, error) {
	query := fmt.Sprintf(`SELECT %s FROM revisions WHERE proposer_id = $1 ORDER BY created_at DESC LIMIT $2`, revisionColumns)
	return r.collect(ctx, query, proposerID, limit)
}

// ListByApprover returns revisions decided by an approver, newest first.
func (r *PostgresRevisionStore) ListByApprover(ctx context.Context, approverID string, limit int) ([]domain.Revision, error) {
	query := fmt.Sprintf(`SELECT %s FROM revisions WHERE approver_id = $1 ORDER BY processed_at DESC LIMIT $2`, revisionColumns)
	return r.collect(ctx, query, approverID, limit)
}

// CountDecidedBy counts the revisions an approver has processed since the
// given instant.
func (r *PostgresRevisionStore) CountDecidedBy(ctx context.Context, approverID string, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM revisions WHERE approver_id = $1 AND processed_at >= $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, approverID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count decided revisions: %w", err)
	}
	return count, nil
}

// ListProcessedSince returns revisions processed on or after the given
// instant, regardless of outcome.
func (r *PostgresRevisionStore) ListProcessedSince(ctx context.Context, since time.Time) ([]domain.Revision, error) {
	query := fmt.Sprintf(`SELECT %s FROM revisions WHERE processed_at >= $1 ORDER BY processed_at DESC`, revisionColumns)
	return r.collect(ctx, query, since)
}
