package repository

import (
	"context"
	"time"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

// ArticleStore defines methods for article data access.
type ArticleStore interface {
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
}

// RevisionStore defines methods for revision data access.
type RevisionStore interface {
	GetByID(ctx context.Context, id string) (*domain.Revision, error)
	Create(ctx context.Context, rev *domain.Revision) error
	// Update persists the proposer-editable fields (reason and the after_*
	// set). Status is never written through this path.
	Update(ctx context.Context, rev *domain.Revision) error
	// UpdateStatus writes status, approver and processed time conditionally:
	// the row is only touched while its stored status still equals expected.
	// A concurrent transition that got there first surfaces as
	// domain.ErrInvalidStateTransition.
	UpdateStatus(ctx context.Context, rev *domain.Revision, expected domain.RevisionStatus) error
	Delete(ctx context.Context, id string) error
	ListByStatus(ctx context.Context, status domain.RevisionStatus, limit int) ([]domain.Revision, error)
	ListByProposer(ctx context.Context, proposerID string, limit int) ([]domain.Revision, error)
	ListByApprover(ctx context.Context, approverID string, limit int) ([]domain.Revision, error)
	CountDecidedBy(ctx context.Context, approverID string, since time.Time) (int, error)
	ListProcessedSince(ctx context.Context, since time.Time) ([]domain.Revision, error)
}

// UserDirectory defines lookups for proposer/approver display names and
// authority checks.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListApprovers(ctx context.Context, approvalGroup string) ([]domain.User, error)
}
