package service

import (
	"context"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

// DecisionRequest is one item of a bulk decision call.
type DecisionRequest struct {
	RevisionID string          `json:"revision_id"`
	Decision   domain.Decision `json:"decision"`
	Comment    string          `json:"comment,omitempty"`
}

// RevisionServiceInterface defines the revision workflow operations.
// Used for dependency injection and mocking in tests.
type RevisionServiceInterface interface {
	// Create opens a new draft revision owned by the proposer.
	Create(ctx context.Context, proposerID string, in domain.RevisionInput) (*domain.Revision, error)
	// Update mutates a draft revision's proposed fields.
	Update(ctx context.Context, revisionID, proposerID string, in domain.RevisionInput) (*domain.Revision, error)
	// Submit moves a draft revision into the approval workflow.
	Submit(ctx context.Context, revisionID, proposerID string) (*domain.Revision, error)
	// Withdraw takes a submitted revision back to draft.
	Withdraw(ctx context.Context, revisionID, proposerID string) (*domain.Revision, error)
	// Delete removes a draft revision permanently.
	Delete(ctx context.Context, revisionID, proposerID string) error
	// Decide records an approver's verdict on a submitted revision.
	Decide(ctx context.Context, revisionID, approverID string, decision domain.Decision, comment string) (*domain.Revision, error)
	// BulkDecide processes decisions sequentially, isolating per-item failures.
	BulkDecide(ctx context.Context, approverID string, reqs []DecisionRequest) []domain.DecisionOutcome
	// Diff computes the field-level diff of a revision against its article.
	Diff(ctx context.Context, revisionID string) (*domain.RevisionDiff, error)
	// DiffSummary computes only the aggregate summary of a revision's diff.
	DiffSummary(ctx context.Context, revisionID string) (*domain.DiffSummary, error)
	// CompareRevisions diffs two revisions of the same article against each
	// other and reports conflicting fields.
	CompareRevisions(ctx context.Context, idA, idB string) (*domain.RevisionComparison, error)
}

// QueueServiceInterface defines the approval queue operations.
// Used for dependency injection and mocking in tests.
type QueueServiceInterface interface {
	// BuildQueue ranks the submitted revisions an approver can decide.
	BuildQueue(ctx context.Context, approverID string, priorityFilter *domain.Priority, limit int) ([]domain.ApprovalQueueEntry, error)
	// Workload reduces an approver's queue into a capacity classification.
	Workload(ctx context.Context, approverID string) (*domain.WorkloadSummary, error)
	// Metrics reports workflow health over a trailing window of days.
	Metrics(ctx context.Context, daysBack int) (*domain.ApprovalMetrics, error)
}
