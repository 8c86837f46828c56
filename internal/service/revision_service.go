package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ekrsw/knowledge-app-sub000/internal/diff"
	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/logger"
	"github.com/ekrsw/knowledge-app-sub000/internal/metrics"
	"github.com/ekrsw/knowledge-app-sub000/internal/notification"
	"github.com/ekrsw/knowledge-app-sub000/internal/repository"
	"github.com/ekrsw/knowledge-app-sub000/internal/validator"
)

// RevisionService drives the revision lifecycle: draft editing, submission,
// withdrawal, approval decisions and the diff views. It is stateless; the
// only side effects are the store writes it performs and the best-effort
// notifications it queues.
type RevisionService struct {
	articles  repository.ArticleStore
	revisions repository.RevisionStore
	users     repository.UserDirectory
	notifier  notification.Sink
	validator *validator.Validator
}

// NewRevisionService creates a new RevisionService.
func NewRevisionService(
	articles repository.ArticleStore,
	revisions repository.RevisionStore,
	users repository.UserDirectory,
	notifier notification.Sink,
	v *validator.Validator,
) *RevisionService {
	return &RevisionService{
		articles:  articles,
		revisions: revisions,
		users:     users,
		notifier:  notifier,
		validator: v,
	}
}

// Create opens a new draft revision owned by the proposer.
func (s *RevisionService) Create(ctx context.Context, proposerID string, in domain.RevisionInput) (*domain.Revision, error) {
	if err := s.validator.ValidateRevisionInput(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if _, err := s.articles.GetByID(ctx, in.ArticleID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rev := &domain.Revision{
		ID:         uuid.New().String(),
		ArticleID:  in.ArticleID,
		ProposerID: proposerID,
		Status:     domain.StatusDraft,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	rev.ApplyInput(in)

	if err := s.revisions.Create(ctx, rev); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "revision created",
		slog.String("revision_id", rev.ID),
		slog.String("article_id", rev.ArticleID),
		slog.String("proposer_id", proposerID))
	return rev, nil
}

// Update mutates a draft revision's proposed fields. Only the proposer may
// edit, only while the revision is a draft, and status is untouchable
// through this path.
func (s *RevisionService) Update(ctx context.Context, revisionID, proposerID string, in domain.RevisionInput) (*domain.Revision, error) {
	rev, err := s.revisions.GetByID(ctx, revisionID)
	if err != nil {
		return nil, err
	}
	if rev.ProposerID != proposerID {
		return nil, fmt.Errorf("revision %s is not owned by %s: %w", revisionID, proposerID, domain.ErrPermissionDenied)
	}
	if rev.Status != domain.StatusDraft {
		return nil, fmt.Errorf("update revision in status %s: %w", rev.Status, domain.ErrInvalidStateTransition)
	}

	// Retargeting is not supported; validate against the stored article.
	in.ArticleID = rev.ArticleID
	if err := s.validator.ValidateRevisionInput(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	rev.ApplyInput(in)
	rev.UpdatedAt = time.Now().UTC()
	if err := s.revisions.Update(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// Submit moves a draft revision into the approval workflow and notifies the
// eligible approvers.
func (s *RevisionService) Submit(ctx context.Context, revisionID, proposerID string) (*domain.Revision, error) {
	rev, err := s.revisions.GetByID(ctx, revisionID)
	if err != nil {
		return nil, err
	}
	if rev.ProposerID != proposerID {
		return nil, fmt.Errorf("revision %s is not owned by %s: %w", revisionID, proposerID, domain.ErrPermissionDenied)
	}
	if rev.Status != domain.StatusDraft {
		return nil, fmt.Errorf("submit revision in status %s: %w", rev.Status, domain.ErrInvalidStateTransition)
	}
	article, err := s.articles.GetByID(ctx, rev.ArticleID)
	if err != nil {
		return nil, err
	}

	rev.Status = domain.StatusSubmitted
	rev.UpdatedAt = time.Now().UTC()
	if err := s.revisions.UpdateStatus(ctx, rev, domain.StatusDraft); err != nil {
		return nil, err
	}
	metrics.ObserveTransition(string(domain.StatusSubmitted))

	if approvers, err := s.users.ListApprovers(ctx, article.ApprovalGroup); err != nil {
		logger.WarnContext(ctx, "approver lookup failed, skipping submission notification",
			slog.String("revision_id", rev.ID),
			slog.String("error", err.Error()))
	} else {
		_ = s.notifier.NotifySubmitted(ctx, rev, approvers)
	}

	logger.InfoContext(ctx, "revision submitted",
		slog.String("revision_id", rev.ID),
		slog.String("article_id", rev.ArticleID))
	return rev, nil
}

// Withdraw takes a submitted revision back to draft. Proposer-initiated.
func (s *RevisionService) Withdraw(ctx context.Context, revisionID, proposerID string) (*domain.Revision, error) {
	rev, err := s.revisions.GetByID(ctx, revisionID)
	if err != nil {
		return nil, err
	}
	if rev.ProposerID != proposerID {
		return nil, fmt.Errorf("revision %s is not owned by %s: %w", revisionID, proposerID, domain.ErrPermissionDenied)
	}
	if rev.Status != domain.StatusSubmitted {
		return nil, fmt.Errorf("withdraw revision in status %s: %w", rev.Status, domain.ErrInvalidStateTransition)
	}

	rev.Status = domain.StatusDraft
	rev.ApproverID = nil
	rev.ProcessedAt = nil
	rev.UpdatedAt = time.Now().UTC()
	if err := s.revisions.UpdateStatus(ctx, rev, domain.StatusSubmitted); err != nil {
		return nil, err
	}
	metrics.ObserveTransition(string(domain.StatusDraft))

	logger.InfoContext(ctx, "revision withdrawn",
		slog.String("revision_id", rev.ID))
	return rev, nil
}

// Delete removes a draft revision permanently.
func (s *RevisionService) Delete(ctx context.Context, revisionID, proposerID string) error {
	rev, err := s.revisions.GetByID(ctx, revisionID)
	if err != nil {
		return err
	}
	if rev.ProposerID != proposerID {
		return fmt.Errorf("revision %s is not owned by %s: %w", revisionID, proposerID, domain.ErrPermissionDenied)
	}
	if rev.Status != domain.StatusDraft {
		return fmt.Errorf("delete revision in status %s: %w", rev.Status, domain.ErrInvalidStateTransition)
	}
	return s.revisions.Delete(ctx, revisionID)
}

// Decide records an approver's verdict on a submitted revision. Approval
// applies every non-nil proposed field onto the article. The status write is
// conditional on the revision still being submitted, so a concurrent
// decision that got there first surfaces as an invalid state transition
// instead of being applied twice.
func (s *RevisionService) Decide(ctx context.Context, revisionID, approverID string, decision domain.Decision, comment string) (*domain.Revision, error) {
	rev, err := s.decide(ctx, revisionID, approverID, decision, comment)
	metrics.ObserveDecision(string(decision), err)
	return rev, err
}

func (s *RevisionService) decide(ctx context.Context, revisionID, approverID string, decision domain.Decision, comment string) (*domain.Revision, error) {
	if err := s.validator.ValidateDecision(decision); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	rev, err := s.revisions.GetByID(ctx, revisionID)
	if err != nil {
		return nil, err
	}
	if rev.Status != domain.StatusSubmitted {
		return nil, fmt.Errorf("decide revision in status %s: %w", rev.Status, domain.ErrInvalidStateTransition)
	}
	article, err := s.articles.GetByID(ctx, rev.ArticleID)
	if err != nil {
		return nil, err
	}
	approver, err := s.users.GetByID(ctx, approverID)
	if err != nil {
		return nil, err
	}
	if approver.ID == rev.ProposerID {
		return nil, fmt.Errorf("approver %s proposed revision %s: %w", approverID, revisionID, domain.ErrSelfApproval)
	}
	if !approver.CanDecide(article) {
		return nil, fmt.Errorf("approver %s has no authority over group %s: %w", approverID, article.ApprovalGroup, domain.ErrPermissionDenied)
	}

	now := time.Now().UTC()
	rev.Status = decision.StatusAfter()
	rev.ApproverID = &approver.ID
	rev.ProcessedAt = &now
	rev.UpdatedAt = now

	// Claim the transition first; losing the race means another approver
	// already decided this revision.
	if err := s.revisions.UpdateStatus(ctx, rev, domain.StatusSubmitted); err != nil {
		return nil, err
	}
	metrics.ObserveTransition(string(rev.Status))

	if decision == domain.DecisionApprove {
		applied := diff.Apply(article, rev)
		article.UpdatedAt = now
		if err := s.articles.Update(ctx, article); err != nil {
			return nil, fmt.Errorf("apply approved revision %s: %w", rev.ID, err)
		}
		metrics.FieldsApplied.Observe(float64(applied))
		logger.InfoContext(ctx, "revision approved and applied",
			slog.String("revision_id", rev.ID),
			slog.String("article_id", article.ID),
			slog.Int("fields_applied", applied))
	}

	_ = s.notifier.NotifyDecision(ctx, rev, approver, decision, comment)

	logger.InfoContext(ctx, "revision decided",
		slog.String("revision_id", rev.ID),
		slog.String("approver_id", approverID),
		slog.String("decision", string(decision)),
		slog.String("status", string(rev.Status)))
	return rev, nil
}

// BulkDecide processes decisions one by one. Each item's outcome is recorded
// individually; a failing item never aborts the remainder and there is no
// partial-batch rollback.
func (s *RevisionService) BulkDecide(ctx context.Context, approverID string, reqs []DecisionRequest) []domain.DecisionOutcome {
	outcomes := make([]domain.DecisionOutcome, 0, len(reqs))
	for _, req := range reqs {
		outcome := domain.DecisionOutcome{RevisionID: req.RevisionID}
		rev, err := s.Decide(ctx, req.RevisionID, approverID, req.Decision, req.Comment)
		if err != nil {
			outcome.Error = err.Error()
		} else {
			outcome.Success = true
			outcome.Status = rev.Status
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// Diff computes the field-level diff of a revision against its target
// article. A missing revision or article aborts with a not-found error.
func (s *RevisionService) Diff(ctx context.Context, revisionID string) (*domain.RevisionDiff, error) {
	rev, err := s.revisions.GetByID(ctx, revisionID)
	if err != nil {
		return nil, err
	}
	article, err := s.articles.GetByID(ctx, rev.ArticleID)
	if err != nil {
		return nil, err
	}

	diffs := diff.Diff(article, rev)
	return &domain.RevisionDiff{
		RevisionID: rev.ID,
		ArticleID:  article.ID,
		Diffs:      diffs,
		Summary:    diff.Classify(diffs),
	}, nil
}

// DiffSummary computes only the aggregate summary of a revision's diff.
func (s *RevisionService) DiffSummary(ctx context.Context, revisionID string) (*domain.DiffSummary, error) {
	rd, err := s.Diff(ctx, revisionID)
	if err != nil {
		return nil, err
	}
	return &rd.Summary, nil
}

// CompareRevisions diffs two revisions of the same article and reports the
// fields they propose to change differently. Differing targets are a usage
// error, not a silent no-op.
func (s *RevisionService) CompareRevisions(ctx context.Context, idA, idB string) (*domain.RevisionComparison, error) {
	revA, err := s.revisions.GetByID(ctx, idA)
	if err != nil {
		return nil, err
	}
	revB, err := s.revisions.GetByID(ctx, idB)
	if err != nil {
		return nil, err
	}
	if revA.ArticleID != revB.ArticleID {
		return nil, fmt.Errorf("revisions %s and %s: %w", idA, idB, domain.ErrTargetMismatch)
	}
	article, err := s.articles.GetByID(ctx, revA.ArticleID)
	if err != nil {
		return nil, err
	}

	diffA := diff.Diff(article, revA)
	diffB := diff.Diff(article, revB)
	return &domain.RevisionComparison{
		RevisionA:      revA.ID,
		RevisionB:      revB.ID,
		DiffA:          diffA,
		DiffB:          diffB,
		Conflicts:      diff.Conflicts(diffA, diffB),
		CombinedImpact: diff.CombinedImpact(diff.Classify(diffA).Impact, diff.Classify(diffB).Impact),
	}, nil
}
