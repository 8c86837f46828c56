package domain

import "time"

// RevisionStatus represents the lifecycle status of a revision.
type RevisionStatus string

const (
	StatusDraft     RevisionStatus = "draft"
	StatusSubmitted RevisionStatus = "submitted"
	StatusApproved  RevisionStatus = "approved"
	StatusRejected  RevisionStatus = "rejected"
	// StatusDeleted exists in the schema for legacy rows. No workflow
	// transition produces it.
	StatusDeleted RevisionStatus = "deleted"
)

// ValidStatuses contains all valid revision statuses.
var ValidStatuses = []RevisionStatus{StatusDraft, StatusSubmitted, StatusApproved, StatusRejected, StatusDeleted}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status RevisionStatus) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Decision represents an approver's verdict on a submitted revision.
type Decision string

const (
	DecisionApprove        Decision = "approve"
	DecisionReject         Decision = "reject"
	DecisionRequestChanges Decision = "request_changes"
	DecisionDefer          Decision = "defer"
)

// IsValidDecision checks if a decision is valid.
func IsValidDecision(d Decision) bool {
	switch d {
	case DecisionApprove, DecisionReject, DecisionRequestChanges, DecisionDefer:
		return true
	}
	return false
}

// StatusAfter returns the revision status a decision leads to.
// A deferred decision leaves the revision submitted.
func (d Decision) StatusAfter() RevisionStatus {
	switch d {
	case DecisionApprove:
		return StatusApproved
	case DecisionReject:
		return StatusRejected
	case DecisionRequestChanges:
		return StatusDraft
	default:
		return StatusSubmitted
	}
}

// Revision is a proposed edit to an article. Every article field has a
// nullable After counterpart; nil means no change is proposed for that
// field. There is currently no way to propose clearing a field.
type Revision struct {
	ID                  string         `json:"id"`
	ArticleID           string         `json:"article_id"`
	ProposerID          string         `json:"proposer_id"`
	ApproverID          *string        `json:"approver_id,omitempty"`
	Status              RevisionStatus `json:"status"`
	Reason              string         `json:"reason"`
	AfterTitle          *string        `json:"after_title,omitempty"`
	AfterCategoryID     *int           `json:"after_category_id,omitempty"`
	AfterKeywords       *string        `json:"after_keywords,omitempty"`
	AfterImportant      *bool          `json:"after_important,omitempty"`
	AfterPublishStart   *time.Time     `json:"after_publish_start,omitempty"`
	AfterPublishEnd     *time.Time     `json:"after_publish_end,omitempty"`
	AfterTargetAudience *string        `json:"after_target_audience,omitempty"`
	AfterQuestion       *string        `json:"after_question,omitempty"`
	AfterAnswer         *string        `json:"after_answer,omitempty"`
	AfterComment        *string        `json:"after_comment,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	ProcessedAt         *time.Time     `json:"processed_at,omitempty"`
}

// RevisionInput carries proposer-supplied revision fields for create and
// update operations. Status is never settable through this path.
type RevisionInput struct {
	ArticleID           string     `json:"article_id"`
	Reason              string     `json:"reason"`
	AfterTitle          *string    `json:"after_title,omitempty"`
	AfterCategoryID     *int       `json:"after_category_id,omitempty"`
	AfterKeywords       *string    `json:"after_keywords,omitempty"`
	AfterImportant      *bool      `json:"after_important,omitempty"`
	AfterPublishStart   *time.Time `json:"after_publish_start,omitempty"`
	AfterPublishEnd     *time.Time `json:"after_publish_end,omitempty"`
	AfterTargetAudience *string    `json:"after_target_audience,omitempty"`
	AfterQuestion       *string    `json:"after_question,omitempty"`
	AfterAnswer         *string    `json:"after_answer,omitempty"`
	AfterComment        *string    `json:"after_comment,omitempty"`
}

// ApplyInput copies the proposer-editable fields of in onto the revision.
func (r *Revision) ApplyInput(in RevisionInput) {
	r.Reason = in.Reason
	r.AfterTitle = in.AfterTitle
	r.AfterCategoryID = in.AfterCategoryID
	r.AfterKeywords = in.AfterKeywords
	r.AfterImportant = in.AfterImportant
	r.AfterPublishStart = in.AfterPublishStart
	r.AfterPublishEnd = in.AfterPublishEnd
	r.AfterTargetAudience = in.AfterTargetAudience
	r.AfterQuestion = in.AfterQuestion
	r.AfterAnswer = in.AfterAnswer
	r.AfterComment = in.AfterComment
}

// DecisionOutcome is the per-item result of a bulk decision request.
type DecisionOutcome struct {
	RevisionID string         `json:"revision_id"`
	Status     RevisionStatus `json:"status,omitempty"`
	Success    bool           `json:"success"`
	Error      string         `json:"error,omitempty"`
}
