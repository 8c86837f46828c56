package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

const maxReasonLength = 500

// Validator provides validation methods for workflow payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRevisionInput validates a proposer-supplied revision payload.
func (v *Validator) ValidateRevisionInput(in *domain.RevisionInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.ArticleID,
			validation.Required.Error("article_id_required"),
			is.UUID.Error("invalid_article_id"),
		),
		validation.Field(&in.Reason,
			validation.Required.Error("reason_required"),
			validation.Length(1, maxReasonLength).Error("reason_too_long"),
		),
		validation.Field(&in.AfterTitle,
			validation.NilOrNotEmpty.Error("title_cannot_be_blank"),
		),
		validation.Field(&in.AfterQuestion,
			validation.NilOrNotEmpty.Error("question_cannot_be_blank"),
		),
		validation.Field(&in.AfterAnswer,
			validation.NilOrNotEmpty.Error("answer_cannot_be_blank"),
		),
	)
	if err != nil {
		return err
	}

	// Custom rule: a proposed category must be positive
	if in.AfterCategoryID != nil && *in.AfterCategoryID <= 0 {
		return validation.Errors{
			"after_category_id": validation.NewError("invalid_category", "category must be positive"),
		}
	}

	// Custom rule: when both publish dates are proposed, start must precede end
	if in.AfterPublishStart != nil && in.AfterPublishEnd != nil &&
		!in.AfterPublishStart.Before(*in.AfterPublishEnd) {
		return validation.Errors{
			"after_publish_end": validation.NewError("publish_window_inverted", "publish end must be after publish start"),
		}
	}

	return nil
}

// ValidateDecision validates an approver decision value.
func (v *Validator) ValidateDecision(d domain.Decision) error {
	if !domain.IsValidDecision(d) {
		return validation.Errors{
			"decision": validation.NewError("invalid_decision", "decision must be one of: approve, reject, request_changes, defer"),
		}
	}
	return nil
}
