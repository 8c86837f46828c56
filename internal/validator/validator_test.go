package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

func strPtr(s string) *string        { return &s }
func intPtr(n int) *int              { return &n }
func timePtr(t time.Time) *time.Time { return &t }

func validInput() domain.RevisionInput {
	return domain.RevisionInput{
		ArticleID:  "7a0c8790-69d7-4f2a-a0a6-6fcedb0bfc01",
		Reason:     "Fix outdated answer",
		AfterTitle: strPtr("Updated title"),
	}
}

func TestValidateRevisionInput_Valid(t *testing.T) {
	v := NewValidator()
	in := validInput()

	assert.NoError(t, v.ValidateRevisionInput(&in))
}

func TestValidateRevisionInput_Invalid(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		mutate func(*domain.RevisionInput)
		field  string
	}{
		{"missing article id", func(in *domain.RevisionInput) { in.ArticleID = "" }, "article_id"},
		{"malformed article id", func(in *domain.RevisionInput) { in.ArticleID = "not-a-uuid" }, "article_id"},
		{"missing reason", func(in *domain.RevisionInput) { in.Reason = "" }, "reason"},
		{"reason too long", func(in *domain.RevisionInput) { in.Reason = strings.Repeat("x", 501) }, "reason"},
		{"blank proposed title", func(in *domain.RevisionInput) { in.AfterTitle = strPtr("") }, "after_title"},
		{"non-positive category", func(in *domain.RevisionInput) { in.AfterCategoryID = intPtr(0) }, "after_category_id"},
		{
			"inverted publish window",
			func(in *domain.RevisionInput) {
				in.AfterPublishStart = timePtr(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
				in.AfterPublishEnd = timePtr(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
			},
			"after_publish_end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := v.ValidateRevisionInput(&in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateRevisionInput_PublishStartAloneIsFine(t *testing.T) {
	v := NewValidator()
	in := validInput()
	in.AfterPublishStart = timePtr(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, v.ValidateRevisionInput(&in))
}

func TestValidateDecision(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateDecision(domain.DecisionApprove))
	assert.NoError(t, v.ValidateDecision(domain.DecisionDefer))
	assert.Error(t, v.ValidateDecision(domain.Decision("escalate")))
	assert.Error(t, v.ValidateDecision(domain.Decision("")))
}
