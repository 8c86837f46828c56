package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekrsw/knowledge-app-sub000/internal/diff"
	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

func TestConflicts_CompetingTitleChanges(t *testing.T) {
	article := baseArticle()
	revA := &domain.Revision{ID: "rev-a", ArticleID: article.ID, AfterTitle: strPtr("Resetting your password")}
	revB := &domain.Revision{ID: "rev-b", ArticleID: article.ID, AfterTitle: strPtr("Password recovery guide")}

	conflicts := diff.Conflicts(diff.Diff(article, revA), diff.Diff(article, revB))

	require.Len(t, conflicts, 1)
	assert.Equal(t, "title", conflicts[0].Field)
	assert.Equal(t, "Resetting your password", conflicts[0].ProposedA)
	assert.Equal(t, "Password recovery guide", conflicts[0].ProposedB)
	assert.True(t, conflicts[0].Critical)
}

func TestConflicts_SameProposedValueIsNotAConflict(t *testing.T) {
	article := baseArticle()
	revA := &domain.Revision{ID: "rev-a", ArticleID: article.ID, AfterTitle: strPtr("Password recovery guide")}
	revB := &domain.Revision{ID: "rev-b", ArticleID: article.ID, AfterTitle: strPtr("Password recovery guide")}

	conflicts := diff.Conflicts(diff.Diff(article, revA), diff.Diff(article, revB))

	assert.Empty(t, conflicts)
}

func TestConflicts_DisjointFieldsDoNotConflict(t *testing.T) {
	article := baseArticle()
	revA := &domain.Revision{ID: "rev-a", ArticleID: article.ID, AfterTitle: strPtr("Password recovery guide")}
	revB := &domain.Revision{ID: "rev-b", ArticleID: article.ID, AfterAnswer: strPtr("Contact the service desk.")}

	conflicts := diff.Conflicts(diff.Diff(article, revA), diff.Diff(article, revB))

	assert.Empty(t, conflicts)
}

func TestCombinedImpact(t *testing.T) {
	tests := []struct {
		a, b, want domain.ImpactLevel
	}{
		{domain.ImpactCritical, domain.ImpactCritical, domain.ImpactCritical},
		{domain.ImpactLow, domain.ImpactMedium, domain.ImpactHigh},
		{domain.ImpactNone, domain.ImpactNone, domain.ImpactNone},
		{domain.ImpactHigh, domain.ImpactMedium, domain.ImpactCritical},
		{domain.ImpactNone, domain.ImpactLow, domain.ImpactLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, diff.CombinedImpact(tt.a, tt.b), "%s + %s", tt.a, tt.b)
	}
}
