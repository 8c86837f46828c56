package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekrsw/knowledge-app-sub000/internal/diff"
	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

// makeDiffs builds a synthetic diff set with the requested number of
// critical and non-critical changes, padded with unchanged entries.
func makeDiffs(critical, nonCritical int) []domain.FieldDiff {
	diffs := make([]domain.FieldDiff, 0, diff.FieldCount)
	for i := 0; i < critical; i++ {
		diffs = append(diffs, domain.FieldDiff{
			Field: "title", Category: "content",
			Kind: domain.ChangeModified, Critical: true,
		})
	}
	for i := 0; i < nonCritical; i++ {
		diffs = append(diffs, domain.FieldDiff{
			Field: "answer", Category: "content",
			Kind: domain.ChangeModified, Critical: false,
		})
	}
	for len(diffs) < diff.FieldCount {
		diffs = append(diffs, domain.FieldDiff{
			Field: "comment", Category: "content",
			Kind: domain.ChangeUnchanged,
		})
	}
	return diffs
}

func TestClassify_ImpactLadder(t *testing.T) {
	tests := []struct {
		name        string
		critical    int
		nonCritical int
		want        domain.ImpactLevel
	}{
		{"three critical is critical", 3, 0, domain.ImpactCritical},
		{"two critical is high", 2, 0, domain.ImpactHigh},
		{"one critical is medium", 1, 0, domain.ImpactMedium},
		{"one critical plus noise still medium", 1, 4, domain.ImpactMedium},
		{"three plain changes is medium", 0, 3, domain.ImpactMedium},
		{"one plain change is low", 0, 1, domain.ImpactLow},
		{"no changes is none", 0, 0, domain.ImpactNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := diff.Classify(makeDiffs(tt.critical, tt.nonCritical))
			assert.Equal(t, tt.want, summary.Impact)
			assert.Equal(t, tt.critical, summary.CriticalChanges)
			assert.Equal(t, tt.critical+tt.nonCritical, summary.TotalChanges)
		})
	}
}

func TestClassify_IsDeterministic(t *testing.T) {
	diffs := makeDiffs(2, 3)

	first := diff.Classify(diffs)
	second := diff.Classify(diffs)

	assert.Equal(t, first.Impact, second.Impact)
	assert.Equal(t, first.ReviewMinutes, second.ReviewMinutes)
	assert.Equal(t, first, second)
}

func TestClassify_ReviewMinutes(t *testing.T) {
	tests := []struct {
		name        string
		critical    int
		nonCritical int
		want        int
	}{
		// (5 + 3*total + 5*critical) * factor, clamped [5, 60]
		{"no changes clamps to floor", 0, 0, 5},        // 5 * 0.5 = 2.5 -> 5
		{"single critical change", 1, 0, 14},           // 13 * 1.1 = 14.3 -> 14
		{"single plain change", 0, 1, 8},               // 8 * 1.0 = 8
		{"heavy revision clamps to ceiling", 5, 5, 60}, // 60 * 1.5 = 90 -> 60
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := diff.Classify(makeDiffs(tt.critical, tt.nonCritical))
			assert.Equal(t, tt.want, summary.ReviewMinutes)
		})
	}
}

func TestClassify_CountsByKindAndCategory(t *testing.T) {
	diffs := []domain.FieldDiff{
		{Field: "title", Category: "content", Kind: domain.ChangeModified, Critical: true},
		{Field: "publish_start", Category: "schedule", Kind: domain.ChangeAdded, Critical: true},
		{Field: "answer", Category: "content", Kind: domain.ChangeModified},
		{Field: "comment", Category: "content", Kind: domain.ChangeUnchanged},
	}

	summary := diff.Classify(diffs)

	assert.Equal(t, 2, summary.ByKind[domain.ChangeModified])
	assert.Equal(t, 1, summary.ByKind[domain.ChangeAdded])
	assert.Equal(t, 1, summary.ByKind[domain.ChangeUnchanged])
	assert.Equal(t, 2, summary.ByCategory["content"])
	assert.Equal(t, 1, summary.ByCategory["schedule"])
}
