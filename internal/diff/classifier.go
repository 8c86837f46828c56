package diff

import (
	"math"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

const (
	reviewBaseMinutes    = 5
	reviewPerChange      = 3
	reviewPerCritical    = 5
	reviewMinutesFloor   = 5
	reviewMinutesCeiling = 60
)

// reviewTimeFactors scale the review estimate per impact level.
var reviewTimeFactors = map[domain.ImpactLevel]float64{
	domain.ImpactCritical: 1.5,
	domain.ImpactHigh:     1.3,
	domain.ImpactMedium:   1.1,
	domain.ImpactLow:      1.0,
	domain.ImpactNone:     0.5,
}

// Classify aggregates field diffs into a summary with an impact level and a
// review-time estimate. Deterministic: identical inputs always classify
// identically.
func Classify(diffs []domain.FieldDiff) domain.DiffSummary {
	summary := domain.DiffSummary{
		ByKind:     make(map[domain.ChangeKind]int),
		ByCategory: make(map[string]int),
	}

	for i := range diffs {
		d := &diffs[i]
		summary.ByKind[d.Kind]++
		if !d.Changed() {
			continue
		}
		summary.TotalChanges++
		summary.ByCategory[d.Category]++
		if d.Critical {
			summary.CriticalChanges++
		}
	}

	summary.Impact = impactFor(summary.CriticalChanges, summary.TotalChanges)
	summary.ReviewMinutes = estimateReviewMinutes(summary.TotalChanges, summary.CriticalChanges, summary.Impact)
	return summary
}

// impactFor applies the classification ladder; first match wins.
func impactFor(critical, total int) domain.ImpactLevel {
	switch {
	case critical >= 3:
		return domain.ImpactCritical
	case critical >= 2:
		return domain.ImpactHigh
	case critical >= 1:
		return domain.ImpactMedium
	case total >= 3:
		return domain.ImpactMedium
	case total >= 1:
		return domain.ImpactLow
	default:
		return domain.ImpactNone
	}
}

// estimateReviewMinutes derives the review-time estimate, clamped to
// [5, 60] minutes.
func estimateReviewMinutes(total, critical int, impact domain.ImpactLevel) int {
	raw := float64(reviewBaseMinutes + total*reviewPerChange + critical*reviewPerCritical)
	minutes := int(math.Round(raw * reviewTimeFactors[impact]))
	if minutes < reviewMinutesFloor {
		return reviewMinutesFloor
	}
	if minutes > reviewMinutesCeiling {
		return reviewMinutesCeiling
	}
	return minutes
}
