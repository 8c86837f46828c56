package diff

import "github.com/ekrsw/knowledge-app-sub000/internal/domain"

// Conflicts finds fields that both diff sets propose to change to different
// values. Both sets must originate from revisions targeting the same
// article; verifying that is the caller's responsibility. Results follow the
// schema order of the first set.
func Conflicts(diffsA, diffsB []domain.FieldDiff) []domain.Conflict {
	changedB := make(map[string]*domain.FieldDiff, len(diffsB))
	for i := range diffsB {
		if diffsB[i].Changed() {
			changedB[diffsB[i].Field] = &diffsB[i]
		}
	}

	var conflicts []domain.Conflict
	for i := range diffsA {
		a := &diffsA[i]
		if !a.Changed() {
			continue
		}
		b, ok := changedB[a.Field]
		if !ok {
			continue
		}
		if canonical(a.NewValue) == canonical(b.NewValue) {
			continue
		}
		conflicts = append(conflicts, domain.Conflict{
			Field:     a.Field,
			Label:     a.Label,
			ProposedA: a.NewDisplay,
			ProposedB: b.NewDisplay,
			Critical:  a.Critical,
		})
	}
	return conflicts
}

// CombinedImpact merges two impact levels by summing their ordinal scores
// and clamping to the critical end of the scale, so combining two critical
// impacts still yields critical.
func CombinedImpact(a, b domain.ImpactLevel) domain.ImpactLevel {
	return domain.ImpactFromOrdinal(a.Ordinal() + b.Ordinal())
}
