package domain

// ChangeKind classifies a single field comparison.
type ChangeKind string

const (
	ChangeAdded     ChangeKind = "added"
	ChangeModified  ChangeKind = "modified"
	ChangeDeleted   ChangeKind = "deleted"
	ChangeUnchanged ChangeKind = "unchanged"
)

// FieldDiff is the per-field comparison result between an article and a
// revision's proposed value. Computed on demand, never persisted.
type FieldDiff struct {
	Field       string     `json:"field"`
	Label       string     `json:"label"`
	Category    string     `json:"category"`
	Kind        ChangeKind `json:"kind"`
	OldValue    any        `json:"old_value"`
	NewValue    any        `json:"new_value"`
	OldDisplay  string     `json:"old_display"`
	NewDisplay  string     `json:"new_display"`
	Critical    bool       `json:"critical"`
	Description string     `json:"description,omitempty"`
}

// Changed reports whether the diff represents an actual change.
func (d *FieldDiff) Changed() bool {
	return d.Kind != ChangeUnchanged
}

// ImpactLevel is a five-point severity classification of a revision.
type ImpactLevel string

const (
	ImpactNone     ImpactLevel = "none"
	ImpactLow      ImpactLevel = "low"
	ImpactMedium   ImpactLevel = "medium"
	ImpactHigh     ImpactLevel = "high"
	ImpactCritical ImpactLevel = "critical"
)

var impactOrdinals = map[ImpactLevel]int{
	ImpactNone:     0,
	ImpactLow:      1,
	ImpactMedium:   2,
	ImpactHigh:     3,
	ImpactCritical: 4,
}

var impactByOrdinal = []ImpactLevel{ImpactNone, ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical}

// Ordinal returns the impact level's position on the 0-4 severity scale.
func (l ImpactLevel) Ordinal() int {
	return impactOrdinals[l]
}

// ImpactFromOrdinal maps a severity score back to a level, clamping to the
// critical end of the scale.
func ImpactFromOrdinal(n int) ImpactLevel {
	if n < 0 {
		n = 0
	}
	if n >= len(impactByOrdinal) {
		n = len(impactByOrdinal) - 1
	}
	return impactByOrdinal[n]
}

// DiffSummary aggregates a revision's field diffs.
type DiffSummary struct {
	TotalChanges    int                `json:"total_changes"`
	CriticalChanges int                `json:"critical_changes"`
	ByKind          map[ChangeKind]int `json:"by_kind"`
	ByCategory      map[string]int     `json:"by_category"`
	Impact          ImpactLevel        `json:"impact"`
	ReviewMinutes   int                `json:"review_minutes"`
}

// Conflict is a field that two revisions targeting the same article propose
// to change to different values.
type Conflict struct {
	Field     string `json:"field"`
	Label     string `json:"label"`
	ProposedA string `json:"proposed_a"`
	ProposedB string `json:"proposed_b"`
	Critical  bool   `json:"critical"`
}

// RevisionDiff pairs a revision's field diffs with their summary.
type RevisionDiff struct {
	RevisionID string      `json:"revision_id"`
	ArticleID  string      `json:"article_id"`
	Diffs      []FieldDiff `json:"diffs"`
	Summary    DiffSummary `json:"summary"`
}

// RevisionComparison is the result of comparing two revisions that target
// the same article.
type RevisionComparison struct {
	RevisionA      string      `json:"revision_a"`
	RevisionB      string      `json:"revision_b"`
	DiffA          []FieldDiff `json:"diff_a"`
	DiffB          []FieldDiff `json:"diff_b"`
	Conflicts      []Conflict  `json:"conflicts"`
	CombinedImpact ImpactLevel `json:"combined_impact"`
}
