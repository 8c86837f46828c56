// Package diff computes field-level differences between a published article
// and a revision's proposed values, classifies their business impact, and
// detects conflicts between competing revisions. All functions are pure and
// safe for concurrent use.
package diff

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

// fieldKind selects the renderer for a field's values. The kind is fixed in
// the schema table; formatting never inspects runtime types.
type fieldKind int

const (
	kindText fieldKind = iota
	kindFlag
	kindDate
)

const (
	notSetLabel    = "(not set)"
	flagOnLabel    = "Important"
	flagOffLabel   = "Normal"
	dateFormat     = "January 2, 2006"
	inlineDiffSpan = 40 // text shorter than this is described verbatim
)

// fieldMeta is the static per-field metadata. The table below is the single
// source of truth for labels, categories and criticality.
type fieldMeta struct {
	name     string
	label    string
	category string
	critical bool
	kind     fieldKind
	oldValue func(*domain.Article) any
	newValue func(*domain.Revision) any
	apply    func(*domain.Article, *domain.Revision)
}

// schema lists the ten diffable article fields in fixed order.
var schema = []fieldMeta{
	{
		name: "title", label: "Title", category: "content", critical: true, kind: kindText,
		oldValue: func(a *domain.Article) any { return a.Title },
		newValue: func(r *domain.Revision) any { return fromStringPtr(r.AfterTitle) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.Title = *r.AfterTitle },
	},
	{
		name: "category", label: "Category", category: "classification", critical: true, kind: kindText,
		oldValue: func(a *domain.Article) any { return a.CategoryID },
		newValue: func(r *domain.Revision) any { return fromIntPtr(r.AfterCategoryID) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.CategoryID = *r.AfterCategoryID },
	},
	{
		name: "keywords", label: "Keywords", category: "classification", critical: false, kind: kindText,
		oldValue: func(a *domain.Article) any { return fromStringPtr(a.Keywords) },
		newValue: func(r *domain.Revision) any { return fromStringPtr(r.AfterKeywords) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.Keywords = copyString(r.AfterKeywords) },
	},
	{
		name: "importance", label: "Importance", category: "classification", critical: true, kind: kindFlag,
		oldValue: func(a *domain.Article) any { return a.Important },
		newValue: func(r *domain.Revision) any { return fromBoolPtr(r.AfterImportant) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.Important = *r.AfterImportant },
	},
	{
		name: "publish_start", label: "Publish Start", category: "schedule", critical: true, kind: kindDate,
		oldValue: func(a *domain.Article) any { return fromTimePtr(a.PublishStart) },
		newValue: func(r *domain.Revision) any { return fromTimePtr(r.AfterPublishStart) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.PublishStart = copyTime(r.AfterPublishStart) },
	},
	{
		name: "publish_end", label: "Publish End", category: "schedule", critical: true, kind: kindDate,
		oldValue: func(a *domain.Article) any { return fromTimePtr(a.PublishEnd) },
		newValue: func(r *domain.Revision) any { return fromTimePtr(r.AfterPublishEnd) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.PublishEnd = copyTime(r.AfterPublishEnd) },
	},
	{
		name: "target", label: "Target Audience", category: "content", critical: false, kind: kindText,
		oldValue: func(a *domain.Article) any { return fromStringPtr(a.TargetAudience) },
		newValue: func(r *domain.Revision) any { return fromStringPtr(r.AfterTargetAudience) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.TargetAudience = copyString(r.AfterTargetAudience) },
	},
	{
		name: "question", label: "Question", category: "content", critical: false, kind: kindText,
		oldValue: func(a *domain.Article) any { return a.Question },
		newValue: func(r *domain.Revision) any { return fromStringPtr(r.AfterQuestion) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.Question = *r.AfterQuestion },
	},
	{
		name: "answer", label: "Answer", category: "content", critical: false, kind: kindText,
		oldValue: func(a *domain.Article) any { return a.Answer },
		newValue: func(r *domain.Revision) any { return fromStringPtr(r.AfterAnswer) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.Answer = *r.AfterAnswer },
	},
	{
		name: "comment", label: "Comment", category: "content", critical: false, kind: kindText,
		oldValue: func(a *domain.Article) any { return fromStringPtr(a.Comment) },
		newValue: func(r *domain.Revision) any { return fromStringPtr(r.AfterComment) },
		apply:    func(a *domain.Article, r *domain.Revision) { a.Comment = copyString(r.AfterComment) },
	},
}

// FieldCount is the number of fields every diff covers.
const FieldCount = 10

// Diff compares an article against a revision's proposed fields and returns
// one FieldDiff per schema field, in schema order. A nil proposed value means
// no change for that field; because of that rule the "deleted" kind is not
// producible here even though the classifier handles it.
func Diff(article *domain.Article, rev *domain.Revision) []domain.FieldDiff {
	diffs := make([]domain.FieldDiff, 0, len(schema))
	for _, m := range schema {
		old := m.oldValue(article)
		proposed := m.newValue(rev)

		d := domain.FieldDiff{
			Field:    m.name,
			Label:    m.label,
			Category: m.category,
			Critical: m.critical,
		}
		switch {
		case proposed == nil:
			d.Kind = domain.ChangeUnchanged
			d.OldValue, d.NewValue = old, old
		case old == nil:
			d.Kind = domain.ChangeAdded
			d.NewValue = proposed
		case canonical(old) != canonical(proposed):
			d.Kind = domain.ChangeModified
			d.OldValue, d.NewValue = old, proposed
		default:
			d.Kind = domain.ChangeUnchanged
			d.OldValue, d.NewValue = old, proposed
		}

		d.OldDisplay = m.kind.display(d.OldValue)
		d.NewDisplay = m.kind.display(d.NewValue)
		d.Description = describe(m, &d)
		diffs = append(diffs, d)
	}
	return diffs
}

// Apply copies every non-nil proposed field of the revision onto the article
// and returns the number of fields written. Fields left nil in the revision
// are untouched. The caller owns bumping the article's UpdatedAt and
// persisting the result.
func Apply(article *domain.Article, rev *domain.Revision) int {
	applied := 0
	for _, m := range schema {
		if m.newValue(rev) == nil {
			continue
		}
		m.apply(article, rev)
		applied++
	}
	return applied
}

// canonical renders a field value in a stable comparable form.
func canonical(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(val)
	}
}

// display renders a field value for humans according to the field's kind.
func (k fieldKind) display(v any) string {
	if v == nil {
		return notSetLabel
	}
	switch k {
	case kindFlag:
		if v.(bool) {
			return flagOnLabel
		}
		return flagOffLabel
	case kindDate:
		return v.(time.Time).Format(dateFormat)
	default:
		return canonical(v)
	}
}

// describe produces the free-text change description for a field diff.
// Long text modifications are summarized with a character-level diff instead
// of echoing both values.
func describe(m fieldMeta, d *domain.FieldDiff) string {
	switch d.Kind {
	case domain.ChangeAdded:
		return fmt.Sprintf("%s set to %q", d.Label, d.NewDisplay)
	case domain.ChangeDeleted:
		return fmt.Sprintf("%s cleared", d.Label)
	case domain.ChangeModified:
		if m.kind == kindText {
			oldText, newText := canonical(d.OldValue), canonical(d.NewValue)
			if len(oldText)+len(newText) > inlineDiffSpan {
				ins, del := textDelta(oldText, newText)
				return fmt.Sprintf("%s modified (+%d/-%d chars)", d.Label, ins, del)
			}
		}
		return fmt.Sprintf("%s changed from %q to %q", d.Label, d.OldDisplay, d.NewDisplay)
	default:
		return ""
	}
}

// textDelta returns the inserted and deleted character counts between two
// text values.
func textDelta(oldText, newText string) (inserted, deleted int) {
	dmp := diffmatchpatch.New()
	parts := dmp.DiffMain(oldText, newText, false)
	parts = dmp.DiffCleanupSemantic(parts)
	for _, p := range parts {
		switch p.Type {
		case diffmatchpatch.DiffInsert:
			inserted += len(p.Text)
		case diffmatchpatch.DiffDelete:
			deleted += len(p.Text)
		}
	}
	return inserted, deleted
}

func fromStringPtr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func fromIntPtr(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func fromBoolPtr(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}

func fromTimePtr(p *time.Time) any {
	if p == nil {
		return nil
	}
	return *p
}

func copyString(p *string) *string {
	v := *p
	return &v
}

func copyTime(p *time.Time) *time.Time {
	v := *p
	return &v
}
