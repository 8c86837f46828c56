package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/ekrsw/knowledge-app-sub000/internal/diff"
	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
	"github.com/ekrsw/knowledge-app-sub000/internal/logger"
	"github.com/ekrsw/knowledge-app-sub000/internal/metrics"
	"github.com/ekrsw/knowledge-app-sub000/internal/repository"
)

const (
	// DefaultQueueLimit bounds how many submitted revisions a single queue
	// build considers.
	DefaultQueueLimit = 200

	// DefaultMetricsWindowDays is the trailing window when the caller does
	// not specify one.
	DefaultMetricsWindowDays = 30

	maxReasonPreview = 120
)

// QueueConfig carries the tunable workload cutoffs.
type QueueConfig struct {
	// PendingCeiling is the queue length above which an approver counts as
	// overloaded.
	PendingCeiling int
	// PendingHigh is the queue length above which capacity escalates to high.
	PendingHigh int
	// DefaultLimit bounds queue builds when the caller passes no limit.
	DefaultLimit int
}

// QueueService builds prioritized approval queues and derives workload and
// workflow-health metrics from them. The queue is a best-effort display
// view: revisions whose diff cannot be computed are excluded silently.
type QueueService struct {
	articles  repository.ArticleStore
	revisions repository.RevisionStore
	users     repository.UserDirectory
	cfg       QueueConfig
}

// NewQueueService creates a new QueueService.
func NewQueueService(
	articles repository.ArticleStore,
	revisions repository.RevisionStore,
	users repository.UserDirectory,
	cfg QueueConfig,
) *QueueService {
	if cfg.PendingCeiling <= 0 {
		cfg.PendingCeiling = 10
	}
	if cfg.PendingHigh <= 0 {
		cfg.PendingHigh = 5
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = DefaultQueueLimit
	}
	return &QueueService{articles: articles, revisions: revisions, users: users, cfg: cfg}
}

// BuildQueue ranks the submitted revisions the approver has authority to
// decide, most urgent and oldest first.
func (s *QueueService) BuildQueue(ctx context.Context, approverID string, priorityFilter *domain.Priority, limit int) ([]domain.ApprovalQueueEntry, error) {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.QueueBuildDuration)

	approver, err := s.users.GetByID(ctx, approverID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	revs, err := s.revisions.ListByStatus(ctx, domain.StatusSubmitted, limit)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entries := make([]domain.ApprovalQueueEntry, 0, len(revs))
	for i := range revs {
		rev := &revs[i]

		article, err := s.articles.GetByID(ctx, rev.ArticleID)
		if err != nil {
			// Best-effort view: a revision we cannot diff is dropped, not an
			// error for the whole queue.
			metrics.QueueEntriesSkipped.WithLabelValues("missing_article").Inc()
			logger.DebugContext(ctx, "queue entry skipped",
				slog.String("revision_id", rev.ID),
				slog.String("error", err.Error()))
			continue
		}
		if !approver.CanDecide(article) {
			metrics.QueueEntriesSkipped.WithLabelValues("authority").Inc()
			continue
		}

		summary := diff.Classify(diff.Diff(article, rev))
		daysPending := wholeDays(now.Sub(rev.CreatedAt))
		priority := priorityFor(summary.Impact, daysPending)
		if priorityFilter != nil && priority != *priorityFilter {
			continue
		}

		entries = append(entries, domain.ApprovalQueueEntry{
			RevisionID:      rev.ID,
			ArticleID:       rev.ArticleID,
			ProposerName:    s.proposerName(ctx, rev.ProposerID),
			Reason:          truncate(rev.Reason, maxReasonPreview),
			Priority:        priority,
			Impact:          summary.Impact,
			TotalChanges:    summary.TotalChanges,
			CriticalChanges: summary.CriticalChanges,
			SubmittedAt:     rev.CreatedAt,
			DaysPending:     daysPending,
			Overdue:         float64(daysPending) > priority.OverdueThresholdDays(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Priority.Rank() != entries[j].Priority.Rank() {
			return entries[i].Priority.Rank() > entries[j].Priority.Rank()
		}
		return entries[i].DaysPending > entries[j].DaysPending
	})
	return entries, nil
}

// Workload reduces the approver's queue into a capacity classification,
// combined with how many revisions they already processed today.
func (s *QueueService) Workload(ctx context.Context, approverID string) (*domain.WorkloadSummary, error) {
	entries, err := s.BuildQueue(ctx, approverID, nil, s.cfg.DefaultLimit)
	if err != nil {
		return nil, err
	}

	summary := &domain.WorkloadSummary{
		ApproverID:   approverID,
		PendingCount: len(entries),
		ByPriority:   make(map[domain.Priority]int),
	}
	for _, e := range entries {
		summary.ByPriority[e.Priority]++
		if e.Overdue {
			summary.OverdueCount++
		}
	}

	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	completed, err := s.revisions.CountDecidedBy(ctx, approverID, startOfDay)
	if err != nil {
		return nil, err
	}
	summary.CompletedToday = completed
	summary.Capacity = s.capacityFor(summary.PendingCount, summary.OverdueCount)
	return summary, nil
}

// Metrics reports workflow health over the trailing daysBack window.
func (s *QueueService) Metrics(ctx context.Context, daysBack int) (*domain.ApprovalMetrics, error) {
	if daysBack <= 0 {
		daysBack = DefaultMetricsWindowDays
	}
	now := time.Now().UTC()

	processed, err := s.revisions.ListProcessedSince(ctx, now.AddDate(0, 0, -daysBack))
	if err != nil {
		return nil, err
	}

	m := &domain.ApprovalMetrics{
		DaysBack:   daysBack,
		ByPriority: make(map[domain.Priority]int),
		ByImpact:   make(map[domain.ImpactLevel]int),
	}
	for i := range processed {
		switch processed[i].Status {
		case domain.StatusApproved:
			m.ApprovedCount++
		case domain.StatusRejected:
			m.RejectedCount++
		}
	}
	if decided := m.ApprovedCount + m.RejectedCount; decided > 0 {
		m.ApprovalRate = float64(m.ApprovedCount) / float64(decided)
		m.RejectionRate = float64(m.RejectedCount) / float64(decided)
	}

	pending, err := s.revisions.ListByStatus(ctx, domain.StatusSubmitted, s.cfg.DefaultLimit)
	if err != nil {
		return nil, err
	}
	for i := range pending {
		rev := &pending[i]
		article, err := s.articles.GetByID(ctx, rev.ArticleID)
		if err != nil {
			metrics.QueueEntriesSkipped.WithLabelValues("missing_article").Inc()
			continue
		}
		summary := diff.Classify(diff.Diff(article, rev))
		daysPending := wholeDays(now.Sub(rev.CreatedAt))
		priority := priorityFor(summary.Impact, daysPending)

		m.PendingCount++
		m.ByPriority[priority]++
		m.ByImpact[summary.Impact]++
		if float64(daysPending) > priority.OverdueThresholdDays() {
			m.OverdueCount++
		}
	}

	m.Bottleneck = m.OverdueCount > 0 && m.PendingCount > s.cfg.PendingHigh
	return m, nil
}

// priorityFor derives a queue priority from impact and age: higher impact
// escalates sooner.
func priorityFor(impact domain.ImpactLevel, daysPending int) domain.Priority {
	switch impact {
	case domain.ImpactCritical:
		if daysPending >= 1 {
			return domain.PriorityUrgent
		}
		return domain.PriorityHigh
	case domain.ImpactHigh:
		if daysPending >= 2 {
			return domain.PriorityHigh
		}
		return domain.PriorityMedium
	case domain.ImpactMedium:
		if daysPending >= 3 {
			return domain.PriorityMedium
		}
		return domain.PriorityLow
	default:
		return domain.PriorityLow
	}
}

func (s *QueueService) capacityFor(pending, overdue int) domain.Capacity {
	switch {
	case pending > s.cfg.PendingCeiling || overdue > s.cfg.PendingHigh:
		return domain.CapacityOverloaded
	case pending > s.cfg.PendingHigh || overdue > 0:
		return domain.CapacityHigh
	default:
		return domain.CapacityNormal
	}
}

func (s *QueueService) proposerName(ctx context.Context, proposerID string) string {
	user, err := s.users.GetByID(ctx, proposerID)
	if err != nil {
		return "unknown"
	}
	return user.Name
}

func wholeDays(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d.Hours() / 24)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
