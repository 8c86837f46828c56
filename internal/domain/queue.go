package domain

import "time"

// Priority ranks a pending revision in an approver's queue.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ValidPriorities contains all valid queue priorities.
var ValidPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// IsValidPriority checks if a priority is valid.
func IsValidPriority(p Priority) bool {
	for _, v := range ValidPriorities {
		if v == p {
			return true
		}
	}
	return false
}

var priorityRanks = map[Priority]int{
	PriorityLow:    0,
	PriorityMedium: 1,
	PriorityHigh:   2,
	PriorityUrgent: 3,
}

// Rank returns the priority's sort severity; higher sorts first.
func (p Priority) Rank() int {
	return priorityRanks[p]
}

// Days pending after which an entry of this priority counts as overdue.
var overdueThresholdDays = map[Priority]float64{
	PriorityLow:    7,
	PriorityMedium: 3,
	PriorityHigh:   1,
	PriorityUrgent: 0.5,
}

// OverdueThresholdDays returns the overdue cutoff for the priority, in days.
func (p Priority) OverdueThresholdDays() float64 {
	return overdueThresholdDays[p]
}

// ApprovalQueueEntry is one ranked row in an approver's pending queue.
type ApprovalQueueEntry struct {
	RevisionID      string      `json:"revision_id"`
	ArticleID       string      `json:"article_id"`
	ProposerName    string      `json:"proposer_name"`
	Reason          string      `json:"reason"`
	Priority        Priority    `json:"priority"`
	Impact          ImpactLevel `json:"impact"`
	TotalChanges    int         `json:"total_changes"`
	CriticalChanges int         `json:"critical_changes"`
	SubmittedAt     time.Time   `json:"submitted_at"`
	DaysPending     int         `json:"days_pending"`
	Overdue         bool        `json:"overdue"`
}

// Capacity classifies an approver's queue pressure.
type Capacity string

const (
	CapacityNormal     Capacity = "normal"
	CapacityHigh       Capacity = "high"
	CapacityOverloaded Capacity = "overloaded"
)

// WorkloadSummary combines queue-derived counts with a capacity label.
type WorkloadSummary struct {
	ApproverID     string           `json:"approver_id"`
	PendingCount   int              `json:"pending_count"`
	OverdueCount   int              `json:"overdue_count"`
	CompletedToday int              `json:"completed_today"`
	ByPriority     map[Priority]int `json:"by_priority"`
	Capacity       Capacity         `json:"capacity"`
}

// ApprovalMetrics reports workflow health over a trailing window.
type ApprovalMetrics struct {
	DaysBack      int                 `json:"days_back"`
	PendingCount  int                 `json:"pending_count"`
	OverdueCount  int                 `json:"overdue_count"`
	ApprovedCount int                 `json:"approved_count"`
	RejectedCount int                 `json:"rejected_count"`
	ApprovalRate  float64             `json:"approval_rate"`
	RejectionRate float64             `json:"rejection_rate"`
	ByPriority    map[Priority]int    `json:"by_priority"`
	ByImpact      map[ImpactLevel]int `json:"by_impact"`
	Bottleneck    bool                `json:"bottleneck"`
}
