package domain

import "time"

// Article represents a published knowledge-base entry.
// Optional fields are pointers; nil means the field has no value.
type Article struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	CategoryID     int        `json:"category_id"`
	Keywords       *string    `json:"keywords,omitempty"`
	Important      bool       `json:"important"`
	PublishStart   *time.Time `json:"publish_start,omitempty"`
	PublishEnd     *time.Time `json:"publish_end,omitempty"`
	TargetAudience *string    `json:"target_audience,omitempty"`
	Question       string     `json:"question"`
	Answer         string     `json:"answer"`
	Comment        *string    `json:"comment,omitempty"`
	ApprovalGroup  string     `json:"approval_group"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
